package spirv

import (
	"testing"

	"github.com/gogpu/spirvreflect/ir"
)

// buildUAVCounterModule assembles two StorageBuffer bindings, "data" and
// "data@count", pairing via the HLSL <name>@count naming convention.
func buildUAVCounterModule(t *testing.T) []uint32 {
	t.Helper()
	a := newAsm()

	floatT := a.id()
	structT := a.id()
	ptrT := a.id()
	dataID := a.id()
	counterID := a.id()
	voidT := a.id()
	fnT := a.id()
	mainID := a.id()
	labelID := a.id()

	a.emit(OpCapability, 1)
	a.emit(OpMemoryModel, 0, 1)
	a.emitStr(OpEntryPoint, []uint32{4, mainID}, "main") // Fragment

	a.emitStr(OpName, []uint32{dataID}, "data")
	a.emitStr(OpName, []uint32{counterID}, "data@count")
	a.emit(OpDecorate, structT, 3) // BufferBlock (pre-1.3 style, unused by classification but realistic)
	a.emit(OpMemberDecorate, structT, 0, 35, 0) // Offset 0
	a.emit(OpDecorate, dataID, 34, 0)  // DescriptorSet 0
	a.emit(OpDecorate, dataID, 33, 0)  // Binding 0
	a.emit(OpDecorate, counterID, 34, 0) // DescriptorSet 0
	a.emit(OpDecorate, counterID, 33, 1) // Binding 1

	a.emit(OpTypeFloat, floatT, 32)
	a.emit(OpTypeStruct, structT, floatT)
	a.emit(OpTypePointer, ptrT, uint32(ir.StorageClassStorageBuffer), structT)
	a.emit(OpVariable, ptrT, dataID, uint32(ir.StorageClassStorageBuffer))
	a.emit(OpVariable, ptrT, counterID, uint32(ir.StorageClassStorageBuffer))
	a.emit(OpTypeVoid, voidT)
	a.emit(OpTypeFunction, fnT, voidT)
	a.emit(OpFunction, voidT, mainID, 0, fnT)
	a.emit(OpLabel, labelID)
	a.emit(253) // OpReturn
	a.emit(OpFunctionEnd)

	return a.finish(a.nextID)
}

func TestCreateFromWords_UAVCounterPairing(t *testing.T) {
	words := buildUAVCounterModule(t)
	m, err := CreateFromWords(0, words)
	if err != nil {
		t.Fatalf("CreateFromWords: %v", err)
	}
	if len(m.Bindings) != 2 {
		t.Fatalf("len(m.Bindings) = %d, want 2", len(m.Bindings))
	}

	data, err := GetDescriptorBinding(m, 0, 0)
	if err != nil {
		t.Fatalf("GetDescriptorBinding(0,0): %v", err)
	}
	counter, err := GetDescriptorBinding(m, 0, 1)
	if err != nil {
		t.Fatalf("GetDescriptorBinding(0,1): %v", err)
	}

	if data.DescriptorType != ir.DescriptorTypeStorageBuffer {
		t.Fatalf("data.DescriptorType = %v, want StorageBuffer", data.DescriptorType)
	}
	if data.UAVCounterBinding == nil {
		t.Fatal("data binding has no paired UAV counter")
	}
	if *data.UAVCounterBinding != counter.ID {
		t.Fatalf("data's counter binding id = %d, want %d", *data.UAVCounterBinding, counter.ID)
	}
	if counter.UAVCounterBinding != nil {
		t.Fatal("the counter buffer itself should not be paired to another counter")
	}
}
