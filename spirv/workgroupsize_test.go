package spirv

import (
	"testing"

	"github.com/gogpu/spirvreflect/ir"
)

// buildWorkgroupSizeModule assembles a minimal compute shader whose local
// size comes from a BuiltIn WorkgroupSize spec-constant composite instead
// of a literal OpExecutionMode LocalSize.
func buildWorkgroupSizeModule(t *testing.T) (words []uint32, compID uint32) {
	t.Helper()
	a := newAsm()

	uintT := a.id()
	v3T := a.id()
	xID := a.id()
	yID := a.id()
	zID := a.id()
	compositeID := a.id()
	voidT := a.id()
	fnT := a.id()
	mainID := a.id()
	labelID := a.id()

	a.emit(OpCapability, 1)
	a.emit(OpMemoryModel, 0, 1)
	a.emitStr(OpEntryPoint, []uint32{5, mainID}, "main") // GLCompute
	a.emit(OpExecutionMode, mainID, 17) // LocalSizeId would list ids; here we omit it deliberately

	a.emit(OpDecorate, compositeID, 11, uint32(ir.BuiltInWorkgroupSize))
	a.emit(OpDecorate, xID, 1, 0) // SpecId 0
	a.emit(OpDecorate, yID, 1, 1) // SpecId 1
	a.emit(OpDecorate, zID, 1, 2) // SpecId 2

	a.emit(OpTypeInt, uintT, 32, 0)
	a.emit(OpTypeVector, v3T, uintT, 3)
	a.emit(OpSpecConstant, uintT, xID, 8)
	a.emit(OpSpecConstant, uintT, yID, 4)
	a.emit(OpSpecConstant, uintT, zID, 1)
	a.emit(OpSpecConstantComposite, v3T, compositeID, xID, yID, zID)
	a.emit(OpTypeVoid, voidT)
	a.emit(OpTypeFunction, fnT, voidT)
	a.emit(OpFunction, voidT, mainID, 0, fnT)
	a.emit(OpLabel, labelID)
	a.emit(253) // OpReturn
	a.emit(OpFunctionEnd)

	return a.finish(a.nextID), compositeID
}

func TestCreateFromWords_WorkgroupSizeBuiltinComposite(t *testing.T) {
	words, compID := buildWorkgroupSizeModule(t)
	m, err := CreateFromWords(0, words)
	if err != nil {
		t.Fatalf("CreateFromWords: %v", err)
	}
	if len(m.EntryPoints) != 1 {
		t.Fatalf("entry points = %d, want 1", len(m.EntryPoints))
	}
	ep := &m.EntryPoints[0]
	if ep.LocalSize.Flags != ir.LocalSizeWorkgroupSizeBuiltin {
		t.Fatalf("LocalSize.Flags = %v, want LocalSizeWorkgroupSizeBuiltin", ep.LocalSize.Flags)
	}
	if ep.LocalSize.X != compID {
		t.Fatalf("LocalSize.X = %d, want the composite's id %d", ep.LocalSize.X, compID)
	}

	if len(m.SpecConstants) != 3 {
		t.Fatalf("spec constants = %d, want 3 (x, y, z)", len(m.SpecConstants))
	}
}
