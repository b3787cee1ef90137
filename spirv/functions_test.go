package spirv

import (
	"testing"

	"github.com/gogpu/spirvreflect/ir"
)

// buildRecursiveCallModule assembles three functions: main calls funcA,
// funcA calls funcB, and funcB calls funcA back, a cycle that never
// includes main itself.
func buildRecursiveCallModule(t *testing.T) []uint32 {
	t.Helper()
	a := newAsm()

	voidT := a.id()
	fnT := a.id()
	mainID := a.id()
	mainLabel := a.id()
	funcAID := a.id()
	funcALabel := a.id()
	funcBID := a.id()
	funcBLabel := a.id()

	a.emit(OpCapability, 1)
	a.emit(OpMemoryModel, 0, 1)
	a.emitStr(OpEntryPoint, []uint32{4, mainID}, "main") // Fragment

	a.emit(OpTypeVoid, voidT)
	a.emit(OpTypeFunction, fnT, voidT)

	a.emit(OpFunction, voidT, mainID, 0, fnT)
	a.emit(OpLabel, mainLabel)
	a.emit(OpFunctionCall, voidT, a.id(), funcAID)
	a.emit(253) // OpReturn
	a.emit(OpFunctionEnd)

	a.emit(OpFunction, voidT, funcAID, 0, fnT)
	a.emit(OpLabel, funcALabel)
	a.emit(OpFunctionCall, voidT, a.id(), funcBID)
	a.emit(253)
	a.emit(OpFunctionEnd)

	a.emit(OpFunction, voidT, funcBID, 0, fnT)
	a.emit(OpLabel, funcBLabel)
	a.emit(OpFunctionCall, voidT, a.id(), funcAID)
	a.emit(253)
	a.emit(OpFunctionEnd)

	return a.finish(a.nextID)
}

func TestCreateFromWords_RejectsCallGraphCycle(t *testing.T) {
	words := buildRecursiveCallModule(t)
	_, err := CreateFromWords(0, words)
	if err == nil {
		t.Fatal("expected an error for a cyclic call graph")
	}
	e, ok := err.(*ir.Error)
	if !ok || e.Code != ir.Recursion {
		t.Fatalf("err = %v, want Recursion", err)
	}
}

// buildDeepCallChainModule assembles a straight-line chain of depth
// functions, each calling the next, with no cycle.
func buildDeepCallChainModule(t *testing.T, depth int) []uint32 {
	t.Helper()
	a := newAsm()

	voidT := a.id()
	fnT := a.id()

	ids := make([]uint32, depth)
	for i := range ids {
		ids[i] = a.id()
	}

	a.emit(OpCapability, 1)
	a.emit(OpMemoryModel, 0, 1)
	a.emitStr(OpEntryPoint, []uint32{4, ids[0]}, "main") // Fragment

	a.emit(OpTypeVoid, voidT)
	a.emit(OpTypeFunction, fnT, voidT)

	for i, id := range ids {
		a.emit(OpFunction, voidT, id, 0, fnT)
		a.emit(OpLabel, a.id())
		if i+1 < len(ids) {
			a.emit(OpFunctionCall, voidT, a.id(), ids[i+1])
		}
		a.emit(253)
		a.emit(OpFunctionEnd)
	}

	return a.finish(a.nextID)
}

func TestCreateFromWords_RejectsCallDepthBeyondLimit(t *testing.T) {
	words := buildDeepCallChainModule(t, maxCallDepth+2)
	_, err := CreateFromWords(0, words)
	if err == nil {
		t.Fatal("expected an error for a call chain deeper than the depth cap")
	}
	e, ok := err.(*ir.Error)
	if !ok || e.Code != ir.Recursion {
		t.Fatalf("err = %v, want Recursion", err)
	}
}
