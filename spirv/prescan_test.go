package spirv

import "testing"

func TestPreScan_CountsFromUniformBlockModule(t *testing.T) {
	words := buildUniformBlockModule(t)
	r := newWordReader(words)
	scan, err := preScan(r)
	if err != nil {
		t.Fatalf("preScan: %v", err)
	}

	if scan.numCapabilities != 1 {
		t.Fatalf("numCapabilities = %d, want 1", scan.numCapabilities)
	}
	if scan.numEntryPoints != 1 {
		t.Fatalf("numEntryPoints = %d, want 1", scan.numEntryPoints)
	}
	// floatT, v4T, mat4T, blockT, ptrT, voidT, fnT: 7 OpType* instructions.
	if scan.numTypes != 7 {
		t.Fatalf("numTypes = %d, want 7", scan.numTypes)
	}
	if scan.numFunctionsBody != 1 {
		t.Fatalf("numFunctionsBody = %d, want 1 (one OpFunction...OpFunctionEnd with a label)", scan.numFunctionsBody)
	}
	if len(scan.instructions) == 0 {
		t.Fatal("expected at least one decoded instruction")
	}
}

func TestPreScan_RejectsZeroWordCount(t *testing.T) {
	words := buildUniformBlockModule(t)
	// Corrupt the first instruction after the header into a zero-length one.
	words[5] = uint32(OpCapability)
	if _, err := preScan(newWordReader(words)); err == nil {
		t.Fatal("expected an error for a zero word count instruction")
	}
}

func TestPreScan_RejectsInstructionPastEnd(t *testing.T) {
	words := buildUniformBlockModule(t)
	truncated := words[:len(words)-1]
	if _, err := preScan(newWordReader(truncated)); err == nil {
		t.Fatal("expected an error for an instruction extending past the module end")
	}
}

func TestPreScan_FunctionWithoutLabelDoesNotCount(t *testing.T) {
	a := newAsm()
	voidT := a.id()
	fnT := a.id()
	fnID := a.id()
	a.emit(OpTypeVoid, voidT)
	a.emit(OpTypeFunction, fnT, voidT)
	a.emit(OpFunction, voidT, fnID, 0, fnT)
	a.emit(OpFunctionEnd)
	words := a.finish(a.nextID)

	scan, err := preScan(newWordReader(words))
	if err != nil {
		t.Fatalf("preScan: %v", err)
	}
	if scan.numFunctionsBody != 0 {
		t.Fatalf("numFunctionsBody = %d, want 0 for a bodyless function declaration", scan.numFunctionsBody)
	}
}
