package spirv

import (
	"testing"

	"github.com/gogpu/spirvreflect/ir"
)

func TestChangeBindingNumber_ResyncsSets(t *testing.T) {
	words := buildUniformBlockModule(t)
	m, err := CreateFromWords(0, words)
	if err != nil {
		t.Fatalf("CreateFromWords: %v", err)
	}

	b := &m.Bindings[0]
	if err := ChangeBindingNumber(m, b, 5, 2); err != nil {
		t.Fatalf("ChangeBindingNumber: %v", err)
	}
	if b.Binding != 5 || b.Set != 2 {
		t.Fatalf("(binding, set) = (%d, %d), want (5, 2)", b.Binding, b.Set)
	}

	if _, err := GetDescriptorSet(m, 0); !isCode(err, ir.ElementNotFound) {
		t.Fatalf("old set 0 should be gone, got %v", err)
	}
	moved, err := GetDescriptorSet(m, 2)
	if err != nil {
		t.Fatalf("GetDescriptorSet(2): %v", err)
	}
	if len(moved.Bindings) != 1 || moved.Bindings[0].Binding != 5 {
		t.Fatalf("moved set contents = %+v, want one binding numbered 5", moved.Bindings)
	}

	got, err := GetDescriptorBinding(m, 2, 5)
	if err != nil {
		t.Fatalf("GetDescriptorBinding(2, 5): %v", err)
	}
	if got.SpirvID != b.SpirvID {
		t.Fatal("GetDescriptorBinding after edit found a different binding")
	}
}

func TestChangeSetNumber_MovesEveryBindingInSet(t *testing.T) {
	words := buildUniformBlockModule(t)
	m, err := CreateFromWords(0, words)
	if err != nil {
		t.Fatalf("CreateFromWords: %v", err)
	}

	if err := ChangeSetNumber(m, 0, 9); err != nil {
		t.Fatalf("ChangeSetNumber: %v", err)
	}
	if m.Bindings[0].Set != 9 {
		t.Fatalf("binding.set = %d, want 9", m.Bindings[0].Set)
	}
	if _, err := GetDescriptorSet(m, 9); err != nil {
		t.Fatalf("GetDescriptorSet(9): %v", err)
	}

	if err := ChangeSetNumber(m, 0, 1); !isCode(err, ir.ElementNotFound) {
		t.Fatalf("ChangeSetNumber on a now-empty set: got %v, want ElementNotFound", err)
	}
}

// buildInputLocationModule assembles a minimal vertex shader with one
// vec4 Input interface variable at location 0.
func buildInputLocationModule(t *testing.T) []uint32 {
	t.Helper()
	a := newAsm()

	floatT := a.id()
	v4T := a.id()
	ptrInT := a.id()
	varID := a.id()
	voidT := a.id()
	fnT := a.id()
	mainID := a.id()
	labelID := a.id()

	a.emit(OpCapability, 1) // Shader
	a.emit(OpMemoryModel, 0, 1)
	a.emitStr(OpEntryPoint, []uint32{0, mainID}, "main")

	a.emit(OpDecorate, varID, 30, 0) // Location 0

	a.emit(OpTypeFloat, floatT, 32)
	a.emit(OpTypeVector, v4T, floatT, 4)
	a.emit(OpTypePointer, ptrInT, uint32(ir.StorageClassInput), v4T)
	a.emit(OpVariable, ptrInT, varID, uint32(ir.StorageClassInput))
	a.emit(OpTypeVoid, voidT)
	a.emit(OpTypeFunction, fnT, voidT)
	a.emit(OpFunction, voidT, mainID, 0, fnT)
	a.emit(OpLabel, labelID)
	a.emit(253) // OpReturn
	a.emit(OpFunctionEnd)

	words := a.finish(a.nextID)
	// OpEntryPoint's interface list must include varID so it builds an
	// InterfaceVariable; patch it in directly since emitStr doesn't take
	// a trailing id list after the string operand.
	return appendEntryPointInterface(words, varID)
}

// appendEntryPointInterface finds the OpEntryPoint instruction and appends
// one more interface id to it, fixing up its word count. ifaceID must
// already be below the module's id bound.
func appendEntryPointInterface(words []uint32, ifaceID uint32) []uint32 {
	for off := uint32(5); off < uint32(len(words)); {
		header := words[off]
		op := Op(header & 0xFFFF)
		wordCount := header >> 16
		if op == OpEntryPoint {
			newCount := wordCount + 1
			out := make([]uint32, 0, len(words)+1)
			out = append(out, words[:off]...)
			out = append(out, (uint32(op))|(newCount<<16))
			out = append(out, words[off+1:off+wordCount]...)
			out = append(out, ifaceID)
			out = append(out, words[off+wordCount:]...)
			return out
		}
		off += wordCount
	}
	return words
}

func TestChangeInputVariableLocation(t *testing.T) {
	words := buildInputLocationModule(t)
	m, err := CreateFromWords(0, words)
	if err != nil {
		t.Fatalf("CreateFromWords: %v", err)
	}
	if len(m.EntryPoints) != 1 {
		t.Fatalf("entry points = %d, want 1", len(m.EntryPoints))
	}
	ep := &m.EntryPoints[0]
	if len(ep.InputVariables) != 1 {
		t.Fatalf("input variables = %d, want 1", len(ep.InputVariables))
	}
	v := ep.InputVariables[0]
	if v.Location != 0 {
		t.Fatalf("location = %d, want 0", v.Location)
	}

	if err := ChangeInputVariableLocation(m, v, 3); err != nil {
		t.Fatalf("ChangeInputVariableLocation: %v", err)
	}
	if v.Location != 3 {
		t.Fatalf("location after edit = %d, want 3", v.Location)
	}
	if _, err := GetInputVariableByLocation(ep, 0); !isCode(err, ir.ElementNotFound) {
		t.Fatalf("old location 0 should miss, got %v", err)
	}
	got, err := GetInputVariableByLocation(ep, 3)
	if err != nil {
		t.Fatalf("GetInputVariableByLocation(3): %v", err)
	}
	if got != v {
		t.Fatal("GetInputVariableByLocation returned a different variable after edit")
	}
}
