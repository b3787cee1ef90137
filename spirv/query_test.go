package spirv

import (
	"testing"

	"github.com/gogpu/spirvreflect/ir"
)

func TestQuery_EnumerateLookupConsistency(t *testing.T) {
	words := buildUniformBlockModule(t)
	m, err := CreateFromWords(0, words)
	if err != nil {
		t.Fatalf("CreateFromWords: %v", err)
	}

	bindings := EnumerateDescriptorBindings(m)
	if len(bindings) != 1 {
		t.Fatalf("len(bindings) = %d, want 1", len(bindings))
	}
	got, err := GetDescriptorBinding(m, bindings[0].Set, bindings[0].Binding)
	if err != nil {
		t.Fatalf("GetDescriptorBinding: %v", err)
	}
	if got.SpirvID != bindings[0].SpirvID {
		t.Fatalf("GetDescriptorBinding returned a different binding than Enumerate produced")
	}

	sets := EnumerateDescriptorSets(m)
	if len(sets) != 1 {
		t.Fatalf("len(sets) = %d, want 1", len(sets))
	}
	gotSet, err := GetDescriptorSet(m, sets[0].Set)
	if err != nil {
		t.Fatalf("GetDescriptorSet: %v", err)
	}
	if gotSet.Set != sets[0].Set {
		t.Fatal("GetDescriptorSet returned a different set than Enumerate produced")
	}

	eps := EnumerateEntryPoints(m)
	if len(eps) != 1 {
		t.Fatalf("len(eps) = %d, want 1", len(eps))
	}
	ep, err := GetEntryPoint(m, eps[0].Name)
	if err != nil {
		t.Fatalf("GetEntryPoint: %v", err)
	}
	if ep.Name != "main" {
		t.Fatalf("entry point name = %q, want main", ep.Name)
	}
}

func TestQuery_MissesReturnElementNotFound(t *testing.T) {
	words := buildUniformBlockModule(t)
	m, err := CreateFromWords(0, words)
	if err != nil {
		t.Fatalf("CreateFromWords: %v", err)
	}

	if _, err := GetDescriptorBinding(m, 7, 7); !isCode(err, ir.ElementNotFound) {
		t.Fatalf("GetDescriptorBinding miss: got %v, want ElementNotFound", err)
	}
	if _, err := GetDescriptorSet(m, 7); !isCode(err, ir.ElementNotFound) {
		t.Fatalf("GetDescriptorSet miss: got %v, want ElementNotFound", err)
	}
	if _, err := GetEntryPoint(m, "does_not_exist"); !isCode(err, ir.InvalidEntryPoint) {
		t.Fatalf("GetEntryPoint miss: got %v, want InvalidEntryPoint", err)
	}
	if _, err := GetPushConstantBlock(m, 0); !isCode(err, ir.ElementNotFound) {
		t.Fatalf("GetPushConstantBlock miss: got %v, want ElementNotFound", err)
	}
}

func isCode(err error, code ir.ErrorCode) bool {
	e, ok := err.(*ir.Error)
	return ok && e.Code == code
}
