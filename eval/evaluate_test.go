package eval

import (
	"testing"

	"github.com/gogpu/spirvreflect/ir"
)

// i32Module builds a Module whose only type is a 32-bit signed int, and
// whose ConstantRecords hold two spec constants (SpecId 0 and 1) plus an
// OpSpecConstantOp IAdd combining them.
func i32Module() *ir.Module {
	m := &ir.Module{
		Types: []ir.TypeDescription{{
			ID:       0,
			TypeFlags: ir.TypeFlagInt,
			Numeric:  ir.NumericTraits{ScalarWidth: 32, Signed: true},
		}},
	}
	m.ConstantRecords = []ir.ConstantRecord{
		{ID: 0, SpirvID: 10, Opcode: 50, ResultType: 0, SpecID: 0, Literals: []uint32{10}},
		{ID: 1, SpirvID: 11, Opcode: 50, ResultType: 0, SpecID: 1, Literals: []uint32{20}},
		{ID: 2, SpirvID: 12, Opcode: 52, ResultType: 0, SpecID: ir.Invalid, SubOpcode: opIAdd, IDOperands: []uint32{10, 11}},
	}
	m.SpecConstants = []ir.SpecializationConstant{
		{Name: "a", ConstantID: 0, SpirvID: 10, Default: ir.ScalarI32{Value: 10}, Type: 0},
		{Name: "b", ConstantID: 1, SpirvID: 11, Default: ir.ScalarI32{Value: 20}, Type: 0},
	}
	m.IndexConstantRecords()
	return m
}

func TestEvaluate_SpecConstantOp(t *testing.T) {
	e := New(i32Module())
	v, err := e.Evaluate(12)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	got, ok := v.(ir.ScalarI32)
	if !ok {
		t.Fatalf("value = %#v, want ir.ScalarI32", v)
	}
	if got.Value != 30 {
		t.Fatalf("10 + 20 = %d, want 30", got.Value)
	}
}

func TestSetSpecConstant_PropagatesToDependents(t *testing.T) {
	e := New(i32Module())
	if _, err := e.Evaluate(12); err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if err := e.SetSpecConstant(0, ir.ScalarI32{Value: 100}); err != nil {
		t.Fatalf("SetSpecConstant: %v", err)
	}
	v, err := e.Evaluate(12)
	if err != nil {
		t.Fatalf("Evaluate after override: %v", err)
	}
	got := v.(ir.ScalarI32)
	if got.Value != 120 {
		t.Fatalf("100 + 20 = %d, want 120", got.Value)
	}
}

func TestSetSpecConstant_UnknownSpecID(t *testing.T) {
	e := New(i32Module())
	if err := e.SetSpecConstant(99, ir.ScalarI32{Value: 1}); err == nil {
		t.Fatal("expected an error for an unknown SpecId")
	} else if ee, ok := err.(*ir.Error); !ok || ee.Code != ir.ElementNotFound {
		t.Fatalf("err = %v, want ElementNotFound", err)
	}
}

func TestEvaluate_DetectsCycle(t *testing.T) {
	m := &ir.Module{
		Types: []ir.TypeDescription{{ID: 0, TypeFlags: ir.TypeFlagInt, Numeric: ir.NumericTraits{ScalarWidth: 32, Signed: true}}},
	}
	// id 20's OpSpecConstantOp takes id 21 as an operand, and id 21's
	// takes id 20: a direct cycle, neither constant ever resolving.
	m.ConstantRecords = []ir.ConstantRecord{
		{ID: 0, SpirvID: 20, Opcode: 52, ResultType: 0, SpecID: ir.Invalid, SubOpcode: opIAdd, IDOperands: []uint32{21, 21}},
		{ID: 1, SpirvID: 21, Opcode: 52, ResultType: 0, SpecID: ir.Invalid, SubOpcode: opIAdd, IDOperands: []uint32{20, 20}},
	}
	m.IndexConstantRecords()

	e := New(m)
	if _, err := e.Evaluate(20); err == nil {
		t.Fatal("expected a recursion error")
	} else if ee, ok := err.(*ir.Error); !ok || ee.Code != ir.Recursion {
		t.Fatalf("err = %v, want Recursion", err)
	}
}

func TestGetSpecConstantValue(t *testing.T) {
	e := New(i32Module())
	v, err := e.GetSpecConstantValue(0)
	if err != nil {
		t.Fatalf("GetSpecConstantValue: %v", err)
	}
	if got := v.(ir.ScalarI32).Value; got != 10 {
		t.Fatalf("spec 0's default = %d, want 10", got)
	}

	if err := e.SetSpecConstant(0, ir.ScalarI32{Value: 42}); err != nil {
		t.Fatalf("SetSpecConstant: %v", err)
	}
	v, err = e.GetSpecConstantValue(0)
	if err != nil {
		t.Fatalf("GetSpecConstantValue after override: %v", err)
	}
	if got := v.(ir.ScalarI32).Value; got != 42 {
		t.Fatalf("spec 0 after override = %d, want 42", got)
	}

	if _, err := e.GetSpecConstantValue(99); err == nil {
		t.Fatal("expected an error for an unknown SpecId")
	} else if ee, ok := err.(*ir.Error); !ok || ee.Code != ir.ElementNotFound {
		t.Fatalf("err = %v, want ElementNotFound", err)
	}
}

func TestIsRelatedToSpecID(t *testing.T) {
	e := New(i32Module())

	related, err := e.IsRelatedToSpecID(12, 0)
	if err != nil {
		t.Fatalf("IsRelatedToSpecID(sum, spec 0): %v", err)
	}
	if !related {
		t.Fatal("the IAdd result should be related to spec 0")
	}

	related, err = e.IsRelatedToSpecID(12, 1)
	if err != nil {
		t.Fatalf("IsRelatedToSpecID(sum, spec 1): %v", err)
	}
	if !related {
		t.Fatal("the IAdd result should be related to spec 1")
	}

	related, err = e.IsRelatedToSpecID(10, 0)
	if err != nil {
		t.Fatalf("IsRelatedToSpecID(spec 0's own id, spec 0): %v", err)
	}
	if !related {
		t.Fatal("a spec constant should be related to its own SpecId")
	}

	related, err = e.IsRelatedToSpecID(11, 0)
	if err != nil {
		t.Fatalf("IsRelatedToSpecID(spec 1's own id, spec 0): %v", err)
	}
	if related {
		t.Fatal("an unrelated spec constant should not report related")
	}

	if _, err := e.IsRelatedToSpecID(12, 99); err == nil {
		t.Fatal("expected an error for an unknown SpecId")
	} else if ee, ok := err.(*ir.Error); !ok || ee.Code != ir.ElementNotFound {
		t.Fatalf("err = %v, want ElementNotFound", err)
	}
}

func TestDuplicateEvaluation_IsIndependent(t *testing.T) {
	e := New(i32Module())
	if _, err := e.Evaluate(12); err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	dup := e.DuplicateEvaluation()
	if err := e.SetSpecConstant(0, ir.ScalarI32{Value: 999}); err != nil {
		t.Fatalf("SetSpecConstant on original: %v", err)
	}

	got, err := e.Evaluate(12)
	if err != nil {
		t.Fatalf("Evaluate on original after override: %v", err)
	}
	if v := got.(ir.ScalarI32).Value; v != 1019 {
		t.Fatalf("original after override = %d, want 1019", v)
	}

	got, err = dup.Evaluate(12)
	if err != nil {
		t.Fatalf("Evaluate on duplicate: %v", err)
	}
	if v := got.(ir.ScalarI32).Value; v != 30 {
		t.Fatalf("duplicate should be unaffected by the original's override, got %d, want 30", v)
	}
}

func TestEvaluationInterface_GatesOnFlag(t *testing.T) {
	m := i32Module()
	if _, ok := EvaluationInterface(m); ok {
		t.Fatal("EvaluationInterface should refuse a module built without FlagEvaluateConstant")
	}

	m.Flags = ir.FlagEvaluateConstant
	e, ok := EvaluationInterface(m)
	if !ok {
		t.Fatal("EvaluationInterface should succeed once FlagEvaluateConstant is set")
	}
	if _, err := e.Evaluate(12); err != nil {
		t.Fatalf("Evaluate on the gated evaluator: %v", err)
	}
}

func TestGetSpecializationInfo_PacksLittleEndian(t *testing.T) {
	e := New(i32Module())
	entries, buf, err := e.GetSpecializationInfo()
	if err != nil {
		t.Fatalf("GetSpecializationInfo: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}
	if entries[0].ConstantID != 0 || entries[0].Offset != 0 || entries[0].Size != 4 {
		t.Fatalf("entries[0] = %+v, want {0, 0, 4}", entries[0])
	}
	if entries[1].ConstantID != 1 || entries[1].Offset != 4 || entries[1].Size != 4 {
		t.Fatalf("entries[1] = %+v, want {1, 4, 4}", entries[1])
	}
	if len(buf) != 8 {
		t.Fatalf("len(buf) = %d, want 8", len(buf))
	}
	if buf[0] != 10 || buf[4] != 20 {
		t.Fatalf("buf = %v, want 10 then 20 little-endian", buf)
	}
}
