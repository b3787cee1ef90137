package eval

import (
	"testing"

	"github.com/gogpu/spirvreflect/ir"
)

// compositeModule builds two 2-lane composites (a = [7, 9], b = [20, 30])
// out of OpConstant scalars, plus true/false bool constants for Select, wiring every
// OpSpecConstantOp this file exercises (CompositeExtract, CompositeInsert,
// VectorShuffle, Select) against them.
func compositeModule() *ir.Module {
	m := &ir.Module{
		Types: []ir.TypeDescription{
			{ID: 0, TypeFlags: ir.TypeFlagInt, Numeric: ir.NumericTraits{ScalarWidth: 32, Signed: true}},
			{ID: 1, TypeFlags: ir.TypeFlagBool},
		},
	}
	m.ConstantRecords = []ir.ConstantRecord{
		{ID: 0, SpirvID: 10, Opcode: 43, ResultType: 0, SpecID: ir.Invalid, Literals: []uint32{7}},
		{ID: 1, SpirvID: 11, Opcode: 43, ResultType: 0, SpecID: ir.Invalid, Literals: []uint32{9}},
		{ID: 2, SpirvID: 12, Opcode: 44, ResultType: 0, SpecID: ir.Invalid, IDOperands: []uint32{10, 11}}, // a = [7, 9]

		{ID: 3, SpirvID: 21, Opcode: 43, ResultType: 0, SpecID: ir.Invalid, Literals: []uint32{20}},
		{ID: 4, SpirvID: 22, Opcode: 43, ResultType: 0, SpecID: ir.Invalid, Literals: []uint32{30}},
		{ID: 5, SpirvID: 20, Opcode: 44, ResultType: 0, SpecID: ir.Invalid, IDOperands: []uint32{21, 22}}, // b = [20, 30]

		{ID: 6, SpirvID: 13, Opcode: 52, ResultType: 0, SpecID: ir.Invalid, SubOpcode: opCompositeExtract, IDOperands: []uint32{12, 1}},

		{ID: 7, SpirvID: 14, Opcode: 52, ResultType: 0, SpecID: ir.Invalid, SubOpcode: opCompositeInsert, IDOperands: []uint32{11, 12, 0}},    // insert 9 into a[0] -> [9, 9]
		{ID: 8, SpirvID: 15, Opcode: 52, ResultType: 0, SpecID: ir.Invalid, SubOpcode: opCompositeExtract, IDOperands: []uint32{14, 0}},       // a[0] after insert

		{ID: 9, SpirvID: 30, Opcode: 52, ResultType: 0, SpecID: ir.Invalid, SubOpcode: opVectorShuffle, IDOperands: []uint32{12, 20, 0, 2, ir.Invalid}},

		{ID: 10, SpirvID: 40, Opcode: 43, ResultType: 1, SpecID: ir.Invalid, Literals: []uint32{1}},
		{ID: 11, SpirvID: 41, Opcode: 52, ResultType: 0, SpecID: ir.Invalid, SubOpcode: opSelect, IDOperands: []uint32{40, 10, 11}}, // cond true -> id 10 (7)

		{ID: 12, SpirvID: 42, Opcode: 43, ResultType: 1, SpecID: ir.Invalid, Literals: []uint32{0}},
		{ID: 13, SpirvID: 43, Opcode: 52, ResultType: 0, SpecID: ir.Invalid, SubOpcode: opSelect, IDOperands: []uint32{42, 10, 11}}, // cond false -> id 11 (9)
	}
	m.IndexConstantRecords()
	return m
}

func TestEvaluate_CompositeExtract(t *testing.T) {
	e := New(compositeModule())
	v, err := e.Evaluate(13)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if got := v.(ir.ScalarI32).Value; got != 9 {
		t.Fatalf("a[1] = %d, want 9", got)
	}
}

func TestEvaluate_CompositeInsert(t *testing.T) {
	e := New(compositeModule())
	v, err := e.Evaluate(15)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if got := v.(ir.ScalarI32).Value; got != 9 {
		t.Fatalf("a[0] after inserting 9 = %d, want 9", got)
	}
}

func TestEvaluate_VectorShuffle(t *testing.T) {
	e := New(compositeModule())
	rec, ok := e.module.ConstantRecordBySpirvID(30)
	if !ok {
		t.Fatal("shuffle record missing from module")
	}
	v, err := e.evalRecord(rec.ID)
	if err != nil {
		t.Fatalf("evalRecord: %v", err)
	}
	if !v.isComposite() || len(v.lanes) != 3 {
		t.Fatalf("shuffle result = %+v, want a 3-lane composite", v)
	}
	if got := v.lanes[0].scalar.(ir.ScalarI32).Value; got != 7 {
		t.Fatalf("lane 0 = %d, want 7 (a[0])", got)
	}
	if got := v.lanes[1].scalar.(ir.ScalarI32).Value; got != 20 {
		t.Fatalf("lane 1 = %d, want 20 (b[0])", got)
	}
	if !v.lanes[2].scalar.IsUndefined() {
		t.Fatal("lane 2 should be undefined (0xFFFFFFFF index)")
	}
}

func TestEvaluate_Select(t *testing.T) {
	e := New(compositeModule())
	got, err := e.Evaluate(41)
	if err != nil {
		t.Fatalf("Evaluate(true select): %v", err)
	}
	if v := got.(ir.ScalarI32).Value; v != 7 {
		t.Fatalf("true select = %d, want 7", v)
	}

	got, err = e.Evaluate(43)
	if err != nil {
		t.Fatalf("Evaluate(false select): %v", err)
	}
	if v := got.(ir.ScalarI32).Value; v != 9 {
		t.Fatalf("false select = %d, want 9", v)
	}
}
