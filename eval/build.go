package eval

import "github.com/gogpu/spirvreflect/ir"

// literalOpcodes are the OpConstant*/OpSpecConstant* forms whose value is
// fully determined by their own literal words, needing no operand
// evaluation (spec.md §4.10 step 1). Every other constant-like opcode
// (OpConstantComposite/OpSpecConstantComposite/OpSpecConstantOp) derives
// its value from operand nodes and is computed lazily by Evaluate.
var literalOpcodes = map[uint16]bool{
	41: true, // OpConstantTrue
	42: true, // OpConstantFalse
	43: true, // OpConstant
	48: true, // OpSpecConstantTrue
	49: true, // OpSpecConstantFalse
	50: true, // OpSpecConstant
	46: true, // OpConstantNull
	45: true, // OpConstantSampler
}

// Evaluator builds and memoizes the spec-constant evaluation DAG over one
// ir.Module's ConstantRecords (spec.md §4.10).
type Evaluator struct {
	module *ir.Module
	nodes  map[ir.ConstantRecordID]*node
	bySpec map[uint32]ir.ConstantRecordID // SpecId -> record, for SetSpecConstant
}

// EvaluationInterface returns an Evaluator over m, but only when m was
// built with ir.FlagEvaluateConstant (spec.md §4.10: evaluation is opt-in,
// not built by default alongside the reflection tree). ok is false and the
// Evaluator nil otherwise.
func EvaluationInterface(m *ir.Module) (ev *Evaluator, ok bool) {
	if !m.Flags.Has(ir.FlagEvaluateConstant) {
		return nil, false
	}
	return New(m), true
}

// New builds an Evaluator over m's constant records. Construction never
// evaluates anything; it only materializes nodes and wires dependents.
// Callers that want to honor the module's opt-in flag should go through
// EvaluationInterface instead; New is exported for callers (and tests)
// that already know they want an evaluator regardless of how m was built.
func New(m *ir.Module) *Evaluator {
	e := &Evaluator{
		module: m,
		nodes:  make(map[ir.ConstantRecordID]*node, len(m.ConstantRecords)),
		bySpec: make(map[uint32]ir.ConstantRecordID),
	}
	for i := range m.ConstantRecords {
		rec := &m.ConstantRecords[i]
		n := &node{rec: rec}
		if literalOpcodes[rec.Opcode] {
			n.value, n.err = decodeLiteral(m, rec)
			if n.err != nil {
				n.state = stateFailed
			} else {
				n.state = stateDone
			}
		} else {
			n.state = stateUninitialized
		}
		e.nodes[rec.ID] = n
		if rec.SpecID != ir.Invalid {
			e.bySpec[rec.SpecID] = rec.ID
		}
	}
	// Wire dependents: every id operand of a non-literal record names
	// another record this one depends on.
	for i := range m.ConstantRecords {
		rec := &m.ConstantRecords[i]
		if literalOpcodes[rec.Opcode] {
			continue
		}
		for _, opID := range rec.IDOperands {
			if dep, ok := m.ConstantRecordBySpirvID(opID); ok {
				e.nodes[dep.ID].dependents = append(e.nodes[dep.ID].dependents, rec.ID)
			}
		}
	}
	return e
}

// decodeLiteral implements ParserGetScalarConstant for the literal-bearing
// opcodes (spec.md §4.10): a 32-bit scalar is one literal word, a 64-bit
// scalar is low|(high<<32). OpConstantTrue/False need no literal at all.
func decodeLiteral(m *ir.Module, rec *ir.ConstantRecord) (value, error) {
	switch rec.Opcode {
	case 41: // OpConstantTrue
		return value{scalar: ir.ScalarBool{Value: true}}, nil
	case 42: // OpConstantFalse
		return value{scalar: ir.ScalarBool{Value: false}}, nil
	case 48: // OpSpecConstantTrue
		return value{scalar: ir.ScalarBool{Value: true}}, nil
	case 49: // OpSpecConstantFalse
		return value{scalar: ir.ScalarBool{Value: false}}, nil
	case 46: // OpConstantNull
		return value{scalar: ir.ScalarU32{Value: 0}}, nil
	case 45: // OpConstantSampler: opaque to arithmetic evaluation
		return value{scalar: ir.ScalarU32{Value: 0, Undefined: true}}, nil
	}

	td, ok := m.TypeByID(rec.ResultType)
	if !ok {
		return value{}, ir.NewError(ir.InvalidType, "constant's result type id out of range").WithID(rec.SpirvID)
	}
	return value{scalar: decodeScalarFromTraits(*td, rec.Literals)}, nil
}
