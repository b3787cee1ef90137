package eval

import "github.com/gogpu/spirvreflect/ir"

// Evaluate recursively resolves resultID's value, memoizing per node and
// failing with ir.Recursion if evaluation revisits a node still in
// progress (spec.md §4.10: uninitialized -> pending -> working ->
// done|failed; "working" re-encountered is a recursion error).
func (e *Evaluator) Evaluate(resultID uint32) (ir.ScalarValue, error) {
	rec, ok := e.module.ConstantRecordBySpirvID(resultID)
	if !ok {
		return nil, ir.NewError(ir.InvalidIdReference, "id is not a constant-like instruction").WithID(resultID)
	}
	v, err := e.evalRecord(rec.ID)
	if err != nil {
		return nil, err
	}
	if v.isComposite() {
		return nil, ir.NewError(ir.InvalidType, "requested scalar evaluation of a composite constant").WithID(resultID)
	}
	return v.scalar, nil
}

// evalRecord is the memoized internal recursion, operating over the
// generic composite-or-scalar value type.
func (e *Evaluator) evalRecord(id ir.ConstantRecordID) (value, error) {
	n := e.nodes[id]
	switch n.state {
	case stateDone:
		return n.value, nil
	case stateFailed:
		return value{}, n.err
	case stateWorking:
		return value{}, ir.NewError(ir.Recursion, "constant evaluation cycle detected").WithID(n.rec.SpirvID)
	}

	n.state = stateWorking
	v, err := e.compute(n)
	if err != nil {
		n.state = stateFailed
		n.err = err
		return value{}, err
	}
	n.state = stateDone
	n.value = v
	return v, nil
}

func (e *Evaluator) evalOperand(spirvID uint32) (value, error) {
	rec, ok := e.module.ConstantRecordBySpirvID(spirvID)
	if !ok {
		return value{}, ir.NewError(ir.InvalidIdReference, "spec-constant operand is not itself constant-like").WithID(spirvID)
	}
	return e.evalRecord(rec.ID)
}

// compute dispatches on n.rec.Opcode; literal nodes were already resolved
// by New and never reach here in stateUninitialized.
func (e *Evaluator) compute(n *node) (value, error) {
	switch n.rec.Opcode {
	case 44, 51: // OpConstantComposite, OpSpecConstantComposite
		lanes := make([]value, 0, len(n.rec.IDOperands))
		for _, id := range n.rec.IDOperands {
			v, err := e.evalOperand(id)
			if err != nil {
				return value{}, err
			}
			lanes = append(lanes, v)
		}
		return value{lanes: lanes}, nil

	case 52: // OpSpecConstantOp
		return e.evalSpecConstantOp(n)

	default:
		return value{}, ir.NewError(ir.UnresolvedEvaluation, "constant-like opcode has no evaluation rule").WithID(n.rec.SpirvID)
	}
}

func (e *Evaluator) evalSpecConstantOp(n *node) (value, error) {
	sub := uint32(n.rec.SubOpcode)
	ids := n.rec.IDOperands
	resultTD, ok := e.module.TypeByID(n.rec.ResultType)
	if !ok {
		return value{}, ir.NewError(ir.InvalidType, "OpSpecConstantOp result type out of range").WithID(n.rec.SpirvID)
	}

	need := func(count int) error {
		if len(ids) < count {
			return ir.NewError(ir.InvalidInstruction, "OpSpecConstantOp missing operands").WithID(n.rec.SpirvID)
		}
		return nil
	}

	switch sub {
	case opUndef:
		return value{scalar: wrapScalar(*resultTD, 0, true)}, nil

	case opSNegate, opNot, opLogicalNot, opSConvert, opUConvert, opFConvert:
		if err := need(1); err != nil {
			return value{}, err
		}
		a, err := e.evalOperand(ids[0])
		if err != nil {
			return value{}, err
		}
		return applyUnary(sub, *resultTD, a)

	case opCompositeExtract:
		if err := need(1); err != nil {
			return value{}, err
		}
		base, err := e.evalOperand(ids[0])
		if err != nil {
			return value{}, err
		}
		return applyCompositeExtract(base, ids[1:])

	case opCompositeInsert:
		if err := need(2); err != nil {
			return value{}, err
		}
		obj, err := e.evalOperand(ids[0])
		if err != nil {
			return value{}, err
		}
		base, err := e.evalOperand(ids[1])
		if err != nil {
			return value{}, err
		}
		return applyCompositeInsert(base, obj, ids[2:])

	case opVectorShuffle:
		if err := need(2); err != nil {
			return value{}, err
		}
		a, err := e.evalOperand(ids[0])
		if err != nil {
			return value{}, err
		}
		b, err := e.evalOperand(ids[1])
		if err != nil {
			return value{}, err
		}
		return applyVectorShuffle(*resultTD, a, b, ids[2:])

	case opSelect:
		if err := need(3); err != nil {
			return value{}, err
		}
		cond, err := e.evalOperand(ids[0])
		if err != nil {
			return value{}, err
		}
		a, err := e.evalOperand(ids[1])
		if err != nil {
			return value{}, err
		}
		b, err := e.evalOperand(ids[2])
		if err != nil {
			return value{}, err
		}
		return applySelect(cond, a, b), nil

	default:
		if err := need(2); err != nil {
			return value{}, err
		}
		a, err := e.evalOperand(ids[0])
		if err != nil {
			return value{}, err
		}
		b, err := e.evalOperand(ids[1])
		if err != nil {
			return value{}, err
		}
		return applyBinary(sub, *resultTD, a, b)
	}
}

// SetSpecConstant overrides the default value of the specialization
// constant identified by specID, then marks every node that transitively
// depends on it stateUpdated so the next Evaluate recomputes instead of
// trusting the cache (spec.md §4.10).
func (e *Evaluator) SetSpecConstant(specID uint32, newValue ir.ScalarValue) error {
	recID, ok := e.bySpec[specID]
	if !ok {
		return ir.NewError(ir.ElementNotFound, "no specialization constant with that SpecId")
	}
	n := e.nodes[recID]
	n.value = value{scalar: newValue}
	n.state = stateDone
	e.propagateUpdated(recID, make(map[ir.ConstantRecordID]bool))
	return nil
}

func (e *Evaluator) propagateUpdated(id ir.ConstantRecordID, seen map[ir.ConstantRecordID]bool) {
	if seen[id] {
		return
	}
	seen[id] = true
	for _, dep := range e.nodes[id].dependents {
		dn := e.nodes[dep]
		if dn.state != stateUpdated {
			dn.state = stateUpdated
		}
		e.propagateUpdated(dep, seen)
	}
}

// GetSpecConstantValue returns the current value of the specialization
// constant identified by specID: its SetSpecConstant override if one was
// made, otherwise its module default.
func (e *Evaluator) GetSpecConstantValue(specID uint32) (ir.ScalarValue, error) {
	recID, ok := e.bySpec[specID]
	if !ok {
		return nil, ir.NewError(ir.ElementNotFound, "no specialization constant with that SpecId")
	}
	return e.Evaluate(e.nodes[recID].rec.SpirvID)
}

// IsRelatedToSpecID reports whether resultID's value derives, directly or
// transitively, from the specialization constant identified by specID: a
// forward reachability walk over the dependents DAG built in New.
func (e *Evaluator) IsRelatedToSpecID(resultID uint32, specID uint32) (bool, error) {
	specRecID, ok := e.bySpec[specID]
	if !ok {
		return false, ir.NewError(ir.ElementNotFound, "no specialization constant with that SpecId")
	}
	rec, ok := e.module.ConstantRecordBySpirvID(resultID)
	if !ok {
		return false, ir.NewError(ir.InvalidIdReference, "id is not a constant-like instruction").WithID(resultID)
	}
	if rec.ID == specRecID {
		return true, nil
	}

	seen := make(map[ir.ConstantRecordID]bool)
	var walk func(id ir.ConstantRecordID) bool
	walk = func(id ir.ConstantRecordID) bool {
		if seen[id] {
			return false
		}
		seen[id] = true
		for _, dep := range e.nodes[id].dependents {
			if dep == rec.ID || walk(dep) {
				return true
			}
		}
		return false
	}
	return walk(specRecID), nil
}

// DuplicateEvaluation deep-copies the evaluator's node state so a caller
// can try out SetSpecConstant overrides against one copy without
// disturbing another (spec.md §4.10's what-if binding).
func (e *Evaluator) DuplicateEvaluation() *Evaluator {
	dup := &Evaluator{
		module: e.module,
		nodes:  make(map[ir.ConstantRecordID]*node, len(e.nodes)),
		bySpec: make(map[uint32]ir.ConstantRecordID, len(e.bySpec)),
	}
	for id, n := range e.nodes {
		cp := *n
		cp.dependents = append([]ir.ConstantRecordID(nil), n.dependents...)
		dup.nodes[id] = &cp
	}
	for specID, recID := range e.bySpec {
		dup.bySpec[specID] = recID
	}
	return dup
}

// SpecializationEntry is one packed specialization constant, matching the
// Vulkan VkSpecializationMapEntry convention (spec.md §4.10).
type SpecializationEntry struct {
	ConstantID uint32
	Offset     uint32
	Size       uint32
}

// GetSpecializationInfo packs every specialization constant's current
// value into a contiguous byte buffer, little-endian, booleans occupying
// 4 bytes per the Vulkan convention. The returned buffer spans only from
// the first to the last specialized node.
func (e *Evaluator) GetSpecializationInfo() ([]SpecializationEntry, []byte, error) {
	if len(e.module.SpecConstants) == 0 {
		return nil, nil, nil
	}

	entries := make([]SpecializationEntry, 0, len(e.module.SpecConstants))
	var offset uint32
	raw := make(map[uint32][]byte, len(e.module.SpecConstants))

	for _, sc := range e.module.SpecConstants {
		val, err := e.Evaluate(sc.SpirvID)
		if err != nil {
			return nil, nil, err
		}
		bs, size := packScalar(val)
		entries = append(entries, SpecializationEntry{ConstantID: sc.ConstantID, Offset: offset, Size: size})
		raw[sc.ConstantID] = bs
		offset += size
	}

	buf := make([]byte, 0, offset)
	for _, e := range entries {
		buf = append(buf, raw[e.ConstantID]...)
	}
	return entries, buf, nil
}

func packScalar(v ir.ScalarValue) ([]byte, uint32) {
	switch s := v.(type) {
	case ir.ScalarBool:
		b := uint32(0)
		if s.Value {
			b = 1
		}
		return leBytes32(b), 4
	case ir.ScalarI32:
		return leBytes32(uint32(s.Value)), 4
	case ir.ScalarU32:
		return leBytes32(s.Value), 4
	case ir.ScalarF32:
		return leBytes32(uint32(s.Bits())), 4
	case ir.ScalarI64:
		return leBytes64(uint64(s.Value)), 8
	case ir.ScalarU64:
		return leBytes64(s.Value), 8
	case ir.ScalarF64:
		return leBytes64(s.Bits()), 8
	default:
		return leBytes32(0), 4
	}
}

func leBytes32(v uint32) []byte {
	return []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
}

func leBytes64(v uint64) []byte {
	return []byte{
		byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24),
		byte(v >> 32), byte(v >> 40), byte(v >> 48), byte(v >> 56),
	}
}
