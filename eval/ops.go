package eval

import (
	"math"

	"github.com/gogpu/spirvreflect/ir"
)

// decodeScalarFromTraits mirrors spirv.decodeScalarLiteral: a 64-bit
// scalar is low|(high<<32), a 32-bit scalar is its own single word.
func decodeScalarFromTraits(td ir.TypeDescription, literals []uint32) ir.ScalarValue {
	wide := td.Numeric.ScalarWidth == 64
	var bits uint64
	if wide && len(literals) >= 2 {
		bits = uint64(literals[0]) | uint64(literals[1])<<32
	} else if len(literals) >= 1 {
		bits = uint64(literals[0])
	}
	switch {
	case td.TypeFlags.Has(ir.TypeFlagFloat) && wide:
		return ir.ScalarF64{Value: math.Float64frombits(bits)}
	case td.TypeFlags.Has(ir.TypeFlagFloat):
		return ir.ScalarF32{Value: math.Float32frombits(uint32(bits))}
	case td.TypeFlags.Has(ir.TypeFlagInt) && wide && td.Numeric.Signed:
		return ir.ScalarI64{Value: int64(bits)}
	case td.TypeFlags.Has(ir.TypeFlagInt) && wide:
		return ir.ScalarU64{Value: bits}
	case td.TypeFlags.Has(ir.TypeFlagInt) && td.Numeric.Signed:
		return ir.ScalarI32{Value: int32(uint32(bits))}
	case td.TypeFlags.Has(ir.TypeFlagBool):
		return ir.ScalarBool{Value: bits != 0}
	default:
		return ir.ScalarU32{Value: uint32(bits)}
	}
}

// wrapScalar builds a ScalarValue of resultTD's kind from a raw bit
// pattern, propagating undefined.
func wrapScalar(resultTD ir.TypeDescription, bits uint64, undefined bool) ir.ScalarValue {
	wide := resultTD.Numeric.ScalarWidth == 64
	switch {
	case resultTD.TypeFlags.Has(ir.TypeFlagBool):
		return ir.ScalarBool{Value: bits != 0, Undefined: undefined}
	case resultTD.TypeFlags.Has(ir.TypeFlagFloat) && wide:
		return ir.ScalarF64{Value: math.Float64frombits(bits), Undefined: undefined}
	case resultTD.TypeFlags.Has(ir.TypeFlagFloat):
		return ir.ScalarF32{Value: math.Float32frombits(uint32(bits)), Undefined: undefined}
	case wide && resultTD.Numeric.Signed:
		return ir.ScalarI64{Value: int64(bits), Undefined: undefined}
	case wide:
		return ir.ScalarU64{Value: bits, Undefined: undefined}
	case resultTD.Numeric.Signed:
		return ir.ScalarI32{Value: int32(uint32(bits)), Undefined: undefined}
	default:
		return ir.ScalarU32{Value: uint32(bits), Undefined: undefined}
	}
}

// applyUnary evaluates a single-operand wrapped opcode over a (possibly
// per-lane, for vectors) operand value.
func applyUnary(subOp uint32, resultTD ir.TypeDescription, a value) (value, error) {
	if a.isComposite() {
		out := make([]value, len(a.lanes))
		for i, lane := range a.lanes {
			v, err := applyUnary(subOp, resultTD, lane)
			if err != nil {
				return value{}, err
			}
			out[i] = v
		}
		return value{lanes: out}, nil
	}

	s := a.scalar
	undef := s.IsUndefined()

	switch subOp {
	case opUndef:
		return value{scalar: wrapScalar(resultTD, 0, true)}, nil
	case opSNegate:
		return value{scalar: wrapScalar(resultTD, uint64(-int64(s.Bits())), undef)}, nil
	case opNot:
		return value{scalar: wrapScalar(resultTD, ^s.Bits(), undef)}, nil
	case opLogicalNot:
		return value{scalar: ir.ScalarBool{Value: s.Bits() == 0, Undefined: undef}}, nil
	case opSConvert, opUConvert, opFConvert:
		return value{scalar: convertScalar(resultTD, s)}, nil
	default:
		return value{}, ir.NewError(ir.UnresolvedEvaluation, "unsupported unary spec-constant opcode")
	}
}

func convertScalar(resultTD ir.TypeDescription, s ir.ScalarValue) ir.ScalarValue {
	undef := s.IsUndefined()
	if resultTD.TypeFlags.Has(ir.TypeFlagFloat) {
		var f float64
		switch v := s.(type) {
		case ir.ScalarF32:
			f = float64(v.Value)
		case ir.ScalarF64:
			f = v.Value
		case ir.ScalarI32:
			f = float64(v.Value)
		case ir.ScalarU32:
			f = float64(v.Value)
		case ir.ScalarI64:
			f = float64(v.Value)
		case ir.ScalarU64:
			f = float64(v.Value)
		}
		if resultTD.Numeric.ScalarWidth == 64 {
			return ir.ScalarF64{Value: f, Undefined: undef}
		}
		return ir.ScalarF32{Value: float32(f), Undefined: undef}
	}
	bits := s.Bits()
	return wrapScalar(resultTD, bits, undef)
}

// applyBinary evaluates a two-operand wrapped opcode, zipping per-lane for
// vector operands (spec.md §4.10).
func applyBinary(subOp uint32, resultTD ir.TypeDescription, a, b value) (value, error) {
	if a.isComposite() || b.isComposite() {
		la, lb := a.lanes, b.lanes
		n := len(la)
		if len(lb) > n {
			n = len(lb)
		}
		out := make([]value, 0, n)
		for i := 0; i < n; i++ {
			av, bv := a, b
			if a.isComposite() {
				av = a.lanes[i]
			}
			if b.isComposite() {
				bv = b.lanes[i]
			}
			v, err := applyBinary(subOp, resultTD, av, bv)
			if err != nil {
				return value{}, err
			}
			out = append(out, v)
		}
		return value{lanes: out}, nil
	}

	x, y := a.scalar, b.scalar
	undef := x.IsUndefined() || y.IsUndefined()
	width := resultTD.Numeric.ScalarWidth
	if width == 0 {
		width = 32
	}
	xb, yb := x.Bits(), y.Bits()

	switch subOp {
	case opIAdd:
		return value{scalar: wrapScalar(resultTD, xb+yb, undef)}, nil
	case opISub:
		return value{scalar: wrapScalar(resultTD, xb-yb, undef)}, nil
	case opIMul:
		return value{scalar: wrapScalar(resultTD, xb*yb, undef)}, nil
	case opUDiv:
		if yb == 0 {
			return value{scalar: wrapScalar(resultTD, 0, true)}, nil
		}
		return value{scalar: wrapScalar(resultTD, xb/yb, undef)}, nil
	case opSDiv:
		sx, sy := signExtend(xb, width), signExtend(yb, width)
		minVal := signExtend(uint64(1)<<(width-1), width)
		if sy == 0 || (sx == minVal && sy == -1) {
			return value{scalar: wrapScalar(resultTD, 0, true)}, nil
		}
		return value{scalar: wrapScalar(resultTD, uint64(sx/sy), undef)}, nil
	case opUMod:
		if yb == 0 {
			return value{scalar: wrapScalar(resultTD, 0, true)}, nil
		}
		return value{scalar: wrapScalar(resultTD, xb%yb, undef)}, nil
	case opSRem:
		sx, sy := signExtend(xb, width), signExtend(yb, width)
		if sy == 0 {
			return value{scalar: wrapScalar(resultTD, 0, true)}, nil
		}
		return value{scalar: wrapScalar(resultTD, uint64(sx%sy), undef)}, nil
	case opSMod:
		sx, sy := signExtend(xb, width), signExtend(yb, width)
		if sy == 0 {
			return value{scalar: wrapScalar(resultTD, 0, true)}, nil
		}
		r := sx % sy
		if r != 0 && (r < 0) != (sy < 0) {
			r += sy
		}
		return value{scalar: wrapScalar(resultTD, uint64(r), undef)}, nil
	case opShiftRightLogical:
		if yb >= uint64(width) {
			return value{scalar: wrapScalar(resultTD, 0, true)}, nil
		}
		return value{scalar: wrapScalar(resultTD, maskWidth(xb, width)>>yb, undef)}, nil
	case opShiftRightArithmetic:
		if yb >= uint64(width) {
			return value{scalar: wrapScalar(resultTD, 0, true)}, nil
		}
		sx := signExtend(xb, width)
		return value{scalar: wrapScalar(resultTD, uint64(sx>>yb), undef)}, nil
	case opShiftLeftLogical:
		if yb >= uint64(width) {
			return value{scalar: wrapScalar(resultTD, 0, true)}, nil
		}
		return value{scalar: wrapScalar(resultTD, maskWidth(xb<<yb, width), undef)}, nil
	case opBitwiseOr:
		return value{scalar: wrapScalar(resultTD, xb|yb, undef)}, nil
	case opBitwiseXor:
		return value{scalar: wrapScalar(resultTD, xb^yb, undef)}, nil
	case opBitwiseAnd:
		return value{scalar: wrapScalar(resultTD, xb&yb, undef)}, nil
	case opLogicalOr:
		return value{scalar: ir.ScalarBool{Value: xb != 0 || yb != 0, Undefined: undef}}, nil
	case opLogicalAnd:
		return value{scalar: ir.ScalarBool{Value: xb != 0 && yb != 0, Undefined: undef}}, nil
	case opLogicalEqual:
		return value{scalar: ir.ScalarBool{Value: (xb != 0) == (yb != 0), Undefined: undef}}, nil
	case opLogicalNotEqual:
		return value{scalar: ir.ScalarBool{Value: (xb != 0) != (yb != 0), Undefined: undef}}, nil
	case opIEqual:
		return value{scalar: ir.ScalarBool{Value: xb == yb, Undefined: undef}}, nil
	case opINotEqual:
		return value{scalar: ir.ScalarBool{Value: xb != yb, Undefined: undef}}, nil
	case opULessThan:
		return value{scalar: ir.ScalarBool{Value: xb < yb, Undefined: undef}}, nil
	case opSLessThan:
		return value{scalar: ir.ScalarBool{Value: signExtend(xb, width) < signExtend(yb, width), Undefined: undef}}, nil
	case opUGreaterThan:
		return value{scalar: ir.ScalarBool{Value: xb > yb, Undefined: undef}}, nil
	case opSGreaterThan:
		return value{scalar: ir.ScalarBool{Value: signExtend(xb, width) > signExtend(yb, width), Undefined: undef}}, nil
	case opULessThanEqual:
		return value{scalar: ir.ScalarBool{Value: xb <= yb, Undefined: undef}}, nil
	case opSLessThanEqual:
		return value{scalar: ir.ScalarBool{Value: signExtend(xb, width) <= signExtend(yb, width), Undefined: undef}}, nil
	case opUGreaterThanEqual:
		return value{scalar: ir.ScalarBool{Value: xb >= yb, Undefined: undef}}, nil
	case opSGreaterThanEqual:
		return value{scalar: ir.ScalarBool{Value: signExtend(xb, width) >= signExtend(yb, width), Undefined: undef}}, nil
	default:
		return value{}, ir.NewError(ir.UnresolvedEvaluation, "unsupported binary spec-constant opcode")
	}
}

func signExtend(bits uint64, width uint32) int64 {
	if width >= 64 {
		return int64(bits)
	}
	shift := 64 - width
	return int64(bits<<shift) >> shift
}

func maskWidth(bits uint64, width uint32) uint64 {
	if width >= 64 {
		return bits
	}
	return bits & ((uint64(1) << width) - 1)
}

// applySelect implements the Select wrapped opcode: a per-lane boolean
// selector chooses between two composite/scalar operands.
func applySelect(cond, a, b value) value {
	if cond.isComposite() {
		out := make([]value, len(cond.lanes))
		for i := range cond.lanes {
			av, bv := a, b
			if a.isComposite() {
				av = a.lanes[i]
			}
			if b.isComposite() {
				bv = b.lanes[i]
			}
			out[i] = applySelect(cond.lanes[i], av, bv)
		}
		return value{lanes: out}
	}
	if cond.scalar.Bits() != 0 {
		return a
	}
	return b
}

// applyCompositeExtract walks indices through a composite value.
func applyCompositeExtract(base value, indices []uint32) (value, error) {
	cur := base
	for _, idx := range indices {
		if !cur.isComposite() || int(idx) >= len(cur.lanes) {
			return value{}, ir.NewError(ir.InvalidInstruction, "CompositeExtract index out of range")
		}
		cur = cur.lanes[idx]
	}
	return cur, nil
}

// applyCompositeInsert mutates a copy of base, setting the value reached
// by indices to obj.
func applyCompositeInsert(base, obj value, indices []uint32) (value, error) {
	if len(indices) == 0 {
		return obj, nil
	}
	if !base.isComposite() || int(indices[0]) >= len(base.lanes) {
		return value{}, ir.NewError(ir.InvalidInstruction, "CompositeInsert index out of range")
	}
	out := value{lanes: append([]value(nil), base.lanes...)}
	child, err := applyCompositeInsert(base.lanes[indices[0]], obj, indices[1:])
	if err != nil {
		return value{}, err
	}
	out.lanes[indices[0]] = child
	return out, nil
}

// applyVectorShuffle concatenates a's and b's lanes logically and selects
// by index, with 0xFFFFFFFF producing an undefined lane (spec.md §4.10).
func applyVectorShuffle(resultTD ir.TypeDescription, a, b value, indices []uint32) (value, error) {
	aLanes := a.lanes
	if !a.isComposite() {
		aLanes = []value{a}
	}
	bLanes := b.lanes
	if !b.isComposite() {
		bLanes = []value{b}
	}
	total := uint32(len(aLanes) + len(bLanes))

	out := make([]value, len(indices))
	for i, idx := range indices {
		if idx == ir.Invalid {
			out[i] = value{scalar: wrapScalar(resultTD, 0, true)}
			continue
		}
		if idx >= total {
			return value{}, ir.NewError(ir.InvalidInstruction, "VectorShuffle index out of range")
		}
		if idx < uint32(len(aLanes)) {
			out[i] = aLanes[idx]
		} else {
			out[i] = bLanes[idx-uint32(len(aLanes))]
		}
	}
	return value{lanes: out}, nil
}
