package spirv

import "github.com/gogpu/spirvreflect/ir"

// blockBuilder carries the node graph (for struct member decorations,
// which SPIR-V attaches to the struct id, not the member's own type) and
// the type resolver (for shape) through the recursive block layout walk
// (C7, spec.md §4.7).
type blockBuilder struct {
	g  *graph
	tr *typeResolver
}

// memberCtx is everything build needs about a member's own decoration
// and its parent's layout context.
type memberCtx struct {
	name             string
	offset           uint32
	hasOffset        bool
	offsetWordOffset int64
	decFlags         ir.DecorationFlag
	matrixStride     uint32
	rowMajor         bool

	isRoot       bool
	isParentAoS  bool
	isParentRTA  bool
	parentAbsOff uint32
}

// buildBlockVariable builds the root BlockVariable for a uniform/storage
// buffer's struct type.
func buildBlockVariable(tr *typeResolver, rootType ir.TypeID) (*ir.BlockVariable, error) {
	bb := &blockBuilder{g: tr.g, tr: tr}
	bv, _, err := bb.build(rootType, memberCtx{isRoot: true})
	if err != nil {
		return nil, err
	}
	return &bv, nil
}

// build constructs one BlockVariable (and, for aggregates, its subtree),
// returning the variable and its own size in bytes (spec.md §4.7 walk 2).
func (bb *blockBuilder) build(typeID ir.TypeID, ctx memberCtx) (ir.BlockVariable, uint32, error) {
	if int(typeID) >= len(bb.tr.types) {
		return ir.BlockVariable{}, 0, ir.NewError(ir.InvalidType, "block member type out of range")
	}
	td := bb.tr.types[typeID]

	bv := ir.BlockVariable{
		Type:             typeID,
		Name:             ctx.name,
		DecorationFlags:  ctx.decFlags,
		OffsetWordOffset: ctx.offsetWordOffset,
		Unused:           true,
	}
	if ctx.hasOffset {
		bv.Offset = ctx.offset
	}

	switch {
	case ctx.isRoot:
		bv.AbsoluteOffset = 0
	case ctx.isParentAoS:
		bv.AbsoluteOffset = 0
	default:
		bv.AbsoluteOffset = bv.Offset + ctx.parentAbsOff
	}

	var size uint32

	switch {
	case td.TypeFlags.Has(ir.TypeFlagBool):
		size = 4

	case td.TypeFlags.Has(ir.TypeFlagInt) || td.TypeFlags.Has(ir.TypeFlagFloat):
		bv.Numeric = td.Numeric
		switch {
		case td.TypeFlags.Has(ir.TypeFlagMatrix):
			stride := ctx.matrixStride
			if stride == 0 {
				stride = td.Numeric.MatrixStride
			}
			bv.Numeric.MatrixStride = stride
			count := td.Numeric.MatrixColumnCount
			if ctx.rowMajor {
				count = td.Numeric.MatrixRowCount
			}
			size = stride * count
		case td.TypeFlags.Has(ir.TypeFlagVector):
			size = td.Numeric.VectorComponentCount * (td.Numeric.ScalarWidth / 8)
		default:
			size = td.Numeric.ScalarWidth / 8
		}

	case td.TypeFlags.Has(ir.TypeFlagArray):
		bv.Array = td.Array
		isRuntime := td.Array.Dims[0] == 0
		elemCtx := memberCtx{
			isParentAoS: bb.tr.types[td.Component].TypeFlags.Has(ir.TypeFlagStruct),
			isParentRTA: isRuntime,
			parentAbsOff: bv.AbsoluteOffset,
		}
		elem, elemSize, err := bb.build(td.Component, elemCtx)
		if err != nil {
			return ir.BlockVariable{}, 0, err
		}
		bv.Members = []ir.BlockVariable{elem}
		bv.Unused = elem.Unused
		if isRuntime {
			size = 0
		} else {
			count := uint32(1)
			for i := uint32(0); i < td.Array.DimCount; i++ {
				if td.Array.Dims[i] != 0 && td.Array.Dims[i] != ir.Invalid {
					count *= td.Array.Dims[i]
				}
			}
			size = td.Array.Stride * count
			_ = elemSize
		}

	case td.TypeFlags.Has(ir.TypeFlagStruct):
		spirvID := bb.tr.spirvIDForType(typeID)
		structNode, _ := bb.g.nodeFor(spirvID)

		var members []ir.BlockVariable
		allUnused := true
		for i, mtid := range td.Members {
			mdec := newDecorationRecord()
			name := ""
			if structNode != nil {
				if i < len(structNode.memberDecs) {
					mdec = structNode.memberDecs[i]
				}
				if i < len(structNode.memberNames) {
					name = structNode.memberNames[i]
				}
			}
			mctx := memberCtx{
				name:             name,
				offset:           mdec.offsetVal,
				hasOffset:        mdec.offsetVal != ir.Invalid,
				offsetWordOffset: int64(mdec.offsetWordOffset) * 4,
				decFlags:         mdec.flags,
				matrixStride:     mdec.matrixStride,
				rowMajor:         mdec.flags.Has(ir.DecorationRowMajor),
				isParentAoS:      false,
				isParentRTA:      false,
				parentAbsOff:     bv.AbsoluteOffset,
			}
			member, _, err := bb.build(mtid, mctx)
			if err != nil {
				return ir.BlockVariable{}, 0, err
			}
			if !member.Unused {
				allUnused = false
			}
			members = append(members, member)
		}

		// Walk-2 padded sizes: offset-difference for every member but the
		// last; the last rounds up to 16, unless this struct itself sits
		// inside a runtime array (then the trailing member's padded size
		// equals its own size, and the struct's own size collapses to 0).
		for i := 0; i < len(members)-1; i++ {
			members[i].PaddedSize = members[i+1].Offset - members[i].Offset
		}
		if n := len(members); n > 0 {
			last := &members[n-1]
			if ctx.isParentRTA {
				last.PaddedSize = last.Size
			} else {
				last.PaddedSize = roundUp16(last.Offset+last.Size) - last.Offset
			}
			if ctx.isParentRTA {
				size = 0
			} else {
				size = last.Offset + last.PaddedSize
			}
		}
		bv.Members = members
		bv.Unused = allUnused

	default:
		// Opaque/pointer types never appear as block members in valid
		// SPIR-V; treat as zero-size rather than failing the whole block.
	}

	bv.Size = size
	if bv.PaddedSize == 0 {
		bv.PaddedSize = size
	}
	return bv, size, nil
}

func roundUp16(v uint32) uint32 {
	return (v + 15) &^ 15
}

// markBlockUsage implements spec.md §4.7's usage-marking pass: for every
// access chain whose base id is the descriptor's own spirv id, walk its
// constant indices through the block's member/array tree and clear UNUSED
// on the reached node and everything beneath it. A chain shorter than the
// hierarchy marks everything below the stopping point, by construction
// (clearing a node clears it and its whole subtree).
func markBlockUsage(g *graph, block *ir.BlockVariable, descriptorSpirvID uint32) {
	for i := range g.nodes {
		n := &g.nodes[i]
		if !isAccessChainOp(n.opcode) || n.accessBaseID != descriptorSpirvID {
			continue
		}
		cur := block
		for _, idx := range n.accessIndices {
			if cur == nil {
				break
			}
			cur.Unused = false
			if !idx.isConstant {
				// Runtime index: everything reachable from here is used,
				// and there is no narrower node to descend into.
				break
			}
			if cur.Array.DimCount > 0 && len(cur.Members) == 1 {
				// Array: every element shares the one element node, so
				// the index value does not pick a different node.
				cur = &cur.Members[0]
				continue
			}
			if int(idx.value) >= len(cur.Members) {
				cur = nil
				break
			}
			cur = &cur.Members[idx.value]
		}
		if cur != nil {
			clearUnused(cur)
		}
	}
}

func clearUnused(bv *ir.BlockVariable) {
	bv.Unused = false
	for i := range bv.Members {
		clearUnused(&bv.Members[i])
	}
}
