package spirv

import "github.com/gogpu/spirvreflect/ir"

// typeResolver builds the TypeDescription arena (C4, spec.md §4.4) by
// recursively resolving every OpType* node reachable from the ones it is
// asked about, memoizing by spirv id so each id occupies exactly one
// arena slot (spec.md §3 invariant).
type typeResolver struct {
	g        *graph
	types    []ir.TypeDescription
	idToType map[uint32]ir.TypeID
	// spirvIDOf is the reverse of idToType: the spirv id each TypeID was
	// built from, needed by the block layouter to fetch a struct type's
	// own member-decoration records from the node graph.
	spirvIDOf []uint32
}

func newTypeResolver(g *graph) *typeResolver {
	return &typeResolver{g: g, idToType: make(map[uint32]ir.TypeID, g.bound/2+1)}
}

// resolve returns the dense TypeID for the OpType* instruction that
// produced spirvID, building it (and anything it depends on) on demand.
func (tr *typeResolver) resolve(spirvID uint32) (ir.TypeID, error) {
	if tid, ok := tr.idToType[spirvID]; ok {
		return tid, nil
	}
	n, ok := tr.g.nodeFor(spirvID)
	if !ok {
		return 0, ir.NewError(ir.InvalidIdReference, "type id not found").WithID(spirvID)
	}
	// OpTypeForwardPointer never reaches here: it declares no result id of
	// its own (see buildNodes), so nodeFor only ever returns the later,
	// real OpTypePointer sharing that id. An id forward-declared but never
	// actually defined has no node and fails the InvalidIdReference check
	// above.
	if !isTypeOp(n.opcode) {
		return 0, ir.NewError(ir.InvalidType, "id does not name an OpType* instruction").WithID(spirvID)
	}

	// Reserve this id's arena slot and memoize it before descending into
	// any member/component type. A struct reached through a
	// forward-declared pointer (OpTypeForwardPointer) can recurse back to
	// its own spirv id via a member's pointer type; without the slot
	// already registered, that second resolve(spirvID) call would recurse
	// forever instead of finding the in-progress id and returning.
	tid := ir.TypeID(len(tr.types))
	tr.types = append(tr.types, ir.TypeDescription{ID: tid, Opcode: uint16(n.opcode), TypeName: n.name})
	tr.idToType[spirvID] = tid
	tr.spirvIDOf = append(tr.spirvIDOf, spirvID)

	td := ir.TypeDescription{ID: tid, Opcode: uint16(n.opcode), TypeName: n.name}

	switch n.opcode {
	case OpTypeVoid:
		td.TypeFlags = ir.TypeFlagVoid

	case OpTypeBool:
		td.TypeFlags = ir.TypeFlagBool

	case OpTypeInt:
		td.TypeFlags = ir.TypeFlagInt
		td.Numeric.ScalarWidth = n.scalarWidth
		td.Numeric.Signed = n.scalarSigned

	case OpTypeFloat:
		td.TypeFlags = ir.TypeFlagFloat
		td.Numeric.ScalarWidth = n.scalarWidth

	case OpTypeVector:
		compID, err := tr.resolve(n.componentType)
		if err != nil {
			return 0, err
		}
		comp := tr.types[compID]
		td.TypeFlags = ir.TypeFlagVector | (comp.TypeFlags & (ir.TypeFlagBool | ir.TypeFlagInt | ir.TypeFlagFloat))
		td.Numeric = comp.Numeric
		td.Numeric.VectorComponentCount = n.componentCount
		td.Component = compID
		td.HasComponent = true

	case OpTypeMatrix:
		colID, err := tr.resolve(n.componentType)
		if err != nil {
			return 0, err
		}
		col := tr.types[colID]
		td.TypeFlags = ir.TypeFlagMatrix | (col.TypeFlags & (ir.TypeFlagBool | ir.TypeFlagInt | ir.TypeFlagFloat))
		td.Numeric = col.Numeric
		td.Numeric.MatrixColumnCount = n.componentCount
		td.Numeric.MatrixRowCount = col.Numeric.VectorComponentCount
		td.Component = colID
		td.HasComponent = true

	case OpTypeImage:
		td.TypeFlags = ir.TypeFlagExternalImage
		td.Image = n.image

	case OpTypeSampler:
		td.TypeFlags = ir.TypeFlagExternalSampler

	case OpTypeSampledImage:
		td.TypeFlags = ir.TypeFlagExternalSampledImage
		imgID, err := tr.resolve(n.operandIDs[0])
		if err != nil {
			return 0, err
		}
		td.Component = imgID
		td.HasComponent = true
		td.Image = tr.types[imgID].Image

	case OpTypeArray:
		elemID, err := tr.resolve(n.arrayElementType)
		if err != nil {
			return 0, err
		}
		td.TypeFlags = ir.TypeFlagArray
		td.Component = elemID
		td.HasComponent = true
		length, specID, err := tr.resolveArrayLength(n.arrayLengthID)
		if err != nil {
			return 0, err
		}
		td.Array.DimCount = 1
		td.Array.Dims[0] = length
		td.Array.SpecConstantOpIDs[0] = specID
		td.Array.Stride = n.dec.arrayStride

	case OpTypeRuntimeArray:
		elemID, err := tr.resolve(n.arrayElementType)
		if err != nil {
			return 0, err
		}
		td.TypeFlags = ir.TypeFlagArray
		td.Component = elemID
		td.HasComponent = true
		td.Array.DimCount = 1
		td.Array.Dims[0] = 0
		td.Array.Stride = n.dec.arrayStride

	case OpTypeStruct:
		td.TypeFlags = ir.TypeFlagStruct
		td.DecorationFlags = n.dec.flags
		if n.dec.flags.Has(ir.DecorationBlock) || n.dec.flags.Has(ir.DecorationBufferBlock) {
			td.TypeFlags |= ir.TypeFlagExternalBlock
		}
		for i, m := range n.memberTypes {
			mid, err := tr.resolve(m)
			if err != nil {
				return 0, err
			}
			td.Members = append(td.Members, mid)
			td.DecorationFlags |= tr.types[mid].DecorationFlags
			if i < len(n.memberDecs) {
				td.DecorationFlags |= n.memberDecs[i].flags
			}
		}

	case OpTypeOpaque:
		// Opaque types carry no further structure the reflector needs.

	case OpTypePointer:
		pointeeID, err := tr.resolve(n.pointeeType)
		if err != nil {
			return 0, err
		}
		td.StorageClass = n.storageClass
		td.Component = pointeeID
		td.HasComponent = true

	case OpTypeFunction:
		// Function types are never a reflection surface on their own;
		// kept as an empty description so any reference resolves.

	default:
		return 0, ir.NewError(ir.InvalidType, "unsupported OpType* opcode").WithID(spirvID)
	}

	tr.types[tid] = td
	return tid, nil
}

// spirvIDForType returns the spirv result id a TypeID was built from.
func (tr *typeResolver) spirvIDForType(tid ir.TypeID) uint32 {
	if int(tid) >= len(tr.spirvIDOf) {
		return 0
	}
	return tr.spirvIDOf[tid]
}

// resolveArrayLength dereferences an array length operand id: a plain
// OpConstant yields a literal length; an OpSpecConstant/OpSpecConstantOp
// yields the Invalid sentinel length plus the length id itself, so the
// evaluator can materialize it later (spec.md §4.4).
func (tr *typeResolver) resolveArrayLength(lengthID uint32) (length uint32, specID uint32, err error) {
	n, ok := tr.g.nodeFor(lengthID)
	if !ok {
		return 0, 0, ir.NewError(ir.InvalidIdReference, "array length id not found").WithID(lengthID)
	}
	switch n.opcode {
	case OpConstant:
		if len(n.literals) >= 1 {
			return n.literals[0], 0, nil
		}
		return 0, 0, ir.NewError(ir.InvalidInstruction, "OpConstant array length missing literal").WithID(lengthID)
	case OpSpecConstant, OpSpecConstantOp:
		return ir.Invalid, lengthID, nil
	default:
		return 0, 0, ir.NewError(ir.InvalidType, "array length id is neither OpConstant nor a spec constant").WithID(lengthID)
	}
}
