package spirv

import "github.com/gogpu/spirvreflect/ir"

// decorationRecord accumulates the closed whitelist of decorations from
// spec.md §4.3, plus the word offset of each Binding/DescriptorSet/
// Location/Offset/SpecId literal so the C11 edit API can rewrite exactly
// one word later.
type decorationRecord struct {
	flags ir.DecorationFlag

	set, setWordOffset         uint32
	binding, bindingWordOffset uint32
	location, locationWordOffset uint32
	offsetVal, offsetWordOffset uint32
	specID, specIDWordOffset     uint32
	inputAttachmentIndex         uint32

	arrayStride  uint32
	matrixStride uint32

	builtIn    ir.BuiltIn
	hasBuiltIn bool

	semantic string

	hlslCounterBufferID uint32
	hasHlslCounterBuffer bool
}

func newDecorationRecord() decorationRecord {
	return decorationRecord{
		set: ir.Invalid, binding: ir.Invalid, location: ir.Invalid,
		offsetVal: ir.Invalid, specID: ir.Invalid, inputAttachmentIndex: ir.Invalid,
		builtIn: ir.BuiltInNone,
	}
}

// accessIndex is one index operand of an access chain: either a constant
// literal value (resolved through OpConstant) or a runtime-indexed
// sentinel (spec.md §4.3).
type accessIndex struct {
	isConstant bool
	value      uint32
}

// node is the per-instruction record C3 populates.
type node struct {
	offset uint32
	opcode Op

	resultID     uint32
	resultTypeID uint32

	// Generic operand words, in instruction order, after result/type ids
	// have been stripped. Opcode-specific fields below cover the common
	// cases; operandIDs remains available for anything else that needs
	// raw access (e.g. OpTypeStruct member lists double here too).
	operandIDs []uint32

	hasStorageClass bool
	storageClass    ir.StorageClass

	// OpTypeInt / OpTypeFloat
	scalarWidth uint32
	scalarSigned bool

	// OpTypeVector / OpTypeMatrix: componentType is the scalar (vector)
	// or column-vector (matrix) type id.
	componentType  uint32
	componentCount uint32

	// OpTypeImage
	image            ir.ImageTraits
	imageSampledType uint32

	// OpTypePointer
	pointeeType uint32

	// OpTypeArray / OpTypeRuntimeArray
	arrayElementType uint32
	arrayLengthID    uint32 // 0 for OpTypeRuntimeArray

	// OpTypeStruct
	memberTypes []uint32

	// OpVariable
	hasInitializer bool

	// OpConstant / OpSpecConstant: decoded little/big word literal value
	literals []uint32

	// OpName / OpMemberName
	name        string
	memberNames []string

	dec        decorationRecord
	memberDecs []decorationRecord

	// OpAccessChain family
	accessBaseID  uint32
	accessIndices []accessIndex

	// OpFunctionCall
	calleeID uint32
}

// entryPointRaw is the unprocessed OpEntryPoint payload; C8 turns this
// into an ir.EntryPoint once the node graph and type resolver have run.
type entryPointRaw struct {
	offset         uint32
	executionModel ir.ExecutionModel
	functionID     uint32
	name           string
	interfaceIDs   []uint32
}

// executionModeRaw is one OpExecutionMode/OpExecutionModeId instruction.
type executionModeRaw struct {
	entryPointID uint32
	mode         ir.ExecutionMode
	operands     []uint32
}

// functionRaw accumulates one function definition's raw call/access facts
// as buildNodes walks its body, for the function analyzer (C5) to sort,
// dedupe, and cross-link (spec.md §4.5).
type functionRaw struct {
	id       uint32
	callees  []uint32
	accessed []uint32
}

// pendingAnnotation is an OpName/OpMemberName/OpDecorate*/OpMemberDecorate*
// instruction saved for the second pass, since its target's node may not
// exist yet the first time buildNodes sees it (spec.md §4.3's debug and
// annotation sections precede the types-and-variables section).
type pendingAnnotation struct {
	offset    uint32
	opcode    Op
	wordCount uint32
	ops       []uint32
}

// graph is the complete C3 output: the node array, a dense id->node
// index, and everything gathered from id-less instructions
// (OpEntryPoint, OpExecutionMode, OpCapability, OpSource...).
type graph struct {
	bound    uint32
	nodes    []node
	nodeByID []int32 // size bound; -1 when absent

	// instrByOffset maps an instruction's header word offset to the
	// index of the node built from it, for instructions that got one.
	instrByOffset map[uint32]int

	entryPoints    []entryPointRaw
	executionModes []executionModeRaw
	capabilities   []ir.Capability

	sourceLanguage ir.SourceLanguage
	sourceVersion  uint32
	sourceString   string

	functions []functionRaw

	// workgroupSizeCompositeID is the result id of an
	// OpConstantComposite/OpSpecConstantComposite decorated BuiltIn
	// WorkgroupSize, if any (spec.md §4.8).
	workgroupSizeCompositeID uint32
	hasWorkgroupSizeComposite bool

	constantLikeOrder []uint32 // spirv ids of constant-like nodes, in encounter order
}

func (g *graph) nodeFor(id uint32) (*node, bool) {
	if id == 0 || id >= g.bound {
		return nil, false
	}
	idx := g.nodeByID[id]
	if idx < 0 {
		return nil, false
	}
	return &g.nodes[idx], true
}

func (g *graph) ensureMemberDecs(n *node, member uint32) *decorationRecord {
	for uint32(len(n.memberDecs)) <= member {
		n.memberDecs = append(n.memberDecs, newDecorationRecord())
	}
	return &n.memberDecs[member]
}

func (g *graph) ensureMemberName(n *node, member uint32) {
	for uint32(len(n.memberNames)) <= member {
		n.memberNames = append(n.memberNames, "")
	}
}

// buildNodes is the C3 pass: it walks every instruction span found by
// preScan and populates a node per result-id-bearing instruction, applies
// decorations/names to their targets, and records id-less instructions
// that later components need (entry points, execution modes,
// capabilities, source info).
func buildNodes(r *wordReader, scan *scanResult) (*graph, error) {
	g := &graph{
		bound:         scan.bound,
		nodes:         make([]node, 0, len(scan.instructions)),
		nodeByID:      make([]int32, scan.bound),
		instrByOffset: make(map[uint32]int, len(scan.instructions)),
	}
	for i := range g.nodeByID {
		g.nodeByID[i] = -1
	}

	var curFunction *functionRaw
	var sawLabel bool
	var pending []pendingAnnotation

	for _, instr := range scan.instructions {
		ops := make([]uint32, instr.wordCount-1)
		for i := range ops {
			w, err := r.readU32(instr.offset + 1 + uint32(i))
			if err != nil {
				return nil, err
			}
			ops[i] = w
		}

		switch instr.opcode {
		case OpSource:
			if len(ops) >= 2 {
				g.sourceLanguage = ir.SourceLanguage(ops[0])
				g.sourceVersion = ops[1]
			}
			// Operands past Version are an optional File id followed by an
			// optional embedded Source string (SPIR-V grammar: OpSource
			// Language Version [File] [Source]).
			if len(ops) > 3 {
				str, _, err := r.readStr(instr.offset+4, instr.wordCount-4)
				if err != nil {
					return nil, err
				}
				g.sourceString = str
			}
			continue
		case OpSourceContinued:
			str, _, err := r.readStr(instr.offset+1, instr.wordCount-1)
			if err != nil {
				return nil, err
			}
			g.sourceString += str
			continue
		case OpSourceExtension:
			continue
		case OpString:
			n := node{offset: instr.offset, opcode: instr.opcode, dec: newDecorationRecord()}
			str, _, err := r.readStr(instr.offset+2, instr.wordCount-2)
			if err != nil {
				return nil, err
			}
			n.name = str
			if len(ops) >= 1 {
				n.resultID = ops[0]
				g.addNode(n)
			}
			continue
		case OpCapability:
			if len(ops) >= 1 {
				g.capabilities = append(g.capabilities, ir.Capability(ops[0]))
			}
			continue
		case OpEntryPoint:
			if len(ops) < 2 {
				return nil, ir.NewError(ir.InvalidEntryPoint, "OpEntryPoint missing operands").AtOffset(int64(instr.offset) * 4)
			}
			model := ir.ExecutionModel(ops[0])
			fn := ops[1]
			str, strWords, err := r.readStr(instr.offset+3, instr.wordCount-3)
			if err != nil {
				return nil, err
			}
			var iface []uint32
			for i := 2 + strWords; i < uint32(len(ops)); i++ {
				iface = append(iface, ops[i])
			}
			g.entryPoints = append(g.entryPoints, entryPointRaw{
				offset: instr.offset, executionModel: model, functionID: fn,
				name: str, interfaceIDs: iface,
			})
			continue
		case OpExecutionMode, OpExecutionModeId:
			if len(ops) < 2 {
				return nil, ir.NewError(ir.InvalidExecutionMode, "OpExecutionMode missing operands").AtOffset(int64(instr.offset) * 4)
			}
			g.executionModes = append(g.executionModes, executionModeRaw{
				entryPointID: ops[0], mode: ir.ExecutionMode(ops[1]), operands: append([]uint32(nil), ops[2:]...),
			})
			continue
		case OpName, OpMemberName, OpDecorate, OpDecorateId, OpDecorateString, OpMemberDecorate, OpMemberDecorateString:
			// Debug/annotation instructions precede the types-and-variables
			// section in valid module layout, so their targets usually
			// don't exist in the graph yet; applied in a second pass below
			// once every node is built.
			pending = append(pending, pendingAnnotation{offset: instr.offset, opcode: instr.opcode, wordCount: instr.wordCount, ops: ops})
			continue
		case OpFunction:
			curFunction = &functionRaw{}
			sawLabel = false
			if len(ops) >= 2 {
				curFunction.id = ops[1]
			}
		case OpLabel:
			sawLabel = true
		case OpFunctionEnd:
			if curFunction != nil && sawLabel {
				g.functions = append(g.functions, *curFunction)
			}
			curFunction = nil
			sawLabel = false
			continue
		}

		if curFunction != nil {
			if instr.opcode == OpFunctionCall && len(ops) >= 3 {
				curFunction.callees = append(curFunction.callees, ops[2])
			}
			curFunction.accessed = append(curFunction.accessed, accessedPointers(instr.opcode, ops)...)
		}

		n := node{offset: instr.offset, opcode: instr.opcode, dec: newDecorationRecord()}
		if err := populateOpcode(&n, instr.opcode, ops); err != nil {
			return nil, err
		}
		idx := g.addNode(n)
		if idx >= 0 && isConstantLike(instr.opcode) {
			g.constantLikeOrder = append(g.constantLikeOrder, n.resultID)
		}
	}

	// Names and decorations apply now, once every node they might target
	// exists: their section precedes types-and-variables in module layout,
	// so applying them inline during the walk above would reject any
	// module laid out the way a real compiler emits one.
	if err := applyPendingAnnotations(g, r, pending); err != nil {
		return nil, err
	}

	for i := range g.nodes {
		n := &g.nodes[i]
		if (n.opcode == OpConstantComposite || n.opcode == OpSpecConstantComposite) &&
			n.dec.hasBuiltIn && n.dec.builtIn == ir.BuiltInWorkgroupSize {
			g.workgroupSizeCompositeID = n.resultID
			g.hasWorkgroupSizeComposite = true
		}
	}

	resolveAccessChainIndices(g)

	return g, nil
}

// applyPendingAnnotations is buildNodes' second pass: it re-dispatches each
// deferred OpName/OpMemberName/OpDecorate*/OpMemberDecorate* instruction
// now that every node exists.
func applyPendingAnnotations(g *graph, r *wordReader, pending []pendingAnnotation) error {
	for _, p := range pending {
		ops := p.ops
		switch p.opcode {
		case OpName:
			if len(ops) < 1 {
				continue
			}
			target, ok := g.nodeFor(ops[0])
			if !ok {
				return ir.NewError(ir.InvalidIdReference, "OpName targets unknown id").WithID(ops[0]).AtOffset(int64(p.offset) * 4)
			}
			str, _, err := r.readStr(p.offset+2, p.wordCount-2)
			if err != nil {
				return err
			}
			target.name = str

		case OpMemberName:
			if len(ops) < 2 {
				continue
			}
			target, ok := g.nodeFor(ops[0])
			if !ok {
				return ir.NewError(ir.InvalidIdReference, "OpMemberName targets unknown id").WithID(ops[0]).AtOffset(int64(p.offset) * 4)
			}
			str, _, err := r.readStr(p.offset+3, p.wordCount-3)
			if err != nil {
				return err
			}
			g.ensureMemberName(target, ops[1])
			target.memberNames[ops[1]] = str

		case OpDecorate, OpDecorateId:
			if len(ops) < 2 {
				continue
			}
			target, ok := g.nodeFor(ops[0])
			if !ok {
				return ir.NewError(ir.InvalidIdReference, "OpDecorate targets unknown id").WithID(ops[0]).AtOffset(int64(p.offset) * 4)
			}
			applyDecoration(&target.dec, ir.Decoration(ops[1]), ops[2:], p.offset, 2)

		case OpDecorateString:
			if len(ops) < 2 {
				continue
			}
			target, ok := g.nodeFor(ops[0])
			if !ok {
				return ir.NewError(ir.InvalidIdReference, "OpDecorateString targets unknown id").WithID(ops[0]).AtOffset(int64(p.offset) * 4)
			}
			if ir.Decoration(ops[1]) == ir.DecorationWireHlslSemanticGOOGLE {
				str, _, err := r.readStr(p.offset+3, p.wordCount-3)
				if err != nil {
					return err
				}
				target.dec.semantic = str
			}

		case OpMemberDecorate:
			if len(ops) < 3 {
				continue
			}
			target, ok := g.nodeFor(ops[0])
			if !ok {
				return ir.NewError(ir.InvalidIdReference, "OpMemberDecorate targets unknown id").WithID(ops[0]).AtOffset(int64(p.offset) * 4)
			}
			rec := g.ensureMemberDecs(target, ops[1])
			applyDecoration(rec, ir.Decoration(ops[2]), ops[3:], p.offset, 3)

		case OpMemberDecorateString:
			if len(ops) < 3 {
				continue
			}
			target, ok := g.nodeFor(ops[0])
			if !ok {
				return ir.NewError(ir.InvalidIdReference, "OpMemberDecorateString targets unknown id").WithID(ops[0]).AtOffset(int64(p.offset) * 4)
			}
			rec := g.ensureMemberDecs(target, ops[1])
			if ir.Decoration(ops[2]) == ir.DecorationWireHlslSemanticGOOGLE {
				str, _, err := r.readStr(p.offset+4, p.wordCount-4)
				if err != nil {
					return err
				}
				rec.semantic = str
			}
		}
	}
	return nil
}

// resolveAccessChainIndices runs once every node exists: for each access
// chain's index operand, if it was produced by OpConstant, replace the
// raw id with the decoded literal value; otherwise mark it
// runtime-indexed (spec.md §4.3 — sufficient because only constant
// indices participate in block-member usage marking, C7).
func resolveAccessChainIndices(g *graph) {
	for i := range g.nodes {
		n := &g.nodes[i]
		if len(n.accessIndices) == 0 {
			continue
		}
		for j := range n.accessIndices {
			idID := n.accessIndices[j].value
			src, ok := g.nodeFor(idID)
			if ok && src.opcode == OpConstant && len(src.literals) >= 1 {
				n.accessIndices[j] = accessIndex{isConstant: true, value: src.literals[0]}
			} else {
				n.accessIndices[j] = accessIndex{isConstant: false, value: 0}
			}
		}
	}
}

// addNode appends n (if it carries a result id) and indexes it; returns
// the node's index in g.nodes, or -1 if n has no result id.
func (g *graph) addNode(n node) int {
	if n.resultID == 0 {
		return -1
	}
	idx := len(g.nodes)
	g.nodes = append(g.nodes, n)
	if n.resultID < g.bound {
		g.nodeByID[n.resultID] = int32(idx)
	}
	g.instrByOffset[n.offset] = idx
	return idx
}

// applyDecoration records a single decoration onto rec, per the closed
// whitelist in spec.md §4.3. literalOperandIndex is the operand index (in
// words, relative to the instruction's first operand) at which the
// literal value operand begins; used to compute the absolute word offset
// of Binding/DescriptorSet/Location/Offset/SpecId for C11 edits.
func applyDecoration(rec *decorationRecord, dec ir.Decoration, rest []uint32, instrOffset uint32, literalOperandIndex uint32) {
	wordOf := func(extra uint32) uint32 {
		// +1 for the header word, +literalOperandIndex operands already
		// consumed before the literal, +extra for the literal's own
		// position within rest.
		return instrOffset + 1 + literalOperandIndex + extra
	}
	switch dec {
	case ir.DecorationWireRelaxedPrecision:
		rec.flags |= ir.DecorationRelaxedPrecision
	case ir.DecorationWireBlock:
		rec.flags |= ir.DecorationBlock
	case ir.DecorationWireBufferBlock:
		rec.flags |= ir.DecorationBufferBlock
	case ir.DecorationWireRowMajor:
		rec.flags |= ir.DecorationRowMajor
	case ir.DecorationWireColMajor:
		rec.flags |= ir.DecorationColumnMajor
	case ir.DecorationWireNoPerspective:
		rec.flags |= ir.DecorationNoPerspective
	case ir.DecorationWireFlat:
		rec.flags |= ir.DecorationFlat
	case ir.DecorationWireNonWritable:
		rec.flags |= ir.DecorationNonWritable
	case ir.DecorationWireNonReadable:
		rec.flags |= ir.DecorationNonReadable
	case ir.DecorationWireArrayStride:
		if len(rest) >= 1 {
			rec.arrayStride = rest[0]
		}
	case ir.DecorationWireMatrixStride:
		if len(rest) >= 1 {
			rec.matrixStride = rest[0]
		}
	case ir.DecorationWireBuiltIn:
		if len(rest) >= 1 {
			rec.flags |= ir.DecorationBuiltIn
			rec.builtIn = ir.BuiltIn(rest[0])
			rec.hasBuiltIn = true
		}
	case ir.DecorationWireLocation:
		if len(rest) >= 1 {
			rec.location = rest[0]
			rec.locationWordOffset = wordOf(0)
		}
	case ir.DecorationWireBinding:
		if len(rest) >= 1 {
			rec.binding = rest[0]
			rec.bindingWordOffset = wordOf(0)
		}
	case ir.DecorationWireDescriptorSet:
		if len(rest) >= 1 {
			rec.set = rest[0]
			rec.setWordOffset = wordOf(0)
		}
	case ir.DecorationWireOffset:
		if len(rest) >= 1 {
			rec.offsetVal = rest[0]
			rec.offsetWordOffset = wordOf(0)
		}
	case ir.DecorationWireSpecId:
		if len(rest) >= 1 {
			rec.specID = rest[0]
			rec.specIDWordOffset = wordOf(0)
		}
	case ir.DecorationWireInputAttachmentIndex:
		if len(rest) >= 1 {
			rec.inputAttachmentIndex = rest[0]
		}
	case ir.DecorationWireHlslCounterBufferGOOGLE:
		if len(rest) >= 1 {
			rec.hlslCounterBufferID = rest[0]
			rec.hasHlslCounterBuffer = true
		}
	default:
		// Unknown decoration: silently skipped per spec.md §4.3 (the
		// target already exists, which is the only malformed case that
		// matters).
	}
}

// populateOpcode reads the result type id and result id, where the
// opcode has them, and fills node-specific fields from the operand words
// that follow.
//
//nolint:gocyclo // one opcode-dispatch switch mirrors the SPIR-V grammar directly
func populateOpcode(n *node, op Op, ops []uint32) error {
	hasResultType, hasResult := instructionShape(op)

	idx := 0
	if hasResultType {
		if idx >= len(ops) {
			return ir.NewError(ir.InvalidInstruction, "missing result type operand").AtOffset(int64(n.offset) * 4)
		}
		n.resultTypeID = ops[idx]
		idx++
	}
	if hasResult {
		if idx >= len(ops) {
			return ir.NewError(ir.InvalidInstruction, "missing result id operand").AtOffset(int64(n.offset) * 4)
		}
		n.resultID = ops[idx]
		idx++
	}
	rest := ops[idx:]
	n.operandIDs = rest

	switch op {
	case OpTypeInt:
		if len(rest) >= 2 {
			n.scalarWidth = rest[0]
			n.scalarSigned = rest[1] == 1
		}
	case OpTypeFloat:
		if len(rest) >= 1 {
			n.scalarWidth = rest[0]
		}
	case OpTypeVector:
		if len(rest) >= 2 {
			n.componentType = rest[0]
			n.componentCount = rest[1]
		}
	case OpTypeMatrix:
		if len(rest) >= 2 {
			n.componentType = rest[0] // column type (a vector type id)
			n.componentCount = rest[1]
		}
	case OpTypeImage:
		if len(rest) >= 7 {
			n.imageSampledType = rest[0]
			n.image = ir.ImageTraits{
				Dim: ir.Dim(rest[1]), Depth: rest[2], Arrayed: rest[3],
				MS: rest[4], Sampled: rest[5], ImageFormat: ir.ImageFormat(rest[6]),
			}
		}
	case OpTypeArray:
		if len(rest) >= 2 {
			n.arrayElementType = rest[0]
			n.arrayLengthID = rest[1]
		}
	case OpTypeRuntimeArray:
		if len(rest) >= 1 {
			n.arrayElementType = rest[0]
			n.arrayLengthID = 0
		}
	case OpTypeStruct:
		n.memberTypes = append([]uint32(nil), rest...)
	case OpTypePointer:
		if len(rest) >= 2 {
			n.storageClass = ir.StorageClass(rest[0])
			n.hasStorageClass = true
			n.pointeeType = rest[1]
		}
	case OpTypeForwardPointer:
		// No result id of its own: operand 0 names an id some later
		// OpTypePointer will define. Nothing to stash on this node since
		// it is never added to the graph (see typeresolve.go).
	case OpVariable:
		if len(rest) >= 1 {
			n.storageClass = ir.StorageClass(rest[0])
			n.hasStorageClass = true
			n.hasInitializer = len(rest) >= 2
		}
	case OpConstant, OpSpecConstant:
		n.literals = append([]uint32(nil), rest...)
	case OpConstantComposite, OpSpecConstantComposite, OpSpecConstantOp:
		n.operandIDs = append([]uint32(nil), rest...)
	case OpAccessChain, OpInBoundsAccessChain, OpPtrAccessChain, OpInBoundsPtrAccessChain:
		if len(rest) >= 1 {
			n.accessBaseID = rest[0]
			for _, idxID := range rest[1:] {
				// Constant index resolution happens in a later fixup
				// pass (resolveAccessChainIndices) once every node
				// exists; stash the raw id here.
				n.accessIndices = append(n.accessIndices, accessIndex{isConstant: false, value: idxID})
			}
		}
	case OpFunctionCall:
		if len(rest) >= 1 {
			n.calleeID = rest[0]
		}
	}
	return nil
}

// accessedPointers returns the pointer-id operands of op that the
// function analyzer (C5) must record as accessed by the enclosing
// function (spec.md §4.5). ops are the full post-header operand words.
func accessedPointers(op Op, ops []uint32) []uint32 {
	switch op {
	case OpLoad:
		if len(ops) >= 3 {
			return []uint32{ops[2]}
		}
	case OpStore:
		if len(ops) >= 1 {
			return []uint32{ops[0]}
		}
	case OpAccessChain, OpInBoundsAccessChain:
		if len(ops) >= 3 {
			return []uint32{ops[2]}
		}
	case OpPtrAccessChain, OpInBoundsPtrAccessChain:
		if len(ops) >= 3 {
			return []uint32{ops[2]}
		}
	case OpArrayLength:
		if len(ops) >= 3 {
			return []uint32{ops[2]}
		}
	case OpGenericPtrMemSemantics:
		if len(ops) >= 3 {
			return []uint32{ops[2]}
		}
	case OpImageTexelPointer:
		if len(ops) >= 3 {
			return []uint32{ops[2]}
		}
	case OpCopyMemory:
		if len(ops) >= 2 {
			return []uint32{ops[0], ops[1]}
		}
	case OpCopyMemorySized:
		if len(ops) >= 2 {
			return []uint32{ops[0], ops[1]}
		}
	}
	return nil
}

// instructionShape reports whether op carries a result-type operand
// and/or a result-id operand, per the SPIR-V grammar. Only the opcodes
// this reflector decodes into a node are listed; anything else defaults
// to (false, false). That default is load-bearing, not just unused: many
// common void-result instructions (OpStore, OpBranch, OpReturn, ...) have
// no case here, and misreading one of their operand words as a result id
// would register a bogus node under some other instruction's real id.
func instructionShape(op Op) (hasResultType, hasResult bool) {
	switch op {
	case OpTypeVoid, OpTypeBool, OpTypeInt, OpTypeFloat, OpTypeVector,
		OpTypeMatrix, OpTypeImage, OpTypeSampler, OpTypeSampledImage,
		OpTypeArray, OpTypeRuntimeArray, OpTypeStruct, OpTypeOpaque,
		OpTypePointer, OpTypeFunction:
		return false, true
	case OpTypeForwardPointer:
		return false, false
	case OpString:
		return false, true
	case OpConstantTrue, OpConstantFalse, OpConstant, OpConstantComposite,
		OpConstantSampler, OpConstantNull,
		OpSpecConstantTrue, OpSpecConstantFalse, OpSpecConstant,
		OpSpecConstantComposite, OpSpecConstantOp:
		return true, true
	case OpVariable:
		return true, true
	case OpFunction:
		return true, true
	case OpFunctionParameter:
		return true, true
	case OpAccessChain, OpInBoundsAccessChain, OpPtrAccessChain, OpInBoundsPtrAccessChain:
		return true, true
	case OpLoad:
		return true, true
	case OpFunctionCall:
		return true, true
	case OpImageTexelPointer:
		return true, true
	case OpUndef:
		return true, true
	default:
		return false, false
	}
}
