// Package spirv decodes a SPIR-V binary into the reflection tree defined
// by package ir. Parsing runs as a fixed pipeline: a bounds-checked word
// reader (C1), an instruction pre-scan that counts entities up front (C2),
// a node graph that applies names/decorations to their targets (C3), a
// recursive type resolver (C4), a function call-graph analyzer (C5), a
// descriptor binder (C6), a block layouter (C7), an entry-point resolver
// (C8), and a descriptor-set aggregator (C9). Create wires all of them
// together; Query/Lookup/edit operations (C11) then work entirely off the
// resulting ir.Module.
package spirv

import (
	"math"

	"github.com/gogpu/spirvreflect/ir"
)

// Create parses a SPIR-V binary (as raw bytes) into a reflection Module.
func Create(flags ir.CreateFlags, data []byte) (*ir.Module, error) {
	words, err := bytesToWords(data)
	if err != nil {
		return nil, err
	}
	return CreateFromWords(flags, words)
}

// CreateFromWords parses a SPIR-V binary already decoded into words.
func CreateFromWords(flags ir.CreateFlags, words []uint32) (*ir.Module, error) {
	if err := validateHeader(words); err != nil {
		return nil, err
	}

	r := newWordReader(words)

	scan, err := preScan(r)
	if err != nil {
		return nil, err
	}

	g, err := buildNodes(r, scan)
	if err != nil {
		return nil, err
	}

	generatorWord, err := r.readU32(2)
	if err != nil {
		return nil, err
	}

	m := &ir.Module{
		Generator:      ir.Generator(generatorWord >> 16),
		SourceLanguage: g.sourceLanguage,
		SourceVersion:  g.sourceVersion,
		SourceString:   g.sourceString,
		Capabilities:   g.capabilities,
	}
	if flags.Has(ir.FlagNoCopy) {
		m.Words = words
		m.OwnsWords = false
	} else {
		m.Words = append([]uint32(nil), words...)
		m.OwnsWords = true
	}

	tr := newTypeResolver(g)
	if err := resolveAllTypes(g, tr); err != nil {
		return nil, err
	}
	m.Types = tr.types

	bindings, err := bindDescriptors(g, tr)
	if err != nil {
		return nil, err
	}

	pcVars, err := buildPushConstants(g, tr)
	if err != nil {
		return nil, err
	}
	pushConstantIDs := make([]uint32, 0, len(pcVars))
	m.PushConstants = make([]ir.BlockVariable, 0, len(pcVars))
	for _, pc := range pcVars {
		pushConstantIDs = append(pushConstantIDs, pc.spirvID)
		m.PushConstants = append(m.PushConstants, pc.block)
	}

	eps, err := resolveEntryPoints(g, tr, bindings, pushConstantIDs)
	if err != nil {
		return nil, err
	}

	// Usage marking walks access chains per descriptor/push-constant and
	// clears UNUSED on the reached subtree (spec.md §4.7).
	for i := range bindings {
		if bindings[i].Block != nil {
			markBlockUsage(g, bindings[i].Block, bindings[i].SpirvID)
		}
	}
	for i, pc := range pcVars {
		markBlockUsage(g, &m.PushConstants[i], pc.spirvID)
	}

	sets, err := aggregateSets(bindings)
	if err != nil {
		return nil, err
	}
	entryPointSetViews(sets, eps)

	m.Bindings = bindings
	m.Sets = sets
	m.EntryPoints = eps
	m.Flags = flags
	if len(eps) > 0 {
		m.InputVariables = eps[0].InputVariables
		m.OutputVariables = eps[0].OutputVariables
		m.InterfaceVariables = eps[0].InterfaceVariables
	}

	specConsts, records, err := buildSpecConstants(g, tr)
	if err != nil {
		return nil, err
	}
	m.SpecConstants = specConsts
	m.ConstantRecords = records
	m.IndexConstantRecords()

	return m, nil
}

// resolveAllTypes walks every OpType* node so the arena is complete even
// for types not reachable from a binding, push constant, or interface
// variable (e.g. a struct only used as a function-local variable's type),
// matching spec.md §4.4's "recursive traversal starting from every
// OpType* node".
func resolveAllTypes(g *graph, tr *typeResolver) error {
	for i := range g.nodes {
		n := &g.nodes[i]
		if !isTypeOp(n.opcode) {
			continue
		}
		if _, err := tr.resolve(n.resultID); err != nil {
			return err
		}
	}
	return nil
}

// buildSpecConstants collects every SpecId-decorated constant into
// ir.SpecializationConstant, and every constant-like node into a
// ConstantRecord for the eval package's three-pass build (C10's raw
// material; spec.md §4.10).
func buildSpecConstants(g *graph, tr *typeResolver) ([]ir.SpecializationConstant, []ir.ConstantRecord, error) {
	var specs []ir.SpecializationConstant
	records := make([]ir.ConstantRecord, 0, len(g.constantLikeOrder))

	for _, id := range g.constantLikeOrder {
		n, ok := g.nodeFor(id)
		if !ok {
			continue
		}
		typeID, err := tr.resolve(n.resultTypeID)
		if err != nil {
			return nil, nil, err
		}

		rec := ir.ConstantRecord{
			ID:         ir.ConstantRecordID(len(records)),
			SpirvID:    id,
			Opcode:     uint16(n.opcode),
			ResultType: typeID,
			SpecID:     ir.Invalid,
			Literals:   n.literals,
			IDOperands: n.operandIDs,
		}
		if n.opcode == OpSpecConstantOp && len(n.operandIDs) >= 1 {
			rec.SubOpcode = uint16(n.operandIDs[0])
			rec.IDOperands = n.operandIDs[1:]
		}
		if n.dec.specID != ir.Invalid {
			rec.SpecID = n.dec.specID
		}
		records = append(records, rec)

		if n.dec.specID != ir.Invalid {
			var def ir.ScalarValue
			switch n.opcode {
			case OpSpecConstantTrue:
				def = ir.ScalarBool{Value: true}
			case OpSpecConstantFalse:
				def = ir.ScalarBool{Value: false}
			case OpSpecConstant:
				def = decodeScalarLiteral(tr.types[typeID], n.literals)
			}
			specs = append(specs, ir.SpecializationConstant{
				Name:       n.name,
				ConstantID: n.dec.specID,
				SpirvID:    id,
				Default:    def,
				Type:       typeID,
			})
		}
	}

	return specs, records, nil
}

// decodeScalarLiteral implements ParserGetScalarConstant (spec.md §4.10):
// a 32-bit scalar is one literal word; a 64-bit scalar is low|(high<<32).
func decodeScalarLiteral(td ir.TypeDescription, literals []uint32) ir.ScalarValue {
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
	default:
		return ir.ScalarU32{Value: uint32(bits)}
	}
}
