package spirv

import (
	"sort"

	"github.com/gogpu/spirvreflect/ir"
)

// resolveEntryPoints is C8 (spec.md §4.8): turns each entryPointRaw into an
// ir.EntryPoint, builds its interface variable trees, computes the
// used-uniform/used-push-constant sets via the function analyzer's
// transitive access set, and folds in execution-mode data.
func resolveEntryPoints(g *graph, tr *typeResolver, bindings []ir.DescriptorBinding, pushConstantIDs []uint32) ([]ir.EntryPoint, error) {
	idx := indexFunctions(g)

	uniformIDs := make([]uint32, 0, len(bindings))
	for _, b := range bindings {
		uniformIDs = append(uniformIDs, b.SpirvID)
	}

	eps := make([]ir.EntryPoint, 0, len(g.entryPoints))
	for _, raw := range g.entryPoints {
		ep := ir.EntryPoint{
			Name:           raw.name,
			SpirvID:        raw.functionID,
			ExecutionModel: raw.executionModel,
			Stage:          ir.StageFromExecutionModel(raw.executionModel),
		}

		for _, ifaceID := range raw.interfaceIDs {
			v, err := buildInterfaceVariable(g, tr, ifaceID)
			if err != nil {
				return nil, err
			}
			ep.InterfaceVariables = append(ep.InterfaceVariables, v)
		}
		for i := range ep.InterfaceVariables {
			v := &ep.InterfaceVariables[i]
			switch v.StorageClass {
			case ir.StorageClassInput:
				ep.InputVariables = append(ep.InputVariables, v)
			case ir.StorageClassOutput:
				ep.OutputVariables = append(ep.OutputVariables, v)
			}
		}

		applyExecutionModes(g, &ep)

		accessed, err := reachableAccesses(idx, raw.functionID)
		if err != nil {
			return nil, err
		}
		accessSet := make(map[uint32]bool, len(accessed))
		for _, id := range accessed {
			accessSet[id] = true
		}
		ep.UsedUniforms = intersectSorted(uniformIDs, accessSet)
		ep.UsedPushConstants = intersectSorted(pushConstantIDs, accessSet)

		eps = append(eps, ep)
	}

	// accessed = 1 on a binding iff its spirv id appears in any entry
	// point's access set.
	usedAnywhere := make(map[uint32]bool)
	for _, ep := range eps {
		for _, id := range ep.UsedUniforms {
			usedAnywhere[id] = true
		}
	}
	for i := range bindings {
		bindings[i].Accessed = usedAnywhere[bindings[i].SpirvID]
	}

	return eps, nil
}

// intersectSorted returns the sorted subset of ids present in accessSet.
func intersectSorted(ids []uint32, accessSet map[uint32]bool) []uint32 {
	var out []uint32
	for _, id := range ids {
		if accessSet[id] {
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// buildInterfaceVariable resolves ifaceID's pointee type (through the
// OpVariable's pointer) and mirrors its struct/array shape recursively.
func buildInterfaceVariable(g *graph, tr *typeResolver, ifaceID uint32) (ir.InterfaceVariable, error) {
	n, ok := g.nodeFor(ifaceID)
	if !ok {
		return ir.InterfaceVariable{}, ir.NewError(ir.InvalidIdReference, "entry point interface id not found").WithID(ifaceID)
	}
	ptrTypeID, err := tr.resolve(n.resultTypeID)
	if err != nil {
		return ir.InterfaceVariable{}, err
	}
	ptrType := tr.types[ptrTypeID]
	if !ptrType.HasComponent {
		return ir.InterfaceVariable{}, ir.NewError(ir.InvalidType, "interface variable's type is not a pointer").WithID(ifaceID)
	}

	v, err := buildInterfaceNode(tr, ptrType.Component, n.name, n.dec)
	if err != nil {
		return ir.InterfaceVariable{}, err
	}
	v.SpirvID = ifaceID
	v.StorageClass = n.storageClass
	v.Location = n.dec.location
	v.LocationWordOffset = int64(n.dec.locationWordOffset) * 4
	v.Semantic = n.dec.semantic
	return v, nil
}

// buildInterfaceNode recurses through a (possibly struct/array) interface
// type, inheriting BuiltIn from any member that carries one.
func buildInterfaceNode(tr *typeResolver, typeID ir.TypeID, name string, dec decorationRecord) (ir.InterfaceVariable, error) {
	td := tr.types[typeID]

	v := ir.InterfaceVariable{
		Name:            name,
		Type:            typeID,
		DecorationFlags: dec.flags,
		BuiltIn:         ir.BuiltInNone,
		Numeric:         td.Numeric,
	}
	if dec.hasBuiltIn {
		v.BuiltIn = dec.builtIn
	}

	switch {
	case td.TypeFlags.Has(ir.TypeFlagStruct):
		spirvID := tr.spirvIDForType(typeID)
		structNode, _ := tr.g.nodeFor(spirvID)
		for i, mtid := range td.Members {
			mdec := newDecorationRecord()
			mname := ""
			if structNode != nil {
				if i < len(structNode.memberDecs) {
					mdec = structNode.memberDecs[i]
				}
				if i < len(structNode.memberNames) {
					mname = structNode.memberNames[i]
				}
			}
			member, err := buildInterfaceNode(tr, mtid, mname, mdec)
			if err != nil {
				return ir.InterfaceVariable{}, err
			}
			if member.BuiltIn != ir.BuiltInNone {
				v.BuiltIn = member.BuiltIn
				v.DecorationFlags |= ir.DecorationBuiltIn
			}
			v.Members = append(v.Members, member)
		}

	case td.TypeFlags.Has(ir.TypeFlagArray):
		v.Array = td.Array
		elem, err := buildInterfaceNode(tr, td.Component, name, decorationRecord{flags: 0, builtIn: ir.BuiltInNone})
		if err != nil {
			return ir.InterfaceVariable{}, err
		}
		v.Format = elem.Format
		v.Members = []ir.InterfaceVariable{elem}

	default:
		signed := td.Numeric.Signed
		v.Format = ir.FormatFor(td.TypeFlags, td.Numeric.ScalarWidth, signed, td.Numeric.VectorComponentCount)
	}

	return v, nil
}

// applyExecutionModes folds every OpExecutionMode/OpExecutionModeId
// targeting ep's function into its ExecutionModes/Invocations/
// OutputVertices/LocalSize fields, then overlays the WorkgroupSize
// builtin-composite rule if the module used it instead (spec.md §4.8).
func applyExecutionModes(g *graph, ep *ir.EntryPoint) {
	for _, em := range g.executionModes {
		if em.entryPointID != ep.SpirvID {
			continue
		}
		ep.ExecutionModes = append(ep.ExecutionModes, em.mode)
		switch em.mode {
		case ir.ExecutionModeInvocations:
			if len(em.operands) >= 1 {
				ep.Invocations = em.operands[0]
			}
		case ir.ExecutionModeOutputVertices:
			if len(em.operands) >= 1 {
				ep.OutputVertices = em.operands[0]
			}
		case ir.ExecutionModeLocalSize:
			if len(em.operands) >= 3 {
				ep.LocalSize = ir.LocalSize{X: em.operands[0], Y: em.operands[1], Z: em.operands[2], Flags: ir.LocalSizeLiteral}
			}
		case ir.ExecutionModeLocalSizeId:
			if len(em.operands) >= 3 {
				ep.LocalSize = ir.LocalSize{X: em.operands[0], Y: em.operands[1], Z: em.operands[2], Flags: ir.LocalSizeID}
			}
		case ir.ExecutionModeLocalSizeHint:
			if len(em.operands) >= 3 {
				ep.LocalSize = ir.LocalSize{X: em.operands[0], Y: em.operands[1], Z: em.operands[2], Flags: ir.LocalSizeHintLiteral}
			}
		case ir.ExecutionModeLocalSizeHintId:
			if len(em.operands) >= 3 {
				ep.LocalSize = ir.LocalSize{X: em.operands[0], Y: em.operands[1], Z: em.operands[2], Flags: ir.LocalSizeHintID}
			}
		}
	}

	if g.hasWorkgroupSizeComposite {
		switch ep.ExecutionModel {
		case ir.ExecutionModelGLCompute, ir.ExecutionModelKernel:
			ep.LocalSize = ir.LocalSize{X: g.workgroupSizeCompositeID, Flags: ir.LocalSizeWorkgroupSizeBuiltin}
		}
	}
}
