package spirv

import "github.com/gogpu/spirvreflect/ir"

// pushConstantVar pairs a built push-constant BlockVariable with the spirv
// id of the OpVariable it came from, for usage marking and the entry
// point's used_push_constants intersection.
type pushConstantVar struct {
	spirvID uint32
	block   ir.BlockVariable
}

// buildPushConstants finds every PushConstant-storage-class OpVariable and
// lays out its block (spec.md §4.7 applies identically to push-constant
// blocks as it does to uniform/storage buffers).
func buildPushConstants(g *graph, tr *typeResolver) ([]pushConstantVar, error) {
	var out []pushConstantVar
	for i := range g.nodes {
		n := &g.nodes[i]
		if n.opcode != OpVariable || !n.hasStorageClass || n.storageClass != ir.StorageClassPushConstant {
			continue
		}
		ptrTypeID, err := tr.resolve(n.resultTypeID)
		if err != nil {
			return nil, err
		}
		ptrType := tr.types[ptrTypeID]
		if !ptrType.HasComponent {
			return nil, ir.NewError(ir.InvalidType, "push constant variable's type is not a pointer").WithID(n.resultID)
		}
		block, err := buildBlockVariable(tr, ptrType.Component)
		if err != nil {
			return nil, err
		}
		block.Name = n.name
		out = append(out, pushConstantVar{spirvID: n.resultID, block: *block})
	}
	return out, nil
}
