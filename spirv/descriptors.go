package spirv

import (
	"sort"
	"strings"

	"github.com/gogpu/spirvreflect/ir"
)

// descriptorCandidate is one OpVariable node carrying both Binding and
// DescriptorSet decorations, alongside the pointee type it resolves to.
type descriptorCandidate struct {
	varID   uint32
	n       *node
	pointee ir.TypeID
}

// bindDescriptors is C6 (spec.md §4.6): selects binding-eligible
// variables, classifies each one's DescriptorType/ResourceType, derives
// its array shape, and pairs UAV counters.
func bindDescriptors(g *graph, tr *typeResolver) ([]ir.DescriptorBinding, error) {
	var candidates []descriptorCandidate
	for i := range g.nodes {
		n := &g.nodes[i]
		if n.opcode != OpVariable || !n.hasStorageClass {
			continue
		}
		switch n.storageClass {
		case ir.StorageClassUniform, ir.StorageClassStorageBuffer, ir.StorageClassUniformConstant:
		default:
			continue
		}
		if n.dec.binding == ir.Invalid || n.dec.set == ir.Invalid {
			continue
		}
		ptrTypeID, err := tr.resolve(n.resultTypeID)
		if err != nil {
			return nil, err
		}
		ptrType := tr.types[ptrTypeID]
		if !ptrType.HasComponent {
			return nil, ir.NewError(ir.InvalidType, "binding variable's type is not a pointer").WithID(n.resultID)
		}
		candidates = append(candidates, descriptorCandidate{varID: n.resultID, n: n, pointee: ptrType.Component})
	}

	bindings := make([]ir.DescriptorBinding, 0, len(candidates))
	counterIDBySpirvID := make(map[uint32]uint32, len(candidates))
	for _, c := range candidates {
		b, err := classifyBinding(tr, c)
		if err != nil {
			return nil, err
		}
		if c.n.dec.hasHlslCounterBuffer {
			counterIDBySpirvID[c.varID] = c.n.dec.hlslCounterBufferID
		}
		bindings = append(bindings, b)
	}

	sort.Slice(bindings, func(i, j int) bool {
		if bindings[i].Binding != bindings[j].Binding {
			return bindings[i].Binding < bindings[j].Binding
		}
		return bindings[i].SpirvID < bindings[j].SpirvID
	})
	for i := range bindings {
		bindings[i].ID = ir.BindingID(i)
	}

	pairUAVCounters(bindings, counterIDBySpirvID)

	return bindings, nil
}

// classifyBinding implements the ordered rule list of spec.md §4.6.
func classifyBinding(tr *typeResolver, c descriptorCandidate) (ir.DescriptorBinding, error) {
	t := tr.types[c.pointee]
	n := c.n

	b := ir.DescriptorBinding{
		SpirvID:              c.varID,
		Name:                 n.name,
		Binding:              n.dec.binding,
		Set:                  n.dec.set,
		InputAttachmentIndex: n.dec.inputAttachmentIndex,
		BindingWordOffset:    int64(n.dec.bindingWordOffset) * 4,
		SetWordOffset:        int64(n.dec.setWordOffset) * 4,
		Type:                 c.pointee,
	}

	// Binding arrays: an array (or array of arrays) of the resource,
	// walked down to the non-array element which carries the real
	// resource-kind flags classified below.
	elemType := c.pointee
	elem := t
	count := uint32(1)
	var dims []uint32
	for elem.TypeFlags.Has(ir.TypeFlagArray) {
		dims = append(dims, elem.Array.Dims[0])
		if elem.Array.Dims[0] != 0 && elem.Array.Dims[0] != ir.Invalid {
			count *= elem.Array.Dims[0]
		}
		elemType = elem.Component
		elem = tr.types[elemType]
	}
	b.ArrayDims = dims
	b.ArrayCount = count
	b.Image = elem.Image

	switch {
	case n.storageClass == ir.StorageClassStorageBuffer:
		b.DescriptorType = ir.DescriptorTypeStorageBuffer

	case elem.TypeFlags.Has(ir.TypeFlagExternalImage) && elem.Image.Dim == ir.DimBuffer:
		if elem.Image.Sampled == 1 {
			b.DescriptorType = ir.DescriptorTypeUniformTexelBuffer
		} else {
			b.DescriptorType = ir.DescriptorTypeStorageTexelBuffer
		}

	case elem.TypeFlags.Has(ir.TypeFlagExternalImage) && elem.Image.Dim == ir.DimSubpassData:
		b.DescriptorType = ir.DescriptorTypeInputAttachment

	case elem.TypeFlags.Has(ir.TypeFlagExternalImage):
		if elem.Image.Sampled == 2 {
			b.DescriptorType = ir.DescriptorTypeStorageImage
		} else {
			b.DescriptorType = ir.DescriptorTypeSampledImage
		}

	case elem.TypeFlags.Has(ir.TypeFlagExternalSampler):
		b.DescriptorType = ir.DescriptorTypeSampler

	case elem.TypeFlags.Has(ir.TypeFlagExternalSampledImage):
		// glslang legacy workaround (issue #1096): a combined-image-sampler
		// parameter surfaces here as a sampled-image type; reduce to
		// texel-buffer when the underlying image is buffer-dim.
		if elem.Image.Dim == ir.DimBuffer {
			if elem.Image.Sampled == 1 {
				b.DescriptorType = ir.DescriptorTypeUniformTexelBuffer
			} else {
				b.DescriptorType = ir.DescriptorTypeStorageTexelBuffer
			}
		} else {
			b.DescriptorType = ir.DescriptorTypeCombinedImageSampler
		}

	case elem.TypeFlags.Has(ir.TypeFlagExternalBlock) && elem.DecorationFlags.Has(ir.DecorationBlock):
		b.DescriptorType = ir.DescriptorTypeUniformBuffer

	case elem.TypeFlags.Has(ir.TypeFlagExternalBlock) && elem.DecorationFlags.Has(ir.DecorationBufferBlock):
		b.DescriptorType = ir.DescriptorTypeStorageBuffer

	case elem.TypeFlags.Has(ir.TypeFlagExternalAccelerationStructure):
		b.DescriptorType = ir.DescriptorTypeAccelerationStructure

	default:
		return ir.DescriptorBinding{}, ir.NewError(ir.InvalidType, "variable does not match any descriptor classification rule").WithID(c.varID)
	}

	b.ResourceType = ir.ResourceTypeFor(b.DescriptorType)

	if b.DescriptorType == ir.DescriptorTypeUniformBuffer || b.DescriptorType == ir.DescriptorTypeStorageBuffer {
		block, err := buildBlockVariable(tr, elemType)
		if err != nil {
			return ir.DescriptorBinding{}, err
		}
		b.Block = block
	}

	return b, nil
}

// pairUAVCounters links each storage-buffer binding to its HLSL counter
// buffer, preferring an explicit HlslCounterBufferGOOGLE id and falling
// back to the `<name>@count` naming convention.
func pairUAVCounters(bindings []ir.DescriptorBinding, counterIDBySpirvID map[uint32]uint32) {
	byID := make(map[uint32]int, len(bindings))
	byName := make(map[string]int, len(bindings))
	for i := range bindings {
		byID[bindings[i].SpirvID] = i
		byName[bindings[i].Name] = i
	}
	for i := range bindings {
		if bindings[i].DescriptorType != ir.DescriptorTypeStorageBuffer {
			continue
		}
		if strings.HasSuffix(bindings[i].Name, "@count") {
			continue
		}
		var counterIdx int
		var found bool
		if cid, ok := counterIDBySpirvID[bindings[i].SpirvID]; ok {
			if idx, ok2 := byID[cid]; ok2 {
				counterIdx, found = idx, true
			}
		}
		if !found {
			if idx, ok := byName[bindings[i].Name+"@count"]; ok {
				counterIdx, found = idx, true
			}
		}
		if found {
			id := bindings[counterIdx].ID
			bindings[i].UAVCounterBinding = &id
		}
	}
}
