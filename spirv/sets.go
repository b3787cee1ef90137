package spirv

import (
	"sort"

	"github.com/gogpu/spirvreflect/ir"
)

// aggregateSets is C9 (spec.md §4.9): partitions bindings by set number,
// rejecting more than MaxDescriptorSets distinct sets, and returns the
// sets sorted by set number. entryPointSetViews builds the per-entry-point
// views.
func aggregateSets(bindings []ir.DescriptorBinding) ([]ir.DescriptorSet, error) {
	bySet := make(map[uint32][]*ir.DescriptorBinding)
	var setNumbers []uint32
	for i := range bindings {
		s := bindings[i].Set
		if _, ok := bySet[s]; !ok {
			setNumbers = append(setNumbers, s)
		}
		bySet[s] = append(bySet[s], &bindings[i])
	}
	if len(setNumbers) > ir.MaxDescriptorSets {
		return nil, ir.NewError(ir.InternalError, "module declares more than MAX_DESCRIPTOR_SETS distinct sets")
	}

	sort.Slice(setNumbers, func(i, j int) bool { return setNumbers[i] < setNumbers[j] })

	sets := make([]ir.DescriptorSet, 0, len(setNumbers))
	for _, s := range setNumbers {
		sets = append(sets, ir.DescriptorSet{Set: s, Bindings: bySet[s]})
	}
	return sets, nil
}

// entryPointSetViews builds the per-entry-point Sets field: for each
// global set, only the bindings whose spirv id is in the entry point's
// UsedUniforms.
func entryPointSetViews(sets []ir.DescriptorSet, eps []ir.EntryPoint) {
	for i := range eps {
		used := make(map[uint32]bool, len(eps[i].UsedUniforms))
		for _, id := range eps[i].UsedUniforms {
			used[id] = true
		}
		for _, s := range sets {
			var filtered []*ir.DescriptorBinding
			for _, b := range s.Bindings {
				if used[b.SpirvID] {
					filtered = append(filtered, b)
				}
			}
			if len(filtered) > 0 {
				eps[i].Sets = append(eps[i].Sets, ir.DescriptorSet{Set: s.Set, Bindings: filtered})
			}
		}
	}
}
