package spirv

import (
	"sort"

	"github.com/gogpu/spirvreflect/ir"
)

// maxCallDepth bounds the transitive-closure walk in reachableAccesses; a
// real shader's call graph is shallow, so this is a recursion guard, not a
// budget (spec.md §4.5).
const maxCallDepth = 256

// functionByID indexes graph.functions by spirv id for the call-graph walk.
type functionByID map[uint32]*functionRaw

func indexFunctions(g *graph) functionByID {
	idx := make(functionByID, len(g.functions))
	for i := range g.functions {
		idx[g.functions[i].id] = &g.functions[i]
	}
	return idx
}

// reachableAccesses returns the sorted, deduplicated set of pointer ids
// accessed by entryFn and every function it transitively calls, depth-capped
// per spec.md §4.5.
func reachableAccesses(idx functionByID, entryFn uint32) ([]uint32, error) {
	done := make(map[uint32]bool)  // fully walked, safe to skip
	onStack := make(map[uint32]bool) // on the current call path
	accessed := make(map[uint32]bool)

	var walk func(id uint32, depth int) error
	walk = func(id uint32, depth int) error {
		if depth > maxCallDepth {
			return ir.NewError(ir.Recursion, "function call graph exceeds max depth").WithID(id)
		}
		if done[id] {
			return nil
		}
		if onStack[id] {
			return ir.NewError(ir.Recursion, "function call graph contains a cycle").WithID(id)
		}
		onStack[id] = true
		defer func() { onStack[id] = false }()

		fn, ok := idx[id]
		if !ok {
			done[id] = true
			return nil
		}
		for _, a := range fn.accessed {
			accessed[a] = true
		}
		for _, callee := range fn.callees {
			if err := walk(callee, depth+1); err != nil {
				return err
			}
		}
		done[id] = true
		return nil
	}

	if err := walk(entryFn, 0); err != nil {
		return nil, err
	}

	out := make([]uint32, 0, len(accessed))
	for id := range accessed {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}
