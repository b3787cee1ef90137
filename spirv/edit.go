package spirv

import "github.com/gogpu/spirvreflect/ir"

// This file is C11's mutating side: the three in-place edits spec.md
// §4.11 allows. Each rewrites exactly one word in m.Words (computed from
// a WordOffset field stashed by earlier parsing); no instruction is
// inserted, removed, or resized, so m.ByteLen() never changes.

func writeWord(m *ir.Module, byteOffset int64, value uint32) error {
	if byteOffset < 0 || byteOffset%4 != 0 {
		return ir.NewError(ir.InternalError, "word offset not tracked for this field")
	}
	idx := byteOffset / 4
	if idx >= int64(len(m.Words)) {
		return ir.NewError(ir.RangeExceeded, "word offset out of range")
	}
	m.Words[idx] = value
	return nil
}

// ChangeBindingNumber rewrites b's Binding decoration word in place, and
// optionally its DescriptorSet decoration word when newSet != DontChange
// (ir.Invalid). The descriptor-set aggregation is rebuilt afterwards so
// Module.Sets and every entry point's per-set view stay consistent.
func ChangeBindingNumber(m *ir.Module, b *ir.DescriptorBinding, newBinding, newSet uint32) error {
	if newBinding != ir.Invalid {
		if err := writeWord(m, b.BindingWordOffset, newBinding); err != nil {
			return err
		}
		b.Binding = newBinding
	}
	if newSet != ir.Invalid {
		if err := writeWord(m, b.SetWordOffset, newSet); err != nil {
			return err
		}
		b.Set = newSet
	}
	return resyncSets(m)
}

// ChangeSetNumber rewrites the DescriptorSet decoration word of every
// binding currently in set, moving them to newSet, then rebuilds
// Module.Sets and every entry point's per-set view.
func ChangeSetNumber(m *ir.Module, set, newSet uint32) error {
	found := false
	for i := range m.Bindings {
		b := &m.Bindings[i]
		if b.Set != set {
			continue
		}
		found = true
		if err := writeWord(m, b.SetWordOffset, newSet); err != nil {
			return err
		}
		b.Set = newSet
	}
	if !found {
		return ir.NewError(ir.ElementNotFound, "no descriptor set with that number")
	}
	return resyncSets(m)
}

// resyncSets re-runs C9 over the module's current Bindings, replacing
// Sets and every entry point's per-entry-point view. Per spec.md §8
// scenario 4, pointers into the previous per-set view are invalidated.
func resyncSets(m *ir.Module) error {
	sets, err := aggregateSets(m.Bindings)
	if err != nil {
		return err
	}
	m.Sets = sets
	for i := range m.EntryPoints {
		m.EntryPoints[i].Sets = nil
	}
	entryPointSetViews(m.Sets, m.EntryPoints)
	return nil
}

// ChangeInputVariableLocation rewrites v's Location decoration word in
// place. v must belong to m; the caller is responsible for passing a
// variable obtained from m's own entry points.
func ChangeInputVariableLocation(m *ir.Module, v *ir.InterfaceVariable, newLocation uint32) error {
	return changeVariableLocation(m, v, newLocation)
}

// ChangeOutputVariableLocation rewrites v's Location decoration word in
// place. v must belong to m; the caller is responsible for passing a
// variable obtained from m's own entry points.
func ChangeOutputVariableLocation(m *ir.Module, v *ir.InterfaceVariable, newLocation uint32) error {
	return changeVariableLocation(m, v, newLocation)
}

func changeVariableLocation(m *ir.Module, v *ir.InterfaceVariable, newLocation uint32) error {
	if err := writeWord(m, v.LocationWordOffset, newLocation); err != nil {
		return err
	}
	v.Location = newLocation
	return nil
}
