// Package ir defines the reflection data model produced by the spirv
// package: descriptor bindings and sets, push-constant block layouts,
// per-entry-point interface variables, specialization constants, and the
// type description arena that everything else references.
//
// The model is arena-indexed: types, bindings and constant records are
// referenced by dense handles (TypeID, BindingID, ConstantRecordID) into
// slices owned by Module, so those lookups are O(1) slice indexing, not a
// linear scan. Descriptor sets, the per-entry-point input/output lists and
// a binding's block layout hold pointers into Module-owned data instead.
package ir
