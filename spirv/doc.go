// Package spirv decodes a compiled SPIR-V binary into the reflection tree
// defined by package ir: word-level access (C1), an instruction pre-scan
// (C2), a node graph (C3), a type resolver (C4), a function call-graph
// analyzer (C5), a descriptor binder (C6), a block layouter (C7), an
// entry-point resolver (C8), and a descriptor-set aggregator (C9). Create
// runs all nine in sequence and returns an immutable *ir.Module. Query and
// the three in-place edit operations (C11) live here too, since edits
// mutate the same word storage the parser built the tree from.
//
// The opcode/decoration/storage-class vocabulary is adapted from the
// sibling naga project's disassembler (cmd/spvdis), repurposed from
// printing SPIR-V to parsing it.
package spirv
