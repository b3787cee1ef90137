package ir

// CreateFlags configures Module construction (spec.md §6).
type CreateFlags uint32

const (
	// FlagNoCopy tells the parser to borrow the caller's word buffer
	// instead of copying it. The caller-provided buffer must outlive
	// the Module.
	FlagNoCopy CreateFlags = 1 << iota
	// FlagEvaluateConstant opts into building the spec-constant
	// evaluator (C10) alongside the reflection tree.
	FlagEvaluateConstant
)

// Has reports whether bit is set in f.
func (f CreateFlags) Has(bit CreateFlags) bool { return f&bit != 0 }

// SourceLanguage mirrors OpSource's Source Language operand.
type SourceLanguage uint32

const (
	SourceLanguageUnknown SourceLanguage = iota
	SourceLanguageESSL
	SourceLanguageGLSL
	SourceLanguageOpenCLC
	SourceLanguageOpenCLCPP
	SourceLanguageHLSL
)

// Module is the immutable (outside of the three C11 edits) reflection
// tree produced by spirv.Create, and the unit every query/edit operation
// targets (spec.md §3).
type Module struct {
	// Words is the module's own word storage: either a private copy, or
	// (when FlagNoCopy was given) the caller's buffer, borrowed.
	Words     []uint32
	OwnsWords bool

	Generator      Generator
	SourceLanguage SourceLanguage
	SourceVersion  uint32
	SourceString   string

	Capabilities []Capability

	EntryPoints []EntryPoint

	// InputVariables/OutputVariables/InterfaceVariables mirror the first
	// entry point's fields of the same name, for callers that only ever
	// deal with single-entry-point modules and don't want to index
	// EntryPoints themselves (spec.md §3's compatibility view). Empty
	// when the module has no entry points.
	InputVariables     []*InterfaceVariable
	OutputVariables    []*InterfaceVariable
	InterfaceVariables []InterfaceVariable

	// Flags is the ir.CreateFlags the module was built with;
	// eval.EvaluationInterface consults FlagEvaluateConstant against it.
	Flags CreateFlags

	// Bindings is every descriptor binding across the whole module,
	// sorted by (binding number, spirv id).
	Bindings []DescriptorBinding
	Sets     []DescriptorSet

	PushConstants []BlockVariable

	SpecConstants []SpecializationConstant

	// Types is the dense type-description arena; TypeID indexes it
	// directly.
	Types []TypeDescription

	// ConstantRecords backs the eval package's three-pass build; see
	// ConstantRecord's doc comment.
	ConstantRecords []ConstantRecord

	// constantRecordBySpirvID lets eval and the C11 query layer resolve
	// a spirv id to a ConstantRecordID in O(1) instead of scanning.
	constantRecordBySpirvID map[uint32]ConstantRecordID
}

// ByteLen returns the module's size in bytes.
func (m *Module) ByteLen() int {
	return len(m.Words) * 4
}

// TypeByID returns the type description for id; ok is false if id is out
// of range.
func (m *Module) TypeByID(id TypeID) (*TypeDescription, bool) {
	if int(id) >= len(m.Types) {
		return nil, false
	}
	return &m.Types[id], true
}

// ConstantRecordBySpirvID resolves a spirv result id to its
// ConstantRecord, if any constant-like instruction produced it.
func (m *Module) ConstantRecordBySpirvID(id uint32) (*ConstantRecord, bool) {
	if m.constantRecordBySpirvID == nil {
		return nil, false
	}
	idx, ok := m.constantRecordBySpirvID[id]
	if !ok {
		return nil, false
	}
	return &m.ConstantRecords[idx], true
}

// IndexConstantRecords (re)builds the spirv-id -> ConstantRecordID index.
// Called once by the parser after ConstantRecords is fully populated.
func (m *Module) IndexConstantRecords() {
	m.constantRecordBySpirvID = make(map[uint32]ConstantRecordID, len(m.ConstantRecords))
	for _, rec := range m.ConstantRecords {
		m.constantRecordBySpirvID[rec.SpirvID] = rec.ID
	}
}

// CompatibilityIssue reports a descriptor mismatch between two modules at
// the same (set, binding) — the "find_pipelines" feature supplemented
// from original_source/examples/find_pipelines.cpp (see SPEC_FULL.md §6).
type CompatibilityIssue struct {
	Set     uint32
	Binding uint32
	Reason  string
}

// CompatibleWith reports every (set, binding) pair present in both m and
// other whose DescriptorType or binding-array Count disagree.
func (m *Module) CompatibleWith(other *Module) []CompatibilityIssue {
	index := make(map[[2]uint32]*DescriptorBinding, len(m.Bindings))
	for i := range m.Bindings {
		b := &m.Bindings[i]
		index[[2]uint32{b.Set, b.Binding}] = b
	}

	var issues []CompatibilityIssue
	for i := range other.Bindings {
		b := &other.Bindings[i]
		key := [2]uint32{b.Set, b.Binding}
		mb, ok := index[key]
		if !ok {
			continue
		}
		switch {
		case mb.DescriptorType != b.DescriptorType:
			issues = append(issues, CompatibilityIssue{
				Set: b.Set, Binding: b.Binding,
				Reason: "descriptor type mismatch: " + mb.DescriptorType.String() + " vs " + b.DescriptorType.String(),
			})
		case mb.ArrayCount != b.ArrayCount:
			issues = append(issues, CompatibilityIssue{
				Set: b.Set, Binding: b.Binding,
				Reason: "binding array count mismatch",
			})
		}
	}
	return issues
}
