package ir

// TypeID is a dense, arena-indexed handle into Module.Types. It is
// distinct from the SPIR-V result id the type was parsed from; the
// mapping from result id to TypeID is kept by the spirv package during
// parsing (spec.md §9 Open Question: ids must map into a dense vector,
// not be rediscovered by a linear scan).
type TypeID uint32

// NumericTraits describes scalar/vector/matrix shape, mirroring
// spec.md §3.
type NumericTraits struct {
	ScalarWidth uint32 // bits
	Signed      bool   // only meaningful when the type is an int

	VectorComponentCount uint32

	MatrixColumnCount uint32
	MatrixRowCount    uint32
	MatrixStride      uint32
}

// ImageTraits describes an OpTypeImage, mirroring spec.md §3.
type ImageTraits struct {
	Dim        Dim
	Depth      uint32
	Arrayed    uint32
	MS         uint32
	Sampled    uint32 // 0=runtime, 1=sampled, 2=storage
	ImageFormat ImageFormat
}

// ArrayTraits describes the (possibly multi-dimensional) array shape of a
// type, mirroring spec.md §3/§4.4. Dims[i] == 0 denotes a runtime array in
// that dimension; Dims[i] == Invalid denotes a spec-constant-sized
// dimension, whose length instruction id is stashed in SpecConstantOpIDs.
type ArrayTraits struct {
	DimCount          uint32
	Dims              [MaxArrayDims]uint32
	SpecConstantOpIDs [MaxArrayDims]uint32
	Stride            uint32
}

// TypeDescription is one node of the type tree built by the type resolver
// (spec.md §4.4). Identified by the SPIR-V result id it was parsed from;
// TypeID is the dense handle used for cross-references.
type TypeDescription struct {
	ID   TypeID
	Opcode uint16

	// TypeName is set on the way down during resolution and never
	// overwritten (spec.md §4.4).
	TypeName string
	// StructMemberName is set only when this description is embedded as
	// a struct member.
	StructMemberName string

	// StorageClass is meaningful only for pointer types.
	StorageClass StorageClass

	TypeFlags       TypeFlag
	DecorationFlags DecorationFlag

	Numeric NumericTraits
	Image   ImageTraits
	Array   ArrayTraits

	// Component is the pointee/element/column type for pointers,
	// vectors, matrices, and arrays. Zero (TypeID(0)) when not
	// applicable; callers must consult TypeFlags first.
	Component TypeID
	HasComponent bool

	// Members lists the member TypeIDs for a struct, in declaration
	// order.
	Members []TypeID
}

// BlockVarID is the handle type of BlockVariable.ID. The block layouter
// (C7) does not assign it, so every BlockVariable.ID is zero.
type BlockVarID uint32

// BlockVariable is one member of a buffer block, push-constant block, or
// (recursively) a member thereof. Mirrors spec.md §3's invariants:
// size <= padded_size; members[i].padded_size == members[i+1].offset -
// members[i].offset for all but the last member; the last member's
// padded_size rounds up to 16.
type BlockVariable struct {
	ID   BlockVarID
	Name string

	// Offset is relative to the immediate parent; AbsoluteOffset is
	// relative to the block root (zero inside an array-of-struct
	// parent).
	Offset         uint32
	AbsoluteOffset uint32
	Size           uint32
	PaddedSize     uint32

	DecorationFlags DecorationFlag
	Numeric         NumericTraits
	Array           ArrayTraits

	Type TypeID

	// OffsetWordOffset is the byte offset of the OpMemberDecorate Offset
	// instruction's literal-value word, enabling C11-style queries
	// without a further pass (it is not part of the three edit
	// operations, which touch Binding/Set/Location only, but the field
	// is retained per spec.md §3 for symmetry and possible future use).
	OffsetWordOffset int64

	// Unused is cleared iff some access chain reaches this member or
	// any of its ancestors (spec.md §4.7 "Usage marking").
	Unused bool

	Members []BlockVariable
}

// BindingID is a dense handle into Module.Bindings.
type BindingID uint32

// DescriptorBinding describes one shader resource slot (spec.md §3/§4.6).
type DescriptorBinding struct {
	ID       BindingID
	SpirvID  uint32
	Name     string

	Binding              uint32
	InputAttachmentIndex uint32
	Set                  uint32

	// Word offsets of the Binding/DescriptorSet decorations, retained so
	// the C11 edit API can rewrite exactly one word each.
	BindingWordOffset int64
	SetWordOffset     int64

	DescriptorType DescriptorType
	ResourceType   ResourceType

	Image ImageTraits

	// Block is populated when the binding is buffer-backed (uniform or
	// storage buffer); nil otherwise.
	Block *BlockVariable

	// ArrayDims/ArrayCount describe a binding array's outer dimensions;
	// Count == 1 when the binding is not an array.
	ArrayDims  []uint32
	ArrayCount uint32

	// UAVCounterBinding points at the paired counter binding's ID, or
	// nil if this binding has none (spec.md §4.6 UAV-counter pairing).
	UAVCounterBinding *BindingID

	Accessed bool

	Type TypeID
}

// DescriptorSet groups bindings sharing a set number (spec.md §3/§4.9).
type DescriptorSet struct {
	Set      uint32
	Bindings []*DescriptorBinding
}

// InterfaceVariable is a shader input or output bound by location or
// (for HLSL-origin shaders) semantic (spec.md §3/§4.8).
type InterfaceVariable struct {
	SpirvID uint32
	Name    string

	Location           uint32
	LocationWordOffset int64

	StorageClass StorageClass
	Semantic     string

	DecorationFlags DecorationFlag
	BuiltIn         BuiltIn

	Numeric NumericTraits
	Array   ArrayTraits
	Format  Format

	Members []InterfaceVariable

	Type TypeID
}

// LocalSizeFlag selects how EntryPoint.LocalSize was specified
// (spec.md §3).
type LocalSizeFlag uint8

const (
	LocalSizeLiteral LocalSizeFlag = iota
	LocalSizeID
	LocalSizeHintLiteral
	LocalSizeHintID
	LocalSizeWorkgroupSizeBuiltin
)

// LocalSize carries a compute entry point's workgroup size, however it
// was expressed (spec.md §3/§4.8).
type LocalSize struct {
	X, Y, Z uint32
	Flags   LocalSizeFlag
}

// EntryPoint describes one OpEntryPoint and its associated execution
// modes (spec.md §3/§4.8).
type EntryPoint struct {
	Name    string
	SpirvID uint32

	ExecutionModel ExecutionModel
	Stage          ShaderStageFlag

	Invocations    uint32
	OutputVertices uint32
	LocalSize      LocalSize

	ExecutionModes []ExecutionMode

	InputVariables  []*InterfaceVariable
	OutputVariables []*InterfaceVariable
	// InterfaceVariables owns every interface variable listed by this
	// entry point, input and output alike.
	InterfaceVariables []InterfaceVariable

	// UsedUniforms/UsedPushConstants are sorted, deduplicated spirv ids:
	// the transitive access set intersected with declared uniform /
	// push-constant ids (spec.md §4.8).
	UsedUniforms      []uint32
	UsedPushConstants []uint32

	// Sets is this entry point's per-entry-point descriptor-set view:
	// only bindings reachable from this entry point (spec.md §4.9).
	Sets []DescriptorSet
}

// SpecializationConstant describes one specializable constant
// (spec.md §3).
type SpecializationConstant struct {
	Name       string
	ConstantID uint32 // the SpecId decoration value
	SpirvID    uint32
	Default    ScalarValue
	Type       TypeID
}

// ConstantRecordID is a dense handle into Module.ConstantRecords.
type ConstantRecordID uint32

// ConstantRecord is the raw material the eval package's three-pass build
// consumes: one per OpConstant*/OpSpecConstant*/OpSpecConstantOp/
// OpConstantComposite/OpSpecConstantComposite/OpConstantNull/
// OpConstantSampler instruction (spec.md §4.10). The spirv package
// populates these while parsing; eval owns no SPIR-V decoding of its own.
type ConstantRecord struct {
	ID ConstantRecordID

	SpirvID     uint32
	Opcode      uint16
	SubOpcode   uint16 // only meaningful when Opcode is OpSpecConstantOp
	ResultType  TypeID
	SpecID      uint32 // Invalid when not specializable

	// IDOperands/Literals are the raw operand words in instruction
	// order, copied out of the instruction stream since the module's
	// word storage is not eval's to own.
	IDOperands []uint32
	Literals   []uint32
}
