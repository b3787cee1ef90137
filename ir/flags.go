package ir

// TypeFlag is a bitset describing the structural kind of a TypeDescription.
// A type can carry more than one bit: a struct that is also a block carries
// Struct plus the Block DecorationFlag, while a combined-image-sampler
// carries both ExternalImage and ExternalSampler semantics at the
// descriptor-binder level (see DescriptorType), not here.
type TypeFlag uint32

const (
	TypeFlagVoid TypeFlag = 1 << iota
	TypeFlagBool
	TypeFlagInt
	TypeFlagFloat
	TypeFlagVector
	TypeFlagMatrix
	TypeFlagExternalImage
	TypeFlagExternalSampler
	TypeFlagExternalSampledImage
	TypeFlagExternalBlock
	TypeFlagExternalAccelerationStructure
	TypeFlagArray
	TypeFlagStruct
)

func (f TypeFlag) Has(bit TypeFlag) bool { return f&bit != 0 }

// DecorationFlag is a bitset of the recognized decorations that survive
// onto a TypeDescription or BlockVariable. Only the closed whitelist named
// in spec.md §4.3 is represented.
type DecorationFlag uint32

const (
	DecorationRelaxedPrecision DecorationFlag = 1 << iota
	DecorationBlock
	DecorationBufferBlock
	DecorationRowMajor
	DecorationColumnMajor
	DecorationBuiltIn
	DecorationNoPerspective
	DecorationFlat
	DecorationNonWritable
	DecorationNonReadable
)

func (f DecorationFlag) Has(bit DecorationFlag) bool { return f&bit != 0 }

// StorageClass mirrors the SPIR-V StorageClass operand values actually
// consumed by the reflector.
type StorageClass uint32

const (
	StorageClassUniformConstant StorageClass = 0
	StorageClassInput           StorageClass = 1
	StorageClassUniform         StorageClass = 2
	StorageClassOutput          StorageClass = 3
	StorageClassWorkgroup       StorageClass = 4
	StorageClassCrossWorkgroup  StorageClass = 5
	StorageClassPrivate         StorageClass = 6
	StorageClassFunction        StorageClass = 7
	StorageClassGeneric         StorageClass = 8
	StorageClassPushConstant    StorageClass = 9
	StorageClassAtomicCounter   StorageClass = 10
	StorageClassImage           StorageClass = 11
	StorageClassStorageBuffer   StorageClass = 12
)

// Dim mirrors SPIR-V's Dim operand for OpTypeImage.
type Dim uint32

const (
	Dim1D Dim = iota
	Dim2D
	Dim3D
	DimCube
	DimRect
	DimBuffer
	DimSubpassData
)

// ImageFormat mirrors the subset of SPIR-V's Image Format operand the
// reflector preserves verbatim (no decoding beyond the raw enumerant).
type ImageFormat uint32

// BuiltIn mirrors the SPIR-V BuiltIn decoration operand values the
// reflector recognizes.
type BuiltIn uint32

const (
	BuiltInPosition BuiltIn = iota
	BuiltInPointSize
	_
	_
	_
	BuiltInVertexID
	BuiltInInstanceID
	BuiltInPrimitiveID
	BuiltInInvocationID
	BuiltInLayer
	BuiltInViewportIndex
	BuiltInTessLevelOuter
	BuiltInTessLevelInner
	BuiltInTessCoord
	BuiltInPatchVertices
	BuiltInFragCoord
	BuiltInPointCoord
	BuiltInFrontFacing
	BuiltInSampleID
	BuiltInSamplePosition
	BuiltInSampleMask
	_
	BuiltInFragDepth
	BuiltInHelperInvocation
	BuiltInNumWorkgroups
	BuiltInWorkgroupSize
	BuiltInWorkgroupID
	BuiltInLocalInvocationID
	BuiltInGlobalInvocationID
	BuiltInLocalInvocationIndex
)

const (
	BuiltInVertexIndex   BuiltIn = 42
	BuiltInInstanceIndex BuiltIn = 43
)

// BuiltInNone denotes "not a built-in"; only valid when DecorationBuiltIn
// is unset on the carrying entity.
const BuiltInNone BuiltIn = 0xFFFFFFFF

// ExecutionModel mirrors SPIR-V's OpEntryPoint Execution Model operand.
type ExecutionModel uint32

const (
	ExecutionModelVertex ExecutionModel = iota
	ExecutionModelTessellationControl
	ExecutionModelTessellationEvaluation
	ExecutionModelGeometry
	ExecutionModelFragment
	ExecutionModelGLCompute
	ExecutionModelKernel
)

const (
	ExecutionModelTaskNV             ExecutionModel = 5267
	ExecutionModelMeshNV             ExecutionModel = 5268
	ExecutionModelRayGenerationKHR   ExecutionModel = 5313
	ExecutionModelIntersectionKHR    ExecutionModel = 5314
	ExecutionModelAnyHitKHR          ExecutionModel = 5315
	ExecutionModelClosestHitKHR      ExecutionModel = 5316
	ExecutionModelMissKHR            ExecutionModel = 5317
	ExecutionModelCallableKHR        ExecutionModel = 5318
	ExecutionModelTaskEXT            ExecutionModel = 5364
	ExecutionModelMeshEXT            ExecutionModel = 5365
)

// ShaderStageFlag is the bitflag form of ExecutionModel used by
// EntryPoint.Stage and descriptor binding enumeration filters.
type ShaderStageFlag uint32

const (
	ShaderStageVertex ShaderStageFlag = 1 << iota
	ShaderStageTessellationControl
	ShaderStageTessellationEvaluation
	ShaderStageGeometry
	ShaderStageFragment
	ShaderStageCompute
	ShaderStageTaskNV
	ShaderStageMeshNV
	ShaderStageRayGenerationKHR
	ShaderStageIntersectionKHR
	ShaderStageAnyHitKHR
	ShaderStageClosestHitKHR
	ShaderStageMissKHR
	ShaderStageCallableKHR
)

// StageFromExecutionModel translates the wire enum into the bitflag.
func StageFromExecutionModel(m ExecutionModel) ShaderStageFlag {
	switch m {
	case ExecutionModelVertex:
		return ShaderStageVertex
	case ExecutionModelTessellationControl:
		return ShaderStageTessellationControl
	case ExecutionModelTessellationEvaluation:
		return ShaderStageTessellationEvaluation
	case ExecutionModelGeometry:
		return ShaderStageGeometry
	case ExecutionModelFragment:
		return ShaderStageFragment
	case ExecutionModelGLCompute, ExecutionModelKernel:
		return ShaderStageCompute
	case ExecutionModelTaskNV, ExecutionModelTaskEXT:
		return ShaderStageTaskNV
	case ExecutionModelMeshNV, ExecutionModelMeshEXT:
		return ShaderStageMeshNV
	case ExecutionModelRayGenerationKHR:
		return ShaderStageRayGenerationKHR
	case ExecutionModelIntersectionKHR:
		return ShaderStageIntersectionKHR
	case ExecutionModelAnyHitKHR:
		return ShaderStageAnyHitKHR
	case ExecutionModelClosestHitKHR:
		return ShaderStageClosestHitKHR
	case ExecutionModelMissKHR:
		return ShaderStageMissKHR
	case ExecutionModelCallableKHR:
		return ShaderStageCallableKHR
	default:
		return 0
	}
}

// ExecutionMode mirrors the SPIR-V ExecutionMode operand values the
// entry-point resolver recognizes.
type ExecutionMode uint32

const (
	ExecutionModeInvocations ExecutionMode = iota
	ExecutionModeSpacingEqual
	ExecutionModeSpacingFractionalEven
	ExecutionModeSpacingFractionalOdd
	ExecutionModeVertexOrderCw
	ExecutionModeVertexOrderCcw
	ExecutionModePixelCenterInteger
	ExecutionModeOriginUpperLeft
	ExecutionModeOriginLowerLeft
	ExecutionModeEarlyFragmentTests
	ExecutionModePointMode
	ExecutionModeXfb
	ExecutionModeDepthReplacing
	_
	ExecutionModeDepthGreater
	ExecutionModeDepthLess
	ExecutionModeDepthUnchanged
	ExecutionModeLocalSize
	ExecutionModeLocalSizeHint
	ExecutionModeInputPoints
	ExecutionModeInputLines
	ExecutionModeInputLinesAdjacency
	ExecutionModeTriangles
	ExecutionModeInputTrianglesAdjacency
	ExecutionModeQuads
	ExecutionModeIsolines
	ExecutionModeOutputVertices
	ExecutionModeOutputPoints
	ExecutionModeOutputLineStrip
	ExecutionModeOutputTriangleStrip
)

const (
	ExecutionModeLocalSizeId     ExecutionMode = 38
	ExecutionModeLocalSizeHintId ExecutionMode = 39
)

// Decoration mirrors the raw SPIR-V Decoration operand values; only the
// whitelist in spec.md §4.3 has a named constant, everything else is
// dropped by the node-graph builder.
type Decoration uint32

const (
	DecorationWireRelaxedPrecision Decoration = 0
	DecorationWireSpecId           Decoration = 1
	DecorationWireBlock             Decoration = 2
	DecorationWireBufferBlock       Decoration = 3
	DecorationWireRowMajor          Decoration = 4
	DecorationWireColMajor          Decoration = 5
	DecorationWireArrayStride       Decoration = 6
	DecorationWireMatrixStride      Decoration = 7
	DecorationWireBuiltIn           Decoration = 11
	DecorationWireNoPerspective     Decoration = 13
	DecorationWireFlat              Decoration = 14
	DecorationWireNonWritable       Decoration = 24
	DecorationWireNonReadable       Decoration = 25
	DecorationWireLocation          Decoration = 30
	DecorationWireBinding           Decoration = 33
	DecorationWireDescriptorSet     Decoration = 34
	DecorationWireOffset            Decoration = 35
	DecorationWireInputAttachmentIndex Decoration = 43

	// SPV_GOOGLE extension decorations; hardcoded numeric values per
	// spec.md §9 "Extension opcodes".
	DecorationWireHlslCounterBufferGOOGLE Decoration = 5634
	DecorationWireHlslSemanticGOOGLE      Decoration = 5635
)

// Invalid is the sentinel used for unset ids/numbers (spec.md §4.2).
const Invalid uint32 = 0xFFFFFFFF

// DontChange sentinels for the C11 edit API (spec.md §6).
const (
	BindingNumberDontChange uint32 = 0xFFFFFFFF
	SetNumberDontChange     uint32 = 0xFFFFFFFF
)

// Size limits from spec.md §6.
const (
	MaxArrayDims       = 32
	MaxDescriptorSets  = 64
	MaxVectorDims      = 4
	MinWords           = 5
)
