package ir

// DescriptorType is the 12-way classification from spec.md §3/§4.6.
type DescriptorType uint32

const (
	DescriptorTypeSampler DescriptorType = iota
	DescriptorTypeCombinedImageSampler
	DescriptorTypeSampledImage
	DescriptorTypeStorageImage
	DescriptorTypeUniformTexelBuffer
	DescriptorTypeStorageTexelBuffer
	DescriptorTypeUniformBuffer
	DescriptorTypeStorageBuffer
	DescriptorTypeUniformBufferDynamic
	DescriptorTypeStorageBufferDynamic
	DescriptorTypeInputAttachment
	DescriptorTypeAccelerationStructure
)

func (d DescriptorType) String() string {
	switch d {
	case DescriptorTypeSampler:
		return "Sampler"
	case DescriptorTypeCombinedImageSampler:
		return "CombinedImageSampler"
	case DescriptorTypeSampledImage:
		return "SampledImage"
	case DescriptorTypeStorageImage:
		return "StorageImage"
	case DescriptorTypeUniformTexelBuffer:
		return "UniformTexelBuffer"
	case DescriptorTypeStorageTexelBuffer:
		return "StorageTexelBuffer"
	case DescriptorTypeUniformBuffer:
		return "UniformBuffer"
	case DescriptorTypeStorageBuffer:
		return "StorageBuffer"
	case DescriptorTypeUniformBufferDynamic:
		return "UniformBufferDynamic"
	case DescriptorTypeStorageBufferDynamic:
		return "StorageBufferDynamic"
	case DescriptorTypeInputAttachment:
		return "InputAttachment"
	case DescriptorTypeAccelerationStructure:
		return "AccelerationStructure"
	default:
		return "Unknown"
	}
}

// ResourceType is the HLSL-facing classification derived from
// DescriptorType by a fixed table (spec.md §3/§4.6). It is a bitset
// because HLSL register classes can combine (e.g. a combined image
// sampler is reported as both SRV and Sampler).
type ResourceType uint32

const (
	ResourceTypeSampler ResourceType = 1 << iota
	ResourceTypeCBV
	ResourceTypeSRV
	ResourceTypeUAV
)

// resourceTypeByDescriptorType is the fixed table spec.md §4.6 calls for.
var resourceTypeByDescriptorType = [...]ResourceType{
	DescriptorTypeSampler:               ResourceTypeSampler,
	DescriptorTypeCombinedImageSampler:  ResourceTypeSampler | ResourceTypeSRV,
	DescriptorTypeSampledImage:          ResourceTypeSRV,
	DescriptorTypeStorageImage:          ResourceTypeUAV,
	DescriptorTypeUniformTexelBuffer:    ResourceTypeSRV,
	DescriptorTypeStorageTexelBuffer:    ResourceTypeUAV,
	DescriptorTypeUniformBuffer:         ResourceTypeCBV,
	DescriptorTypeStorageBuffer:         ResourceTypeUAV,
	DescriptorTypeUniformBufferDynamic:  ResourceTypeCBV,
	DescriptorTypeStorageBufferDynamic:  ResourceTypeUAV,
	DescriptorTypeInputAttachment:       ResourceTypeSRV,
	DescriptorTypeAccelerationStructure: ResourceTypeSRV,
}

// ResourceTypeFor looks up the fixed HLSL resource-type classification.
func ResourceTypeFor(d DescriptorType) ResourceType {
	if int(d) < len(resourceTypeByDescriptorType) {
		return resourceTypeByDescriptorType[d]
	}
	return 0
}

// Capability mirrors a SPIR-V OpCapability operand value.
type Capability uint32

// Format is the VK_FORMAT-equivalent enumerant derived for interface
// variables from component type x width x component count (spec.md §3).
type Format uint32

const (
	FormatUndefined Format = iota
	FormatR32Uint
	FormatR32Sint
	FormatR32Sfloat
	FormatR32G32Uint
	FormatR32G32Sint
	FormatR32G32Sfloat
	FormatR32G32B32Uint
	FormatR32G32B32Sint
	FormatR32G32B32Sfloat
	FormatR32G32B32A32Uint
	FormatR32G32B32A32Sint
	FormatR32G32B32A32Sfloat
	FormatR64Uint
	FormatR64Sint
	FormatR64Sfloat
	FormatR64G64Uint
	FormatR64G64Sint
	FormatR64G64Sfloat
	FormatR64G64B64Uint
	FormatR64G64B64Sint
	FormatR64G64B64Sfloat
	FormatR64G64B64A64Uint
	FormatR64G64B64A64Sint
	FormatR64G64B64A64Sfloat
)

// FormatFor derives the Vulkan-equivalent format from a scalar's
// signedness/float-ness, bit width, and a vector's component count. It
// returns FormatUndefined for combinations the reflector doesn't encode
// (e.g. bool vectors, which carry no VK_FORMAT equivalent).
func FormatFor(flags TypeFlag, width uint32, signed bool, componentCount uint32) Format {
	if componentCount == 0 {
		componentCount = 1
	}
	switch {
	case flags.Has(TypeFlagFloat) && width == 32:
		switch componentCount {
		case 1:
			return FormatR32Sfloat
		case 2:
			return FormatR32G32Sfloat
		case 3:
			return FormatR32G32B32Sfloat
		case 4:
			return FormatR32G32B32A32Sfloat
		}
	case flags.Has(TypeFlagFloat) && width == 64:
		switch componentCount {
		case 1:
			return FormatR64Sfloat
		case 2:
			return FormatR64G64Sfloat
		case 3:
			return FormatR64G64B64Sfloat
		case 4:
			return FormatR64G64B64A64Sfloat
		}
	case flags.Has(TypeFlagInt) && width == 32:
		if signed {
			switch componentCount {
			case 1:
				return FormatR32Sint
			case 2:
				return FormatR32G32Sint
			case 3:
				return FormatR32G32B32Sint
			case 4:
				return FormatR32G32B32A32Sint
			}
		}
		switch componentCount {
		case 1:
			return FormatR32Uint
		case 2:
			return FormatR32G32Uint
		case 3:
			return FormatR32G32B32Uint
		case 4:
			return FormatR32G32B32A32Uint
		}
	case flags.Has(TypeFlagInt) && width == 64:
		if signed {
			switch componentCount {
			case 1:
				return FormatR64Sint
			case 2:
				return FormatR64G64Sint
			case 3:
				return FormatR64G64B64Sint
			case 4:
				return FormatR64G64B64A64Sint
			}
		}
		switch componentCount {
		case 1:
			return FormatR64Uint
		case 2:
			return FormatR64G64Uint
		case 3:
			return FormatR64G64B64Uint
		case 4:
			return FormatR64G64B64A64Uint
		}
	}
	return FormatUndefined
}

// Generator names the compiler/toolchain that produced the module, read
// from word 2's high 16 bits. Recognized purely for informational value;
// an unrecognized id is not an error.
type Generator uint32

var generatorNames = map[Generator]string{
	0:      "Unregistered",
	1:      "Khronos LLVM/SPIR-V Translator",
	2:      "Khronos SPIR-V Tools Assembler",
	3:      "Khronos Glslang Reference Front End",
	6:      "Khronos SPIR-V Tools Linker",
	8:      "Google shaderc over Glslang",
	13:     "Google spiregg",
	14:     "Google rspirv",
	22:     "Google skc",
	24:     "Mesa MESA-IR/SPIR-V Translator",
	29:     "Khronos SPIR-V Tools Optimizer",
	35:     "vkd3d",
}

// Name returns the human-readable toolchain name, or "Unknown" for an
// unrecognized generator id. Retained for informational purposes only
// (spec.md §6); no behavior keys off it.
func (g Generator) Name() string {
	if name, ok := generatorNames[g]; ok {
		return name
	}
	return "Unknown"
}
