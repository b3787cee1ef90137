package spirv

// Op is a SPIR-V opcode, the low 16 bits of an instruction's header word.
type Op uint16

// Opcodes the reflector consumes meaningfully (spec.md §6); everything
// else is skipped by the node-graph builder but still walked over by the
// pre-scan so instruction boundaries stay correct.
const (
	OpNop                    Op = 0
	OpUndef                  Op = 1
	OpSourceContinued        Op = 2
	OpSource                 Op = 3
	OpSourceExtension        Op = 4
	OpName                   Op = 5
	OpMemberName             Op = 6
	OpString                 Op = 7
	OpExtInstImport          Op = 11
	OpExtInst                Op = 12
	OpMemoryModel            Op = 14
	OpEntryPoint             Op = 15
	OpExecutionMode          Op = 16
	OpCapability             Op = 17
	OpTypeVoid               Op = 19
	OpTypeBool               Op = 20
	OpTypeInt                Op = 21
	OpTypeFloat              Op = 22
	OpTypeVector             Op = 23
	OpTypeMatrix             Op = 24
	OpTypeImage              Op = 25
	OpTypeSampler            Op = 26
	OpTypeSampledImage       Op = 27
	OpTypeArray              Op = 28
	OpTypeRuntimeArray       Op = 29
	OpTypeStruct             Op = 30
	OpTypeOpaque             Op = 31
	OpTypePointer            Op = 32
	OpTypeFunction           Op = 33
	OpTypeForwardPointer     Op = 39
	OpConstantTrue           Op = 41
	OpConstantFalse          Op = 42
	OpConstant               Op = 43
	OpConstantComposite      Op = 44
	OpConstantSampler        Op = 45
	OpConstantNull           Op = 46
	OpSpecConstantTrue       Op = 48
	OpSpecConstantFalse      Op = 49
	OpSpecConstant           Op = 50
	OpSpecConstantComposite  Op = 51
	OpSpecConstantOp         Op = 52
	OpFunction               Op = 54
	OpFunctionParameter      Op = 55
	OpFunctionEnd            Op = 56
	OpFunctionCall           Op = 57
	OpVariable               Op = 59
	OpImageTexelPointer      Op = 60
	OpLoad                   Op = 61
	OpStore                  Op = 62
	OpCopyMemory             Op = 63
	OpCopyMemorySized        Op = 64
	OpAccessChain            Op = 65
	OpInBoundsAccessChain    Op = 66
	OpPtrAccessChain         Op = 67
	OpArrayLength            Op = 68
	OpGenericPtrMemSemantics Op = 69
	OpInBoundsPtrAccessChain Op = 70
	OpDecorate               Op = 71
	OpMemberDecorate         Op = 72
	OpLabel                  Op = 248

	// SPV_GOOGLE extension opcodes; hardcoded per spec.md §9.
	OpDecorateId         Op = 332
	OpDecorateString     Op = 5632
	OpMemberDecorateString Op = 5633

	OpExecutionModeId Op = 331
)

// isConstantLike reports whether op is one of the constant-producing
// opcodes that feeds ConstantRecord/eval's three-pass build.
func isConstantLike(op Op) bool {
	switch op {
	case OpConstantTrue, OpConstantFalse, OpConstant, OpConstantComposite,
		OpConstantSampler, OpConstantNull,
		OpSpecConstantTrue, OpSpecConstantFalse, OpSpecConstant,
		OpSpecConstantComposite, OpSpecConstantOp:
		return true
	default:
		return false
	}
}

// isTypeOp reports whether op is an OpType* opcode.
func isTypeOp(op Op) bool {
	switch op {
	case OpTypeVoid, OpTypeBool, OpTypeInt, OpTypeFloat, OpTypeVector,
		OpTypeMatrix, OpTypeImage, OpTypeSampler, OpTypeSampledImage,
		OpTypeArray, OpTypeRuntimeArray, OpTypeStruct, OpTypeOpaque,
		OpTypePointer, OpTypeFunction, OpTypeForwardPointer:
		return true
	default:
		return false
	}
}

// isAccessChainOp reports whether op produces a derived pointer that the
// function analyzer must treat as an access into its base pointer
// (spec.md §4.5).
func isAccessChainOp(op Op) bool {
	switch op {
	case OpAccessChain, OpInBoundsAccessChain, OpPtrAccessChain,
		OpInBoundsPtrAccessChain:
		return true
	default:
		return false
	}
}
