package eval

// Wrapped-opcode values an OpSpecConstantOp's own Opcode operand can take
// (spec.md §4.10's supported-opcode list), mirroring the public SPIR-V
// grammar's numeric assignments.
const (
	opUndef    = 1
	opSConvert = 114
	opUConvert = 113
	opFConvert = 115

	opVectorShuffle    = 79
	opCompositeExtract = 81
	opCompositeInsert  = 82

	opSNegate = 126
	opNot     = 200

	opIAdd = 128
	opISub = 130
	opIMul = 132
	opUDiv = 134
	opSDiv = 135
	opUMod = 137
	opSRem = 138
	opSMod = 139

	opShiftRightLogical    = 194
	opShiftRightArithmetic = 195
	opShiftLeftLogical     = 196
	opBitwiseOr            = 197
	opBitwiseXor           = 198
	opBitwiseAnd           = 199

	opLogicalEqual    = 164
	opLogicalNotEqual = 165
	opLogicalOr       = 166
	opLogicalAnd      = 167
	opLogicalNot      = 168
	opSelect          = 169

	opIEqual             = 170
	opINotEqual          = 171
	opUGreaterThan       = 172
	opSGreaterThan       = 173
	opUGreaterThanEqual  = 174
	opSGreaterThanEqual  = 175
	opULessThan          = 176
	opSLessThan          = 177
	opULessThanEqual     = 178
	opSLessThanEqual     = 179
)
