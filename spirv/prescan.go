package spirv

import "github.com/gogpu/spirvreflect/ir"

// instruction is one decoded instruction span: the word offset of its
// header word, its opcode, and its total word count (including the
// header word itself).
type instruction struct {
	offset    uint32
	opcode    Op
	wordCount uint32
}

// scanResult is the output of the C2 pre-scan: instruction boundaries
// plus the counts needed to size every downstream arena up front
// (spec.md §4.2).
type scanResult struct {
	bound uint32

	instructions []instruction

	numStrings       int
	numEntryPoints   int
	numCapabilities  int
	numAccessChains  int
	numFunctionsBody int
	numTypes         int
	numConstants     int
}

// preScan walks words[5:] once, classifying instructions and counting
// entities so buildNodes (C3) can allocate its arrays up front.
func preScan(r *wordReader) (*scanResult, error) {
	res := &scanResult{}

	bound, err := r.readU32(3)
	if err != nil {
		return nil, err
	}
	res.bound = bound

	offset := uint32(5)
	total := r.wordCount()

	var inFunction bool
	var sawLabelInFunction bool

	for offset < total {
		header, err := r.readU32(offset)
		if err != nil {
			return nil, err
		}
		opcode := Op(header & 0xFFFF)
		wordCount := header >> 16
		if wordCount == 0 {
			return nil, ir.NewError(ir.InvalidInstruction, "zero word count").AtOffset(int64(offset) * 4)
		}
		if offset+wordCount > total {
			return nil, ir.NewError(ir.UnexpectedEof, "instruction extends past end of module").AtOffset(int64(offset) * 4)
		}

		res.instructions = append(res.instructions, instruction{offset: offset, opcode: opcode, wordCount: wordCount})

		switch opcode {
		case OpString:
			res.numStrings++
		case OpEntryPoint:
			res.numEntryPoints++
		case OpCapability:
			res.numCapabilities++
		case OpAccessChain, OpInBoundsAccessChain, OpPtrAccessChain, OpInBoundsPtrAccessChain:
			res.numAccessChains++
		case OpFunction:
			inFunction = true
			sawLabelInFunction = false
		case OpLabel:
			if inFunction {
				sawLabelInFunction = true
			}
		case OpFunctionEnd:
			if inFunction && sawLabelInFunction {
				res.numFunctionsBody++
			}
			inFunction = false
			sawLabelInFunction = false
		default:
			if isTypeOp(opcode) {
				res.numTypes++
			} else if isConstantLike(opcode) {
				res.numConstants++
			}
		}

		offset += wordCount
	}
	if inFunction {
		return nil, ir.NewError(ir.UnexpectedEof, "module ends inside a function body").AtOffset(int64(total) * 4)
	}

	return res, nil
}
