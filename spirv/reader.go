package spirv

import (
	"github.com/gogpu/spirvreflect/ir"
)

// MagicNumber is the SPIR-V magic number words[0] must equal.
const MagicNumber uint32 = 0x07230203

// wordReader gives bounds-checked access to a module's words, plus string
// extraction at a word offset (C1, spec.md §4.1). All higher components
// layer on this one.
type wordReader struct {
	words []uint32
}

func newWordReader(words []uint32) *wordReader {
	return &wordReader{words: words}
}

// readU32 returns the word at offset, or UnexpectedEof if out of range.
func (r *wordReader) readU32(offset uint32) (uint32, error) {
	if int(offset) >= len(r.words) {
		return 0, ir.NewError(ir.UnexpectedEof, "word offset out of range").AtOffset(int64(offset) * 4)
	}
	return r.words[offset], nil
}

// readStr reads a little-endian, NUL-terminated, 4-bytes-per-word string
// starting at offset, consuming at most maxWords words. wordsConsumed is
// ceil((len+1)/4).
func (r *wordReader) readStr(offset uint32, maxWords uint32) (string, uint32, error) {
	buf := make([]byte, 0, maxWords*4)
	var consumed uint32
	for i := uint32(0); i < maxWords; i++ {
		w, err := r.readU32(offset + i)
		if err != nil {
			return "", 0, err
		}
		bs := [4]byte{byte(w), byte(w >> 8), byte(w >> 16), byte(w >> 24)}
		terminated := false
		for _, b := range bs {
			if b == 0 {
				terminated = true
				break
			}
			buf = append(buf, b)
		}
		if terminated {
			consumed = i + 1
			return string(buf), consumed, nil
		}
	}
	return "", 0, ir.NewError(ir.ParseFailed, "string not NUL-terminated within maxWords").AtOffset(int64(offset) * 4)
}

// wordCount returns the total number of words available.
func (r *wordReader) wordCount() uint32 {
	return uint32(len(r.words))
}

// validateHeader checks the blob-level invariants from spec.md §4.1:
// at least MinWords words, a multiple of 4 bytes (guaranteed by the
// []uint32 representation itself), and a valid magic number.
func validateHeader(words []uint32) error {
	if len(words) < ir.MinWords {
		return ir.NewError(ir.InvalidCodeSize, "module shorter than MIN_WORDS")
	}
	if words[0] != MagicNumber {
		return ir.NewError(ir.InvalidMagicNumber, "word 0 is not the SPIR-V magic number")
	}
	return nil
}

// bytesToWords converts a little-endian byte blob into words, validating
// that its length is a multiple of 4.
func bytesToWords(data []byte) ([]uint32, error) {
	if len(data)%4 != 0 {
		return nil, ir.NewError(ir.InvalidCodeSize, "byte length is not a multiple of 4")
	}
	words := make([]uint32, len(data)/4)
	for i := range words {
		o := i * 4
		words[i] = uint32(data[o]) | uint32(data[o+1])<<8 | uint32(data[o+2])<<16 | uint32(data[o+3])<<24
	}
	return words, nil
}
