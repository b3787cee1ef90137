package spirv

import (
	"testing"

	"github.com/gogpu/spirvreflect/ir"
)

func TestWordReader_ReadU32_OutOfRange(t *testing.T) {
	r := newWordReader([]uint32{1, 2, 3})
	if _, err := r.readU32(2); err != nil {
		t.Fatalf("readU32(2): %v", err)
	}
	if _, err := r.readU32(3); err == nil {
		t.Fatal("expected UnexpectedEof reading past the end")
	} else if e, ok := err.(*ir.Error); !ok || e.Code != ir.UnexpectedEof {
		t.Fatalf("err = %v, want UnexpectedEof", err)
	}
}

func TestWordReader_ReadStr(t *testing.T) {
	words := append([]uint32{0, 0}, packString("main")...)
	r := newWordReader(words)
	s, consumed, err := r.readStr(2, uint32(len(words)-2))
	if err != nil {
		t.Fatalf("readStr: %v", err)
	}
	if s != "main" {
		t.Fatalf("readStr = %q, want main", s)
	}
	if consumed != uint32(len(words)-2) {
		t.Fatalf("consumed = %d, want %d", consumed, len(words)-2)
	}
}

func TestWordReader_ReadStr_Unterminated(t *testing.T) {
	// Four non-NUL bytes with no terminator within the single word budget.
	words := []uint32{uint32('a') | uint32('b')<<8 | uint32('c')<<16 | uint32('d')<<24}
	r := newWordReader(words)
	if _, _, err := r.readStr(0, 1); err == nil {
		t.Fatal("expected ParseFailed for an unterminated string")
	} else if e, ok := err.(*ir.Error); !ok || e.Code != ir.ParseFailed {
		t.Fatalf("err = %v, want ParseFailed", err)
	}
}

func TestValidateHeader(t *testing.T) {
	good := buildUniformBlockModule(t)
	if err := validateHeader(good); err != nil {
		t.Fatalf("validateHeader on a well-formed module: %v", err)
	}

	tooShort := []uint32{MagicNumber, 0, 0, 1}
	if err := validateHeader(tooShort); err == nil {
		t.Fatal("expected InvalidCodeSize for a too-short word stream")
	} else if e, ok := err.(*ir.Error); !ok || e.Code != ir.InvalidCodeSize {
		t.Fatalf("err = %v, want InvalidCodeSize", err)
	}

	badMagic := append([]uint32{}, good...)
	badMagic[0] = 0
	if err := validateHeader(badMagic); err == nil {
		t.Fatal("expected InvalidMagicNumber")
	} else if e, ok := err.(*ir.Error); !ok || e.Code != ir.InvalidMagicNumber {
		t.Fatalf("err = %v, want InvalidMagicNumber", err)
	}
}

func TestBytesToWords(t *testing.T) {
	data := []byte{0x03, 0x02, 0x23, 0x07}
	words, err := bytesToWords(data)
	if err != nil {
		t.Fatalf("bytesToWords: %v", err)
	}
	if len(words) != 1 || words[0] != MagicNumber {
		t.Fatalf("words = %v, want [%#x]", words, MagicNumber)
	}

	if _, err := bytesToWords([]byte{1, 2, 3}); err == nil {
		t.Fatal("expected InvalidCodeSize for a non-multiple-of-4 byte length")
	} else if e, ok := err.(*ir.Error); !ok || e.Code != ir.InvalidCodeSize {
		t.Fatalf("err = %v, want InvalidCodeSize", err)
	}
}
