package ir

import "fmt"

// ErrorCode is the one result enum the library uses throughout. It mirrors
// the closed taxonomy in spec.md §7; enumerants follow Go naming but keep
// a 1:1 mapping to the source's SpvReflectResult members so a cause can
// always be traced back to a single word in the taxonomy.
type ErrorCode uint8

const (
	Success ErrorCode = iota
	NotReady
	ParseFailed
	AllocFailed
	RangeExceeded
	NullPointer
	InternalError
	CountMismatch
	ElementNotFound
	InvalidCodeSize
	InvalidMagicNumber
	UnexpectedEof
	InvalidIdReference
	InvalidInstruction
	UnexpectedBlockData
	InvalidBlockMemberReference
	InvalidEntryPoint
	InvalidExecutionMode
	DuplicateId
	Recursion
	InvalidType
	UnresolvedEvaluation
	EvalTreeInitFailed
)

var errorCodeNames = [...]string{
	"Success", "NotReady", "ParseFailed", "AllocFailed", "RangeExceeded",
	"NullPointer", "InternalError", "CountMismatch", "ElementNotFound",
	"InvalidCodeSize", "InvalidMagicNumber", "UnexpectedEof",
	"InvalidIdReference", "InvalidInstruction", "UnexpectedBlockData",
	"InvalidBlockMemberReference", "InvalidEntryPoint", "InvalidExecutionMode",
	"DuplicateId", "Recursion", "InvalidType", "UnresolvedEvaluation",
	"EvalTreeInitFailed",
}

// String implements fmt.Stringer.
func (c ErrorCode) String() string {
	if int(c) < len(errorCodeNames) {
		return errorCodeNames[c]
	}
	return fmt.Sprintf("ErrorCode(%d)", uint8(c))
}

// Error is the concrete error type every fallible operation returns. It
// carries the taxonomy code plus enough context (a byte/word offset, an
// id, or a free-form detail string) to make the failure actionable
// without needing to re-derive it from the code alone.
type Error struct {
	Code   ErrorCode
	Detail string
	// Offset is the byte offset into the module at which the error was
	// detected, or -1 if not applicable.
	Offset int64
	// ID is the SPIR-V result id involved, or 0 if not applicable.
	ID uint32

	cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Code.String()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.ID != 0 {
		msg = fmt.Sprintf("%s (id %%%d)", msg, e.ID)
	}
	if e.Offset >= 0 {
		msg = fmt.Sprintf("%s (offset %d)", msg, e.Offset)
	}
	return msg
}

// Unwrap exposes the wrapped cause, if any, so errors.Is/errors.As compose.
func (e *Error) Unwrap() error {
	return e.cause
}

// NewError builds an Error with no offset/id context.
func NewError(code ErrorCode, detail string) *Error {
	return &Error{Code: code, Detail: detail, Offset: -1}
}

// Wrap builds an Error that carries cause as its Unwrap chain.
func Wrap(code ErrorCode, cause error, detail string) *Error {
	return &Error{Code: code, Detail: detail, Offset: -1, cause: cause}
}

// AtOffset returns a copy of e with Offset set.
func (e *Error) AtOffset(off int64) *Error {
	c := *e
	c.Offset = off
	return &c
}

// WithID returns a copy of e with ID set.
func (e *Error) WithID(id uint32) *Error {
	c := *e
	c.ID = id
	return &c
}

// Is reports whether target is an *Error with the same Code, so callers
// can do errors.Is(err, ir.NewError(ir.ElementNotFound, "")).
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return other.Code == e.Code
}
