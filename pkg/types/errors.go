package types

import (
	"errors"
	"fmt"
)

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindTruncated        ErrKind = iota + 1 // a field, size or offset runs past the end of the buffer
	ErrKindHeaderMismatch                      // the fixed 76-byte header does not carry the link signature
	ErrKindOffsetOutOfRange                    // a relative offset resolves outside its containing block
	ErrKindMalformed                           // internal consistency checks failed
	ErrKindIO                                  // the link file could not be opened or read
)

// String returns the stable name of the kind.
func (k ErrKind) String() string {
	switch k {
	case ErrKindTruncated:
		return "TruncatedData"
	case ErrKindHeaderMismatch:
		return "HeaderMismatch"
	case ErrKindOffsetOutOfRange:
		return "OffsetOutOfRange"
	case ErrKindMalformed:
		return "MalformedStructure"
	case ErrKindIO:
		return "IO"
	default:
		return fmt.Sprintf("ErrKind(%d)", int(k))
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same kind, so that
// errors.Is(err, ErrTruncated) matches any truncation regardless of detail.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinels for errors.Is checks.
var (
	// ErrTruncated indicates a read past the end of the supplied buffer.
	ErrTruncated = &Error{Kind: ErrKindTruncated, Msg: "truncated link data"}
	// ErrHeaderMismatch indicates the buffer is not a shell link file.
	ErrHeaderMismatch = &Error{Kind: ErrKindHeaderMismatch, Msg: "not a shell link (bad header)"}
	// ErrOffsetOutOfRange indicates an offset outside its containing block.
	ErrOffsetOutOfRange = &Error{Kind: ErrKindOffsetOutOfRange, Msg: "offset out of range"}
	// ErrMalformed indicates a structural inconsistency.
	ErrMalformed = &Error{Kind: ErrKindMalformed, Msg: "malformed link structure"}
	// ErrIO indicates the link file could not be read.
	ErrIO = &Error{Kind: ErrKindIO, Msg: "cannot read link file"}
)

// Errorf builds an *Error of the given kind with a formatted detail message.
func Errorf(kind ErrKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// WrapIO wraps an I/O failure as ErrKindIO.
func WrapIO(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: ErrKindIO, Msg: msg, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (ErrKind, bool) {
	var te *Error
	if errors.As(err, &te) {
		return te.Kind, true
	}
	return 0, false
}
