package types

import "fmt"

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindNotFound       ErrKind = iota // missing key/value/path
	ErrKindAccessDenied                  // insufficient rights for the operation
	ErrKindInvalidHandle                 // operation on a closed/invalid key
	ErrKindBufferTooSmall                // item outgrew the queried maximum between sizing and sweep
	ErrKindType                          // requested decode doesn't match the value's RegType
	ErrKindGeneric                       // any other non-success store status
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindNotFound:
		return "not found"
	case ErrKindAccessDenied:
		return "access denied"
	case ErrKindInvalidHandle:
		return "invalid handle"
	case ErrKindBufferTooSmall:
		return "buffer too small"
	case ErrKindType:
		return "value has different type"
	default:
		return "store error"
	}
}

// Error is a typed error carrying the originating operation and the raw
// store status code for diagnostics.
type Error struct {
	Kind ErrKind
	Op   string // originating operation, e.g. "registry: open key"
	Code uint32 // raw store status code, 0 when not applicable
	Err  error  // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := e.Kind.String()
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Code != 0 {
		msg += fmt.Sprintf(" (status %d)", e.Code)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches sentinels by kind, so errors.Is(err, ErrNotFound) works for any
// *Error produced by the layer.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Op == "" && t.Code == 0 {
		return e.Kind == t.Kind
	}
	return e.Kind == t.Kind && e.Op == t.Op && e.Code == t.Code
}

// Sentinels for errors.Is.
var (
	// ErrNotFound indicates a missing key, value, or path.
	ErrNotFound = &Error{Kind: ErrKindNotFound}
	// ErrAccessDenied indicates the handle lacks the required rights.
	ErrAccessDenied = &Error{Kind: ErrKindAccessDenied}
	// ErrInvalidHandle indicates an operation on a closed or invalid key.
	ErrInvalidHandle = &Error{Kind: ErrKindInvalidHandle}
	// ErrBufferTooSmall indicates an item outgrew the previously queried
	// maximum length before it could be read.
	ErrBufferTooSmall = &Error{Kind: ErrKindBufferTooSmall}
	// ErrTypeMismatch indicates a typed decode of a value with a different RegType.
	ErrTypeMismatch = &Error{Kind: ErrKindType}
)
