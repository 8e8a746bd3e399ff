package errs

import (
	"errors"
	"fmt"
)

// Kind classifies an error for callers. Every kind except KindInternal is a
// business-rule rejection whose message is safe to show to the user.
type Kind string

const (
	KindNotFound                   Kind = "NOT_FOUND"
	KindForbidden                  Kind = "FORBIDDEN"
	KindValidation                 Kind = "VALIDATION_ERROR"
	KindInvalidDateRange           Kind = "INVALID_DATE_RANGE"
	KindUnavailable                Kind = "UNAVAILABLE"
	KindInsufficientStock          Kind = "INSUFFICIENT_STOCK"
	KindInsufficientStockForWindow Kind = "INSUFFICIENT_STOCK_FOR_WINDOW"
	KindDuplicateOverlap           Kind = "DUPLICATE_OVERLAP"
	KindInvalidTransition          Kind = "INVALID_TRANSITION"
	KindPrematureTransition        Kind = "PREMATURE_TRANSITION"
	KindInternal                   Kind = "INTERNAL"
)

const InternalMessage = "Internal server error"

// Sentinels for errors.Is matching by kind.
var (
	ErrNotFound                   = &Error{kind: KindNotFound, msg: "not found"}
	ErrForbidden                  = &Error{kind: KindForbidden, msg: "forbidden"}
	ErrValidation                 = &Error{kind: KindValidation, msg: "validation error"}
	ErrInvalidDateRange           = &Error{kind: KindInvalidDateRange, msg: "invalid date range"}
	ErrUnavailable                = &Error{kind: KindUnavailable, msg: "unavailable"}
	ErrInsufficientStock          = &Error{kind: KindInsufficientStock, msg: "insufficient stock"}
	ErrInsufficientStockForWindow = &Error{kind: KindInsufficientStockForWindow, msg: "insufficient stock for window"}
	ErrDuplicateOverlap           = &Error{kind: KindDuplicateOverlap, msg: "duplicate overlap"}
	ErrInvalidTransition          = &Error{kind: KindInvalidTransition, msg: "invalid transition"}
	ErrPrematureTransition        = &Error{kind: KindPrematureTransition, msg: "premature transition"}
	ErrInternal                   = &Error{kind: KindInternal, msg: InternalMessage}
)

type Error struct {
	kind Kind
	msg  string
	err  error
}

func (e *Error) Error() string {
	return e.msg
}

func (e *Error) Kind() Kind {
	return e.kind
}

func (e *Error) Unwrap() error {
	return e.err
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.kind == e.kind
}

func Newf(kind Kind, format string, args ...any) error {
	return &Error{kind: kind, msg: fmt.Sprintf(format, args...)}
}

// Internal hides cause behind the generic message while keeping it for logs.
func Internal(cause error) error {
	if cause == nil {
		return nil
	}
	var e *Error
	if errors.As(cause, &e) {
		return cause
	}
	return &Error{kind: KindInternal, msg: InternalMessage, err: Wrap(cause, "internal")}
}

func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}
	return KindInternal
}

// Message returns the user-facing text of err.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) && e.kind != KindInternal {
		return e.msg
	}
	return InternalMessage
}
