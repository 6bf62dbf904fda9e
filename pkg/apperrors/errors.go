package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies an error for transport mapping. Validation and
// authorization failures are the caller's fault and are never retried.
// Conflicts mean the state changed under the caller. Storage faults are
// the only kind eligible for retry, and only by the storage layer itself.
type Kind int

const (
	KindValidation Kind = iota
	KindAuthorization
	KindNotFound
	KindConflict
	KindStorage
)

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(format string, args ...any) error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

func Authorization(format string, args ...any) error {
	return &Error{Kind: KindAuthorization, Msg: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...any) error {
	return &Error{Kind: KindConflict, Msg: fmt.Sprintf(format, args...)}
}

func Storage(msg string, err error) error {
	return &Error{Kind: KindStorage, Msg: msg, Err: err}
}

func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

func IsValidation(err error) bool    { k, ok := KindOf(err); return ok && k == KindValidation }
func IsAuthorization(err error) bool { k, ok := KindOf(err); return ok && k == KindAuthorization }
func IsNotFound(err error) bool      { k, ok := KindOf(err); return ok && k == KindNotFound }
func IsConflict(err error) bool      { k, ok := KindOf(err); return ok && k == KindConflict }
func IsStorage(err error) bool       { k, ok := KindOf(err); return ok && k == KindStorage }
