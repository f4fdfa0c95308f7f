package types

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failure for the API boundary. The gRPC layer maps
// each kind to a status code; everything below it returns *Error values so
// callers never have to string-match messages.
type ErrorKind string

const (
	// KindBadArgument marks request input the caller can fix (bad ids,
	// unknown attachments, malformed flags).
	KindBadArgument ErrorKind = "bad_argument"
	// KindNotFound marks a missing challenge, instance or file.
	KindNotFound ErrorKind = "not_found"
	// KindPermissionDenied marks access to something the actor may not
	// see yet: unreleased challenges, unpublished sources.
	KindPermissionDenied ErrorKind = "permission_denied"
	// KindFailedPrecondition marks operations that need state the caller
	// does not have, e.g. starting a challenge with no services.
	KindFailedPrecondition ErrorKind = "failed_precondition"
	// KindQuotaExceeded marks the per-actor pending instance limit.
	KindQuotaExceeded ErrorKind = "quota_exceeded"
	// KindAlreadyActive marks a start request while an instance of the
	// same challenge is still running or creating.
	KindAlreadyActive ErrorKind = "already_active"
	// KindScriptError marks failures inside author-provided JavaScript.
	KindScriptError ErrorKind = "script_error"
	// KindInternal marks everything else. Its message is safe to surface;
	// the wrapped cause is not.
	KindInternal ErrorKind = "internal"
)

// Error carries a kind alongside the usual message/cause pair.
type Error struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is lets errors.Is match on bare kinds via KindError sentinels.
func (e *Error) Is(target error) bool {
	if ke, ok := target.(*Error); ok {
		return ke.Kind == e.Kind && (ke.Msg == "" || ke.Msg == e.Msg)
	}
	return false
}

// NewError builds an *Error with a formatted message.
func NewError(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// WrapError builds an *Error around a cause.
func WrapError(kind ErrorKind, err error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}

// NewBadArgument reports invalid caller input.
func NewBadArgument(format string, args ...interface{}) *Error {
	return NewError(KindBadArgument, format, args...)
}

// NewNotFound reports a missing resource.
func NewNotFound(format string, args ...interface{}) *Error {
	return NewError(KindNotFound, format, args...)
}

// NewPermissionDenied reports access to a gated resource.
func NewPermissionDenied(format string, args ...interface{}) *Error {
	return NewError(KindPermissionDenied, format, args...)
}

// NewFailedPrecondition reports missing state.
func NewFailedPrecondition(format string, args ...interface{}) *Error {
	return NewError(KindFailedPrecondition, format, args...)
}

// NewQuotaExceeded reports the pending-instance limit.
func NewQuotaExceeded(format string, args ...interface{}) *Error {
	return NewError(KindQuotaExceeded, format, args...)
}

// NewAlreadyActive reports a duplicate start attempt.
func NewAlreadyActive(format string, args ...interface{}) *Error {
	return NewError(KindAlreadyActive, format, args...)
}

// NewScriptError reports a failure in author-provided JavaScript.
func NewScriptError(format string, args ...interface{}) *Error {
	return NewError(KindScriptError, format, args...)
}

// NewInternal reports an internal failure with a caller-safe message.
func NewInternal(format string, args ...interface{}) *Error {
	return NewError(KindInternal, format, args...)
}

// WrapInternal wraps an internal cause with a caller-safe message.
func WrapInternal(err error, format string, args ...interface{}) *Error {
	return WrapError(KindInternal, err, format, args...)
}

// KindOf extracts the kind from an error chain, defaulting to KindInternal
// for plain errors.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// IsKind reports whether err carries the given kind anywhere in its chain.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
