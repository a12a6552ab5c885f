package pkgerror

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType classifies errors into semantic kinds of failure.
//
// The set is open: any package may declare additional tags as constants of
// this type. Unclassified is reserved as the library-wide default and marks
// errors no layer has explicitly recognized yet.
type ErrorType string

const (
	// Unclassified is the default classification. Errors carrying it are
	// treated as unexpected and are the only ones logged at the boundary.
	Unclassified ErrorType = "ERROR_TYPE_UNCLASSIFIED"

	BadRequest   ErrorType = "ERROR_TYPE_BAD_REQUEST"
	NotFound     ErrorType = "ERROR_TYPE_NOT_FOUND"
	Conflict     ErrorType = "ERROR_TYPE_CONFLICT"
	Unauthorized ErrorType = "ERROR_TYPE_UNAUTHORIZED"
	Forbidden    ErrorType = "ERROR_TYPE_FORBIDDEN"
)

// HTTPStatus maps the classification to an HTTP status code.
//
// Unknown tags fall through to 500, so newly declared tags stay safe until
// the mapping learns about them.
func (t ErrorType) HTTPStatus() int {
	switch t {
	case BadRequest:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	case Unauthorized:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// Context is a single structured annotation describing which input or
// condition triggered the error. It is a slot, not a stack: attaching a new
// record replaces any previous one.
type Context struct {
	Field   string
	Message string
}

// Typed is implemented by errors that expose a classification.
type Typed interface {
	Type() ErrorType
}

// Contextual is implemented by errors that may carry a context record.
type Contextual interface {
	Context() (Context, bool)
}

// Causer is implemented by errors that wrap another error.
type Causer interface {
	Unwrap() error
}

// Error combines a classification, a cause chain, and at most one context
// record. Values are immutable once constructed; wrapping always produces a
// new value, so they are safe to share across goroutines.
type Error struct {
	errType ErrorType
	cause   error
	ctx     *Context
}

var (
	_ Typed      = (*Error)(nil)
	_ Contextual = (*Error)(nil)
	_ Causer     = (*Error)(nil)
)

// Error returns the cumulative message: each wrap prefixes its own message,
// so the text preserves the full wrap history.
func (e *Error) Error() string {
	return e.cause.Error()
}

// Type returns the classification.
func (e *Error) Type() ErrorType {
	return e.errType
}

// Context returns the attached record, if one is present.
func (e *Error) Context() (Context, bool) {
	if e.ctx == nil {
		return Context{}, false
	}
	return *e.ctx, true
}

// Unwrap returns the wrapped cause, keeping errors.Is and errors.As working
// across the chain.
func (e *Error) Unwrap() error {
	return e.cause
}

// New creates an error of type t with the given message.
func (t ErrorType) New(message string) error {
	return &Error{errType: t, cause: errors.New(message)}
}

// Newf creates an error of type t with a formatted message.
func (t ErrorType) Newf(format string, args ...any) error {
	return &Error{errType: t, cause: fmt.Errorf(format, args...)}
}

// Wrap wraps err with a message prefix and forces the classification to t,
// regardless of what err previously carried. This is the only way to change
// an error's classification mid-chain. A context record already attached to
// err is kept.
func (t ErrorType) Wrap(err error, message string) error {
	wrapped := &Error{errType: t, cause: fmt.Errorf("%s: %w", message, err)}
	if c, ok := contextOf(err); ok {
		wrapped.ctx = &c
	}
	return wrapped
}

// Wrapf wraps err with a formatted message prefix and forces the
// classification to t.
func (t ErrorType) Wrapf(err error, format string, args ...any) error {
	return t.Wrap(err, fmt.Sprintf(format, args...))
}

// New creates an unclassified error with the given message.
func New(message string) error {
	return Unclassified.New(message)
}

// Newf creates an unclassified error with a formatted message.
func Newf(format string, args ...any) error {
	return Unclassified.Newf(format, args...)
}

// Wrap wraps err with a message prefix. The classification is sticky: it is
// copied from err when err is already classified, otherwise the result is
// Unclassified. A context record already attached to err is kept.
func Wrap(err error, message string) error {
	return GetType(err).Wrap(err, message)
}

// Wrapf wraps err with a formatted message prefix, keeping its
// classification per Wrap.
func Wrapf(err error, format string, args ...any) error {
	return GetType(err).Wrap(err, fmt.Sprintf(format, args...))
}

// AddContext returns a new error carrying the given context record,
// replacing any record attached before. The classification, cause chain, and
// cumulative message are unchanged. Foreign errors become unclassified
// wrappers around the original value.
func AddContext(err error, field, message string) error {
	record := Context{Field: field, Message: message}

	if e, ok := err.(*Error); ok {
		return &Error{errType: e.errType, cause: e.cause, ctx: &record}
	}

	return &Error{errType: Unclassified, cause: err, ctx: &record}
}

// GetType returns the classification of err, or Unclassified when err does
// not expose one.
func GetType(err error) ErrorType {
	if typed, ok := err.(Typed); ok {
		return typed.Type()
	}
	return Unclassified
}

// GetContext returns the context record attached to err. ok is false when
// err carries no record or does not expose context at all.
func GetContext(err error) (Context, bool) {
	return contextOf(err)
}

// Cause walks the cause chain to the innermost, non-wrapping error: the
// value originally produced by New/Newf or supplied by a foreign dependency.
// Non-wrapping errors are returned unchanged.
func Cause(err error) error {
	for err != nil {
		causer, ok := err.(Causer)
		if !ok {
			return err
		}
		next := causer.Unwrap()
		if next == nil {
			return err
		}
		err = next
	}
	return err
}

func contextOf(err error) (Context, bool) {
	if contextual, ok := err.(Contextual); ok {
		return contextual.Context()
	}
	return Context{}, false
}
