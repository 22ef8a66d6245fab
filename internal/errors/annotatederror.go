package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
)

// AnnotatedError carries the source location and slog attributes of the place where it was created.
type AnnotatedError struct {
	// msg is the error message.
	msg string
	// pc is the program counter for the location of the error provided by runtime.Callers.
	pc uintptr
	// attrs are added to the log event to give more context for the error.
	attrs []slog.Attr
	// wrapped is the cause, if any.
	wrapped error
}

func newAnnotated(skip int, msg string, wrapped error, attrs []slog.Attr) *AnnotatedError {
	var pcs [1]uintptr
	runtime.Callers(skip, pcs[:])
	return &AnnotatedError{
		msg:     msg,
		pc:      pcs[0],
		attrs:   attrs,
		wrapped: wrapped,
	}
}

// New creates a new AnnotatedError with the given message and attributes.
func New(msg string, attrs ...slog.Attr) error {
	// Skip runtime.Callers, newAnnotated and this function.
	return newAnnotated(3, msg, nil, attrs) //nolint:mnd // call depth
}

// NewSentinel creates a plain error without other context that can be detected with errors.Is.
func NewSentinel(msg string) error {
	return errors.New(msg)
}

// Wrap adds a message, the caller location and optional attributes to err. Returns nil when err is nil.
func Wrap(err error, msg string, attrs ...slog.Attr) error {
	if err == nil {
		return nil
	}
	return newAnnotated(3, msg, err, attrs) //nolint:mnd // call depth
}

// Error implements error interface.
func (e *AnnotatedError) Error() string {
	if e.wrapped == nil {
		return e.msg
	}
	return fmt.Sprintf("%s: %s", e.msg, e.wrapped.Error())
}

// Unwrap gives access to the wrapped cause.
func (e *AnnotatedError) Unwrap() error {
	return e.wrapped
}

// LogValue formats the error for useful logging.
func (e *AnnotatedError) LogValue() slog.Value {
	frames := runtime.CallersFrames([]uintptr{e.pc})
	source, _ := frames.Next()

	attrs := make([]slog.Attr, 0, len(e.attrs)+2) //nolint:mnd // message and source
	attrs = append(attrs,
		slog.String("msg", e.Error()),
		slog.String("source", fmt.Sprintf("%s:%d", source.File, source.Line)),
	)

	// Collect the attributes of the whole chain so that context added deeper down is not lost.
	var chained *AnnotatedError
	for cur := error(e); cur != nil; cur = errors.Unwrap(cur) {
		if errors.As(cur, &chained) {
			attrs = append(attrs, chained.attrs...)
			cur = chained
		}
	}

	return slog.GroupValue(attrs...)
}

// SlogError wraps err as a slog attribute under the key "error".
func SlogError(err error) slog.Attr {
	return slog.Any("error", err)
}

// As exposes stdlib errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Is exposes stdlib errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// Join exposes stdlib errors.Join.
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// Unwrap exposes stdlib errors.Unwrap.
func Unwrap(err error) error {
	return errors.Unwrap(err)
}
