package validator

import "errors"

var (
	// ErrValidationFailed matches every *Error.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidDescriptor matches errors caused by a descriptor that does not
	// resolve, at any nesting level.
	ErrInvalidDescriptor = errors.New("invalid type descriptor")

	// ErrInvalidOption matches errors caused by a malformed options argument.
	ErrInvalidOption = errors.New("invalid options")
)

// Error is returned when a value does not conform. Its message starts with
// Marker; Failure keeps the structured reason.
type Error struct {
	Op      string
	Args    []any
	Failure *Failure
	msg     string
}

func newError(op string, args []any, f *Failure, lineWidth int) *Error {
	return &Error{
		Op:      op,
		Args:    args,
		Failure: f,
		msg:     Format(op, f, lineWidth),
	}
}

func (e *Error) Error() string {
	return e.msg
}

// Is supports errors.Is against the package sentinels.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrValidationFailed:
		return true
	case ErrInvalidDescriptor:
		return e.Failure.Has(KindInvalidDescriptor)
	case ErrInvalidOption:
		return e.Failure.Has(KindInvalidOption)
	}
	return false
}

// ExtractFailure returns the structured failure carried by err, or nil.
func ExtractFailure(err error) *Failure {
	if err == nil {
		return nil
	}
	var verr *Error
	if errors.As(err, &verr) {
		return verr.Failure
	}
	return nil
}

// IsValidationError reports whether err carries a validation failure.
func IsValidationError(err error) bool {
	if err == nil {
		return false
	}
	var verr *Error
	return errors.As(err, &verr)
}
