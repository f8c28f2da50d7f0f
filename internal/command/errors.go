package command

import "errors"

// Kind tags a command failure so the front end can branch on it instead
// of parsing message text.
type Kind string

const (
	KindValidation Kind = "VALIDATION"
	KindHostCall   Kind = "HOST_CALL"
	KindNotFound   Kind = "NOT_FOUND"
	KindInternal   Kind = "INTERNAL"
)

// Error is the tagged error crossing the command boundary.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func HostCallError(message string, err error) *Error {
	return &Error{Kind: KindHostCall, Message: message, Err: err}
}

func ValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// KindOf returns the error's kind, defaulting to INTERNAL for untagged
// errors.
func KindOf(err error) Kind {
	var cmdErr *Error
	if errors.As(err, &cmdErr) {
		return cmdErr.Kind
	}
	return KindInternal
}
