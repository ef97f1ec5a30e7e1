package apperrors

import "fmt"

// Kind classifies an AppError so callers can react to the category
// without matching on messages.
type Kind int

const (
	KindInternal Kind = iota
	KindFormat
	KindNotFound
	KindIO
)

type AppError struct {
	Code    int
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Kind: KindInternal, Message: message, Err: err}
}

// NewFormatError reports a malformed blueprint or level document.
func NewFormatError(message string, err error) *AppError {
	return &AppError{Code: 400, Kind: KindFormat, Message: message, Err: err}
}

// NewNotFoundError reports that no source exists for the requested level.
func NewNotFoundError(message string, err error) *AppError {
	return &AppError{Code: 404, Kind: KindNotFound, Message: message, Err: err}
}

// NewIOError reports a read or write failure at the storage boundary.
func NewIOError(message string, err error) *AppError {
	return &AppError{Code: 500, Kind: KindIO, Message: message, Err: err}
}

// IsKind reports whether err is an AppError of the given kind.
func IsKind(err error, kind Kind) bool {
	for err != nil {
		if appErr, ok := err.(*AppError); ok {
			return appErr.Kind == kind
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
