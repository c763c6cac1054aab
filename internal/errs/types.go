package errs

type ErrorMessage struct {
	Message string
}

func (e *ErrorMessage) Error() string { return e.Message }

type NotFoundError struct {
	ErrorMessage
}

type InvalidModeError struct {
	ErrorMessage
	Mode string
}

type ValidationError struct {
	ErrorMessage
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewInvalidModeError(mode string) *InvalidModeError {
	return &InvalidModeError{
		ErrorMessage: ErrorMessage{Message: "invalid mode: " + mode},
		Mode:         mode,
	}
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

// NewUserNotFoundError is the error returned for any unknown user id.
func NewUserNotFoundError() *NotFoundError {
	return NewNotFoundError("User not found")
}
