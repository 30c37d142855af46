package errs

type ErrorMessage struct {
	Message string
}

func (e *ErrorMessage) Error() string { return e.Message }

type NotFoundError struct {
	ErrorMessage
}

type ValidationError struct {
	ErrorMessage
}

// MalformedImportError marks backup/import payloads that failed the minimal
// shape validation. The store never mutates state on one of these.
type MalformedImportError struct {
	ErrorMessage
}

// SyncError classifies a remote load or save failure. Permission failures
// are distinguished from generic transient ones so the status indicator can
// tell the user which it was; neither is fatal to local operation.
type SyncError struct {
	ErrorMessage
	Operation  string
	Permission bool
	Cause      error
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewMalformedImportError(message string) *MalformedImportError {
	return &MalformedImportError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewSyncPermissionError(operation string, cause error) *SyncError {
	return &SyncError{
		ErrorMessage: ErrorMessage{Message: "permission denied"},
		Operation:    operation,
		Permission:   true,
		Cause:        cause,
	}
}

func NewSyncTransientError(operation string, cause error) *SyncError {
	return &SyncError{
		ErrorMessage: ErrorMessage{Message: "sync failed"},
		Operation:    operation,
		Cause:        cause,
	}
}
