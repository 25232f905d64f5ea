package errs

import "errors"

// Markers shared by the usecase layers; attach them with Mark and test with errors.Is.
var (
	ErrDomainValidation        = errors.New("domain validation error")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
