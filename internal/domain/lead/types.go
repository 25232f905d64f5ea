package lead

import "errors"

var (
	ErrInvalidPhone     = errors.New("Phone number must be exactly 10 digits") //nolint:staticcheck // shown to the client as-is
	ErrEmptyClientName  = errors.New("client name cannot be empty")
	ErrEmptyDescription = errors.New("description cannot be empty")
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// IsValid reports whether s is one of the statuses this service writes or
// recognises; rows edited elsewhere may hold anything.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}
