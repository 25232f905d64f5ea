package lead

import (
	"time"

	"lead-capture/internal/pkg/clock"

	"github.com/google/uuid"
)

// Lead is a validated contact submission that has not been persisted yet.
// requestDate and requestTimeOfDay come from the same instant and are never recomputed.
type Lead struct {
	clientName       ClientName
	email            Email
	phone            PhoneNumber
	requestDate      time.Time
	requestTimeOfDay string
	status           Status
	description      Description
}

// NewLead checks the phone before anything else so that a bad number is
// always reported as ErrInvalidPhone.
func NewLead(clientName, email, phoneNumber, description string, now time.Time) (*Lead, error) {
	phone, err := NewPhoneNumber(phoneNumber)
	if err != nil {
		return nil, err
	}

	name, err := NewClientName(clientName)
	if err != nil {
		return nil, err
	}

	desc, err := NewDescription(description)
	if err != nil {
		return nil, err
	}

	return &Lead{
		clientName:       name,
		email:            NewEmail(email),
		phone:            phone,
		requestDate:      now.UTC(),
		requestTimeOfDay: clock.TimeOfDay(now),
		status:           StatusPending,
		description:      desc,
	}, nil
}

func (l *Lead) ClientName() ClientName   { return l.clientName }
func (l *Lead) Email() Email             { return l.email }
func (l *Lead) PhoneNumber() PhoneNumber { return l.phone }
func (l *Lead) RequestDate() time.Time   { return l.requestDate }
func (l *Lead) RequestTimeOfDay() string { return l.requestTimeOfDay }
func (l *Lead) Status() Status           { return l.status }
func (l *Lead) Description() Description { return l.description }

// Record is the persisted shape of a lead as returned by the store.
type Record struct {
	RequestID        uuid.UUID
	ClientName       string
	Email            string
	PhoneNumber      string
	RequestDate      time.Time
	RequestTimeOfDay string
	Status           Status
	Description      string
}
