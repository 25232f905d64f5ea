//go:build unit || e2e

package builder

import (
	"time"

	"lead-capture/internal/domain/lead"
	reqdto "lead-capture/internal/handler/dto/request"
	sqlc "lead-capture/internal/infra/sqlc/generated"
	"lead-capture/internal/pkg/clock"
	"lead-capture/internal/usecase/commands"
	"lead-capture/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type LeadBuilder struct {
	RequestID   uuid.UUID
	ClientName  string
	Email       string
	PhoneNumber string
	Description string
	Status      string
	Now         time.Time
}

func NewLeadBuilder() *LeadBuilder {
	return &LeadBuilder{
		RequestID:   uuid.New(),
		ClientName:  "Asha",
		Email:       "asha@example.com",
		PhoneNumber: "9876543210",
		Description: "Need a site survey for a two-storey house",
		Status:      lead.StatusPending.String(),
		Now:         time.Date(2024, 3, 5, 4, 30, 0, 0, time.UTC),
	}
}

func (b *LeadBuilder) With(mutate func(*LeadBuilder)) *LeadBuilder {
	mutate(b)
	return b
}

func (b *LeadBuilder) WithNow(now time.Time) *LeadBuilder {
	b.Now = now
	return b
}

func (b *LeadBuilder) WithPhone(p string) *LeadBuilder {
	b.PhoneNumber = p
	return b
}

func (b *LeadBuilder) WithClientName(name string) *LeadBuilder {
	b.ClientName = name
	return b
}

func (b *LeadBuilder) WithDescription(d string) *LeadBuilder {
	b.Description = d
	return b
}

func (b *LeadBuilder) WithEmail(e string) *LeadBuilder {
	b.Email = e
	return b
}

func (b *LeadBuilder) WithStatus(s string) *LeadBuilder {
	b.Status = s
	return b
}

// Build methods
func (b *LeadBuilder) BuildDomain() (*lead.Lead, error) {
	return lead.NewLead(b.ClientName, b.Email, b.PhoneNumber, b.Description, b.Now)
}

func (b *LeadBuilder) BuildCommand() commands.SubmitLeadRequest {
	return commands.SubmitLeadRequest{
		ClientName:  b.ClientName,
		Email:       b.Email,
		PhoneNumber: b.PhoneNumber,
		Description: b.Description,
	}
}

func (b *LeadBuilder) BuildSubmitRequestDTO() reqdto.SubmitLeadRequest {
	return reqdto.SubmitLeadRequest{
		Name:    b.ClientName,
		Email:   b.Email,
		Phone:   b.PhoneNumber,
		Message: b.Description,
	}
}

func (b *LeadBuilder) BuildRecord() *lead.Record {
	return &lead.Record{
		RequestID:        b.RequestID,
		ClientName:       b.ClientName,
		Email:            b.Email,
		PhoneNumber:      b.PhoneNumber,
		RequestDate:      b.Now.UTC(),
		RequestTimeOfDay: clock.TimeOfDay(b.Now),
		Status:           lead.Status(b.Status),
		Description:      b.Description,
	}
}

func (b *LeadBuilder) BuildView() *queries.LeadView {
	return &queries.LeadView{
		RequestID:        b.RequestID,
		ClientName:       b.ClientName,
		Email:            b.Email,
		PhoneNumber:      b.PhoneNumber,
		RequestDate:      b.Now.UTC(),
		RequestTimeOfDay: clock.TimeOfDay(b.Now),
		Status:           b.Status,
		Description:      b.Description,
	}
}

func (b *LeadBuilder) BuildInfra() sqlc.ClientRequest {
	return sqlc.ClientRequest{
		ReqID:       b.RequestID,
		ClientName:  b.ClientName,
		Email:       b.Email,
		PhoneNumber: b.PhoneNumber,
		RequestDate: pgtype.Timestamptz{Time: b.Now.UTC(), Valid: true},
		ReqTime:     clock.TimeOfDay(b.Now),
		Status:      b.Status,
		Description: b.Description,
	}
}
