package converter

import (
	"lead-capture/internal/domain/lead"
	sqlc "lead-capture/internal/infra/sqlc/generated"
	"lead-capture/internal/pkg/pgconv"
)

func LeadToCreateParams(l *lead.Lead) sqlc.CreateClientRequestParams {
	return sqlc.CreateClientRequestParams{
		ClientName:  l.ClientName().String(),
		Email:       l.Email().String(),
		PhoneNumber: l.PhoneNumber().String(),
		RequestDate: pgconv.TimeToPgtype(l.RequestDate()),
		ReqTime:     l.RequestTimeOfDay(),
		Status:      l.Status().String(),
		Description: l.Description().String(),
	}
}

// RowToRecord keeps the stored status verbatim; unknown values are a
// presentation concern.
func RowToRecord(row sqlc.ClientRequest) *lead.Record {
	return &lead.Record{
		RequestID:        row.ReqID,
		ClientName:       row.ClientName,
		Email:            row.Email,
		PhoneNumber:      row.PhoneNumber,
		RequestDate:      pgconv.TimeFromPgtype(row.RequestDate),
		RequestTimeOfDay: row.ReqTime,
		Status:           lead.Status(row.Status),
		Description:      row.Description,
	}
}
