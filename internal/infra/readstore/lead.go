package readstore

import (
	"context"

	"lead-capture/internal/infra"
	sqlc "lead-capture/internal/infra/sqlc/generated"
	"lead-capture/internal/pkg/pgconv"
	"lead-capture/internal/usecase/queries"
)

type LeadReadQueries interface {
	ListClientRequests(ctx context.Context, db sqlc.DBTX) ([]sqlc.ClientRequest, error)
}

type LeadReadStore struct {
	queries LeadReadQueries
	db      sqlc.DBTX
}

func NewLeadReadStore(queries LeadReadQueries, db sqlc.DBTX) *LeadReadStore {
	return &LeadReadStore{
		queries: queries,
		db:      db,
	}
}

// FindAllByRequestDateDesc relies on the query's ORDER BY; rows are not re-sorted here.
func (r *LeadReadStore) FindAllByRequestDateDesc(ctx context.Context) ([]*queries.LeadView, error) {
	rows, err := r.queries.ListClientRequests(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list client requests", err)
	}

	views := make([]*queries.LeadView, len(rows))
	for i, row := range rows {
		views[i] = toLeadView(row)
	}
	return views, nil
}

func toLeadView(row sqlc.ClientRequest) *queries.LeadView {
	return &queries.LeadView{
		RequestID:        row.ReqID,
		ClientName:       row.ClientName,
		Email:            row.Email,
		PhoneNumber:      row.PhoneNumber,
		RequestDate:      pgconv.TimeFromPgtype(row.RequestDate),
		RequestTimeOfDay: row.ReqTime,
		Status:           row.Status,
		Description:      row.Description,
	}
}
