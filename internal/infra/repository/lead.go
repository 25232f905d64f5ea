package repository

import (
	"context"

	"lead-capture/internal/domain/lead"
	"lead-capture/internal/infra"
	"lead-capture/internal/infra/repository/converter"
	sqlc "lead-capture/internal/infra/sqlc/generated"
)

type LeadWriteQueries interface {
	CreateClientRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateClientRequestParams) (sqlc.ClientRequest, error)
}

type LeadRepository struct {
	queries LeadWriteQueries
	db      sqlc.DBTX
}

func NewLeadRepository(queries LeadWriteQueries, db sqlc.DBTX) *LeadRepository {
	return &LeadRepository{
		queries: queries,
		db:      db,
	}
}

// Create issues exactly one INSERT; the request id is assigned by the database.
func (r *LeadRepository) Create(ctx context.Context, l *lead.Lead) (*lead.Record, error) {
	row, err := r.queries.CreateClientRequest(ctx, r.db, converter.LeadToCreateParams(l))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create client request", err)
	}

	return converter.RowToRecord(row), nil
}
