package components

import (
	"lead-capture/internal/infra/readstore"
	"lead-capture/internal/infra/repository"
	sqlc "lead-capture/internal/infra/sqlc/generated"
	"lead-capture/internal/usecase/commands"
	"lead-capture/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		// Write side
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.LeadWriteQueries)),
		),
		fx.Annotate(
			repository.NewLeadRepository,
			fx.As(new(commands.LeadRepository)),
		),
	),
	readstoreModule,
)

var readstoreModule = fx.Module("repository/readstore",
	fx.Provide(
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.LeadReadQueries)),
		),
		fx.Annotate(
			readstore.NewLeadReadStore,
			fx.As(new(queries.LeadReadStore)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
