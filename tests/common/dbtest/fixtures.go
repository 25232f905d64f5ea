//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// satisfied by *pgxpool.Pool and pgx.Tx
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type LeadFixture struct {
	ClientName  string
	Email       string
	PhoneNumber string
	RequestDate time.Time
	ReqTime     string
	Status      string
	Description string
}

// inserts a row directly, bypassing the service (e.g. statuses written by an admin tool)
func InsertLead(t *testing.T, db DBLike, f LeadFixture) uuid.UUID {
	t.Helper()

	if f.Status == "" {
		f.Status = "pending"
	}
	if f.ReqTime == "" {
		f.ReqTime = "00:00:00"
	}

	var id uuid.UUID
	err := db.QueryRow(context.Background(), `
		INSERT INTO client_request (client_name, email, phone_number, request_date, req_time, status, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING req_id`,
		f.ClientName, f.Email, f.PhoneNumber, f.RequestDate.UTC(), f.ReqTime, f.Status, f.Description,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

func CountLeads(t *testing.T, db DBLike) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM client_request").Scan(&n)
	require.NoError(t, err)
	return n
}

func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE client_request;")
	return err
}
