//go:build unit

package pgconv_test

import (
	"testing"
	"time"

	"lead-capture/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
)

func TestTimeRoundTrip(t *testing.T) {
	ist := time.FixedZone("IST", 19800)
	at := time.Date(2024, 3, 5, 2, 15, 0, 0, ist)

	pt := pgconv.TimeToPgtype(at)
	assert.True(t, pt.Valid)
	assert.Equal(t, time.UTC, pt.Time.Location())

	back := pgconv.TimeFromPgtype(pt)
	assert.True(t, back.Equal(at))
	assert.Equal(t, "2024-03-04", back.Format("2006-01-02"))
}

func TestTimeNull(t *testing.T) {
	assert.True(t, pgconv.TimeFromPgtype(pgtype.Timestamptz{}).IsZero())
	assert.False(t, pgconv.TimeToPgtype(time.Time{}).Valid)
}
