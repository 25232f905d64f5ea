package queries

import (
	"context"
	"time"

	"lead-capture/internal/pkg/clock"
	"lead-capture/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrQueryFailed = errs.New("failed to fetch requests")

// Fetch outcomes reported to FetchObserver.
const (
	FetchOutcomeOK     = "ok"
	FetchOutcomeFailed = "failed"
)

// LeadView is the read model of a stored request. Status is kept as the raw
// stored string so rows edited outside this service still render.
type LeadView struct {
	RequestID        uuid.UUID `json:"req_id"`
	ClientName       string    `json:"client_name"`
	Email            string    `json:"email"`
	PhoneNumber      string    `json:"phone_number"`
	RequestDate      time.Time `json:"request_date"`
	RequestTimeOfDay string    `json:"req_time"`
	Status           string    `json:"status"`
	Description      string    `json:"description"`
}

type LeadReadStore interface {
	FindAllByRequestDateDesc(ctx context.Context) ([]*LeadView, error)
}

type FetchObserver interface {
	ObserveFetch(outcome string)
}

type LeadQueries interface {
	FetchAll(ctx context.Context) ([]*LeadView, error)
	FetchToday(ctx context.Context) ([]*LeadView, error)
}

type leadQueriesImpl struct {
	store    LeadReadStore
	clock    clock.Clock
	observer FetchObserver
}

func NewLeadQueries(store LeadReadStore, clk clock.Clock, observer FetchObserver) LeadQueries {
	return &leadQueriesImpl{store: store, clock: clk, observer: observer}
}

// FetchAll returns every request, newest first. A failure is returned once
// and never retried.
func (q *leadQueriesImpl) FetchAll(ctx context.Context) ([]*LeadView, error) {
	views, err := q.store.FindAllByRequestDateDesc(ctx)
	if err != nil {
		q.observe(FetchOutcomeFailed)
		return nil, errs.Mark(errs.Wrap(err, "fetch all requests"), ErrQueryFailed)
	}
	q.observe(FetchOutcomeOK)
	if views == nil {
		views = []*LeadView{}
	}
	return views, nil
}

func (q *leadQueriesImpl) FetchToday(ctx context.Context) ([]*LeadView, error) {
	views, err := q.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	return FilterToday(views, q.clock.Now()), nil
}

func (q *leadQueriesImpl) observe(outcome string) {
	if q.observer != nil {
		q.observer.ObserveFetch(outcome)
	}
}

// FilterToday keeps the records whose stored UTC calendar date equals the
// business-zone date of now. The two sides are deliberately not normalised
// to the same zone: a request stored at 2024-03-04T20:00Z is "today" for an
// IST now of 2024-03-04 but not for 2024-03-05. Order is preserved.
func FilterToday(records []*LeadView, now time.Time) []*LeadView {
	today := clock.CivilDate(now)
	out := make([]*LeadView, 0, len(records))
	for _, r := range records {
		if r.RequestDate.UTC().Format(clock.DateLayout) == today {
			out = append(out, r)
		}
	}
	return out
}
