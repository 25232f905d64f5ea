package commands

import (
	"context"

	"lead-capture/internal/domain/lead"
	"lead-capture/internal/pkg/clock"
	"lead-capture/internal/pkg/errs"
)

var ErrPersistenceFailed = errs.New("failed to submit request")

// Submission outcomes reported to SubmissionObserver.
const (
	OutcomeCreated = "created"
	OutcomeInvalid = "invalid"
	OutcomeFailed  = "failed"
)

type SubmitLeadRequest struct {
	ClientName  string
	Email       string
	PhoneNumber string
	Description string
}

type LeadRepository interface {
	Create(ctx context.Context, l *lead.Lead) (*lead.Record, error)
}

type SubmissionObserver interface {
	ObserveSubmission(outcome string)
}

type LeadCommands interface {
	Submit(ctx context.Context, req SubmitLeadRequest) (*lead.Record, error)
}

type leadUseCaseImpl struct {
	repo     LeadRepository
	clock    clock.Clock
	observer SubmissionObserver
}

func NewLeadUseCase(repo LeadRepository, clk clock.Clock, observer SubmissionObserver) LeadCommands {
	return &leadUseCaseImpl{repo: repo, clock: clk, observer: observer}
}

// Submit validates, stamps and stores a lead with a single insert attempt.
// Validation failures never reach the repository.
func (uc *leadUseCaseImpl) Submit(ctx context.Context, req SubmitLeadRequest) (*lead.Record, error) {
	l, err := lead.NewLead(req.ClientName, req.Email, req.PhoneNumber, req.Description, uc.clock.Now())
	if err != nil {
		uc.observe(OutcomeInvalid)
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	rec, err := uc.repo.Create(ctx, l)
	if err != nil {
		uc.observe(OutcomeFailed)
		return nil, errs.Mark(errs.Wrap(err, "create lead"), ErrPersistenceFailed)
	}

	uc.observe(OutcomeCreated)
	return rec, nil
}

func (uc *leadUseCaseImpl) observe(outcome string) {
	if uc.observer != nil {
		uc.observer.ObserveSubmission(outcome)
	}
}
