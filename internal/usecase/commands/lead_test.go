//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"lead-capture/internal/domain/lead"
	"lead-capture/internal/pkg/clock"
	"lead-capture/internal/pkg/errs"
	"lead-capture/internal/usecase/commands"
	"lead-capture/tests/common/builder"
	commandsmock "lead-capture/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errInsertFailed = errors.New("insert failed")

func TestLeadUseCase_Submit(t *testing.T) {
	ctx := context.Background()
	// 23:59:30 IST on 2024-03-04
	now := time.Date(2024, 3, 4, 18, 29, 30, 0, time.UTC)

	testCases := []struct {
		name       string
		mutate     func(*builder.LeadBuilder)
		setupMock  func(*commandsmock.MockLeadRepository, *commandsmock.MockSubmissionObserver)
		errIs      error
		markedWith error
	}{
		{
			name:   "success: stored once as pending",
			mutate: func(*builder.LeadBuilder) {},
			setupMock: func(repo *commandsmock.MockLeadRepository, obs *commandsmock.MockSubmissionObserver) {
				repo.EXPECT().Create(ctx, gomock.Any()).
					DoAndReturn(func(_ context.Context, l *lead.Lead) (*lead.Record, error) {
						return &lead.Record{
							RequestID:        uuid.New(),
							ClientName:       l.ClientName().String(),
							Email:            l.Email().String(),
							PhoneNumber:      l.PhoneNumber().String(),
							RequestDate:      l.RequestDate(),
							RequestTimeOfDay: l.RequestTimeOfDay(),
							Status:           l.Status(),
							Description:      l.Description().String(),
						}, nil
					}).Times(1)
				obs.EXPECT().ObserveSubmission(commands.OutcomeCreated).Times(1)
			},
		},
		{
			name:   "invalid phone: nothing is written",
			mutate: func(b *builder.LeadBuilder) { b.WithPhone("987") },
			setupMock: func(repo *commandsmock.MockLeadRepository, obs *commandsmock.MockSubmissionObserver) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
				obs.EXPECT().ObserveSubmission(commands.OutcomeInvalid).Times(1)
			},
			errIs:      lead.ErrInvalidPhone,
			markedWith: errs.ErrDomainValidation,
		},
		{
			name:   "invalid phone wins over empty name",
			mutate: func(b *builder.LeadBuilder) { b.WithPhone("98765 43210").WithClientName("") },
			setupMock: func(repo *commandsmock.MockLeadRepository, obs *commandsmock.MockSubmissionObserver) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
				obs.EXPECT().ObserveSubmission(commands.OutcomeInvalid).Times(1)
			},
			errIs:      lead.ErrInvalidPhone,
			markedWith: errs.ErrDomainValidation,
		},
		{
			name:   "empty message",
			mutate: func(b *builder.LeadBuilder) { b.WithDescription("") },
			setupMock: func(repo *commandsmock.MockLeadRepository, obs *commandsmock.MockSubmissionObserver) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
				obs.EXPECT().ObserveSubmission(commands.OutcomeInvalid).Times(1)
			},
			errIs:      lead.ErrEmptyDescription,
			markedWith: errs.ErrDomainValidation,
		},
		{
			name:   "persistence failure is surfaced after a single attempt",
			mutate: func(*builder.LeadBuilder) {},
			setupMock: func(repo *commandsmock.MockLeadRepository, obs *commandsmock.MockSubmissionObserver) {
				repo.EXPECT().Create(ctx, gomock.Any()).Return(nil, errInsertFailed).Times(1)
				obs.EXPECT().ObserveSubmission(commands.OutcomeFailed).Times(1)
			},
			errIs:      errInsertFailed,
			markedWith: commands.ErrPersistenceFailed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := commandsmock.NewMockLeadRepository(ctrl)
			obs := commandsmock.NewMockSubmissionObserver(ctrl)
			tc.setupMock(repo, obs)

			b := builder.NewLeadBuilder().With(tc.mutate)
			uc := commands.NewLeadUseCase(repo, clock.NewFixedClock(now), obs)

			rec, err := uc.Submit(ctx, b.BuildCommand())

			if tc.errIs != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.errIs)
				assert.True(t, errs.Is(err, tc.markedWith))
				assert.Nil(t, rec)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, rec)
			assert.Equal(t, lead.StatusPending, rec.Status)
			assert.True(t, rec.RequestDate.Equal(now))
			assert.Equal(t, "23:59:30", rec.RequestTimeOfDay)
		})
	}
}

func TestLeadUseCase_Submit_InvalidPhoneMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := commandsmock.NewMockLeadRepository(ctrl)

	uc := commands.NewLeadUseCase(repo, clock.NewFixedClock(time.Now()), nil)
	_, err := uc.Submit(context.Background(), builder.NewLeadBuilder().WithPhone("12345abcde").BuildCommand())

	require.Error(t, err)
	assert.Equal(t, "Phone number must be exactly 10 digits", err.Error())
}
