//go:build e2e

package lead_test

import (
	"net/http"
	"testing"
	"time"

	"lead-capture/internal/handler/dto/response"
	"lead-capture/internal/pkg/clock"
	"lead-capture/tests/common/builder"
	"lead-capture/tests/common/dbtest"
	"lead-capture/tests/common/httptest"
	"lead-capture/tests/common/testutil"
	"lead-capture/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const requestsURL = "/api/requests"

type LeadSuite struct {
	e2e.SharedSuite
}

func (s *LeadSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestLeadSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(LeadSuite))
}

// =============================================================================
// TestSubmit - contact form submission
// =============================================================================

func (s *LeadSuite) TestSubmit() {
	s.Run("Normal case: submitted request is listed first as pending", func() {
		t := s.T()

		dbtest.InsertLead(t, s.DB, dbtest.LeadFixture{
			ClientName:  "Older",
			PhoneNumber: "9123456780",
			RequestDate: time.Now().Add(-72 * time.Hour),
			Status:      "completed",
			Description: "Boundary wall",
		})

		reqBody := builder.NewLeadBuilder().
			WithClientName("Asha").
			WithEmail("").
			WithPhone("9876543210").
			WithDescription("Need site survey").
			BuildSubmitRequestDTO()

		before := time.Now()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, requestsURL, reqBody)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.LeadResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.NotEmpty(t, created.ID)

		submittedAt, err := time.Parse(time.RFC3339Nano, created.SubmittedAt)
		require.NoError(t, err)
		require.WithinDuration(t, before, submittedAt, 5*time.Second)
		require.Equal(t, clock.TimeOfDay(submittedAt), created.RequestTimeOfDay)

		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, requestsURL, nil)
		require.Equal(t, http.StatusOK, lw.Code)

		var list response.LeadListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, lw.Body, &list))
		require.Equal(t, 2, list.Count)

		expected := &response.LeadResponse{
			ID:             created.ID,
			ClientName:     "Asha",
			Email:          "",
			PhoneNumber:    "9876543210",
			PhoneE164:      "+919876543210",
			Status:         "pending",
			StatusCategory: "pending",
			StatusTone:     "amber",
			Description:    "Need site survey",
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.LeadResponse{}, "SubmittedAt", "RequestTimeOfDay"),
		}
		if diff := cmp.Diff(expected, list.Requests[0], opts...); diff != "" {
			t.Errorf("first listed request mismatch (-want +got):\n%s", diff)
		}
		require.Equal(t, "Older", list.Requests[1].ClientName)
	})

	s.Run("Error case: short phone is rejected and nothing is stored", func() {
		t := s.T()

		reqBody := testutil.DtoMap(t, builder.NewLeadBuilder().BuildSubmitRequestDTO(), testutil.Field("phone", "987"))
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, requestsURL, reqBody)

		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Phone number must be exactly 10 digits")
		require.Equal(t, 0, dbtest.CountLeads(t, s.DB))
	})

	s.Run("Error case: empty message is rejected", func() {
		t := s.T()

		reqBody := builder.NewLeadBuilder().WithDescription("  ").BuildSubmitRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, requestsURL, reqBody)

		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid request")
		require.Equal(t, 0, dbtest.CountLeads(t, s.DB))
	})
}

// =============================================================================
// TestList - listing and the today filter
// =============================================================================

func (s *LeadSuite) TestList() {
	s.Run("Normal case: unknown status renders as neutral", func() {
		t := s.T()

		dbtest.InsertLead(t, s.DB, dbtest.LeadFixture{
			ClientName:  "Meera",
			PhoneNumber: "9000000001",
			RequestDate: time.Now(),
			Status:      "on_hold",
			Description: "Soil test",
		})

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, requestsURL, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var list response.LeadListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &list))
		require.Equal(t, 1, list.Count)
		require.Equal(t, "neutral", list.Requests[0].StatusCategory)
		require.Equal(t, "gray", list.Requests[0].StatusTone)
	})

	s.Run("Normal case: today filter drops older dates", func() {
		t := s.T()
		now := time.Now()

		dbtest.InsertLead(t, s.DB, dbtest.LeadFixture{
			ClientName:  "Old",
			PhoneNumber: "9000000002",
			RequestDate: now.Add(-72 * time.Hour),
			Description: "Old request",
		})
		dbtest.InsertLead(t, s.DB, dbtest.LeadFixture{
			ClientName:  "New",
			PhoneNumber: "9000000003",
			RequestDate: now,
			Description: "New request",
		})

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, requestsURL+"?today=true", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var list response.LeadListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &list))

		// Between 18:30 and 24:00 UTC the business-zone date is already tomorrow,
		// so even a row stored just now is not "today".
		if clock.CivilDate(now) == now.UTC().Format(clock.DateLayout) {
			require.Equal(t, 1, list.Count)
			require.Equal(t, "New", list.Requests[0].ClientName)
		} else {
			require.Equal(t, 0, list.Count)
		}
	})

	s.Run("Normal case: empty table", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, requestsURL, nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, `{"requests":[],"count":0}`, w.Body.String())
	})
}
