//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail []struct {
		Field string `json:"field"`
		Rule  string `json:"rule"`
	} `json:"detail"`
}

func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String()) {
		return
	}
	if target != nil {
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), target), "decode body: %s", w.Body.String())
	}
}

func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedMsg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String())
	body := decodeError(t, w)
	if expectedMsg != "" {
		assert.Equal(t, expectedMsg, body.Error.Message)
	}
}

// AssertErrorDetail checks that the error detail names field, failing the
// given validation rule when rule is non-empty.
func AssertErrorDetail(t *testing.T, w *httptest.ResponseRecorder, field, rule string) {
	t.Helper()

	body := decodeError(t, w)
	for _, d := range body.Detail {
		if d.Field == field && (rule == "" || d.Rule == rule) {
			return
		}
	}
	assert.Failf(t, "field not in error detail", "field=%s rule=%s body=%s", field, rule, w.Body.String())
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "decode error body: %s", w.Body.String())
	return body
}
