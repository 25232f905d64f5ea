//go:build unit

package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"

	"lead-capture/internal/handler"
	"lead-capture/internal/handler/api"
	"lead-capture/internal/handler/middleware"
	"lead-capture/internal/pkg/config"
	"lead-capture/internal/pkg/metrics"
	"lead-capture/tests/common/builder"
	"lead-capture/tests/common/httptest"
	commandsmock "lead-capture/tests/mock/commands"
	queriesmock "lead-capture/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRouter(t *testing.T, cfg config.Config) (*gin.Engine, *commandsmock.MockLeadCommands) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	cmds := commandsmock.NewMockLeadCommands(ctrl)
	qs := queriesmock.NewMockLeadQueries(ctrl)
	reg := prometheus.NewRegistry()

	engine, err := handler.NewEngine(cfg)
	require.NoError(t, err)
	handler.NewRouter(engine, cfg, middleware.NewLogger(cfg.Log), api.NewLeadHandler(cmds, qs),
		middleware.NewIPRateLimiter(cfg.RateLimit), metrics.NewLeadMetrics(reg), reg)
	return engine, cmds
}

func TestRouter_Health(t *testing.T) {
	router, _ := newTestRouter(t, config.NewTestConfig())

	w := httptest.PerformRequest(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	httptest.AssertJSON(t, w)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestRouter_CORSPreflight(t *testing.T) {
	router, _ := newTestRouter(t, config.NewTestConfig())

	req := nethttptest.NewRequest(http.MethodOptions, "/api/requests", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := nethttptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	httptest.AssertHeaders(t, w, map[string]string{
		"Access-Control-Allow-Origin": "http://localhost:3000",
	})
}

func TestRouter_Metrics(t *testing.T) {
	cfg := config.NewTestConfig()

	router, _ := newTestRouter(t, cfg)
	w := httptest.PerformRequest(t, router, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusNotFound, w.Code, "disabled in test config")

	cfg.Metrics.Enabled = true
	router, _ = newTestRouter(t, cfg)
	_ = httptest.PerformRequest(t, router, http.MethodGet, "/health", nil)
	w = httptest.PerformRequest(t, router, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "leadcapture_http_request_duration_seconds")
}

func TestRouter_SubmitIsRateLimited(t *testing.T) {
	cfg := config.NewTestConfig()
	cfg.RateLimit = config.RateLimitConfig{SubmitPerMinute: 1, SubmitBurst: 1}
	router, cmds := newTestRouter(t, cfg)

	b := builder.NewLeadBuilder()
	cmds.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(b.BuildRecord(), nil).Times(1)

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/requests", b.BuildSubmitRequestDTO())
	assert.Equal(t, http.StatusCreated, w.Code)

	w = httptest.PerformRequest(t, router, http.MethodPost, "/api/requests", b.BuildSubmitRequestDTO())
	httptest.AssertErrorResponse(t, w, http.StatusTooManyRequests, "Too many requests")
}

func TestRouter_SubmitIgnoresSpoofedForwardedFor(t *testing.T) {
	cfg := config.NewTestConfig()
	cfg.RateLimit = config.RateLimitConfig{SubmitPerMinute: 1, SubmitBurst: 1}
	router, cmds := newTestRouter(t, cfg)

	b := builder.NewLeadBuilder()
	cmds.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(b.BuildRecord(), nil).Times(1)

	codes := map[int]int{}
	for n := range 5 {
		body, err := json.Marshal(b.BuildSubmitRequestDTO())
		require.NoError(t, err)
		req := nethttptest.NewRequest(http.MethodPost, "/api/requests", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("10.0.0.%d", n+1))
		req.RemoteAddr = "203.0.113.7:40000"
		w := nethttptest.NewRecorder()
		router.ServeHTTP(w, req)
		codes[w.Code]++
	}
	assert.Equal(t, map[int]int{http.StatusCreated: 1, http.StatusTooManyRequests: 4}, codes)
}

func TestNewEngine_RejectsBadProxy(t *testing.T) {
	cfg := config.NewTestConfig()
	cfg.Server.TrustedProxies = []string{"not-an-ip"}

	_, err := handler.NewEngine(cfg)
	assert.Error(t, err)
}
