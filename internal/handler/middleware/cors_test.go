//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"lead-capture/internal/handler/middleware"
	"lead-capture/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestNewCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		cfg        config.CORSConfig
		origin     string
		wantOrigin string
		wantCreds  string
	}{
		{
			name:       "listed origin is echoed",
			cfg:        config.CORSConfig{AllowOrigins: []string{"https://example.in"}, AllowMethods: []string{"GET"}},
			origin:     "https://example.in",
			wantOrigin: "https://example.in",
		},
		{
			name:   "unlisted origin gets no header",
			cfg:    config.CORSConfig{AllowOrigins: []string{"https://example.in"}, AllowMethods: []string{"GET"}},
			origin: "https://other.in",
		},
		{
			name:       "wildcard drops credentials",
			cfg:        config.CORSConfig{AllowOrigins: []string{"*"}, AllowMethods: []string{"GET"}, AllowCredentials: true},
			origin:     "https://any.in",
			wantOrigin: "*",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(middleware.NewCORSMiddleware(tt.cfg))
			r.GET("/api/requests", func(c *gin.Context) { c.Status(http.StatusOK) })

			req := httptest.NewRequest(http.MethodGet, "/api/requests", nil)
			req.Header.Set("Origin", tt.origin)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantOrigin, w.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.wantCreds, w.Header().Get("Access-Control-Allow-Credentials"))
		})
	}
}
