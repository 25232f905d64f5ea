//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"lead-capture/internal/handler/httperr"
	"lead-capture/internal/handler/middleware"
	"lead-capture/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.CustomRecovery(), middleware.ErrorHandler())

	router.GET("/public", func(c *gin.Context) {
		httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("db down"), "Failed to fetch requests", nil)
	})
	router.GET("/private", func(c *gin.Context) {
		_ = c.Error(errors.New("unexpected"))
	})
	router.GET("/panic", func(*gin.Context) {
		panic("boom")
	})

	w := httptest.PerformRequest(t, router, http.MethodGet, "/public", nil)
	httptest.AssertErrorResponse(t, w, http.StatusInternalServerError, "Failed to fetch requests")

	w = httptest.PerformRequest(t, router, http.MethodGet, "/private", nil)
	httptest.AssertErrorResponse(t, w, http.StatusInternalServerError, "Internal server error")

	w = httptest.PerformRequest(t, router, http.MethodGet, "/panic", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
