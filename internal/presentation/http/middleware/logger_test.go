package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newLoggedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(gin.Recovery(), LoggerMiddleware())
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

func TestLoggerMiddlewareRequestID(t *testing.T) {
	tests := []struct {
		name      string
		requestID string
	}{
		{"no header generates an id", ""},
		{"short client id", "abc"},
		{"single character id", "x"},
		{"full uuid id", "0f9a6c1e-8f5d-4f7b-9c3e-2d1a5b7c9e0f"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newLoggedRouter()
			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			if tt.requestID != "" {
				req.Header.Set("X-Request-ID", tt.requestID)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			if tt.requestID != "" {
				assert.Equal(t, tt.requestID, rec.Header().Get("X-Request-ID"))
			} else {
				assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
			}
		})
	}
}

func TestLogPrefix(t *testing.T) {
	assert.Equal(t, "abc", logPrefix("abc"))
	assert.Equal(t, "", logPrefix(""))
	assert.Equal(t, "0f9a6c1e", logPrefix("0f9a6c1e-8f5d-4f7b-9c3e-2d1a5b7c9e0f"))
}
