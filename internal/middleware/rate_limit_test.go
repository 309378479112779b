package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"biztime/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimitByIP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(middleware.RateLimitByIP(1, 2))
	r.GET("/companies", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"companies": []string{}})
	})

	get := func(addr string) *httptest.ResponseRecorder {
		req, _ := http.NewRequest(http.MethodGet, "/companies", nil)
		req.RemoteAddr = addr
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	// burst of 2, third request in the same instant is rejected
	assert.Equal(t, http.StatusOK, get("192.0.2.1:1234").Code)
	assert.Equal(t, http.StatusOK, get("192.0.2.1:1234").Code)

	w := get("192.0.2.1:1234")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t,
		`{"error":429,"message":"Too many requests from this IP"}`,
		w.Body.String())

	// a different client has its own bucket
	assert.Equal(t, http.StatusOK, get("192.0.2.2:1234").Code)
}
