package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"smarthome/utils"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubVerifier map[string]string

func (s stubVerifier) VerifyIDToken(_ context.Context, token string) (*auth.Token, error) {
	email, ok := s[token]
	if !ok {
		return nil, errors.New("invalid token")
	}
	return &auth.Token{Claims: map[string]interface{}{"email": email}}, nil
}

func TestFirebaseAuth(t *testing.T) {
	r := gin.New()
	r.GET("/me", FirebaseAuth(stubVerifier{"good": "a@x.com"}), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(utils.DecodedEmailKey))
	})

	cases := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{"missing header", "", http.StatusUnauthorized, `{"message":"unauthorized access"}`},
		{"no token", "Bearer ", http.StatusUnauthorized, `{"message":"unauthorized access"}`},
		{"bad token", "Bearer bad", http.StatusUnauthorized, `{"message":"unauthorized access"}`},
		{"valid token", "Bearer good", http.StatusOK, "a@x.com"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.status, w.Code)
			if tc.status == http.StatusOK {
				assert.Equal(t, tc.body, w.Body.String())
			} else {
				assert.JSONEq(t, tc.body, w.Body.String())
			}
		})
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	r := gin.New()
	r.GET("/", RateLimitMiddleware(2), func(c *gin.Context) { c.Status(http.StatusOK) })

	send := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Forwarded-For", ip)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1"))
	assert.Equal(t, http.StatusOK, send("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1"))
	assert.Equal(t, http.StatusOK, send("10.0.0.2"))
}

func TestRequestLoggerSetsRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger(zap.NewNop()))
	r.GET("/", func(c *gin.Context) {
		_, ok := c.Get(utils.LoggerKey)
		assert.True(t, ok)
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, w.Header().Get(utils.RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(utils.RequestIDHeader, "req-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-123", w.Header().Get(utils.RequestIDHeader))
}

func TestGetClientIP(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.RemoteAddr = "192.168.1.9:5555"
	assert.Equal(t, "192.168.1.9", getClientIP(c))

	c.Request.Header.Set("X-Real-IP", "172.16.0.4")
	assert.Equal(t, "172.16.0.4", getClientIP(c))

	c.Request.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	assert.Equal(t, "203.0.113.7", getClientIP(c))
}
