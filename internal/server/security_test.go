package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name           string
		remoteAddr     string
		forwardedFor   string
		trustedProxies []string
		want           string
	}{
		{
			name:       "direct connection",
			remoteAddr: "192.168.1.10:54321",
			want:       "192.168.1.10",
		},
		{
			name:           "forwarded header ignored from untrusted source",
			remoteAddr:     "203.0.113.5:1234",
			forwardedFor:   "10.0.0.1",
			trustedProxies: []string{"127.0.0.1"},
			want:           "203.0.113.5",
		},
		{
			name:           "forwarded header honored from trusted proxy",
			remoteAddr:     "127.0.0.1:1234",
			forwardedFor:   "10.0.0.1, 10.0.0.2",
			trustedProxies: []string{"127.0.0.1"},
			want:           "10.0.0.2",
		},
		{
			name:       "remote addr without port",
			remoteAddr: "192.168.1.10",
			want:       "192.168.1.10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwardedFor != "" {
				req.Header.Set(HeaderForwardedFor, tt.forwardedFor)
			}

			assert.Equal(t, tt.want, extractIP(req, tt.trustedProxies))
		})
	}
}

func TestSuspiciousActivityDetectorRateLimit(t *testing.T) {
	detector := NewSuspiciousActivityDetector()

	for i := 0; i < 1000; i++ {
		assert.True(t, detector.RecordRequest("10.0.0.1"))
	}
	assert.False(t, detector.RecordRequest("10.0.0.1"))

	// Other IPs are unaffected
	assert.True(t, detector.RecordRequest("10.0.0.2"))
}

func TestSecurityLoggingMiddlewareBlocksFloods(t *testing.T) {
	detector := NewSuspiciousActivityDetector()
	mw := SecurityLoggingMiddleware(nil, detector)

	h := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	var lastCode int
	for i := 0; i < 1001; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/state", nil)
		req.RemoteAddr = "10.0.0.9:1000"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		lastCode = rec.Code
	}

	assert.Equal(t, http.StatusTooManyRequests, lastCode)
}

func TestRequestSizeLimitMiddleware(t *testing.T) {
	mw := RequestSizeLimitMiddleware(16)

	h := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, 64)
		_, err := r.Body.Read(buf)
		if err != nil && err.Error() == "http: request body too large" {
			w.WriteHeader(http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("small body passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("ok"))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("oversized body rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("x", 64)))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})
}
