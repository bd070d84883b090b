package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"spotlight/spotlight/config"

	"github.com/stretchr/testify/assert"
)

func gated(secret string, calls *int) http.Handler {
	return APIKeyMiddleware(config.Config{AdminAPIKey: secret})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*calls++
		w.WriteHeader(http.StatusOK)
	}))
}

func TestAPIKeyMiddleware(t *testing.T) {
	cases := []struct {
		name   string
		secret string
		header string
		status int
		calls  int
		body   string
	}{
		{"correct key", "s3cret", "s3cret", http.StatusOK, 1, ""},
		{"missing key", "s3cret", "", http.StatusUnauthorized, 0, `{"error":"Unauthorized"}`},
		{"wrong key", "s3cret", "guess", http.StatusUnauthorized, 0, `{"error":"Unauthorized"}`},
		{"prefix of key", "s3cret", "s3cre", http.StatusUnauthorized, 0, `{"error":"Unauthorized"}`},
		{"secret unset with header", "", "s3cret", http.StatusInternalServerError, 0, `{"error":"Server configuration error"}`},
		{"secret unset without header", "", "", http.StatusInternalServerError, 0, `{"error":"Server configuration error"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			calls := 0
			req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
			if tc.header != "" {
				req.Header.Set(APIKeyHeader, tc.header)
			}
			rr := httptest.NewRecorder()

			gated(tc.secret, &calls).ServeHTTP(rr, req)

			assert.Equal(t, tc.status, rr.Code)
			assert.Equal(t, tc.calls, calls)
			if tc.body != "" {
				assert.JSONEq(t, tc.body, rr.Body.String())
			}
		})
	}
}

func TestRequestLoggerPassesThrough(t *testing.T) {
	h := RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTeapot, rr.Code)
}
