package httputils

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"spotlight/spotlight/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteError(rr, &types.APIError{Status: http.StatusNotFound, Message: "Assessment not found"})

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"Assessment not found"}`, rr.Body.String())
}

func TestGetJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			assert.Equal(t, "k", r.Header.Get("X-API-Key"))
			WriteJSON(w, http.StatusOK, map[string]int{"count": 3})
		case "/fail":
			WriteError(w, &types.APIError{Status: http.StatusInternalServerError, Message: "Failed", Details: "db down"})
		default:
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("<html>"))
		}
	}))
	defer srv.Close()
	ctx := context.Background()
	headers := map[string]string{"X-API-Key": "k"}

	var out struct{ Count int }
	require.NoError(t, GetJSON(ctx, srv.Client(), srv.URL+"/ok", headers, &out))
	assert.Equal(t, 3, out.Count)

	err := GetJSON(ctx, srv.Client(), srv.URL+"/fail", headers, &out)
	var apiErr *types.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Equal(t, "db down", apiErr.Details)

	err = GetJSON(ctx, srv.Client(), srv.URL+"/other", headers, &out)
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "bad status: 502", apiErr.Message)
}
