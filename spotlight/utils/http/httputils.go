// spotlight/utils/http/httputils.go
package httputils

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"spotlight/spotlight/types"
)

// WriteJSON encodes body with the given status.
func WriteJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// WriteError writes the {error, details?} body with apiErr.Status.
func WriteError(w http.ResponseWriter, apiErr *types.APIError) {
	WriteJSON(w, apiErr.Status, apiErr)
}

// GetJSON issues a GET with the given headers and decodes a 2xx body into resp.
// Any other status is returned as *types.APIError.
func GetJSON(ctx context.Context, client *http.Client, url string, headers map[string]string, resp interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	r, err := client.Do(req)
	if err != nil {
		return err
	}
	defer r.Body.Close()
	if r.StatusCode < 200 || r.StatusCode > 299 {
		return decodeAPIError(r)
	}
	if resp != nil {
		return json.NewDecoder(r.Body).Decode(resp)
	}
	return nil
}

func decodeAPIError(r *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(r.Body, 64<<10))
	apiErr := &types.APIError{Status: r.StatusCode}
	if err := json.Unmarshal(body, apiErr); err != nil || apiErr.Message == "" {
		apiErr.Message = fmt.Sprintf("bad status: %d", r.StatusCode)
	}
	return apiErr
}
