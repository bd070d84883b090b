// spotlight/middlewares/auth.go
package middlewares

import (
	"crypto/subtle"
	"net/http"

	"spotlight/spotlight/config"
	"spotlight/spotlight/types"
	httputils "spotlight/spotlight/utils/http"
	"spotlight/spotlight/utils/logging"

	"go.uber.org/zap"
)

// APIKeyHeader carries the shared admin secret.
const APIKeyHeader = "X-API-Key"

// APIKeyMiddleware admits a request only when its X-API-Key equals the
// configured admin key. With no key configured every request fails with 500.
func APIKeyMiddleware(cfg config.Config) func(http.Handler) http.Handler {
	secret := []byte(cfg.AdminAPIKey)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(secret) == 0 {
				logging.ErrorLogger.Error("ADMIN_API_KEY not set in environment variables")
				httputils.WriteError(w, &types.APIError{
					Status:  http.StatusInternalServerError,
					Message: "Server configuration error",
				})
				return
			}
			key := r.Header.Get(APIKeyHeader)
			if key == "" || subtle.ConstantTimeCompare([]byte(key), secret) != 1 {
				logging.RequestLogger.Info("rejected admin request",
					zap.String("path", r.URL.Path),
					zap.Bool("key_present", key != ""),
				)
				httputils.WriteError(w, &types.APIError{
					Status:  http.StatusUnauthorized,
					Message: "Unauthorized",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
