// spotlight/routes/api.go
package routes

import (
	"errors"
	"net/http"

	"spotlight/spotlight/config"
	"spotlight/spotlight/controllers"
	"spotlight/spotlight/middlewares"
	"spotlight/spotlight/types"
	httputils "spotlight/spotlight/utils/http"
	"spotlight/spotlight/utils/logging"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// APIControllers groups the read controllers served under /api.
type APIControllers struct {
	Sessions    *controllers.SessionsController
	Assessments *controllers.AssessmentsController
	Stats       *controllers.StatsController
}

// handleJSON runs handler and converts its error into the {error, details?}
// body. failure is the message used for store and unexpected errors.
func handleJSON(failure string, handler func(r *http.Request) (any, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := handler(r)
		if err != nil {
			httputils.WriteError(w, toAPIError(failure, err))
			return
		}
		httputils.WriteJSON(w, http.StatusOK, res)
	}
}

func toAPIError(failure string, err error) *types.APIError {
	status := types.StatusFor(err)
	switch {
	case errors.Is(err, types.ErrValidation), errors.Is(err, types.ErrNotFound):
		return &types.APIError{Status: status, Message: err.Error()}
	default:
		logging.ErrorLogger.Error(failure, zap.Error(err))
		return &types.APIError{Status: status, Message: failure, Details: err.Error()}
	}
}

func APIRoutes(ctrls APIControllers, cfg config.Config) chi.Router {
	r := chi.NewRouter()

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		httputils.WriteJSON(w, http.StatusOK, types.PingResponse{Message: "Pong! Admin server is up and running."})
	})

	r.Group(func(gr chi.Router) {
		gr.Use(middlewares.APIKeyMiddleware(cfg))

		gr.Get("/stats", handleJSON("Failed to generate stats", func(r *http.Request) (any, error) {
			return ctrls.Stats.GetStats(r.Context())
		}))

		gr.Get("/sessions", handleJSON("Failed to fetch sessions", func(r *http.Request) (any, error) {
			q := r.URL.Query()
			return ctrls.Sessions.ListSessions(r.Context(), types.SessionFilter{
				WorkshopID: q.Get("workshopId"),
				Search:     q.Get("search"),
			})
		}))

		gr.Get("/assessments", handleJSON("Failed to fetch assessments", func(r *http.Request) (any, error) {
			return ctrls.Assessments.ListAssessments(r.Context(), types.AssessmentFilter{
				Search: r.URL.Query().Get("search"),
			})
		}))

		gr.Get("/assessment", handleJSON("Failed to fetch assessment details", func(r *http.Request) (any, error) {
			return ctrls.Assessments.GetAssessmentDetail(r.Context(), r.URL.Query().Get("id"))
		}))

		gr.Get("/conversation", handleJSON("Failed to fetch conversation", func(r *http.Request) (any, error) {
			return ctrls.Sessions.GetConversation(r.Context(), r.URL.Query().Get("sessionId"))
		}))
	})

	return r
}
