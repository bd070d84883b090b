// spotlight/routes/router.go
package routes

import (
	"net/http"
	"time"

	"spotlight/spotlight/config"
	"spotlight/spotlight/controllers"
	"spotlight/spotlight/middlewares"
	"spotlight/spotlight/sources/psql"
	"spotlight/spotlight/sources/psql/dao"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires DAOs, controllers and middleware over db.
func NewRouter(cfg config.Config, db *psql.Database) chi.Router {
	sessionDAO := dao.NewSessionDAO(db)
	messageDAO := dao.NewMessageDAO(db)
	assessmentDAO := dao.NewAssessmentDAO(db)

	ctrls := APIControllers{
		Sessions:    controllers.NewSessionsController(sessionDAO, messageDAO),
		Assessments: controllers.NewAssessmentsController(assessmentDAO),
		Stats:       controllers.NewStatsController(sessionDAO, assessmentDAO),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middlewares.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Mount("/api", APIRoutes(ctrls, cfg))
	r.Mount("/health", HealthRoutes(controllers.NewHealthController(db)))

	if cfg.StaticDir != "" {
		r.Handle("/*", http.FileServer(http.Dir(cfg.StaticDir)))
	}
	return r
}
