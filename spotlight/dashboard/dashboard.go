package dashboard

import (
	"context"
	"errors"

	"spotlight/spotlight/sources/psql/models"
	"spotlight/spotlight/types"
	"spotlight/spotlight/utils/logging"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// API is the subset of Client the dashboard state needs.
type API interface {
	Stats(ctx context.Context) (*types.Stats, error)
	Sessions(ctx context.Context, filter types.SessionFilter) (*types.SessionsResponse, error)
	Assessments(ctx context.Context, filter types.AssessmentFilter) (*types.AssessmentsResponse, error)
	Conversation(ctx context.Context, sessionID string) (*types.ConversationResponse, error)
	Assessment(ctx context.Context, id string) (*models.Assessment, error)
}

// Dashboard holds the client-side state: loaded lists, filters, sort, pages and view.
type Dashboard struct {
	api API

	Stats       types.Stats
	Sessions    []models.Session
	Assessments []models.Assessment

	SessionFilter    types.SessionFilter
	AssessmentFilter types.AssessmentFilter
	SessionSort      SortSpec
	AssessmentSort   SortSpec

	SessionPager    *Pager
	AssessmentPager *Pager
	Views           *ViewState
}

func New(api API) *Dashboard {
	return &Dashboard{
		api:             api,
		SessionPager:    NewPager(DefaultPageSize),
		AssessmentPager: NewPager(DefaultPageSize),
		Views:           NewViewState(),
	}
}

// LoadReport records which of the parallel queries failed.
type LoadReport struct {
	StatsErr       error
	SessionsErr    error
	AssessmentsErr error
}

// Err joins every failure, or is nil when all queries succeeded.
func (r LoadReport) Err() error {
	return errors.Join(r.StatsErr, r.SessionsErr, r.AssessmentsErr)
}

// Load fetches stats, sessions and assessments in parallel and waits for all
// three. A failed query is logged and leaves its slice of state untouched; it
// does not stop the others.
func (d *Dashboard) Load(ctx context.Context) LoadReport {
	defer logging.LogDuration(ctx, "Dashboard.Load")()

	var (
		report      LoadReport
		stats       *types.Stats
		sessions    *types.SessionsResponse
		assessments *types.AssessmentsResponse
	)
	var g errgroup.Group
	g.Go(func() error {
		stats, report.StatsErr = d.api.Stats(ctx)
		return nil
	})
	g.Go(func() error {
		sessions, report.SessionsErr = d.api.Sessions(ctx, d.SessionFilter)
		return nil
	})
	g.Go(func() error {
		assessments, report.AssessmentsErr = d.api.Assessments(ctx, d.AssessmentFilter)
		return nil
	})
	// Goroutines never fail the group; each query's error lives in report.
	_ = g.Wait()

	if report.StatsErr == nil {
		d.Stats = *stats
	} else {
		logging.ErrorLogger.Error("Error fetching stats", zap.Error(report.StatsErr))
	}
	if report.SessionsErr == nil {
		d.Sessions = sessions.Sessions
		d.SessionPager.Clamp(len(d.VisibleSessionsAll()))
	} else {
		logging.ErrorLogger.Error("Error fetching sessions", zap.Error(report.SessionsErr))
	}
	if report.AssessmentsErr == nil {
		d.Assessments = assessments.Assessments
		d.AssessmentPager.Clamp(len(d.VisibleAssessmentsAll()))
	} else {
		logging.ErrorLogger.Error("Error fetching assessments", zap.Error(report.AssessmentsErr))
	}
	return report
}

// ReloadSessions refetches sessions with the current server-side filter.
func (d *Dashboard) ReloadSessions(ctx context.Context) error {
	resp, err := d.api.Sessions(ctx, d.SessionFilter)
	if err != nil {
		return err
	}
	d.Sessions = resp.Sessions
	d.SessionPager.Clamp(len(d.VisibleSessionsAll()))
	return nil
}

// ReloadAssessments refetches assessments with the current server-side filter.
func (d *Dashboard) ReloadAssessments(ctx context.Context) error {
	resp, err := d.api.Assessments(ctx, d.AssessmentFilter)
	if err != nil {
		return err
	}
	d.Assessments = resp.Assessments
	d.AssessmentPager.Clamp(len(d.VisibleAssessmentsAll()))
	return nil
}

// SetSessionFilter changes the filter and returns to the first page.
func (d *Dashboard) SetSessionFilter(f types.SessionFilter) {
	d.SessionFilter = f
	d.SessionPager.Reset()
}

// SetAssessmentFilter changes the filter and returns to the first page.
func (d *Dashboard) SetAssessmentFilter(f types.AssessmentFilter) {
	d.AssessmentFilter = f
	d.AssessmentPager.Reset()
}

// VisibleSessionsAll is the filtered and sorted session list before pagination.
func (d *Dashboard) VisibleSessionsAll() []models.Session {
	return SortSessions(FilterSessions(d.Sessions, d.SessionFilter), d.SessionSort)
}

// VisibleSessions is the current page of the session table.
func (d *Dashboard) VisibleSessions() ([]models.Session, PageInfo) {
	all := d.VisibleSessionsAll()
	return ApplyPage(d.SessionPager, all), d.SessionPager.Info(len(all))
}

// VisibleAssessmentsAll is the filtered and sorted assessment list before pagination.
func (d *Dashboard) VisibleAssessmentsAll() []models.Assessment {
	return SortAssessments(FilterAssessments(d.Assessments, d.AssessmentFilter), d.AssessmentSort)
}

// VisibleAssessments is the current page of the assessment table.
func (d *Dashboard) VisibleAssessments() ([]models.Assessment, PageInfo) {
	all := d.VisibleAssessmentsAll()
	return ApplyPage(d.AssessmentPager, all), d.AssessmentPager.Info(len(all))
}

// ViewSession loads a transcript and opens the session detail view.
func (d *Dashboard) ViewSession(ctx context.Context, sessionID string) error {
	conv, err := d.api.Conversation(ctx, sessionID)
	if err != nil {
		return err
	}
	d.Views.OpenSession(conv)
	return nil
}

// ViewAssessment loads an assessment and opens its detail view.
func (d *Dashboard) ViewAssessment(ctx context.Context, id string) error {
	a, err := d.api.Assessment(ctx, id)
	if err != nil {
		return err
	}
	d.Views.OpenAssessment(a)
	return nil
}

// Summary is what the dashboard-summary panel renders.
type Summary struct {
	Stats            types.Stats         `json:"stats"`
	HighQualityCount int                 `json:"highQualityCount"`
	Top              []models.Assessment `json:"topInnovations"`
	Distribution     []Bucket            `json:"scoreDistribution"`
}

func (d *Dashboard) Summary(top int) Summary {
	return Summary{
		Stats:            d.Stats,
		HighQualityCount: HighQualityCount(d.Assessments),
		Top:              TopInnovations(d.Assessments, top),
		Distribution:     ScoreDistribution(d.Assessments),
	}
}
