// spotlight/controllers/stats.go
package controllers

import (
	"context"

	"spotlight/spotlight/sources/psql/dao"
	"spotlight/spotlight/types"
	"spotlight/spotlight/utils/logging"
)

type StatsController struct {
	sessionDAO    *dao.SessionDAO
	assessmentDAO *dao.AssessmentDAO
}

func NewStatsController(sessionDAO *dao.SessionDAO, assessmentDAO *dao.AssessmentDAO) *StatsController {
	return &StatsController{sessionDAO: sessionDAO, assessmentDAO: assessmentDAO}
}

// GetStats fails as a whole if any store read fails.
func (c *StatsController) GetStats(ctx context.Context) (*types.StatsResponse, error) {
	defer logging.LogDuration(ctx, "GetStats")()
	logging.AppLogger.Info("Generating stats for admin dashboard")

	totalSessions, err := c.sessionDAO.CountSessions(ctx)
	if err != nil {
		return nil, err
	}
	completed, err := c.assessmentDAO.CountAssessments(ctx)
	if err != nil {
		return nil, err
	}
	avg, err := c.assessmentDAO.AverageTotalScore(ctx)
	if err != nil {
		return nil, err
	}
	top, err := c.assessmentDAO.HighestRated(ctx)
	if err != nil {
		return nil, err
	}

	stats := types.Stats{
		TotalSessions:        totalSessions,
		CompletedAssessments: completed,
		AverageScore:         avg,
	}
	if top != nil {
		stats.HighestRated = &types.HighestRated{
			InnovationName: top.InnovationName,
			Score:          top.TotalScore,
		}
	}
	return &types.StatsResponse{Stats: stats}, nil
}
