// spotlight/controllers/assessments.go
package controllers

import (
	"context"

	"spotlight/spotlight/sources/psql/dao"
	"spotlight/spotlight/types"
	"spotlight/spotlight/utils/logging"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AssessmentsController struct {
	dao *dao.AssessmentDAO
}

func NewAssessmentsController(dao *dao.AssessmentDAO) *AssessmentsController {
	return &AssessmentsController{dao: dao}
}

func (c *AssessmentsController) ListAssessments(ctx context.Context, filter types.AssessmentFilter) (*types.AssessmentsResponse, error) {
	defer logging.LogDuration(ctx, "ListAssessments")()
	logging.AppLogger.Info("Fetching all assessments for admin dashboard", zap.String("search", filter.Search))
	assessments, err := c.dao.ListAssessments(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &types.AssessmentsResponse{Assessments: assessments, Count: len(assessments)}, nil
}

// GetAssessmentDetail treats an id that is not a UUID as unknown rather than invalid.
func (c *AssessmentsController) GetAssessmentDetail(ctx context.Context, id string) (*types.AssessmentResponse, error) {
	defer logging.LogDuration(ctx, "GetAssessmentDetail")()
	if id == "" {
		return nil, types.NewValidationError("Assessment ID is required")
	}
	logging.AppLogger.Info("Fetching assessment details", zap.String("assessment_id", id))

	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, types.ErrAssessmentNotFound
	}
	assessment, err := c.dao.GetAssessmentByID(ctx, parsed)
	if err != nil {
		return nil, err
	}
	if assessment == nil {
		return nil, types.ErrAssessmentNotFound
	}
	return &types.AssessmentResponse{Assessment: *assessment}, nil
}
