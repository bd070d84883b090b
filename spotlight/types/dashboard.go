package types

import (
	"spotlight/spotlight/sources/psql/models"
)

// SessionFilter narrows ListSessions. Empty fields do not filter.
type SessionFilter struct {
	WorkshopID string `json:"workshopId,omitempty"`
	Search     string `json:"search,omitempty"`
}

// AssessmentFilter narrows ListAssessments. Empty fields do not filter.
type AssessmentFilter struct {
	Search string `json:"search,omitempty"`
}

type HighestRated struct {
	InnovationName string `json:"innovationName"`
	Score          int    `json:"score"`
}

type Stats struct {
	TotalSessions        int64         `json:"totalSessions"`
	CompletedAssessments int64         `json:"completedAssessments"`
	AverageScore         float64       `json:"averageScore"`
	HighestRated         *HighestRated `json:"highestRated"`
}

type StatsResponse struct {
	Stats Stats `json:"stats"`
}

type SessionsResponse struct {
	Sessions []models.Session `json:"sessions"`
	Count    int              `json:"count"`
}

type AssessmentsResponse struct {
	Assessments []models.Assessment `json:"assessments"`
	Count       int                 `json:"count"`
}

type ConversationResponse struct {
	Session  models.Session   `json:"session"`
	Messages []models.Message `json:"messages"`
	Count    int              `json:"count"`
}

type AssessmentResponse struct {
	Assessment models.Assessment `json:"assessment"`
}

type PingResponse struct {
	Message string `json:"message"`
}

type validationError struct {
	msg string
}

func (e *validationError) Error() string { return e.msg }

func (e *validationError) Is(target error) bool { return target == ErrValidation }

// NewValidationError builds an error whose message is shown to the caller verbatim.
func NewValidationError(msg string) error {
	return &validationError{msg: msg}
}
