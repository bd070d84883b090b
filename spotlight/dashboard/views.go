package dashboard

import (
	"fmt"

	"spotlight/spotlight/sources/psql/models"
	"spotlight/spotlight/types"
)

// View is one dashboard panel. Exactly one is visible at a time.
type View string

const (
	ViewSessions         View = "sessions-list"
	ViewSessionDetail    View = "session-detail"
	ViewAssessments      View = "assessments-list"
	ViewAssessmentDetail View = "assessment-detail"
	ViewSummary          View = "dashboard-summary"
	ViewReports          View = "reports"
)

// Tabs are the views reachable directly; detail views open from their list.
var Tabs = []View{ViewSummary, ViewAssessments, ViewSessions, ViewReports}

// ViewState tracks the visible panel and the entity a detail view shows.
type ViewState struct {
	current    View
	session    *types.ConversationResponse
	assessment *models.Assessment
}

func NewViewState() *ViewState {
	return &ViewState{current: ViewSummary}
}

func (v *ViewState) Current() View { return v.current }

func (v *ViewState) IsVisible(view View) bool { return v.current == view }

// SelectTab switches to a top-level view and drops any selection.
func (v *ViewState) SelectTab(view View) error {
	switch view {
	case ViewSummary, ViewAssessments, ViewSessions, ViewReports:
	default:
		return fmt.Errorf("%q is not a tab", view)
	}
	v.current = view
	v.session = nil
	v.assessment = nil
	return nil
}

// OpenSession shows a conversation transcript.
func (v *ViewState) OpenSession(conv *types.ConversationResponse) {
	v.current = ViewSessionDetail
	v.session = conv
	v.assessment = nil
}

// OpenAssessment shows an assessment's detail.
func (v *ViewState) OpenAssessment(a *models.Assessment) {
	v.current = ViewAssessmentDetail
	v.assessment = a
	v.session = nil
}

// Back leaves a detail view for its parent list and clears the selection.
// From a top-level view it does nothing.
func (v *ViewState) Back() {
	switch v.current {
	case ViewSessionDetail:
		v.current = ViewSessions
	case ViewAssessmentDetail:
		v.current = ViewAssessments
	default:
		return
	}
	v.session = nil
	v.assessment = nil
}

func (v *ViewState) SelectedSession() *types.ConversationResponse { return v.session }

func (v *ViewState) SelectedAssessment() *models.Assessment { return v.assessment }
