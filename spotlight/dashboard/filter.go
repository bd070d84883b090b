package dashboard

import (
	"strings"

	"spotlight/spotlight/sources/psql/models"
	"spotlight/spotlight/types"
)

// MatchesSearch is a case-insensitive substring match; an empty term matches everything.
// Whitespace is significant.
func MatchesSearch(name, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(name), strings.ToLower(term))
}

// FilterSessions applies the search and exact workshop filters. Sessions
// without a workshop never match a workshop filter. The input is not modified.
func FilterSessions(sessions []models.Session, f types.SessionFilter) []models.Session {
	out := make([]models.Session, 0, len(sessions))
	for _, s := range sessions {
		if !MatchesSearch(s.InnovationName, f.Search) {
			continue
		}
		if f.WorkshopID != "" && (s.WorkshopID == nil || *s.WorkshopID != f.WorkshopID) {
			continue
		}
		out = append(out, s)
	}
	return out
}

func FilterAssessments(assessments []models.Assessment, f types.AssessmentFilter) []models.Assessment {
	out := make([]models.Assessment, 0, len(assessments))
	for _, a := range assessments {
		if MatchesSearch(a.InnovationName, f.Search) {
			out = append(out, a)
		}
	}
	return out
}
