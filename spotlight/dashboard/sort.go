package dashboard

import (
	"cmp"
	"slices"
	"strings"

	"spotlight/spotlight/sources/psql/models"
)

type SortDirection int

const (
	Asc SortDirection = iota
	Desc
)

// SortSpec is the active table sort. An empty Column keeps server order.
type SortSpec struct {
	Column    string
	Direction SortDirection
}

// Toggle mirrors clicking a column header: the same column flips direction,
// a new column starts ascending.
func (s SortSpec) Toggle(column string) SortSpec {
	if s.Column == column {
		if s.Direction == Asc {
			return SortSpec{Column: column, Direction: Desc}
		}
		return SortSpec{Column: column, Direction: Asc}
	}
	return SortSpec{Column: column, Direction: Asc}
}

func (s SortSpec) apply(c int) int {
	if s.Direction == Desc {
		return -c
	}
	return c
}

var sessionColumns = map[string]func(a, b models.Session) int{
	"sessionId":      func(a, b models.Session) int { return cmp.Compare(a.SessionID, b.SessionID) },
	"innovationName": func(a, b models.Session) int { return compareFold(a.InnovationName, b.InnovationName) },
	"workshopId":     func(a, b models.Session) int { return cmp.Compare(deref(a.WorkshopID), deref(b.WorkshopID)) },
	"completed":      func(a, b models.Session) int { return compareBool(a.Completed, b.Completed) },
	"created":        func(a, b models.Session) int { return a.Created.Compare(b.Created) },
	"lastActivity":   func(a, b models.Session) int { return a.LastActivity.Compare(b.LastActivity) },
}

var assessmentColumns = map[string]func(a, b models.Assessment) int{
	"innovationName": func(a, b models.Assessment) int { return compareFold(a.InnovationName, b.InnovationName) },
	"problemValue":   func(a, b models.Assessment) int { return cmp.Compare(a.ProblemValue, b.ProblemValue) },
	"solutionFit":    func(a, b models.Assessment) int { return cmp.Compare(a.SolutionFit, b.SolutionFit) },
	"valueForMoney":  func(a, b models.Assessment) int { return cmp.Compare(a.ValueForMoney, b.ValueForMoney) },
	"totalScore":     func(a, b models.Assessment) int { return cmp.Compare(a.TotalScore, b.TotalScore) },
	"completed":      func(a, b models.Assessment) int { return a.Completed.Compare(b.Completed) },
}

// SessionSortColumns lists the columns SortSessions understands.
func SessionSortColumns() []string { return sortedKeys(sessionColumns) }

// AssessmentSortColumns lists the columns SortAssessments understands.
func AssessmentSortColumns() []string { return sortedKeys(assessmentColumns) }

// SortSessions returns a stably sorted copy. Unknown columns keep the input order.
func SortSessions(sessions []models.Session, spec SortSpec) []models.Session {
	out := slices.Clone(sessions)
	if fn, ok := sessionColumns[spec.Column]; ok {
		slices.SortStableFunc(out, func(a, b models.Session) int { return spec.apply(fn(a, b)) })
	}
	return out
}

// SortAssessments returns a stably sorted copy. Unknown columns keep the input order.
func SortAssessments(assessments []models.Assessment, spec SortSpec) []models.Assessment {
	out := slices.Clone(assessments)
	if fn, ok := assessmentColumns[spec.Column]; ok {
		slices.SortStableFunc(out, func(a, b models.Assessment) int { return spec.apply(fn(a, b)) })
	}
	return out
}

func compareFold(a, b string) int {
	return cmp.Compare(strings.ToLower(a), strings.ToLower(b))
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
