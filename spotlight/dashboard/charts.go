package dashboard

import (
	"cmp"
	"slices"
	"time"

	"spotlight/spotlight/sources/psql/models"
)

// Bucket counts assessments whose total score falls in [Min, Max].
type Bucket struct {
	Label string `json:"label"`
	Min   int    `json:"min"`
	Max   int    `json:"max"`
	Count int    `json:"count"`
}

var scoreRanges = []Bucket{
	{Label: "1-5", Min: 1, Max: 5},
	{Label: "6-8", Min: 6, Max: 8},
	{Label: "9-11", Min: 9, Max: 11},
	{Label: "12-15", Min: 12, Max: 15},
}

func ScoreDistribution(assessments []models.Assessment) []Bucket {
	buckets := slices.Clone(scoreRanges)
	for _, a := range assessments {
		for i := range buckets {
			if a.TotalScore >= buckets[i].Min && a.TotalScore <= buckets[i].Max {
				buckets[i].Count++
				break
			}
		}
	}
	return buckets
}

// MonthCount is the number of assessments completed in one calendar month.
type MonthCount struct {
	Label string     `json:"label"`
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Count int        `json:"count"`
}

// MonthlyCounts covers the last months calendar months ending with now's month,
// oldest first, in now's location.
func MonthlyCounts(assessments []models.Assessment, now time.Time, months int) []MonthCount {
	if months <= 0 {
		return []MonthCount{}
	}
	loc := now.Location()
	current := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	out := make([]MonthCount, 0, months)
	for i := months - 1; i >= 0; i-- {
		start := current.AddDate(0, -i, 0)
		end := start.AddDate(0, 1, 0)
		n := 0
		for _, a := range assessments {
			c := a.Completed.In(loc)
			if !c.Before(start) && c.Before(end) {
				n++
			}
		}
		out = append(out, MonthCount{
			Label: start.Format("Jan 2006"),
			Year:  start.Year(),
			Month: start.Month(),
			Count: n,
		})
	}
	return out
}

// TopInnovations returns up to n assessments by total score; equal scores keep input order.
func TopInnovations(assessments []models.Assessment, n int) []models.Assessment {
	out := slices.Clone(assessments)
	slices.SortStableFunc(out, func(a, b models.Assessment) int { return cmp.Compare(b.TotalScore, a.TotalScore) })
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// HighQualityCount counts assessments in the high total-score tier.
func HighQualityCount(assessments []models.Assessment) int {
	n := 0
	for _, a := range assessments {
		if Classify(a.TotalScore, ScoreTotal) == TierHigh {
			n++
		}
	}
	return n
}
