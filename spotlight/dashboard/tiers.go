package dashboard

// ScoreKind selects the thresholds used by Classify.
type ScoreKind int

const (
	ScoreTotal ScoreKind = iota
	ScoreDimension
)

// Tier is the coarse quality bucket shown on score badges.
type Tier string

const (
	TierHigh   Tier = "high"
	TierMedium Tier = "medium"
	TierLow    Tier = "low"
)

// Classify buckets a total score (3..15) or a single dimension score (1..5).
func Classify(score int, kind ScoreKind) Tier {
	high, medium := 12, 8
	if kind == ScoreDimension {
		high, medium = 4, 3
	}
	switch {
	case score >= high:
		return TierHigh
	case score >= medium:
		return TierMedium
	default:
		return TierLow
	}
}

// Label is the wording used next to a total score.
func (t Tier) Label() string {
	switch t {
	case TierHigh:
		return "High Quality"
	case TierMedium:
		return "Promising"
	default:
		return "Needs Development"
	}
}

// Dimension names one of the three scored assessment dimensions.
type Dimension string

const (
	DimensionProblem  Dimension = "problem"
	DimensionSolution Dimension = "solution"
	DimensionValue    Dimension = "value"
)

var dimensionLabels = map[Dimension][3]string{
	DimensionProblem:  {"Significant problem", "Moderate problem", "Limited problem"},
	DimensionSolution: {"Excellent fit", "Good fit", "Partial fit"},
	DimensionValue:    {"High value", "Reasonable value", "Limited value"},
}

// DimensionLabel describes a 1..5 score for dim; unknown dimensions get "".
func DimensionLabel(dim Dimension, score int) string {
	labels, ok := dimensionLabels[dim]
	if !ok {
		return ""
	}
	switch Classify(score, ScoreDimension) {
	case TierHigh:
		return labels[0]
	case TierMedium:
		return labels[1]
	default:
		return labels[2]
	}
}

// DimensionName is the column heading for dim.
func DimensionName(dim Dimension) string {
	switch dim {
	case DimensionProblem:
		return "Problem Value"
	case DimensionSolution:
		return "Solution Fit"
	case DimensionValue:
		return "Value for Money"
	}
	return string(dim)
}
