// spotlight/utils/color/color.go
package color

import (
	"github.com/fatih/color"
)

var (
	headerColor  = color.New(color.FgCyan, color.Bold)
	highColor    = color.New(color.FgGreen, color.Bold)
	mediumColor  = color.New(color.FgYellow)
	lowColor     = color.New(color.FgRed)
	mutedColor   = color.New(color.FgHiBlack)
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
)

// SetEnabled forces colors on or off regardless of the terminal.
func SetEnabled(enabled bool) {
	color.NoColor = !enabled
}

func ColorHeader(s string) string {
	return headerColor.Sprint(s)
}

// ColorTier paints s by tier name: "high", "medium", anything else is low.
func ColorTier(tier, s string) string {
	switch tier {
	case "high":
		return highColor.Sprint(s)
	case "medium":
		return mediumColor.Sprint(s)
	default:
		return lowColor.Sprint(s)
	}
}

func ColorMuted(s string) string {
	return mutedColor.Sprint(s)
}

func ColorWarning(s string) string {
	return warningColor.Sprint(s)
}

func ColorError(s string) string {
	return errorColor.Sprint(s)
}
