package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"spotlight/spotlight/dashboard"
	"spotlight/spotlight/utils/color"
	"spotlight/spotlight/utils/jsonutils"

	"github.com/mattn/go-runewidth"
)

const timeLayout = "2006-01-02 15:04"

// cell is one table value. Padding is computed on text, then paint is applied,
// so escape codes never skew column widths.
type cell struct {
	text  string
	paint func(string) string
}

func plain(s string) cell { return cell{text: s} }

func tierCell(tier dashboard.Tier, s string) cell {
	return cell{text: s, paint: func(v string) string { return color.ColorTier(string(tier), v) }}
}

// padRight pads s with spaces so its terminal display width reaches width.
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-sw)
}

func truncate(s string, width int) string {
	return runewidth.Truncate(s, width, "…")
}

func writeTable(w io.Writer, headers []string, rows [][]cell) error {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, c := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(c.text))
		}
	}

	var b strings.Builder
	for i, h := range headers {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(color.ColorHeader(padRight(h, widths[i])))
	}
	b.WriteString("\n")
	for _, row := range rows {
		for i, c := range row {
			if i > 0 {
				b.WriteString("  ")
			}
			text := c.text
			if i < len(row)-1 {
				text = padRight(text, widths[i])
			}
			if c.paint != nil {
				text = c.paint(text)
			}
			b.WriteString(text)
		}
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// writeStructured emits v as JSON or YAML; it reports false for table output.
func writeStructured(w io.Writer, format string, v any) (bool, error) {
	var out string
	switch format {
	case outputJSON:
		out = jsonutils.ToJSON(v)
	case outputYAML:
		out = jsonutils.ToYAML(v)
	default:
		return false, nil
	}
	if out == "" {
		return true, fmt.Errorf("failed to encode %s output", format)
	}
	_, err := fmt.Fprintln(w, out)
	return true, err
}

func writePageFooter(w io.Writer, info dashboard.PageInfo, noun string) {
	if info.Total == 0 {
		fmt.Fprintln(w, color.ColorMuted("No "+noun+" found"))
		return
	}
	fmt.Fprintln(w, color.ColorMuted(fmt.Sprintf("Showing %d-%d of %d %s (page %d/%d)",
		info.Start, info.End, info.Total, noun, info.Page, info.Pages)))
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format(timeLayout)
}

func scoreBadge(score int, kind dashboard.ScoreKind) cell {
	return tierCell(dashboard.Classify(score, kind), fmt.Sprintf("%d", score))
}
