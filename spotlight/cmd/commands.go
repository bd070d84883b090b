package cmd

import (
	"fmt"
	"slices"
	"strings"

	"spotlight/spotlight/dashboard"
	"spotlight/spotlight/sources/psql/models"
	"spotlight/spotlight/types"
	"spotlight/spotlight/utils/color"

	"github.com/spf13/cobra"
)

type listFlags struct {
	search string
	page   int
	sort   string
	desc   bool
}

func (f *listFlags) register(cmd *cobra.Command, columns []string) {
	cmd.Flags().StringVar(&f.search, "search", "", "Case-insensitive innovation name filter")
	cmd.Flags().IntVar(&f.page, "page", 1, "Page number")
	cmd.Flags().StringVar(&f.sort, "sort", "", "Sort column: "+strings.Join(columns, ", "))
	cmd.Flags().BoolVar(&f.desc, "desc", false, "Sort descending")
}

func (f *listFlags) sortSpec(columns []string) (dashboard.SortSpec, error) {
	if f.sort == "" {
		return dashboard.SortSpec{}, nil
	}
	if !slices.Contains(columns, f.sort) {
		return dashboard.SortSpec{}, fmt.Errorf("unknown sort column %q (want one of %s)", f.sort, strings.Join(columns, ", "))
	}
	spec := dashboard.SortSpec{Column: f.sort, Direction: dashboard.Asc}
	if f.desc {
		spec.Direction = dashboard.Desc
	}
	return spec, nil
}

func newStatsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show summary statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stats, err := opts.client().Stats(cmd.Context())
			if err != nil {
				return err
			}
			if done, err := writeStructured(cmd.OutOrStdout(), opts.output(), types.StatsResponse{Stats: *stats}); done {
				return err
			}
			writeStats(cmd, stats)
			return nil
		},
	}
}

func writeStats(cmd *cobra.Command, stats *types.Stats) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s  %d\n", color.ColorHeader(padRight("Total sessions", 22)), stats.TotalSessions)
	fmt.Fprintf(out, "%s  %d\n", color.ColorHeader(padRight("Completed assessments", 22)), stats.CompletedAssessments)
	fmt.Fprintf(out, "%s  %.1f\n", color.ColorHeader(padRight("Average score", 22)), stats.AverageScore)
	highest := color.ColorMuted("-")
	if stats.HighestRated != nil {
		tier := dashboard.Classify(stats.HighestRated.Score, dashboard.ScoreTotal)
		highest = fmt.Sprintf("%s (%s)", stats.HighestRated.InnovationName,
			color.ColorTier(string(tier), fmt.Sprintf("%d", stats.HighestRated.Score)))
	}
	fmt.Fprintf(out, "%s  %s\n", color.ColorHeader(padRight("Highest rated", 22)), highest)
}

func newSessionsCmd(opts *options) *cobra.Command {
	var flags listFlags
	var workshop string

	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "List sessions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			spec, err := flags.sortSpec(dashboard.SessionSortColumns())
			if err != nil {
				return err
			}
			d := dashboard.New(opts.client())
			d.SetSessionFilter(types.SessionFilter{WorkshopID: workshop, Search: flags.search})
			d.SessionSort = spec
			if err := d.ReloadSessions(cmd.Context()); err != nil {
				return err
			}
			d.SessionPager.SetPage(flags.page, len(d.VisibleSessionsAll()))
			page, info := d.VisibleSessions()

			if done, err := writeStructured(cmd.OutOrStdout(), opts.output(), struct {
				Sessions []models.Session  `json:"sessions"`
				Page     dashboard.PageInfo `json:"page"`
			}{page, info}); done {
				return err
			}

			rows := make([][]cell, 0, len(page))
			for _, s := range page {
				status := tierCell(dashboard.TierMedium, "In Progress")
				if s.Completed {
					status = tierCell(dashboard.TierHigh, "Completed")
				}
				workshopID := "-"
				if s.WorkshopID != nil {
					workshopID = *s.WorkshopID
				}
				rows = append(rows, []cell{
					plain(s.SessionID),
					plain(truncate(s.InnovationName, 40)),
					plain(workshopID),
					status,
					plain(formatTime(s.Created)),
					plain(formatTime(s.LastActivity)),
				})
			}
			if len(rows) > 0 {
				if err := writeTable(cmd.OutOrStdout(), []string{"SESSION", "INNOVATION", "WORKSHOP", "STATUS", "CREATED", "LAST ACTIVITY"}, rows); err != nil {
					return err
				}
			}
			writePageFooter(cmd.OutOrStdout(), info, "sessions")
			return nil
		},
	}

	flags.register(cmd, dashboard.SessionSortColumns())
	cmd.Flags().StringVar(&workshop, "workshop", "", "Exact workshop ID filter")
	return cmd
}

func newAssessmentsCmd(opts *options) *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "assessments",
		Short: "List assessments, most recently completed first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			spec, err := flags.sortSpec(dashboard.AssessmentSortColumns())
			if err != nil {
				return err
			}
			d := dashboard.New(opts.client())
			d.SetAssessmentFilter(types.AssessmentFilter{Search: flags.search})
			d.AssessmentSort = spec
			if err := d.ReloadAssessments(cmd.Context()); err != nil {
				return err
			}
			d.AssessmentPager.SetPage(flags.page, len(d.VisibleAssessmentsAll()))
			page, info := d.VisibleAssessments()

			if done, err := writeStructured(cmd.OutOrStdout(), opts.output(), struct {
				Assessments []models.Assessment `json:"assessments"`
				Page        dashboard.PageInfo  `json:"page"`
			}{page, info}); done {
				return err
			}

			rows := make([][]cell, 0, len(page))
			for _, a := range page {
				tier := dashboard.Classify(a.TotalScore, dashboard.ScoreTotal)
				rows = append(rows, []cell{
					plain(a.ID.String()),
					plain(truncate(a.InnovationName, 40)),
					scoreBadge(a.ProblemValue, dashboard.ScoreDimension),
					scoreBadge(a.SolutionFit, dashboard.ScoreDimension),
					scoreBadge(a.ValueForMoney, dashboard.ScoreDimension),
					scoreBadge(a.TotalScore, dashboard.ScoreTotal),
					tierCell(tier, tier.Label()),
					plain(formatTime(a.Completed)),
				})
			}
			if len(rows) > 0 {
				if err := writeTable(cmd.OutOrStdout(), []string{"ID", "INNOVATION", "PROBLEM", "SOLUTION", "VALUE", "TOTAL", "TIER", "COMPLETED"}, rows); err != nil {
					return err
				}
			}
			writePageFooter(cmd.OutOrStdout(), info, "assessments")
			return nil
		},
	}

	flags.register(cmd, dashboard.AssessmentSortColumns())
	return cmd
}

func newConversationCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "conversation <sessionId>",
		Short: "Show a session and its transcript",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := dashboard.New(opts.client())
			if err := d.ViewSession(cmd.Context(), args[0]); err != nil {
				return err
			}
			conv := d.Views.SelectedSession()
			if done, err := writeStructured(cmd.OutOrStdout(), opts.output(), conv); done {
				return err
			}

			out := cmd.OutOrStdout()
			s := conv.Session
			fmt.Fprintf(out, "%s %s\n", color.ColorHeader("Innovation:"), s.InnovationName)
			fmt.Fprintf(out, "%s %s\n", color.ColorHeader("Session:"), s.SessionID)
			fmt.Fprintf(out, "%s %s\n\n", color.ColorHeader("Created:"), formatTime(s.Created))
			if len(conv.Messages) == 0 {
				fmt.Fprintln(out, color.ColorMuted("No messages"))
				return nil
			}
			for _, m := range conv.Messages {
				fmt.Fprintf(out, "%s %s\n%s\n\n",
					color.ColorMuted("["+m.Timestamp.UTC().Format("15:04:05")+"]"),
					roleLabel(m.Role), m.Content)
			}
			return nil
		},
	}
}

func roleLabel(role models.Role) string {
	switch role {
	case models.RoleUser:
		return color.ColorTier("medium", "User")
	case models.RoleAssistant:
		return color.ColorTier("high", "Assistant")
	default:
		return color.ColorMuted(string(role))
	}
}

func newAssessmentCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "assessment <id>",
		Short: "Show one assessment's scores and recommendation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := dashboard.New(opts.client())
			if err := d.ViewAssessment(cmd.Context(), args[0]); err != nil {
				return err
			}
			a := d.Views.SelectedAssessment()
			if done, err := writeStructured(cmd.OutOrStdout(), opts.output(), types.AssessmentResponse{Assessment: *a}); done {
				return err
			}

			out := cmd.OutOrStdout()
			total := dashboard.Classify(a.TotalScore, dashboard.ScoreTotal)
			fmt.Fprintf(out, "%s %s\n", color.ColorHeader("Innovation:"), a.InnovationName)
			fmt.Fprintf(out, "%s %s\n\n", color.ColorHeader("Completed:"), formatTime(a.Completed))
			rows := [][]cell{}
			for _, dim := range []struct {
				d     dashboard.Dimension
				score int
			}{
				{dashboard.DimensionProblem, a.ProblemValue},
				{dashboard.DimensionSolution, a.SolutionFit},
				{dashboard.DimensionValue, a.ValueForMoney},
			} {
				tier := dashboard.Classify(dim.score, dashboard.ScoreDimension)
				rows = append(rows, []cell{
					plain(dashboard.DimensionName(dim.d)),
					scoreBadge(dim.score, dashboard.ScoreDimension),
					tierCell(tier, dashboard.DimensionLabel(dim.d, dim.score)),
				})
			}
			rows = append(rows, []cell{plain("Total"), scoreBadge(a.TotalScore, dashboard.ScoreTotal), tierCell(total, total.Label())})
			if err := writeTable(out, []string{"DIMENSION", "SCORE", "RATING"}, rows); err != nil {
				return err
			}
			fmt.Fprintf(out, "\n%s\n%s\n", color.ColorHeader("Recommendation:"), a.Recommendation)
			return nil
		},
	}
}

func newSummaryCmd(opts *options) *cobra.Command {
	var top int

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show stats, top innovations and the score distribution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d := dashboard.New(opts.client())
			report := d.Load(cmd.Context())
			if report.StatsErr != nil && report.SessionsErr != nil && report.AssessmentsErr != nil {
				return report.Err()
			}
			for _, failed := range []struct {
				name string
				err  error
			}{{"stats", report.StatsErr}, {"sessions", report.SessionsErr}, {"assessments", report.AssessmentsErr}} {
				if failed.err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), color.ColorWarning(fmt.Sprintf("warning: failed to load %s: %v", failed.name, failed.err)))
				}
			}

			summary := d.Summary(top)
			if done, err := writeStructured(cmd.OutOrStdout(), opts.output(), summary); done {
				return err
			}

			out := cmd.OutOrStdout()
			writeStats(cmd, &summary.Stats)
			fmt.Fprintf(out, "%s  %d\n\n", color.ColorHeader(padRight("High quality", 22)), summary.HighQualityCount)

			if len(summary.Top) > 0 {
				rows := make([][]cell, 0, len(summary.Top))
				for i, a := range summary.Top {
					rows = append(rows, []cell{
						plain(fmt.Sprintf("%d", i+1)),
						plain(truncate(a.InnovationName, 40)),
						scoreBadge(a.TotalScore, dashboard.ScoreTotal),
					})
				}
				if err := writeTable(out, []string{"#", "TOP INNOVATION", "TOTAL"}, rows); err != nil {
					return err
				}
				fmt.Fprintln(out)
			}

			rows := make([][]cell, 0, len(summary.Distribution))
			for _, b := range summary.Distribution {
				rows = append(rows, []cell{
					plain(b.Label),
					plain(fmt.Sprintf("%d", b.Count)),
					tierCell(dashboard.Classify(b.Max, dashboard.ScoreTotal), strings.Repeat("#", b.Count)),
				})
			}
			return writeTable(out, []string{"SCORE", "COUNT", ""}, rows)
		},
	}

	cmd.Flags().IntVar(&top, "top", 5, "Number of top innovations to show")
	return cmd
}

func newReportsCmd(opts *options) *cobra.Command {
	var months int

	cmd := &cobra.Command{
		Use:   "reports",
		Short: "Show assessments completed per month and the score distribution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d := dashboard.New(opts.client())
			if err := d.ReloadAssessments(cmd.Context()); err != nil {
				return err
			}
			report := struct {
				Monthly      []dashboard.MonthCount `json:"monthly"`
				Distribution []dashboard.Bucket     `json:"scoreDistribution"`
			}{
				Monthly:      dashboard.MonthlyCounts(d.Assessments, opts.now(), months),
				Distribution: dashboard.ScoreDistribution(d.Assessments),
			}
			if done, err := writeStructured(cmd.OutOrStdout(), opts.output(), report); done {
				return err
			}

			rows := make([][]cell, 0, len(report.Monthly))
			for _, m := range report.Monthly {
				rows = append(rows, []cell{plain(m.Label), plain(fmt.Sprintf("%d", m.Count)), plain(strings.Repeat("#", m.Count))})
			}
			return writeTable(cmd.OutOrStdout(), []string{"MONTH", "COMPLETED", ""}, rows)
		},
	}

	cmd.Flags().IntVar(&months, "months", 6, "Number of calendar months to cover")
	return cmd
}
