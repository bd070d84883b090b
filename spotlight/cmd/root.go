package cmd

import (
	"fmt"
	"strings"
	"time"

	"spotlight/spotlight/dashboard"
	"spotlight/spotlight/utils/color"
	"spotlight/spotlight/utils/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"

	defaultAPIURL = "http://localhost:3001/api"
)

func Execute() error {
	return newRootCmd().Execute()
}

// options are the global flags, resolved through viper so SPOTLIGHT_* env vars apply.
type options struct {
	v   *viper.Viper
	now func() time.Time
}

func (o *options) apiURL() string { return o.v.GetString("api-url") }
func (o *options) apiKey() string { return o.v.GetString("api-key") }
func (o *options) output() string { return strings.ToLower(o.v.GetString("output")) }

func (o *options) client() *dashboard.Client {
	return dashboard.NewClient(o.apiURL(), o.apiKey(), nil)
}

func newRootCmd() *cobra.Command {
	opts := &options{v: viper.New(), now: time.Now}
	opts.v.SetEnvPrefix("SPOTLIGHT")
	opts.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	opts.v.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:           "spotlight-dashboard",
		Short:         "Read-only admin view of innovation sessions and assessments",
		Long:          "spotlight-dashboard queries the admin API for sessions, conversation transcripts, assessments and summary statistics, and renders them as tables, JSON or YAML.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch opts.output() {
			case outputTable, outputJSON, outputYAML:
			default:
				return fmt.Errorf("unsupported output %q (want table, json or yaml)", opts.output())
			}
			if opts.v.GetBool("no-color") {
				color.SetEnabled(false)
			}
			if dir := opts.v.GetString("log-dir"); dir != "" {
				logging.InitLogger(dir)
			}
			if opts.apiKey() == "" {
				return fmt.Errorf("an API key is required: pass --api-key or set SPOTLIGHT_API_KEY")
			}
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("api-url", defaultAPIURL, "Admin API base URL, including the /api prefix")
	flags.String("api-key", "", "Admin API key sent as X-API-Key")
	flags.StringP("output", "o", outputTable, "Output format: table, json or yaml")
	flags.Bool("no-color", false, "Disable colored output")
	flags.String("log-dir", "", "Write rotating log files to this directory")
	for _, name := range []string{"api-url", "api-key", "output", "no-color", "log-dir"} {
		_ = opts.v.BindPFlag(name, flags.Lookup(name))
	}

	rootCmd.AddCommand(
		newStatsCmd(opts),
		newSessionsCmd(opts),
		newAssessmentsCmd(opts),
		newConversationCmd(opts),
		newAssessmentCmd(opts),
		newSummaryCmd(opts),
		newReportsCmd(opts),
	)

	return rootCmd
}
