package cli

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/helloakshay27/fm-matrix-revamp-sub008/internal/config"
	"github.com/helloakshay27/fm-matrix-revamp-sub008/internal/domain"
	"github.com/helloakshay27/fm-matrix-revamp-sub008/internal/errors"
	"github.com/helloakshay27/fm-matrix-revamp-sub008/internal/fmapi"
	"github.com/helloakshay27/fm-matrix-revamp-sub008/internal/refdata"
	"github.com/helloakshay27/fm-matrix-revamp-sub008/internal/tui"
	"github.com/helloakshay27/fm-matrix-revamp-sub008/internal/wizard"
)

// scheduleCreateFlags holds flags for the schedule create command.
type scheduleCreateFlags struct {
	dryRun    bool
	template  string
	weightage bool
}

// AddScheduleCommand adds the schedule command group to the root command.
func AddScheduleCommand(root *cobra.Command) {
	scheduleCmd := &cobra.Command{
		Use:   "schedule",
		Short: "Define recurring maintenance schedules",
	}
	scheduleCmd.AddCommand(newScheduleCreateCmd())
	root.AddCommand(scheduleCmd)
}

func newScheduleCreateCmd() *cobra.Command {
	flags := &scheduleCreateFlags{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a schedule through the interactive wizard",
		Long: `Walk through the five-step schedule-definition wizard: basic
configuration, schedule setup, question setup, time setup and asset mapping.

Each step is gated by its validator; Save & Continue at Time Setup runs the
full cross-step validation and submits the schedule to the backend. A failed
submission loses nothing and can be retried.

Examples:
  fmsched schedule create
  fmsched schedule create --template local:chiller
  fmsched schedule create --dry-run --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScheduleCreate(cmd.Context(), cmd, flags, os.Stdout)
		},
	}

	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "print the assembled payload instead of submitting")
	cmd.Flags().StringVar(&flags.template, "template", "", "template id to pre-populate from (local:<name> or backend id)")
	cmd.Flags().BoolVar(&flags.weightage, "weightage", false, "enable per-question weightage entry")

	return cmd
}

func runScheduleCreate(ctx context.Context, cmd *cobra.Command, flags *scheduleCreateFlags, w io.Writer) error {
	logger := GetLogger()
	out := tui.NewOutput(w, cmd.Flag("output").Value.String())
	tui.CheckNoColor()

	cfg, err := config.Load()
	if err != nil {
		logger.Warn().Err(err).Msg("failed to load config, using defaults")
		cfg = config.DefaultConfig()
	}
	if cmd.Flags().Changed("weightage") {
		cfg.Wizard.WeightageEnabled = flags.weightage
	}

	var (
		client   *fmapi.Client
		provider *refdata.Provider
	)
	if cfg.API.BaseURL != "" {
		client = fmapi.NewClient(cfg.API.BaseURL, cfg.API.Token, cfg.API.Timeout, logger)
		provider = refdata.NewProvider(client, logger)
	}
	if client == nil && !flags.dryRun {
		return errors.Wrap(errors.ErrConfigInvalidAPI,
			"api.base_url must be configured to create schedules (use --dry-run to preview offline)")
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.Wrap(errors.ErrNonInteractiveMode, "schedule create")
	}

	opts := []wizard.Option{
		wizard.WithLogger(logger),
		wizard.WithFlags(wizard.Flags{WeightageEnabled: cfg.Wizard.WeightageEnabled}),
	}
	if provider != nil {
		opts = append(opts, wizard.WithLoader(provider))
	}
	if client != nil {
		opts = append(opts, wizard.WithSubmitter(client))
	}
	sess := wizard.NewSession(opts...)

	if provider != nil && cfg.Wizard.Prefetch {
		provider.Prefetch(ctx)
	}

	if flags.template != "" {
		detail, err := resolveTemplate(ctx, cfg, client, flags.template)
		if err != nil {
			return err
		}
		sess.ApplyTemplate(detail)
		out.Info("Pre-populated from template " + detail.Name)
	}

	runner := &wizardRunner{
		sess:     sess,
		provider: provider,
		api:      client,
		out:      out,
		log:      logger,
		dryRun:   flags.dryRun,
	}
	return runner.Run(ctx)
}

// resolveTemplate fetches a template detail by id. Ids with the "local:"
// prefix resolve against the templates directory; anything else goes to the
// backend, falling back to a local lookup when no backend is configured.
func resolveTemplate(ctx context.Context, cfg *config.Config, client *fmapi.Client, id string) (*domain.TemplateDetail, error) {
	if strings.HasPrefix(id, refdata.LocalTemplatePrefix) || client == nil {
		dir, err := config.TemplatesDir(cfg.Templates.Dir)
		if err != nil {
			return nil, err
		}
		return refdata.FindLocalTemplate(dir, id)
	}
	return client.TemplateDetail(ctx, id)
}
