package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/helloakshay27/fm-matrix-revamp-sub008/internal/config"
	"github.com/helloakshay27/fm-matrix-revamp-sub008/internal/fmapi"
	"github.com/helloakshay27/fm-matrix-revamp-sub008/internal/refdata"
	"github.com/helloakshay27/fm-matrix-revamp-sub008/internal/tui"
)

// AddTemplatesCommand adds the templates command group to the root command.
func AddTemplatesCommand(root *cobra.Command) {
	templatesCmd := &cobra.Command{
		Use:   "templates",
		Short: "Manage checklist templates",
	}
	templatesCmd.AddCommand(newTemplatesListCmd())
	root.AddCommand(templatesCmd)
}

func newTemplatesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List local and backend checklist templates",
		Long: `List checklist templates from two sources: local YAML files under
~/.fmsched/templates and, when a backend is configured, its custom forms.
Local templates carry a "local:" id prefix.

Examples:
  fmsched templates list
  fmsched templates list --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTemplatesList(cmd.Context(), cmd, os.Stdout)
		},
	}
}

// templateRow is one entry of the merged template listing.
type templateRow struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Source string `json:"source"`
}

func runTemplatesList(ctx context.Context, cmd *cobra.Command, w io.Writer) error {
	logger := GetLogger()
	out := tui.NewOutput(w, cmd.Flag("output").Value.String())

	cfg, err := config.Load()
	if err != nil {
		logger.Warn().Err(err).Msg("failed to load config, using defaults")
		cfg = config.DefaultConfig()
	}

	templatesDir, err := config.TemplatesDir(cfg.Templates.Dir)
	if err != nil {
		return err
	}
	local, err := refdata.LoadLocalTemplates(templatesDir)
	if err != nil {
		return err
	}

	rows := make([]templateRow, 0, len(local))
	for _, tpl := range local {
		rows = append(rows, templateRow{ID: tpl.ID, Name: tpl.Name, Source: "local"})
	}

	if cfg.API.BaseURL != "" {
		client := fmapi.NewClient(cfg.API.BaseURL, cfg.API.Token, cfg.API.Timeout, logger)
		remote, err := client.Templates(ctx)
		if err != nil {
			out.Warning("backend template list unavailable: " + err.Error())
		}
		for _, item := range remote {
			rows = append(rows, templateRow{ID: item.ID, Name: item.Name, Source: "backend"})
		}
	}

	if cmd.Flag("output").Value.String() == OutputJSON {
		return out.JSON(rows)
	}

	if len(rows) == 0 {
		out.Info("no templates found")
		return nil
	}
	for _, row := range rows {
		out.Info(fmt.Sprintf("%-24s %-32s %s", row.ID, row.Name, row.Source))
	}
	return nil
}
