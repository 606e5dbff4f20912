package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/brequin/brequin/plan/catalog"
	"github.com/brequin/brequin/plan/config"
	"github.com/brequin/brequin/plan/curriculum"
	"github.com/brequin/brequin/plan/db"
	"github.com/brequin/brequin/plan/render"
	"github.com/brequin/brequin/plan/selection"
)

type options struct {
	file   string
	title  string
	single bool
	toggle []string
}

func newRootCommand(cfg *config.Config, logger *slog.Logger) *cobra.Command {
	opts := options{
		file:   cfg.CatalogFile,
		single: cfg.SingleSelection,
	}

	command := &cobra.Command{
		Use:   "unlocks",
		Short: "Show which subjects a set of passed subjects unlocks",
		Long: `Load the study plan and mark each --select subject as passed, in order.
Selecting a subject twice deselects it. The board lists every year with
the selected subjects, the subjects they unlock, and the rest dimmed.

Examples:
  unlocks --file plan.yaml --select "Diseño I"
  unlocks --select "Diseño I" --select "Tipografía I"
  unlocks --single --select "Diseño I" --select "Diseño II"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			subjects, err := loadCatalog(cmd.Context(), cfg, opts.file)
			if err != nil {
				return err
			}

			index := curriculum.Build(subjects)
			for _, warning := range index.Warnings() {
				logger.Warn("Catalog warning", "warning", warning)
			}

			var engineOptions []selection.Option
			if opts.single {
				engineOptions = append(engineOptions, selection.SingleSelection())
			}
			engine := selection.New(index, engineOptions...)
			engine.OnChange(func(snapshot selection.Snapshot) {
				logger.Debug("Selection changed", "selected", snapshot.Selected, "unlocked", snapshot.Unlocked)
			})

			for _, name := range opts.toggle {
				if _, known := index.Subject(name); !known {
					logger.Warn("Selected subject is not in the catalog", "subject", name)
				}
				engine.Toggle(name)
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), render.Board(opts.title, engine.Board()))
			return err
		},
		SilenceUsage: true,
	}

	command.Flags().StringVarP(&opts.file, "file", "f", opts.file,
		"YAML catalog to read instead of the database")
	command.Flags().StringArrayVarP(&opts.toggle, "select", "s", nil,
		"Subject to toggle; repeat to select several")
	command.Flags().BoolVar(&opts.single, "single", opts.single,
		"Keep at most one subject selected")
	command.Flags().StringVar(&opts.title, "title", "Plan de Estudios",
		"Heading printed above the board")

	return command
}

func loadCatalog(ctx context.Context, cfg *config.Config, file string) ([]curriculum.Subject, error) {
	if file != "" {
		return catalog.ReadFile(file)
	}

	if cfg.DatabaseConnectionString == "" {
		return nil, fmt.Errorf("no catalog: pass --file or set DATABASE_CONNECTION_STRING")
	}

	database, err := db.Connect(ctx, cfg.DatabaseConnectionString)
	if err != nil {
		return nil, err
	}
	defer database.Close()

	return database.LoadCatalog(ctx)
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("Unable to load configuration", "error", err)
		os.Exit(1)
	}

	if err := newRootCommand(cfg, logger).ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
