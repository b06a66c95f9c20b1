package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/llehouerou/carousel/internal/app"
	"github.com/llehouerou/carousel/internal/carousel"
	"github.com/llehouerou/carousel/internal/catalog"
	"github.com/llehouerou/carousel/internal/config"
	"github.com/llehouerou/carousel/internal/errmsg"
	"github.com/llehouerou/carousel/internal/logging"
	"github.com/llehouerou/carousel/internal/state"
	"github.com/llehouerou/carousel/internal/tween"
	"github.com/llehouerou/carousel/internal/ui/carouselview"
)

// version is set during build with -ldflags.
var version = "dev"

const historyLimit = 20

type rootFlags struct {
	config  string
	catalog string
	state   string
	debug   bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:           "carousel",
		Short:         "Infinite recycling carousel for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI(flags)
		},
	}
	root.PersistentFlags().StringVar(&flags.config, "config", "", "extra config file (TOML)")
	root.PersistentFlags().StringVar(&flags.catalog, "catalog", "", "template catalog (YAML), overrides the config")
	root.PersistentFlags().StringVar(&flags.state, "state", "", "state database path")
	root.PersistentFlags().BoolVar(&flags.debug, "debug", false, "write a debug log")

	root.AddCommand(
		newTemplatesCmd(flags),
		newHistoryCmd(flags),
		newEasesCmd(),
		newVersionCmd(),
	)
	return root
}

// loadConfig reads the config files and applies command line overrides.
func loadConfig(flags *rootFlags) (*config.Config, error) {
	cfg, err := config.Load(flags.config)
	if err != nil {
		return nil, errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}
	if flags.catalog != "" {
		cfg.Catalog = flags.catalog
	}
	if flags.debug {
		cfg.Log.Debug = true
	}
	return cfg, nil
}

func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	cat, err := catalog.Load(cfg.Catalog)
	if err != nil {
		return nil, errors.New(errmsg.FormatWith(errmsg.OpCatalogLoad, cfg.Catalog, err))
	}
	return cat, nil
}

func openState(flags *rootFlags, logger *zap.Logger) (*state.Manager, error) {
	var (
		mgr *state.Manager
		err error
	)
	if flags.state != "" {
		mgr, err = state.OpenPath(flags.state, logger)
	} else {
		mgr, err = state.Open(logger)
	}
	if err != nil {
		return nil, errors.New(errmsg.Format(errmsg.OpStateOpen, err))
	}
	return mgr, nil
}

func runTUI(flags *rootFlags) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.Options{Debug: cfg.Log.Debug, File: cfg.Log.File})
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpLogOpen, err))
	}
	defer func() { _ = logger.Sync() }()

	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	logger.Info("catalog loaded",
		zap.String("source", cat.Source),
		zap.Int("templates", len(cat.Templates)))

	stateMgr, err := openState(flags, logger.Named("state"))
	if err != nil {
		return err
	}
	defer stateMgr.Close()

	m, err := app.New(app.Options{
		Config:   cfg,
		Catalog:  cat,
		StateMgr: stateMgr,
		Logger:   logger,
	})
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}

	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func newTemplatesCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "Print the template sequence the carousel cycles through",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			cat, err := loadCatalog(cfg)
			if err != nil {
				return err
			}
			return printTemplates(cmd.OutOrStdout(), cat)
		},
	}
}

// printTemplates lists the ring's sequence after normalization, marking the
// center slot and the placeholder.
func printTemplates(w io.Writer, cat *catalog.Catalog) error {
	view := carouselview.New(carousel.DefaultConfig(), carouselview.Options{})
	if err := view.Initialize(cat.Templates, cat.Placeholder); err != nil {
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}
	ring := view.Ring()

	fmt.Fprintf(w, "catalog: %s\n", cat.Source)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, t := range ring.Templates() {
		marker := " "
		if i == ring.CenterIndex() {
			marker = ">"
		}
		name := t.Name
		if cat.IsPlaceholder(t) {
			name = "(placeholder)"
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", marker, i, name, t.Color)
	}
	return tw.Flush()
}

func newHistoryCmd(flags *rootFlags) *cobra.Command {
	limit := historyLimit
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show where the carousel came to rest recently",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stateMgr, err := openState(flags, nil)
			if err != nil {
				return err
			}
			defer stateMgr.Close()
			return printHistory(cmd.OutOrStdout(), stateMgr, limit)
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", historyLimit, "number of entries")
	return cmd
}

func printHistory(w io.Writer, st state.Interface, limit int) error {
	entries, err := st.RecentFocus(limit)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpStateLoad, err))
	}
	if len(entries) == 0 {
		fmt.Fprintln(w, "no history yet")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, e := range entries {
		name := e.Template
		if name == "" {
			name = "(none)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s scrolls\n", humanize.Time(e.At), name, humanize.Comma(e.ScrollCount))
	}
	return tw.Flush()
}

func newEasesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eases",
		Short: "List the easing curves accepted by move_ease and resize_ease",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, name := range tween.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "carousel version %s\n", version)
		},
	}
}
