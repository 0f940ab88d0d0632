package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nhle/kitchen-tracker/internal/app"
	"github.com/nhle/kitchen-tracker/internal/kitchen"
	"github.com/nhle/kitchen-tracker/internal/logging"
	"github.com/nhle/kitchen-tracker/internal/model"
	"github.com/nhle/kitchen-tracker/internal/store"
)

// cli holds the state shared by every subcommand.
type cli struct {
	configPath string
	verbose    bool
	cfg        *model.AppConfig
	logger     *zap.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "kitchen",
		Short: "Calorie log, grocery list, pantry and meal planner",
		Long: `kitchen tracks what you eat, what you need to buy, what is about to
expire in the pantry and what you plan to cook this week.

Run without arguments to start the terminal interface.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := model.LoadConfig(c.configPath)
			if err != nil {
				return err
			}
			c.cfg = cfg

			// The TUI owns the terminal, so it logs to a file.
			if cmd.Parent() == nil {
				c.logger, err = logging.NewFile(cfg.Log, c.verbose)
			} else {
				c.logger, err = logging.NewConsole(cfg.Log.Level, c.verbose)
			}
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTUI(cmd.Context())
		},
	}

	root.PersistentFlags().StringVar(&c.configPath, "config", model.DefaultConfigPath(), "config file")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		c.summaryCmd(),
		c.exportCmd(),
		c.credentialCmd(),
		c.configCmd(),
	)
	return root
}

// openKitchen loads the trackers from the database when persistence is on,
// or from the sample data otherwise. The returned store is nil in the
// second case.
func (c *cli) openKitchen(ctx context.Context) (*kitchen.Kitchen, store.Store, error) {
	goal := c.cfg.Calories.DailyGoal
	if !c.cfg.Storage.Persist {
		c.logger.Debug("persistence disabled, using sample data")
		return kitchen.Seeded(goal, time.Now), nil, nil
	}

	path := c.cfg.Storage.Path
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating data directory: %w", err)
	}
	s, err := store.NewSQLiteStore(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening database %s: %w", path, err)
	}
	k, err := kitchen.Load(ctx, s, goal, time.Now)
	if err != nil {
		_ = s.Close()
		return nil, nil, err
	}
	c.logger.Debug("loaded kitchen", zap.String("db", path))
	return k, s, nil
}

func (c *cli) runTUI(ctx context.Context) error {
	k, s, err := c.openKitchen(ctx)
	if err != nil {
		return err
	}
	if s != nil {
		defer s.Close()
	}

	c.logger.Info("starting", zap.Bool("persist", s != nil))
	m := app.New(app.Options{
		Config:  c.cfg,
		Kitchen: k,
		Store:   s,
		Logger:  c.logger,
	})
	final, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if fm, ok := final.(app.Model); ok {
		fm.Close()
	} else {
		m.Close()
	}
	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}
