package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nhle/kitchen-tracker/internal/report"
)

func (c *cli) summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print totals for every tracker",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			k, s, err := c.openKitchen(cmd.Context())
			if err != nil {
				return err
			}
			if s != nil {
				defer s.Close()
			}
			return report.WriteSummary(cmd.OutOrStdout(), report.Take(k, time.Now()))
		},
	}
}

func (c *cli) exportCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a YAML snapshot of every tracker",
		Long: `Writes all records and their derived totals as YAML, to stdout or to
the file given with --out.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			k, s, err := c.openKitchen(cmd.Context())
			if err != nil {
				return err
			}
			if s != nil {
				defer s.Close()
			}
			snap := report.Take(k, time.Now())

			if out == "" {
				return report.WriteYAML(cmd.OutOrStdout(), snap)
			}
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("creating %s: %w", out, err)
			}
			if err := report.WriteYAML(f, snap); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("closing %s: %w", out, err)
			}
			c.logger.Info("exported snapshot", zap.String("path", out))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	return cmd
}
