package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nhle/kitchen-tracker/internal/credential"
	"github.com/nhle/kitchen-tracker/internal/model"
)

func (c *cli) credentialCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "credential",
		Short: "Manage secrets kept in the system keyring",
		Long: fmt.Sprintf(`Stores and removes secrets in the system keyring.

Known keys: %s`, strings.Join(credential.Keys, ", ")),
	}

	set := &cobra.Command{
		Use:   "set <key>",
		Short: "Read a secret from stdin and store it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			value := strings.TrimSpace(line)
			if value == "" {
				if err != nil {
					return fmt.Errorf("reading secret: %w", err)
				}
				return fmt.Errorf("empty secret for %s", args[0])
			}
			vault, err := credential.OpenVault()
			if err != nil {
				return err
			}
			if err := vault.Set(args[0], value); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Stored %s\n", args[0])
			return nil
		},
	}

	del := &cobra.Command{
		Use:   "delete <key>",
		Short: "Remove a stored secret",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vault, err := credential.OpenVault()
			if err != nil {
				return err
			}
			if err := vault.Delete(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			return nil
		},
	}

	cmd.AddCommand(set, del)
	return cmd
}

func (c *cli) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to --config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := model.SaveConfig(c.configPath, c.cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", c.configPath)
			return nil
		},
	})
	return cmd
}
