package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/calc/internal/config"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the calc config file",
		// The config commands have to work on a broken config to repair it.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd, false)
		},
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config file",
		Long: `Writes the default configuration to the file named by --config. An existing
file is left alone unless --force is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfgPath == "" {
				return errors.New("no config path; use --config")
			}
			if _, err := os.Stat(a.cfgPath); err == nil && !force {
				return fmt.Errorf("%s already exists; use --force to overwrite", a.cfgPath)
			}
			if err := config.DefaultConfig().Save(a.cfgPath); err != nil {
				return err
			}
			a.logger.Debug("wrote config", zap.String("path", a.cfgPath))
			fmt.Fprintln(cmd.OutOrStdout(), a.cfgPath)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long: `Prints the configuration calc would use, after applying the config file and
CALC_* environment variables, as YAML.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(a.cfg); err != nil {
				return fmt.Errorf("failed to encode config: %w", err)
			}
			return enc.Close()
		},
	}

	cmd.AddCommand(initCmd, showCmd)
	return cmd
}
