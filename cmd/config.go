package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/bnema/guess-my-number-cli/internal/adapters/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and create the gmn config file",
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return nil
		},
	}

	cmd.AddCommand(newConfigShowCmd(flags), newConfigInitCmd(flags))

	return cmd
}

func newConfigShowCmd(flags *globalFlags) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the resolved configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, flags)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(cfg)
			}

			source := cfg.Source
			if source == "" {
				source = "(none)"
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "initial_score: %d\napi_base_url: %s\nlog_level: %s\nconfig_file: %s\n",
				cfg.Game.InitialScore, cfg.Game.APIBaseURL, cfg.LogLevel, source)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}

func newConfigInitCmd(flags *globalFlags) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the resolved configuration to the config file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, flags)
			if err != nil {
				return err
			}

			path := flags.configFile
			if path == "" {
				path, err = config.DefaultPath()
				if err != nil {
					return err
				}
			}

			if err := config.WriteFile(path, cfg, force); err != nil {
				return fmt.Errorf("write config: %w", err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return err
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")

	return cmd
}
