package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"rgit/internal/config"
	"rgit/internal/ctxlog"
	"rgit/internal/repo"
	"rgit/internal/ui"
)

// checkValue rejects values for known keys that setup could not use.
func checkValue(key, val string) error {
	switch key {
	case config.KeyLogLevel:
		if _, err := ctxlog.ParseLevel(val); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	case config.KeyColor:
		if err := ui.CheckMode(val); err != nil || val == "" {
			return fmt.Errorf("%s: invalid color mode %q (want auto, always or never)", key, val)
		}
	}
	return nil
}

func (a *app) configCmd() *cobra.Command {
	var global bool

	var setCmd = &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a config key (repo-level by default, or --global)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, val := args[0], args[1]
			if err := checkValue(key, val); err != nil {
				return err
			}

			if global {
				return config.SetGlobalValue(key, val)
			}
			rp, err := repo.FindRoot(".")
			if err != nil {
				// outside a repository
				return config.SetGlobalValue(key, val)
			}
			return config.SetRepoValue(rp, key, val)
		},
	}
	setCmd.Flags().BoolVar(&global, "global", false, "Set global config instead of repo-level")

	var getCmd = &cobra.Command{
		Use:   "get <key>",
		Short: "Get a config value (repo-level overrides global)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			rp, _ := repo.FindRoot(".")
			val, err := config.GetValue(rp, key)
			if errors.Is(err, config.ErrNoValue) {
				a.printer.Info(fmt.Sprintf("No value found for key: %s", key))
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(a.printer.Out, val)
			return nil
		},
	}

	var configCmd = &cobra.Command{
		Use:   "config",
		Short: "Manage rgit configuration",
	}
	configCmd.AddCommand(setCmd, getCmd)
	return configCmd
}
