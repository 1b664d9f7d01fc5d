package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sant0-9/promptcraft/internal/config"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	Long: `Write the default settings to --config, or to ~/.config/promptcraft/config.yaml when
--config is not given. An existing file is only replaced with --force. --data-dir is
written as data_dir.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.DefaultConfig()
		if dataDir != "" {
			cfg.DataDir = dataDir
		}

		path := cfgFile
		exists := false
		if path == "" {
			p, err := config.ConfigPath()
			if err != nil {
				return err
			}
			path, exists = p, config.Exists()
		} else if _, err := os.Stat(path); err == nil {
			exists = true
		}
		if exists && !configForce {
			return fmt.Errorf("%s already exists (use --force to replace it)", path)
		}

		var err error
		if cfgFile == "" {
			err = cfg.Save()
		} else {
			err = cfg.SaveTo(path)
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the settings in effect",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, err := config.NewManager(cfgFile)
		if err != nil {
			return err
		}
		cfg := *manager.Get()
		if dataDir != "" {
			cfg.DataDir = dataDir
		}
		if logLevel != "" {
			cfg.Log.Level = logLevel
		}

		fmt.Fprintf(cmd.ErrOrStderr(), "# %s\n", manager.Path())
		b, err := yaml.Marshal(&cfg)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(b)
		return err
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "replace an existing config file")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}
