package main

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/sant0-9/promptcraft/internal/config"
	"github.com/sant0-9/promptcraft/internal/tui"
)

var (
	cfgFile      string
	dataDir      string
	logLevel     string
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "promptcraft",
	Short: "Turn plain descriptions into structured prompts",
	Long: `PromptCraft turns free-form text into ready-to-paste prompts.

Labs:
  - story    Storyteller JSON prompts
  - image    Midjourney image commands
  - video    Midjourney video commands
  - notion   Summaries, tables, formulas and templates for Notion
  - threads  Conversations rewritten as a prompt

Run without a subcommand to open the terminal UI.`,
	Version:      version,
	SilenceUsage: true,
	RunE:         runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.config/promptcraft/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&dataDir, "data-dir", "", "library directory (overrides data_dir)",
	)
	rootCmd.PersistentFlags().StringVar(
		&logLevel, "log-level", "", "log level: debug, info, warn or error",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "text", "output format: text, json or yaml",
	)

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(libraryCmd)
	rootCmd.AddCommand(configCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	defer e.Close()

	app := tui.NewApp(tui.Options{
		Config:  e.manager,
		Library: e.library,
		Logger:  e.logger,
	})
	p := tea.NewProgram(
		app,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(cmd.Context()),
	)

	e.manager.OnChange(func(cfg *config.Config) {
		e.logger.Info("config reloaded", "path", e.manager.Path())
		p.Send(tui.ConfigChangedMsg{Config: cfg})
	})
	e.manager.WatchConfig()

	e.logger.Info("starting tui", "data_dir", e.config.DataDir)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}
