package tui

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sant0-9/promptcraft/internal/config"
	"github.com/sant0-9/promptcraft/internal/prompt"
)

const delayStep = 250 * time.Millisecond

const (
	settingDelay = iota
	settingVersion
	settingProfile
	settingTheme
	settingLogLevel
	settingCount
)

var (
	themeNames    = []string{"dark", "light"}
	logLevelNames = []string{"debug", "info", "warn", "error"}
)

func (a *App) openSettings() {
	draft := *a.state.config
	a.state.draft = &draft
	a.state.settingsSelected = 0
	a.view = viewSettings
}

func (a *App) handleSettingsKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	d := a.state.draft
	if d == nil {
		a.view = viewWelcome
		return nil, true
	}

	switch {
	case key.Matches(msg, keys.Back):
		a.state.draft = nil
		a.view = viewWelcome
	case key.Matches(msg, keys.Up):
		if a.state.settingsSelected > 0 {
			a.state.settingsSelected--
		}
	case key.Matches(msg, keys.Down):
		if a.state.settingsSelected < settingCount-1 {
			a.state.settingsSelected++
		}
	case key.Matches(msg, keys.Left):
		adjustSetting(d, a.state.settingsSelected, -1)
	case key.Matches(msg, keys.Right):
		adjustSetting(d, a.state.settingsSelected, 1)
	case key.Matches(msg, keys.Enter):
		return a.saveSettings(), true
	}
	return nil, true
}

// adjustSetting moves the selected setting one step in dir
func adjustSetting(c *config.Config, setting, dir int) {
	switch setting {
	case settingDelay:
		next := c.GenerationDelay + time.Duration(dir)*delayStep
		c.GenerationDelay = max(0, min(config.MaxGenerationDelay, next))
	case settingVersion:
		c.ImageVersion = cycle(prompt.Versions, c.ImageVersion)
	case settingProfile:
		c.ImageProfile = !c.ImageProfile
	case settingTheme:
		c.Theme = cycle(themeNames, c.Theme)
	case settingLogLevel:
		i := slices.Index(logLevelNames, c.Log.Level)
		i = max(0, min(len(logLevelNames)-1, i+dir))
		c.Log.Level = logLevelNames[i]
	}
}

func (a *App) saveSettings() tea.Cmd {
	cfg := a.state.draft
	if a.manager != nil {
		if err := a.manager.Update(cfg); err != nil {
			a.logger.Error("settings save failed", "error", err)
			return a.notifyErr(err)
		}
	} else if err := cfg.Validate(); err != nil {
		return a.notifyErr(err)
	}

	a.applyConfig(cfg)
	a.state.draft = nil
	a.view = viewWelcome
	a.logger.Info("settings saved", "delay", cfg.GenerationDelay, "theme", cfg.Theme)
	return a.notify("Settings saved", false)
}

func (a *App) renderSettings() string {
	d := a.state.draft
	if d == nil {
		return a.renderWelcome()
	}

	var b strings.Builder
	b.WriteString(a.title("Settings"))
	b.WriteString("\n\n")

	values := []struct{ label, value string }{
		{"Generation delay", d.GenerationDelay.String()},
		{"Image version", "--v " + d.ImageVersion},
		{"Image profile", onOff(d.ImageProfile)},
		{"Theme", d.Theme},
		{"Log level", d.Log.Level},
	}

	var lines []string
	for i, v := range values {
		cursor := "  "
		line := fmt.Sprintf("%-18s < %s >", v.label, v.value)
		if i == a.state.settingsSelected {
			cursor = "> "
			lines = append(lines, styleSelected.Render(cursor+line))
			continue
		}
		lines = append(lines, styleText.Render(cursor+line))
	}
	lines = append(lines, "", styleSubtitle.Render("  Library: "+d.DataDir))
	if a.manager != nil {
		lines = append(lines, styleSubtitle.Render("  Config:  "+a.manager.Path()))
	}

	box := styleBox.
		Width(min(60, a.boxWidth())).
		Render(strings.Join(lines, "\n"))
	b.WriteString(a.centered(box))
	b.WriteString("\n\n")

	status := styleStatusBar.Render("[Up/Down] Navigate  [Left/Right] Change  [Enter] Save  [Esc] Cancel")
	b.WriteString(a.centered(status))
	b.WriteString("\n")
	b.WriteString(a.renderStatus())

	return a.centerVertically(b.String())
}
