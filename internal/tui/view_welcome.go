package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sant0-9/promptcraft/internal/lab"
	"github.com/sant0-9/promptcraft/internal/library"
)

const logo = `
 ___                      _    ___           __ _
| _ \_ _ ___ _ __  _ __ | |_ / __|_ _ __ _ / _| |_
|  _/ '_/ _ \ '  \| '_ \|  _| (__| '_/ _' |  _|  _|
|_| |_| \___/_|_|_| .__/ \__|\___|_| \__,_|_|  \__|
                  |_|
`

type menuItem struct {
	name        string
	description string
}

func menuItems() []menuItem {
	items := make([]menuItem, 0, len(lab.Labs)+2)
	for _, l := range lab.Labs {
		items = append(items, menuItem{name: l.Name, description: l.Description})
	}
	items = append(items,
		menuItem{name: "Library", description: "Saved prompts"},
		menuItem{name: "Settings", description: "Delay, image defaults, theme"},
	)
	return items
}

func (a *App) handleWelcomeKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	items := menuItems()
	switch {
	case key.Matches(msg, keys.Back):
		a.quitting = true
		return tea.Quit, true
	case key.Matches(msg, keys.Up):
		if a.state.menuIndex > 0 {
			a.state.menuIndex--
		}
		return nil, true
	case key.Matches(msg, keys.Down):
		if a.state.menuIndex < len(items)-1 {
			a.state.menuIndex++
		}
		return nil, true
	case key.Matches(msg, keys.Library):
		return a.openLibrary(library.PromptsStore), true
	case key.Matches(msg, keys.Enter):
		i := a.state.menuIndex
		switch {
		case i < len(lab.Labs):
			return a.openLab(lab.Labs[i].Kind), true
		case i == len(lab.Labs):
			return a.openLibrary(library.PromptsStore), true
		default:
			a.openSettings()
			return nil, true
		}
	}
	return nil, true
}

func (a *App) renderWelcome() string {
	logoRendered := styleLogo.Render(logo)
	subtitle := styleSubtitle.Render("Turn plain descriptions into structured prompts")

	var lines []string
	for i, item := range menuItems() {
		cursor := "  "
		if i == a.state.menuIndex {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-15s %s", cursor, item.name, styleSubtitle.Render(item.description))
		if i == a.state.menuIndex {
			line = styleSelected.Render(fmt.Sprintf("%s%-15s", cursor, item.name)) + " " + styleSubtitle.Render(item.description)
		}
		lines = append(lines, line)
	}
	menu := styleBox.
		Width(min(56, a.boxWidth())).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		logoRendered,
		subtitle,
		"",
		menu,
	)

	mainArea := lipgloss.Place(
		a.width,
		max(1, a.height-2),
		lipgloss.Center,
		lipgloss.Center,
		content,
	)

	statusBar := styleStatusBar.Render("[Up/Down] Navigate  [Enter] Open  [F1] Help  [Esc] Quit")
	statusLine := lipgloss.PlaceHorizontal(a.width, lipgloss.Center, statusBar)

	return lipgloss.JoinVertical(lipgloss.Left, mainArea, statusLine, a.renderStatus())
}
