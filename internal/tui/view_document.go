package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sant0-9/promptcraft/internal/builder"
	"github.com/sant0-9/promptcraft/internal/prompt"
)

func (a *App) openDocument(doc prompt.Document) {
	a.state.detail = &doc
	a.view = viewDetail

	content, err := builder.Render(doc)
	if err != nil {
		content = err.Error()
	}
	a.state.detailView.SetContent(wrapText(content, a.state.detailView.Width))
	a.state.detailView.GotoTop()
}

func (a *App) handleDetailKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	doc := a.state.detail
	switch {
	case key.Matches(msg, keys.Back):
		a.state.detail = nil
		a.view = viewLibrary
		return nil, true
	case key.Matches(msg, keys.Copy):
		if doc != nil {
			return a.copyDocument(*doc), true
		}
		return nil, true
	case key.Matches(msg, keys.Delete):
		if doc == nil {
			return nil, true
		}
		cmd := a.deleteDocument(*doc)
		a.state.detail = nil
		a.view = viewLibrary
		return cmd, true
	}
	return nil, false
}

func (a *App) renderDocument() string {
	if a.state.detail == nil {
		return a.renderLibrary()
	}

	var b strings.Builder
	doc := a.state.detail
	width := a.boxWidth()

	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render(truncate(doc.Name, width))

	var metaParts []string
	metaParts = append(metaParts, strings.ToUpper(string(doc.Kind)))
	metaParts = append(metaParts, doc.CreatedAt.Local().Format("2006-01-02 15:04"))
	if doc.Genre != "" {
		metaParts = append(metaParts, doc.Genre)
	}
	if doc.Task != "" {
		metaParts = append(metaParts, truncate(doc.Task, 30))
	}
	metaLine := styleSubtitle.Render(strings.Join(metaParts, "  |  "))

	infoBox := styleBox.
		Width(width).
		BorderForeground(colorSuccess).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, metaLine))
	b.WriteString(a.centered(infoBox))
	b.WriteString("\n\n")

	contentBox := styleBox.
		Width(width).
		Render(a.state.detailView.View())
	b.WriteString(a.centered(contentBox))
	b.WriteString("\n\n")

	scroll := fmt.Sprintf("%3.f%%", a.state.detailView.ScrollPercent()*100)
	status := styleStatusBar.Render(scroll + "  [Up/Down] Scroll  [Ctrl+Y] Copy  [Ctrl+D] Delete  [Esc] Back")
	b.WriteString(a.centered(status))
	b.WriteString("\n")
	b.WriteString(a.renderStatus())

	return a.centerVertically(b.String())
}
