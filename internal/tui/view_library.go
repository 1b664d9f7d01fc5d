package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sant0-9/promptcraft/internal/builder"
	"github.com/sant0-9/promptcraft/internal/library"
	"github.com/sant0-9/promptcraft/internal/prompt"
)

// openLibrary shows the store called shelf
func (a *App) openLibrary(shelf string) tea.Cmd {
	a.view = viewLibrary
	a.state.shelf = shelf
	a.state.search.Reset()
	a.state.selected = 0
	a.refreshResults()
	return a.state.search.Focus()
}

func (a *App) shelf() *library.Store {
	if a.library == nil {
		return nil
	}
	return a.library.Named(a.state.shelf)
}

// otherShelf is the store tab switches to
func (a *App) otherShelf() string {
	if a.state.shelf == library.NotionStore {
		return library.PromptsStore
	}
	return library.NotionStore
}

func (a *App) refreshResults() {
	store := a.shelf()
	if store == nil {
		a.state.results = nil
		return
	}
	a.state.results = store.Search(a.state.search.Value())
	if a.state.selected >= len(a.state.results) {
		a.state.selected = max(0, len(a.state.results)-1)
	}
}

func (a *App) selectedDoc() (prompt.Document, bool) {
	if a.state.selected < 0 || a.state.selected >= len(a.state.results) {
		return prompt.Document{}, false
	}
	return a.state.results[a.state.selected], true
}

func (a *App) handleLibraryKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, keys.Back):
		a.state.search.Blur()
		a.view = viewWelcome
		return nil, true
	case key.Matches(msg, keys.Up):
		if a.state.selected > 0 {
			a.state.selected--
		}
		return nil, true
	case key.Matches(msg, keys.Down):
		if a.state.selected < len(a.state.results)-1 {
			a.state.selected++
		}
		return nil, true
	case key.Matches(msg, keys.Tab, keys.ShiftTab):
		return a.openLibrary(a.otherShelf()), true
	case key.Matches(msg, keys.Enter):
		if doc, ok := a.selectedDoc(); ok {
			a.openDocument(doc)
		}
		return nil, true
	case key.Matches(msg, keys.Copy):
		if doc, ok := a.selectedDoc(); ok {
			return a.copyDocument(doc), true
		}
		return nil, true
	case key.Matches(msg, keys.Delete):
		if doc, ok := a.selectedDoc(); ok {
			return a.deleteDocument(doc), true
		}
		return nil, true
	}
	return nil, false
}

func (a *App) copyDocument(doc prompt.Document) tea.Cmd {
	text, err := builder.Render(doc)
	if err != nil {
		return a.notifyErr(err)
	}
	return a.writeClipboard(text)
}

func (a *App) deleteDocument(doc prompt.Document) tea.Cmd {
	store := a.library.ForKind(doc.Kind)
	if err := store.Delete(doc.ID); err != nil {
		a.logger.Error("delete failed", "id", doc.ID, "error", err)
		return a.notifyErr(err)
	}
	a.refreshResults()
	return a.notify("Prompt deleted", false)
}

func (a *App) renderLibrary() string {
	var b strings.Builder
	width := a.boxWidth()

	shelfName := "Prompts"
	if a.state.shelf == library.NotionStore {
		shelfName = "Notion"
	}
	b.WriteString(a.title("Library: " + shelfName))
	b.WriteString("\n\n")

	searchBox := styleBox.
		Width(width).
		BorderForeground(colorSecondary).
		Render(a.state.search.View())
	b.WriteString(a.centered(searchBox))
	b.WriteString("\n\n")

	var list string
	if len(a.state.results) == 0 {
		empty := "No saved prompts yet."
		if a.state.search.Value() != "" {
			empty = "No prompts match your search."
		}
		list = styleSubtitle.Render(empty)
	} else {
		visible := max(3, (a.height-14)/2)
		start := 0
		if a.state.selected >= visible {
			start = a.state.selected - visible + 1
		}
		end := min(len(a.state.results), start+visible)

		var lines []string
		for i := start; i < end; i++ {
			doc := a.state.results[i]
			cursor := "  "
			name := truncate(doc.Name, width-6)
			meta := fmt.Sprintf("    %s  %s", doc.Kind, doc.CreatedAt.Local().Format("2006-01-02 15:04"))
			if doc.Genre != "" {
				meta += "  " + doc.Genre
			}
			if i == a.state.selected {
				cursor = "> "
				lines = append(lines, styleSelected.Render(cursor+name))
			} else {
				lines = append(lines, styleText.Render(cursor+name))
			}
			lines = append(lines, styleSubtitle.Render(truncate(meta, width-4)))
		}
		list = strings.Join(lines, "\n")
	}

	listBox := styleBox.
		Width(width).
		BorderForeground(colorPrimary).
		Render(list)
	b.WriteString(a.centered(listBox))
	b.WriteString("\n\n")

	count := styleSubtitle.Render(fmt.Sprintf("%d of %d", len(a.state.results), a.shelfLen()))
	b.WriteString(a.centered(count))
	b.WriteString("\n")

	status := styleStatusBar.Render("[Enter] View  [Ctrl+Y] Copy  [Ctrl+D] Delete  [Tab] Switch shelf  [Esc] Back")
	b.WriteString(a.centered(status))
	b.WriteString("\n")
	b.WriteString(a.renderStatus())

	return a.centerVertically(b.String())
}

func (a *App) shelfLen() int {
	if store := a.shelf(); store != nil {
		return store.Len()
	}
	return 0
}
