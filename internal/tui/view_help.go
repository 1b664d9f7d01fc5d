package tui

import (
	"strings"
)

func (a *App) renderHelp() string {
	var b strings.Builder

	b.WriteString(a.title("Help"))
	b.WriteString("\n\n")

	labKeys := []string{
		"  Ctrl+G         Generate from the input",
		"  Ctrl+S         Save the result to the library",
		"  Ctrl+Y         Copy the result",
		"  Ctrl+X         Clear the lab",
		"  Ctrl+L         Open the library",
		"  F2 / F3 / F4   Change lab options",
		"  Tab            Next Notion output type",
	}

	b.WriteString(a.centered(styleSubtitle.Render("Labs")))
	b.WriteString("\n\n")
	labBox := styleBox.
		Width(58).
		Render(strings.Join(labKeys, "\n"))
	b.WriteString(a.centered(labBox))
	b.WriteString("\n\n")

	libraryKeys := []string{
		"  Type           Search by name, genre or task",
		"  Enter          View a saved prompt",
		"  Ctrl+Y         Copy it",
		"  Ctrl+D         Delete it",
		"  Tab            Switch between prompts and Notion",
	}

	b.WriteString(a.centered(styleSubtitle.Render("Library")))
	b.WriteString("\n\n")
	libraryBox := styleBox.
		Width(58).
		Render(strings.Join(libraryKeys, "\n"))
	b.WriteString(a.centered(libraryBox))
	b.WriteString("\n\n")

	instructions := styleStatusBar.Render("[Esc] Back  [Ctrl+C] Quit")
	b.WriteString(a.centered(instructions))

	return a.centerVertically(b.String())
}
