package tui

import (
	"errors"

	"github.com/charmbracelet/lipgloss"

	"github.com/sant0-9/promptcraft/internal/lab"
	"github.com/sant0-9/promptcraft/internal/library"
)

// describe turns an error into the message shown in the status line
func describe(err error) string {
	switch {
	case errors.Is(err, lab.ErrNoInput):
		return "Please enter some text to process."
	case errors.Is(err, lab.ErrNothingGenerated):
		return "Please generate a prompt first."
	case errors.Is(err, library.ErrDuplicateID):
		return "This prompt is already in the library."
	default:
		return err.Error()
	}
}

func (a *App) renderStatus() string {
	if a.state.toast == "" {
		return ""
	}
	color := colorSuccess
	if a.state.toastErr {
		color = colorError
	}
	toast := lipgloss.NewStyle().
		Foreground(color).
		Bold(true).
		Render(a.state.toast)
	return a.centered(toast)
}
