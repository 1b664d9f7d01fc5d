package tui

import "github.com/charmbracelet/lipgloss"

// truncate shortens text to maxLen runes, adding "..." if truncated
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}

var (
	// Colors
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#06B6D4")
	colorSuccess   = lipgloss.Color("#10B981")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
	colorText      = lipgloss.Color("#F9FAFB")

	styleLogo      lipgloss.Style
	styleSubtitle  lipgloss.Style
	styleText      lipgloss.Style
	styleSelected  lipgloss.Style
	styleBox       lipgloss.Style
	styleStatusBar lipgloss.Style
)

func init() {
	applyTheme("dark")
}

// applyTheme rebuilds the styles for a dark or light terminal
func applyTheme(theme string) {
	if theme == "light" {
		colorText = lipgloss.Color("#1F2937")
	} else {
		colorText = lipgloss.Color("#F9FAFB")
	}

	styleLogo = lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true)

	styleSubtitle = lipgloss.NewStyle().
		Foreground(colorMuted)

	styleText = lipgloss.NewStyle().
		Foreground(colorText)

	styleSelected = lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true)

	styleBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorMuted).
		Padding(0, 1)

	styleStatusBar = lipgloss.NewStyle().
		Foreground(colorMuted)
}

func (a *App) title(text string) string {
	t := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render(text)
	return lipgloss.PlaceHorizontal(a.width, lipgloss.Center, t)
}

func (a *App) centered(s string) string {
	return lipgloss.PlaceHorizontal(a.width, lipgloss.Center, s)
}

func (a *App) boxWidth() int {
	return max(20, min(76, a.width-4))
}

// centerVertically places content in the middle of the screen
func (a *App) centerVertically(content string) string {
	if a.height == 0 {
		return content
	}
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, content)
}
