package tui

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sant0-9/promptcraft/internal/extract"
	"github.com/sant0-9/promptcraft/internal/lab"
	"github.com/sant0-9/promptcraft/internal/library"
	"github.com/sant0-9/promptcraft/internal/prompt"
)

var spinnerFrames = []string{"-", "\\", "|", "/"}

func spinnerTick() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(time.Time) tea.Msg {
		return spinnerTickMsg{}
	})
}

func (a *App) openLab(kind prompt.Kind) tea.Cmd {
	a.view = viewLab
	a.state.kind = kind
	if info := lab.GetLab(kind); info != nil {
		a.state.input.Placeholder = info.Placeholder
	}
	a.state.input.SetValue(a.labInput(kind))
	a.refreshOutput()
	return a.state.input.Focus()
}

// labStore names the library store the current lab saves to
func (a *App) labStore() string {
	if info := lab.GetLab(a.state.kind); info != nil {
		return info.Store
	}
	return library.PromptsStore
}

// labInput is the raw text the lab last extracted from
func (a *App) labInput(kind prompt.Kind) string {
	s := a.state.labs
	switch kind {
	case prompt.KindStory:
		return s.Story.Storyline
	case prompt.KindImage:
		return s.Image.Subject
	case prompt.KindVideo:
		return s.Video.Idea
	case prompt.KindNotion:
		return s.Notion.Content
	case prompt.KindThreads:
		return s.Threads.Conversation
	}
	return ""
}

func (a *App) handleLabKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, keys.Back):
		a.state.input.Blur()
		a.view = viewWelcome
		return nil, true
	case key.Matches(msg, keys.Generate):
		return a.generate(), true
	case key.Matches(msg, keys.Save):
		return a.save(), true
	case key.Matches(msg, keys.Copy):
		return a.copyOutput(), true
	case key.Matches(msg, keys.Library):
		a.state.input.Blur()
		return a.openLibrary(a.labStore()), true
	case key.Matches(msg, keys.Clear):
		a.clearLab()
		return nil, true
	case key.Matches(msg, keys.Tab, keys.ShiftTab):
		if a.state.kind != prompt.KindNotion {
			return nil, false
		}
		if key.Matches(msg, keys.Tab) {
			a.state.labs.Notion.Kind = a.state.labs.Notion.Kind.Next()
		} else {
			a.state.labs.Notion.Kind = a.state.labs.Notion.Kind.Prev()
		}
		return nil, true
	case key.Matches(msg, keys.Option1, keys.Option2, keys.Option3):
		a.toggleOption(msg)
		return nil, true
	}
	return nil, false
}

// drawnSource replays a random pick made when a generation started
type drawnSource int

func (d drawnSource) IntN(n int) int { return int(d) % n }

// generate captures the current input and extracts from it after the
// configured delay, against the lab state at that point
func (a *App) generate() tea.Cmd {
	kind := a.state.kind
	input := a.state.input.Value()
	if strings.TrimSpace(input) == "" {
		return a.notifyErr(lab.ErrNoInput)
	}
	draw := drawnSource(a.source.IntN(len(extract.SrefCodes)))

	first := !a.state.generating()
	a.state.pending++
	a.state.genStart = a.now()

	delay := a.state.config.GenerationDelay
	a.logger.Debug("generation started", "kind", kind, "delay", delay)

	cmds := []tea.Cmd{
		tea.Tick(delay, func(time.Time) tea.Msg {
			return generatedMsg{kind: kind, input: input, draw: draw}
		}),
	}
	if first {
		cmds = append(cmds, spinnerTick())
	}
	return tea.Batch(cmds...)
}

func (a *App) save() tea.Cmd {
	doc, err := lab.Build(a.state.kind, a.state.labs, a.now())
	if err != nil {
		return a.notifyErr(err)
	}
	if a.library == nil {
		return a.notify("Library is not available", true)
	}
	if err := a.library.Save(doc); err != nil {
		a.logger.Error("save failed", "id", doc.ID, "error", err)
		return a.notifyErr(err)
	}
	return a.notify("Saved to library", false)
}

func (a *App) copyOutput() tea.Cmd {
	text, err := a.state.labs.ClipboardText(a.state.kind)
	if err != nil {
		return a.notifyErr(err)
	}
	return a.writeClipboard(text)
}

func (a *App) writeClipboard(text string) tea.Cmd {
	if err := a.clip(text); err != nil {
		a.logger.Warn("clipboard write failed", "error", err)
		return a.notify("Could not copy: "+err.Error(), true)
	}
	return a.notify("Copied to clipboard", false)
}

func (a *App) clearLab() {
	a.state.input.Reset()
	fresh := lab.NewState()
	fresh.Image.Version = a.state.config.ImageVersion
	fresh.Image.Profile = a.state.config.ImageProfile
	if a.state.kind == prompt.KindNotion {
		fresh.Notion.Kind = a.state.labs.Notion.Kind
	}
	a.state.labs = a.state.labs.Merge(a.state.kind, fresh)
	a.refreshOutput()
}

// cycle returns the option after cur, wrapping around
func cycle(options []string, cur string) string {
	i := slices.Index(options, cur)
	return options[(i+1)%len(options)]
}

func (a *App) toggleOption(msg tea.KeyMsg) {
	s := &a.state.labs
	f2 := key.Matches(msg, keys.Option1)
	f3 := key.Matches(msg, keys.Option2)

	switch a.state.kind {
	case prompt.KindStory:
		if f2 {
			s.Story.Vulgar = !s.Story.Vulgar
		} else if f3 {
			s.Story.Cussing = !s.Story.Cussing
		}
	case prompt.KindImage:
		switch {
		case f2:
			s.Image.Aspect = cycle(prompt.ImageAspects, s.Image.Aspect)
		case f3:
			s.Image.Version = cycle(prompt.Versions, s.Image.Version)
		default:
			s.Image.Profile = !s.Image.Profile
		}
	case prompt.KindVideo:
		if f2 {
			s.Video.Aspect = cycle(prompt.VideoAspects, s.Video.Aspect)
		} else if f3 {
			s.Video.Motion = cycle(prompt.Motions, s.Video.Motion)
		}
	}
	a.refreshOutput()
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// labOptions describes the settings the option keys change
func (a *App) labOptions() string {
	s := a.state.labs
	switch a.state.kind {
	case prompt.KindStory:
		return fmt.Sprintf("[F2] vulgar %s  [F3] cussing %s  max %d / min %d words",
			onOff(s.Story.Vulgar), onOff(s.Story.Cussing), s.Story.MaxWords, s.Story.MinWords)
	case prompt.KindImage:
		return fmt.Sprintf("[F2] --ar %s  [F3] --v %s  [F4] profile %s",
			s.Image.Aspect, s.Image.Version, onOff(s.Image.Profile))
	case prompt.KindVideo:
		return fmt.Sprintf("[F2] --ar %s  [F3] motion %s", s.Video.Aspect, s.Video.Motion)
	case prompt.KindNotion:
		return fmt.Sprintf("[Tab] output: %s", s.Notion.Kind.Title())
	case prompt.KindThreads:
		return fmt.Sprintf("%d turns", len(s.Threads.Turns))
	}
	return ""
}

func (a *App) refreshOutput() {
	out, err := a.state.labs.Output(a.state.kind)
	if err != nil {
		out = styleSubtitle.Render("Nothing generated yet. Press ctrl+g to generate.")
	} else {
		out = wrapText(out, a.state.output.Width)
	}
	a.state.output.SetContent(out)
	a.state.output.GotoTop()
}

// wrapText wraps each line of text to maxWidth, preserving words
func wrapText(text string, maxWidth int) string {
	if maxWidth <= 0 {
		maxWidth = 60
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = wrapLine(line, maxWidth)
	}
	return strings.Join(lines, "\n")
}

func wrapLine(line string, maxWidth int) string {
	if len([]rune(line)) <= maxWidth {
		return line
	}

	var result strings.Builder
	lineLen := 0
	for i, word := range strings.Fields(line) {
		n := len([]rune(word))
		if i > 0 {
			if lineLen+1+n > maxWidth {
				result.WriteString("\n")
				lineLen = 0
			} else {
				result.WriteString(" ")
				lineLen++
			}
		}
		result.WriteString(word)
		lineLen += n
	}
	return result.String()
}

func (a *App) renderLab() string {
	var b strings.Builder
	width := a.boxWidth()

	name := a.state.kind.Title()
	if info := lab.GetLab(a.state.kind); info != nil {
		name = info.Name
	}
	b.WriteString(a.title(name))
	b.WriteString("\n\n")

	inputBox := styleBox.
		Width(width).
		BorderForeground(colorSecondary).
		Render(a.state.input.View())
	b.WriteString(a.centered(inputBox))
	b.WriteString("\n")
	b.WriteString(a.centered(styleSubtitle.Render(a.labOptions())))
	b.WriteString("\n\n")

	border := colorPrimary
	if a.state.generating() {
		border = colorMuted
	}
	outputBox := styleBox.
		Width(width).
		BorderForeground(border).
		Render(a.state.output.View())
	b.WriteString(a.centered(outputBox))
	b.WriteString("\n\n")

	var status string
	if a.state.generating() {
		frame := spinnerFrames[a.state.spinFrame%len(spinnerFrames)]
		elapsed := a.now().Sub(a.state.genStart).Seconds()
		status = styleSelected.Render(fmt.Sprintf("%s Generating... %.1fs", frame, elapsed))
	} else {
		status = styleStatusBar.Render("[Ctrl+G] Generate  [Ctrl+S] Save  [Ctrl+Y] Copy  [Ctrl+L] Library  [Ctrl+X] Clear  [Esc] Back")
	}
	b.WriteString(a.centered(status))
	b.WriteString("\n")
	b.WriteString(a.renderStatus())

	return a.centerVertically(b.String())
}
