package tui

import (
	"log/slog"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sant0-9/promptcraft/internal/config"
	"github.com/sant0-9/promptcraft/internal/extract"
	"github.com/sant0-9/promptcraft/internal/lab"
	"github.com/sant0-9/promptcraft/internal/library"
	"github.com/sant0-9/promptcraft/internal/logging"
	"github.com/sant0-9/promptcraft/internal/prompt"
)

type view int

const (
	viewWelcome view = iota
	viewLab
	viewLibrary
	viewDetail
	viewSettings
	viewHelp
)

// Options wires the app to its collaborators. Only Library is required.
type Options struct {
	Config    *config.Manager
	Library   *library.Set
	Logger    *slog.Logger
	Clipboard func(string) error
	Source    extract.Source
	Now       func() time.Time
}

type App struct {
	width    int
	height   int
	view     view
	helpFrom view
	state    *state
	quitting bool

	manager *config.Manager
	library *library.Set
	logger  *slog.Logger
	clip    func(string) error
	source  extract.Source
	now     func() time.Time
}

func NewApp(opts Options) *App {
	cfg := config.DefaultConfig()
	if opts.Config != nil {
		cfg = opts.Config.Get()
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.WriteAll
	}
	if opts.Source == nil {
		opts.Source = extract.DefaultSource()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	applyTheme(cfg.Theme)

	return &App{
		view:    viewWelcome,
		state:   newState(cfg),
		manager: opts.Config,
		library: opts.Library,
		logger:  opts.Logger,
		clip:    opts.Clipboard,
		source:  opts.Source,
		now:     opts.Now,
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(tea.WindowSize(), textarea.Blink)
}

// generatedMsg delivers a generation once its delay is over. The input and
// the style reference draw are captured when generation starts.
type generatedMsg struct {
	kind  prompt.Kind
	input string
	draw  drawnSource
}

type spinnerTickMsg struct{}

type clearToastMsg struct{ seq int }

// ConfigChangedMsg carries a config reloaded from disk
type ConfigChangedMsg struct {
	Config *config.Config
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if cmd, handled := a.handleKey(msg); handled {
			return a, cmd
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.resize()

	case generatedMsg:
		if a.state.pending > 0 {
			a.state.pending--
		}
		next, err := lab.ExtractWith(msg.draw, msg.kind, msg.input, a.state.labs)
		if err != nil {
			return a, a.notifyErr(err)
		}
		a.state.labs = next
		a.refreshOutput()
		a.logger.Debug("generation complete", "kind", msg.kind)
		return a, a.notify("Prompt generated successfully", false)

	case spinnerTickMsg:
		if a.state.generating() {
			a.state.spinFrame++
			return a, spinnerTick()
		}
		return a, nil

	case clearToastMsg:
		if msg.seq == a.state.toastSeq {
			a.state.toast = ""
		}
		return a, nil

	case ConfigChangedMsg:
		a.applyConfig(msg.Config)
		return a, a.notify("Settings reloaded", false)
	}

	switch a.view {
	case viewLab:
		var cmd tea.Cmd
		a.state.input, cmd = a.state.input.Update(msg)
		cmds = append(cmds, cmd)
		if _, ok := msg.(tea.MouseMsg); ok {
			a.state.output, cmd = a.state.output.Update(msg)
			cmds = append(cmds, cmd)
		}
	case viewLibrary:
		before := a.state.search.Value()
		var cmd tea.Cmd
		a.state.search, cmd = a.state.search.Update(msg)
		cmds = append(cmds, cmd)
		if a.state.search.Value() != before {
			a.refreshResults()
		}
	case viewDetail:
		var cmd tea.Cmd
		a.state.detailView, cmd = a.state.detailView.Update(msg)
		cmds = append(cmds, cmd)
	}

	return a, tea.Batch(cmds...)
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if key.Matches(msg, keys.Quit) {
		a.quitting = true
		return tea.Quit, true
	}
	if key.Matches(msg, keys.Help) && a.view != viewHelp {
		a.helpFrom = a.view
		a.view = viewHelp
		return nil, true
	}

	switch a.view {
	case viewWelcome:
		return a.handleWelcomeKey(msg)
	case viewLab:
		return a.handleLabKey(msg)
	case viewLibrary:
		return a.handleLibraryKey(msg)
	case viewDetail:
		return a.handleDetailKey(msg)
	case viewSettings:
		return a.handleSettingsKey(msg)
	case viewHelp:
		if key.Matches(msg, keys.Back) {
			a.view = a.helpFrom
		}
		return nil, true
	}
	return nil, false
}

func (a *App) resize() {
	w := a.boxWidth() - 4
	a.state.input.SetWidth(w)
	a.state.search.Width = w - 2

	a.state.output.Width = w
	a.state.output.Height = max(3, a.height-20)

	a.state.detailView.Width = w
	a.state.detailView.Height = max(5, a.height-10)

	a.refreshOutput()
}

func (a *App) applyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	a.state.config = cfg
	a.state.labs.Image.Version = cfg.ImageVersion
	a.state.labs.Image.Profile = cfg.ImageProfile
	applyTheme(cfg.Theme)
	a.refreshOutput()
}

// notify shows text in the status line until a newer message replaces it
func (a *App) notify(text string, isErr bool) tea.Cmd {
	a.state.toastSeq++
	a.state.toast = text
	a.state.toastErr = isErr
	seq := a.state.toastSeq
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearToastMsg{seq: seq}
	})
}

func (a *App) notifyErr(err error) tea.Cmd {
	return a.notify(describe(err), true)
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}

	switch a.view {
	case viewLab:
		return a.renderLab()
	case viewLibrary:
		return a.renderLibrary()
	case viewDetail:
		return a.renderDocument()
	case viewSettings:
		return a.renderSettings()
	case viewHelp:
		return a.renderHelp()
	default:
		return a.renderWelcome()
	}
}
