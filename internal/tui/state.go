package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/sant0-9/promptcraft/internal/config"
	"github.com/sant0-9/promptcraft/internal/lab"
	"github.com/sant0-9/promptcraft/internal/prompt"
)

type state struct {
	config *config.Config

	// Menu
	menuIndex int

	// Labs
	labs      lab.State
	kind      prompt.Kind
	input     textarea.Model
	output    viewport.Model
	pending   int
	genStart  time.Time
	spinFrame int

	// Library
	search      textinput.Model
	results     []prompt.Document
	selected    int
	shelf       string

	// Detail
	detail     *prompt.Document
	detailView viewport.Model
	detailFrom view

	// Settings
	draft            *config.Config
	settingsSelected int

	// Status line
	toast    string
	toastErr bool
	toastSeq int
}

func newState(cfg *config.Config) *state {
	input := textarea.New()
	input.Placeholder = "Describe what you want..."
	input.ShowLineNumbers = false
	input.CharLimit = 0
	input.SetWidth(60)
	input.SetHeight(6)

	search := textinput.New()
	search.Placeholder = "Search by name, genre or task..."
	search.CharLimit = 100
	search.Width = 50

	labs := lab.NewState()
	labs.Image.Version = cfg.ImageVersion
	labs.Image.Profile = cfg.ImageProfile

	return &state{
		config:     cfg,
		labs:       labs,
		kind:       prompt.KindStory,
		input:      input,
		output:     viewport.New(60, 10),
		search:     search,
		detailView: viewport.New(60, 20),
	}
}

func (s *state) generating() bool {
	return s.pending > 0
}
