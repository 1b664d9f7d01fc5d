package lab

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sant0-9/promptcraft/internal/builder"
	"github.com/sant0-9/promptcraft/internal/extract"
	"github.com/sant0-9/promptcraft/internal/prompt"
)

var (
	// ErrNothingToDo marks an action whose precondition is not met
	ErrNothingToDo = errors.New("nothing to do")

	ErrNoInput          = fmt.Errorf("%w: please enter some text to process", ErrNothingToDo)
	ErrNothingGenerated = fmt.Errorf("%w: please generate a prompt first", ErrNothingToDo)
)

// State holds the field state of every lab. Generated output lives in the
// fields themselves: the Notion output, the threads prompt, and the image and
// video commands derived from their fields.
type State struct {
	Story   prompt.StoryFields
	Image   prompt.ImageFields
	Video   prompt.VideoFields
	Notion  prompt.NotionFields
	Threads prompt.ThreadsFields
}

// NewState returns every lab at its initial form values
func NewState() State {
	return State{
		Story:  prompt.DefaultStoryFields(),
		Image:  prompt.DefaultImageFields(),
		Video:  prompt.DefaultVideoFields(),
		Notion: prompt.DefaultNotionFields(),
	}
}

// Extract runs the extraction rules of kind over input
func Extract(kind prompt.Kind, input string, s State) (State, error) {
	return ExtractWith(extract.DefaultSource(), kind, input, s)
}

// ExtractWith is Extract with an explicit random source for image style references
func ExtractWith(src extract.Source, kind prompt.Kind, input string, s State) (State, error) {
	if strings.TrimSpace(input) == "" {
		return s, ErrNoInput
	}

	switch kind {
	case prompt.KindStory:
		s.Story = extract.Story(input, s.Story)
	case prompt.KindImage:
		s.Image = extract.Image(input, s.Image, src)
	case prompt.KindVideo:
		s.Video = extract.Video(input, s.Video)
	case prompt.KindNotion:
		s.Notion.Content = input
		s.Notion.Output = extract.Notion(input, s.Notion.Kind)
	case prompt.KindThreads:
		s.Threads = extract.Threads(input)
	default:
		return s, fmt.Errorf("unknown lab %q", kind)
	}
	return s, nil
}

// Ready reports whether kind has something to save or copy
func (s State) Ready(kind prompt.Kind) bool {
	switch kind {
	case prompt.KindStory:
		return strings.TrimSpace(s.Story.Task) != "" || strings.TrimSpace(s.Story.Storyline) != ""
	case prompt.KindImage:
		return strings.TrimSpace(s.Image.Subject) != ""
	case prompt.KindVideo:
		return strings.TrimSpace(s.Video.Idea) != ""
	case prompt.KindNotion:
		return s.Notion.Output != ""
	case prompt.KindThreads:
		return s.Threads.Prompt != ""
	}
	return false
}

// Output returns the text a lab currently shows as its result
func (s State) Output(kind prompt.Kind) (string, error) {
	if !s.Ready(kind) {
		return "", ErrNothingGenerated
	}
	switch kind {
	case prompt.KindStory:
		return builder.RenderJSON(builder.StoryPayload(s.Story))
	case prompt.KindImage:
		return builder.ImageCommand(s.Image), nil
	case prompt.KindVideo:
		return builder.VideoCommand(s.Video), nil
	case prompt.KindNotion:
		return s.Notion.Output, nil
	default:
		return s.Threads.Prompt, nil
	}
}

// ClipboardText returns what copying the lab's result puts on the clipboard.
// Notion output loses its markdown markers.
func (s State) ClipboardText(kind prompt.Kind) (string, error) {
	out, err := s.Output(kind)
	if err != nil {
		return "", err
	}
	if kind == prompt.KindNotion {
		return extract.StripMarkdown(out), nil
	}
	return out, nil
}

// Merge copies the fields of kind from src, leaving the other labs alone
func (s State) Merge(kind prompt.Kind, src State) State {
	switch kind {
	case prompt.KindStory:
		s.Story = src.Story.Clone()
	case prompt.KindImage:
		s.Image = src.Image
	case prompt.KindVideo:
		s.Video = src.Video
	case prompt.KindNotion:
		s.Notion = src.Notion
	case prompt.KindThreads:
		s.Threads = src.Threads
	}
	return s
}

// Build turns the state of kind into a document stamped with now
func Build(kind prompt.Kind, s State, now time.Time) (prompt.Document, error) {
	if !s.Ready(kind) {
		return prompt.Document{}, ErrNothingGenerated
	}
	switch kind {
	case prompt.KindStory:
		return builder.Story(s.Story, now)
	case prompt.KindImage:
		return builder.Image(s.Image, now)
	case prompt.KindVideo:
		return builder.Video(s.Video, now)
	case prompt.KindNotion:
		return builder.Notion(s.Notion, now)
	case prompt.KindThreads:
		return builder.Threads(s.Threads, now)
	}
	return prompt.Document{}, fmt.Errorf("unknown lab %q", kind)
}
