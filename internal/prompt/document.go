package prompt

import (
	"encoding/json"
	"fmt"
	"time"
)

// Document is a saved prompt with its envelope metadata
type Document struct {
	ID        string
	Name      string
	CreatedAt time.Time
	Kind      Kind
	Data      Payload

	// Denormalised copies of values inside Data, taken at build time
	Genre string
	Task  string
}

// Normalize sets Kind from the payload, which is what the envelope is written with
func (d Document) Normalize() Document {
	if d.Data != nil {
		d.Kind = d.Data.Kind()
	}
	return d
}

// Payload is the domain-specific body of a document
type Payload interface {
	Kind() Kind
}

// StoryPayload is the storyteller JSON prompt. It has no type field.
type StoryPayload struct {
	Task        string      `json:"task"`
	TaskRules   []string    `json:"taskRules"`
	Storyteller Storyteller `json:"storyteller"`
	Story       Story       `json:"story"`
}

type Storyteller struct {
	Rules []string `json:"rules"`
}

type Story struct {
	Genre    string   `json:"genre"`
	Plot     Plot     `json:"plot"`
	Detail   string   `json:"detail"`
	Vulgar   bool     `json:"vulgar"`
	Cussing  bool     `json:"cussing"`
	Chapters Chapters `json:"chapters"`
}

type Plot struct {
	Storyline string `json:"storyline"`
	Specifics string `json:"specifics"`
}

type Chapters struct {
	MaxWords            int `json:"maxWords"`
	MinWords            int `json:"minWords"`
	MaxChapterPerOutput int `json:"maxChapterPerOutput"`
	UniquenessLevel     int `json:"uniquenessLevel"`
}

func (StoryPayload) Kind() Kind { return KindStory }

// GenreRef mirrors the story.genre path the library shows for media prompts
type GenreRef struct {
	Genre string `json:"genre"`
}

// ImagePayload is a Midjourney image command with its structured parts
type ImagePayload struct {
	Type       string          `json:"type"`
	Command    string          `json:"command"`
	Structured ImageStructured `json:"structured"`
	Task       string          `json:"task"`
	Story      GenreRef        `json:"story"`
}

type ImageStructured struct {
	Subject     string `json:"subject"`
	Medium      string `json:"medium"`
	Environment string `json:"environment"`
	Lighting    string `json:"lighting"`
	Color       string `json:"color"`
	Mood        string `json:"mood"`
	Composition string `json:"composition"`
	Aspect      string `json:"aspect"`
	Version     string `json:"version"`
	Profile     bool   `json:"profile"`
	Sref        string `json:"sref"`
}

func (ImagePayload) Kind() Kind { return KindImage }

// VideoPayload is a Midjourney video command
type VideoPayload struct {
	Type    string     `json:"type"`
	Command string     `json:"command"`
	Flags   VideoFlags `json:"flags"`
	Task    string     `json:"task"`
	Story   GenreRef   `json:"story"`
}

type VideoFlags struct {
	Aspect string `json:"aspect"`
	Motion string `json:"motion"`
	Video  int    `json:"video"`
}

func (VideoPayload) Kind() Kind { return KindVideo }

// NotionPayload keeps the source text and the generated Notion content
type NotionPayload struct {
	Content string     `json:"content"`
	Summary string     `json:"summary"`
	Type    NotionKind `json:"type"`
}

func (NotionPayload) Kind() Kind { return KindNotion }

// ThreadsPayload keeps a pasted conversation and the prompt built from it
type ThreadsPayload struct {
	Conversation    string `json:"conversation"`
	GeneratedPrompt string `json:"generatedPrompt"`
}

func (ThreadsPayload) Kind() Kind { return KindThreads }

type envelope struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	CreatedAt string          `json:"createdAt"`
	Kind      Kind            `json:"kind,omitempty"`
	Data      json.RawMessage `json:"data"`
	Genre     string          `json:"genre,omitempty"`
	Task      string          `json:"task,omitempty"`
}

// MarshalJSON writes the envelope with an explicit kind tag
func (d Document) MarshalJSON() ([]byte, error) {
	if d.Data == nil {
		return nil, fmt.Errorf("document %s has no data", d.ID)
	}
	data, err := json.Marshal(d.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s data: %w", d.Data.Kind(), err)
	}
	return json.Marshal(envelope{
		ID:        d.ID,
		Name:      d.Name,
		CreatedAt: d.CreatedAt.UTC().Format(time.RFC3339Nano),
		Kind:      d.Data.Kind(),
		Data:      data,
		Genre:     d.Genre,
		Task:      d.Task,
	})
}

// UnmarshalJSON reads an envelope. Documents written before kinds were tagged
// are classified from the shape of their data.
func (d *Document) UnmarshalJSON(b []byte) error {
	var env envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return err
	}

	createdAt, err := parseTime(env.CreatedAt)
	if err != nil {
		return fmt.Errorf("document %s: invalid createdAt: %w", env.ID, err)
	}

	kind := env.Kind
	if kind == "" {
		kind = inferKind(env.Data)
	}

	payload, err := decodePayload(kind, env.Data)
	if err != nil {
		return fmt.Errorf("document %s: %w", env.ID, err)
	}

	*d = Document{
		ID:        env.ID,
		Name:      env.Name,
		CreatedAt: createdAt,
		Kind:      kind,
		Data:      payload,
		Genre:     env.Genre,
		Task:      env.Task,
	}
	return nil
}

func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

func inferKind(raw json.RawMessage) Kind {
	var probe struct {
		Type         string  `json:"type"`
		Conversation *string `json:"conversation"`
		Content      *string `json:"content"`
		Summary      *string `json:"summary"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return KindStory
	}
	switch {
	case probe.Type == string(KindImage):
		return KindImage
	case probe.Type == string(KindVideo):
		return KindVideo
	case probe.Conversation != nil:
		return KindThreads
	case probe.Content != nil && probe.Summary != nil:
		return KindNotion
	default:
		return KindStory
	}
}

func decodePayload(kind Kind, raw json.RawMessage) (Payload, error) {
	var (
		p   Payload
		err error
	)
	switch kind {
	case KindStory:
		var v StoryPayload
		err = json.Unmarshal(raw, &v)
		p = v
	case KindImage:
		var v ImagePayload
		err = json.Unmarshal(raw, &v)
		p = v
	case KindVideo:
		var v VideoPayload
		err = json.Unmarshal(raw, &v)
		p = v
	case KindNotion:
		var v NotionPayload
		err = json.Unmarshal(raw, &v)
		p = v
	case KindThreads:
		var v ThreadsPayload
		err = json.Unmarshal(raw, &v)
		p = v
	default:
		return nil, fmt.Errorf("unknown kind %q", kind)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s data: %w", kind, err)
	}
	return p, nil
}
