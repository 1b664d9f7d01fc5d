package builder

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/sant0-9/promptcraft/internal/prompt"
)

var at = time.Date(2024, 3, 9, 14, 5, 0, 0, time.UTC)

func TestStoryPayloadFiltersBlankRules(t *testing.T) {
	f := prompt.DefaultStoryFields()
	f.Task = "Act as a bard"
	f.TaskRules = []string{"", "rhyme often", "   ", "no villains"}
	f.MaxWords = -4

	p := StoryPayload(f)

	if len(p.TaskRules) != 2 || p.TaskRules[0] != "rhyme often" || p.TaskRules[1] != "no villains" {
		t.Errorf("TaskRules = %q, want blank entries removed", p.TaskRules)
	}
	if len(p.Storyteller.Rules) != 3 {
		t.Errorf("Storyteller.Rules = %v, want the fixed three", p.Storyteller.Rules)
	}
	if p.Story.Detail != StoryDetail {
		t.Errorf("Detail = %q, want fixed detail", p.Story.Detail)
	}
	if p.Story.Chapters.MaxWords != 0 {
		t.Errorf("MaxWords = %d, want negative clamped to 0", p.Story.Chapters.MaxWords)
	}
}

func TestStoryPayloadEmptyRulesEncodeAsArray(t *testing.T) {
	p := StoryPayload(prompt.DefaultStoryFields())
	b, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.Contains(string(b), `"taskRules":[]`) {
		t.Errorf("taskRules should encode as [], got %s", b)
	}
}

func TestNames(t *testing.T) {
	long := strings.Repeat("x", 45)

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"story with genre", StoryName("Fantasy", "Act as a bard", at), "Fantasy - Act as a bard (14:05)"},
		{"story truncated", StoryName("Horror", long, at), "Horror - " + strings.Repeat("x", 30) + "... (14:05)"},
		{"story without genre", StoryName("", long, at), strings.Repeat("x", 40) + "... (14:05)"},
		{"story untitled", StoryName("", "", at), "Untitled Task (14:05)"},
		{"story exactly forty", StoryName("", strings.Repeat("y", 40), at), strings.Repeat("y", 40) + " (14:05)"},
		{"image", ImageName("a red fox", at), "Image: a red fox (14:05)"},
		{"image without subject", ImageName("", at), "Image Prompt (14:05)"},
		{"video", VideoName("rain", at), "Video: rain (14:05)"},
		{"video without idea", VideoName("", at), "Video Prompt (14:05)"},
		{"notion", NotionName(prompt.NotionTable, "a: 1", at), "Notion Table: a: 1 (14:05)"},
		{"threads", ThreadsName([]string{"Alice: hi"}, at), "Threads: Alice: hi (14:05)"},
		{"threads empty", ThreadsName(nil, at), "Threads Prompt (14:05)"},
		{"rune safe", ImageName(strings.Repeat("é", 41), at), "Image: " + strings.Repeat("é", 40) + "... (14:05)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("name = %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestDocuments(t *testing.T) {
	story := prompt.DefaultStoryFields()
	story.Genre = "Mystery"
	story.Task = "Act as a detective"

	image := prompt.DefaultImageFields()
	image.Subject = "cat"

	video := prompt.DefaultVideoFields()
	video.Idea = "waves"

	tests := []struct {
		name      string
		build     func() (prompt.Document, error)
		wantKind  prompt.Kind
		wantGenre string
		wantTask  string
	}{
		{"story", func() (prompt.Document, error) { return Story(story, at) }, prompt.KindStory, "Mystery", "Act as a detective"},
		{"image", func() (prompt.Document, error) { return Image(image, at) }, prompt.KindImage, "Image", "Midjourney Image Prompt"},
		{"video", func() (prompt.Document, error) { return Video(video, at) }, prompt.KindVideo, "Video", "Midjourney Video Prompt"},
		{"notion", func() (prompt.Document, error) {
			return Notion(prompt.NotionFields{Content: "x", Kind: prompt.NotionSummary, Output: "## y"}, at)
		}, prompt.KindNotion, "", ""},
		{"threads", func() (prompt.Document, error) {
			return Threads(prompt.ThreadsFields{Conversation: "A: b", Turns: []string{"A: b"}, Prompt: "p"}, at)
		}, prompt.KindThreads, "Conversation", "LLM Prompt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := tt.build()
			if err != nil {
				t.Fatalf("build error = %v", err)
			}
			if doc.ID == "" {
				t.Error("ID is empty")
			}
			if doc.Kind != tt.wantKind || doc.Data.Kind() != tt.wantKind {
				t.Errorf("Kind = %s (data %s), want %s", doc.Kind, doc.Data.Kind(), tt.wantKind)
			}
			if !doc.CreatedAt.Equal(at) {
				t.Errorf("CreatedAt = %v, want %v", doc.CreatedAt, at)
			}
			if doc.Genre != tt.wantGenre || doc.Task != tt.wantTask {
				t.Errorf("Genre/Task = %q/%q, want %q/%q", doc.Genre, doc.Task, tt.wantGenre, tt.wantTask)
			}
		})
	}
}

func TestDocumentIDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		doc, err := Video(prompt.DefaultVideoFields(), at)
		if err != nil {
			t.Fatalf("Video() error = %v", err)
		}
		if seen[doc.ID] {
			t.Fatalf("duplicate id %s", doc.ID)
		}
		seen[doc.ID] = true
	}
}

func TestRender(t *testing.T) {
	threads, _ := Threads(prompt.ThreadsFields{Prompt: "the prompt"}, at)
	got, err := Render(threads)
	if err != nil || got != "the prompt" {
		t.Errorf("Render(threads) = %q, %v; want generated prompt", got, err)
	}

	notion, _ := Notion(prompt.NotionFields{Kind: prompt.NotionSummary, Output: "## Title\n**bold**"}, at)
	got, err = Render(notion)
	if err != nil || got != "Title\nbold" {
		t.Errorf("Render(notion) = %q, %v; want stripped markdown", got, err)
	}

	f := prompt.DefaultVideoFields()
	f.Idea = "waves"
	video, _ := Video(f, at)
	got, err = Render(video)
	if err != nil {
		t.Fatalf("Render(video) error = %v", err)
	}
	if !strings.HasPrefix(got, "{\n  \"type\": \"video\",\n  \"command\": ") {
		t.Errorf("Render(video) should be 2-space indented data JSON, got:\n%s", got)
	}

	if _, err := Render(prompt.Document{ID: "x"}); err == nil {
		t.Error("Render() of a document without data should fail")
	}
}
