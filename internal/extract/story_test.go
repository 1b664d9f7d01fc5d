package extract

import (
	"testing"

	"github.com/sant0-9/promptcraft/internal/prompt"
)

func TestStory(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantGenre   string
		wantTask    string
		wantVulgar  bool
		wantCussing bool
		wantMax     int
		wantMin     int
	}{
		{
			name:      "act as with genre and word limit",
			input:     "Act as a storyteller and create a sci-fi story about AI with 200 max words, allow cussing",
			wantGenre: "Sci-fi",
			wantTask:  "Act as a storyteller and create a sci-fi story about ai with 200 max words",
			wantMax:   200,
			wantMin:   75,

			wantCussing: true,
		},
		{
			name:      "be a pattern",
			input:     "Please be a grumpy wizard. Tell a fantasy tale",
			wantGenre: "Fantasy",
			wantTask:  "Act as a grumpy wizard",
			wantMax:   125,
			wantMin:   75,
		},
		{
			name:     "no pattern falls back to default task",
			input:    "a quiet morning",
			wantTask: prompt.DefaultTask,
			wantMax:  125,
			wantMin:  75,
		},
		{
			name:       "flags and min words",
			input:      "mature horror with profanity, 50 min words",
			wantGenre:  "Horror",
			wantTask:   prompt.DefaultTask,
			wantVulgar: true,
			wantMax:    125,
			wantMin:    50,

			wantCussing: true,
		},
		{
			name:      "first genre in list order wins",
			input:     "a comedy romance",
			wantGenre: "Romance",
			wantTask:  prompt.DefaultTask,
			wantMax:   125,
			wantMin:   75,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Story(tt.input, prompt.DefaultStoryFields())
			if got.Genre != tt.wantGenre {
				t.Errorf("Genre = %q, want %q", got.Genre, tt.wantGenre)
			}
			if got.Task != tt.wantTask {
				t.Errorf("Task = %q, want %q", got.Task, tt.wantTask)
			}
			if got.Vulgar != tt.wantVulgar {
				t.Errorf("Vulgar = %v, want %v", got.Vulgar, tt.wantVulgar)
			}
			if got.Cussing != tt.wantCussing {
				t.Errorf("Cussing = %v, want %v", got.Cussing, tt.wantCussing)
			}
			if got.MaxWords != tt.wantMax {
				t.Errorf("MaxWords = %d, want %d", got.MaxWords, tt.wantMax)
			}
			if got.MinWords != tt.wantMin {
				t.Errorf("MinWords = %d, want %d", got.MinWords, tt.wantMin)
			}
			if got.Storyline != tt.input {
				t.Errorf("Storyline = %q, want raw input", got.Storyline)
			}
		})
	}
}

func TestStoryKeepsPriorState(t *testing.T) {
	prior := prompt.DefaultStoryFields()
	prior.Task = "Act as a poet"
	prior.TaskRules = []string{"rhyme", ""}
	prior.Specifics = "set in Lisbon"
	prior.MaxWords = 300
	prior.Cussing = true
	prior.UniquenessLevel = 40

	got := Story("something happens", prior)

	if got.Task != "Act as a poet" {
		t.Errorf("Task = %q, want prior task kept", got.Task)
	}
	if got.MaxWords != 300 {
		t.Errorf("MaxWords = %d, want 300", got.MaxWords)
	}
	if !got.Cussing {
		t.Error("Cussing should keep prior true")
	}
	if got.Specifics != "set in Lisbon" || got.UniquenessLevel != 40 {
		t.Errorf("untouched fields changed: %+v", got)
	}
	if len(got.TaskRules) != 2 {
		t.Errorf("TaskRules = %v, want prior rules unfiltered", got.TaskRules)
	}
}

func TestStoryDoesNotMutateCaller(t *testing.T) {
	prior := prompt.DefaultStoryFields()
	prior.TaskRules = []string{"one"}

	got := Story("act as a bard", prior)
	got.TaskRules[0] = "changed"

	if prior.TaskRules[0] != "one" {
		t.Errorf("caller TaskRules mutated: %v", prior.TaskRules)
	}
	if prior.Storyline != "" || prior.Task != "" {
		t.Errorf("caller fields mutated: %+v", prior)
	}
}

func TestStoryIsDeterministic(t *testing.T) {
	input := "Act as a narrator, write a thriller"
	a := Story(input, prompt.DefaultStoryFields())
	b := Story(input, prompt.DefaultStoryFields())
	if a.Genre != b.Genre || a.Task != b.Task {
		t.Errorf("results differ: %+v vs %+v", a, b)
	}
}
