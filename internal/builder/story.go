package builder

import (
	"strings"

	"github.com/sant0-9/promptcraft/internal/prompt"
)

// StorytellerRules are sent with every story prompt
var StorytellerRules = []string{
	"You must be able to complete the story",
	"Output should only be 1 chapter and at most 1 chapter. IMPORTANT",
	"Follows the story object contents strictly",
}

// StoryDetail is the fixed detail instruction of every story prompt
const StoryDetail = "Must be in great and specific detail, dialogues must be humane, serious and humor, all characters should be named"

// StoryPayload assembles the storyteller JSON prompt. Blank task rules are
// dropped here rather than during editing.
func StoryPayload(f prompt.StoryFields) prompt.StoryPayload {
	rules := make([]string, 0, len(f.TaskRules))
	for _, r := range f.TaskRules {
		if strings.TrimSpace(r) != "" {
			rules = append(rules, r)
		}
	}

	return prompt.StoryPayload{
		Task:      f.Task,
		TaskRules: rules,
		Storyteller: prompt.Storyteller{
			Rules: append([]string(nil), StorytellerRules...),
		},
		Story: prompt.Story{
			Genre: f.Genre,
			Plot: prompt.Plot{
				Storyline: f.Storyline,
				Specifics: f.Specifics,
			},
			Detail:  StoryDetail,
			Vulgar:  f.Vulgar,
			Cussing: f.Cussing,
			Chapters: prompt.Chapters{
				MaxWords:            prompt.NonNegative(f.MaxWords),
				MinWords:            prompt.NonNegative(f.MinWords),
				MaxChapterPerOutput: prompt.NonNegative(f.MaxChapterPerOutput),
				UniquenessLevel:     prompt.NonNegative(f.UniquenessLevel),
			},
		},
	}
}
