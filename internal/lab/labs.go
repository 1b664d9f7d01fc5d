package lab

import (
	"github.com/sant0-9/promptcraft/internal/library"
	"github.com/sant0-9/promptcraft/internal/prompt"
)

type Info struct {
	Kind        prompt.Kind
	Name        string
	Description string
	Store       string
	Placeholder string
}

var Labs = []Info{
	{
		Kind:        prompt.KindStory,
		Name:        "Story Builder",
		Description: "Storyteller JSON prompts",
		Store:       library.PromptsStore,
		Placeholder: "Act as a storyteller and create a sci-fi story about AI with 200 max words",
	},
	{
		Kind:        prompt.KindImage,
		Name:        "Image Lab",
		Description: "Midjourney image commands",
		Store:       library.PromptsStore,
		Placeholder: "A dog eating a hamburger in the city, neon, wide",
	},
	{
		Kind:        prompt.KindVideo,
		Name:        "Video Lab",
		Description: "Midjourney video commands",
		Store:       library.PromptsStore,
		Placeholder: "Slow vertical shot of rain on a window",
	},
	{
		Kind:        prompt.KindNotion,
		Name:        "Notion Lab",
		Description: "Summaries, tables, formulas and templates",
		Store:       library.NotionStore,
		Placeholder: "Paste the text you want to turn into Notion content",
	},
	{
		Kind:        prompt.KindThreads,
		Name:        "Threads Lab",
		Description: "Conversation to prompt",
		Store:       library.PromptsStore,
		Placeholder: "Alice: hello\nBob: hi, how are you?",
	},
}

func GetLab(kind prompt.Kind) *Info {
	for _, l := range Labs {
		if l.Kind == kind {
			return &l
		}
	}
	return nil
}
