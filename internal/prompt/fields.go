package prompt

import (
	"strconv"
	"strings"
)

// DefaultTask is used when the story input names no role
const DefaultTask = "Act as a storyteller, the rules must be strictly followed!"

// StoryFields is the editable state of the story builder
type StoryFields struct {
	Task                string
	TaskRules           []string
	Genre               string
	Storyline           string
	Specifics           string
	Vulgar              bool
	Cussing             bool
	MaxWords            int
	MinWords            int
	MaxChapterPerOutput int
	UniquenessLevel     int
}

// DefaultStoryFields returns the builder's initial form values
func DefaultStoryFields() StoryFields {
	return StoryFields{
		TaskRules:           []string{""},
		MaxWords:            125,
		MinWords:            75,
		MaxChapterPerOutput: 1,
		UniquenessLevel:     100,
	}
}

// Clone returns a copy that shares no slices with f
func (f StoryFields) Clone() StoryFields {
	out := f
	out.TaskRules = append([]string(nil), f.TaskRules...)
	return out
}

// ImageFields is the editable state of the image lab
type ImageFields struct {
	Subject     string
	Medium      string
	Environment string
	Lighting    string
	Color       string
	Mood        string
	Composition string
	Aspect      string
	Version     string
	Profile     bool
	Sref        string
}

// DefaultImageFields returns the image lab's initial form values
func DefaultImageFields() ImageFields {
	return ImageFields{
		Medium:      "photo",
		Environment: "outdoors",
		Lighting:    "cinematic",
		Color:       "vibrant",
		Mood:        "energetic",
		Composition: "closeup",
		Aspect:      "16:9",
		Version:     "7",
		Profile:     true,
	}
}

// VideoFields is the editable state of the video lab
type VideoFields struct {
	Idea   string
	Aspect string
	Motion string
}

// DefaultVideoFields returns the video lab's initial form values
func DefaultVideoFields() VideoFields {
	return VideoFields{
		Aspect: "91:51",
		Motion: "high",
	}
}

// NotionFields is the state of the Notion lab
type NotionFields struct {
	Content string
	Kind    NotionKind
	Output  string
}

// DefaultNotionFields starts the Notion lab in summary mode
func DefaultNotionFields() NotionFields {
	return NotionFields{Kind: NotionSummary}
}

// ThreadsFields is the state of the conversation converter
type ThreadsFields struct {
	Conversation string
	Turns        []string
	Prompt       string
}

// Choice lists for the picker fields
var (
	Mediums      = []string{"photo", "painting", "illustration", "3d render", "sketch"}
	Environments = []string{"outdoors", "indoors", "underwater", "in the city", "on the moon"}
	Lightings    = []string{"cinematic", "soft", "neon", "studio", "overcast"}
	Colors       = []string{"vibrant", "muted", "monochromatic", "colorful", "pastel", "black and white"}
	Moods        = []string{"energetic", "playful", "calm", "gloomy"}
	Compositions = []string{"closeup", "portrait", "headshot", "birds-eye view", "wide shot"}
	ImageAspects = []string{"16:9", "1:1", "4:5", "3:2"}
	Versions     = []string{"6", "7"}
	VideoAspects = []string{"91:51", "16:9", "9:16"}
	Motions      = []string{"low", "medium", "high"}
)

// ParseCount coerces form input into a non-negative integer.
// Like parseInt it reads a leading run of digits; anything invalid yields 0.
func ParseCount(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

// NonNegative clamps n at zero
func NonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
