package extract

import (
	"strings"

	"github.com/sant0-9/promptcraft/internal/prompt"
)

var (
	videoAspectRules = []keywordRule{
		{[]string{"vertical", "portrait"}, "9:16"},
		{[]string{"square"}, "1:1"},
		{[]string{"widescreen", "landscape"}, "16:9"},
	}
	motionRules = []keywordRule{
		{[]string{"slow", "gentle", "subtle"}, "low"},
		{[]string{"moderate", "medium"}, "medium"},
	}
)

// Video derives the aspect ratio and motion level from a scene description
func Video(input string, prior prompt.VideoFields) prompt.VideoFields {
	text := strings.ToLower(input)

	out := prior
	out.Idea = input
	out.Aspect = classify(text, videoAspectRules, "91:51")
	out.Motion = classify(text, motionRules, "high")
	return out
}
