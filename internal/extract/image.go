package extract

import (
	"math/rand"
	"strings"

	"github.com/sant0-9/promptcraft/internal/prompt"
)

// SrefCodes are the style-reference codes an image extraction picks from
var SrefCodes = []string{
	"5523", "6953", "2829", "1829", "9283",
	"4729", "3829", "7293", "8293", "1039",
}

// Source picks a uniform index in [0, n)
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.Intn(n) }

// DefaultSource returns a Source backed by math/rand
func DefaultSource() Source {
	return globalSource{}
}

type keywordRule struct {
	keywords []string
	value    string
}

// classify returns the value of the first rule with a keyword in text
func classify(text string, rules []keywordRule, fallback string) string {
	for _, r := range rules {
		if containsAny(text, r.keywords) {
			return r.value
		}
	}
	return fallback
}

var (
	mediumRules = []keywordRule{
		{[]string{"painting", "art"}, "painting"},
		{[]string{"illustration"}, "illustration"},
		{[]string{"3d", "render"}, "3d render"},
		{[]string{"sketch"}, "sketch"},
	}
	environmentRules = []keywordRule{
		{[]string{"indoor"}, "indoors"},
		{[]string{"underwater"}, "underwater"},
		{[]string{"city"}, "in the city"},
		{[]string{"moon"}, "on the moon"},
	}
	lightingRules = []keywordRule{
		{[]string{"soft light"}, "soft"},
		{[]string{"neon"}, "neon"},
		{[]string{"studio"}, "studio"},
		{[]string{"overcast"}, "overcast"},
	}
	colorRules = []keywordRule{
		{[]string{"muted"}, "muted"},
		{[]string{"monochrome", "monochromatic"}, "monochromatic"},
		{[]string{"colorful"}, "colorful"},
		{[]string{"pastel"}, "pastel"},
		{[]string{"black and white"}, "black and white"},
	}
	moodRules = []keywordRule{
		{[]string{"playful"}, "playful"},
		{[]string{"calm"}, "calm"},
		{[]string{"gloomy", "sad"}, "gloomy"},
	}
	compositionRules = []keywordRule{
		{[]string{"portrait"}, "portrait"},
		{[]string{"headshot"}, "headshot"},
		{[]string{"birds-eye", "aerial"}, "birds-eye view"},
		{[]string{"wide"}, "wide shot"},
	}
)

// Image classifies a description into the image lab fields.
// Aspect, version and profile are left as the caller had them. The style
// reference is drawn from src on every call.
func Image(input string, prior prompt.ImageFields, src Source) prompt.ImageFields {
	if src == nil {
		src = DefaultSource()
	}
	text := strings.ToLower(input)

	out := prior
	out.Subject = input
	out.Medium = classify(text, mediumRules, "photo")
	out.Environment = classify(text, environmentRules, "outdoors")
	out.Lighting = classify(text, lightingRules, "cinematic")
	out.Color = classify(text, colorRules, "vibrant")
	out.Mood = classify(text, moodRules, "energetic")
	out.Composition = classify(text, compositionRules, "closeup")
	out.Sref = SrefCodes[src.IntN(len(SrefCodes))]
	return out
}
