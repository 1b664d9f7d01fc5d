package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/sant0-9/promptcraft/internal/prompt"
)

// Genres are checked in order; the first one found wins
var Genres = []string{"sci-fi", "fantasy", "romance", "horror", "mystery", "thriller", "adventure", "drama", "comedy"}

var (
	actAsPattern    = regexp.MustCompile(`act as (.*?)(?:\.|,|$)`)
	beAPattern      = regexp.MustCompile(`be a (.*?)(?:\.|,|$)`)
	maxWordsPattern = regexp.MustCompile(`(\d+)\s*max\s*words?`)
	minWordsPattern = regexp.MustCompile(`(\d+)\s*min\s*words?`)

	vulgarWords  = []string{"vulgar", "mature", "adult"}
	cussingWords = []string{"cussing", "swearing", "profanity"}
)

// Story maps a free-text description onto the story builder fields.
// Fields the text says nothing about keep their prior values; the storyline
// is always replaced by the raw input.
func Story(input string, prior prompt.StoryFields) prompt.StoryFields {
	out := prior.Clone()
	text := strings.ToLower(input)

	out.Genre = detectGenre(text)

	if task := detectTask(text); task != "" {
		out.Task = task
	} else if out.Task == "" {
		out.Task = prompt.DefaultTask
	}

	if containsAny(text, vulgarWords) {
		out.Vulgar = true
	}
	if containsAny(text, cussingWords) {
		out.Cussing = true
	}

	if n, ok := matchCount(maxWordsPattern, text); ok {
		out.MaxWords = n
	}
	if n, ok := matchCount(minWordsPattern, text); ok {
		out.MinWords = n
	}

	out.Storyline = input
	return out
}

func detectGenre(text string) string {
	for _, g := range Genres {
		if strings.Contains(text, g) {
			return strings.ToUpper(g[:1]) + g[1:]
		}
	}
	return ""
}

// detectTask only tries the "be a" form when "act as" is absent
func detectTask(text string) string {
	if strings.Contains(text, "act as") {
		if m := actAsPattern.FindStringSubmatch(text); m != nil {
			return "Act as " + m[1]
		}
		return ""
	}
	if strings.Contains(text, "be a") {
		if m := beAPattern.FindStringSubmatch(text); m != nil {
			return "Act as a " + m[1]
		}
	}
	return ""
}

func matchCount(re *regexp.Regexp, text string) (int, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, true
	}
	return n, true
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
