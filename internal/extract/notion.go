package extract

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/sant0-9/promptcraft/internal/prompt"
	"github.com/sant0-9/promptcraft/internal/prompts"
)

// wordsPerMinute drives the reading-time estimate
const wordsPerMinute = 200

// excerptLimits is the input length above which a template quotes the input
var excerptLimits = map[prompt.NotionKind]int{
	prompt.NotionTemplate:        50,
	prompt.NotionContent:         0,
	prompt.NotionTroubleshooting: 30,
	prompt.NotionAutomation:      30,
	prompt.NotionCollaboration:   40,
	prompt.NotionLearning:        30,
}

// Notion generates the markdown output for the given mode
func Notion(input string, kind prompt.NotionKind) string {
	switch kind {
	case prompt.NotionTable:
		return Table(input)
	case prompt.NotionFormula:
		return FormulaHelp(input)
	case prompt.NotionSummary:
		return Summary(input)
	}

	if !prompts.HasNotionTemplate(string(kind)) {
		return Summary(input)
	}
	out, err := prompts.RenderNotion(string(kind), prompts.NotionInput{Text: input, Limit: excerptLimits[kind]})
	if err != nil {
		return Summary(input)
	}
	return out
}

var (
	sentenceSplit = regexp.MustCompile(`[.!?]+`)
	whitespace    = regexp.MustCompile(`\s+`)
)

// SummaryStats are the numbers reported under "Key Statistics"
type SummaryStats struct {
	Words       int
	Sentences   int
	ReadMinutes int
}

// Stats counts words and sentences in text
func Stats(text string) SummaryStats {
	words := len(strings.Fields(text))
	return SummaryStats{
		Words:       words,
		Sentences:   len(sentences(text)),
		ReadMinutes: ReadingTime(words),
	}
}

// ReadingTime returns whole minutes at 200 words per minute, rounded up
func ReadingTime(words int) int {
	return int(math.Ceil(float64(words) / wordsPerMinute))
}

func sentences(text string) []string {
	var out []string
	for _, s := range sentenceSplit.Split(text, -1) {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}

// Summary builds a digest of text. Inputs with more than three sentences
// are reduced to their first, middle and last sentence.
func Summary(input string) string {
	var b strings.Builder
	parts := sentences(input)
	stats := Stats(input)

	b.WriteString("## Summary of Your Text\n\n")

	if len(parts) > 3 {
		first := strings.TrimSpace(parts[0])
		middle := strings.TrimSpace(parts[len(parts)/2])
		last := strings.TrimSpace(parts[len(parts)-1])
		b.WriteString(fmt.Sprintf("%s. %s. %s.\n\n", first, middle, last))
	} else {
		b.WriteString(input + "\n\n")
	}

	plural := "s"
	if stats.ReadMinutes == 1 {
		plural = ""
	}
	b.WriteString("### Key Statistics\n")
	b.WriteString(fmt.Sprintf("- Word count: %d\n", stats.Words))
	b.WriteString(fmt.Sprintf("- Sentence count: %d\n", stats.Sentences))
	b.WriteString(fmt.Sprintf("- Estimated reading time: %d minute%s\n\n", stats.ReadMinutes, plural))

	b.WriteString("### Key Points\n")
	for _, kw := range keywords(input, 3) {
		b.WriteString(fmt.Sprintf("- Content related to \"%s\"\n", kw))
	}

	b.WriteString("\n*This summary is ready to paste into your Notion page.*")
	return b.String()
}

// keywords returns up to n distinct words longer than five characters
func keywords(text string, n int) []string {
	seen := make(map[string]bool)
	var out []string
	for _, w := range whitespace.Split(text, -1) {
		if len([]rune(w)) <= 5 || seen[w] {
			continue
		}
		seen[w] = true
		out = append(out, w)
		if len(out) == n {
			break
		}
	}
	return out
}

var (
	numberedLine = regexp.MustCompile(`^\d+\.`)
	listMarker   = regexp.MustCompile(`^\s*[-*]\s*|^\s*\d+\.\s*`)
)

// Table turns line-oriented input into a markdown table. Bulleted or
// numbered lists become Item/Notes rows, "key: value" lines become
// Property/Value rows, anything else a single Content column.
func Table(input string) string {
	var lines []string
	for _, line := range strings.Split(input, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}

	hasBullets, hasNumbers, hasColons := false, false, false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "-") || strings.HasPrefix(trimmed, "*") {
			hasBullets = true
		}
		if numberedLine.MatchString(trimmed) {
			hasNumbers = true
		}
		if strings.Contains(line, ":") {
			hasColons = true
		}
	}

	var b strings.Builder
	b.WriteString("## Generated Table for Notion\n\n")

	switch {
	case hasBullets || hasNumbers:
		b.WriteString("| Item | Notes |\n| --- | --- |\n")
		for _, line := range lines {
			clean := strings.TrimSpace(listMarker.ReplaceAllString(line, ""))
			b.WriteString(fmt.Sprintf("| %s | |\n", clean))
		}
	case hasColons:
		b.WriteString("| Property | Value |\n| --- | --- |\n")
		for _, line := range lines {
			key, value, found := strings.Cut(line, ":")
			if !found {
				b.WriteString(fmt.Sprintf("| %s | |\n", line))
				continue
			}
			b.WriteString(fmt.Sprintf("| %s | %s |\n", strings.TrimSpace(key), strings.TrimSpace(value)))
		}
	default:
		b.WriteString("| Content |\n| --- |\n")
		for _, line := range lines {
			b.WriteString(fmt.Sprintf("| %s |\n", strings.TrimSpace(line)))
		}
	}

	b.WriteString("\n*Copy this markdown table directly into Notion. You can then customize it further.*")
	return b.String()
}

var markdownMarkers = regexp.MustCompile("#+\\s|\\*\\*|\\*|`")

// StripMarkdown removes heading, emphasis and code markers before copying
func StripMarkdown(s string) string {
	return markdownMarkers.ReplaceAllString(s, "")
}
