package prompts

import (
	"embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed notion/*.md
var notionFS embed.FS

var notionTemplates = template.Must(template.ParseFS(notionFS, "notion/*.md"))

// ThreadsPreamble opens every prompt built from a conversation
const ThreadsPreamble = "I want you to respond to me as if we were having this conversation:"

// ThreadsClosing ends every prompt built from a conversation
const ThreadsClosing = "Continue the conversation in the same style and tone."

// BuildThreadsPrompt wraps formatted conversation turns in the fixed instructions
func BuildThreadsPrompt(turns []string) string {
	return fmt.Sprintf("%s\n\n%s\n\n%s",
		ThreadsPreamble,
		strings.Join(turns, "\n\n"),
		ThreadsClosing,
	)
}

// NotionInput is the data passed to a Notion template.
// Limit is the character count above which the input counts as detailed.
type NotionInput struct {
	Text  string
	Limit int
}

// Detailed reports whether the input is longer than the template's limit
func (in NotionInput) Detailed() bool {
	return len([]rune(in.Text)) > in.Limit
}

// Excerpt returns the first Limit characters followed by "..." for detailed
// input, or the input itself otherwise
func (in NotionInput) Excerpt() string {
	if !in.Detailed() {
		return in.Text
	}
	return string([]rune(in.Text)[:in.Limit]) + "..."
}

// Lead returns the first n space-separated words
func (in NotionInput) Lead(n int) string {
	words := strings.Split(in.Text, " ")
	if len(words) > n {
		words = words[:n]
	}
	return strings.Join(words, " ")
}

// HasNotionTemplate reports whether name has an embedded template
func HasNotionTemplate(name string) bool {
	return notionTemplates.Lookup(name+".md") != nil
}

// RenderNotion executes the named Notion template
func RenderNotion(name string, in NotionInput) (string, error) {
	var sb strings.Builder
	if err := notionTemplates.ExecuteTemplate(&sb, name+".md", in); err != nil {
		return "", fmt.Errorf("render notion %s: %w", name, err)
	}
	return strings.TrimRight(sb.String(), "\n"), nil
}
