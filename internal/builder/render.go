package builder

import (
	"encoding/json"
	"fmt"

	"github.com/sant0-9/promptcraft/internal/extract"
	"github.com/sant0-9/promptcraft/internal/prompt"
)

// RenderJSON formats v with two-space indentation
func RenderJSON(v any) (string, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to render json: %w", err)
	}
	return string(b), nil
}

// Render returns the text copied to the clipboard for doc
func Render(doc prompt.Document) (string, error) {
	switch p := doc.Data.(type) {
	case prompt.ThreadsPayload:
		return p.GeneratedPrompt, nil
	case prompt.NotionPayload:
		return extract.StripMarkdown(p.Summary), nil
	case nil:
		return "", fmt.Errorf("document %s has no data", doc.ID)
	default:
		return RenderJSON(p)
	}
}
