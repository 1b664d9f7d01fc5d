package builder

import (
	"fmt"
	"strings"

	"github.com/sant0-9/promptcraft/internal/prompt"
)

// ImageCommand renders the Midjourney /imagine command for an image lab state
func ImageCommand(f prompt.ImageFields) string {
	base := strings.TrimSpace(fmt.Sprintf("/imagine %s %s, %s, %s lighting, %s colors, %s mood, %s",
		f.Subject, f.Medium, f.Environment, f.Lighting, f.Color, f.Mood, f.Composition))

	parts := []string{base, "--ar " + f.Aspect}
	if f.Profile {
		parts = append(parts, "--profile")
	}
	parts = append(parts, "--v "+f.Version)
	if f.Sref != "" {
		parts = append(parts, "--sref "+f.Sref)
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

// VideoCommand renders the Midjourney /imagine command for a video lab state
func VideoCommand(f prompt.VideoFields) string {
	base := strings.TrimSpace("/imagine " + f.Idea)
	return fmt.Sprintf("%s --ar %s --motion %s --video 1", base, f.Aspect, f.Motion)
}
