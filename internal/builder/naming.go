package builder

import (
	"fmt"
	"time"

	"github.com/sant0-9/promptcraft/internal/prompt"
)

// truncate cuts s to n runes and marks the cut with "..."
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

func clock(now time.Time) string {
	return now.Format("15:04")
}

// StoryName labels a story prompt by genre and task
func StoryName(genre, task string, now time.Time) string {
	if task == "" {
		task = "Untitled Task"
	}
	if genre != "" {
		return fmt.Sprintf("%s - %s (%s)", genre, truncate(task, 30), clock(now))
	}
	return fmt.Sprintf("%s (%s)", truncate(task, 40), clock(now))
}

// ImageName labels an image prompt by its subject
func ImageName(subject string, now time.Time) string {
	if subject == "" {
		return fmt.Sprintf("Image Prompt (%s)", clock(now))
	}
	return fmt.Sprintf("Image: %s (%s)", truncate(subject, 40), clock(now))
}

// VideoName labels a video prompt by its idea
func VideoName(idea string, now time.Time) string {
	if idea == "" {
		return fmt.Sprintf("Video Prompt (%s)", clock(now))
	}
	return fmt.Sprintf("Video: %s (%s)", truncate(idea, 40), clock(now))
}

// NotionName labels Notion content by output kind and source text
func NotionName(kind prompt.NotionKind, content string, now time.Time) string {
	return fmt.Sprintf("Notion %s: %s (%s)", kind.Title(), truncate(content, 30), clock(now))
}

// ThreadsName labels a threads prompt by its opening turn
func ThreadsName(turns []string, now time.Time) string {
	if len(turns) == 0 {
		return fmt.Sprintf("Threads Prompt (%s)", clock(now))
	}
	return fmt.Sprintf("Threads: %s (%s)", truncate(turns[0], 30), clock(now))
}
