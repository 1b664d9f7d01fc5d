package builder

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sant0-9/promptcraft/internal/prompt"
)

const (
	imageTask    = "Midjourney Image Prompt"
	imageGenre   = "Image"
	videoTask    = "Midjourney Video Prompt"
	videoGenre   = "Video"
	threadsTask  = "LLM Prompt"
	threadsGenre = "Conversation"
)

func newID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("failed to generate document id: %w", err)
	}
	return id.String(), nil
}

// Story builds a story document from the builder state
func Story(f prompt.StoryFields, now time.Time) (prompt.Document, error) {
	id, err := newID()
	if err != nil {
		return prompt.Document{}, err
	}
	return prompt.Document{
		ID:        id,
		Name:      StoryName(f.Genre, f.Task, now),
		CreatedAt: now,
		Kind:      prompt.KindStory,
		Data:      StoryPayload(f),
		Genre:     f.Genre,
		Task:      f.Task,
	}, nil
}

// Image builds an image command document
func Image(f prompt.ImageFields, now time.Time) (prompt.Document, error) {
	id, err := newID()
	if err != nil {
		return prompt.Document{}, err
	}
	return prompt.Document{
		ID:        id,
		Name:      ImageName(f.Subject, now),
		CreatedAt: now,
		Kind:      prompt.KindImage,
		Data: prompt.ImagePayload{
			Type:    string(prompt.KindImage),
			Command: ImageCommand(f),
			Structured: prompt.ImageStructured{
				Subject:     f.Subject,
				Medium:      f.Medium,
				Environment: f.Environment,
				Lighting:    f.Lighting,
				Color:       f.Color,
				Mood:        f.Mood,
				Composition: f.Composition,
				Aspect:      f.Aspect,
				Version:     f.Version,
				Profile:     f.Profile,
				Sref:        f.Sref,
			},
			Task:  imageTask,
			Story: prompt.GenreRef{Genre: imageGenre},
		},
		Genre: imageGenre,
		Task:  imageTask,
	}, nil
}

// Video builds a video command document
func Video(f prompt.VideoFields, now time.Time) (prompt.Document, error) {
	id, err := newID()
	if err != nil {
		return prompt.Document{}, err
	}
	return prompt.Document{
		ID:        id,
		Name:      VideoName(f.Idea, now),
		CreatedAt: now,
		Kind:      prompt.KindVideo,
		Data: prompt.VideoPayload{
			Type:    string(prompt.KindVideo),
			Command: VideoCommand(f),
			Flags: prompt.VideoFlags{
				Aspect: f.Aspect,
				Motion: f.Motion,
				Video:  1,
			},
			Task:  videoTask,
			Story: prompt.GenreRef{Genre: videoGenre},
		},
		Genre: videoGenre,
		Task:  videoTask,
	}, nil
}

// Notion builds a document holding generated Notion content
func Notion(f prompt.NotionFields, now time.Time) (prompt.Document, error) {
	id, err := newID()
	if err != nil {
		return prompt.Document{}, err
	}
	return prompt.Document{
		ID:        id,
		Name:      NotionName(f.Kind, f.Content, now),
		CreatedAt: now,
		Kind:      prompt.KindNotion,
		Data: prompt.NotionPayload{
			Content: f.Content,
			Summary: f.Output,
			Type:    f.Kind,
		},
	}, nil
}

// Threads builds a document from a converted conversation
func Threads(f prompt.ThreadsFields, now time.Time) (prompt.Document, error) {
	id, err := newID()
	if err != nil {
		return prompt.Document{}, err
	}
	return prompt.Document{
		ID:        id,
		Name:      ThreadsName(f.Turns, now),
		CreatedAt: now,
		Kind:      prompt.KindThreads,
		Data: prompt.ThreadsPayload{
			Conversation:    f.Conversation,
			GeneratedPrompt: f.Prompt,
		},
		Genre: threadsGenre,
		Task:  threadsTask,
	}, nil
}
