package prompt

import (
	"fmt"
	"strings"
)

// Kind identifies which lab produced a document
type Kind string

const (
	KindStory   Kind = "story"
	KindImage   Kind = "image"
	KindVideo   Kind = "video"
	KindNotion  Kind = "notion"
	KindThreads Kind = "threads"
)

// Kinds lists every kind in menu order
var Kinds = []Kind{KindStory, KindImage, KindVideo, KindNotion, KindThreads}

// ParseKind parses a kind name, ignoring case
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown prompt kind: %q", s)
}

// Title returns the display label for the kind
func (k Kind) Title() string {
	switch k {
	case KindStory:
		return "Story"
	case KindImage:
		return "Image"
	case KindVideo:
		return "Video"
	case KindNotion:
		return "Notion"
	case KindThreads:
		return "Threads"
	default:
		return string(k)
	}
}

// NotionKind is one of the nine Notion output modes
type NotionKind string

const (
	NotionSummary         NotionKind = "summary"
	NotionTemplate        NotionKind = "template"
	NotionContent         NotionKind = "content"
	NotionTroubleshooting NotionKind = "troubleshooting"
	NotionTable           NotionKind = "table"
	NotionAutomation      NotionKind = "automation"
	NotionCollaboration   NotionKind = "collaboration"
	NotionFormula         NotionKind = "formula"
	NotionLearning        NotionKind = "learning"
)

// NotionKinds lists the Notion modes in tab order
var NotionKinds = []NotionKind{
	NotionSummary,
	NotionTemplate,
	NotionContent,
	NotionTroubleshooting,
	NotionTable,
	NotionAutomation,
	NotionCollaboration,
	NotionFormula,
	NotionLearning,
}

// ParseNotionKind parses a Notion mode. Unknown names fall back to summary.
func ParseNotionKind(s string) NotionKind {
	k := NotionKind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range NotionKinds {
		if k == known {
			return k
		}
	}
	return NotionSummary
}

// Title capitalises the mode name
func (k NotionKind) Title() string {
	if k == "" {
		return ""
	}
	return strings.ToUpper(string(k[:1])) + string(k[1:])
}

// Next returns the following mode, wrapping around
func (k NotionKind) Next() NotionKind {
	for i, known := range NotionKinds {
		if known == k {
			return NotionKinds[(i+1)%len(NotionKinds)]
		}
	}
	return NotionSummary
}

// Prev returns the preceding mode, wrapping around
func (k NotionKind) Prev() NotionKind {
	for i, known := range NotionKinds {
		if known == k {
			return NotionKinds[(i+len(NotionKinds)-1)%len(NotionKinds)]
		}
	}
	return NotionSummary
}
