package prompt

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDocumentRoundTripKeepsKindAndTime(t *testing.T) {
	created := time.Date(2024, 3, 9, 14, 5, 7, 123456789, time.UTC)
	doc := Document{
		ID:        "abc",
		Name:      "Image: cat (14:05)",
		CreatedAt: created,
		Kind:      KindImage,
		Data: ImagePayload{
			Type:    "image",
			Command: "/imagine cat",
			Task:    "Midjourney Image Prompt",
			Story:   GenreRef{Genre: "Image"},
		},
		Genre: "Image",
		Task:  "Midjourney Image Prompt",
	}

	b, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var got Document
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if got.Kind != KindImage {
		t.Errorf("Kind = %v, want %v", got.Kind, KindImage)
	}
	if !got.CreatedAt.Equal(created) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, created)
	}
	img, ok := got.Data.(ImagePayload)
	if !ok {
		t.Fatalf("Data = %T, want ImagePayload", got.Data)
	}
	if img.Command != "/imagine cat" {
		t.Errorf("Command = %q, want %q", img.Command, "/imagine cat")
	}
}

func TestUnmarshalInfersLegacyKind(t *testing.T) {
	tests := []struct {
		name string
		data string
		want Kind
	}{
		{"story has no type", `{"task":"Act as a bard","taskRules":[],"story":{"genre":"Drama"}}`, KindStory},
		{"image type", `{"type":"image","command":"/imagine x"}`, KindImage},
		{"video type", `{"type":"video","command":"/imagine x"}`, KindVideo},
		{"threads shape", `{"conversation":"a: b","generatedPrompt":"p"}`, KindThreads},
		{"notion shape", `{"content":"c","summary":"s","type":"table"}`, KindNotion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := `{"id":"1","name":"n","createdAt":"2024-01-02T03:04:05.000Z","data":` + tt.data + `}`
			var d Document
			if err := json.Unmarshal([]byte(raw), &d); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if d.Kind != tt.want {
				t.Errorf("Kind = %v, want %v", d.Kind, tt.want)
			}
			if d.Data.Kind() != tt.want {
				t.Errorf("Data.Kind() = %v, want %v", d.Data.Kind(), tt.want)
			}
		})
	}
}

func TestUnmarshalRejectsBadTimestamp(t *testing.T) {
	raw := `{"id":"1","name":"n","createdAt":"yesterday","data":{}}`
	var d Document
	if err := json.Unmarshal([]byte(raw), &d); err == nil {
		t.Error("expected error for invalid createdAt")
	}
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"125", 125},
		{" 42 ", 42},
		{"12abc", 12},
		{"", 0},
		{"abc", 0},
		{"-5", 0},
		{"99999999999999999999999", 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseCount(tt.in); got != tt.want {
				t.Errorf("ParseCount(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestNotionKindCycle(t *testing.T) {
	k := NotionSummary
	for range NotionKinds {
		k = k.Next()
	}
	if k != NotionSummary {
		t.Errorf("after full cycle got %v, want %v", k, NotionSummary)
	}
	if NotionSummary.Prev() != NotionLearning {
		t.Errorf("Prev() = %v, want %v", NotionSummary.Prev(), NotionLearning)
	}
	if ParseNotionKind("TABLE") != NotionTable {
		t.Errorf("ParseNotionKind(TABLE) = %v", ParseNotionKind("TABLE"))
	}
	if ParseNotionKind("bogus") != NotionSummary {
		t.Errorf("ParseNotionKind(bogus) = %v, want summary", ParseNotionKind("bogus"))
	}
}
