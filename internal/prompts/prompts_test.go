package prompts

import (
	"strings"
	"testing"
)

func TestNotionInput(t *testing.T) {
	in := NotionInput{Text: "abcdefghij", Limit: 5}
	if !in.Detailed() {
		t.Error("Detailed() = false, want true")
	}
	if got := in.Excerpt(); got != "abcde..." {
		t.Errorf("Excerpt() = %q, want %q", got, "abcde...")
	}

	short := NotionInput{Text: "abc", Limit: 5}
	if short.Detailed() {
		t.Error("Detailed() = true, want false")
	}
	if got := short.Excerpt(); got != "abc" {
		t.Errorf("Excerpt() = %q, want %q", got, "abc")
	}

	words := NotionInput{Text: "plan my weekly review"}
	if got := words.Lead(3); got != "plan my weekly" {
		t.Errorf("Lead(3) = %q, want %q", got, "plan my weekly")
	}
	if got := words.Lead(10); got != "plan my weekly review" {
		t.Errorf("Lead(10) = %q", got)
	}
}

func TestRenderNotionTemplates(t *testing.T) {
	for _, name := range []string{"template", "content", "troubleshooting", "automation", "collaboration", "learning"} {
		t.Run(name, func(t *testing.T) {
			if !HasNotionTemplate(name) {
				t.Fatalf("missing template %s", name)
			}
			out, err := RenderNotion(name, NotionInput{Text: "sync my reading list with calendar events", Limit: 30})
			if err != nil {
				t.Fatalf("RenderNotion() error = %v", err)
			}
			if !strings.HasPrefix(out, "## ") {
				t.Errorf("output should start with a heading, got %q", out[:20])
			}
			if strings.HasSuffix(out, "\n") {
				t.Error("output should not end with a newline")
			}
		})
	}
}

func TestBuildThreadsPrompt(t *testing.T) {
	got := BuildThreadsPrompt([]string{"A: hi", "B: yo"})
	want := ThreadsPreamble + "\n\nA: hi\n\nB: yo\n\n" + ThreadsClosing
	if got != want {
		t.Errorf("BuildThreadsPrompt() = %q, want %q", got, want)
	}
}
