package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func execute(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	return run(t, append([]string{
		"--config", filepath.Join(dir, "config.yaml"),
		"--data-dir", dir,
	}, args...)...)
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

// resetFlags puts every flag back to its default so one run does not leak into the next
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if v, ok := f.Value.(pflag.SliceValue); ok {
			_ = v.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func TestExtractPrintsPrompt(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, dir, "extract", "video", "-o", "text", "--save=false", "--json=false", "a vertical clip of slow rain")
	if err != nil {
		t.Fatalf("extract error = %v", err)
	}
	want := "/imagine a vertical clip of slow rain --ar 9:16 --motion low --video 1\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestExtractSaveAndList(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, dir, "extract", "threads", "-o", "json", "--save", "--json=false", "Alice: hi\nBob: hello")
	if err != nil {
		t.Fatalf("extract error = %v", err)
	}

	var doc struct {
		ID   string `json:"id"`
		Kind string `json:"kind"`
	}
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("output is not a document: %v\n%s", err, out)
	}
	if doc.Kind != "threads" || doc.ID == "" {
		t.Errorf("document = %+v", doc)
	}

	out, err = execute(t, dir, "library", "list", "-o", "text", "--notion=false")
	if err != nil {
		t.Fatalf("list error = %v", err)
	}
	if !strings.Contains(out, doc.ID) {
		t.Errorf("list missing %s:\n%s", doc.ID, out)
	}

	out, err = execute(t, dir, "library", "show", doc.ID, "-o", "text")
	if err != nil {
		t.Fatalf("show error = %v", err)
	}
	if !strings.Contains(out, "Alice: hi\n\nBob: hello") {
		t.Errorf("show output:\n%s", out)
	}

	if _, err := execute(t, dir, "library", "delete", doc.ID, "-o", "text"); err != nil {
		t.Fatalf("delete error = %v", err)
	}
	if _, err := execute(t, dir, "library", "show", doc.ID, "-o", "text"); err == nil {
		t.Error("show after delete should fail")
	}
}

func TestExtractRejectsUnknownKind(t *testing.T) {
	if _, err := execute(t, t.TempDir(), "extract", "poem", "hello"); err == nil {
		t.Error("extract poem should fail")
	}
}

func TestExtractBlankInput(t *testing.T) {
	rootCmd.SetIn(strings.NewReader("   \n"))
	defer rootCmd.SetIn(nil)

	if _, err := execute(t, t.TempDir(), "extract", "story", "-o", "text", "--save=false", "--json=false"); err == nil {
		t.Error("blank stdin should fail")
	}
}

func TestExtractFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "idea.txt")
	if err := os.WriteFile(path, []byte("a square loop of waves\n"), 0644); err != nil {
		t.Fatal(err)
	}
	out, err := execute(t, dir, "extract", "video", "-o", "text", "--save=false", "--json=false", "--file", path)
	if err != nil {
		t.Fatalf("extract error = %v", err)
	}
	want := "/imagine a square loop of waves --ar 1:1 --motion high --video 1\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestExtractFromFileLogsInput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "idea.txt")
	if err := os.WriteFile(path, []byte("one two three\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := execute(t, dir, "extract", "video", "-o", "text", "--file", path); err != nil {
		t.Fatalf("extract error = %v", err)
	}

	logs, err := filepath.Glob(filepath.Join(dir, "logs", "*.log"))
	if err != nil || len(logs) == 0 {
		t.Fatalf("no log files in %s", dir)
	}
	var all strings.Builder
	for _, l := range logs {
		b, err := os.ReadFile(l)
		if err != nil {
			t.Fatal(err)
		}
		all.Write(b)
	}
	for _, want := range []string{"loaded input", "words=3", "size=\"14 B\""} {
		if !strings.Contains(all.String(), want) {
			t.Errorf("log missing %s:\n%s", want, all.String())
		}
	}
}

func TestExtractStoryFlags(t *testing.T) {
	out, err := execute(t, t.TempDir(), "extract", "story", "-o", "json",
		"--genre", "noir",
		"--task", "Write a short mystery",
		"--rule", "be brief", "--rule", "",
		"--max-words", "300abc",
		"--min-words=-5",
		"--max-chapters", " 2 ",
		"--uniqueness", "x",
		"a detective in the rain")
	if err != nil {
		t.Fatalf("extract error = %v", err)
	}

	var doc struct {
		Data struct {
			Task      string   `json:"task"`
			TaskRules []string `json:"taskRules"`
			Story     struct {
				Genre    string `json:"genre"`
				Chapters struct {
					MaxWords            int `json:"maxWords"`
					MinWords            int `json:"minWords"`
					MaxChapterPerOutput int `json:"maxChapterPerOutput"`
					UniquenessLevel     int `json:"uniquenessLevel"`
				} `json:"chapters"`
			} `json:"story"`
		} `json:"data"`
	}
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("output is not a document: %v\n%s", err, out)
	}

	d := doc.Data
	if d.Task != "Write a short mystery" {
		t.Errorf("task = %q, want %q", d.Task, "Write a short mystery")
	}
	if len(d.TaskRules) != 1 || d.TaskRules[0] != "be brief" {
		t.Errorf("taskRules = %q, want [be brief]", d.TaskRules)
	}
	if d.Story.Genre != "noir" {
		t.Errorf("genre = %q, want noir", d.Story.Genre)
	}
	ch := d.Story.Chapters
	counts := []struct {
		name      string
		got, want int
	}{
		{"maxWords", ch.MaxWords, 300},
		{"minWords", ch.MinWords, 0},
		{"maxChapterPerOutput", ch.MaxChapterPerOutput, 2},
		{"uniquenessLevel", ch.UniquenessLevel, 0},
	}
	for _, c := range counts {
		if c.got != c.want {
			t.Errorf("%s = %d, want %d", c.name, c.got, c.want)
		}
	}
}

func TestExtractImageFlags(t *testing.T) {
	out, err := execute(t, t.TempDir(), "extract", "image", "-o", "json",
		"--medium", "Sketch",
		"--aspect", "1:1",
		"--model-version", "6",
		"--profile=false",
		"--sref=",
		"a lighthouse at dusk")
	if err != nil {
		t.Fatalf("extract error = %v", err)
	}

	var doc struct {
		Data struct {
			Command    string `json:"command"`
			Structured struct {
				Medium  string `json:"medium"`
				Aspect  string `json:"aspect"`
				Version string `json:"version"`
				Profile bool   `json:"profile"`
				Sref    string `json:"sref"`
			} `json:"structured"`
		} `json:"data"`
	}
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("output is not a document: %v\n%s", err, out)
	}

	st := doc.Data.Structured
	if st.Medium != "sketch" || st.Aspect != "1:1" || st.Version != "6" || st.Profile || st.Sref != "" {
		t.Errorf("structured = %+v", st)
	}
	if !strings.Contains(doc.Data.Command, "--ar 1:1 --v 6") || strings.Contains(doc.Data.Command, "--sref") {
		t.Errorf("command = %q", doc.Data.Command)
	}
}

func TestExtractVideoFlags(t *testing.T) {
	out, err := execute(t, t.TempDir(), "extract", "video", "-o", "text",
		"--aspect", "16:9", "--motion", "low", "a clip of waves")
	if err != nil {
		t.Fatalf("extract error = %v", err)
	}
	want := "/imagine a clip of waves --ar 16:9 --motion low --video 1\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestExtractRejectsBadFieldFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown medium", []string{"image", "--medium", "crayon", "a dog"}},
		{"image aspect on video", []string{"video", "--aspect", "4:5", "a dog"}},
		{"unknown motion", []string{"video", "--motion", "fast", "a dog"}},
		{"image flag on video", []string{"video", "--medium", "sketch", "a dog"}},
		{"story flag on image", []string{"image", "--genre", "noir", "a dog"}},
		{"video flag on story", []string{"story", "--motion", "low", "a dog"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"extract", "-o", "text"}, tt.args...)
			if _, err := execute(t, t.TempDir(), args...); err == nil {
				t.Errorf("extract %v should fail", tt.args)
			}
		})
	}
}

func TestExtractNotionKindIgnoresCase(t *testing.T) {
	out, err := execute(t, t.TempDir(), "extract", "notion", "-o", "json", "--notion-kind", "Table", "name: Ada")
	if err != nil {
		t.Fatalf("extract error = %v", err)
	}
	var doc struct {
		Data struct {
			Type string `json:"type"`
		} `json:"data"`
	}
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("output is not a document: %v\n%s", err, out)
	}
	if doc.Data.Type != "table" {
		t.Errorf("type = %q, want table", doc.Data.Type)
	}
}

func TestConfigInit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	if _, err := execute(t, dir, "config", "init"); err != nil {
		t.Fatalf("config init error = %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if !strings.Contains(string(b), "data_dir: "+dir) {
		t.Errorf("config file:\n%s", b)
	}

	if _, err := execute(t, dir, "config", "init"); err == nil {
		t.Error("config init should not replace an existing file")
	}
	if _, err := execute(t, dir, "config", "init", "--force"); err != nil {
		t.Errorf("config init --force error = %v", err)
	}

	out, err := execute(t, dir, "config", "show")
	if err != nil {
		t.Fatalf("config show error = %v", err)
	}
	for _, want := range []string{"# " + path, "theme: dark", "generation_delay: 1s"} {
		if !strings.Contains(out, want) {
			t.Errorf("config show missing %q:\n%s", want, out)
		}
	}
}

func TestConfigInitDefaultPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if _, err := run(t, "config", "init", "--data-dir", filepath.Join(home, "lib")); err != nil {
		t.Fatalf("config init error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(home, ".config", "promptcraft", "config.yaml")); err != nil {
		t.Errorf("default config not written: %v", err)
	}
	if _, err := run(t, "config", "init"); err == nil {
		t.Error("config init should not replace the default config")
	}
}
