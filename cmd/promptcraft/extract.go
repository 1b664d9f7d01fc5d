package main

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/sant0-9/promptcraft/internal/input"
	"github.com/sant0-9/promptcraft/internal/lab"
	"github.com/sant0-9/promptcraft/internal/output"
	"github.com/sant0-9/promptcraft/internal/prompt"
)

var (
	extractNotionKind string
	extractFile       string
	extractSave       bool
	extractJSON       bool
	extractDelay      time.Duration
)

var extractCmd = &cobra.Command{
	Use:   "extract <kind> [text]",
	Short: "Generate a prompt from text",
	Long: `Run a lab's extraction rules over text and print the result.

Text is read from --file, or from stdin when it is not given as arguments. With -o json or
-o yaml the full library document is printed instead of the prompt.

The story, image and video form fields can be set with flags. They are applied after
extraction, so they win over what the rules picked from the text. Counts accept the same
input as the form: a leading run of digits, anything else is 0.

Examples:
  promptcraft extract image "a dog eating a hamburger in the city, neon"
  promptcraft extract story --save < idea.txt
  promptcraft extract threads --file chat.txt
  promptcraft extract notion --notion-kind table "name: Ada"
  promptcraft extract image --medium sketch --aspect 1:1 "a lighthouse at dusk"
  promptcraft extract story --genre noir --rule "no flashbacks" --max-words 800 < idea.txt`,
	Args:      cobra.MinimumNArgs(1),
	ValidArgs: []string{"story", "image", "video", "notion", "threads"},
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := prompt.ParseKind(args[0])
		if err != nil {
			return err
		}
		notionKind := prompt.NotionKind(strings.ToLower(strings.TrimSpace(extractNotionKind)))
		if !slices.Contains(prompt.NotionKinds, notionKind) {
			return fmt.Errorf("unknown notion kind %q", extractNotionKind)
		}
		if err := checkFieldFlags(cmd, kind); err != nil {
			return err
		}

		text := strings.Join(args[1:], " ")
		if extractFile != "" && text != "" {
			return fmt.Errorf("give either text or --file, not both")
		}

		e, err := setup()
		if err != nil {
			return err
		}
		defer e.Close()
		if extractJSON {
			e.format = output.FormatJSON
		}

		if extractFile != "" {
			in, err := input.Load(extractFile)
			if err != nil {
				return err
			}
			e.logger.Info("loaded input",
				"path", in.Metadata.SourcePath,
				"size", in.Metadata.FileSizeHuman(),
				"words", in.Metadata.WordCount,
			)
			text = in.Content
		} else if text == "" {
			b, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
			text = strings.TrimRight(string(b), "\r\n")
		}

		s := lab.NewState()
		s.Image.Version = e.config.ImageVersion
		s.Image.Profile = e.config.ImageProfile
		s.Notion.Kind = notionKind

		if err := wait(cmd.Context(), extractDelay); err != nil {
			return err
		}

		s, err = lab.Extract(kind, text, s)
		if err != nil {
			return err
		}
		if s, err = applyFieldFlags(cmd, kind, s); err != nil {
			return err
		}
		e.logger.Debug("extracted", "kind", kind, "input_len", len(text))

		if !extractSave && !e.format.Structured() {
			out, err := s.Output(kind)
			if err != nil {
				return err
			}
			return output.Write(cmd.OutOrStdout(), output.FormatText, out)
		}

		doc, err := lab.Build(kind, s, time.Now())
		if err != nil {
			return err
		}
		if extractSave {
			if err := e.library.Save(doc); err != nil {
				return err
			}
			e.logger.Info("saved from cli", "id", doc.ID, "kind", kind)
		}

		if e.format.Structured() {
			return output.Write(cmd.OutOrStdout(), e.format, doc)
		}
		out, err := s.Output(kind)
		if err != nil {
			return err
		}
		if err := output.Write(cmd.OutOrStdout(), output.FormatText, out); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Saved %q (%s)\n", doc.Name, doc.ID)
		return nil
	},
}

// wait sleeps for d unless ctx ends first
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

func init() {
	extractCmd.Flags().StringVar(&extractNotionKind, "notion-kind", string(prompt.NotionSummary), "notion output type")
	extractCmd.Flags().StringVarP(&extractFile, "file", "f", "", "read the text from a file")
	extractCmd.Flags().BoolVar(&extractSave, "save", false, "save the result to the library")
	extractCmd.Flags().BoolVar(&extractJSON, "json", false, "print the library document as JSON (same as -o json)")
	extractCmd.Flags().DurationVar(&extractDelay, "delay", 0, "wait before generating, like the terminal UI")
	addFieldFlags(extractCmd)
}
