package extract

import (
	"regexp"
	"strings"

	"github.com/sant0-9/promptcraft/internal/prompt"
	"github.com/sant0-9/promptcraft/internal/prompts"
)

var speakerPattern = regexp.MustCompile(`^([\w\s]+):\s*(.*)$`)

// Threads groups a pasted conversation into speaker turns and wraps them
// in a continuation prompt.
//
// A "Name: text" line opens a new turn. Other lines continue the most recent
// turn once a speaker has been seen, and stand alone before that.
func Threads(input string) prompt.ThreadsFields {
	var (
		turns   []string
		speaker string
	)

	for _, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if m := speakerPattern.FindStringSubmatch(line); m != nil {
			speaker = strings.TrimSpace(m[1])
			turns = append(turns, speaker+": "+m[2])
			continue
		}

		if speaker != "" {
			turns[len(turns)-1] += "\n" + line
		} else {
			turns = append(turns, line)
		}
	}

	return prompt.ThreadsFields{
		Conversation: input,
		Turns:        turns,
		Prompt:       prompts.BuildThreadsPrompt(turns),
	}
}
