package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sant0-9/promptcraft/internal/lab"
	"github.com/sant0-9/promptcraft/internal/prompt"
)

// Form flags set lab fields after extraction, the way editing the form does in the terminal UI
var (
	storyTask        string
	storyRules       []string
	storyGenre       string
	storySpecifics   string
	storyMaxWords    string
	storyMinWords    string
	storyMaxChapters string
	storyUniqueness  string

	imageMedium      string
	imageEnvironment string
	imageLighting    string
	imageColor       string
	imageMood        string
	imageComposition string
	imageVersion     string
	imageProfile     bool
	imageSref        string

	fieldAspect string
	videoMotion string
)

// fieldKinds maps each form flag to the labs that have the field
var fieldKinds = map[string][]prompt.Kind{
	"task":          {prompt.KindStory},
	"rule":          {prompt.KindStory},
	"genre":         {prompt.KindStory},
	"specifics":     {prompt.KindStory},
	"max-words":     {prompt.KindStory},
	"min-words":     {prompt.KindStory},
	"max-chapters":  {prompt.KindStory},
	"uniqueness":    {prompt.KindStory},
	"medium":        {prompt.KindImage},
	"environment":   {prompt.KindImage},
	"lighting":      {prompt.KindImage},
	"color":         {prompt.KindImage},
	"mood":          {prompt.KindImage},
	"composition":   {prompt.KindImage},
	"model-version": {prompt.KindImage},
	"profile":       {prompt.KindImage},
	"sref":          {prompt.KindImage},
	"aspect":        {prompt.KindImage, prompt.KindVideo},
	"motion":        {prompt.KindVideo},
}

func checkFieldFlags(cmd *cobra.Command, kind prompt.Kind) error {
	for name, kinds := range fieldKinds {
		if cmd.Flags().Changed(name) && !slices.Contains(kinds, kind) {
			return fmt.Errorf("--%s does not apply to %s", name, kind)
		}
	}
	return nil
}

// choice returns value when it is one of options
func choice(flag, value string, options []string) (string, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if !slices.Contains(options, value) {
		return "", fmt.Errorf("invalid --%s %q (valid: %s)", flag, value, strings.Join(options, ", "))
	}
	return value, nil
}

func applyFieldFlags(cmd *cobra.Command, kind prompt.Kind, s lab.State) (lab.State, error) {
	changed := cmd.Flags().Changed
	var err error

	switch kind {
	case prompt.KindStory:
		f := s.Story.Clone()
		if changed("task") {
			f.Task = storyTask
		}
		if changed("rule") {
			f.TaskRules = append([]string(nil), storyRules...)
		}
		if changed("genre") {
			f.Genre = storyGenre
		}
		if changed("specifics") {
			f.Specifics = storySpecifics
		}
		if changed("max-words") {
			f.MaxWords = prompt.ParseCount(storyMaxWords)
		}
		if changed("min-words") {
			f.MinWords = prompt.ParseCount(storyMinWords)
		}
		if changed("max-chapters") {
			f.MaxChapterPerOutput = prompt.ParseCount(storyMaxChapters)
		}
		if changed("uniqueness") {
			f.UniquenessLevel = prompt.ParseCount(storyUniqueness)
		}
		s.Story = f

	case prompt.KindImage:
		f := s.Image
		picks := []struct {
			flag    string
			value   string
			options []string
			field   *string
		}{
			{"medium", imageMedium, prompt.Mediums, &f.Medium},
			{"environment", imageEnvironment, prompt.Environments, &f.Environment},
			{"lighting", imageLighting, prompt.Lightings, &f.Lighting},
			{"color", imageColor, prompt.Colors, &f.Color},
			{"mood", imageMood, prompt.Moods, &f.Mood},
			{"composition", imageComposition, prompt.Compositions, &f.Composition},
			{"aspect", fieldAspect, prompt.ImageAspects, &f.Aspect},
			{"model-version", imageVersion, prompt.Versions, &f.Version},
		}
		for _, p := range picks {
			if !changed(p.flag) {
				continue
			}
			if *p.field, err = choice(p.flag, p.value, p.options); err != nil {
				return s, err
			}
		}
		if changed("profile") {
			f.Profile = imageProfile
		}
		if changed("sref") {
			f.Sref = strings.TrimSpace(imageSref)
		}
		s.Image = f

	case prompt.KindVideo:
		f := s.Video
		if changed("aspect") {
			if f.Aspect, err = choice("aspect", fieldAspect, prompt.VideoAspects); err != nil {
				return s, err
			}
		}
		if changed("motion") {
			if f.Motion, err = choice("motion", videoMotion, prompt.Motions); err != nil {
				return s, err
			}
		}
		s.Video = f
	}
	return s, nil
}

func addFieldFlags(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&storyTask, "task", "", "story: task sentence")
	fs.StringArrayVar(&storyRules, "rule", nil, "story: task rule, repeatable (replaces the defaults)")
	fs.StringVar(&storyGenre, "genre", "", "story: genre")
	fs.StringVar(&storySpecifics, "specifics", "", "story: plot specifics")
	fs.StringVar(&storyMaxWords, "max-words", "", "story: maximum words per chapter")
	fs.StringVar(&storyMinWords, "min-words", "", "story: minimum words per chapter")
	fs.StringVar(&storyMaxChapters, "max-chapters", "", "story: chapters per output")
	fs.StringVar(&storyUniqueness, "uniqueness", "", "story: uniqueness level")

	fs.StringVar(&imageMedium, "medium", "", "image: "+strings.Join(prompt.Mediums, ", "))
	fs.StringVar(&imageEnvironment, "environment", "", "image: "+strings.Join(prompt.Environments, ", "))
	fs.StringVar(&imageLighting, "lighting", "", "image: "+strings.Join(prompt.Lightings, ", "))
	fs.StringVar(&imageColor, "color", "", "image: "+strings.Join(prompt.Colors, ", "))
	fs.StringVar(&imageMood, "mood", "", "image: "+strings.Join(prompt.Moods, ", "))
	fs.StringVar(&imageComposition, "composition", "", "image: "+strings.Join(prompt.Compositions, ", "))
	fs.StringVar(&imageVersion, "model-version", "", "image: model version, 6 or 7")
	fs.BoolVar(&imageProfile, "profile", false, "image: add --profile")
	fs.StringVar(&imageSref, "sref", "", "image: style reference code, empty for none")

	fs.StringVar(&fieldAspect, "aspect", "", "image or video: aspect ratio")
	fs.StringVar(&videoMotion, "motion", "", "video: "+strings.Join(prompt.Motions, ", "))
}
