package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/sant0-9/promptcraft/internal/builder"
	"github.com/sant0-9/promptcraft/internal/library"
	"github.com/sant0-9/promptcraft/internal/output"
	"github.com/sant0-9/promptcraft/internal/prompt"
)

var listNotion bool

var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Saved prompt commands",
	Long: `Library commands read and change the saved prompt files.

Prompts from the story, image, video and threads labs share one file; Notion
content has its own. Use --notion to list or search it.

Examples:
  promptcraft library list
  promptcraft library search fantasy
  promptcraft library show <id> -o yaml`,
}

var libraryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved prompts, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSearch(cmd, "")
	},
}

var librarySearchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Find prompts by name, genre or task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSearch(cmd, args[0])
	},
}

var libraryShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a saved prompt",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup()
		if err != nil {
			return err
		}
		defer e.Close()

		doc, _, err := e.library.Find(args[0])
		if err != nil {
			return err
		}
		if e.format.Structured() {
			return output.Write(cmd.OutOrStdout(), e.format, doc)
		}
		text, err := builder.Render(doc)
		if err != nil {
			return err
		}
		return output.Write(cmd.OutOrStdout(), output.FormatText, text)
	},
}

var libraryDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved prompt",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup()
		if err != nil {
			return err
		}
		defer e.Close()

		doc, store, err := e.library.Find(args[0])
		if err != nil {
			return err
		}
		if err := store.Delete(doc.ID); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %q\n", doc.Name)
		return nil
	},
}

var libraryCopyCmd = &cobra.Command{
	Use:   "copy <id>",
	Short: "Copy a saved prompt to the clipboard",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup()
		if err != nil {
			return err
		}
		defer e.Close()

		doc, _, err := e.library.Find(args[0])
		if err != nil {
			return err
		}
		text, err := builder.Render(doc)
		if err != nil {
			return err
		}
		if err := clipboard.WriteAll(text); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Copied %q\n", doc.Name)
		return nil
	},
}

func runSearch(cmd *cobra.Command, term string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	defer e.Close()

	store := e.library.Prompts
	if listNotion {
		store = e.library.Notion
	}
	docs := store.Search(term)

	if e.format.Structured() {
		return output.Write(cmd.OutOrStdout(), e.format, docs)
	}
	printDocuments(cmd, store, docs)
	return nil
}

func printDocuments(cmd *cobra.Command, store *library.Store, docs []prompt.Document) {
	if len(docs) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No prompts in %s\n", store.Path())
		return
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tKIND\tCREATED\tNAME")
	for _, d := range docs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", d.ID, d.Kind, d.CreatedAt.Local().Format("2006-01-02 15:04"), d.Name)
	}
	w.Flush()
}

func init() {
	libraryCmd.PersistentFlags().BoolVar(&listNotion, "notion", false, "use the Notion library")

	libraryCmd.AddCommand(libraryListCmd)
	libraryCmd.AddCommand(librarySearchCmd)
	libraryCmd.AddCommand(libraryShowCmd)
	libraryCmd.AddCommand(libraryDeleteCmd)
	libraryCmd.AddCommand(libraryCopyCmd)
}
