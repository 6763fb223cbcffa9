package cmd

import (
	"fmt"
	"strings"

	"github.com/KaramelBytes/hubloom-cli/internal/importer"
	"github.com/KaramelBytes/hubloom-cli/internal/parser"
	"github.com/spf13/cobra"
)

var inspectJSON bool

type inspectReport struct {
	File        string                  `json:"file"`
	Format      string                  `json:"format"`
	FrontMatter parser.FrontMatter      `json:"front_matter"`
	Parsed      importer.ParsedDocument `json:"parsed"`
	Scores      importer.Scores         `json:"scores"`
	Validation  importer.Validation     `json:"validation"`
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Parse a document and show what would be imported",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := parser.ParseFileWithLimit(args[0], maxFileBytes())
		if err != nil {
			return err
		}
		im := newImporter()
		rep := inspectReport{
			File:        args[0],
			Format:      src.Format,
			FrontMatter: src.Meta,
			Parsed:      im.Parse(src.Text),
			Scores:      im.Scores(src.Text),
			Validation:  im.Validate(src.Text),
		}
		logger.Debug("inspected document", "file", args[0], "format", src.Format,
			"guide_score", rep.Scores.Guide, "tool_review_score", rep.Scores.ToolReview)

		w := cmd.OutOrStdout()
		if inspectJSON {
			return printJSON(w, rep)
		}
		d := rep.Parsed
		fmt.Fprintf(w, "Title:          %s\n", d.Title)
		fmt.Fprintf(w, "Type:           %s (guide=%d, tool_review=%d)\n",
			d.Classification.Label(), rep.Scores.Guide, rep.Scores.ToolReview)
		fmt.Fprintf(w, "Read time:      %d min\n", d.ReadMinutes)
		fmt.Fprintf(w, "Excerpt:        %s\n", d.Excerpt)
		if len(d.VideoIDs) == 0 {
			fmt.Fprintln(w, "Videos:         (none)")
		} else {
			fmt.Fprintf(w, "Videos:         %s (main: %s)\n", strings.Join(d.VideoIDs, ", "), d.MainVideo())
		}
		if rep.Validation.Valid {
			fmt.Fprintln(w, "✓ Valid")
		}
		for _, v := range rep.Validation.Violations {
			fmt.Fprintf(w, "⚠ Warning: %s\n", v)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().BoolVar(&inspectJSON, "json", false, "print the report as JSON")
}
