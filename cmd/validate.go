package cmd

import (
	"fmt"

	"github.com/KaramelBytes/hubloom-cli/internal/parser"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Check documents against the import guidelines",
	Long: `Validate reports empty documents, documents under 100 characters, documents
without a heading and documents with fewer than 5 non-blank lines.
Exits non-zero when any file has findings.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		im := newImporter()
		invalid := 0
		for _, file := range args {
			src, err := parser.ParseFileWithLimit(file, maxFileBytes())
			if err != nil {
				invalid++
				fmt.Fprintf(w, "✗ %s: %v\n", file, err)
				continue
			}
			res := im.Validate(src.Text)
			if res.Valid {
				fmt.Fprintf(w, "✓ %s\n", file)
				continue
			}
			invalid++
			fmt.Fprintf(w, "✗ %s\n", file)
			for _, v := range res.Violations {
				fmt.Fprintf(w, "  - %s\n", v)
			}
		}
		if invalid > 0 {
			return fmt.Errorf("%d of %d files failed validation", invalid, len(args))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
