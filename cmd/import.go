package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/KaramelBytes/hubloom-cli/internal/hub"
	"github.com/spf13/cobra"
)

var (
	importDesc    string
	importDryRun  bool
	importReplace bool
	importJSON    bool
)

var importCmd = &cobra.Command{
	Use:   "import <file>...",
	Short: "Import documents into a hub",
	Long: `Import parses each file (markdown, text or HTML), derives its title, excerpt,
video references, content type and read time, and stores it in the hub.
Validation findings are printed as warnings and never block an import.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := openHub(hubName)
		if err != nil {
			return err
		}
		defer h.Close()

		w := cmd.OutOrStdout()
		opts := hub.ImportOptions{Description: importDesc, DryRun: importDryRun, Replace: importReplace}
		var results []*hub.ImportResult
		failed := 0
		for _, file := range args {
			res, err := h.ImportFile(cmd.Context(), file, opts)
			if err != nil {
				failed++
				fmt.Fprintf(w, "✗ %s: %v\n", filepath.Base(file), err)
				continue
			}
			results = append(results, res)
			if importJSON {
				continue
			}
			verb := "Imported"
			switch {
			case res.DryRun:
				verb = "Would import"
			case res.Updated:
				verb = "Updated"
			}
			a := res.Article
			fmt.Fprintf(w, "✓ %s %s → %s [%s, %d min read]\n",
				verb, filepath.Base(file), a.Slug, classLabel(a.Classification), a.ReadMinutes)
			for _, v := range res.Validation.Violations {
				fmt.Fprintf(w, "  ⚠ Warning: %s\n", v)
			}
		}
		if importJSON {
			if results == nil {
				results = []*hub.ImportResult{}
			}
			if err := printJSON(w, results); err != nil {
				return err
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d files failed to import", failed, len(args))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
	addHubFlag(importCmd)
	importCmd.Flags().StringVar(&importDesc, "desc", "", "description stored with each article")
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "parse and report without storing")
	importCmd.Flags().BoolVar(&importReplace, "replace", false, "update the article previously imported from the same file")
	importCmd.Flags().BoolVar(&importJSON, "json", false, "print results as JSON")
}
