package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var hubCmd = &cobra.Command{
	Use:   "hub",
	Short: "Manage per-hub settings",
}

var hubSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a hub setting (description, excerpt_max_length, words_per_minute)",
	Long: `Set a hub setting. Numeric settings override the global configuration for
imports into this hub; 0 clears the override.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := openHub(hubName)
		if err != nil {
			return err
		}
		defer h.Close()
		if err := h.Set(args[0], args[1]); err != nil {
			return err
		}
		if err := h.Save(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Set %s for %s: %s\n", args[0], h.Name, args[1])
		return nil
	},
}

var hubShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show hub settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := openHub(hubName)
		if err != nil {
			return err
		}
		defer h.Close()
		w := cmd.OutOrStdout()
		eff := h.Effective()
		fmt.Fprintf(w, "name: %s\n", h.Name)
		fmt.Fprintf(w, "description: %s\n", h.Description)
		fmt.Fprintf(w, "path: %s\n", h.RootDir())
		fmt.Fprintf(w, "excerpt_max_length: %d%s\n", eff.ExcerptMaxLength, inherited(h.Settings.ExcerptMaxLength))
		fmt.Fprintf(w, "words_per_minute: %d%s\n", eff.WordsPerMinute, inherited(h.Settings.WordsPerMinute))
		return nil
	},
}

func inherited(v int) string {
	if v == 0 {
		return " (global)"
	}
	return ""
}

func init() {
	rootCmd.AddCommand(hubCmd)
	hubCmd.AddCommand(hubSetCmd)
	hubCmd.AddCommand(hubShowCmd)
	addHubFlag(hubSetCmd)
	addHubFlag(hubShowCmd)
}
