package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove <id-or-slug>",
	Short: "Remove an article from a hub",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := openHub(hubName)
		if err != nil {
			return err
		}
		defer h.Close()

		a, err := h.Remove(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Removed %s (%s)\n", a.Slug, a.Title)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
	addHubFlag(removeCmd)
}
