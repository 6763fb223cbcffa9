package cmd

import (
	"fmt"

	"github.com/KaramelBytes/hubloom-cli/internal/render"
	"github.com/spf13/cobra"
)

var (
	showHTML        bool
	showEmbedVideos bool
)

var showCmd = &cobra.Command{
	Use:   "show <id-or-slug>",
	Short: "Show an article",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := openHub(hubName)
		if err != nil {
			return err
		}
		defer h.Close()

		a, err := h.Article(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		w := cmd.OutOrStdout()
		if showHTML {
			out, err := render.New(renderOptions(showEmbedVideos)).RenderHTML(a.Body)
			if err != nil {
				return err
			}
			_, err = w.Write(out)
			return err
		}
		printArticleSummary(w, a)
		fmt.Fprintln(w)
		fmt.Fprintln(w, a.Body)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	addHubFlag(showCmd)
	showCmd.Flags().BoolVar(&showHTML, "html", false, "print the body rendered as HTML")
	showCmd.Flags().BoolVar(&showEmbedVideos, "embed-videos", false, "with --html, embed bare YouTube links as players")
}
