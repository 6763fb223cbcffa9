package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	exportFormat      string
	exportOutput      string
	exportEmbedVideos bool
	exportQuiet       bool
)

var exportCmd = &cobra.Command{
	Use:   "export <id-or-slug>",
	Short: "Export an article as markdown, HTML or JSON",
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
		return formatAndWriteOutput(a, outputOptions{
			Format:     exportFormat,
			OutputPath: exportOutput,
			Render:     renderOptions(exportEmbedVideos),
			Quiet:      exportQuiet,
			Writer:     cmd.OutOrStdout(),
		})
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	addHubFlag(exportCmd)
	exportCmd.Flags().StringVar(&exportFormat, "format", "md", "output format: md, html or json")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")
	exportCmd.Flags().BoolVar(&exportEmbedVideos, "embed-videos", true, "embed YouTube links in HTML exports")
	exportCmd.Flags().BoolVarP(&exportQuiet, "quiet", "q", false, "with -o, do not print the saved notice")
}
