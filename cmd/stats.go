package cmd

import (
	"fmt"

	"github.com/KaramelBytes/hubloom-cli/internal/importer"
	"github.com/spf13/cobra"
)

var statsJSON bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarise a hub's articles",
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := openHub(hubName)
		if err != nil {
			return err
		}
		defer h.Close()

		st, err := h.Stats(cmd.Context())
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		if statsJSON {
			return printJSON(w, st)
		}
		fmt.Fprintf(w, "Hub:            %s\n", h.Name)
		fmt.Fprintf(w, "Articles:       %d\n", st.Articles)
		for _, c := range []importer.Classification{importer.ClassArticle, importer.ClassGuide, importer.ClassToolReview} {
			fmt.Fprintf(w, "  %-13s %d\n", c.Label()+":", st.ByClassification[string(c)])
		}
		fmt.Fprintf(w, "Read time:      %d min total, %.1f min average\n", st.TotalReadMinutes, st.AverageReadMinutes)
		fmt.Fprintf(w, "With video:     %d (%d distinct videos)\n", st.WithVideo, st.DistinctVideos)
		if st.Drafts > 0 {
			fmt.Fprintf(w, "Drafts:         %d\n", st.Drafts)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	addHubFlag(statsCmd)
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "print stats as JSON")
}
