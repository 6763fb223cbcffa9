package cmd

import (
	"fmt"

	"github.com/KaramelBytes/hubloom-cli/internal/hub"
	"github.com/KaramelBytes/hubloom-cli/internal/importer"
	"github.com/spf13/cobra"
)

var (
	listHubs     bool
	listArticles bool
	listType     string
	listQuery    string
	listLimit    int
	listOffset   int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List hubs or articles",
	RunE: func(cmd *cobra.Command, args []string) error {
		if listHubs == listArticles { // either both true or both false
			return fmt.Errorf("specify exactly one of --hubs or --articles")
		}
		w := cmd.OutOrStdout()
		if listHubs {
			return listAllHubs(cmd)
		}

		f := hub.Filter{Query: listQuery, Limit: listLimit, Offset: listOffset}
		if listType != "" {
			c, err := importer.ParseClassification(listType)
			if err != nil {
				return err
			}
			f.Classification = c
		}
		h, err := openHub(hubName)
		if err != nil {
			return err
		}
		defer h.Close()

		articles, total, err := h.Articles(cmd.Context(), f)
		if err != nil {
			return err
		}
		if len(articles) == 0 {
			fmt.Fprintln(w, "(no articles)")
			return nil
		}
		for _, a := range articles {
			video := ""
			if a.MainVideo != "" {
				video = " ▶"
			}
			fmt.Fprintf(w, "- %s: %s [%s, %d min]%s\n", a.Slug, a.Title, classLabel(a.Classification), a.ReadMinutes, video)
		}
		start := listOffset + 1
		if listOffset < 0 {
			start = 1
		}
		fmt.Fprintf(w, "Showing %d-%d of %d\n", start, start+len(articles)-1, total)
		return nil
	},
}

func listAllHubs(cmd *cobra.Command) error {
	w := cmd.OutOrStdout()
	root, err := defaultHubsDir()
	if err != nil {
		return err
	}
	names, err := hub.Names(root)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Fprintln(w, "(no hubs)")
		return nil
	}
	for _, name := range names {
		fmt.Fprintf(w, "- %s\n", name)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(listCmd)
	addHubFlag(listCmd)
	listCmd.Flags().BoolVar(&listHubs, "hubs", false, "list hubs")
	listCmd.Flags().BoolVar(&listArticles, "articles", false, "list articles in a hub")
	listCmd.Flags().StringVar(&listType, "type", "", "filter by type: article, guide or tool_review")
	listCmd.Flags().StringVarP(&listQuery, "query", "q", "", "filter by title substring")
	listCmd.Flags().IntVar(&listLimit, "limit", 0, "maximum number of articles (0 = all)")
	listCmd.Flags().IntVar(&listOffset, "offset", 0, "number of articles to skip")
}
