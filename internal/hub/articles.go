package hub

import (
	"context"
	"errors"
	"math"

	"github.com/KaramelBytes/hubloom-cli/internal/importer"
	"github.com/KaramelBytes/hubloom-cli/internal/store"
)

// Filter narrows Articles.
type Filter struct {
	Classification importer.Classification
	Query          string
	Limit          int
	Offset         int
}

func (f Filter) listOptions() store.ListOptions {
	return store.ListOptions{
		Classification: string(f.Classification),
		Query:          f.Query,
		Limit:          f.Limit,
		Offset:         f.Offset,
	}
}

// Article resolves ref as an article ID, then as a slug.
func (h *Hub) Article(ctx context.Context, ref string) (*store.Article, error) {
	db, err := h.open(ctx)
	if err != nil {
		return nil, err
	}
	a, err := db.GetArticle(ctx, ref)
	if errors.Is(err, store.ErrNotFound) {
		a, err = db.GetArticleBySlug(ctx, ref)
	}
	return a, err
}

// Articles returns one page of matching articles and the unpaginated total.
func (h *Hub) Articles(ctx context.Context, f Filter) ([]*store.Article, int, error) {
	db, err := h.open(ctx)
	if err != nil {
		return nil, 0, err
	}
	opts := f.listOptions()
	list, err := db.ListArticles(ctx, opts)
	if err != nil {
		return nil, 0, err
	}
	total, err := db.CountArticles(ctx, opts)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// Remove deletes the article matching ref and returns it.
func (h *Hub) Remove(ctx context.Context, ref string) (*store.Article, error) {
	a, err := h.Article(ctx, ref)
	if err != nil {
		return nil, err
	}
	if err := h.db.DeleteArticle(ctx, a.ID); err != nil {
		return nil, err
	}
	h.loggerFor(ctx).Info("removed article", "id", a.ID, "slug", a.Slug)
	return a, nil
}

// Stats summarises the hub's articles.
type Stats struct {
	Articles           int            `json:"articles"`
	ByClassification   map[string]int `json:"by_classification"`
	TotalReadMinutes   int            `json:"total_read_minutes"`
	AverageReadMinutes float64        `json:"average_read_minutes"`
	WithVideo          int            `json:"with_video"`
	DistinctVideos     int            `json:"distinct_videos"`
	Drafts             int            `json:"drafts"`
}

// Stats aggregates over every stored article.
func (h *Hub) Stats(ctx context.Context) (Stats, error) {
	list, _, err := h.Articles(ctx, Filter{})
	if err != nil {
		return Stats{}, err
	}
	return summarize(list), nil
}

func summarize(list []*store.Article) Stats {
	s := Stats{ByClassification: map[string]int{
		string(importer.ClassArticle):    0,
		string(importer.ClassGuide):      0,
		string(importer.ClassToolReview): 0,
	}}
	videos := map[string]struct{}{}
	for _, a := range list {
		s.Articles++
		s.ByClassification[a.Classification]++
		s.TotalReadMinutes += a.ReadMinutes
		if len(a.VideoIDs) > 0 {
			s.WithVideo++
		}
		for _, id := range a.VideoIDs {
			videos[id] = struct{}{}
		}
		if a.Draft {
			s.Drafts++
		}
	}
	s.DistinctVideos = len(videos)
	if s.Articles > 0 {
		avg := float64(s.TotalReadMinutes) / float64(s.Articles)
		s.AverageReadMinutes = math.Round(avg*10) / 10
	}
	return s
}
