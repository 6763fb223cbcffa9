package store

import "time"

// Article is a stored, imported document.
type Article struct {
	ID             string    `json:"id"`
	Slug           string    `json:"slug"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	Excerpt        string    `json:"excerpt"`
	Body           string    `json:"body"`
	Classification string    `json:"classification"`
	ReadMinutes    int       `json:"read_minutes"`
	VideoIDs       []string  `json:"video_ids"`
	MainVideo      string    `json:"main_video,omitempty"`
	SourcePath     string    `json:"source_path,omitempty"`
	Author         string    `json:"author,omitempty"`
	Tags           []string  `json:"tags,omitempty"`
	Draft          bool      `json:"draft,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ListOptions filters and paginates ListArticles.
type ListOptions struct {
	Classification string
	Query          string // case-insensitive title substring
	Limit          int    // 0 means no limit
	Offset         int
}
