package importer

// ParsedDocument is the result of a single Parse call.
type ParsedDocument struct {
	Title          string         `json:"title"`
	Body           string         `json:"body"`
	Excerpt        string         `json:"excerpt"`
	VideoIDs       []string       `json:"video_ids"`
	Classification Classification `json:"classification"`
	ReadMinutes    int            `json:"read_minutes"`
}

// MainVideo returns the first referenced video, or "" when there is none.
func (d ParsedDocument) MainVideo() string {
	if len(d.VideoIDs) == 0 {
		return ""
	}
	return d.VideoIDs[0]
}

// Validation holds advisory pre-flight findings for a document.
type Validation struct {
	Valid      bool     `json:"valid"`
	Violations []string `json:"violations"`
}
