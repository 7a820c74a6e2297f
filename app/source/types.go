package source

const (
	SourceHackerNews = "hackernews"
	SourceArxiv      = "arxiv"
)

// Story is a candidate topic gathered from one of the sources.
type Story struct {
	ID       int
	Title    string
	URL      string
	Score    int
	Comments int
	Source   string
	Context  string // readable excerpt of the linked page, when extracted
}

// Engagement is the ranking key: upvotes plus comments.
func (s Story) Engagement() int {
	return s.Score + s.Comments
}

// hnItem mirrors the fields of a Hacker News item the pipeline reads.
type hnItem struct {
	ID          int     `json:"id"`
	Title       *string `json:"title"`
	URL         string  `json:"url"`
	Score       int     `json:"score"`
	Descendants int     `json:"descendants"`
}
