package models

import "time"

// Article is a learning article. Viewed and Liked are local state kept by the
// article cache and mirrored to the server on change.
type Article struct {
	ArticleID    int64     `json:"article_id"`
	Title        string    `json:"title"`
	Summary      string    `json:"summary"`
	URL          string    `json:"url"`
	Direction    Direction `json:"direction,omitempty"`
	TechnologyID int64     `json:"technology_id,omitempty"`
	PublishedAt  time.Time `json:"published_at"`
	Viewed       bool      `json:"viewed"`
	Liked        bool      `json:"liked"`
}

// ArticlesFilter narrows the article feed requested from the server.
type ArticlesFilter struct {
	Directions    []Direction `json:"directions,omitempty"`
	TechnologyIDs []int64     `json:"technology_ids,omitempty"`
	Limit         int         `json:"limit,omitempty"`
}
