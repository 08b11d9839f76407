package entities

import "time"

// Article is a growing guide surfaced in the chef portal, usually ingested
// from a whitelisted URL.
type Article struct {
	ArticleID uint      `gorm:"primaryKey" json:"article_id"`
	Title     string    `json:"title"`
	SourceURL string    `json:"source_url"`
	Tags      string    `json:"tags"`
	Lang      string    `json:"lang"` // en|de
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}
