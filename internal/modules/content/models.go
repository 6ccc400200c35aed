package content

import "time"

type BlogPost struct {
	ID          string     `gorm:"primaryKey;size:36" json:"id"`
	Slug        string     `gorm:"size:191;uniqueIndex" json:"slug"`
	Title       string     `gorm:"size:255" json:"title"`
	Excerpt     string     `gorm:"size:512" json:"excerpt"`
	Body        string     `gorm:"type:text" json:"body"`
	ImageURL    string     `gorm:"size:512" json:"image_url,omitempty"`
	Published   bool       `gorm:"index" json:"published"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (BlogPost) TableName() string { return "blog_posts" }
