package models

import "time"

// ProductArticle represents an editorial article in the articles section.
// Only published articles are visible on the public site; drafts behave
// exactly like missing records for every public lookup.
type ProductArticle struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Slug        string    `gorm:"type:varchar(220);not null;unique" json:"slug"`
	Title       string    `gorm:"type:varchar(200);not null" json:"title"`
	Excerpt     string    `gorm:"type:text;default:''" json:"excerpt"`
	Body        string    `gorm:"type:text;default:''" json:"body"`
	IsPublished bool      `gorm:"default:false" json:"is_published"`
	PublishedAt time.Time `json:"published_at"`
	Order       uint      `gorm:"default:0" json:"order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relationships
	PromotedProducts []Product `gorm:"many2many:article_promoted_products" json:"promoted_products,omitempty"`
}

// TableName specifies the table name for ProductArticle
func (ProductArticle) TableName() string {
	return "product_articles"
}
