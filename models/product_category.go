package models

import "time"

// ProductCategory represents the filter-nav categories on the products page
// (Industrial Chemicals, APIs, Specialty, ...). Categories flagged with
// ShowInOverview also appear as cards in the category-overview grid.
type ProductCategory struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	Slug                string    `gorm:"type:varchar(50);not null;unique" json:"slug"`
	Label               string    `gorm:"type:varchar(100);not null" json:"label"`
	IconClass           string    `gorm:"type:varchar(100);default:''" json:"icon_class"`
	OverviewTitle       string    `gorm:"type:varchar(150);default:''" json:"overview_title"`
	OverviewDescription string    `gorm:"type:text;default:''" json:"overview_description"`
	ShowInOverview      bool      `gorm:"default:false" json:"show_in_overview"`
	Order               uint      `gorm:"column:order;default:0" json:"order"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`

	// Relationships
	Products []Product `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"products,omitempty"`
}

// TableName specifies the table name for ProductCategory
func (ProductCategory) TableName() string {
	return "product_categories"
}
