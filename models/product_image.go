package models

// ProductImage represents a gallery image on the product detail page.
// Image holds an opaque storage path resolved by the file storage provider.
// At most one image per product is expected to carry IsPrimary, but this is
// a convention rather than a database constraint; PrimaryImage on Product
// handles the fallbacks.
type ProductImage struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ProductID uint   `gorm:"not null" json:"product_id"`
	Image     string `gorm:"type:varchar(255);not null" json:"image"`
	AltText   string `gorm:"type:varchar(200);default:''" json:"alt_text"`
	IsPrimary bool   `gorm:"default:false" json:"is_primary"`
	Order     uint   `gorm:"default:0" json:"order"`
}

// TableName specifies the table name for ProductImage
func (ProductImage) TableName() string {
	return "product_images"
}
