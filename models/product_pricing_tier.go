package models

// ProductPricingTier represents an indicative quantity-based pricing row.
// Quantities are free text on purpose so operators can enter values like
// "100+" or "1-5 drums".
type ProductPricingTier struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	ProductID   uint   `gorm:"not null" json:"product_id"`
	MinQuantity string `gorm:"type:varchar(50);default:''" json:"min_quantity"`
	MaxQuantity string `gorm:"type:varchar(50);default:''" json:"max_quantity"`
	PriceInfo   string `gorm:"type:varchar(200);not null" json:"price_info"`
	Order       uint   `gorm:"default:0" json:"order"`
}

// TableName specifies the table name for ProductPricingTier
func (ProductPricingTier) TableName() string {
	return "product_pricing_tiers"
}
