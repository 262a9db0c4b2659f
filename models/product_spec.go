package models

// ProductSpec represents a key-value specification row on a product card
type ProductSpec struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ProductID uint   `gorm:"not null" json:"product_id"`
	Label     string `gorm:"type:varchar(100);not null" json:"label"`
	Value     string `gorm:"type:varchar(200);not null" json:"value"`
	Order     uint   `gorm:"default:0" json:"order"`
}

// TableName specifies the table name for ProductSpec
func (ProductSpec) TableName() string {
	return "product_specs"
}
