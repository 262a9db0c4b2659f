package models

// ProductFAQ represents a question/answer pair on the product detail page
type ProductFAQ struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ProductID uint   `gorm:"not null" json:"product_id"`
	Question  string `gorm:"type:varchar(300);not null" json:"question"`
	Answer    string `gorm:"type:text;not null" json:"answer"`
	Order     uint   `gorm:"default:0" json:"order"`
}

// TableName specifies the table name for ProductFAQ
func (ProductFAQ) TableName() string {
	return "product_faqs"
}
