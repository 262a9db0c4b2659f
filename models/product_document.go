package models

// Document types attachable to a product
const (
	DocTypeCOA    = "COA"
	DocTypeTDS    = "TDS"
	DocTypeSDS    = "SDS"
	DocTypeMSDS   = "MSDS"
	DocTypeISO    = "ISO"
	DocTypeGMP    = "GMP"
	DocTypeHalal  = "HALAL"
	DocTypeKosher = "KOSHER"
	DocTypeOther  = "OTHER"
)

// docTypeIcons maps each document type to its Bootstrap icon class
var docTypeIcons = map[string]string{
	DocTypeCOA:    "bi-patch-check",
	DocTypeTDS:    "bi-file-earmark-text",
	DocTypeSDS:    "bi-shield-exclamation",
	DocTypeMSDS:   "bi-shield-exclamation",
	DocTypeISO:    "bi-award",
	DocTypeGMP:    "bi-award",
	DocTypeHalal:  "bi-patch-check",
	DocTypeKosher: "bi-patch-check",
	DocTypeOther:  "bi-file-earmark",
}

// ProductDocument represents a downloadable certificate or data sheet.
// File holds an opaque storage path resolved by the file storage provider.
type ProductDocument struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ProductID uint   `gorm:"not null" json:"product_id"`
	Title     string `gorm:"type:varchar(200);not null" json:"title"`
	DocType   string `gorm:"type:varchar(10);not null;default:'OTHER'" json:"doc_type"`
	File      string `gorm:"type:varchar(255);not null" json:"file"`
	Order     uint   `gorm:"default:0" json:"order"`
}

// TableName specifies the table name for ProductDocument
func (ProductDocument) TableName() string {
	return "product_documents"
}

// Icon returns the icon class for the document's type, falling back to the
// generic file icon for unknown types.
func (d *ProductDocument) Icon() string {
	if icon, ok := docTypeIcons[d.DocType]; ok {
		return icon
	}
	return docTypeIcons[DocTypeOther]
}
