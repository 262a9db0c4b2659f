package models

import (
	"strings"
	"time"
)

// Signal words allowed on the safety section. An empty value means the
// product carries no GHS signal word.
const (
	SignalWordDanger  = "Danger"
	SignalWordWarning = "Warning"
)

// Product represents a single product card and its technical data sheet.
// Almost every descriptive attribute is optional; template sections are
// gated by the Has* predicates below rather than by stored flags.
type Product struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	CategoryID uint   `gorm:"not null" json:"category_id"`
	Slug       string `gorm:"type:varchar(220);not null;unique" json:"slug"`
	Icon       string `gorm:"type:varchar(10);not null" json:"icon"`
	Name       string `gorm:"type:varchar(200);not null" json:"name"`

	// Basic identification
	BrandName       string `gorm:"type:varchar(200);default:''" json:"brand_name"`
	Manufacturer    string `gorm:"type:varchar(200);default:''" json:"manufacturer"`
	Description     string `gorm:"type:text;not null" json:"description"`
	FullDescription string `gorm:"type:text;default:''" json:"full_description"`
	SKU             string `gorm:"type:varchar(100);default:''" json:"sku"`
	CASNumber       string `gorm:"type:varchar(50);default:''" json:"cas_number"`
	HSCode          string `gorm:"type:varchar(50);default:''" json:"hs_code"`
	PackSizes       string `gorm:"type:text;default:''" json:"pack_sizes"`
	CountryOfOrigin string `gorm:"type:varchar(100);default:''" json:"country_of_origin"`

	// Chemical identification
	CommonNames       string `gorm:"type:text;default:''" json:"common_names"`
	MolecularFormula  string `gorm:"type:varchar(100);default:''" json:"molecular_formula"`
	MolecularWeight   string `gorm:"type:varchar(50);default:''" json:"molecular_weight"`
	StructureImage    string `gorm:"type:varchar(255);default:''" json:"structure_image"`
	PurityGrade       string `gorm:"type:varchar(100);default:''" json:"purity_grade"`
	IsTechnicalGrade  bool   `gorm:"default:false" json:"is_technical_grade"`
	IsIndustrialGrade bool   `gorm:"default:false" json:"is_industrial_grade"`
	IsAnalyticalGrade bool   `gorm:"default:false" json:"is_analytical_grade"`
	IsPharmaGrade     bool   `gorm:"default:false" json:"is_pharma_grade"`
	UNNumber          string `gorm:"type:varchar(20);default:''" json:"un_number"`

	// Safety & regulatory. HazardStatements and PrecautionaryStatements
	// hold one entry per line; HazardPictograms is comma separated.
	GHSClassification       string `gorm:"type:text;default:''" json:"ghs_classification"`
	HazardStatements        string `gorm:"type:text;default:''" json:"hazard_statements"`
	PrecautionaryStatements string `gorm:"type:text;default:''" json:"precautionary_statements"`
	HazardPictograms        string `gorm:"type:varchar(255);default:''" json:"hazard_pictograms"`
	SignalWord              string `gorm:"type:varchar(10);default:''" json:"signal_word"`
	SDSFile                 string `gorm:"type:varchar(255);default:''" json:"sds_file"`
	TransportClass          string `gorm:"type:varchar(100);default:''" json:"transport_class"`
	PackingGroup            string `gorm:"type:varchar(20);default:''" json:"packing_group"`
	FlashPoint              string `gorm:"type:varchar(100);default:''" json:"flash_point"`
	StorageConditions       string `gorm:"type:text;default:''" json:"storage_conditions"`
	HandlingInstructions    string `gorm:"type:text;default:''" json:"handling_instructions"`
	DisposalInformation     string `gorm:"type:text;default:''" json:"disposal_information"`
	RegulatoryCompliance    string `gorm:"type:text;default:''" json:"regulatory_compliance"`
	ISOCertification        string `gorm:"type:varchar(200);default:''" json:"iso_certification"`

	// Physical & chemical properties
	Appearance          string `gorm:"type:varchar(200);default:''" json:"appearance"`
	Odor                string `gorm:"type:varchar(200);default:''" json:"odor"`
	Density             string `gorm:"type:varchar(100);default:''" json:"density"`
	MeltingPoint        string `gorm:"type:varchar(100);default:''" json:"melting_point"`
	BoilingPoint        string `gorm:"type:varchar(100);default:''" json:"boiling_point"`
	Solubility          string `gorm:"type:varchar(200);default:''" json:"solubility"`
	PHValue             string `gorm:"type:varchar(50);default:''" json:"ph_value"`
	VaporPressure       string `gorm:"type:varchar(100);default:''" json:"vapor_pressure"`
	Viscosity           string `gorm:"type:varchar(100);default:''" json:"viscosity"`
	RefractiveIndex     string `gorm:"type:varchar(100);default:''" json:"refractive_index"`
	StabilityReactivity string `gorm:"type:text;default:''" json:"stability_reactivity"`

	// Application & usage
	PrimaryApplications string `gorm:"type:text;default:''" json:"primary_applications"`
	IndustryUsage       string `gorm:"type:text;default:''" json:"industry_usage"`
	RecommendedDosage   string `gorm:"type:text;default:''" json:"recommended_dosage"`
	CompatibleMaterials string `gorm:"type:text;default:''" json:"compatible_materials"`
	ShelfLife           string `gorm:"type:varchar(100);default:''" json:"shelf_life"`

	// Packaging & logistics. DangerousGoods is tri-state: nil means the
	// operator has not classified the product yet.
	NetWeight            string `gorm:"type:varchar(100);default:''" json:"net_weight"`
	GrossWeight          string `gorm:"type:varchar(100);default:''" json:"gross_weight"`
	PackagingType        string `gorm:"type:varchar(200);default:''" json:"packaging_type"`
	Dimensions           string `gorm:"type:varchar(200);default:''" json:"dimensions"`
	MOQ                  string `gorm:"type:varchar(100);default:''" json:"moq"`
	LeadTime             string `gorm:"type:varchar(100);default:''" json:"lead_time"`
	ShippingRestrictions string `gorm:"type:text;default:''" json:"shipping_restrictions"`
	DangerousGoods       *bool  `json:"dangerous_goods,omitempty"`

	// Commercial
	CustomerSupportContact string `gorm:"type:varchar(200);default:''" json:"customer_support_contact"`
	BatchTraceability      string `gorm:"type:text;default:''" json:"batch_traceability"`

	// SEO overrides. MetaKeywords is comma separated, H2Titles holds one
	// heading per line.
	SEOTitle        string `gorm:"type:varchar(200);default:''" json:"seo_title"`
	MetaKeywords    string `gorm:"type:text;default:''" json:"meta_keywords"`
	MetaDescription string `gorm:"type:text;default:''" json:"meta_description"`
	H1Title         string `gorm:"type:varchar(200);default:''" json:"h1_title"`
	H2Titles        string `gorm:"type:text;default:''" json:"h2_titles"`
	SEOContent      string `gorm:"type:text;default:''" json:"seo_content"`

	Order     uint      `gorm:"default:0" json:"order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Category     ProductCategory      `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Specs        []ProductSpec        `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"specs,omitempty"`
	Images       []ProductImage       `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
	Documents    []ProductDocument    `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"documents,omitempty"`
	FAQs         []ProductFAQ         `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"faqs,omitempty"`
	PricingTiers []ProductPricingTier `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"pricing_tiers,omitempty"`
}

// TableName specifies the table name for Product
func (Product) TableName() string {
	return "products"
}

// splitLines splits a newline-delimited text block into trimmed entries,
// dropping blanks. Order is preserved.
func splitLines(s string) []string {
	return splitAndTrim(s, "\n")
}

// splitCommas splits a comma-delimited value into trimmed entries,
// dropping blanks. Order is preserved.
func splitCommas(s string) []string {
	return splitAndTrim(s, ",")
}

func splitAndTrim(s, sep string) []string {
	items := []string{}
	for _, part := range strings.Split(s, sep) {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

// PackSizesList returns pack sizes one per stored line.
func (p *Product) PackSizesList() []string { return splitLines(p.PackSizes) }

// CommonNamesList returns synonyms one per stored line.
func (p *Product) CommonNamesList() []string { return splitLines(p.CommonNames) }

// HazardStatementsList returns hazard statements one per stored line.
func (p *Product) HazardStatementsList() []string { return splitLines(p.HazardStatements) }

// PrecautionaryStatementsList returns precautionary statements one per stored line.
func (p *Product) PrecautionaryStatementsList() []string {
	return splitLines(p.PrecautionaryStatements)
}

// HazardPictogramsList returns pictogram codes from the comma separated field.
func (p *Product) HazardPictogramsList() []string { return splitCommas(p.HazardPictograms) }

// MetaKeywordsList returns SEO keywords from the comma separated field.
func (p *Product) MetaKeywordsList() []string { return splitCommas(p.MetaKeywords) }

// H2TitlesList returns SEO H2 headings one per stored line.
func (p *Product) H2TitlesList() []string { return splitLines(p.H2Titles) }

func anyFilled(fields ...string) bool {
	for _, f := range fields {
		if f != "" {
			return true
		}
	}
	return false
}

// HasChemicalIdentification reports whether the chemical identification
// section has anything to render.
func (p *Product) HasChemicalIdentification() bool {
	return anyFilled(
		p.CommonNames, p.MolecularFormula, p.MolecularWeight,
		p.StructureImage, p.PurityGrade, p.UNNumber,
	) || p.IsTechnicalGrade || p.IsIndustrialGrade || p.IsAnalyticalGrade || p.IsPharmaGrade
}

// HasSafetyInfo reports whether the safety & regulatory section has
// anything to render.
func (p *Product) HasSafetyInfo() bool {
	return anyFilled(
		p.GHSClassification, p.HazardStatements, p.PrecautionaryStatements,
		p.HazardPictograms, p.SignalWord, p.SDSFile,
		p.TransportClass, p.PackingGroup, p.FlashPoint,
		p.StorageConditions, p.HandlingInstructions, p.DisposalInformation,
		p.RegulatoryCompliance, p.ISOCertification,
	)
}

// HasPhysicalProperties reports whether the physical & chemical properties
// section has anything to render.
func (p *Product) HasPhysicalProperties() bool {
	return anyFilled(
		p.Appearance, p.Odor, p.Density, p.MeltingPoint, p.BoilingPoint,
		p.Solubility, p.PHValue, p.VaporPressure, p.Viscosity,
		p.RefractiveIndex, p.StabilityReactivity,
	)
}

// HasApplicationInfo reports whether the application & usage section has
// anything to render.
func (p *Product) HasApplicationInfo() bool {
	return anyFilled(
		p.PrimaryApplications, p.IndustryUsage, p.RecommendedDosage,
		p.CompatibleMaterials, p.ShelfLife,
	)
}

// HasPackagingInfo reports whether the packaging & logistics section has
// anything to render.
func (p *Product) HasPackagingInfo() bool {
	return anyFilled(
		p.NetWeight, p.GrossWeight, p.PackagingType, p.Dimensions,
		p.MOQ, p.LeadTime, p.ShippingRestrictions,
	) || p.DangerousGoods != nil
}

// PrimaryImage resolves the image shown at the top of the product page:
// the first image flagged primary, else the first image by display order,
// else nil when the product has no images.
func (p *Product) PrimaryImage() *ProductImage {
	var first *ProductImage
	for i := range p.Images {
		img := &p.Images[i]
		if img.IsPrimary {
			return img
		}
		if first == nil || img.Order < first.Order ||
			(img.Order == first.Order && img.ID < first.ID) {
			first = img
		}
	}
	return first
}
