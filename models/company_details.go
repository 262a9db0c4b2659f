package models

import (
	"html"
	"html/template"
	"strings"
	"time"

	"gorm.io/gorm"
)

// companyDetailsID pins the singleton row
const companyDetailsID = 1

// googleMapsPrefixes is the allow-list for the maps embed. Anything not
// matching one of these prefixes renders as nothing at all.
var googleMapsPrefixes = []string{
	"https://www.google.com/maps/",
	"https://maps.google.com/",
	"https://www.google.com/maps?",
}

// CompanyDetails is a singleton record holding branding, contact and
// statutory information shown across every page.
type CompanyDetails struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Branding
	CompanyName      string `gorm:"type:varchar(200);not null;default:'Your Company Name'" json:"company_name"`
	CompanyLogo      string `gorm:"type:varchar(255);default:''" json:"company_logo"`
	CompanyNameImage string `gorm:"type:varchar(255);default:''" json:"company_name_image"`
	Tagline          string `gorm:"type:varchar(300);default:''" json:"tagline"`
	AboutShort       string `gorm:"type:text;default:''" json:"about_short"`

	// Phone numbers
	PhonePrimary   string `gorm:"type:varchar(30);default:''" json:"phone_primary"`
	PhoneSecondary string `gorm:"type:varchar(30);default:''" json:"phone_secondary"`
	PhoneExport    string `gorm:"type:varchar(30);default:''" json:"phone_export"`

	// Email addresses
	EmailGeneral string `gorm:"type:varchar(200);default:''" json:"email_general"`
	EmailSales   string `gorm:"type:varchar(200);default:''" json:"email_sales"`
	EmailExport  string `gorm:"type:varchar(200);default:''" json:"email_export"`
	EmailSupport string `gorm:"type:varchar(200);default:''" json:"email_support"`

	// Address
	AddressLine1 string `gorm:"type:varchar(200);default:''" json:"address_line1"`
	AddressLine2 string `gorm:"type:varchar(200);default:''" json:"address_line2"`
	City         string `gorm:"type:varchar(100);default:''" json:"city"`
	State        string `gorm:"type:varchar(100);default:''" json:"state"`
	Country      string `gorm:"type:varchar(100);not null;default:'India'" json:"country"`
	Pincode      string `gorm:"type:varchar(20);default:''" json:"pincode"`

	// Legal / statutory
	GSTNumber string `gorm:"type:varchar(50);default:''" json:"gst_number"`
	PANNumber string `gorm:"type:varchar(50);default:''" json:"pan_number"`
	CINNumber string `gorm:"type:varchar(50);default:''" json:"cin_number"`
	IECCode   string `gorm:"type:varchar(50);default:''" json:"iec_code"`

	// Social media & web
	WebsiteURL     string `gorm:"type:varchar(255);default:''" json:"website_url"`
	LinkedInURL    string `gorm:"type:varchar(255);default:''" json:"linkedin_url"`
	FacebookURL    string `gorm:"type:varchar(255);default:''" json:"facebook_url"`
	TwitterURL     string `gorm:"type:varchar(255);default:''" json:"twitter_url"`
	InstagramURL   string `gorm:"type:varchar(255);default:''" json:"instagram_url"`
	YouTubeURL     string `gorm:"type:varchar(255);default:''" json:"youtube_url"`
	WhatsAppNumber string `gorm:"type:varchar(30);default:''" json:"whatsapp_number"`

	// Other
	YearEstablished string    `gorm:"type:varchar(10);default:''" json:"year_established"`
	GoogleMapsEmbed string    `gorm:"type:varchar(500);default:''" json:"google_maps_embed"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TableName specifies the table name for CompanyDetails
func (CompanyDetails) TableName() string {
	return "company_details"
}

// LoadCompanyDetails fetches the singleton company record, creating it with
// default values on a fresh database.
func LoadCompanyDetails(db *gorm.DB) (*CompanyDetails, error) {
	company := CompanyDetails{
		ID:          companyDetailsID,
		CompanyName: "Your Company Name",
		Country:     "India",
	}
	err := db.Where(CompanyDetails{ID: companyDetailsID}).
		Attrs(company).
		FirstOrCreate(&company).Error
	if err != nil {
		return nil, err
	}
	return &company, nil
}

// SafeGoogleMapsIframe renders the stored maps embed URL as an iframe, but
// only when the URL starts with a known Google Maps origin. Operator input
// reaches the public page here, so anything else yields empty markup
// rather than an error.
func (c *CompanyDetails) SafeGoogleMapsIframe() template.HTML {
	url := strings.TrimSpace(c.GoogleMapsEmbed)
	if url == "" {
		return ""
	}
	allowed := false
	for _, prefix := range googleMapsPrefixes {
		if strings.HasPrefix(url, prefix) {
			allowed = true
			break
		}
	}
	if !allowed {
		return ""
	}
	return template.HTML(
		`<iframe src="` + html.EscapeString(url) + `"` +
			` width="100%" height="350" style="border:0;" allowfullscreen=""` +
			` loading="lazy" referrerpolicy="no-referrer-when-downgrade"></iframe>`,
	)
}
