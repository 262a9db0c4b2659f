package models

// AllModels returns all model structs for auto-migration
// IMPORTANT: Order matters! Parent tables must be created before child tables
func AllModels() []interface{} {
	return []interface{}{
		// 1. Independent tables (no foreign keys)
		&ProductCategory{},
		&CompanyDetails{},

		// 2. Tables with single dependencies
		&Product{}, // depends on: ProductCategory

		// 3. Child tables
		&ProductSpec{},        // depends on: Product
		&ProductImage{},       // depends on: Product
		&ProductDocument{},    // depends on: Product
		&ProductFAQ{},         // depends on: Product
		&ProductPricingTier{}, // depends on: Product

		// 4. Content tables (junction table for promoted products is
		// created by GORM from the many2many tag)
		&ProductArticle{},
	}
}
