package database

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Vasuishere/vasudevchemopharma/models"
)

type seedSpec struct {
	Label string
	Value string
}

type seedProduct struct {
	Icon         string
	CategorySlug string
	Name         string
	Description  string
	Specs        []seedSpec
}

var seedCategories = []models.ProductCategory{
	{
		Slug:                "industrial",
		Label:               "Industrial Chemicals",
		IconClass:           "bi bi-gear-fill",
		OverviewTitle:       "Industrial Chemicals",
		OverviewDescription: "Process chemicals for oil & gas, water treatment and manufacturing.",
		ShowInOverview:      true,
		Order:               1,
	},
	{
		Slug:                "api",
		Label:               "Pharmaceutical API Intermediates",
		IconClass:           "bi bi-capsule",
		OverviewTitle:       "Pharmaceutical APIs",
		OverviewDescription: "Active pharmaceutical ingredients in IP/BP/USP grades.",
		ShowInOverview:      true,
		Order:               2,
	},
	{
		Slug:                "specialty",
		Label:               "Specialty Chemicals",
		IconClass:           "bi bi-droplet-half",
		OverviewTitle:       "Specialty Chemicals",
		OverviewDescription: "High-purity intermediates for synthesis and research.",
		ShowInOverview:      true,
		Order:               3,
	},
}

var seedProducts = []seedProduct{
	{
		Icon:         "H2S",
		CategorySlug: "industrial",
		Name:         "MEA Triazine 78% H2S Scavenger",
		Description: "High-purity chemical for oil & gas industry applications, " +
			"effectively removing hydrogen sulfide from industrial processes.",
		Specs: []seedSpec{
			{"Purity", "78%"},
			{"Packaging", "200L Drums"},
			{"Application", "Oil & Gas"},
		},
	},
	{
		Icon:         "PTSA",
		CategorySlug: "industrial",
		Name:         "P-toluenesulfonic Acid",
		Description: "High-grade acid used in various industrial applications " +
			"including catalysis and chemical synthesis.",
		Specs: []seedSpec{
			{"Purity", "98%"},
			{"Packaging", "PP Bag"},
			{"Grade", "Industrial"},
		},
	},
	{
		Icon:         "CuS",
		CategorySlug: "industrial",
		Name:         "Copper Sulphate",
		Description: "Industrial grade copper sulphate for various applications " +
			"including agriculture, water treatment, and chemical processes.",
		Specs: []seedSpec{
			{"Grade", "Industrial"},
			{"Form", "Crystals"},
			{"Application", "Multi-purpose"},
		},
	},
	{
		Icon:         "MnS",
		CategorySlug: "industrial",
		Name:         "Manganese Sulphate",
		Description: "High-quality manganese sulphate for fertilizer production, " +
			"animal feed supplements, and industrial applications.",
		Specs: []seedSpec{
			{"Grade", "Industrial/Feed"},
			{"Form", "Powder/Granules"},
			{"Purity", "99%"},
		},
	},
	{
		Icon:         "ALB",
		CategorySlug: "api",
		Name:         "Albendazol",
		Description: "Anti-parasitic pharmaceutical active ingredient for treating " +
			"various worm infections with high efficacy.",
		Specs: []seedSpec{
			{"Grade", "Pharmaceutical"},
			{"Purity", "USP/BP"},
			{"Category", "Anthelmintic"},
		},
	},
	{
		Icon:         "KTC",
		CategorySlug: "api",
		Name:         "Ketoconazole",
		Description: "Antifungal API for treating various fungal infections, " +
			"available in multiple pharmaceutical grades.",
		Specs: []seedSpec{
			{"CAS Number", "65277-42-1"},
			{"Grade", "IP/BP/USP"},
			{"Category", "Antifungal"},
		},
	},
	{
		Icon:         "PGB",
		CategorySlug: "api",
		Name:         "Pregabalin",
		Description: "Anti-convulsant medication API used for treating epilepsy, " +
			"neuropathic pain, and anxiety disorders.",
		Specs: []seedSpec{
			{"Grade", "Pharmaceutical"},
			{"Purity", "USP"},
			{"Category", "Anticonvulsant"},
		},
	},
	{
		Icon:         "BCE",
		CategorySlug: "specialty",
		Name:         "Bis(2-chloroethyl)amine Hydrochloride",
		Description: "High-purity specialty chemical intermediate used in " +
			"pharmaceutical synthesis and research applications.",
		Specs: []seedSpec{
			{"Grade", "Research/Pharma"},
			{"Purity", "98%+"},
			{"Application", "Synthesis"},
		},
	},
	{
		Icon:         "DEA",
		CategorySlug: "specialty",
		Name:         "Di Ethyl Amino Ethyl Chloride Hydrochloride",
		Description: "Specialized chemical intermediate for pharmaceutical and " +
			"fine chemical synthesis with high purity standards.",
		Specs: []seedSpec{
			{"Grade", "Pharmaceutical"},
			{"Purity", "99%+"},
			{"Form", "Hydrochloride Salt"},
		},
	},
}

// SeedData seeds the initial catalogue into an empty database
func SeedData(db *gorm.DB) error {
	logrus.Info("Checking if database needs seeding...")

	// Check if data already exists
	var count int64
	db.Model(&models.Product{}).Count(&count)
	if count > 0 {
		logrus.Info("Database already has data. Skipping seed.")
		return nil
	}

	logrus.Info("Database is empty. Starting seed process...")

	// Use transaction for data integrity
	return db.Transaction(func(tx *gorm.DB) error {
		categoryMap, err := seedProductCategories(tx)
		if err != nil {
			return fmt.Errorf("failed to seed product categories: %w", err)
		}

		if err := seedCatalogueProducts(tx, categoryMap); err != nil {
			return fmt.Errorf("failed to seed products: %w", err)
		}

		// Materialize the company singleton so the admin has a row to edit
		if _, err := models.LoadCompanyDetails(tx); err != nil {
			return fmt.Errorf("failed to seed company details: %w", err)
		}

		logrus.Info("Seed process completed successfully")
		return nil
	})
}

func seedProductCategories(tx *gorm.DB) (map[string]uint, error) {
	categoryMap := make(map[string]uint)
	for i := range seedCategories {
		category := seedCategories[i]
		if err := models.SaveProductCategory(tx, &category); err != nil {
			return nil, err
		}
		categoryMap[category.Slug] = category.ID
	}
	logrus.Infof("Seeded %d product categories", len(seedCategories))
	return categoryMap, nil
}

func seedCatalogueProducts(tx *gorm.DB, categoryMap map[string]uint) error {
	for i, sp := range seedProducts {
		categoryID, ok := categoryMap[sp.CategorySlug]
		if !ok {
			return fmt.Errorf("unknown category slug %q", sp.CategorySlug)
		}

		product := models.Product{
			CategoryID:  categoryID,
			Icon:        sp.Icon,
			Name:        sp.Name,
			Description: sp.Description,
			Order:       uint(i + 1),
		}
		for j, spec := range sp.Specs {
			product.Specs = append(product.Specs, models.ProductSpec{
				Label: spec.Label,
				Value: spec.Value,
				Order: uint(j + 1),
			})
		}

		if err := models.SaveProduct(tx, &product); err != nil {
			return err
		}
	}
	logrus.Infof("Seeded %d products", len(seedProducts))
	return nil
}
