package catalog

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Vasuishere/vasudevchemopharma/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.AllModels()...))
	return db
}

func mustSaveCategory(t *testing.T, db *gorm.DB, c *models.ProductCategory) *models.ProductCategory {
	t.Helper()
	require.NoError(t, models.SaveProductCategory(db, c))
	return c
}

func mustSaveProduct(t *testing.T, db *gorm.DB, p *models.Product) *models.Product {
	t.Helper()
	require.NoError(t, models.SaveProduct(db, p))
	return p
}

func mustSaveArticle(t *testing.T, db *gorm.DB, a *models.ProductArticle) *models.ProductArticle {
	t.Helper()
	require.NoError(t, models.SaveProductArticle(db, a))
	return a
}

func TestListCategoriesOrdering(t *testing.T) {
	db := openTestDB(t)
	mustSaveCategory(t, db, &models.ProductCategory{Label: "Specialty", Order: 3})
	mustSaveCategory(t, db, &models.ProductCategory{Label: "Industrial", Order: 1})
	mustSaveCategory(t, db, &models.ProductCategory{Label: "APIs", Order: 2})

	categories, err := ListCategories(db)
	require.NoError(t, err)
	require.Len(t, categories, 3)
	assert.Equal(t, "Industrial", categories[0].Label)
	assert.Equal(t, "APIs", categories[1].Label)
	assert.Equal(t, "Specialty", categories[2].Label)
}

func TestListCategoriesForOverview(t *testing.T) {
	db := openTestDB(t)
	mustSaveCategory(t, db, &models.ProductCategory{Label: "Shown", ShowInOverview: true, Order: 1})
	mustSaveCategory(t, db, &models.ProductCategory{Label: "Hidden", Order: 2})

	overview, err := ListCategoriesForOverview(db)
	require.NoError(t, err)
	require.Len(t, overview, 1)
	assert.Equal(t, "Shown", overview[0].Label)
}

func TestListProductsEagerAndOrdered(t *testing.T) {
	db := openTestDB(t)
	category := mustSaveCategory(t, db, &models.ProductCategory{Label: "Industrial"})

	mustSaveProduct(t, db, &models.Product{
		CategoryID: category.ID, Icon: "B", Name: "Beta", Description: "d", Order: 2,
	})
	mustSaveProduct(t, db, &models.Product{
		CategoryID: category.ID, Icon: "A", Name: "Alpha", Description: "d", Order: 2,
	})
	withSpecs := &models.Product{
		CategoryID: category.ID, Icon: "C", Name: "Gamma", Description: "d", Order: 1,
		Specs: []models.ProductSpec{
			{Label: "Purity", Value: "98%", Order: 2},
			{Label: "Form", Value: "Crystals", Order: 1},
		},
	}
	mustSaveProduct(t, db, withSpecs)

	products, err := ListProducts(db)
	require.NoError(t, err)
	require.Len(t, products, 3)

	// Ordered by display order, then name
	assert.Equal(t, "Gamma", products[0].Name)
	assert.Equal(t, "Alpha", products[1].Name)
	assert.Equal(t, "Beta", products[2].Name)

	// Category and specs eagerly attached, specs in display order
	assert.Equal(t, "Industrial", products[0].Category.Label)
	require.Len(t, products[0].Specs, 2)
	assert.Equal(t, "Form", products[0].Specs[0].Label)
	assert.Equal(t, "Purity", products[0].Specs[1].Label)
}

func TestGetProductBySlug(t *testing.T) {
	db := openTestDB(t)
	category := mustSaveCategory(t, db, &models.ProductCategory{Label: "Industrial"})

	product := &models.Product{
		CategoryID: category.ID, Icon: "CuS", Name: "Copper Sulphate", Description: "d",
		Specs:        []models.ProductSpec{{Label: "Grade", Value: "Industrial"}},
		Images:       []models.ProductImage{{Image: "cus.jpg", IsPrimary: true}},
		Documents:    []models.ProductDocument{{Title: "COA", DocType: models.DocTypeCOA, File: "coa.pdf"}},
		FAQs:         []models.ProductFAQ{{Question: "Q?", Answer: "A."}},
		PricingTiers: []models.ProductPricingTier{{MinQuantity: "100+", PriceInfo: "on request"}},
	}
	mustSaveProduct(t, db, product)

	got, err := GetProductBySlug(db, "copper-sulphate")
	require.NoError(t, err)
	assert.Equal(t, product.ID, got.ID)
	assert.Equal(t, "Industrial", got.Category.Label)
	assert.Len(t, got.Specs, 1)
	assert.Len(t, got.Images, 1)
	assert.Len(t, got.Documents, 1)
	assert.Len(t, got.FAQs, 1)
	assert.Len(t, got.PricingTiers, 1)
}

func TestGetProductBySlugNotFound(t *testing.T) {
	db := openTestDB(t)

	_, err := GetProductBySlug(db, "does-not-exist")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRelatedProducts(t *testing.T) {
	db := openTestDB(t)
	industrial := mustSaveCategory(t, db, &models.ProductCategory{Label: "Industrial"})
	api := mustSaveCategory(t, db, &models.ProductCategory{Label: "APIs"})

	subject := mustSaveProduct(t, db, &models.Product{
		CategoryID: industrial.ID, Icon: "S", Name: "Subject", Description: "d", Order: 1,
	})
	for i := 0; i < 4; i++ {
		mustSaveProduct(t, db, &models.Product{
			CategoryID: industrial.ID, Icon: "R", Description: "d",
			Name: fmt.Sprintf("Related %d", i), Order: uint(i + 2),
		})
	}
	mustSaveProduct(t, db, &models.Product{
		CategoryID: api.ID, Icon: "O", Name: "Other Category", Description: "d",
	})

	related, err := RelatedProducts(db, subject, 3)
	require.NoError(t, err)
	require.Len(t, related, 3)
	for _, p := range related {
		assert.NotEqual(t, subject.ID, p.ID)
		assert.Equal(t, industrial.ID, p.CategoryID)
	}
	assert.Equal(t, "Related 0", related[0].Name)
}

func TestPublishedArticleQueries(t *testing.T) {
	db := openTestDB(t)

	published := mustSaveArticle(t, db, &models.ProductArticle{
		Title: "Published", IsPublished: true, PublishedAt: time.Now(), Order: 1,
	})
	draft := mustSaveArticle(t, db, &models.ProductArticle{
		Title: "Draft", Order: 2,
	})

	articles, err := ListPublishedArticles(db)
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, published.ID, articles[0].ID)

	got, err := GetPublishedArticleBySlug(db, published.Slug)
	require.NoError(t, err)
	assert.Equal(t, published.ID, got.ID)

	// A draft is indistinguishable from a missing article
	_, err = GetPublishedArticleBySlug(db, draft.Slug)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = GetPublishedArticleBySlug(db, "does-not-exist")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRelatedArticles(t *testing.T) {
	db := openTestDB(t)

	subject := mustSaveArticle(t, db, &models.ProductArticle{
		Title: "Subject", IsPublished: true, Order: 1,
	})
	for i := 0; i < 4; i++ {
		mustSaveArticle(t, db, &models.ProductArticle{
			Title: fmt.Sprintf("Other %d", i), IsPublished: true, Order: uint(i + 2),
		})
	}
	mustSaveArticle(t, db, &models.ProductArticle{Title: "Draft", Order: 10})

	related, err := RelatedArticles(db, subject, 3)
	require.NoError(t, err)
	require.Len(t, related, 3)
	for _, a := range related {
		assert.NotEqual(t, subject.ID, a.ID)
		assert.True(t, a.IsPublished)
	}
}

func TestPromotedProducts(t *testing.T) {
	db := openTestDB(t)
	category := mustSaveCategory(t, db, &models.ProductCategory{Label: "Industrial"})

	var linked []models.Product
	for i := 0; i < 3; i++ {
		p := mustSaveProduct(t, db, &models.Product{
			CategoryID: category.ID, Icon: "P", Description: "d",
			Name: fmt.Sprintf("Promoted %d", i), Order: uint(i + 1),
		})
		linked = append(linked, *p)
	}
	mustSaveProduct(t, db, &models.Product{
		CategoryID: category.ID, Icon: "U", Name: "Unlinked", Description: "d",
	})

	article := mustSaveArticle(t, db, &models.ProductArticle{
		Title: "With Products", IsPublished: true,
	})
	require.NoError(t, db.Model(article).Association("PromotedProducts").Append(&linked))

	promoted, err := PromotedProducts(db, article, 8)
	require.NoError(t, err)
	require.Len(t, promoted, 3)
	assert.Equal(t, "Promoted 0", promoted[0].Name)
	assert.Equal(t, "Industrial", promoted[0].Category.Label)

	limited, err := PromotedProducts(db, article, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}
