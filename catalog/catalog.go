// Package catalog is the read side of the product catalogue: list and
// detail queries with the child collections the templates need eagerly
// attached. All functions are pure queries with no side effects.
package catalog

import (
	"gorm.io/gorm"

	"github.com/Vasuishere/vasudevchemopharma/models"
)

// catalogueOrder is the display ordering shared by product listings
const catalogueOrder = `"order", name`

// childOrder orders eager-loaded child collections by their display order
func childOrder(db *gorm.DB) *gorm.DB {
	return db.Order(`"order", id`)
}

// ListCategories returns all categories in display order
func ListCategories(db *gorm.DB) ([]models.ProductCategory, error) {
	var categories []models.ProductCategory
	err := db.Order(`"order", id`).Find(&categories).Error
	return categories, err
}

// ListCategoriesForOverview returns the categories shown in the overview
// grid on the products page
func ListCategoriesForOverview(db *gorm.DB) ([]models.ProductCategory, error) {
	var categories []models.ProductCategory
	err := db.Where("show_in_overview = ?", true).
		Order(`"order", id`).
		Find(&categories).Error
	return categories, err
}

// ListProducts returns all products with category and specs attached, in
// catalogue order
func ListProducts(db *gorm.DB) ([]models.Product, error) {
	var products []models.Product
	err := db.Preload("Category").
		Preload("Specs", childOrder).
		Order(catalogueOrder).
		Find(&products).Error
	return products, err
}

// GetProductBySlug returns a single product with its category and all
// child collections attached. Returns gorm.ErrRecordNotFound when no
// product matches.
func GetProductBySlug(db *gorm.DB, slug string) (*models.Product, error) {
	var product models.Product
	err := db.Preload("Category").
		Preload("Specs", childOrder).
		Preload("Images", childOrder).
		Preload("Documents", childOrder).
		Preload("FAQs", childOrder).
		Preload("PricingTiers", childOrder).
		Where("slug = ?", slug).
		First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// RelatedProducts returns up to limit other products from the same
// category, in catalogue order
func RelatedProducts(db *gorm.DB, product *models.Product, limit int) ([]models.Product, error) {
	var products []models.Product
	err := db.Preload("Category").
		Where("category_id = ?", product.CategoryID).
		Where("id <> ?", product.ID).
		Order(catalogueOrder).
		Limit(limit).
		Find(&products).Error
	return products, err
}

// ListPublishedArticles returns all published articles in display order
func ListPublishedArticles(db *gorm.DB) ([]models.ProductArticle, error) {
	var articles []models.ProductArticle
	err := db.Where("is_published = ?", true).
		Order(`"order", id`).
		Find(&articles).Error
	return articles, err
}

// GetPublishedArticleBySlug returns a single published article. An
// unpublished article is indistinguishable from a missing one: both
// return gorm.ErrRecordNotFound.
func GetPublishedArticleBySlug(db *gorm.DB, slug string) (*models.ProductArticle, error) {
	var article models.ProductArticle
	err := db.Where("slug = ? AND is_published = ?", slug, true).
		First(&article).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// RelatedArticles returns up to limit other published articles
func RelatedArticles(db *gorm.DB, article *models.ProductArticle, limit int) ([]models.ProductArticle, error) {
	var articles []models.ProductArticle
	err := db.Where("is_published = ?", true).
		Where("id <> ?", article.ID).
		Order(`"order", id`).
		Limit(limit).
		Find(&articles).Error
	return articles, err
}

// PromotedProducts returns up to limit products linked to the article,
// with their categories attached
func PromotedProducts(db *gorm.DB, article *models.ProductArticle, limit int) ([]models.Product, error) {
	var products []models.Product
	err := db.Preload("Category").
		Joins("JOIN article_promoted_products app ON app.product_id = products.id").
		Where("app.product_article_id = ?", article.ID).
		Order(catalogueOrder).
		Limit(limit).
		Find(&products).Error
	return products, err
}
