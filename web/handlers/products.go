package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Vasuishere/vasudevchemopharma/catalog"
	"github.com/Vasuishere/vasudevchemopharma/database"
)

// relatedProductLimit caps the "related products" strip on detail pages
const relatedProductLimit = 3

// ProductList displays the full catalogue with the filter nav and the
// category-overview grid
func ProductList(c *fiber.Ctx) error {
	db := database.GetDB()

	products, err := catalog.ListProducts(db)
	if err != nil {
		return err
	}
	categories, err := catalog.ListCategories(db)
	if err != nil {
		return err
	}
	overview, err := catalog.ListCategoriesForOverview(db)
	if err != nil {
		return err
	}

	return c.Render("pages/products", fiber.Map{
		"Title":            "Products",
		"Active":           "products",
		"Products":         products,
		"Categories":       categories,
		"CategoryOverview": overview,
		"Company":          c.Locals("Company"),
	}, "layouts/base")
}

// ProductDetail displays a single product data sheet
func ProductDetail(c *fiber.Ctx) error {
	db := database.GetDB()

	product, err := catalog.GetProductBySlug(db, c.Params("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.ErrNotFound
		}
		return err
	}

	related, err := catalog.RelatedProducts(db, product, relatedProductLimit)
	if err != nil {
		return err
	}

	return c.Render("pages/product_detail", fiber.Map{
		"Title":           product.Name,
		"Active":          "products",
		"Product":         product,
		"RelatedProducts": related,
		"Company":         c.Locals("Company"),
	}, "layouts/base")
}
