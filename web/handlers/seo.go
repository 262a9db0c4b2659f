package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Vasuishere/vasudevchemopharma/database"
	"github.com/Vasuishere/vasudevchemopharma/models"
	"github.com/Vasuishere/vasudevchemopharma/seo"
)

// RobotsTxt serves robots.txt as plain text
func RobotsTxt(domain string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
		return c.SendString(seo.RobotsTxt(domain))
	}
}

// SitemapXML serves the dynamic XML sitemap containing every public URL
func SitemapXML(domain string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		db := database.GetDB()

		var productSlugs []string
		if err := db.Model(&models.Product{}).
			Order(`"order", name`).
			Pluck("slug", &productSlugs).Error; err != nil {
			return err
		}

		var articleSlugs []string
		if err := db.Model(&models.ProductArticle{}).
			Where("is_published = ?", true).
			Order(`"order", id`).
			Pluck("slug", &articleSlugs).Error; err != nil {
			return err
		}

		c.Set(fiber.HeaderContentType, "application/xml; charset=utf-8")
		return c.SendString(seo.SitemapXML(domain, productSlugs, articleSlugs))
	}
}
