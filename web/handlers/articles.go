package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Vasuishere/vasudevchemopharma/catalog"
	"github.com/Vasuishere/vasudevchemopharma/database"
)

const (
	relatedArticleLimit  = 3
	promotedProductLimit = 8
)

// ArticleList displays all published articles
func ArticleList(c *fiber.Ctx) error {
	articles, err := catalog.ListPublishedArticles(database.GetDB())
	if err != nil {
		return err
	}

	return c.Render("pages/article_list", fiber.Map{
		"Title":    "Articles",
		"Active":   "articles",
		"Articles": articles,
		"Company":  c.Locals("Company"),
	}, "layouts/base")
}

// ArticleDetail displays a single published article. Draft articles look
// exactly like missing ones.
func ArticleDetail(c *fiber.Ctx) error {
	db := database.GetDB()

	article, err := catalog.GetPublishedArticleBySlug(db, c.Params("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.ErrNotFound
		}
		return err
	}

	related, err := catalog.RelatedArticles(db, article, relatedArticleLimit)
	if err != nil {
		return err
	}
	promoted, err := catalog.PromotedProducts(db, article, promotedProductLimit)
	if err != nil {
		return err
	}

	return c.Render("pages/article_detail", fiber.Map{
		"Title":            article.Title,
		"Active":           "articles",
		"Article":          article,
		"RelatedArticles":  related,
		"PromotedProducts": promoted,
		"Company":          c.Locals("Company"),
	}, "layouts/base")
}
