package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Vasuishere/vasudevchemopharma/insights"
)

// InsightList displays the static insight articles
func InsightList(c *fiber.Ctx) error {
	return c.Render("pages/insight_list", fiber.Map{
		"Title":    "Insights",
		"Active":   "insights",
		"Insights": insights.All(),
		"Company":  c.Locals("Company"),
	}, "layouts/base")
}

// InsightDetail displays a single static insight article
func InsightDetail(c *fiber.Ctx) error {
	article := insights.Get(c.Params("slug"))
	if article == nil {
		return fiber.ErrNotFound
	}

	return c.Render("pages/insight_detail", fiber.Map{
		"Title":   article.Title,
		"Active":  "insights",
		"Article": article,
		"Company": c.Locals("Company"),
	}, "layouts/base")
}
