package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// Home handles the home page
func Home(c *fiber.Ctx) error {
	return c.Render("pages/index", fiber.Map{
		"Title":   "Home",
		"Active":  "home",
		"Company": c.Locals("Company"),
	}, "layouts/base")
}

// About handles the about-us page
func About(c *fiber.Ctx) error {
	return c.Render("pages/aboutus", fiber.Map{
		"Title":   "About Us",
		"Active":  "about",
		"Company": c.Locals("Company"),
	}, "layouts/base")
}

// Services handles the our-services page
func Services(c *fiber.Ctx) error {
	return c.Render("pages/ourservices", fiber.Map{
		"Title":   "Our Services",
		"Active":  "services",
		"Company": c.Locals("Company"),
	}, "layouts/base")
}
