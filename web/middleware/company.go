package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/Vasuishere/vasudevchemopharma/database"
	"github.com/Vasuishere/vasudevchemopharma/models"
)

// CompanyDetails loads the company singleton and stores it in the request
// locals so every handler can hand it to its template. The record is
// auto-created on a fresh database.
func CompanyDetails() fiber.Handler {
	return func(c *fiber.Ctx) error {
		company, err := models.LoadCompanyDetails(database.GetDB())
		if err != nil {
			logrus.WithError(err).Warn("could not load company details")
			company = &models.CompanyDetails{}
		}
		c.Locals("Company", company)
		return c.Next()
	}
}
