package templateRoutes

import (
	settingsController "certiperu/controllers/settings"
	templateController "certiperu/controllers/template"
	"certiperu/middleware"
	settingsValidators "certiperu/validators/settings"
	validators "certiperu/validators/template"

	"github.com/gofiber/fiber/v2"
)

// SetupTemplateRoutes sets up template and institution settings routes
func SetupTemplateRoutes(app *fiber.App) {
	templateGroup := app.Group("/admin/templates", middleware.JWTMiddleware, middleware.AdminOnly)
	templateGroup.Post("/", validators.SaveTemplate(true), templateController.AdminCreateTemplate)
	templateGroup.Get("/", templateController.AdminGetTemplates)
	templateGroup.Put("/:id", validators.SaveTemplate(false), templateController.AdminUpdateTemplate)
	templateGroup.Delete("/:id", templateController.AdminDeleteTemplate)

	settingsGroup := app.Group("/admin/settings", middleware.JWTMiddleware, middleware.AdminOnly)
	settingsGroup.Get("/", settingsController.AdminGetSettings)
	settingsGroup.Put("/", settingsValidators.UpdateSettings(), settingsController.AdminUpdateSettings)
}
