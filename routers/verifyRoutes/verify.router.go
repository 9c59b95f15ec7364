package verifyRoutes

import (
	verifyController "certiperu/controllers/verify"

	"github.com/gofiber/fiber/v2"
)

// SetupVerifyRoutes sets up the public verification lookup. Both the API
// path and the Spanish public page path resolve to the same handler.
func SetupVerifyRoutes(app *fiber.App) {
	app.Get("/verify/:code", verifyController.VerifyCertificate)
	app.Get("/verificar/:code", verifyController.VerifyCertificate)
}
