package certificateRoutes

import (
	certificateController "certiperu/controllers/certificate"
	"certiperu/middleware"
	validators "certiperu/validators/certificate"

	"github.com/gofiber/fiber/v2"
)

// SetupCertificateRoutes sets up certificate management and download routes
func SetupCertificateRoutes(app *fiber.App) {
	// Manual issuance and administration
	app.Post("/certificates", middleware.JWTMiddleware, middleware.AdminOnly, validators.ManualIssue(), certificateController.AdminCreateCertificate)
	app.Get("/certificates", middleware.JWTMiddleware, middleware.AdminOnly, certificateController.AdminListCertificates)
	app.Put("/certificates/:id", middleware.JWTMiddleware, middleware.AdminOnly, validators.CertificateID(), validators.Update(), certificateController.AdminUpdateCertificate)
	app.Patch("/certificates/:id", middleware.JWTMiddleware, middleware.AdminOnly, validators.CertificateID(), validators.Action(), certificateController.AdminPatchCertificate)
	app.Delete("/certificates/:id", middleware.JWTMiddleware, middleware.AdminOnly, validators.CertificateID(), certificateController.AdminDeleteCertificate)

	// Download by the owning participant (or an admin)
	app.Get("/certificates/:id/download", middleware.JWTMiddleware, certificateController.DownloadCertificate)

	// Participant's own certificates
	userGroup := app.Group("/user")
	userGroup.Get("/certificates", middleware.JWTMiddleware, certificateController.GetMyCertificates)
}
