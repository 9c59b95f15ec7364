package enrollmentRoutes

import (
	enrollmentController "certiperu/controllers/enrollment"
	"certiperu/middleware"
	validators "certiperu/validators/enrollment"

	"github.com/gofiber/fiber/v2"
)

// SetupEnrollmentRoutes sets up enrollment and issuance routes
func SetupEnrollmentRoutes(app *fiber.App) {
	app.Post("/enrollments", middleware.JWTMiddleware, validators.Enroll(), enrollmentController.EnrollInCourse)

	// Admin enrollment management
	app.Get("/enrollments", middleware.JWTMiddleware, middleware.AdminOnly, enrollmentController.AdminListEnrollments)
	app.Patch("/enrollments/:id", middleware.JWTMiddleware, middleware.AdminOnly, validators.EnrollmentID(), validators.Transition(), enrollmentController.AdminTransitionEnrollment)
	app.Post("/enrollments/:id/issue-certificate", middleware.JWTMiddleware, middleware.AdminOnly, validators.EnrollmentID(), enrollmentController.AdminIssueCertificate)

	// Participant's own enrollments
	userGroup := app.Group("/user")
	userGroup.Get("/enrollments", middleware.JWTMiddleware, enrollmentController.GetMyEnrollments)
}
