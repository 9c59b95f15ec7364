package courseRoutes

import (
	controllers "certiperu/controllers/course"
	participantController "certiperu/controllers/participant"
	"certiperu/middleware"
	validators "certiperu/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminCourseRoutes sets up the back-office catalog and participant
// management routes
func SetupAdminCourseRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin/courses", middleware.JWTMiddleware, middleware.AdminOnly)

	adminGroup.Post("/", validators.SaveCourse(true), controllers.AdminCreateCourse)
	adminGroup.Get("/", controllers.AdminGetCourses)
	adminGroup.Get("/:id", validators.CourseID(), controllers.AdminGetCourseDetails)
	adminGroup.Put("/:id", validators.CourseID(), validators.SaveCourse(false), controllers.AdminUpdateCourse)
	adminGroup.Delete("/:id", validators.CourseID(), controllers.AdminDeleteCourse)

	categoryGroup := app.Group("/admin/categories", middleware.JWTMiddleware, middleware.AdminOnly)
	categoryGroup.Post("/", validators.SaveCategory(true), controllers.AdminCreateCategory)
	categoryGroup.Put("/:id", validators.SaveCategory(false), controllers.AdminUpdateCategory)
	categoryGroup.Delete("/:id", controllers.AdminDeleteCategory)

	participantGroup := app.Group("/admin/participants", middleware.JWTMiddleware, middleware.AdminOnly)
	participantGroup.Get("/", participantController.AdminGetParticipants)
	participantGroup.Delete("/:id", participantController.AdminDeleteParticipant)
}
