package courseRoutes

import (
	controllers "certiperu/controllers/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up the public catalog routes
func SetupCourseRoutes(app *fiber.App) {
	app.Get("/courses", controllers.GetCourses)
	app.Get("/courses/:slug", controllers.GetCourseBySlug)
	app.Get("/categories", controllers.GetCategories)
}
