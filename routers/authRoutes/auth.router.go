package authRoutes

import (
	authController "certiperu/controllers/auth"
	"certiperu/middleware"
	validators "certiperu/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes sets up registration, login and profile routes
func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/register", validators.Register(), authController.Register)
	authGroup.Post("/login", validators.Login(), authController.Login)
	authGroup.Get("/profile", middleware.JWTMiddleware, authController.GetProfile)
	authGroup.Put("/profile", middleware.JWTMiddleware, validators.UpdateProfile(), authController.UpdateProfile)
}
