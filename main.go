package main

import (
	"certiperu/config"
	"certiperu/database"
	authRoutes "certiperu/routers/authRoutes"
	certificateRoutes "certiperu/routers/certificateRoutes"
	courseRoutes "certiperu/routers/courseRoutes"
	enrollmentRoutes "certiperu/routers/enrollmentRoutes"
	templateRoutes "certiperu/routers/templateRoutes"
	verifyRoutes "certiperu/routers/verifyRoutes"

	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	courseRoutes.SetupAdminCourseRoutes(app)
	enrollmentRoutes.SetupEnrollmentRoutes(app)
	certificateRoutes.SetupCertificateRoutes(app)
	templateRoutes.SetupTemplateRoutes(app)
	verifyRoutes.SetupVerifyRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
