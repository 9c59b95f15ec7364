package authController

import (
	"certiperu/config"
	"certiperu/database"
	"certiperu/middleware"
	"certiperu/models"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// Register creates a new participant account
func Register(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRegister").(*struct {
		FullName       string `json:"full_name"`
		DocumentType   string `json:"document_type"`
		DocumentNumber string `json:"document_number"`
		Email          string `json:"email"`
		Phone          string `json:"phone"`
		Password       string `json:"password"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Check if email already exists
	if err := db.Where("email = ?", reqData.Email).First(&models.Participant{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	// Check if document number already exists
	if err := db.Where("document_number = ?", reqData.DocumentNumber).First(&models.Participant{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Document number is already registered!", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	participant := models.Participant{
		FullName:       reqData.FullName,
		DocumentType:   reqData.DocumentType,
		DocumentNumber: reqData.DocumentNumber,
		Email:          reqData.Email,
		Phone:          reqData.Phone,
		Password:       string(hashedPassword),
	}

	if err := db.Create(&participant).Error; err != nil {
		log.Printf("Error saving participant to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register participant!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Participant registered successfully.", participant)
}

// Login validates credentials and returns a JWT
func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var participant models.Participant
	result := database.Database.Db.Where("email = ? AND is_deleted = ?", reqData.Email, false).First(&participant)
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(participant.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	now := time.Now()
	participant.LastLogin = &now
	if err := database.Database.Db.Save(&participant).Error; err != nil {
		log.Printf("Error saving last login time: %v", err)
	}

	token, err := middleware.GenerateJWT(participant.ID, participant.FullName, participant.Role, participant.Email)
	if err != nil {
		log.Printf("Error generating JWT: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to login!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful!", fiber.Map{
		"token":       token,
		"participant": participant,
	})
}

// GetProfile returns the authenticated participant
func GetProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var participant models.Participant
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&participant).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", participant)
}

// UpdateProfile edits the mutable profile fields
func UpdateProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var participant models.Participant
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&participant).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedProfileUpdate").(*struct {
		FullName string `json:"full_name"`
		Phone    string `json:"phone"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.FullName != "" {
		participant.FullName = reqData.FullName
	}
	if reqData.Phone != "" {
		participant.Phone = reqData.Phone
	}

	if err := database.Database.Db.Save(&participant).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully!", participant)
}
