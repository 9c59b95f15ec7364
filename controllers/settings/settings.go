package settingsController

import (
	"certiperu/database"
	"certiperu/middleware"
	"certiperu/models"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AdminGetSettings returns the institution settings row
func AdminGetSettings(c *fiber.Ctx) error {
	var setting models.InstitutionSetting
	err := database.Database.Db.Order("id asc").First(&setting).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch settings!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Settings fetched successfully!", setting)
}

// AdminUpdateSettings upserts the single institution settings row. Already
// issued certificates keep their snapshotted values.
func AdminUpdateSettings(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSettings").(*struct {
		Name           string `json:"name"`
		RUC            string `json:"ruc"`
		Address        string `json:"address"`
		Website        string `json:"website"`
		SignatoryName  string `json:"signatory_name"`
		SignatoryTitle string `json:"signatory_title"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var setting models.InstitutionSetting
	err := db.Order("id asc").First(&setting).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update settings!", nil)
	}

	setting.Name = reqData.Name
	setting.RUC = reqData.RUC
	setting.Address = reqData.Address
	setting.Website = reqData.Website
	setting.SignatoryName = reqData.SignatoryName
	setting.SignatoryTitle = reqData.SignatoryTitle

	if err := db.Save(&setting).Error; err != nil {
		log.Printf("Error saving settings: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update settings!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Settings updated successfully!", setting)
}
