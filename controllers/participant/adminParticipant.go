package participantController

import (
	"certiperu/database"
	"certiperu/middleware"
	"certiperu/models"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// AdminGetParticipants lists participants with search and pagination
func AdminGetParticipants(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	search := strings.TrimSpace(c.Query("search"))

	db := database.Database.Db.Model(&models.Participant{}).Where("is_deleted = ?", false)
	if search != "" {
		term := "%" + strings.ToLower(search) + "%"
		db = db.Where("LOWER(full_name) LIKE ? OR LOWER(document_number) LIKE ? OR LOWER(email) LIKE ?", term, term, term)
	}

	var total int64
	db.Count(&total)

	var participants []models.Participant
	if err := db.Offset((page - 1) * limit).Limit(limit).Order("created_at desc").Find(&participants).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch participants!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Participants fetched successfully!", fiber.Map{
		"participants": participants,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// AdminDeleteParticipant removes a participant. A participant that owns
// certificates is never hard-deleted; the account is deactivated instead so
// issued certificates keep resolving.
func AdminDeleteParticipant(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid participant id!", nil)
	}

	var participant models.Participant
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", id, false).First(&participant).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Participant not found!", nil)
	}

	var certCount int64
	if err := database.Database.Db.Model(&models.Certificate{}).Where("participant_id = ?", participant.ID).Count(&certCount).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete participant!", nil)
	}

	if certCount > 0 {
		participant.IsDeleted = true
		if err := database.Database.Db.Save(&participant).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete participant!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Participant deactivated (owns certificates).", nil)
	}

	if err := database.Database.Db.Unscoped().Delete(&participant).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete participant!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Participant deleted successfully!", nil)
}
