package certificateController

import (
	"certiperu/config"
	"certiperu/database"
	"certiperu/middleware"
	"certiperu/models"
	"certiperu/services"
	"certiperu/utils"
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
)

// AdminCreateCertificate is the manual issuance path: no enrollment required.
func AdminCreateCertificate(c *fiber.Ctx) error {
	input, ok := c.Locals("validatedManualIssue").(*services.ManualIssueInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	cfg, err := services.LoadInstitutionConfig(db, config.AppConfig.PublicBaseURL, config.AppConfig.CodeLength)
	if err != nil {
		log.Printf("Error loading institution settings: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to issue certificate!", nil)
	}

	cert, err := services.IssueManual(db, *input, cfg)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Participant or course not found!", nil)
		case errors.Is(err, services.ErrDuplicateCertificate):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "An issued certificate already exists for this participant and course!", fiber.Map{
				"certificate": cert,
			})
		case errors.Is(err, services.ErrCodeGenerationExhausted):
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Could not generate a unique verification code!", nil)
		}
		log.Printf("Error issuing certificate: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to issue certificate!", nil)
	}

	var participant models.Participant
	if err := db.First(&participant, cert.ParticipantID).Error; err == nil {
		go utils.SendCertificateEmail(participant.Email, participant.FullName, cert.CourseName, cert.Code, cert.VerificationURL)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Certificate issued successfully!", cert)
}

// AdminListCertificates lists certificates with filters and pagination
func AdminListCertificates(c *fiber.Ctx) error {
	filter := services.CertificateFilter{
		Status: c.Query("status"),
		Search: c.Query("search"),
		Page:   c.QueryInt("page", 1),
		Limit:  c.QueryInt("limit", 10),
	}

	certificates, total, err := services.ListCertificates(database.Database.Db, filter)
	if err != nil {
		log.Printf("Error listing certificates: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch certificates!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificates fetched successfully!", fiber.Map{
		"certificates": certificates,
		"pagination": fiber.Map{
			"total": total,
			"page":  filter.Page,
			"limit": filter.Limit,
		},
	})
}

// AdminUpdateCertificate edits the post-issuance fields (grade, grade text,
// remarks, validity window). Everything else is immutable.
func AdminUpdateCertificate(c *fiber.Ctx) error {
	certificateID, ok := c.Locals("certificateID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid certificate id!", nil)
	}

	input, ok := c.Locals("validatedCertificateUpdate").(*services.CertificateUpdateInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	cert, err := services.UpdateCertificate(database.Database.Db, uint(certificateID), *input)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certificate not found!", nil)
		}
		log.Printf("Error updating certificate: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update certificate!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate updated successfully!", cert)
}

// AdminPatchCertificate handles the void/reactivate actions
func AdminPatchCertificate(c *fiber.Ctx) error {
	certificateID, ok := c.Locals("certificateID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid certificate id!", nil)
	}

	reqData, ok := c.Locals("validatedCertificateAction").(*struct {
		Action string `json:"action"`
		Reason string `json:"reason"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var cert *models.Certificate
	var err error
	switch reqData.Action {
	case "void":
		cert, err = services.VoidCertificate(db, uint(certificateID), reqData.Reason)
	case "reactivate":
		cert, err = services.ReactivateCertificate(db, uint(certificateID))
	}

	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certificate not found!", nil)
		case errors.Is(err, services.ErrDuplicateCertificate):
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Another issued certificate exists for this participant and course!", nil)
		}
		log.Printf("Error changing certificate state: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update certificate!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate updated successfully!", cert)
}

// AdminDeleteCertificate removes a voided certificate
func AdminDeleteCertificate(c *fiber.Ctx) error {
	certificateID, ok := c.Locals("certificateID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid certificate id!", nil)
	}

	err := services.DeleteCertificate(database.Database.Db, uint(certificateID))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certificate not found!", nil)
		case errors.Is(err, services.ErrCertificateEmitted):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "An issued certificate cannot be deleted. Void it first!", nil)
		}
		log.Printf("Error deleting certificate: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete certificate!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate deleted successfully!", nil)
}

// GetMyCertificates lists the caller's certificates
func GetMyCertificates(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var certificates []models.Certificate
	err := database.Database.Db.Where("participant_id = ?", userID).
		Order("issued_at desc").Find(&certificates).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch certificates!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificates fetched successfully!", fiber.Map{
		"certificates": certificates,
		"total":        len(certificates),
	})
}

// DownloadCertificate renders the certificate PDF. Only the owning
// participant or an administrator may download it.
func DownloadCertificate(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	certificateID, err := c.ParamsInt("id")
	if err != nil || certificateID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid certificate id!", nil)
	}

	db := database.Database.Db

	var caller models.Participant
	if err := db.Where("id = ? AND is_deleted = ?", userID, false).First(&caller).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	var cert models.Certificate
	if err := db.First(&cert, certificateID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certificate not found!", nil)
	}

	if cert.ParticipantID != caller.ID && caller.Role != "ADMIN" {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You cannot download this certificate!", nil)
	}

	if cert.Status != models.CertificateIssued {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Certificate is not in issued state!", nil)
	}

	var owner models.Participant
	if err := db.First(&owner, cert.ParticipantID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Participant not found!", nil)
	}

	tpl := services.TemplateConfigFor(db, cert.CourseType)
	pdfBytes, err := utils.RenderCertificatePDF(&cert, &owner, tpl)
	if err != nil {
		log.Printf("Error rendering certificate PDF: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to render certificate!", nil)
	}

	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="certificado-%s.pdf"`, cert.Code))
	return c.Send(pdfBytes)
}
