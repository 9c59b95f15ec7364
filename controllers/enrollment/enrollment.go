package enrollmentController

import (
	"certiperu/config"
	"certiperu/database"
	"certiperu/middleware"
	"certiperu/models"
	"certiperu/services"
	"certiperu/utils"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

// EnrollInCourse registers the caller (or, for an admin, any participant) in
// a course.
func EnrollInCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedEnroll").(*struct {
		ParticipantID *uint `json:"participant_id"`
		CourseID      uint  `json:"course_id"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var caller models.Participant
	if err := db.Where("id = ? AND is_deleted = ?", userID, false).First(&caller).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	participantID := caller.ID
	if reqData.ParticipantID != nil && *reqData.ParticipantID != caller.ID {
		if caller.Role != "ADMIN" {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Only administrators can enroll other participants!", nil)
		}
		participantID = *reqData.ParticipantID
	}

	enrollment, err := services.Enroll(db, participantID, reqData.CourseID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Participant or course not found!", nil)
		case errors.Is(err, services.ErrAlreadyEnrolled):
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Participant already enrolled in this course!", nil)
		case errors.Is(err, services.ErrCourseUnavailable):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course is inactive or at capacity!", nil)
		}
		log.Printf("Error creating enrollment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}

	var course models.Course
	if err := db.First(&course, enrollment.CourseID).Error; err == nil {
		var participant models.Participant
		if err := db.First(&participant, enrollment.ParticipantID).Error; err == nil {
			go utils.SendEnrollmentEmail(participant.Email, participant.FullName, course.Name)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrolled in course successfully!", enrollment)
}

// GetMyEnrollments lists the caller's enrollments with the course preloaded
func GetMyEnrollments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var enrollments []models.Enrollment
	err := database.Database.Db.Where("participant_id = ?", userID).
		Preload("Course").Order("created_at desc").Find(&enrollments).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": enrollments,
		"total":       len(enrollments),
	})
}

// AdminListEnrollments lists enrollments with status filter, search and
// pagination
func AdminListEnrollments(c *fiber.Ctx) error {
	filter := services.EnrollmentFilter{
		Status: c.Query("status"),
		Search: c.Query("search"),
		Page:   c.QueryInt("page", 1),
		Limit:  c.QueryInt("limit", 10),
	}

	enrollments, total, err := services.ListEnrollments(database.Database.Db, filter)
	if err != nil {
		log.Printf("Error listing enrollments: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": enrollments,
		"pagination": fiber.Map{
			"total": total,
			"page":  filter.Page,
			"limit": filter.Limit,
		},
	})
}

// AdminTransitionEnrollment moves an enrollment through the status table
func AdminTransitionEnrollment(c *fiber.Ctx) error {
	enrollmentID, ok := c.Locals("enrollmentID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid enrollment id!", nil)
	}

	reqData, ok := c.Locals("validatedTransition").(*struct {
		Status       string `json:"status"`
		Observations string `json:"observations"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	enrollment, err := services.TransitionEnrollment(database.Database.Db, uint(enrollmentID), reqData.Status, reqData.Observations)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
		case errors.Is(err, services.ErrInvalidTransition):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Status transition not allowed!", nil)
		}
		log.Printf("Error updating enrollment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update enrollment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment updated successfully!", enrollment)
}

// AdminIssueCertificate mints a certificate for an eligible enrollment
func AdminIssueCertificate(c *fiber.Ctx) error {
	enrollmentID, ok := c.Locals("enrollmentID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid enrollment id!", nil)
	}

	db := database.Database.Db

	cfg, err := services.LoadInstitutionConfig(db, config.AppConfig.PublicBaseURL, config.AppConfig.CodeLength)
	if err != nil {
		log.Printf("Error loading institution settings: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to issue certificate!", nil)
	}

	cert, err := services.IssueFromEnrollment(db, uint(enrollmentID), cfg)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment, participant or course not found!", nil)
		case errors.Is(err, services.ErrNotEligible):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Enrollment is not eligible for a certificate!", nil)
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
		go utils.SendCertificateSMS(participant.Phone, cert.CourseName, cert.Code)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate issued successfully!", cert)
}
