package enrollmentValidator

import (
	"certiperu/middleware"
	"certiperu/models"

	"github.com/gofiber/fiber/v2"
)

func Enroll() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ParticipantID *uint `json:"participant_id"`
			CourseID      uint  `json:"course_id"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CourseID == 0 {
			errors["course_id"] = "Course id is required!"
		}
		if reqData.ParticipantID != nil && *reqData.ParticipantID == 0 {
			errors["participant_id"] = "Participant id must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedEnroll", reqData)
		return c.Next()
	}
}

func Transition() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Status       string `json:"status"`
			Observations string `json:"observations"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		switch reqData.Status {
		case models.EnrollmentPending, models.EnrollmentPaid, models.EnrollmentInProgress, models.EnrollmentCompleted:
		case "":
			errors["status"] = "Status is required!"
		default:
			errors["status"] = "Status must be PENDING, PAID, IN_PROGRESS or COMPLETED!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTransition", reqData)
		return c.Next()
	}
}

// EnrollmentID validates the :id route parameter
func EnrollmentID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid enrollment id!", nil)
		}
		c.Locals("enrollmentID", id)
		return c.Next()
	}
}
