package certificateValidator

import (
	"certiperu/middleware"
	"certiperu/models"
	"certiperu/services"
	"encoding/json"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type manualIssuePayload struct {
	ParticipantID uint               `json:"participant_id" validate:"required,gt=0"`
	CourseID      uint               `json:"course_id" validate:"required,gt=0"`
	Grade         *float64           `json:"grade" validate:"omitempty,gte=0,lte=20"`
	GradeText     string             `json:"grade_text"`
	Remarks       string             `json:"remarks"`
	StartDate     string             `json:"start_date"` // 2006-01-02
	EndDate       string             `json:"end_date"`
	Signatories   []models.Signatory `json:"signatories"`
}

func parseDate(s string) (*time.Time, bool) {
	if s == "" {
		return nil, true
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, false
	}
	return &t, true
}

// ManualIssue validates the administrative direct-issuance form
func ManualIssue() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(manualIssuePayload)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if err := validate.Struct(reqData); err != nil {
			fieldErrors, ok := err.(validator.ValidationErrors)
			if !ok {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
			}
			for _, fe := range fieldErrors {
				errors[strings.ToLower(fe.Field())] = "Invalid value for " + fe.Field() + "!"
			}
		}

		start, ok := parseDate(reqData.StartDate)
		if !ok {
			errors["start_date"] = "Start date must use the format 2006-01-02!"
		}
		end, ok := parseDate(reqData.EndDate)
		if !ok {
			errors["end_date"] = "End date must use the format 2006-01-02!"
		}

		for _, s := range reqData.Signatories {
			if strings.TrimSpace(s.Name) == "" {
				errors["signatories"] = "Signatory name is required!"
				break
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedManualIssue", &services.ManualIssueInput{
			ParticipantID: reqData.ParticipantID,
			CourseID:      reqData.CourseID,
			Grade:         reqData.Grade,
			GradeText:     reqData.GradeText,
			Remarks:       reqData.Remarks,
			StartDate:     start,
			EndDate:       end,
			Signatories:   reqData.Signatories,
		})
		return c.Next()
	}
}

// editableFields is the whitelist for post-issuance updates. Anything else
// on the certificate is immutable.
var editableFields = map[string]bool{
	"grade":      true,
	"grade_text": true,
	"remarks":    true,
	"start_date": true,
	"end_date":   true,
}

// Update validates the certificate update body and rejects immutable fields
func Update() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var raw map[string]json.RawMessage
		if err := json.Unmarshal(c.Body(), &raw); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		for field := range raw {
			if !editableFields[field] {
				errors[field] = "Field cannot be modified after issuance!"
			}
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		reqData := new(struct {
			Grade     *float64 `json:"grade"`
			GradeText *string  `json:"grade_text"`
			Remarks   *string  `json:"remarks"`
			StartDate string   `json:"start_date"`
			EndDate   string   `json:"end_date"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		start, ok := parseDate(reqData.StartDate)
		if !ok {
			errors["start_date"] = "Start date must use the format 2006-01-02!"
		}
		end, ok := parseDate(reqData.EndDate)
		if !ok {
			errors["end_date"] = "End date must use the format 2006-01-02!"
		}
		if reqData.Grade != nil && (*reqData.Grade < 0 || *reqData.Grade > 20) {
			errors["grade"] = "Grade must be between 0 and 20!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCertificateUpdate", &services.CertificateUpdateInput{
			Grade:     reqData.Grade,
			GradeText: reqData.GradeText,
			Remarks:   reqData.Remarks,
			StartDate: start,
			EndDate:   end,
		})
		return c.Next()
	}
}

// Action validates the void/reactivate body
func Action() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Action string `json:"action"`
			Reason string `json:"reason"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		switch reqData.Action {
		case "void":
			if strings.TrimSpace(reqData.Reason) == "" {
				errors["reason"] = "Reason is required to void a certificate!"
			}
		case "reactivate":
		case "":
			errors["action"] = "Action is required!"
		default:
			errors["action"] = "Action must be void or reactivate!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCertificateAction", reqData)
		return c.Next()
	}
}

// CertificateID validates the :id route parameter
func CertificateID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid certificate id!", nil)
		}
		c.Locals("certificateID", id)
		return c.Next()
	}
}
