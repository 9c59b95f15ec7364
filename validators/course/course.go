package courseValidator

import (
	controllers "certiperu/controllers/course"
	"certiperu/middleware"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// SaveCourse validates the admin create/update course body. requireName is
// true on create.
func SaveCourse(requireName bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(controllers.CoursePayload)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		var err error
		if requireName || reqData.Name != "" {
			err = validate.Struct(reqData)
		} else {
			// Update without a rename: skip the required check on Name
			err = validate.StructExcept(reqData, "Name")
		}
		if err != nil {
			fieldErrors, ok := err.(validator.ValidationErrors)
			if !ok {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
			}
			for _, fe := range fieldErrors {
				errors[strings.ToLower(fe.Field())] = "Invalid value for " + fe.Field() + "!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// CourseID validates the :id route parameter
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
		}
		c.Locals("courseID", id)
		return c.Next()
	}
}
