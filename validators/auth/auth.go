package authValidator

import (
	"certiperu/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			FullName       string `json:"full_name"`
			DocumentType   string `json:"document_type"`
			DocumentNumber string `json:"document_number"`
			Email          string `json:"email"`
			Phone          string `json:"phone"`
			Password       string `json:"password"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.FullName) == "" {
			errors["full_name"] = "Full name is required!"
		} else if len(strings.TrimSpace(reqData.FullName)) < 3 {
			errors["full_name"] = "Full name must be at least 3 characters long!"
		}

		if strings.TrimSpace(reqData.DocumentNumber) == "" {
			errors["document_number"] = "Document number is required!"
		} else if len(strings.TrimSpace(reqData.DocumentNumber)) < 8 {
			errors["document_number"] = "Document number must be at least 8 characters long!"
		}

		if reqData.DocumentType != "" && reqData.DocumentType != "DNI" && reqData.DocumentType != "CE" && reqData.DocumentType != "PASAPORTE" {
			errors["document_type"] = "Document type must be DNI, CE or PASAPORTE!"
		}

		if strings.TrimSpace(reqData.Email) == "" {
			errors["email"] = "Email is required!"
		} else if !strings.Contains(reqData.Email, "@") {
			errors["email"] = "Email is not valid!"
		}

		if len(reqData.Password) < 8 {
			errors["password"] = "Password must be at least 8 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRegister", reqData)
		return c.Next()
	}
}

func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Email) == "" {
			errors["email"] = "Email is required!"
		}
		if reqData.Password == "" {
			errors["password"] = "Password is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}

func UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			FullName string `json:"full_name"`
			Phone    string `json:"phone"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.FullName != "" && len(strings.TrimSpace(reqData.FullName)) < 3 {
			errors["full_name"] = "Full name must be at least 3 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProfileUpdate", reqData)
		return c.Next()
	}
}
