package userValidator

import (
	"courseapi/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CheckEmail validator middleware
func CheckEmail() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Email string `json:"email"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		// The email only needs to contain an "@" to be considered valid
		if !strings.Contains(reqData.Email, "@") {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid email format", nil)
		}

		c.Locals("validatedEmail", reqData)
		return c.Next()
	}
}

// Register validator middleware
func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			FirstName string `json:"firstName"`
			LastName  string `json:"lastName"`
			Email     string `json:"email"`
			MobileNo  string `json:"mobileNo"`
			Password  string `json:"password"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		// Validate first & last name
		if reqData.FirstName == "" || reqData.LastName == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid data type", nil)
		}

		// Validate email format
		if !strings.Contains(reqData.Email, "@") {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid email format", nil)
		}

		// Validate mobile number
		if len(reqData.MobileNo) != 11 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Mobile number is invalid", nil)
		}

		// Validate password length
		if len(reqData.Password) < 8 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Password must be at least 8 characters long", nil)
		}

		c.Locals("validatedUser", reqData)
		return c.Next()
	}
}

// Login validator middleware
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if !strings.Contains(reqData.Email, "@") {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid email format", nil)
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}
