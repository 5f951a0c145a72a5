package middleware

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusBadRequest, false, "Validation failed!", errors)
}

// ErrorResponse maps database and unexpected errors to a response. Every
// controller routes its failure paths through here so the status taxonomy
// stays uniform.
func ErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return JsonResponse(c, fiber.StatusNotFound, false, "Resource not found!", nil)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return JsonResponse(c, fiber.StatusConflict, false, "Duplicate value for a unique field!", nil)
	default:
		log.Printf("Unhandled error: %v", err)
		return JsonResponse(c, fiber.StatusInternalServerError, false, "Server error!", nil)
	}
}
