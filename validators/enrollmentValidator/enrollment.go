package enrollmentValidator

import (
	"courseapi/middleware"
	"courseapi/models"

	"github.com/gofiber/fiber/v2"
)

// Enroll validator middleware
func Enroll() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			EnrolledCourses []models.EnrolledCourse `json:"enrolledCourses"`
			TotalPrice      *float64                `json:"totalPrice"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate course list
		if len(reqData.EnrolledCourses) == 0 {
			errors["enrolledCourses"] = "Enrolled courses are required!"
		}
		for _, enrolled := range reqData.EnrolledCourses {
			if enrolled.CourseID == 0 {
				errors["enrolledCourses"] = "Course ID is required for every entry!"
				break
			}
		}

		// Validate total price
		if reqData.TotalPrice == nil || *reqData.TotalPrice < 0 {
			errors["totalPrice"] = "Total price is required and must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedEnrollment", reqData)
		return c.Next()
	}
}
