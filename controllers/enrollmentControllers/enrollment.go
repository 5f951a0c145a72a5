package enrollmentController

import (
	"courseapi/database"
	"courseapi/middleware"
	"courseapi/models"
	"courseapi/utils"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Enroll records the caller's course selection. Submitted course ids and the
// total price are stored as given; only non-admin identities may enroll.
func Enroll(c *fiber.Ctx) error {
	identity, ok := c.Locals("identity").(*middleware.Identity)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	if identity.IsAdmin {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Admin is forbidden", nil)
	}

	reqData, ok := c.Locals("validatedEnrollment").(*struct {
		EnrolledCourses []models.EnrolledCourse `json:"enrolledCourses"`
		TotalPrice      *float64                `json:"totalPrice"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	enrollment := models.Enrollment{
		UserID:          identity.UserID,
		EnrolledCourses: reqData.EnrolledCourses,
		TotalPrice:      *reqData.TotalPrice,
		EnrolledOn:      time.Now(),
		Status:          "Enrolled",
	}

	// Creates the enrollment and its course rows in one go
	if err := database.Database.Db.Create(&enrollment).Error; err != nil {
		return middleware.ErrorResponse(c, err)
	}

	go utils.SendEnrollmentEmail(identity.Email, enrollment.TotalPrice)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrolled successfully", enrollment)
}

func GetEnrollments(c *fiber.Ctx) error {
	identity, ok := c.Locals("identity").(*middleware.Identity)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var enrollments []models.Enrollment
	if err := database.Database.Db.
		Where("user_id = ?", identity.UserID).
		Preload("EnrolledCourses").
		Find(&enrollments).Error; err != nil {
		return middleware.ErrorResponse(c, err)
	}

	if len(enrollments) == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No enrolled courses", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully", enrollments)
}
