package enrollmentRoutes

import (
	enrollmentController "courseapi/controllers/enrollmentControllers"
	"courseapi/middleware"
	"courseapi/validators/enrollmentValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupEnrollmentRoutes(app *fiber.App) {
	enrollmentGroup := app.Group("/enrollments")

	enrollmentGroup.Post("/enroll", middleware.JWTMiddleware, enrollmentValidator.Enroll(), enrollmentController.Enroll)
	enrollmentGroup.Get("/get-enrollments", middleware.JWTMiddleware, enrollmentController.GetEnrollments)
}
