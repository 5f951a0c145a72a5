package courseRoutes

import (
	courseController "courseapi/controllers/courseControllers"
	"courseapi/middleware"
	"courseapi/validators/courseValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/courses")

	// Admin course management
	courseGroup.Post("/", middleware.JWTMiddleware, middleware.AdminMiddleware, courseValidator.CreateCourse(), courseController.AddCourse)
	courseGroup.Get("/all", middleware.JWTMiddleware, middleware.AdminMiddleware, courseController.GetAllCourses)
	courseGroup.Patch("/:courseId", middleware.JWTMiddleware, middleware.AdminMiddleware, courseValidator.CourseID(), courseController.UpdateCourse)
	courseGroup.Patch("/:courseId/archive", middleware.JWTMiddleware, middleware.AdminMiddleware, courseValidator.CourseID(), courseController.ArchiveCourse)
	courseGroup.Patch("/:courseId/activate", middleware.JWTMiddleware, middleware.AdminMiddleware, courseValidator.CourseID(), courseController.ActivateCourse)

	// Public catalog
	courseGroup.Get("/", courseController.GetAllActive)
	courseGroup.Post("/search", courseValidator.SearchCourse(), courseController.SearchCourses)
	courseGroup.Get("/specific/:courseId", courseValidator.CourseID(), courseController.GetCourse)
}
