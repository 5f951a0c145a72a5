package userRoutes

import (
	userController "courseapi/controllers/userControllers"
	"courseapi/middleware"
	"courseapi/validators/userValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/users")

	userGroup.Post("/check-email", userValidator.CheckEmail(), userController.CheckEmail)
	userGroup.Post("/register", userValidator.Register(), userController.Register)
	userGroup.Post("/login", userValidator.Login(), userController.Login)
	userGroup.Get("/details", middleware.JWTMiddleware, userController.GetProfile)

	// These two read the bearer header inside the controller
	userGroup.Post("/reset-password", userController.ResetPassword)
	userGroup.Put("/update-profile", userController.UpdateProfile)
}
