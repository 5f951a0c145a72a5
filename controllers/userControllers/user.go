package userController

import (
	"courseapi/config"
	"courseapi/database"
	"courseapi/middleware"
	"courseapi/models"
	"courseapi/utils"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CheckEmail reports whether an email is already registered. The status codes
// follow the product convention: 404 means the email is available, 409 means
// it is taken.
func CheckEmail(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedEmail").(*struct {
		Email string `json:"email"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var user models.User
	err := database.Database.Db.Where("email = ?", reqData.Email).First(&user).Error
	if err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Duplicate email found", nil)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No duplicate email found", nil)
	}

	return middleware.ErrorResponse(c, err)
}

func Register(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUser").(*struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Email     string `json:"email"`
		MobileNo  string `json:"mobileNo"`
		Password  string `json:"password"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Check if email already exists
	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email already exists", nil)
	}

	// Hash Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.ErrorResponse(c, err)
	}

	newUser := models.User{
		FirstName: reqData.FirstName,
		LastName:  reqData.LastName,
		Email:     reqData.Email,
		MobileNo:  reqData.MobileNo,
		Password:  string(hashedPassword),
	}

	if err := db.Create(&newUser).Error; err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.ErrorResponse(c, err)
	}

	go utils.SendWelcomeEmail(newUser.FirstName, newUser.Email)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully", nil)
}

func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("email = ?", reqData.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No email found", nil)
		}
		return middleware.ErrorResponse(c, err)
	}

	// Validate password
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Incorrect email or password", nil)
	}

	token, err := middleware.GenerateJWT(user.ID, user.Email, user.IsAdmin)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User logged in successfully", fiber.Map{
		"access": token,
	})
}

func GetProfile(c *fiber.Ctx) error {
	identity, ok := c.Locals("identity").(*middleware.Identity)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.First(&user, identity.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// A valid token whose id resolves to no record is treated as a
			// forged signature rather than a missing resource
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "invalid signature", nil)
		}
		return middleware.ErrorResponse(c, err)
	}

	// Blank the password before transmission
	user.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User details fetched successfully", user)
}

// ResetPassword reads the bearer token itself instead of relying on the
// route-level gate, so missing and invalid tokens map to 401 and 403 the way
// the endpoint documents them.
func ResetPassword(c *fiber.Ctx) error {
	identity, err := middleware.ParseIdentity(c)
	if err != nil {
		switch {
		case errors.Is(err, middleware.ErrNoToken):
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "No token provided", nil)
		case errors.Is(err, middleware.ErrBadHeader):
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid token format", nil)
		default:
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Invalid or expired token", nil)
		}
	}

	reqData := new(struct {
		NewPassword string `json:"newPassword"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}
	if reqData.NewPassword == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "New password is required", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.NewPassword), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.ErrorResponse(c, err)
	}

	result := database.Database.Db.Model(&models.User{}).
		Where("id = ?", identity.UserID).
		Update("password", string(hashedPassword))
	if result.Error != nil {
		return middleware.ErrorResponse(c, result.Error)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Password reset successfully", nil)
}

// UpdateProfile patches any non-empty subset of first name, last name and
// mobile number. Token handling mirrors ResetPassword.
func UpdateProfile(c *fiber.Ctx) error {
	identity, err := middleware.ParseIdentity(c)
	if err != nil {
		switch {
		case errors.Is(err, middleware.ErrNoToken):
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "No token provided", nil)
		case errors.Is(err, middleware.ErrBadHeader):
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid token format", nil)
		default:
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Invalid or expired token", nil)
		}
	}

	reqData := new(struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		MobileNo  string `json:"mobileNo"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}
	if reqData.FirstName == "" && reqData.LastName == "" && reqData.MobileNo == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No fields provided to update", nil)
	}

	var user models.User
	if err := database.Database.Db.First(&user, identity.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found", nil)
		}
		return middleware.ErrorResponse(c, err)
	}

	// Zero values are skipped, so only supplied fields change
	updates := models.User{
		FirstName: reqData.FirstName,
		LastName:  reqData.LastName,
		MobileNo:  reqData.MobileNo,
	}
	if err := database.Database.Db.Model(&user).Updates(updates).Error; err != nil {
		return middleware.ErrorResponse(c, err)
	}

	user.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully", user)
}
