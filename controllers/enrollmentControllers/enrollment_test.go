package enrollmentController_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"courseapi/config"
	"courseapi/database"
	"courseapi/middleware"
	"courseapi/models"
	"courseapi/routers/enrollmentRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) *fiber.App {
	config.AppConfig = &config.Config{
		JWTKey:    "test-secret",
		SaltRound: bcrypt.MinCost,
	}

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Course{}, &models.Enrollment{}, &models.EnrolledCourse{}))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	enrollmentRoutes.SetupEnrollmentRoutes(app)
	return app
}

func newUser(t *testing.T, email string, isAdmin bool) (models.User, string) {
	user := models.User{Email: email, Password: "irrelevant", IsAdmin: isAdmin}
	require.NoError(t, database.Database.Db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Email, user.IsAdmin)
	require.NoError(t, err)
	return user, token
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, map[string]interface{}) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	parsed := make(map[string]interface{})
	_ = json.NewDecoder(resp.Body).Decode(&parsed)
	return resp, parsed
}

func enrollPayload() map[string]interface{} {
	return map[string]interface{}{
		"enrolledCourses": []map[string]interface{}{
			{"courseId": 1},
			{"courseId": 2},
		},
		"totalPrice": 2400.0,
	}
}

func TestEnroll(t *testing.T) {
	app := setupApp(t)
	student, token := newUser(t, "student@b.com", false)

	resp, body := doRequest(t, app, fiber.MethodPost, "/enrollments/enroll", token, enrollPayload())
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Enrolled successfully", body["message"])

	// The enrollment belongs to the token's subject
	data := body["data"].(map[string]interface{})
	assert.EqualValues(t, student.ID, data["userId"])
	assert.Equal(t, "Enrolled", data["status"])
	assert.Len(t, data["enrolledCourses"], 2)

	var stored models.Enrollment
	require.NoError(t, database.Database.Db.Preload("EnrolledCourses").First(&stored).Error)
	assert.Equal(t, student.ID, stored.UserID)
	assert.Len(t, stored.EnrolledCourses, 2)
	assert.EqualValues(t, 2400, stored.TotalPrice)
}

func TestEnrollAdminForbidden(t *testing.T) {
	app := setupApp(t)
	_, token := newUser(t, "admin@b.com", true)

	resp, body := doRequest(t, app, fiber.MethodPost, "/enrollments/enroll", token, enrollPayload())
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Admin is forbidden", body["message"])

	var count int64
	database.Database.Db.Model(&models.Enrollment{}).Count(&count)
	assert.Zero(t, count)
}

func TestEnrollValidation(t *testing.T) {
	app := setupApp(t)
	_, token := newUser(t, "student@b.com", false)

	resp, _ := doRequest(t, app, fiber.MethodPost, "/enrollments/enroll", token, map[string]interface{}{
		"enrolledCourses": []map[string]interface{}{},
		"totalPrice":      100.0,
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, _ = doRequest(t, app, fiber.MethodPost, "/enrollments/enroll", token, map[string]interface{}{
		"enrolledCourses": []map[string]interface{}{{"courseId": 1}},
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// Missing token
	resp, _ = doRequest(t, app, fiber.MethodPost, "/enrollments/enroll", "", enrollPayload())
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestGetEnrollments(t *testing.T) {
	app := setupApp(t)
	_, token := newUser(t, "student@b.com", false)
	_, otherToken := newUser(t, "other@b.com", false)

	// Nothing enrolled yet
	resp, body := doRequest(t, app, fiber.MethodGet, "/enrollments/get-enrollments", token, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "No enrolled courses", body["message"])

	resp, _ = doRequest(t, app, fiber.MethodPost, "/enrollments/enroll", token, enrollPayload())
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, body = doRequest(t, app, fiber.MethodGet, "/enrollments/get-enrollments", token, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, body["data"], 1)

	// Only the caller's enrollments are returned
	resp, _ = doRequest(t, app, fiber.MethodGet, "/enrollments/get-enrollments", otherToken, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
