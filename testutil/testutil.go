package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	cartRoutes "lms/routers/cartRoutes"
	categoryRoutes "lms/routers/categoryRoutes"
	courseRoutes "lms/routers/courseRoutes"
	userRoutes "lms/routers/userRoutes"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// SetupApp wires a fiber app with all routers against a fresh
// in-memory SQLite database and installs it as the global instance
func SetupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	config.AppConfig = &config.Config{
		Port:   "0",
		JWTKey: "test-secret",
	}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get test database handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	courseRoutes.SetupCourseRoutes(app)
	categoryRoutes.SetupCategoryRoutes(app)
	cartRoutes.SetupCartRoutes(app)
	userRoutes.SetupUserRoutes(app)

	t.Cleanup(func() { sqlDB.Close() })

	return app, db
}

// CreateUser inserts a user with the given role
func CreateUser(t *testing.T, db *gorm.DB, email, role string) models.User {
	t.Helper()

	user := models.User{
		FirstName: "Test",
		LastName:  "User",
		Email:     email,
		Password:  "irrelevant",
		Role:      role,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user
}

// CreateCategory inserts a category
func CreateCategory(t *testing.T, db *gorm.DB, name, slug string) models.Category {
	t.Helper()

	category := models.Category{Name: name, Slug: slug, IsActive: true}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("failed to create category: %v", err)
	}
	return category
}

// CreateCourse inserts a published course with the given prices and
// lesson count
func CreateCourse(t *testing.T, db *gorm.DB, categoryID uint, title string, price, originalPrice float64, lessons int) models.Course {
	t.Helper()

	course := models.Course{
		Title:         title,
		Description:   "test course",
		CategoryID:    categoryID,
		Level:         models.LevelBeginner,
		Price:         price,
		OriginalPrice: originalPrice,
		IsPublished:   true,
		Instructor: models.Instructor{
			Name:  "Ivan Instructor",
			Email: "ivan@lms.local",
		},
	}
	for i := 0; i < lessons; i++ {
		course.Lessons = append(course.Lessons, models.Lesson{
			Title:    fmt.Sprintf("Lesson %d", i+1),
			Duration: 10,
			VideoURL: fmt.Sprintf("/videos/lesson-%d.mp4", i+1),
			Position: i + 1,
		})
	}
	if err := db.Create(&course).Error; err != nil {
		t.Fatalf("failed to create course: %v", err)
	}
	return course
}

// Enroll inserts an enrollment directly
func Enroll(t *testing.T, db *gorm.DB, userID, courseID uint) models.Enrollment {
	t.Helper()

	enrollment := models.Enrollment{
		UserID:       userID,
		CourseID:     courseID,
		EnrolledAt:   time.Now(),
		LastAccessed: time.Now(),
	}
	if err := db.Create(&enrollment).Error; err != nil {
		t.Fatalf("failed to create enrollment: %v", err)
	}
	return enrollment
}

// AuthHeader returns a Bearer token header value for the user
func AuthHeader(t *testing.T, user models.User) string {
	t.Helper()

	token, err := middleware.GenerateJWT(user.ID, user.FullName(), user.Role, user.Email)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return "Bearer " + token
}

// Envelope is the standard JSON response wrapper
type Envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// DoRequest performs a JSON request against the app and decodes the
// response envelope
func DoRequest(t *testing.T, app *fiber.App, method, path, auth string, body interface{}) (*http.Response, Envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	var envelope Envelope
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	if len(raw) > 0 {
		// Non-enveloped responses (health, 404 fallback) are ignored
		_ = json.Unmarshal(raw, &envelope)
	}

	return resp, envelope
}
