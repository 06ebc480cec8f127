package main

import (
	"encoding/json"
	"log"

	"lms/config"
	"lms/database"
	"lms/models"
	"lms/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
)

// Seeds the database with demo users, categories and courses.
// Run with: go run ./scripts
func main() {
	config.LoadConfig()
	database.ConnectDb()
	db := database.Database.Db

	users := []models.User{
		{FirstName: "Ada", LastName: "Admin", Email: "admin@lms.local", Role: models.RoleAdmin},
		{FirstName: "Ivan", LastName: "Instructor", Email: "ivan@lms.local", Role: models.RoleInstructor, Bio: "Teaching web development since 2015."},
		{FirstName: "Sara", LastName: "Student", Email: "sara@lms.local", Role: models.RoleStudent},
	}
	for i := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte("password123"), config.AppConfig.SaltRound)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}
		users[i].Password = string(hash)
		if err := db.Where("email = ?", users[i].Email).FirstOrCreate(&users[i]).Error; err != nil {
			log.Fatalf("Failed to seed user %s: %v", users[i].Email, err)
		}
	}

	parent := models.Category{Name: "Development", Slug: utils.Slugify("Development"), Description: "Everything code", DisplayOrder: 1, IsActive: true}
	if err := db.Where("slug = ?", parent.Slug).FirstOrCreate(&parent).Error; err != nil {
		log.Fatalf("Failed to seed category: %v", err)
	}

	web := models.Category{Name: "Web Development", Slug: utils.Slugify("Web Development"), ParentID: &parent.ID, DisplayOrder: 1, IsActive: true}
	if err := db.Where("slug = ?", web.Slug).FirstOrCreate(&web).Error; err != nil {
		log.Fatalf("Failed to seed category: %v", err)
	}

	instructor := users[1]
	tags, _ := json.Marshal([]string{"go", "backend", "api"})

	course := models.Course{
		Title:            "Building REST APIs in Go",
		Description:      "Design and ship production REST services with Fiber and GORM.",
		ShortDescription: "Go REST APIs from zero to deployed.",
		Instructor: models.Instructor{
			Name:  instructor.FullName(),
			Email: instructor.Email,
			Bio:   instructor.Bio,
		},
		CategoryID:    web.ID,
		Level:         models.LevelIntermediate,
		Price:         49.99,
		OriginalPrice: 99.99,
		DurationHours: 12,
		Thumbnail:     "/uploads/go-rest.png",
		Tags:          datatypes.JSON(tags),
		IsPublished:   true,
		IsFeatured:    true,
		Lessons: []models.Lesson{
			{Title: "Project setup", Duration: 18, Position: 1},
			{Title: "Routing and middleware", Duration: 42, Position: 2},
			{Title: "Persistence with GORM", Duration: 55, Position: 3},
			{Title: "Shipping it", Duration: 35, Position: 4},
		},
	}
	if err := db.Where("title = ?", course.Title).FirstOrCreate(&course).Error; err != nil {
		log.Fatalf("Failed to seed course: %v", err)
	}

	log.Println("Seeding completed successfully.")
}
