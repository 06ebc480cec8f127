package models

import (
	"math"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Course levels
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
)

// Instructor is denormalized into the course at creation time
type Instructor struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Bio    string `json:"bio"`
	Avatar string `json:"avatar"`
}

// Course represents a sellable course with its curriculum
type Course struct {
	gorm.Model
	Title            string         `json:"title" gorm:"not null"`
	Description      string         `json:"description"`
	ShortDescription string         `json:"shortDescription"`
	Instructor       Instructor     `json:"instructor" gorm:"embedded;embeddedPrefix:instructor_"`
	CategoryID       uint           `json:"categoryId" gorm:"index;not null"`
	Category         *Category      `json:"category,omitempty"`
	Level            string         `json:"level"` // Beginner, Intermediate, Advanced
	Price            float64        `json:"price" gorm:"default:0"`
	OriginalPrice    float64        `json:"originalPrice" gorm:"default:0"`
	DurationHours    int            `json:"durationHours" gorm:"default:0"`
	DurationMinutes  int            `json:"durationMinutes" gorm:"default:0"`
	Thumbnail        string         `json:"thumbnail"`
	PreviewVideo     string         `json:"previewVideo"`
	Language         string         `json:"language" gorm:"default:'English'"`
	Requirements     datatypes.JSON `json:"requirements"`
	WhatYouWillLearn datatypes.JSON `json:"whatYouWillLearn"`
	Tags             datatypes.JSON `json:"tags"`
	Subtitles        datatypes.JSON `json:"subtitles"`
	RatingAverage    float64        `json:"ratingAverage" gorm:"default:0"`
	RatingCount      int            `json:"ratingCount" gorm:"default:0"`
	EnrolledStudents int64          `json:"enrolledStudents" gorm:"default:0"` // incremented only by checkout
	IsPublished      bool           `json:"isPublished" gorm:"default:false"`
	IsFeatured       bool           `json:"isFeatured" gorm:"default:false"`
	IsDeleted        bool           `gorm:"default:false"`
	Lessons          []Lesson       `json:"curriculum,omitempty" gorm:"foreignKey:CourseID"`
}

// DiscountPercentage is round(100 * (originalPrice - price) / originalPrice)
func (c *Course) DiscountPercentage() int {
	if c.OriginalPrice > c.Price && c.OriginalPrice > 0 {
		return int(math.Round((c.OriginalPrice - c.Price) / c.OriginalPrice * 100))
	}
	return 0
}

// Lesson is one entry of a course curriculum, ordered by Position
type Lesson struct {
	gorm.Model
	CourseID    uint   `json:"courseId" gorm:"index;not null"`
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description"`
	Duration    int    `json:"duration" gorm:"default:0"` // minutes
	VideoURL    string `json:"videoUrl,omitempty"`
	Position    int    `json:"position" gorm:"default:0"`
}
