package models

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment links one user to one course with progress state.
// Created only by checkout and never deleted. At most one per
// (user, course), enforced at creation time.
type Enrollment struct {
	gorm.Model
	UserID           uint              `json:"userId" gorm:"index;not null"`
	CourseID         uint              `json:"courseId" gorm:"index;not null"`
	EnrolledAt       time.Time         `json:"enrolledAt"`
	Progress         int               `json:"progress" gorm:"default:0"` // 0-100
	LastAccessed     time.Time         `json:"lastAccessed"`
	CompletedLessons []CompletedLesson `json:"completedLessons,omitempty" gorm:"foreignKey:EnrollmentID"`
	Course           *Course           `json:"course,omitempty"`
}

// CompletedLesson records one finished lesson of an enrollment
type CompletedLesson struct {
	gorm.Model
	EnrollmentID uint `json:"enrollmentId" gorm:"index;not null"`
	LessonID     uint `json:"lessonId" gorm:"index;not null"`
}
