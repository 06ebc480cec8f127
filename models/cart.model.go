package models

import (
	"time"

	"gorm.io/gorm"
)

// CartItem stages one course in a user's cart. Duplicates per
// (user, course) are rejected by the cart controller, not the schema.
type CartItem struct {
	gorm.Model
	UserID   uint      `json:"userId" gorm:"index;not null"`
	CourseID uint      `json:"courseId" gorm:"index;not null"`
	AddedAt  time.Time `json:"addedAt"`
	Course   *Course   `json:"course,omitempty"`
}
