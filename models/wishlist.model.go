package models

import "gorm.io/gorm"

// WishlistItem marks one course on a user's wishlist, set semantics
type WishlistItem struct {
	gorm.Model
	UserID   uint    `json:"userId" gorm:"index;not null"`
	CourseID uint    `json:"courseId" gorm:"index;not null"`
	Course   *Course `json:"course,omitempty"`
}
