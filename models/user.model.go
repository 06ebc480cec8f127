package models

import (
	"time"

	"gorm.io/gorm"
)

// User roles
const (
	RoleStudent    = "student"
	RoleInstructor = "instructor"
	RoleAdmin      = "admin"
)

type User struct {
	gorm.Model
	FirstName string     `json:"firstName" gorm:"not null"`
	LastName  string     `json:"lastName" gorm:"not null"`
	Email     string     `json:"email" gorm:"unique;not null"`
	Password  string     `json:"-" gorm:"not null"`
	Avatar    string     `json:"avatar" gorm:"default:''"`
	Bio       string     `json:"bio" gorm:"default:''"`
	Role      string     `json:"role" gorm:"default:'student'"` // student, instructor, admin
	LastLogin *time.Time `json:"lastLogin"`
	IsDeleted bool       `gorm:"default:false"`
}

// FullName joins first and last name for display
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
