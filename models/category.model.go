package models

import "gorm.io/gorm"

// Category groups courses into a tree via ParentID
type Category struct {
	gorm.Model
	Name          string     `json:"name" gorm:"unique;not null"`
	Slug          string     `json:"slug" gorm:"uniqueIndex;not null"`
	Description   string     `json:"description"`
	Icon          string     `json:"icon" gorm:"default:'folder'"`
	Color         string     `json:"color" gorm:"default:'#3B82F6'"`
	ParentID      *uint      `json:"parentId" gorm:"index"`
	Parent        *Category  `json:"parentCategory,omitempty" gorm:"foreignKey:ParentID"`
	Subcategories []Category `json:"subcategories,omitempty" gorm:"foreignKey:ParentID"`
	DisplayOrder  int        `json:"displayOrder" gorm:"default:0"`
	IsActive      bool       `json:"isActive" gorm:"default:true"`
	IsDeleted     bool       `gorm:"default:false"`

	// CourseCount is recomputed on read, never stored
	CourseCount int64 `json:"courseCount" gorm:"-"`
}
