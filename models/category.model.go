package models

import "gorm.io/gorm"

// Category groups courses in the public catalog
type Category struct {
	gorm.Model
	Name        string `json:"name" gorm:"not null"`
	Slug        string `json:"slug" gorm:"uniqueIndex;not null"`
	Description string `json:"description"`
	IsDeleted   bool   `json:"-" gorm:"default:false"`
}
