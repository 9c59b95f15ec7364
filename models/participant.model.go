package models

import (
	"time"

	"gorm.io/gorm"
)

// Participant is a person that enrolls in courses and receives certificates.
type Participant struct {
	gorm.Model
	FullName       string     `json:"full_name" gorm:"not null"`
	DocumentType   string     `json:"document_type" gorm:"default:'DNI'"` // DNI, CE, PASAPORTE
	DocumentNumber string     `json:"document_number" gorm:"uniqueIndex;not null"`
	Email          string     `json:"email" gorm:"uniqueIndex;not null"`
	Phone          string     `json:"phone" gorm:"default:''"`
	Password       string     `json:"-" gorm:"not null"`
	Role           string     `json:"role" gorm:"default:'PARTICIPANTE'"` // PARTICIPANTE, ADMIN
	LastLogin      *time.Time `json:"last_login"`
	IsDeleted      bool       `json:"-" gorm:"default:false"`
}
