package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Course types offered by the institution
const (
	CourseTypeDiplomado  = "DIPLOMADO"  // long-form program
	CourseTypeCurso      = "CURSO"      // mid-length certificate course
	CourseTypeConstancia = "CONSTANCIA" // short constancia
)

const (
	ModalityPresencial     = "PRESENCIAL"
	ModalityVirtual        = "VIRTUAL"
	ModalitySemipresencial = "SEMIPRESENCIAL"
)

// Course represents a catalog entry
type Course struct {
	gorm.Model
	Name               string                      `json:"name" gorm:"not null"`
	Slug               string                      `json:"slug" gorm:"uniqueIndex;not null"`
	Description        string                      `json:"description"`
	Type               string                      `json:"type" gorm:"default:'CURSO'"`
	Modality           string                      `json:"modality" gorm:"default:'VIRTUAL'"`
	AcademicHours      int                         `json:"academic_hours" gorm:"default:0"`
	ChronologicalHours int                         `json:"chronological_hours" gorm:"default:0"`
	Credits            float64                     `json:"credits" gorm:"default:0"`
	Syllabus           datatypes.JSONSlice[string] `json:"syllabus"`
	Price              float64                     `json:"price" gorm:"default:0"`
	Capacity           int                         `json:"capacity" gorm:"default:0"` // 0 = unlimited
	StartDate          *time.Time                  `json:"start_date"`
	EndDate            *time.Time                  `json:"end_date"`
	IsActive           bool                        `json:"is_active" gorm:"default:true"`
	IsFeatured         bool                        `json:"is_featured" gorm:"default:false"`
	CategoryID         *uint                       `json:"category_id" gorm:"index"`
	IsDeleted          bool                        `json:"-" gorm:"default:false"`
}

// ValidCourseType reports whether t is one of the declared course types.
func ValidCourseType(t string) bool {
	return t == CourseTypeDiplomado || t == CourseTypeCurso || t == CourseTypeConstancia
}

// ValidModality reports whether m is one of the declared modalities.
func ValidModality(m string) bool {
	return m == ModalityPresencial || m == ModalityVirtual || m == ModalitySemipresencial
}
