package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Certificate lifecycle states
const (
	CertificateIssued = "EMITIDO"
	CertificateVoided = "ANULADO"
)

// Signatory is one (name, title) pair printed in the signature block
type Signatory struct {
	Name  string `json:"name"`
	Title string `json:"title"`
}

// Certificate is an immutable snapshot minted at issuance time. Course and
// institution fields are denormalized on purpose: later edits to the live
// Course or settings must not alter an already issued certificate.
type Certificate struct {
	gorm.Model
	Code          string `json:"code" gorm:"uniqueIndex;not null"`
	ParticipantID uint   `json:"participant_id" gorm:"index;not null"`
	CourseID      uint   `json:"course_id" gorm:"index;not null"`
	EnrollmentID  *uint  `json:"enrollment_id" gorm:"index"` // nil on the manual issuance path

	// Course snapshot
	CourseName         string                      `json:"course_name" gorm:"not null"`
	CourseType         string                      `json:"course_type"`
	Modality           string                      `json:"modality"`
	AcademicHours      int                         `json:"academic_hours"`
	ChronologicalHours int                         `json:"chronological_hours"`
	Credits            float64                     `json:"credits"`
	Syllabus           datatypes.JSONSlice[string] `json:"syllabus"`

	// Institution snapshot
	InstitutionName    string                         `json:"institution_name"`
	InstitutionRUC     string                         `json:"institution_ruc"`
	InstitutionAddress string                         `json:"institution_address"`
	Signatories        datatypes.JSONSlice[Signatory] `json:"signatories"`

	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	IssuedAt  time.Time `json:"issued_at"`

	Grade     *float64 `json:"grade"`
	GradeText string   `json:"grade_text"`
	Remarks   string   `json:"remarks"`

	Status          string `json:"status" gorm:"default:'EMITIDO'"`
	VerificationURL string `json:"verification_url"`

	Participant Participant `json:"participant,omitempty" gorm:"foreignKey:ParticipantID"`
}
