package services

import (
	"certiperu/models"
	"errors"
	"time"

	"gorm.io/gorm"
)

// VerifiedCertificate is the redacted public view of an issued certificate.
// The full document number never appears here.
type VerifiedCertificate struct {
	Code               string    `json:"code"`
	FullName           string    `json:"full_name"`
	DocumentType       string    `json:"document_type"`
	DocumentNumber     string    `json:"document_number"` // masked, last 4 characters only
	CourseName         string    `json:"course_name"`
	CourseType         string    `json:"course_type"`
	Modality           string    `json:"modality"`
	AcademicHours      int       `json:"academic_hours"`
	ChronologicalHours int       `json:"chronological_hours"`
	Credits            float64   `json:"credits"`
	Syllabus           []string  `json:"syllabus,omitempty"`
	StartDate          time.Time `json:"start_date"`
	EndDate            time.Time `json:"end_date"`
	IssuedAt           time.Time `json:"issued_at"`
	InstitutionName    string    `json:"institution_name"`
	InstitutionRUC     string    `json:"institution_ruc"`
	Grade              *float64  `json:"grade,omitempty"`
	GradeText          string    `json:"grade_text,omitempty"`
}

// VerificationResult is the public answer for a verification code.
type VerificationResult struct {
	Valid       bool                 `json:"valid"`
	Status      string               `json:"status,omitempty"`
	Message     string               `json:"message"`
	Certificate *VerifiedCertificate `json:"certificate,omitempty"`
}

// Verify answers whether code belongs to a valid, currently issued
// certificate. Unknown codes return a structured invalid result together
// with ErrNotFound so the transport can pick the right status.
func Verify(db *gorm.DB, code string) (*VerificationResult, error) {
	if IsPreviewCode(code) {
		return &VerificationResult{
			Valid:   false,
			Status:  "VISTA_PREVIA",
			Message: "Este documento es una vista previa sin valor oficial.",
		}, nil
	}

	var cert models.Certificate
	err := db.Preload("Participant").Where("code = ?", code).First(&cert).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &VerificationResult{
				Valid:   false,
				Message: "No se encontró un certificado con el código ingresado.",
			}, ErrNotFound
		}
		return nil, err
	}

	if cert.Status == models.CertificateVoided {
		return &VerificationResult{
			Valid:   false,
			Status:  models.CertificateVoided,
			Message: "El certificado fue anulado y ya no tiene validez.",
		}, nil
	}

	return &VerificationResult{
		Valid:   true,
		Status:  cert.Status,
		Message: "Certificado válido.",
		Certificate: &VerifiedCertificate{
			Code:               cert.Code,
			FullName:           cert.Participant.FullName,
			DocumentType:       cert.Participant.DocumentType,
			DocumentNumber:     MaskDocumentNumber(cert.Participant.DocumentNumber),
			CourseName:         cert.CourseName,
			CourseType:         cert.CourseType,
			Modality:           cert.Modality,
			AcademicHours:      cert.AcademicHours,
			ChronologicalHours: cert.ChronologicalHours,
			Credits:            cert.Credits,
			Syllabus:           cert.Syllabus,
			StartDate:          cert.StartDate,
			EndDate:            cert.EndDate,
			IssuedAt:           cert.IssuedAt,
			InstitutionName:    cert.InstitutionName,
			InstitutionRUC:     cert.InstitutionRUC,
			Grade:              cert.Grade,
			GradeText:          cert.GradeText,
		},
	}, nil
}

// MaskDocumentNumber hides everything but the last 4 characters behind a
// fixed-width placeholder.
func MaskDocumentNumber(doc string) string {
	if len(doc) <= 4 {
		return "****" + doc
	}
	return "****" + doc[len(doc)-4:]
}
