package services

import (
	"certiperu/models"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// CertificateUpdateInput carries the only fields editable after issuance.
// Participant, course link and code are immutable and rejected upstream.
type CertificateUpdateInput struct {
	Grade     *float64
	GradeText *string
	Remarks   *string
	StartDate *time.Time
	EndDate   *time.Time
}

// UpdateCertificate applies the editable fields to an existing certificate.
func UpdateCertificate(db *gorm.DB, id uint, input CertificateUpdateInput) (*models.Certificate, error) {
	var cert models.Certificate
	if err := db.First(&cert, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if input.Grade != nil {
		cert.Grade = input.Grade
	}
	if input.GradeText != nil {
		cert.GradeText = *input.GradeText
	}
	if input.Remarks != nil {
		cert.Remarks = *input.Remarks
	}
	if input.StartDate != nil {
		cert.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		cert.EndDate = *input.EndDate
	}

	if err := db.Save(&cert).Error; err != nil {
		return nil, err
	}
	return &cert, nil
}

// VoidCertificate moves a certificate to ANULADO and appends the reason to
// remarks. Prior remarks are never overwritten. Voiding an already voided
// certificate is a no-op.
func VoidCertificate(db *gorm.DB, id uint, reason string) (*models.Certificate, error) {
	var cert models.Certificate
	if err := db.First(&cert, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if cert.Status == models.CertificateVoided {
		return &cert, nil
	}

	marker := fmt.Sprintf("[ANULADO: %s]", strings.TrimSpace(reason))
	if cert.Remarks == "" {
		cert.Remarks = marker
	} else {
		cert.Remarks = cert.Remarks + "\n" + marker
	}
	cert.Status = models.CertificateVoided

	if err := db.Save(&cert).Error; err != nil {
		return nil, err
	}
	return &cert, nil
}

// ReactivateCertificate reverses a void. If another issued certificate for
// the pair appeared in the meantime, the storage-level partial index rejects
// the flip and the conflict is surfaced as a duplicate.
func ReactivateCertificate(db *gorm.DB, id uint) (*models.Certificate, error) {
	var cert models.Certificate
	if err := db.First(&cert, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if cert.Status == models.CertificateIssued {
		return &cert, nil
	}

	cert.Status = models.CertificateIssued
	if err := db.Save(&cert).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateCertificate
		}
		return nil, err
	}
	return &cert, nil
}

// DeleteCertificate removes a certificate. Issued certificates cannot be
// deleted; void first.
func DeleteCertificate(db *gorm.DB, id uint) error {
	var cert models.Certificate
	if err := db.First(&cert, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if cert.Status == models.CertificateIssued {
		return ErrCertificateEmitted
	}

	return db.Delete(&cert).Error
}

// CertificateFilter narrows ListCertificates
type CertificateFilter struct {
	Status string
	Search string
	Page   int
	Limit  int
}

// ListCertificates returns certificates newest-first with the participant
// preloaded. Search matches participant name/document and the snapshotted
// course name.
func ListCertificates(db *gorm.DB, filter CertificateFilter) ([]models.Certificate, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}

	q := db.Model(&models.Certificate{}).
		Joins("JOIN participants ON participants.id = certificates.participant_id")

	if filter.Status != "" {
		q = q.Where("certificates.status = ?", filter.Status)
	}
	if filter.Search != "" {
		term := "%" + strings.ToLower(filter.Search) + "%"
		q = q.Where(
			"LOWER(participants.full_name) LIKE ? OR LOWER(participants.document_number) LIKE ? OR LOWER(certificates.course_name) LIKE ?",
			term, term, term,
		)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var certificates []models.Certificate
	offset := (filter.Page - 1) * filter.Limit
	err := q.Preload("Participant").
		Order("certificates.issued_at desc").
		Offset(offset).Limit(filter.Limit).
		Find(&certificates).Error
	if err != nil {
		return nil, 0, err
	}

	return certificates, total, nil
}
