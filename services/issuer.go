package services

import (
	"certiperu/models"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// maxCodeAttempts bounds the generate-and-insert retry loop for verification
// codes. A collision at 12 characters over a 36-symbol alphabet is already
// vanishingly rare.
const maxCodeAttempts = 5

// eligibleStatuses are the enrollment states that may receive a certificate.
var eligibleStatuses = map[string]bool{
	models.EnrollmentPaid:       true,
	models.EnrollmentInProgress: true,
	models.EnrollmentCompleted:  true,
}

// ManualIssueInput is the administrative direct-issuance form. No enrollment
// is required on this path.
type ManualIssueInput struct {
	ParticipantID uint
	CourseID      uint
	Grade         *float64
	GradeText     string
	Remarks       string
	StartDate     *time.Time
	EndDate       *time.Time
	Signatories   []models.Signatory
}

// IssueFromEnrollment mints a certificate for an eligible enrollment and
// marks the enrollment COMPLETED. On a duplicate it returns the existing
// certificate together with ErrDuplicateCertificate.
func IssueFromEnrollment(db *gorm.DB, enrollmentID uint, cfg InstitutionConfig) (*models.Certificate, error) {
	var enrollment models.Enrollment
	if err := db.First(&enrollment, enrollmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var participant models.Participant
	if err := db.Where("id = ? AND is_deleted = ?", enrollment.ParticipantID, false).First(&participant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var course models.Course
	if err := db.First(&course, enrollment.CourseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !eligibleStatuses[enrollment.Status] {
		return nil, ErrNotEligible
	}

	if existing, err := findIssued(db, participant.ID, course.ID); err != nil {
		return nil, err
	} else if existing != nil {
		return existing, ErrDuplicateCertificate
	}

	now := time.Now()
	start := enrollment.CreatedAt
	if course.StartDate != nil {
		start = *course.StartDate
	}
	end := now
	if course.EndDate != nil {
		end = *course.EndDate
	}

	cert := snapshotCertificate(&course, cfg)
	cert.ParticipantID = participant.ID
	cert.EnrollmentID = &enrollment.ID
	cert.StartDate = start
	cert.EndDate = end
	cert.IssuedAt = now

	// The insert and the enrollment completion commit together; a failure on
	// either leaves neither behind.
	var issued *models.Certificate
	err := db.Transaction(func(tx *gorm.DB) error {
		var txErr error
		issued, txErr = insertWithUniqueCode(tx, cert, func() (string, error) {
			return GenerateVerificationCode(cfg.CodeLength)
		}, cfg.BaseURL)
		if txErr != nil {
			return txErr
		}

		if enrollment.Status != models.EnrollmentCompleted {
			return tx.Model(&enrollment).Update("status", models.EnrollmentCompleted).Error
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrDuplicateCertificate) {
			return issued, err
		}
		return nil, err
	}

	return issued, nil
}

// IssueManual mints a certificate from the administrative form, without a
// pre-existing enrollment. The enrollment ledger is left untouched.
func IssueManual(db *gorm.DB, input ManualIssueInput, cfg InstitutionConfig) (*models.Certificate, error) {
	var participant models.Participant
	if err := db.Where("id = ? AND is_deleted = ?", input.ParticipantID, false).First(&participant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var course models.Course
	if err := db.First(&course, input.CourseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if existing, err := findIssued(db, participant.ID, course.ID); err != nil {
		return nil, err
	} else if existing != nil {
		return existing, ErrDuplicateCertificate
	}

	now := time.Now()
	start := now
	if course.StartDate != nil {
		start = *course.StartDate
	}
	if input.StartDate != nil {
		start = *input.StartDate
	}
	end := now
	if course.EndDate != nil {
		end = *course.EndDate
	}
	if input.EndDate != nil {
		end = *input.EndDate
	}

	cert := snapshotCertificate(&course, cfg)
	cert.ParticipantID = participant.ID
	cert.StartDate = start
	cert.EndDate = end
	cert.IssuedAt = now
	cert.Grade = input.Grade
	cert.GradeText = input.GradeText
	cert.Remarks = input.Remarks
	if len(input.Signatories) > 0 {
		cert.Signatories = input.Signatories
	}

	return insertWithUniqueCode(db, cert, func() (string, error) {
		return GenerateManualCode(), nil
	}, cfg.BaseURL)
}

// snapshotCertificate copies the course and institution fields that must stay
// frozen on the certificate.
func snapshotCertificate(course *models.Course, cfg InstitutionConfig) *models.Certificate {
	cert := &models.Certificate{
		CourseID:           course.ID,
		CourseName:         course.Name,
		CourseType:         course.Type,
		Modality:           course.Modality,
		AcademicHours:      course.AcademicHours,
		ChronologicalHours: course.ChronologicalHours,
		Credits:            course.Credits,
		Syllabus:           course.Syllabus,
		InstitutionName:    cfg.Name,
		InstitutionRUC:     cfg.RUC,
		InstitutionAddress: cfg.Address,
		Status:             models.CertificateIssued,
	}
	if cfg.SignatoryName != "" {
		cert.Signatories = []models.Signatory{{Name: cfg.SignatoryName, Title: cfg.SignatoryTitle}}
	}
	return cert
}

// insertWithUniqueCode attempts insert-and-handle-conflict rounds until the
// certificate lands with a globally unique code. A conflict on the issued
// (participant, course) partial index is reported as a duplicate certificate;
// any other unique violation is treated as a code collision and retried.
func insertWithUniqueCode(db *gorm.DB, cert *models.Certificate, nextCode func() (string, error), baseURL string) (*models.Certificate, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := nextCode()
		if err != nil {
			return nil, err
		}
		cert.ID = 0
		cert.Code = code
		cert.VerificationURL = VerificationURL(baseURL, code)

		// Each attempt runs in its own savepoint so a constraint conflict
		// does not poison an enclosing transaction on postgres.
		err = db.Transaction(func(tx *gorm.DB) error {
			return tx.Create(cert).Error
		})
		if err == nil {
			return cert, nil
		}
		if !isUniqueViolation(err) {
			return nil, err
		}

		if existing, ferr := findIssued(db, cert.ParticipantID, cert.CourseID); ferr != nil {
			return nil, ferr
		} else if existing != nil {
			return existing, ErrDuplicateCertificate
		}
	}
	return nil, ErrCodeGenerationExhausted
}

// findIssued returns the EMITIDO certificate for the pair, or nil.
func findIssued(db *gorm.DB, participantID, courseID uint) (*models.Certificate, error) {
	var existing models.Certificate
	err := db.Where("participant_id = ? AND course_id = ? AND status = ?",
		participantID, courseID, models.CertificateIssued).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return nil, err
}

// VerificationURL builds the public link embedded in the certificate QR code.
func VerificationURL(baseURL, code string) string {
	return fmt.Sprintf("%s/verificar/%s", strings.TrimRight(baseURL, "/"), code)
}
