package services

import (
	"certiperu/models"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

// allowedTransitions is the enrollment status transition table. The zero-value
// entry for COMPLETED makes it final.
var allowedTransitions = map[string][]string{
	models.EnrollmentPending:    {models.EnrollmentPaid},
	models.EnrollmentPaid:       {models.EnrollmentInProgress, models.EnrollmentCompleted},
	models.EnrollmentInProgress: {models.EnrollmentCompleted},
	models.EnrollmentCompleted:  {},
}

// Enroll registers a participant in a course. The new enrollment starts in
// PENDING state and carries the course's current price as the amount due.
// Payment capture happens elsewhere.
func Enroll(db *gorm.DB, participantID, courseID uint) (*models.Enrollment, error) {
	var participant models.Participant
	if err := db.Where("id = ? AND is_deleted = ?", participantID, false).First(&participant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !course.IsActive {
		return nil, ErrCourseUnavailable
	}

	if course.Capacity > 0 {
		var enrolled int64
		if err := db.Model(&models.Enrollment{}).Where("course_id = ?", course.ID).Count(&enrolled).Error; err != nil {
			return nil, err
		}
		if enrolled >= int64(course.Capacity) {
			return nil, ErrCourseUnavailable
		}
	}

	enrollment := models.Enrollment{
		ParticipantID: participant.ID,
		CourseID:      course.ID,
		Status:        models.EnrollmentPending,
		Amount:        course.Price,
	}

	// The (participant, course) pair is unique at the storage layer, so a
	// concurrent duplicate surfaces here as a constraint violation instead
	// of slipping past a prior read.
	if err := db.Create(&enrollment).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrAlreadyEnrolled
		}
		return nil, err
	}

	return &enrollment, nil
}

// TransitionEnrollment moves an enrollment to newStatus if the transition
// table allows it. Entering PAID stamps the payment timestamp exactly once.
func TransitionEnrollment(db *gorm.DB, enrollmentID uint, newStatus, observations string) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	if err := db.First(&enrollment, enrollmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	allowed, ok := allowedTransitions[enrollment.Status]
	if !ok {
		return nil, ErrInvalidTransition
	}
	valid := false
	for _, s := range allowed {
		if s == newStatus {
			valid = true
			break
		}
	}
	if !valid {
		return nil, ErrInvalidTransition
	}

	if newStatus == models.EnrollmentPaid && enrollment.PaidAt == nil {
		now := time.Now()
		enrollment.PaidAt = &now
	}
	enrollment.Status = newStatus
	if observations != "" {
		enrollment.Observations = observations
	}

	if err := db.Save(&enrollment).Error; err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// EnrollmentFilter narrows ListEnrollments
type EnrollmentFilter struct {
	Status string
	Search string
	Page   int
	Limit  int
}

// ListEnrollments returns enrollments newest-first with participant and
// course preloaded. Search matches participant name/document and course name,
// case-insensitively.
func ListEnrollments(db *gorm.DB, filter EnrollmentFilter) ([]models.Enrollment, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}

	q := db.Model(&models.Enrollment{}).
		Joins("JOIN participants ON participants.id = enrollments.participant_id").
		Joins("JOIN courses ON courses.id = enrollments.course_id")

	if filter.Status != "" {
		q = q.Where("enrollments.status = ?", filter.Status)
	}
	if filter.Search != "" {
		term := "%" + strings.ToLower(filter.Search) + "%"
		q = q.Where(
			"LOWER(participants.full_name) LIKE ? OR LOWER(participants.document_number) LIKE ? OR LOWER(courses.name) LIKE ?",
			term, term, term,
		)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var enrollments []models.Enrollment
	offset := (filter.Page - 1) * filter.Limit
	err := q.Preload("Participant").Preload("Course").
		Order("enrollments.created_at desc").
		Offset(offset).Limit(filter.Limit).
		Find(&enrollments).Error
	if err != nil {
		return nil, 0, err
	}

	return enrollments, total, nil
}

// isUniqueViolation recognizes unique-constraint errors from both the
// postgres and sqlite drivers.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value") || // postgres
		strings.Contains(msg, "UNIQUE constraint failed") // sqlite
}
