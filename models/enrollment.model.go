package models

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment statuses
const (
	EnrollmentPending    = "PENDING"
	EnrollmentPaid       = "PAID"
	EnrollmentInProgress = "IN_PROGRESS"
	EnrollmentCompleted  = "COMPLETED"
)

// Enrollment joins exactly one participant and one course.
// The (participant_id, course_id) pair is unique at the storage layer.
type Enrollment struct {
	gorm.Model
	ParticipantID uint       `json:"participant_id" gorm:"uniqueIndex:idx_enrollment_pair;not null"`
	CourseID      uint       `json:"course_id" gorm:"uniqueIndex:idx_enrollment_pair;not null"`
	Status        string     `json:"status" gorm:"default:'PENDING'"`
	Amount        float64    `json:"amount" gorm:"default:0"` // price of the course at enrollment time
	PaidAt        *time.Time `json:"paid_at"`
	Observations  string     `json:"observations"`

	Participant Participant `json:"participant,omitempty" gorm:"foreignKey:ParticipantID"`
	Course      Course      `json:"course,omitempty" gorm:"foreignKey:CourseID"`
}
