package services

import (
	"certiperu/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnroll(t *testing.T) {
	t.Run("creates a pending enrollment with the course price", func(t *testing.T) {
		db := setupTestDB(t)
		participant := createParticipant(t, db, "Ana Quispe", "44556677")
		course := createCourse(t, db, "Gestión Pública")

		enrollment, err := Enroll(db, participant.ID, course.ID)
		require.NoError(t, err)
		assert.Equal(t, models.EnrollmentPending, enrollment.Status)
		assert.Equal(t, course.Price, enrollment.Amount)
		assert.Nil(t, enrollment.PaidAt)
	})

	t.Run("rejects a second enrollment for the same pair", func(t *testing.T) {
		db := setupTestDB(t)
		participant := createParticipant(t, db, "Ana Quispe", "44556677")
		course := createCourse(t, db, "Gestión Pública")

		_, err := Enroll(db, participant.ID, course.ID)
		require.NoError(t, err)

		_, err = Enroll(db, participant.ID, course.ID)
		assert.ErrorIs(t, err, ErrAlreadyEnrolled)
	})

	t.Run("rejects inactive courses", func(t *testing.T) {
		db := setupTestDB(t)
		participant := createParticipant(t, db, "Ana Quispe", "44556677")
		course := createCourse(t, db, "Gestión Pública")
		require.NoError(t, db.Model(course).Update("is_active", false).Error)

		_, err := Enroll(db, participant.ID, course.ID)
		assert.ErrorIs(t, err, ErrCourseUnavailable)
	})

	t.Run("rejects enrollments past capacity", func(t *testing.T) {
		db := setupTestDB(t)
		first := createParticipant(t, db, "Ana Quispe", "44556677")
		second := createParticipant(t, db, "Luis Rojas", "11223344")
		course := createCourse(t, db, "Gestión Pública")
		require.NoError(t, db.Model(course).Update("capacity", 1).Error)

		_, err := Enroll(db, first.ID, course.ID)
		require.NoError(t, err)

		_, err = Enroll(db, second.ID, course.ID)
		assert.ErrorIs(t, err, ErrCourseUnavailable)
	})

	t.Run("unknown participant or course", func(t *testing.T) {
		db := setupTestDB(t)
		participant := createParticipant(t, db, "Ana Quispe", "44556677")
		course := createCourse(t, db, "Gestión Pública")

		_, err := Enroll(db, 9999, course.ID)
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = Enroll(db, participant.ID, 9999)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestTransitionEnrollment(t *testing.T) {
	t.Run("walks the allowed chain and stamps PaidAt once", func(t *testing.T) {
		db := setupTestDB(t)
		participant := createParticipant(t, db, "Ana Quispe", "44556677")
		course := createCourse(t, db, "Gestión Pública")
		enrollment, err := Enroll(db, participant.ID, course.ID)
		require.NoError(t, err)

		paid, err := TransitionEnrollment(db, enrollment.ID, models.EnrollmentPaid, "pago confirmado")
		require.NoError(t, err)
		require.NotNil(t, paid.PaidAt)
		assert.Equal(t, "pago confirmado", paid.Observations)
		paidAt := *paid.PaidAt

		inProgress, err := TransitionEnrollment(db, enrollment.ID, models.EnrollmentInProgress, "")
		require.NoError(t, err)
		assert.Equal(t, models.EnrollmentInProgress, inProgress.Status)

		completed, err := TransitionEnrollment(db, enrollment.ID, models.EnrollmentCompleted, "")
		require.NoError(t, err)
		assert.Equal(t, models.EnrollmentCompleted, completed.Status)
		require.NotNil(t, completed.PaidAt)
		assert.True(t, completed.PaidAt.Equal(paidAt))
	})

	t.Run("rejects transitions outside the table", func(t *testing.T) {
		db := setupTestDB(t)
		participant := createParticipant(t, db, "Ana Quispe", "44556677")
		course := createCourse(t, db, "Gestión Pública")
		enrollment, err := Enroll(db, participant.ID, course.ID)
		require.NoError(t, err)

		_, err = TransitionEnrollment(db, enrollment.ID, models.EnrollmentCompleted, "")
		assert.ErrorIs(t, err, ErrInvalidTransition)

		_, err = TransitionEnrollment(db, enrollment.ID, models.EnrollmentInProgress, "")
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("COMPLETED is final", func(t *testing.T) {
		db := setupTestDB(t)
		participant := createParticipant(t, db, "Ana Quispe", "44556677")
		course := createCourse(t, db, "Gestión Pública")
		enrollment, err := Enroll(db, participant.ID, course.ID)
		require.NoError(t, err)

		_, err = TransitionEnrollment(db, enrollment.ID, models.EnrollmentPaid, "")
		require.NoError(t, err)
		_, err = TransitionEnrollment(db, enrollment.ID, models.EnrollmentCompleted, "")
		require.NoError(t, err)

		_, err = TransitionEnrollment(db, enrollment.ID, models.EnrollmentPaid, "")
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("unknown enrollment", func(t *testing.T) {
		db := setupTestDB(t)
		_, err := TransitionEnrollment(db, 9999, models.EnrollmentPaid, "")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestListEnrollments(t *testing.T) {
	db := setupTestDB(t)
	ana := createParticipant(t, db, "Ana Quispe", "44556677")
	luis := createParticipant(t, db, "Luis Rojas", "11223344")
	course := createCourse(t, db, "Gestión Pública")

	first, err := Enroll(db, ana.ID, course.ID)
	require.NoError(t, err)
	_, err = Enroll(db, luis.ID, course.ID)
	require.NoError(t, err)
	_, err = TransitionEnrollment(db, first.ID, models.EnrollmentPaid, "")
	require.NoError(t, err)

	t.Run("filters by status", func(t *testing.T) {
		enrollments, total, err := ListEnrollments(db, EnrollmentFilter{Status: models.EnrollmentPaid})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, enrollments, 1)
		assert.Equal(t, ana.ID, enrollments[0].ParticipantID)
		assert.Equal(t, ana.FullName, enrollments[0].Participant.FullName)
	})

	t.Run("searches by participant name", func(t *testing.T) {
		enrollments, total, err := ListEnrollments(db, EnrollmentFilter{Search: "rojas"})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, enrollments, 1)
		assert.Equal(t, luis.ID, enrollments[0].ParticipantID)
	})

	t.Run("paginates", func(t *testing.T) {
		enrollments, total, err := ListEnrollments(db, EnrollmentFilter{Page: 1, Limit: 1})
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
		assert.Len(t, enrollments, 1)
	})
}
