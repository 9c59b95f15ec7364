package services

import (
	"certiperu/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func issuedCertificate(t *testing.T, db *gorm.DB, doc, courseName string) *models.Certificate {
	t.Helper()
	participant := createParticipant(t, db, "Ana Quispe", doc)
	course := createCourse(t, db, courseName)
	enrollment := paidEnrollment(t, db, participant.ID, course.ID)

	cert, err := IssueFromEnrollment(db, enrollment.ID, testInstitutionConfig())
	require.NoError(t, err)
	return cert
}

func TestUpdateCertificate(t *testing.T) {
	db := setupTestDB(t)
	cert := issuedCertificate(t, db, "44556677", "Gestión Pública")

	grade := 15.0
	gradeText := "Aprobado"
	remarks := "nota rectificada"
	start := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)

	updated, err := UpdateCertificate(db, cert.ID, CertificateUpdateInput{
		Grade:     &grade,
		GradeText: &gradeText,
		Remarks:   &remarks,
		StartDate: &start,
	})
	require.NoError(t, err)
	require.NotNil(t, updated.Grade)
	assert.Equal(t, grade, *updated.Grade)
	assert.Equal(t, "Aprobado", updated.GradeText)
	assert.Equal(t, "nota rectificada", updated.Remarks)
	assert.True(t, updated.StartDate.Equal(start))
	assert.Equal(t, cert.Code, updated.Code)

	_, err = UpdateCertificate(db, 9999, CertificateUpdateInput{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestVoidCertificate(t *testing.T) {
	t.Run("appends the reason and keeps prior remarks", func(t *testing.T) {
		db := setupTestDB(t)
		cert := issuedCertificate(t, db, "44556677", "Gestión Pública")

		remarks := "emitido en ceremonia"
		_, err := UpdateCertificate(db, cert.ID, CertificateUpdateInput{Remarks: &remarks})
		require.NoError(t, err)

		voided, err := VoidCertificate(db, cert.ID, "fraude documentario")
		require.NoError(t, err)
		assert.Equal(t, models.CertificateVoided, voided.Status)
		assert.Equal(t, "emitido en ceremonia\n[ANULADO: fraude documentario]", voided.Remarks)
	})

	t.Run("voiding twice is a no-op", func(t *testing.T) {
		db := setupTestDB(t)
		cert := issuedCertificate(t, db, "44556677", "Gestión Pública")

		first, err := VoidCertificate(db, cert.ID, "error de datos")
		require.NoError(t, err)

		second, err := VoidCertificate(db, cert.ID, "otra razón")
		require.NoError(t, err)
		assert.Equal(t, first.Remarks, second.Remarks)
		assert.Equal(t, models.CertificateVoided, second.Status)
	})
}

func TestReactivateCertificate(t *testing.T) {
	t.Run("restores an annulled certificate", func(t *testing.T) {
		db := setupTestDB(t)
		cert := issuedCertificate(t, db, "44556677", "Gestión Pública")

		_, err := VoidCertificate(db, cert.ID, "error de datos")
		require.NoError(t, err)

		restored, err := ReactivateCertificate(db, cert.ID)
		require.NoError(t, err)
		assert.Equal(t, models.CertificateIssued, restored.Status)
		assert.Equal(t, cert.Code, restored.Code)
	})

	t.Run("refuses when the pair was reissued in the meantime", func(t *testing.T) {
		db := setupTestDB(t)
		cert := issuedCertificate(t, db, "44556677", "Gestión Pública")

		_, err := VoidCertificate(db, cert.ID, "error de datos")
		require.NoError(t, err)

		var enrollment models.Enrollment
		require.NoError(t, db.Where("participant_id = ?", cert.ParticipantID).First(&enrollment).Error)
		_, err = IssueFromEnrollment(db, enrollment.ID, testInstitutionConfig())
		require.NoError(t, err)

		_, err = ReactivateCertificate(db, cert.ID)
		assert.ErrorIs(t, err, ErrDuplicateCertificate)
	})
}

func TestDeleteCertificate(t *testing.T) {
	t.Run("issued certificates cannot be deleted", func(t *testing.T) {
		db := setupTestDB(t)
		cert := issuedCertificate(t, db, "44556677", "Gestión Pública")

		err := DeleteCertificate(db, cert.ID)
		assert.ErrorIs(t, err, ErrCertificateEmitted)
	})

	t.Run("voided certificates can be deleted", func(t *testing.T) {
		db := setupTestDB(t)
		cert := issuedCertificate(t, db, "44556677", "Gestión Pública")

		_, err := VoidCertificate(db, cert.ID, "error de datos")
		require.NoError(t, err)
		require.NoError(t, DeleteCertificate(db, cert.ID))

		var found models.Certificate
		err = db.First(&found, cert.ID).Error
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("unknown certificate", func(t *testing.T) {
		db := setupTestDB(t)
		assert.ErrorIs(t, DeleteCertificate(db, 9999), ErrNotFound)
	})
}

func TestListCertificates(t *testing.T) {
	db := setupTestDB(t)
	cert := issuedCertificate(t, db, "44556677", "Gestión Pública")

	other := createParticipant(t, db, "Luis Rojas", "11223344")
	course := createCourse(t, db, "Redacción Jurídica")
	enrollment := paidEnrollment(t, db, other.ID, course.ID)
	voided, err := IssueFromEnrollment(db, enrollment.ID, testInstitutionConfig())
	require.NoError(t, err)
	_, err = VoidCertificate(db, voided.ID, "error de datos")
	require.NoError(t, err)

	t.Run("filters by status", func(t *testing.T) {
		certs, total, err := ListCertificates(db, CertificateFilter{Status: models.CertificateIssued})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, certs, 1)
		assert.Equal(t, cert.Code, certs[0].Code)
	})

	t.Run("searches by snapshotted course name", func(t *testing.T) {
		certs, total, err := ListCertificates(db, CertificateFilter{Search: "jurídica"})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, certs, 1)
		assert.Equal(t, other.ID, certs[0].ParticipantID)
		assert.Equal(t, other.FullName, certs[0].Participant.FullName)
	})
}
