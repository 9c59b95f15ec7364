package services

import (
	"certiperu/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerify(t *testing.T) {
	t.Run("issued certificate returns the redacted view", func(t *testing.T) {
		db := setupTestDB(t)
		cert := issuedCertificate(t, db, "44556677", "Gestión Pública")

		result, err := Verify(db, cert.Code)
		require.NoError(t, err)
		assert.True(t, result.Valid)
		assert.Equal(t, models.CertificateIssued, result.Status)
		require.NotNil(t, result.Certificate)
		assert.Equal(t, cert.Code, result.Certificate.Code)
		assert.Equal(t, "Ana Quispe", result.Certificate.FullName)
		assert.Equal(t, "****6677", result.Certificate.DocumentNumber)
		assert.NotContains(t, result.Certificate.DocumentNumber, "44556677")
		assert.Equal(t, "Gestión Pública", result.Certificate.CourseName)
		assert.Equal(t, []string{"Módulo 1: Fundamentos", "Módulo 2: Normativa"}, result.Certificate.Syllabus)
	})

	t.Run("unknown codes return not found", func(t *testing.T) {
		db := setupTestDB(t)

		result, err := Verify(db, "NOSUCHCODE12")
		assert.ErrorIs(t, err, ErrNotFound)
		require.NotNil(t, result)
		assert.False(t, result.Valid)
		assert.Nil(t, result.Certificate)
	})

	t.Run("preview codes never resolve to data", func(t *testing.T) {
		db := setupTestDB(t)

		for _, code := range []string{"PREVIEW-ABC123", "preview-abc123"} {
			result, err := Verify(db, code)
			require.NoError(t, err)
			assert.False(t, result.Valid)
			assert.Equal(t, "VISTA_PREVIA", result.Status)
			assert.Nil(t, result.Certificate)
		}
	})

	t.Run("voided certificates answer invalid without data", func(t *testing.T) {
		db := setupTestDB(t)
		cert := issuedCertificate(t, db, "44556677", "Gestión Pública")
		_, err := VoidCertificate(db, cert.ID, "fraude documentario")
		require.NoError(t, err)

		result, err := Verify(db, cert.Code)
		require.NoError(t, err)
		assert.False(t, result.Valid)
		assert.Equal(t, models.CertificateVoided, result.Status)
		assert.Nil(t, result.Certificate)
	})
}

func TestMaskDocumentNumber(t *testing.T) {
	assert.Equal(t, "****5678", MaskDocumentNumber("12345678"))
	assert.Equal(t, "****6789", MaskDocumentNumber("001234456789"))
	assert.Equal(t, "****123", MaskDocumentNumber("123"))
	assert.Equal(t, "****", MaskDocumentNumber(""))
}
