package services

import (
	"certiperu/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadInstitutionConfig(t *testing.T) {
	t.Run("missing settings row yields zero institution fields", func(t *testing.T) {
		db := setupTestDB(t)

		cfg, err := LoadInstitutionConfig(db, "https://certificados.example.pe", 12)
		require.NoError(t, err)
		assert.Empty(t, cfg.Name)
		assert.Empty(t, cfg.RUC)
		assert.Equal(t, "https://certificados.example.pe", cfg.BaseURL)
		assert.Equal(t, 12, cfg.CodeLength)
	})

	t.Run("reads the settings row", func(t *testing.T) {
		db := setupTestDB(t)
		require.NoError(t, db.Create(&models.InstitutionSetting{
			Name:           "Instituto Peruano de Capacitación",
			RUC:            "20123456789",
			Address:        "Av. Arequipa 1234, Lima",
			SignatoryName:  "María Torres",
			SignatoryTitle: "Directora Académica",
		}).Error)

		cfg, err := LoadInstitutionConfig(db, "https://certificados.example.pe", 12)
		require.NoError(t, err)
		assert.Equal(t, "Instituto Peruano de Capacitación", cfg.Name)
		assert.Equal(t, "20123456789", cfg.RUC)
		assert.Equal(t, "María Torres", cfg.SignatoryName)
	})

	t.Run("issued certificates keep the old snapshot after edits", func(t *testing.T) {
		db := setupTestDB(t)
		participant := createParticipant(t, db, "Ana Quispe", "44556677")
		course := createCourse(t, db, "Gestión Pública")
		enrollment := paidEnrollment(t, db, participant.ID, course.ID)

		cert, err := IssueFromEnrollment(db, enrollment.ID, testInstitutionConfig())
		require.NoError(t, err)

		require.NoError(t, db.Create(&models.InstitutionSetting{
			Name: "Nuevo Nombre Institucional",
			RUC:  "20999999999",
		}).Error)

		var stored models.Certificate
		require.NoError(t, db.First(&stored, cert.ID).Error)
		assert.Equal(t, "Instituto Peruano de Capacitación", stored.InstitutionName)
		assert.Equal(t, "20123456789", stored.InstitutionRUC)
	})
}
