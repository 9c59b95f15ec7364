package verifyController

import (
	"certiperu/database"
	"certiperu/models"
	"certiperu/services"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(t.TempDir()+"/test.db"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	app.Get("/verificar/:code", VerifyCertificate)
	return app, db
}

func verifyRequest(t *testing.T, app *fiber.App, code string) (int, services.VerificationResult) {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest("GET", "/verificar/"+code, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	var result services.VerificationResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return resp.StatusCode, result
}

func TestVerifyCertificate(t *testing.T) {
	t.Run("unknown code answers 404 with a structured body", func(t *testing.T) {
		app, _ := setupApp(t)

		status, result := verifyRequest(t, app, "NOSUCHCODE12")
		assert.Equal(t, fiber.StatusNotFound, status)
		assert.False(t, result.Valid)
		assert.NotEmpty(t, result.Message)
		assert.Nil(t, result.Certificate)
	})

	t.Run("issued certificate answers 200 with the redacted view", func(t *testing.T) {
		app, db := setupApp(t)

		participant := models.Participant{
			FullName:       "Ana Quispe",
			DocumentType:   "DNI",
			DocumentNumber: "44556677",
			Email:          "ana@example.com",
			Password:       "not-a-real-hash",
		}
		require.NoError(t, db.Create(&participant).Error)

		cert := models.Certificate{
			Code:            "A1B2C3D4E5F6",
			ParticipantID:   participant.ID,
			CourseID:        1,
			CourseName:      "Gestión Pública",
			CourseType:      models.CourseTypeCurso,
			Modality:        models.ModalityVirtual,
			Syllabus:        datatypes.JSONSlice[string]{"Módulo 1: Fundamentos"},
			Status:          models.CertificateIssued,
			StartDate:       time.Now().AddDate(0, -3, 0),
			EndDate:         time.Now(),
			IssuedAt:        time.Now(),
			InstitutionName: "Instituto Peruano de Capacitación",
		}
		require.NoError(t, db.Create(&cert).Error)

		status, result := verifyRequest(t, app, cert.Code)
		assert.Equal(t, fiber.StatusOK, status)
		assert.True(t, result.Valid)
		require.NotNil(t, result.Certificate)
		assert.Equal(t, "****6677", result.Certificate.DocumentNumber)
		assert.Equal(t, "Gestión Pública", result.Certificate.CourseName)
		assert.Equal(t, []string{"Módulo 1: Fundamentos"}, result.Certificate.Syllabus)
	})

	t.Run("preview code answers 200 and never leaks data", func(t *testing.T) {
		app, _ := setupApp(t)

		status, result := verifyRequest(t, app, "PREVIEW-ABC123")
		assert.Equal(t, fiber.StatusOK, status)
		assert.False(t, result.Valid)
		assert.Equal(t, "VISTA_PREVIA", result.Status)
		assert.Nil(t, result.Certificate)
	})
}
