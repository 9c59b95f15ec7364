package services

import (
	"certiperu/database"
	"certiperu/models"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB creates an isolated sqlite database with the full schema,
// including the partial unique index on issued certificates.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(t.TempDir()+"/test.db"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "Failed to open test database")

	require.NoError(t, database.Migrate(db), "Failed to run migrations")
	return db
}

func createParticipant(t *testing.T, db *gorm.DB, name, docNumber string) *models.Participant {
	t.Helper()

	participant := &models.Participant{
		FullName:       name,
		DocumentType:   "DNI",
		DocumentNumber: docNumber,
		Email:          docNumber + "@example.com",
		Password:       "not-a-real-hash",
	}
	require.NoError(t, db.Create(participant).Error)
	return participant
}

func createCourse(t *testing.T, db *gorm.DB, name string) *models.Course {
	t.Helper()

	course := &models.Course{
		Name:          name,
		Slug:          Slugify(name),
		Type:          models.CourseTypeCurso,
		Modality:      models.ModalityVirtual,
		AcademicHours: 120,
		Credits:       3,
		Syllabus:      datatypes.JSONSlice[string]{"Módulo 1: Fundamentos", "Módulo 2: Normativa"},
		Price:         250,
		IsActive:      true,
	}
	require.NoError(t, db.Create(course).Error)
	return course
}

func testInstitutionConfig() InstitutionConfig {
	return InstitutionConfig{
		Name:           "Instituto Peruano de Capacitación",
		RUC:            "20123456789",
		Address:        "Av. Arequipa 1234, Lima",
		SignatoryName:  "María Torres",
		SignatoryTitle: "Directora Académica",
		BaseURL:        "https://certificados.example.pe",
		CodeLength:     12,
	}
}
