package services

import (
	"certiperu/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveTemplate(t *testing.T) {
	t.Run("keeps a single default per course type", func(t *testing.T) {
		db := setupTestDB(t)

		first := NewTemplate("Clásica", models.CourseTypeCurso, true, nil)
		require.NoError(t, SaveTemplate(db, first))

		second := NewTemplate("Moderna", models.CourseTypeCurso, true, nil)
		require.NoError(t, SaveTemplate(db, second))

		var defaults []models.CertificateTemplate
		require.NoError(t, db.Where("course_type = ? AND is_default = ?", models.CourseTypeCurso, true).
			Find(&defaults).Error)
		require.Len(t, defaults, 1)
		assert.Equal(t, "Moderna", defaults[0].Name)
	})

	t.Run("defaults for different course types coexist", func(t *testing.T) {
		db := setupTestDB(t)

		require.NoError(t, SaveTemplate(db, NewTemplate("Curso", models.CourseTypeCurso, true, nil)))
		require.NoError(t, SaveTemplate(db, NewTemplate("Diplomado", models.CourseTypeDiplomado, true, nil)))

		var defaults int64
		require.NoError(t, db.Model(&models.CertificateTemplate{}).
			Where("is_default = ?", true).Count(&defaults).Error)
		assert.EqualValues(t, 2, defaults)
	})
}

func TestTemplateConfigFor(t *testing.T) {
	db := setupTestDB(t)

	t.Run("falls back to the built-in layout", func(t *testing.T) {
		cfg := TemplateConfigFor(db, models.CourseTypeCurso)
		assert.Equal(t, models.DefaultTemplateConfig(), cfg)
	})

	t.Run("uses the default template when one exists", func(t *testing.T) {
		custom := models.DefaultTemplateConfig()
		custom.Fonts.Title.Size = 40
		custom.Elements.ShowQR = false

		require.NoError(t, SaveTemplate(db, NewTemplate("Grande", models.CourseTypeCurso, true, &custom)))

		cfg := TemplateConfigFor(db, models.CourseTypeCurso)
		assert.Equal(t, float64(40), cfg.Fonts.Title.Size)
		assert.False(t, cfg.Elements.ShowQR)
	})
}

func TestDeleteTemplate(t *testing.T) {
	db := setupTestDB(t)

	tpl := NewTemplate("Clásica", models.CourseTypeCurso, true, nil)
	require.NoError(t, SaveTemplate(db, tpl))
	require.NoError(t, DeleteTemplate(db, tpl.ID))

	// A deleted default no longer drives rendering
	assert.Equal(t, models.DefaultTemplateConfig(), TemplateConfigFor(db, models.CourseTypeCurso))

	assert.ErrorIs(t, DeleteTemplate(db, tpl.ID), ErrNotFound)
}
