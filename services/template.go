package services

import (
	"certiperu/models"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SaveTemplate creates or updates a certificate template. Marking one as
// default clears the previous default for the same course type inside the
// same transaction.
func SaveTemplate(db *gorm.DB, tpl *models.CertificateTemplate) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if tpl.IsDefault {
			err := tx.Model(&models.CertificateTemplate{}).
				Where("course_type = ? AND is_default = ? AND id <> ?", tpl.CourseType, true, tpl.ID).
				Update("is_default", false).Error
			if err != nil {
				return err
			}
		}
		return tx.Save(tpl).Error
	})
}

// DeleteTemplate soft-deletes a template.
func DeleteTemplate(db *gorm.DB, id uint) error {
	var tpl models.CertificateTemplate
	if err := db.Where("id = ? AND is_deleted = ?", id, false).First(&tpl).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	tpl.IsDeleted = true
	return db.Save(&tpl).Error
}

// TemplateConfigFor resolves the layout for a course type: the default
// template when one exists, the built-in layout otherwise.
func TemplateConfigFor(db *gorm.DB, courseType string) models.TemplateConfig {
	var tpl models.CertificateTemplate
	err := db.Where("course_type = ? AND is_default = ? AND is_deleted = ?", courseType, true, false).
		First(&tpl).Error
	if err != nil {
		return models.DefaultTemplateConfig()
	}
	return tpl.Config.Data()
}

// NewTemplate builds a template record with the built-in layout as starting
// config when none is supplied.
func NewTemplate(name, courseType string, isDefault bool, cfg *models.TemplateConfig) *models.CertificateTemplate {
	config := models.DefaultTemplateConfig()
	if cfg != nil {
		config = *cfg
	}
	return &models.CertificateTemplate{
		Name:       name,
		CourseType: courseType,
		IsDefault:  isDefault,
		Config:     datatypes.NewJSONType(config),
	}
}
