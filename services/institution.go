package services

import (
	"certiperu/models"
	"errors"

	"gorm.io/gorm"
)

// InstitutionConfig is the configuration object handed to the issuer at call
// time. Certificates snapshot these values; later setting edits must not
// affect records already issued.
type InstitutionConfig struct {
	Name           string
	RUC            string
	Address        string
	SignatoryName  string
	SignatoryTitle string

	// BaseURL is the public site prefix for verification links
	BaseURL string

	// CodeLength for auto-issued verification codes
	CodeLength int
}

// LoadInstitutionConfig reads the settings row once per request and returns
// it as a value. A missing row yields zero-valued institution fields rather
// than an error so issuance still works on a fresh install.
func LoadInstitutionConfig(db *gorm.DB, baseURL string, codeLength int) (InstitutionConfig, error) {
	cfg := InstitutionConfig{BaseURL: baseURL, CodeLength: codeLength}

	var setting models.InstitutionSetting
	if err := db.Order("id asc").First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return cfg, nil
		}
		return cfg, err
	}

	cfg.Name = setting.Name
	cfg.RUC = setting.RUC
	cfg.Address = setting.Address
	cfg.SignatoryName = setting.SignatoryName
	cfg.SignatoryTitle = setting.SignatoryTitle
	return cfg, nil
}
