package models

import "gorm.io/gorm"

// InstitutionSetting is the single-row record holding institution metadata
// snapshotted onto every issued certificate.
type InstitutionSetting struct {
	gorm.Model
	Name             string `json:"name"`
	RUC              string `json:"ruc"` // registration number
	Address          string `json:"address"`
	Website          string `json:"website"`
	SignatoryName    string `json:"signatory_name"`
	SignatoryTitle   string `json:"signatory_title"`
}
