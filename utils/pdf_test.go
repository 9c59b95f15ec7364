package utils

import (
	"certiperu/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCertificate() (*models.Certificate, *models.Participant) {
	grade := 17.5
	cert := &models.Certificate{
		Code:               "A1B2C3D4E5F6",
		CourseName:         "Gestión Pública y Modernización del Estado",
		CourseType:         models.CourseTypeDiplomado,
		Modality:           models.ModalityVirtual,
		AcademicHours:      384,
		Credits:            24,
		Grade:              &grade,
		StartDate:          time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		EndDate:            time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC),
		IssuedAt:           time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		InstitutionName:    "Instituto Peruano de Capacitación",
		InstitutionRUC:     "20123456789",
		Status:             models.CertificateIssued,
		VerificationURL:    "https://certificados.example.pe/verificar/A1B2C3D4E5F6",
		Signatories: []models.Signatory{
			{Name: "María Torres", Title: "Directora Académica"},
			{Name: "Jorge Paz", Title: "Decano"},
		},
	}
	participant := &models.Participant{
		FullName:       "Ana Lucía Quispe Mamani",
		DocumentType:   "DNI",
		DocumentNumber: "44556677",
	}
	return cert, participant
}

func TestRenderCertificatePDF(t *testing.T) {
	cert, participant := sampleCertificate()

	pdf, err := RenderCertificatePDF(cert, participant, models.DefaultTemplateConfig())
	require.NoError(t, err)
	require.NotEmpty(t, pdf)
	assert.Equal(t, "%PDF", string(pdf[:4]))
	assert.Greater(t, len(pdf), 1000)
}

func TestRenderCertificatePDFWithoutQR(t *testing.T) {
	cert, participant := sampleCertificate()
	tpl := models.DefaultTemplateConfig()
	tpl.Elements.ShowQR = false
	tpl.Elements.ShowSignatures = false

	pdf, err := RenderCertificatePDF(cert, participant, tpl)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}
