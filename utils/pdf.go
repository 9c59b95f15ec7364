package utils

import (
	"bytes"
	"certiperu/models"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"
)

// A4 landscape in millimeters
const (
	pageW = 297.0
	pageH = 210.0
)

// RenderCertificatePDF draws the certificate document from the template
// layout. Positions in the template are percentages of the page.
func RenderCertificatePDF(cert *models.Certificate, participant *models.Participant, tpl models.TemplateConfig) ([]byte, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	at := func(p models.Position) (float64, float64) {
		return p.X / 100 * pageW, p.Y / 100 * pageH
	}
	setFont := func(f models.FontSpec) {
		pdf.SetFont(f.Family, f.Style, f.Size)
		pdf.SetTextColor(f.Color.R, f.Color.G, f.Color.B)
	}
	centered := func(s string, x, y float64) {
		pdf.Text(x-pdf.GetStringWidth(s)/2, y, s)
	}

	if tpl.Decorations.Border {
		pdf.SetDrawColor(tpl.Decorations.BorderColor.R, tpl.Decorations.BorderColor.G, tpl.Decorations.BorderColor.B)
		pdf.SetLineWidth(1.2)
		pdf.Rect(8, 8, pageW-16, pageH-16, "D")
		if tpl.Decorations.InnerBorder {
			pdf.SetLineWidth(0.3)
			pdf.Rect(11, 11, pageW-22, pageH-22, "D")
		}
	}

	// Institution header
	setFont(tpl.Fonts.Body)
	x, y := at(tpl.Positions.Title)
	if cert.InstitutionName != "" {
		centered(tr(cert.InstitutionName), x, y-12)
	}

	// Document title follows the course type
	title := "CERTIFICADO"
	switch cert.CourseType {
	case models.CourseTypeDiplomado:
		title = "DIPLOMA"
	case models.CourseTypeConstancia:
		title = "CONSTANCIA"
	}
	setFont(tpl.Fonts.Title)
	centered(tr(title), x, y)

	// Participant
	setFont(tpl.Fonts.Body)
	x, y = at(tpl.Positions.ParticipantName)
	centered(tr("Otorgado a:"), x, y-8)
	setFont(tpl.Fonts.Name)
	centered(tr(participant.FullName), x, y)
	setFont(tpl.Fonts.Body)
	centered(tr(fmt.Sprintf("%s %s", participant.DocumentType, participant.DocumentNumber)), x, y+6)

	// Course block
	x, y = at(tpl.Positions.Body)
	centered(tr("por haber culminado satisfactoriamente:"), x, y)
	setFont(tpl.Fonts.Name)
	centered(tr(cert.CourseName), x, y+8)
	setFont(tpl.Fonts.Body)
	if tpl.Elements.ShowHours {
		detail := fmt.Sprintf("Modalidad %s", cert.Modality)
		if cert.AcademicHours > 0 {
			detail += fmt.Sprintf(" - %d horas académicas", cert.AcademicHours)
		}
		if cert.Credits > 0 {
			detail += fmt.Sprintf(" - %.1f créditos", cert.Credits)
		}
		centered(tr(detail), x, y+15)
	}
	if tpl.Elements.ShowGrade && (cert.Grade != nil || cert.GradeText != "") {
		grade := cert.GradeText
		if grade == "" {
			grade = fmt.Sprintf("%.2f", *cert.Grade)
		}
		centered(tr(fmt.Sprintf("Calificación: %s", grade)), x, y+21)
	}

	// Validity window
	x, y = at(tpl.Positions.Dates)
	centered(tr(fmt.Sprintf("Del %s al %s", cert.StartDate.Format("02/01/2006"), cert.EndDate.Format("02/01/2006"))), x, y)
	centered(tr(fmt.Sprintf("Emitido el %s", cert.IssuedAt.Format("02/01/2006"))), x, y+6)

	// Signature block
	if tpl.Elements.ShowSignatures && len(cert.Signatories) > 0 {
		_, sy := at(tpl.Positions.Signatures)
		n := len(cert.Signatories)
		for i, s := range cert.Signatories {
			sx := pageW * float64(i+1) / float64(n+1)
			pdf.SetDrawColor(60, 60, 60)
			pdf.SetLineWidth(0.3)
			pdf.Line(sx-30, sy, sx+30, sy)
			centered(tr(s.Name), sx, sy+5)
			centered(tr(s.Title), sx, sy+10)
		}
	}

	// QR with the public verification link
	if tpl.Elements.ShowQR && cert.VerificationURL != "" {
		png, err := qrcode.Encode(cert.VerificationURL, qrcode.Medium, 512)
		if err != nil {
			return nil, err
		}
		opts := fpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader("verification-qr", opts, bytes.NewReader(png))
		qx, qy := at(tpl.Positions.QR)
		pdf.ImageOptions("verification-qr", qx-13, qy-13, 26, 26, false, opts, 0, "")
	}

	// Human readable code and registry line
	if tpl.Elements.ShowCode {
		setFont(models.FontSpec{Family: "Helvetica", Size: 9, Color: models.RGB{R: 90, G: 90, B: 90}})
		cx, cy := at(tpl.Positions.Code)
		pdf.Text(cx, cy, tr(fmt.Sprintf("Código de verificación: %s", cert.Code)))
		if cert.InstitutionRUC != "" {
			pdf.Text(cx, cy+4, tr(fmt.Sprintf("RUC %s", cert.InstitutionRUC)))
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
