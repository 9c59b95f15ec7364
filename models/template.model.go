package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// FontSpec describes one font used on the rendered certificate
type FontSpec struct {
	Family string  `json:"family"`
	Style  string  `json:"style"` // "", "B", "I", "BI"
	Size   float64 `json:"size"`
	Color  RGB     `json:"color"`
}

type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// Position places one element on the page as percentages of page width/height
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// TemplateFonts names the fonts for each text element
type TemplateFonts struct {
	Title FontSpec `json:"title"`
	Name  FontSpec `json:"name"`
	Body  FontSpec `json:"body"`
}

// TemplatePositions places each optional element, as page percentages
type TemplatePositions struct {
	Title           Position `json:"title"`
	ParticipantName Position `json:"participant_name"`
	Body            Position `json:"body"`
	Dates           Position `json:"dates"`
	QR              Position `json:"qr"`
	Code            Position `json:"code"`
	Signatures      Position `json:"signatures"`
}

// TemplateDecorations controls the decorative frame
type TemplateDecorations struct {
	Border      bool `json:"border"`
	BorderColor RGB  `json:"border_color"`
	InnerBorder bool `json:"inner_border"`
}

// TemplateElements toggles optional visual elements
type TemplateElements struct {
	ShowQR         bool `json:"show_qr"`
	ShowCode       bool `json:"show_code"`
	ShowHours      bool `json:"show_hours"`
	ShowGrade      bool `json:"show_grade"`
	ShowSignatures bool `json:"show_signatures"`
}

// TemplateConfig is the full layout description consumed by the PDF renderer
type TemplateConfig struct {
	Fonts       TemplateFonts       `json:"fonts"`
	Positions   TemplatePositions   `json:"positions"`
	Decorations TemplateDecorations `json:"decorations"`
	Elements    TemplateElements    `json:"elements"`
}

// DefaultTemplateConfig returns the layout used when a course type has no template
func DefaultTemplateConfig() TemplateConfig {
	return TemplateConfig{
		Fonts: TemplateFonts{
			Title: FontSpec{Family: "Times", Style: "B", Size: 30, Color: RGB{R: 30, G: 30, B: 90}},
			Name:  FontSpec{Family: "Times", Style: "B", Size: 24, Color: RGB{R: 20, G: 20, B: 20}},
			Body:  FontSpec{Family: "Helvetica", Size: 12, Color: RGB{R: 60, G: 60, B: 60}},
		},
		Positions: TemplatePositions{
			Title:           Position{X: 50, Y: 18},
			ParticipantName: Position{X: 50, Y: 40},
			Body:            Position{X: 50, Y: 52},
			Dates:           Position{X: 50, Y: 66},
			QR:              Position{X: 88, Y: 78},
			Code:            Position{X: 12, Y: 90},
			Signatures:      Position{X: 50, Y: 82},
		},
		Decorations: TemplateDecorations{
			Border:      true,
			BorderColor: RGB{R: 120, G: 96, B: 32},
			InnerBorder: true,
		},
		Elements: TemplateElements{
			ShowQR:         true,
			ShowCode:       true,
			ShowHours:      true,
			ShowGrade:      true,
			ShowSignatures: true,
		},
	}
}

// CertificateTemplate is a named layout for one course type. At most one
// template per course type is marked default at any time.
type CertificateTemplate struct {
	gorm.Model
	Name       string                             `json:"name" gorm:"not null"`
	CourseType string                             `json:"course_type" gorm:"index;not null"`
	IsDefault  bool                               `json:"is_default" gorm:"default:false"`
	Config     datatypes.JSONType[TemplateConfig] `json:"config"`
	IsDeleted  bool                               `json:"-" gorm:"default:false"`
}
