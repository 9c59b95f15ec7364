package services

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

var slugReplacer = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ñ", "n", "ü", "u",
	"Á", "a", "É", "e", "Í", "i", "Ó", "o", "Ú", "u", "Ñ", "n", "Ü", "u",
)

// Slugify turns a display name into a URL slug
func Slugify(name string) string {
	s := slugReplacer.Replace(strings.ToLower(strings.TrimSpace(name)))
	var sb strings.Builder
	lastDash := true
	for _, r := range s {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			sb.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				sb.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.Trim(sb.String(), "-")
}

// UniqueSlug derives a slug from name that is unique within table, appending
// a numeric suffix on collision. excludeID skips the record being updated.
func UniqueSlug(db *gorm.DB, table, name string, excludeID uint) (string, error) {
	base := Slugify(name)
	if base == "" {
		base = "item"
	}

	slug := base
	for i := 2; ; i++ {
		var count int64
		q := db.Table(table).Where("slug = ?", slug)
		if excludeID > 0 {
			q = q.Where("id <> ?", excludeID)
		}
		if err := q.Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}
