package services

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"github.com/google/uuid"
)

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// PreviewPrefix marks non-binding preview documents. Codes carrying it never
// resolve to certificate data.
const PreviewPrefix = "PREVIEW-"

// GenerateVerificationCode returns a random code of n characters drawn from
// the uppercase-letter-and-digit alphabet.
func GenerateVerificationCode(n int) (string, error) {
	if n <= 0 {
		n = 12
	}
	var sb strings.Builder
	for i := 0; i < n; i++ {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(codeAlphabet))))
		if err != nil {
			return "", err
		}
		sb.WriteByte(codeAlphabet[idx.Int64()])
	}
	return sb.String(), nil
}

// GenerateManualCode returns the prefixed, hex-derived code style used on the
// manual issuance path.
func GenerateManualCode() string {
	id := uuid.New()
	return fmt.Sprintf("CP-%s", strings.ToUpper(hex.EncodeToString(id[:6])))
}

// IsPreviewCode reports whether code matches the reserved preview pattern.
func IsPreviewCode(code string) bool {
	return strings.HasPrefix(strings.ToUpper(code), PreviewPrefix)
}
