package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateVerificationCode(t *testing.T) {
	code, err := GenerateVerificationCode(12)
	require.NoError(t, err)
	assert.Len(t, code, 12)
	for _, r := range code {
		assert.Contains(t, codeAlphabet, string(r))
	}

	// non-positive lengths fall back to the default
	code, err = GenerateVerificationCode(0)
	require.NoError(t, err)
	assert.Len(t, code, 12)
}

func TestGenerateManualCode(t *testing.T) {
	code := GenerateManualCode()
	assert.True(t, strings.HasPrefix(code, "CP-"))
	assert.Len(t, code, len("CP-")+12)
	assert.Equal(t, strings.ToUpper(code), code)

	assert.NotEqual(t, code, GenerateManualCode())
}

func TestIsPreviewCode(t *testing.T) {
	assert.True(t, IsPreviewCode("PREVIEW-ABC123"))
	assert.True(t, IsPreviewCode("preview-abc123"))
	assert.False(t, IsPreviewCode("ABC123PREVIEW"))
	assert.False(t, IsPreviewCode("CP-1A2B3C4D5E6F"))
}
