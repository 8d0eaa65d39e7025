package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowedUploadMIME(t *testing.T) {
	assert.True(t, AllowedUploadMIME("application/pdf"))
	assert.True(t, AllowedUploadMIME("IMAGE/JPEG"))
	assert.True(t, AllowedUploadMIME(" image/png "))
	assert.True(t, AllowedUploadMIME("image/webp"))

	assert.False(t, AllowedUploadMIME("application/zip"))
	assert.False(t, AllowedUploadMIME("text/html"))
	assert.False(t, AllowedUploadMIME(""))
}

func TestSafeFileName(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"sk posbankum 2024.pdf", "sk_posbankum_2024.pdf"},
		{"laporan (final).pdf", "laporan_final_.pdf"},
		{"a/b\\c.pdf", "a_b_c.pdf"},
		{"already-safe_name.pdf", "already-safe_name.pdf"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, SafeFileName(tc.in), tc.in)
	}
}

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("pos@kemenkumham.go.id"))
	assert.True(t, ValidEmail("  Upper@Example.Com "))
	assert.False(t, ValidEmail("not-an-email"))
	assert.False(t, ValidEmail("a@b"))
	assert.False(t, ValidEmail(""))
}

func TestValidPassword(t *testing.T) {
	assert.True(t, ValidPassword("12345678"))
	assert.False(t, ValidPassword("1234567"))
	assert.False(t, ValidPassword(""))
}
