package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_TenDigits_GetsCountryCode(t *testing.T) {
	assert.Equal(t, "+15551234567", Normalize("555-123-4567"))
	assert.Equal(t, "+15551234567", Normalize("(555) 123-4567"))
	assert.Equal(t, "+15551234567", Normalize("5551234567"))
}

func TestNormalize_ElevenDigitsLeadingOne_GetsPlus(t *testing.T) {
	assert.Equal(t, "+15551234567", Normalize("15551234567"))
	assert.Equal(t, "+15551234567", Normalize("+1 555 123 4567"))
}

func TestNormalize_Other_BarePlusPrefix(t *testing.T) {
	assert.Equal(t, "+123", Normalize("123"))
	assert.Equal(t, "+447911123456", Normalize("447911123456"))
	assert.Equal(t, "+", Normalize("abc"))
}

func TestNormalize_Idempotent(t *testing.T) {
	once := Normalize("555-123-4567")
	assert.Equal(t, once, Normalize(once))
}
