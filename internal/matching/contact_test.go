package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractContactInfo_LabeledName(t *testing.T) {
	text := "Name: Jordan Lee\nSoftware Engineer\njordan.lee@example.com"

	info := ExtractContactInfo(text)
	assert.Equal(t, "Jordan Lee", info.Name)
	assert.Equal(t, "jordan.lee@example.com", info.Email)
	assert.Equal(t, NotFound, info.Phone)
}

func TestExtractContactInfo_LabelBeatsHeaderLine(t *testing.T) {
	// The explicit label wins even when an earlier header line would
	// satisfy the short-header heuristic.
	text := "Jane Doe\nName: Jordan Lee\nBackend Developer"

	info := ExtractContactInfo(text)
	assert.Equal(t, "Jordan Lee", info.Name)
}

func TestExtractContactInfo_ShortHeaderLine(t *testing.T) {
	text := "Jordan Lee\njordan.lee@example.com\n+1 555 123 4567\nExperienced engineer."

	info := ExtractContactInfo(text)
	assert.Equal(t, "Jordan Lee", info.Name)
	assert.Equal(t, "jordan.lee@example.com", info.Email)
	assert.Equal(t, "+1 555 123 4567", info.Phone)
}

func TestExtractContactInfo_HeaderLineRejections(t *testing.T) {
	// Header lines mentioning resume vocabulary or contact details are
	// not names; the cascade falls through to the capitalized line.
	text := "RESUME\nEmail: someone@example.com\nPhone: unlisted\n\nJordan Lee\nworked at several companies"

	info := ExtractContactInfo(text)
	assert.Equal(t, "Jordan Lee", info.Name)
}

func TestExtractContactInfo_CapitalizedPairInProse(t *testing.T) {
	text := "references available on request from the manager of Jordan Lee at the firm"

	info := ExtractContactInfo(text)
	assert.Equal(t, "Jordan Lee", info.Name)
}

func TestExtractContactInfo_Fallback(t *testing.T) {
	text := "this resume has nothing useful at all\njust some lowercase prose without names\nmore words here and no capitals anywhere"

	info := ExtractContactInfo(text)
	assert.Equal(t, "Candidate", info.Name)
	assert.Equal(t, NotFound, info.Email)
	assert.Equal(t, NotFound, info.Phone)
}

func TestExtractContactInfo_LastLabelOccurrenceWins(t *testing.T) {
	text := "Full Name: Name: Jordan Lee\nother line"

	info := ExtractContactInfo(text)
	assert.Equal(t, "Jordan Lee", info.Name)
}

func TestExtractContactInfo_Deterministic(t *testing.T) {
	text := "Jordan Lee\njordan.lee@example.com"
	assert.Equal(t, ExtractContactInfo(text), ExtractContactInfo(text))
}

func TestExtractContactInfo_PhoneVariants(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		phone string
	}{
		{"international", "call +4915123456789 anytime", "+4915123456789"},
		{"dotted", "phone 555.123.456.789 listed", "555.123.456.789"},
		{"too short", "extension 12345", NotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.phone, ExtractContactInfo(tt.text).Phone)
		})
	}
}
