package utils

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSite(t *testing.T) {
	tests := []struct {
		name    string
		site    string
		wantErr bool
		errMsg  string
	}{
		{name: "empty selects all", site: ""},
		{name: "all sites", site: "ALL"},
		{name: "site with spaces and hyphen", site: "CCAFS LC-40"},
		{name: "site with dots", site: "Kwajalein Atoll (Omelek) v1.0"},
		{name: "ampersand", site: "CCAFS LC-40 & SLC-40"},
		{name: "non-ASCII letters", site: "Baïkonour"},
		{name: "colon", site: "Cape Canaveral: LC-40"},
		{name: "markup is plain text", site: "<b>KSC LC-39A</b>"},
		{name: "100 multi-byte runes", site: strings.Repeat("ï", 100)},
		{
			name:    "too long",
			site:    strings.Repeat("a", 101),
			wantErr: true,
			errMsg:  "site too long (max 100 characters)",
		},
		{
			name:    "invalid UTF-8",
			site:    "KSC \xff",
			wantErr: true,
			errMsg:  "site must be valid UTF-8",
		},
		{
			name:    "control character",
			site:    "KSC\x00LC-39A",
			wantErr: true,
			errMsg:  "site contains control characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSite(tt.site)
			if tt.wantErr {
				assert.EqualError(t, err, tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePayloadMass(t *testing.T) {
	assert.NoError(t, ValidatePayloadMass(0))
	assert.NoError(t, ValidatePayloadMass(9600))
	assert.NoError(t, ValidatePayloadMass(MaxPayloadKg))
	assert.Error(t, ValidatePayloadMass(-1))
	assert.Error(t, ValidatePayloadMass(MaxPayloadKg+1))
	assert.Error(t, ValidatePayloadMass(math.NaN()))
	assert.Error(t, ValidatePayloadMass(math.Inf(1)))
}

func TestValidatePayloadRange(t *testing.T) {
	assert.Empty(t, ValidatePayloadRange(0, 10000))
	assert.Empty(t, ValidatePayloadRange(4400, 4400))

	errs := ValidatePayloadRange(5000, 1000)
	assert.Equal(t, []string{"low must not exceed high"}, errs["low"])

	errs = ValidatePayloadRange(-5, -1)
	assert.Len(t, errs["low"], 1)
	assert.Len(t, errs["high"], 1)
}
