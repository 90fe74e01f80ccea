package utils

import (
	"errors"
	"math"
	"unicode"
	"unicode/utf8"
)

// MaxPayloadKg bounds accepted payload parameters.
const MaxPayloadKg = 1_000_000

// maxSiteRunes bounds the length of a launch site selector.
const maxSiteRunes = 100

// ValidateSite checks that a launch site selector is well-formed text. It does
// not check that the site exists: an unknown site selects no launches.
func ValidateSite(site string) error {
	if !utf8.ValidString(site) {
		return errors.New("site must be valid UTF-8")
	}

	if utf8.RuneCountInString(site) > maxSiteRunes {
		return errors.New("site too long (max 100 characters)")
	}

	for _, r := range site {
		if unicode.IsControl(r) {
			return errors.New("site contains control characters")
		}
	}

	return nil
}

// ValidatePayloadMass validates a single payload bound in kilograms.
func ValidatePayloadMass(mass float64) error {
	if math.IsNaN(mass) || math.IsInf(mass, 0) {
		return errors.New("payload must be a finite number")
	}
	if mass < 0 {
		return errors.New("payload must be non-negative")
	}
	if mass > MaxPayloadKg {
		return errors.New("payload too large (max 1000000 kg)")
	}
	return nil
}

// ValidatePayloadRange validates the low and high slider values.
func ValidatePayloadRange(low, high float64) map[string][]string {
	fieldErrors := make(map[string][]string)

	if err := ValidatePayloadMass(low); err != nil {
		fieldErrors["low"] = append(fieldErrors["low"], err.Error())
	}
	if err := ValidatePayloadMass(high); err != nil {
		fieldErrors["high"] = append(fieldErrors["high"], err.Error())
	}
	if len(fieldErrors) == 0 && low > high {
		fieldErrors["low"] = append(fieldErrors["low"], "low must not exceed high")
	}

	return fieldErrors
}
