package utils

import (
	"fmt"
	"net/url"
	"strconv"
)

// ParseFloatParam retrieves a float64 value from the provided URL query parameters.
// A missing key returns def. An invalid value returns def and records a field error.
func ParseFloatParam(params url.Values, key string, def float64, fieldErrors map[string][]string) (float64, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	val := params.Get(key)
	if val == "" {
		return def, fieldErrors
	}

	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		fieldErrors[key] = append(fieldErrors[key], fmt.Sprintf("Invalid field value for field %q.", key))
		return def, fieldErrors
	}
	return f, fieldErrors
}
