package util

import (
	"strings"

	"github.com/ttacon/libphonenumber"
)

// ValidPhone reports whether raw is a dialable number in E.164 form (+<cc><nsn>),
// which is what SNS direct publish accepts.
func ValidPhone(raw string) bool {
	if !strings.HasPrefix(raw, "+") || strings.ContainsAny(raw, " -()") {
		return false
	}
	num, err := libphonenumber.Parse(raw, "")
	if err != nil {
		return false
	}

	return libphonenumber.IsValidNumber(num) &&
		libphonenumber.Format(num, libphonenumber.E164) == raw
}
