package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// msisdnPattern matches Indonesian mobile subscriber numbers once the
// country code or trunk prefix has been stripped.
var msisdnPattern = regexp.MustCompile(`^8\d{8,11}$`)

// NormalizeMSISDN cleans a phone number and normalizes it to the
// canonical 62xxxxxxxxxx form. Accepts +62, 62 and 0 prefixed input.
func NormalizeMSISDN(msisdn string) (string, error) {
	stripped := strings.ReplaceAll(msisdn, "-", "")
	stripped = strings.ReplaceAll(stripped, " ", "")
	stripped = strings.ReplaceAll(stripped, "+", "")

	if strings.HasPrefix(stripped, "62") {
		stripped = stripped[2:]
	} else if strings.HasPrefix(stripped, "0") {
		stripped = stripped[1:]
	}

	if !msisdnPattern.MatchString(stripped) {
		return "", fmt.Errorf("invalid MSISDN format: %s", msisdn)
	}

	return "62" + stripped, nil
}
