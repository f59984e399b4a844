package validation

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	// NationalIDLength is the exact digit count of a national id.
	NationalIDLength = 10

	// MinPhoneDigits is the minimum digit count of a phone number.
	MinPhoneDigits = 9

	// MinTextLength is the minimum length for names and descriptions.
	MinTextLength = 3
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// IsValidEmail requires text + @ + domain + . + extension.
func IsValidEmail(email string) bool {
	t := strings.TrimSpace(email)
	if t == "" || !strings.Contains(t, "@") || !strings.Contains(t, ".") {
		return false
	}

	return emailPattern.MatchString(t)
}

func isOnlyDigits(value string) bool {
	if value == "" {
		return false
	}

	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

// IsValidNationalID accepts exactly NationalIDLength characters, digits only.
func IsValidNationalID(id string) bool {
	t := strings.TrimSpace(id)
	return utf8.RuneCountInString(t) == NationalIDLength && isOnlyDigits(t)
}

// IsValidPhone accepts any input carrying at least MinPhoneDigits digits
// after stripping every non-digit character.
func IsValidPhone(phone string) bool {
	digits := 0
	for _, r := range strings.TrimSpace(phone) {
		if r >= '0' && r <= '9' {
			digits++
		}
	}

	return digits >= MinPhoneDigits
}

// HasMinLength reports whether the trimmed text is at least min runes long.
func HasMinLength(text string, min int) bool {
	return utf8.RuneCountInString(strings.TrimSpace(text)) >= min
}

// ParsePrice parses a numeric input entered with either a decimal comma or a
// decimal point. Comma is replaced with dot before parsing; this is the
// canonical parse rule for every numeric entry point.
func ParsePrice(value string) (float64, bool) {
	t := strings.TrimSpace(value)
	if t == "" {
		return 0, false
	}

	n, err := strconv.ParseFloat(strings.ReplaceAll(t, ",", "."), 64)
	if err != nil {
		return 0, false
	}

	return n, true
}

// IsPositivePrice accepts 0.50 and "0,50", rejects 0 and garbage.
func IsPositivePrice(value string) bool {
	n, ok := ParsePrice(value)
	return ok && n > 0
}
