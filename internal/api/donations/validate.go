package donations

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	// MinAmount is the smallest accepted monthly donation, in major
	// currency units.
	MinAmount = 10

	maxNameLength = 100
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func validateAmount(amount int64) string {
	if amount < MinAmount {
		return fmt.Sprintf("amount must be at least %d", MinAmount)
	}
	return ""
}

func validateEmail(email string) string {
	if !emailPattern.MatchString(strings.TrimSpace(email)) {
		return "invalid email address"
	}
	return ""
}

func validateName(name string) string {
	if len(strings.TrimSpace(name)) < 2 {
		return "name must be at least 2 characters"
	}
	return ""
}

// validateDonation runs every check and reports all violations together.
func validateDonation(amount int64, email, name string) *ValidationError {
	var fields []string
	for _, msg := range []string{
		validateAmount(amount),
		validateEmail(email),
		validateName(name),
	} {
		if msg != "" {
			fields = append(fields, msg)
		}
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func normalizeName(name string) string {
	name = strings.TrimSpace(name)
	if runes := []rune(name); len(runes) > maxNameLength {
		return string(runes[:maxNameLength])
	}
	return name
}
