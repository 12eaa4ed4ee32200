package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/Harsh-gitaccount/orivanta-website/internal/domain"
)

// Simple local@domain.tld shape: no whitespace, one "@", a "." after it.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const (
	minNameLen    = 2
	maxNameLen    = 50
	minMessageLen = 20
	maxMessageLen = 1000
)

// ValidateContactForm checks every rule independently and collects all
// violations rather than stopping at the first one. It returns either a
// non-empty list of human-readable messages or a normalized submission,
// never both.
//
// Length rules follow the form contract: minimums apply to the trimmed
// value, maximums to the raw value, so a single field can violate both.
func ValidateContactForm(form *domain.ContactForm) ([]string, *domain.ContactSubmission) {
	var errs []string

	if utf8.RuneCountInString(strings.TrimSpace(form.FirstName)) < minNameLen {
		errs = append(errs, "First name must be at least 2 characters")
	}
	if utf8.RuneCountInString(strings.TrimSpace(form.LastName)) < minNameLen {
		errs = append(errs, "Last name must be at least 2 characters")
	}
	if !emailRegex.MatchString(form.Email) {
		errs = append(errs, "Valid email address is required")
	}
	if form.Subject == "" {
		errs = append(errs, "Please select a service")
	}
	if utf8.RuneCountInString(strings.TrimSpace(form.Message)) < minMessageLen {
		errs = append(errs, "Message must be at least 20 characters")
	}

	if utf8.RuneCountInString(form.FirstName) > maxNameLen {
		errs = append(errs, "First name too long")
	}
	if utf8.RuneCountInString(form.LastName) > maxNameLen {
		errs = append(errs, "Last name too long")
	}
	if utf8.RuneCountInString(form.Message) > maxMessageLen {
		errs = append(errs, "Message too long")
	}

	if len(errs) > 0 {
		return errs, nil
	}

	sub := &domain.ContactSubmission{
		FirstName: strings.TrimSpace(form.FirstName),
		LastName:  strings.TrimSpace(form.LastName),
		Email:     strings.ToLower(strings.TrimSpace(form.Email)),
		Phone:     strings.TrimSpace(form.Phone),
		Company:   form.Company,
		Subject:   form.Subject,
		Message:   strings.TrimSpace(form.Message),
	}
	return nil, sub
}
