package validation

import (
	"regexp"
	"strings"
)

// Validation rule patterns
var (
	// EmailPattern is deliberately loose; the store's unique constraint is
	// the real gate.
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	// CourseCodePattern - short uppercase code like CS101 or CHEM101
	CourseCodePattern = `^[A-Z]{2,6}[0-9]{2,4}$`

	// PasswordMinLength is the minimum accepted password length
	PasswordMinLength = 8
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email      *regexp.Regexp
	CourseCode *regexp.Regexp
}{
	Email:      regexp.MustCompile(EmailPattern),
	CourseCode: regexp.MustCompile(CourseCodePattern),
}

// IsValidEmail reports whether s looks like an email address.
func IsValidEmail(s string) bool {
	return CompiledPatterns.Email.MatchString(strings.TrimSpace(s))
}

// IsValidCourseCode reports whether s is an acceptable course code.
func IsValidCourseCode(s string) bool {
	return CompiledPatterns.CourseCode.MatchString(strings.TrimSpace(s))
}

// IsBlank reports whether s is empty after trimming whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
