package validate

import "strings"

// Password strength levels.
const (
	StrengthWeak   = "weak"
	StrengthMedium = "medium"
	StrengthStrong = "strong"
)

const passwordSymbols = `!@#$%^&*()_+-=[]{};':"\|,.<>/?`

// PasswordResult is the outcome of scoring one password.
type PasswordResult struct {
	IsValid  bool
	Errors   []string
	Strength string
}

// CheckPassword scores a password against the fixed rules: minimum length
// of 6, at least one uppercase letter, one lowercase letter and one symbol.
// A valid password of length 8 or more containing a digit is strong; any
// other valid password is medium.
func CheckPassword(password string) PasswordResult {
	var errs []string

	if len(password) < 6 {
		errs = append(errs, "At least 6 characters required")
	}
	if !strings.ContainsFunc(password, func(r rune) bool { return r >= 'A' && r <= 'Z' }) {
		errs = append(errs, "At least one uppercase letter required")
	}
	if !strings.ContainsFunc(password, func(r rune) bool { return r >= 'a' && r <= 'z' }) {
		errs = append(errs, "At least one lowercase letter required")
	}
	if !strings.ContainsAny(password, passwordSymbols) {
		errs = append(errs, "At least one symbol required (!@#$%^&*)")
	}

	hasDigit := strings.ContainsFunc(password, func(r rune) bool { return r >= '0' && r <= '9' })

	strength := StrengthWeak
	if len(errs) == 0 {
		if len(password) >= 8 && hasDigit {
			strength = StrengthStrong
		} else {
			strength = StrengthMedium
		}
	}

	return PasswordResult{
		IsValid:  len(errs) == 0,
		Errors:   errs,
		Strength: strength,
	}
}
