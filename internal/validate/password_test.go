package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckPassword(t *testing.T) {
	tests := []struct {
		name         string
		password     string
		wantValid    bool
		wantStrength string
		wantErrors   int
	}{
		{
			name:         "strong with digit",
			password:     "Demo123!",
			wantValid:    true,
			wantStrength: StrengthStrong,
		},
		{
			name:         "weak short lowercase",
			password:     "demo",
			wantValid:    false,
			wantStrength: StrengthWeak,
			wantErrors:   3, // length, uppercase, symbol
		},
		{
			name:         "empty",
			password:     "",
			wantValid:    false,
			wantStrength: StrengthWeak,
			wantErrors:   4,
		},
		{
			name:         "valid but short is medium",
			password:     "Ab!def",
			wantValid:    true,
			wantStrength: StrengthMedium,
		},
		{
			name:         "valid long without digit is medium",
			password:     "Abcdefgh!",
			wantValid:    true,
			wantStrength: StrengthMedium,
		},
		{
			name:         "long with digit but no symbol",
			password:     "Abcdefg1",
			wantValid:    false,
			wantStrength: StrengthWeak,
			wantErrors:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckPassword(tt.password)
			assert.Equal(t, tt.wantValid, got.IsValid)
			assert.Equal(t, tt.wantStrength, got.Strength)
			assert.Len(t, got.Errors, tt.wantErrors)
		})
	}
}

func TestCheckPasswordErrorMessages(t *testing.T) {
	got := CheckPassword("demo")
	assert.Equal(t, []string{
		"At least 6 characters required",
		"At least one uppercase letter required",
		"At least one symbol required (!@#$%^&*)",
	}, got.Errors)
}
