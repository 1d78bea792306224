package validation

import (
	"errors"
	"testing"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"admin@savebite.com", true},
		{"john.doe@example.com", true},
		{"no-at-sign", false},
		{"spaces in@example.com", false},
		{"missing@tld", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			if got := IsValidEmail(tt.email); got != tt.want {
				t.Fatalf("IsValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
			}
		})
	}
}

func TestValidatePasswordChange(t *testing.T) {
	tests := []struct {
		name     string
		password string
		confirm  string
		wantErr  error
	}{
		{name: "empty password keeps current", password: "", confirm: "", wantErr: nil},
		{name: "matching pair", password: "secret1", confirm: "secret1", wantErr: nil},
		{name: "mismatch", password: "secret1", confirm: "secret2", wantErr: ErrPasswordMismatch},
		{name: "too short", password: "abc", confirm: "abc", wantErr: ErrPasswordTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePasswordChange(tt.password, tt.confirm)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
