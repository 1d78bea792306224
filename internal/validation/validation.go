// Package validation содержит функции валидации входных данных.
package validation

import (
	"errors"
	"regexp"
)

// MinPasswordLength — минимальная длина пароля оператора.
const MinPasswordLength = 6

var (
	// ErrPasswordMismatch возвращается, если пароль и подтверждение не совпадают.
	ErrPasswordMismatch = errors.New("passwords do not match")
	// ErrPasswordTooShort возвращается, если пароль короче минимальной длины.
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail проверяет базовый формат адреса электронной почты.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidatePasswordChange проверяет пару пароль/подтверждение при смене пароля.
// Пустой пароль означает, что пароль не меняется, и проходит проверку.
func ValidatePasswordChange(password, confirm string) error {
	if password == "" {
		return nil
	}
	if password != confirm {
		return ErrPasswordMismatch
	}
	if len(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}
