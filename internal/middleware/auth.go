// Package middleware содержит HTTP middleware админ-панели SaveBite.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/mmeshcher/savebite-admin/internal/model"
)

type contextKey string

const adminUserKey contextKey = "adminUser"

const bearerPrefix = "Bearer "

// TokenValidator описывает контракт проверки токена сессии.
type TokenValidator interface {
	Validate(token string) (*model.AdminUser, error)
}

// AuthMiddleware выполняет проверку аутентификации оператора по bearer-токену.
type AuthMiddleware struct {
	sessions TokenValidator
}

// NewAuthMiddleware создаёт новый экземпляр AuthMiddleware.
func NewAuthMiddleware(sessions TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

// Middleware проверяет заголовок Authorization и добавляет оператора в контекст запроса.
// Запросы без действующей сессии получают 401: это API-эквивалент
// перенаправления неаутентифицированного пользователя на /login.
func (a *AuthMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractToken(r)
		if token == "" {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		user, err := a.sessions.Validate(token)
		if err != nil {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), adminUserKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func extractToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
}

// GetAdminFromContext извлекает оператора из контекста запроса.
func GetAdminFromContext(ctx context.Context) (*model.AdminUser, bool) {
	user, ok := ctx.Value(adminUserKey).(*model.AdminUser)
	return user, ok
}
