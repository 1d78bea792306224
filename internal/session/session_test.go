package session

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mmeshcher/savebite-admin/internal/model"
)

func testAdmin() model.AdminUser {
	return model.AdminUser{
		ID:    "admin1",
		Email: "admin@savebite.com",
		Name:  "Admin User",
		Role:  "admin",
	}
}

func TestLoginIssuesUniqueTokens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "auth-storage.json")

	m, err := NewManager(path)
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}

	first, err := m.Login(testAdmin())
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	second, err := m.Login(testAdmin())
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if first.Token == "" || second.Token == "" {
		t.Fatalf("expected non-empty tokens")
	}
	if first.Token == second.Token {
		t.Fatalf("expected a fresh token per login")
	}
	if !second.Authenticated {
		t.Fatalf("expected authenticated session after login")
	}
}

func TestValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "auth-storage.json")

	m, err := NewManager(path)
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}

	if _, err := m.Validate("anything"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("err = %v, want ErrSessionNotFound before login", err)
	}

	sess, err := m.Login(testAdmin())
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	user, err := m.Validate(sess.Token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if user.Email != "admin@savebite.com" {
		t.Fatalf("user email = %q", user.Email)
	}

	if _, err := m.Validate("wrong-token"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("err = %v, want ErrSessionNotFound for wrong token", err)
	}
}

func TestLogoutClearsDurableStorage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "auth-storage.json")

	m, err := NewManager(path)
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}

	sess, err := m.Login(testAdmin())
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if err := m.Logout(); err != nil {
		t.Fatalf("logout: %v", err)
	}

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected storage entry removed, stat err = %v", err)
	}
	if m.Current().Authenticated {
		t.Fatalf("expected unauthenticated session after logout")
	}
	if _, err := m.Validate(sess.Token); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("old token must be rejected after logout")
	}
}

func TestSetUserPersistsExactToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "auth-storage.json")

	m, err := NewManager(path)
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}

	if _, err := m.SetUser(testAdmin(), "external-token"); err != nil {
		t.Fatalf("set user: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read storage: %v", err)
	}

	var stored model.Session
	if err := json.Unmarshal(data, &stored); err != nil {
		t.Fatalf("unmarshal storage: %v", err)
	}
	if stored.Token != "external-token" || !stored.Authenticated {
		t.Fatalf("stored session = %+v", stored)
	}
}

func TestRehydrationRestoresSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "auth-storage.json")

	m, err := NewManager(path)
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}
	sess, err := m.Login(testAdmin())
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	restored, err := NewManager(path)
	if err != nil {
		t.Fatalf("new manager after restart: %v", err)
	}

	user, err := restored.Validate(sess.Token)
	if err != nil {
		t.Fatalf("validate after restart: %v", err)
	}
	if user.ID != "admin1" {
		t.Fatalf("user id = %q", user.ID)
	}
}

func TestRehydrationEnforcesInvariant(t *testing.T) {
	tests := []struct {
		name   string
		stored string
	}{
		{
			name:   "authenticated without token",
			stored: `{"user":{"id":"admin1","email":"admin@savebite.com","name":"Admin User","role":"admin"},"token":"","isAuthenticated":true}`,
		},
		{
			name:   "authenticated without user",
			stored: `{"user":null,"token":"abc","isAuthenticated":true}`,
		},
		{
			name:   "corrupted file",
			stored: `{"user":`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "auth-storage.json")
			if err := os.WriteFile(path, []byte(tt.stored), 0o600); err != nil {
				t.Fatalf("write storage: %v", err)
			}

			m, err := NewManager(path)
			if err != nil {
				t.Fatalf("new manager: %v", err)
			}
			if m.Current().Authenticated {
				t.Fatalf("expected logged-out state for inconsistent record")
			}
		})
	}
}
