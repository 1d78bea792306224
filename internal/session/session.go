// Package session управляет сессией оператора и её сохранением между запусками.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"

	"github.com/mmeshcher/savebite-admin/internal/model"
)

// ErrSessionNotFound возвращается при проверке неизвестного или отозванного токена.
var ErrSessionNotFound = errors.New("session not found")

// DefaultStoragePath — файл, в котором хранится сериализованная сессия.
const DefaultStoragePath = "auth-storage.json"

// Manager хранит текущую сессию оператора. Единственная долговременная
// запись сервиса: сессия переживает перезапуск через JSON-файл.
type Manager struct {
	mu      sync.Mutex
	path    string
	session model.Session
}

// NewManager создаёт менеджер сессий и восстанавливает сессию из файла.
// Запись, нарушающая инвариант «аутентифицирован — значит есть и пользователь,
// и токен», восстанавливается как отсутствие сессии.
func NewManager(path string) (*Manager, error) {
	if path == "" {
		path = DefaultStoragePath
	}

	m := &Manager{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return m, nil
		}
		return nil, fmt.Errorf("read session storage: %w", err)
	}

	var stored model.Session
	if err := json.Unmarshal(data, &stored); err != nil {
		// Повреждённый файл равносилен отсутствию сессии.
		return m, nil
	}

	if stored.Authenticated && stored.User != nil && stored.Token != "" {
		m.session = stored
	}

	return m, nil
}

// Login создаёт новую сессию для указанного оператора с новым токеном.
func (m *Manager) Login(user model.AdminUser) (model.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.session = model.Session{
		User:          &user,
		Token:         uuid.NewString(),
		Authenticated: true,
	}

	if err := m.persist(); err != nil {
		return model.Session{}, err
	}
	return m.session, nil
}

// SetUser устанавливает сессию напрямую, с готовым токеном.
// Используется после обмена с внешним сервисом аутентификации.
func (m *Manager) SetUser(user model.AdminUser, token string) (model.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.session = model.Session{
		User:          &user,
		Token:         token,
		Authenticated: true,
	}

	if err := m.persist(); err != nil {
		return model.Session{}, err
	}
	return m.session, nil
}

// Logout сбрасывает сессию и удаляет её из долговременного хранилища.
func (m *Manager) Logout() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.session = model.Session{}

	if err := os.Remove(m.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clear session storage: %w", err)
	}
	return nil
}

// Validate проверяет токен и возвращает оператора активной сессии.
func (m *Manager) Validate(token string) (*model.AdminUser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.session.Authenticated || token == "" || token != m.session.Token {
		return nil, ErrSessionNotFound
	}

	user := *m.session.User
	return &user, nil
}

// Current возвращает копию текущей сессии.
func (m *Manager) Current() model.Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	current := m.session
	if current.User != nil {
		user := *current.User
		current.User = &user
	}
	return current
}

func (m *Manager) persist() error {
	data, err := json.Marshal(m.session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := os.WriteFile(m.path, data, 0o600); err != nil {
		return fmt.Errorf("write session storage: %w", err)
	}
	return nil
}
