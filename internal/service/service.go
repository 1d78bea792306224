// Package service реализует бизнес-логику админ-панели SaveBite.
package service

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/mmeshcher/savebite-admin/internal/filter"
	"github.com/mmeshcher/savebite-admin/internal/fixture"
	"github.com/mmeshcher/savebite-admin/internal/identity"
	"github.com/mmeshcher/savebite-admin/internal/model"
	"github.com/mmeshcher/savebite-admin/internal/report"
	"github.com/mmeshcher/savebite-admin/internal/validation"
)

var (
	// ErrInvalidCredentials возвращается при неверной паре email/пароль.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidEmail возвращается при некорректном формате адреса почты.
	ErrInvalidEmail = errors.New("invalid email format")
)

// TrendDays — глубина поденных трендов на главной странице.
const TrendDays = 7

// Identity описывает контракт внешней проверки учётных данных.
type Identity interface {
	Verify(ctx context.Context, email, password string) error
}

// Sessions описывает контракт менеджера сессий, используемый сервисом.
type Sessions interface {
	Login(user model.AdminUser) (model.Session, error)
	SetUser(user model.AdminUser, token string) (model.Session, error)
	Logout() error
	Validate(token string) (*model.AdminUser, error)
}

// Service содержит бизнес-логику панели поверх неизменяемого набора данных.
type Service struct {
	store        *fixture.Store
	sessions     Sessions
	identity     Identity
	passwordHash []byte
}

// NewService создаёт сервис. Если identity равен nil, учётные данные
// проверяются локально против профиля оператора и adminPassword.
func NewService(store *fixture.Store, sessions Sessions, idc Identity, adminPassword string) *Service {
	return &Service{
		store:        store,
		sessions:     sessions,
		identity:     idc,
		passwordHash: hashPassword(store.Admin().Email, adminPassword),
	}
}

func hashPassword(email, password string) []byte {
	sum := sha256.Sum256([]byte(email + ":" + password))
	return sum[:]
}

// Login проверяет учётные данные оператора и создаёт новую сессию.
func (s *Service) Login(ctx context.Context, email, password string) (model.Session, error) {
	if !validation.IsValidEmail(email) || password == "" {
		return model.Session{}, ErrInvalidCredentials
	}

	if s.identity != nil {
		if err := s.identity.Verify(ctx, email, password); err != nil {
			if errors.Is(err, identity.ErrCredentialsRejected) {
				return model.Session{}, ErrInvalidCredentials
			}
			return model.Session{}, fmt.Errorf("verify credentials: %w", err)
		}
	} else {
		admin := s.store.Admin()
		supplied := hashPassword(admin.Email, password)
		if email != admin.Email || subtle.ConstantTimeCompare(supplied, s.passwordHash) != 1 {
			return model.Session{}, ErrInvalidCredentials
		}
	}

	admin := s.store.Admin()
	sess, err := s.sessions.Login(model.AdminUser{
		ID:    admin.ID,
		Email: admin.Email,
		Name:  admin.Name,
		Role:  admin.Role,
	})
	if err != nil {
		return model.Session{}, fmt.Errorf("create session: %w", err)
	}
	return sess, nil
}

// Logout завершает текущую сессию оператора.
func (s *Service) Logout() error {
	return s.sessions.Logout()
}

// ValidateToken проверяет токен сессии и возвращает оператора.
func (s *Service) ValidateToken(token string) (*model.AdminUser, error) {
	return s.sessions.Validate(token)
}

// ListUsers возвращает пользователей, удовлетворяющих критериям.
func (s *Service) ListUsers(criteria filter.UserCriteria) []model.User {
	return filter.Users(s.store.Users(), criteria)
}

// GetUser возвращает пользователя по идентификатору.
func (s *Service) GetUser(id string) (*model.User, error) {
	return s.store.UserByID(id)
}

// UserUpdate содержит редактируемые поля пользователя.
type UserUpdate struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Status string `json:"status"`
}

// UpdateUser проверяет правку пользователя и возвращает её результат.
// Набор данных неизменяем, поэтому правка не сохраняется: следующее чтение
// снова вернёт исходную запись.
func (s *Service) UpdateUser(id string, upd UserUpdate) (*model.User, error) {
	u, err := s.store.UserByID(id)
	if err != nil {
		return nil, err
	}

	if upd.Email != "" && !validation.IsValidEmail(upd.Email) {
		return nil, ErrInvalidEmail
	}

	if upd.Name != "" {
		u.Name = upd.Name
	}
	if upd.Email != "" {
		u.Email = upd.Email
	}
	if upd.Phone != "" {
		u.Phone = upd.Phone
	}
	if upd.Status != "" {
		u.Status = model.UserStatus(upd.Status)
	}
	return u, nil
}

// ListDonations возвращает завершённые пожертвования, удовлетворяющие критериям.
func (s *Service) ListDonations(criteria filter.DonationCriteria) []model.Donation {
	return filter.Donations(s.store.Donations(), criteria)
}

// ListOrders возвращает все заказы.
func (s *Service) ListOrders() []model.Order {
	return s.store.Orders()
}

// Dashboard возвращает агрегированную статистику и поденные тренды.
func (s *Service) Dashboard(now time.Time) (model.DashboardStats, []model.TrendPoint) {
	return s.store.Stats(now), s.store.Trends(now, TrendDays)
}

// Profile возвращает профиль оператора.
func (s *Service) Profile() model.AdminProfile {
	return s.store.Admin()
}

// ProfileUpdate содержит редактируемые поля профиля оператора.
type ProfileUpdate struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// UpdateProfile проверяет правку профиля и возвращает её результат.
// Как и правки пользователей, изменения не записываются в набор данных.
func (s *Service) UpdateProfile(upd ProfileUpdate) (model.AdminProfile, error) {
	if err := validation.ValidatePasswordChange(upd.Password, upd.ConfirmPassword); err != nil {
		return model.AdminProfile{}, err
	}
	if upd.Email != "" && !validation.IsValidEmail(upd.Email) {
		return model.AdminProfile{}, ErrInvalidEmail
	}

	profile := s.store.Admin()
	if upd.Name != "" {
		profile.Name = upd.Name
	}
	if upd.Email != "" {
		profile.Email = upd.Email
	}
	if upd.Phone != "" {
		profile.Phone = upd.Phone
	}
	return profile, nil
}

// GenerateReport формирует PDF-отчёт и возвращает имя файла.
// Данные отчёта собираются теми же фильтрами, что и списковые ответы,
// поэтому строки отчёта совпадают с таблицей при одинаковых критериях.
func (s *Service) GenerateReport(w io.Writer, now time.Time, opts report.Options) (string, error) {
	data := report.Data{}

	switch opts.Context {
	case report.ContextDashboard:
		data.Stats = s.store.Stats(now)
	case report.ContextUsers:
		data.Users = s.ListUsers(filter.UserCriteria{
			Role:      opts.UserRole,
			Status:    opts.UserStatus,
			StartDate: opts.StartDate,
			EndDate:   opts.EndDate,
		})
	case report.ContextDonations:
		data.Donations = s.ListDonations(filter.DonationCriteria{
			MerchantID: opts.MerchantID,
			NGOID:      opts.NGOID,
			StartDate:  opts.StartDate,
			EndDate:    opts.EndDate,
		})
	}

	if err := report.Generate(w, now, opts, data); err != nil {
		return "", err
	}
	return report.Filename(opts.Context, now), nil
}
