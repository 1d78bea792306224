// Package handler содержит HTTP-обработчики API админ-панели SaveBite.
package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/mmeshcher/savebite-admin/internal/filter"
	"github.com/mmeshcher/savebite-admin/internal/fixture"
	"github.com/mmeshcher/savebite-admin/internal/middleware"
	"github.com/mmeshcher/savebite-admin/internal/model"
	"github.com/mmeshcher/savebite-admin/internal/report"
	"github.com/mmeshcher/savebite-admin/internal/service"
	"github.com/mmeshcher/savebite-admin/internal/validation"
)

// Service определяет контракт бизнес-логики, используемой HTTP-обработчиками.
type Service interface {
	Login(ctx context.Context, email, password string) (model.Session, error)
	Logout() error
	ListUsers(criteria filter.UserCriteria) []model.User
	GetUser(id string) (*model.User, error)
	UpdateUser(id string, upd service.UserUpdate) (*model.User, error)
	ListDonations(criteria filter.DonationCriteria) []model.Donation
	ListOrders() []model.Order
	Dashboard(now time.Time) (model.DashboardStats, []model.TrendPoint)
	Profile() model.AdminProfile
	UpdateProfile(upd service.ProfileUpdate) (model.AdminProfile, error)
	GenerateReport(w io.Writer, now time.Time, opts report.Options) (string, error)
}

// Handler реализует HTTP-обработчики API админ-панели.
type Handler struct {
	service        Service
	logger         *zap.Logger
	authMiddleware *middleware.AuthMiddleware
}

// NewHandler создаёт новый экземпляр обработчика HTTP-запросов.
func NewHandler(s Service, logger *zap.Logger, auth *middleware.AuthMiddleware) *Handler {
	return &Handler{
		service:        s,
		logger:         logger,
		authMiddleware: auth,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login выполняет аутентификацию оператора и возвращает сессию с токеном.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, http.StatusText(http.StatusBadRequest))
		return
	}

	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, http.StatusText(http.StatusBadRequest))
		return
	}

	sess, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		h.logger.Error("login error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	writeJSON(w, http.StatusOK, sess)
}

// Logout завершает сессию оператора и очищает долговременное хранилище.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Logout(); err != nil {
		h.logger.Error("logout error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}
	w.WriteHeader(http.StatusOK)
}

type dashboardResponse struct {
	Stats  model.DashboardStats `json:"stats"`
	Trends []model.TrendPoint   `json:"trends"`
}

// Dashboard возвращает агрегированную статистику и тренды для главной страницы.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, trends := h.service.Dashboard(time.Now())
	writeJSON(w, http.StatusOK, dashboardResponse{Stats: stats, Trends: trends})
}

type usersResponse struct {
	Total   int          `json:"total"`
	Records []model.User `json:"records"`
}

// ListUsers возвращает пользователей, удовлетворяющих критериям из query-параметров.
// Пустой результат отдаётся явно: total 0 и пустой массив records.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	users := h.service.ListUsers(filter.UserCriteria{
		Role:      q.Get("role"),
		Status:    q.Get("status"),
		StartDate: q.Get("startDate"),
		EndDate:   q.Get("endDate"),
		Query:     q.Get("q"),
	})

	writeJSON(w, http.StatusOK, usersResponse{Total: len(users), Records: users})
}

// GetUser возвращает пользователя по идентификатору.
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	user, err := h.service.GetUser(id)
	if err != nil {
		if errors.Is(err, fixture.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		h.logger.Error("get user error", zap.Error(err), zap.String("id", id))
		writeError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// UpdateUser проверяет правку пользователя и возвращает её результат.
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var upd service.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeError(w, http.StatusBadRequest, http.StatusText(http.StatusBadRequest))
		return
	}

	user, err := h.service.UpdateUser(id, upd)
	if err != nil {
		switch {
		case errors.Is(err, fixture.ErrUserNotFound):
			writeError(w, http.StatusNotFound, "User not found")
		case errors.Is(err, service.ErrInvalidEmail):
			writeError(w, http.StatusBadRequest, "Invalid email format")
		default:
			h.logger.Error("update user error", zap.Error(err), zap.String("id", id))
			writeError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		}
		return
	}

	writeJSON(w, http.StatusOK, user)
}

type donationsResponse struct {
	Total         int              `json:"total"`
	TotalQuantity int              `json:"totalQuantity"`
	Records       []model.Donation `json:"records"`
}

// ListDonations возвращает завершённые пожертвования по критериям из query-параметров.
func (h *Handler) ListDonations(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	donations := h.service.ListDonations(filter.DonationCriteria{
		MerchantID: q.Get("merchant"),
		NGOID:      q.Get("ngo"),
		StartDate:  q.Get("startDate"),
		EndDate:    q.Get("endDate"),
		Query:      q.Get("q"),
	})

	writeJSON(w, http.StatusOK, donationsResponse{
		Total:         len(donations),
		TotalQuantity: filter.TotalQuantity(donations),
		Records:       donations,
	})
}

type ordersResponse struct {
	Total   int           `json:"total"`
	Records []model.Order `json:"records"`
}

// ListOrders возвращает все заказы.
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders := h.service.ListOrders()
	writeJSON(w, http.StatusOK, ordersResponse{Total: len(orders), Records: orders})
}

// GetProfile возвращает профиль оператора.
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Profile())
}

// UpdateProfile проверяет правку профиля и возвращает её результат.
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var upd service.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeError(w, http.StatusBadRequest, http.StatusText(http.StatusBadRequest))
		return
	}

	profile, err := h.service.UpdateProfile(upd)
	if err != nil {
		switch {
		case errors.Is(err, validation.ErrPasswordMismatch):
			writeError(w, http.StatusBadRequest, "Passwords do not match")
		case errors.Is(err, validation.ErrPasswordTooShort):
			writeError(w, http.StatusBadRequest, "Password must be at least 6 characters")
		case errors.Is(err, service.ErrInvalidEmail):
			writeError(w, http.StatusBadRequest, "Invalid email format")
		default:
			h.logger.Error("update profile error", zap.Error(err))
			writeError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		}
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// ExportReport формирует PDF-отчёт и отдаёт его файлом на скачивание.
// Ошибка генерации возвращается клиенту: выбор критериев при этом не теряется,
// запрос можно повторить с теми же параметрами.
func (h *Handler) ExportReport(w http.ResponseWriter, r *http.Request) {
	var opts report.Options
	if err := json.NewDecoder(r.Body).Decode(&opts); err != nil {
		writeError(w, http.StatusBadRequest, http.StatusText(http.StatusBadRequest))
		return
	}

	var buf bytes.Buffer
	filename, err := h.service.GenerateReport(&buf, time.Now(), opts)
	if err != nil {
		h.logger.Error("report generation error", zap.Error(err), zap.String("context", string(opts.Context)))
		writeError(w, http.StatusInternalServerError, "Failed to generate report")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = io.Copy(w, &buf)
}
