// Package filter реализует композицию критериев отбора над коллекциями.
// Один и тот же набор критериев питает и табличные ответы API, и экспорт
// отчётов, поэтому их результаты всегда совпадают.
package filter

import (
	"strings"
	"time"

	"github.com/mmeshcher/savebite-admin/internal/model"
)

// All — сквозное значение критерия, пропускающее все записи.
const All = "all"

const dateLayout = "2006-01-02"

// UserCriteria описывает необязательные критерии отбора пользователей.
// Критерии комбинируются по И; пустые значения и "all" не применяются.
type UserCriteria struct {
	Role      string
	Status    string
	StartDate string
	EndDate   string
	Query     string
}

// DonationCriteria описывает необязательные критерии отбора пожертвований.
type DonationCriteria struct {
	MerchantID string
	NGOID      string
	StartDate  string
	EndDate    string
	Query      string
}

// dateRange хранит разобранные границы диапазона дат.
// Диапазон применяется только при наличии обеих границ; некорректная
// граница не роняет фильтрацию, а исключает все записи, как и сравнение
// с невалидной датой в исходной системе.
type dateRange struct {
	active bool
	valid  bool
	start  time.Time
	end    time.Time
}

func parseRange(startDate, endDate string) dateRange {
	if startDate == "" || endDate == "" {
		return dateRange{}
	}

	start, errStart := time.Parse(dateLayout, startDate)
	end, errEnd := time.Parse(dateLayout, endDate)
	if errStart != nil || errEnd != nil {
		return dateRange{active: true, valid: false}
	}

	// Верхняя граница включает весь день.
	end = end.Add(24*time.Hour - time.Nanosecond)

	return dateRange{active: true, valid: true, start: start, end: end}
}

func (r dateRange) contains(t time.Time) bool {
	if !r.active {
		return true
	}
	if !r.valid {
		return false
	}
	return !t.Before(r.start) && !t.After(r.end)
}

func passes(value, criterion string) bool {
	return criterion == "" || criterion == All || value == criterion
}

// Users возвращает новый срез пользователей, удовлетворяющих всем критериям,
// с сохранением исходного порядка. Базовая коллекция не изменяется.
func Users(base []model.User, c UserCriteria) []model.User {
	rng := parseRange(c.StartDate, c.EndDate)
	query := strings.ToLower(strings.TrimSpace(c.Query))

	out := make([]model.User, 0)
	for _, u := range base {
		if !passes(string(u.Role), c.Role) {
			continue
		}
		if !passes(string(u.Status), c.Status) {
			continue
		}
		if !rng.contains(u.CreatedAt) {
			continue
		}
		if query != "" && !userMatches(u, query) {
			continue
		}
		out = append(out, u)
	}
	return out
}

func userMatches(u model.User, query string) bool {
	return strings.Contains(strings.ToLower(u.Name), query) ||
		strings.Contains(strings.ToLower(u.Email), query)
}

// Donations возвращает новый срез пожертвований, удовлетворяющих всем
// критериям, с сохранением исходного порядка. Перед остальными критериями
// коллекция сужается до завершённых пожертвований: в отчётные записи
// попадают только финализированные доставки.
func Donations(base []model.Donation, c DonationCriteria) []model.Donation {
	rng := parseRange(c.StartDate, c.EndDate)
	query := strings.ToLower(strings.TrimSpace(c.Query))

	out := make([]model.Donation, 0)
	for _, d := range base {
		if d.Status != model.DonationStatusCompleted {
			continue
		}
		if !passes(d.MerchantID, c.MerchantID) {
			continue
		}
		if !passes(d.NGOID, c.NGOID) {
			continue
		}
		if !rng.contains(d.DeliveryDate) {
			continue
		}
		if query != "" && !donationMatches(d, query) {
			continue
		}
		out = append(out, d)
	}
	return out
}

func donationMatches(d model.Donation, query string) bool {
	if strings.Contains(strings.ToLower(d.MerchantName), query) {
		return true
	}
	if strings.Contains(strings.ToLower(d.NGOName), query) {
		return true
	}
	for _, item := range d.Items {
		if strings.Contains(strings.ToLower(item), query) {
			return true
		}
	}
	return false
}

// TotalQuantity суммирует количество позиций по срезу пожертвований.
func TotalQuantity(donations []model.Donation) int {
	total := 0
	for _, d := range donations {
		total += d.Quantity
	}
	return total
}
