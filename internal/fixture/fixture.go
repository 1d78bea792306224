// Package fixture содержит статический набор данных платформы SaveBite.
// Данные доступны только для чтения и заменяют собой реальное хранилище.
package fixture

import (
	"errors"
	"time"

	"github.com/mmeshcher/savebite-admin/internal/model"
)

// ErrUserNotFound возвращается, если пользователь с указанным идентификатором не найден.
var ErrUserNotFound = errors.New("user not found")

// Store предоставляет доступ к набору данных и агрегатам по нему.
type Store struct {
	users     []model.User
	donations []model.Donation
	orders    []model.Order
	admin     model.AdminProfile
}

// NewStore создаёт хранилище со встроенным набором данных.
func NewStore() *Store {
	return &Store{
		users:     seedUsers(),
		donations: seedDonations(),
		orders:    seedOrders(),
		admin:     seedAdmin(),
	}
}

// Users возвращает всех пользователей в порядке добавления.
func (s *Store) Users() []model.User {
	out := make([]model.User, len(s.users))
	copy(out, s.users)
	return out
}

// Donations возвращает все пожертвования в порядке добавления.
func (s *Store) Donations() []model.Donation {
	out := make([]model.Donation, len(s.donations))
	copy(out, s.donations)
	return out
}

// Orders возвращает все заказы в порядке добавления.
func (s *Store) Orders() []model.Order {
	out := make([]model.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// Admin возвращает профиль оператора панели.
func (s *Store) Admin() model.AdminProfile {
	return s.admin
}

// UserByID ищет пользователя по идентификатору.
func (s *Store) UserByID(id string) (*model.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			found := u
			return &found, nil
		}
	}
	return nil, ErrUserNotFound
}

// UsersByRole возвращает пользователей с указанной ролью.
// Пустое значение и "all" возвращают всех пользователей.
func (s *Store) UsersByRole(role string) []model.User {
	if role == "" || role == "all" {
		return s.Users()
	}
	out := make([]model.User, 0)
	for _, u := range s.users {
		if string(u.Role) == role {
			out = append(out, u)
		}
	}
	return out
}

// UsersByStatus возвращает пользователей с указанным статусом.
// Пустое значение и "all" возвращают всех пользователей.
func (s *Store) UsersByStatus(status string) []model.User {
	if status == "" || status == "all" {
		return s.Users()
	}
	out := make([]model.User, 0)
	for _, u := range s.users {
		if string(u.Status) == status {
			out = append(out, u)
		}
	}
	return out
}

// DonationsByNGO возвращает пожертвования, адресованные указанной NGO.
// Пустое значение и "all" возвращают все пожертвования.
func (s *Store) DonationsByNGO(ngoID string) []model.Donation {
	if ngoID == "" || ngoID == "all" {
		return s.Donations()
	}
	out := make([]model.Donation, 0)
	for _, d := range s.donations {
		if d.NGOID == ngoID {
			out = append(out, d)
		}
	}
	return out
}

// DonationsByDateRange возвращает пожертвования с датой доставки в границах [start, end].
func (s *Store) DonationsByDateRange(start, end time.Time) []model.Donation {
	out := make([]model.Donation, 0)
	for _, d := range s.donations {
		if !d.DeliveryDate.Before(start) && !d.DeliveryDate.After(end) {
			out = append(out, d)
		}
	}
	return out
}

// Stats считает агрегированную статистику панели на момент now.
func (s *Store) Stats(now time.Time) model.DashboardStats {
	thirtyDaysAgo := now.AddDate(0, 0, -30)

	stats := model.DashboardStats{
		TotalUsers: len(s.users),
	}

	for _, u := range s.users {
		switch u.Role {
		case model.RoleConsumer:
			stats.TotalConsumers++
			if !u.CreatedAt.Before(thirtyDaysAgo) {
				stats.NewConsumers++
			}
		case model.RoleMerchant:
			stats.TotalMerchants++
			if !u.CreatedAt.Before(thirtyDaysAgo) {
				stats.NewMerchants++
			}
		}
	}

	ngos := make(map[string]struct{})
	for _, d := range s.donations {
		ngos[d.NGOID] = struct{}{}
		if d.Status == model.DonationStatusCompleted {
			stats.CompletedDonations++
		}
	}
	stats.TotalNGOs = len(ngos)

	for _, o := range s.orders {
		if o.Status == model.OrderStatusCompleted {
			stats.CompletedOrders++
		}
	}
	stats.TotalOrders = stats.CompletedOrders

	return stats
}

// Trends строит поденные счётчики завершённых заказов и пожертвований
// за последние days дней, включая текущий день.
func (s *Store) Trends(now time.Time, days int) []model.TrendPoint {
	if days <= 0 {
		return []model.TrendPoint{}
	}

	points := make([]model.TrendPoint, 0, days)
	byDate := make(map[string]int, days)

	for i := days - 1; i >= 0; i-- {
		date := now.AddDate(0, 0, -i).UTC().Format("2006-01-02")
		byDate[date] = len(points)
		points = append(points, model.TrendPoint{Date: date})
	}

	for _, o := range s.orders {
		if o.Status != model.OrderStatusCompleted {
			continue
		}
		if idx, ok := byDate[o.CreatedAt.UTC().Format("2006-01-02")]; ok {
			points[idx].Orders++
		}
	}

	for _, d := range s.donations {
		if d.Status != model.DonationStatusCompleted {
			continue
		}
		if idx, ok := byDate[d.DeliveryDate.UTC().Format("2006-01-02")]; ok {
			points[idx].Donations++
		}
	}

	return points
}

func ts(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic("fixture: bad timestamp " + value)
	}
	return t
}

func tsPtr(value string) *time.Time {
	t := ts(value)
	return &t
}

func seedUsers() []model.User {
	return []model.User{
		{
			ID:        "1",
			Name:      "John Doe",
			Email:     "john.doe@example.com",
			Role:      model.RoleConsumer,
			Status:    model.UserStatusActive,
			Phone:     "+60123456789",
			CreatedAt: ts("2025-01-15T10:00:00Z"),
			LastLogin: tsPtr("2025-12-20T14:30:00Z"),
		},
		{
			ID:        "2",
			Name:      "Jane Smith",
			Email:     "jane.smith@example.com",
			Role:      model.RoleConsumer,
			Status:    model.UserStatusActive,
			Phone:     "+60123456790",
			CreatedAt: ts("2025-02-20T11:00:00Z"),
			LastLogin: tsPtr("2025-12-19T09:15:00Z"),
		},
		{
			ID:        "3",
			Name:      "The Baker's Cottage",
			Email:     "baker@example.com",
			Role:      model.RoleMerchant,
			Status:    model.UserStatusActive,
			Phone:     "+60123456791",
			CreatedAt: ts("2025-01-10T08:00:00Z"),
			LastLogin: tsPtr("2025-12-20T16:45:00Z"),
		},
		{
			ID:        "4",
			Name:      "Green Food Market",
			Email:     "greenmarket@example.com",
			Role:      model.RoleMerchant,
			Status:    model.UserStatusActive,
			Phone:     "+60123456792",
			CreatedAt: ts("2025-03-05T09:30:00Z"),
			LastLogin: tsPtr("2025-12-18T10:20:00Z"),
		},
		{
			ID:        "5",
			Name:      "Food Rescue Malaysia",
			Email:     "foodrescue@example.com",
			Role:      model.RoleNGO,
			Status:    model.UserStatusActive,
			Phone:     "+60123456793",
			CreatedAt: ts("2025-01-25T12:00:00Z"),
			LastLogin: tsPtr("2025-12-20T11:00:00Z"),
		},
		{
			ID:        "6",
			Name:      "Community Kitchen",
			Email:     "community@example.com",
			Role:      model.RoleNGO,
			Status:    model.UserStatusActive,
			Phone:     "+60123456794",
			CreatedAt: ts("2025-02-15T13:00:00Z"),
			LastLogin: tsPtr("2025-12-19T15:30:00Z"),
		},
		{
			ID:        "7",
			Name:      "Bob Wilson",
			Email:     "bob.wilson@example.com",
			Role:      model.RoleConsumer,
			Status:    model.UserStatusSuspended,
			Phone:     "+60123456795",
			CreatedAt: ts("2025-04-10T10:00:00Z"),
			LastLogin: tsPtr("2025-12-10T08:00:00Z"),
		},
		{
			ID:        "8",
			Name:      "Sweet Treats Bakery",
			Email:     "sweettreats@example.com",
			Role:      model.RoleMerchant,
			Status:    model.UserStatusActive,
			Phone:     "+60123456796",
			CreatedAt: ts("2025-05-20T09:00:00Z"),
			LastLogin: tsPtr("2025-12-20T17:00:00Z"),
		},
	}
}

func seedDonations() []model.Donation {
	return []model.Donation{
		{
			ID:           "D001",
			MerchantID:   "3",
			MerchantName: "The Baker's Cottage",
			NGOID:        "5",
			NGOName:      "Food Rescue Malaysia",
			Items:        []string{"Pastry Box", "Bread Bundle", "Cake Slices"},
			Quantity:     25,
			DeliveryDate: ts("2025-12-20T10:00:00Z"),
			Status:       model.DonationStatusCompleted,
			CreatedAt:    ts("2025-12-19T14:00:00Z"),
		},
		{
			ID:           "D002",
			MerchantID:   "4",
			MerchantName: "Green Food Market",
			NGOID:        "6",
			NGOName:      "Community Kitchen",
			Items:        []string{"Fresh Vegetables", "Fruits"},
			Quantity:     50,
			DeliveryDate: ts("2025-12-19T15:00:00Z"),
			Status:       model.DonationStatusCompleted,
			CreatedAt:    ts("2025-12-18T16:00:00Z"),
		},
		{
			ID:           "D003",
			MerchantID:   "3",
			MerchantName: "The Baker's Cottage",
			NGOID:        "5",
			NGOName:      "Food Rescue Malaysia",
			Items:        []string{"Sandwiches", "Salads"},
			Quantity:     30,
			DeliveryDate: ts("2025-12-18T11:00:00Z"),
			Status:       model.DonationStatusCompleted,
			CreatedAt:    ts("2025-12-17T10:00:00Z"),
		},
		{
			ID:           "D004",
			MerchantID:   "8",
			MerchantName: "Sweet Treats Bakery",
			NGOID:        "6",
			NGOName:      "Community Kitchen",
			Items:        []string{"Cookies", "Muffins"},
			Quantity:     40,
			DeliveryDate: ts("2025-12-17T13:00:00Z"),
			Status:       model.DonationStatusCompleted,
			CreatedAt:    ts("2025-12-16T12:00:00Z"),
		},
		{
			ID:           "D005",
			MerchantID:   "4",
			MerchantName: "Green Food Market",
			NGOID:        "5",
			NGOName:      "Food Rescue Malaysia",
			Items:        []string{"Rice", "Noodles"},
			Quantity:     60,
			DeliveryDate: ts("2025-12-16T14:00:00Z"),
			Status:       model.DonationStatusCompleted,
			CreatedAt:    ts("2025-12-15T11:00:00Z"),
		},
	}
}

func seedOrders() []model.Order {
	return []model.Order{
		{
			ID:           "O001",
			ConsumerID:   "1",
			ConsumerName: "John Doe",
			MerchantID:   "3",
			MerchantName: "The Baker's Cottage",
			Items: []model.OrderItem{
				{Name: "Pastry Box", Quantity: 2, Price: 8.00},
				{Name: "Bread Bundle", Quantity: 1, Price: 5.00},
			},
			Total:     21.00,
			Status:    model.OrderStatusCompleted,
			CreatedAt: ts("2025-12-20T09:00:00Z"),
		},
		{
			ID:           "O002",
			ConsumerID:   "2",
			ConsumerName: "Jane Smith",
			MerchantID:   "4",
			MerchantName: "Green Food Market",
			Items: []model.OrderItem{
				{Name: "Fresh Vegetables", Quantity: 1, Price: 12.00},
			},
			Total:     12.00,
			Status:    model.OrderStatusCompleted,
			CreatedAt: ts("2025-12-19T10:00:00Z"),
		},
	}
}

func seedAdmin() model.AdminProfile {
	return model.AdminProfile{
		ID:        "admin1",
		Name:      "Admin User",
		Email:     "admin@savebite.com",
		Phone:     "+60123456700",
		Role:      "admin",
		CreatedAt: ts("2025-01-01T00:00:00Z"),
	}
}
