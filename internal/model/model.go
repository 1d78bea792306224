// Package model содержит доменные сущности админ-панели SaveBite.
package model

import "time"

// Role описывает роль пользователя платформы.
type Role string

const (
	RoleConsumer Role = "consumer"
	RoleMerchant Role = "merchant"
	RoleNGO      Role = "ngo"
)

// UserStatus описывает статус учётной записи пользователя.
type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
	UserStatusInactive  UserStatus = "inactive"
)

// User представляет пользователя платформы: покупателя, продавца или NGO.
type User struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Role      Role       `json:"role"`
	Status    UserStatus `json:"status"`
	Phone     string     `json:"phone,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}

// DonationStatus описывает статус доставки пожертвования.
type DonationStatus string

const (
	DonationStatusCompleted DonationStatus = "completed"
	DonationStatusPending   DonationStatus = "pending"
	DonationStatusCancelled DonationStatus = "cancelled"
)

// Donation описывает передачу излишков еды от продавца к NGO.
// Имена продавца и NGO денормализованы рядом с идентификаторами.
type Donation struct {
	ID           string         `json:"id"`
	MerchantID   string         `json:"merchantId"`
	MerchantName string         `json:"merchantName"`
	NGOID        string         `json:"ngoId"`
	NGOName      string         `json:"ngoName"`
	Items        []string       `json:"items"`
	Quantity     int            `json:"quantity"`
	DeliveryDate time.Time      `json:"deliveryDate"`
	Status       DonationStatus `json:"status"`
	CreatedAt    time.Time      `json:"createdAt"`
}

// OrderStatus описывает статус заказа.
type OrderStatus string

const (
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// OrderItem описывает одну позицию заказа.
type OrderItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Order описывает заказ покупателя у продавца.
type Order struct {
	ID           string      `json:"id"`
	ConsumerID   string      `json:"consumerId"`
	ConsumerName string      `json:"consumerName"`
	MerchantID   string      `json:"merchantId"`
	MerchantName string      `json:"merchantName"`
	Items        []OrderItem `json:"items"`
	Total        float64     `json:"total"`
	Status       OrderStatus `json:"status"`
	CreatedAt    time.Time   `json:"createdAt"`
}

// AdminProfile описывает профиль оператора панели.
type AdminProfile struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// AdminUser содержит данные оператора, помещаемые в сессию.
type AdminUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// Session описывает сессию аутентифицированного оператора.
type Session struct {
	User          *AdminUser `json:"user"`
	Token         string     `json:"token"`
	Authenticated bool       `json:"isAuthenticated"`
}

// DashboardStats содержит агрегированную статистику для главной страницы.
type DashboardStats struct {
	TotalUsers         int `json:"totalUsers"`
	TotalConsumers     int `json:"totalConsumers"`
	TotalMerchants     int `json:"totalMerchants"`
	TotalNGOs          int `json:"totalNGOs"`
	TotalOrders        int `json:"totalOrders"`
	NewMerchants       int `json:"newMerchants"`
	NewConsumers       int `json:"newConsumers"`
	CompletedDonations int `json:"completedDonations"`
	CompletedOrders    int `json:"completedOrders"`
}

// TrendPoint содержит счётчики завершённых заказов и пожертвований за один день.
type TrendPoint struct {
	Date      string `json:"date"`
	Orders    int    `json:"orders"`
	Donations int    `json:"donations"`
}
