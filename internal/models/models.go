package models

import "time"

const (
	AdminStatusPending  = "pending"
	AdminStatusApproved = "approved"
	AdminStatusRejected = "rejected"

	AdminRoleSuper = "super"
	AdminRoleAdmin = "admin"
)

const (
	OrderStatusPlaced    = "Order Placed"
	PaymentMethodDefault = "COD"
	PaymentStatusPending = "Pending"
)

type User struct {
	ID           int    `gorm:"primaryKey"           json:"id"`
	Name         string `gorm:"not null"             json:"name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null"             json:"-"`
}

type Admin struct {
	ID           int    `gorm:"primaryKey"           json:"id"`
	Username     string `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"not null"             json:"-"`
	Role         string `gorm:"not null"             json:"role"`
	Status       string `gorm:"not null"             json:"status"`
	IsMain       bool   `gorm:"not null"             json:"isMain"`
}

// Customer identifies who placed an order; orders from anonymous
// checkouts carry the Guest default.
type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func GuestCustomer() Customer {
	return Customer{Name: "Guest", Email: "guest@example.com"}
}

// OrderItem contents come straight from the storefront cart and are not
// validated beyond the order-level "items non-empty" rule.
type OrderItem struct {
	RowID     uint    `gorm:"primaryKey;autoIncrement" json:"-"`
	OrderID   string  `gorm:"index"                    json:"-"`
	ProductID int     `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Size      string  `json:"selectedSize,omitempty"`
	Color     string  `json:"selectedColor,omitempty"`
	Image     string  `json:"image,omitempty"`
}

// Order ids look like "SS-2026-3F0A" and are generated server side.
// Seq records insertion order so listings stay newest first.
type Order struct {
	Seq           uint        `gorm:"primaryKey;autoIncrement"                    json:"-"`
	ID            string      `gorm:"uniqueIndex;not null"                        json:"id"`
	Date          time.Time   `json:"date"`
	Total         float64     `json:"total"`
	Status        string      `json:"status"`
	Location      string      `json:"location"`
	Branch        string      `json:"branch"`
	Items         []OrderItem `gorm:"foreignKey:OrderID;references:ID"            json:"items"`
	Customer      Customer    `gorm:"embedded;embeddedPrefix:customer_"           json:"customer"`
	PaymentMethod string      `json:"paymentMethod"`
	PaymentStatus string      `json:"paymentStatus"`
}

type Product struct {
	ID          int    `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null"   json:"name"`
	Category    string `json:"category"`
	Price       int    `json:"price"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
}
