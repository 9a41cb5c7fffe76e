package models

import (
	"time"
)

// Order status constants
const (
	OrderStatusPending   = "pending"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// Payment status constants, shared by orders and payment records
const (
	PaymentStatusUnpaid = "unpaid"
	PaymentStatusPaid   = "paid"
)

type Order struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	BookID        uint      `gorm:"index" json:"book_id"`
	BookTitle     string    `json:"book_title"`
	SellerEmail   string    `gorm:"index" json:"seller_email"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `gorm:"index;not null" json:"customer_email"`
	CustomerPhone string    `json:"customer_phone"`
	Address       string    `json:"address"`
	Quantity      int       `gorm:"default:1" json:"quantity"`
	Price         float64   `json:"price"`
	Status        string    `gorm:"default:pending" json:"status"`
	PaymentStatus string    `gorm:"default:unpaid" json:"payment_status"`
	TrackingID    string    `gorm:"index" json:"tracking_id,omitempty"`
	OrderDate     time.Time `json:"order_date"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
