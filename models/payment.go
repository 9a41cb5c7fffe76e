package models

import (
	"time"
)

// Payment records a confirmed checkout. TransactionID is unique so a
// transaction can only ever be recorded once.
type Payment struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	CustomerEmail string    `json:"customer_email" gorm:"index"`
	CustomerPhone string    `json:"customer_phone"`
	OrderID       uint      `json:"order_id" gorm:"index"`
	BookID        uint      `json:"book_id"`
	BookTitle     string    `json:"book_title"`
	SessionID     string    `json:"session_id"`
	TransactionID string    `json:"transaction_id" gorm:"uniqueIndex;not null"`
	PaymentStatus string    `json:"payment_status"`
	TrackingID    string    `json:"tracking_id"`
	PaymentDate   time.Time `json:"payment_date"`
	CreatedAt     time.Time `json:"created_at"`
}
