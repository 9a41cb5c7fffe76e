package models

import (
	"time"
)

// Seller application status constants
const (
	SellerStatusPending  = "pending"
	SellerStatusApproved = "approved"
	SellerStatusRejected = "rejected"
)

// Seller is an application to sell books on the marketplace
type Seller struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	Email     string    `json:"email" gorm:"index;not null"`
	Phone     string    `json:"phone"`
	ShopName  string    `json:"shop_name"`
	Address   string    `json:"address"`
	Status    string    `json:"status" gorm:"default:pending"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
