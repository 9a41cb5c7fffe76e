package models

import (
	"time"
)

type Wishlist struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserEmail string    `json:"user_email" gorm:"not null;uniqueIndex:idx_wishlist_user_book"`
	BookID    uint      `json:"book_id" gorm:"not null;uniqueIndex:idx_wishlist_user_book"`
	CreatedAt time.Time `json:"created_at"`
}
