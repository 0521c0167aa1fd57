package models

import "time"

// Favorite marks a user's saved interest in a product. At most one row may
// exist per (user, product) pair.
type Favorite struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index;uniqueIndex:idx_user_product" json:"user_id"`
	ProductID uint      `gorm:"not null;index;uniqueIndex:idx_user_product" json:"product_id"`
	CreatedAt time.Time `json:"created_at"`
}
