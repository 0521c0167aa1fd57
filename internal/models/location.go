package models

import (
	"time"

	"gorm.io/gorm"
)

// Location is a sale point owned by a producer. Its lifecycle is independent
// from that producer's products.
type Location struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	Name       string         `gorm:"not null" json:"name"`
	Address    string         `gorm:"not null" json:"address"`
	ProducerID uint           `gorm:"not null;index" json:"producer_id"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
