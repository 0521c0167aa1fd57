package models

import (
	"time"

	"gorm.io/gorm"
)

// Product is a seasonal item published by a producer. The availability
// window is an inclusive date range; AvailabilityStart must not be after
// AvailabilityEnd.
type Product struct {
	ID                uint     `gorm:"primaryKey" json:"id"`
	Name              string   `gorm:"not null" json:"name"`
	Description       string   `gorm:"type:text" json:"description"`
	AvailabilityStart Date     `gorm:"not null;index" json:"availability_start"`
	AvailabilityEnd   Date     `gorm:"not null;index" json:"availability_end"`
	ProducerID        uint     `gorm:"not null;index" json:"producer_id"`
	Producer          *Profile `gorm:"foreignKey:ProducerID;references:UserID" json:"producer,omitempty"`
	// Locations are the owning producer's sale points, attached at query time.
	Locations []Location `gorm:"foreignKey:ProducerID;references:ProducerID" json:"locations,omitempty"`
	// IsFavorite is computed per requesting user, never persisted.
	IsFavorite bool           `gorm:"-" json:"is_favorite"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
