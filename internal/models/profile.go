package models

import "time"

// Role classifies an account as a producer or a consumer.
type Role string

const (
	RoleProducer Role = "producer"
	RoleConsumer Role = "consumer"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleProducer || r == RoleConsumer
}

// Profile carries the role and display data for a User. The role is fixed at
// sign-up and never changes afterwards.
type Profile struct {
	UserID    uint      `gorm:"primaryKey" json:"user_id"`
	FullName  string    `json:"full_name"`
	Role      Role      `gorm:"type:varchar(16);not null" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
