package models

import (
	"time"
)

type Barber struct {
	ID     uint  `gorm:"primaryKey" json:"id"`
	UserID *uint `json:"user_id,omitempty"`

	Name      string `gorm:"size:100;not null" json:"name"`
	Email     string `gorm:"size:100" json:"email,omitempty"`
	Phone     string `gorm:"size:20" json:"phone,omitempty"`
	Bio       string `gorm:"size:500" json:"bio,omitempty"`
	AvatarURL string `gorm:"size:255" json:"avatar_url,omitempty"`

	// One entry per weekday, stored as a JSON blob keyed by lowercase day
	// name.
	WorkingHours WeekSchedule `gorm:"type:jsonb" json:"working_hours"`

	IsActive bool `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
