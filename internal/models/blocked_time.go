package models

import "time"

// BlockedTime is a staff-declared unavailability window. When IsAllDay is
// set the stored bounds are conventionally 00:00/23:59 and the barber is
// fully unavailable that date regardless of them.
type BlockedTime struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarberID  uint   `gorm:"index:idx_blocked_barber_date" json:"barber_id"`
	Date      string `gorm:"size:10;index:idx_blocked_barber_date" json:"date"`
	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`
	Reason    string `gorm:"size:255" json:"reason,omitempty"`
	IsAllDay  bool   `gorm:"default:false" json:"is_all_day"`

	CreatedAt time.Time `json:"created_at"`
}
