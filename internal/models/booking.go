package models

import "time"

// Booking rows are never deleted; cancellation is a status transition so
// historical reporting stays intact.
type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID *uint `json:"user_id,omitempty"`

	BarberID  uint `gorm:"index:idx_bookings_barber_date" json:"barber_id"`
	ServiceID uint `json:"service_id"`

	CustomerName  string `gorm:"size:100;not null" json:"customer_name"`
	CustomerEmail string `gorm:"size:100;not null" json:"customer_email"`
	CustomerPhone string `gorm:"size:20" json:"customer_phone,omitempty"`

	Date      string `gorm:"size:10;index:idx_bookings_barber_date" json:"date"`
	StartTime string `gorm:"size:5" json:"start_time"`
	// Frozen at creation from the service duration of the day. Later edits
	// to the service never rewrite it.
	EndTime string `gorm:"size:5" json:"end_time"`

	Status string `gorm:"size:20;default:'confirmed'" json:"status"`
	Notes  string `gorm:"size:255" json:"notes,omitempty"`

	// Snapshots taken at booking time so deactivating a barber or editing a
	// service never rewrites history.
	ServiceName  string  `gorm:"size:100" json:"service_name"`
	ServicePrice float64 `json:"service_price"`
	BarberName   string  `gorm:"size:100" json:"barber_name"`

	ConfirmationCode string `gorm:"size:36;uniqueIndex" json:"confirmation_code"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
