package notify

import (
	"fmt"

	"github.com/barbershop-booking/backend/internal/models"
)

// ConfirmationHTML builds the booking-confirmation email body.
func ConfirmationHTML(bk *models.Booking) string {
	return fmt.Sprintf(`
<p>Hi %s,</p>
<p>Your appointment is confirmed!</p>
<p><strong>Service:</strong> %s</p>
<p><strong>Barber:</strong> %s</p>
<p><strong>Date:</strong> %s</p>
<p><strong>Time:</strong> %s - %s</p>
<p><strong>Confirmation code:</strong> %s</p>
<p>See you soon!</p>`,
		bk.CustomerName,
		bk.ServiceName,
		bk.BarberName,
		bk.Date,
		bk.StartTime,
		bk.EndTime,
		bk.ConfirmationCode,
	)
}

// ReminderHTML builds the day-before reminder email body.
func ReminderHTML(bk *models.Booking) string {
	return fmt.Sprintf(`
<p>Hi %s,</p>
<p>This is a reminder for your appointment tomorrow!</p>
<p><strong>Service:</strong> %s</p>
<p><strong>Barber:</strong> %s</p>
<p><strong>Time:</strong> %s</p>
<p>See you soon!</p>`,
		bk.CustomerName,
		bk.ServiceName,
		bk.BarberName,
		bk.StartTime,
	)
}
