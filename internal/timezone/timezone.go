package timezone

import (
	"os"
	"time"
)

const DefaultTimezone = "UTC"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func shopLocation() *time.Location {
	return Location(os.Getenv("SHOP_TIMEZONE"))
}

// Now is the current shop-local time. "Today" and the same-day lead-time
// buffer are evaluated against it.
func Now() time.Time {
	return time.Now().In(shopLocation())
}

// Today is the current shop-local calendar day as YYYY-MM-DD.
func Today() string {
	return Now().Format("2006-01-02")
}
