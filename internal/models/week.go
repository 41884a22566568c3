package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// DayHours is a single day's opening window.
type DayHours struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	IsWorking bool   `json:"isWorking"`
}

// WeekSchedule holds exactly one DayHours per weekday, indexed by
// time.Weekday (Sunday = 0). A zero entry means not working, so a schedule
// missing a day behaves the same as one that marks it closed.
type WeekSchedule [7]DayHours

var dayNames = [7]string{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

// For returns the hours configured for the given weekday.
func (w WeekSchedule) For(d time.Weekday) DayHours {
	return w[int(d)]
}

// Set replaces the hours for the given weekday.
func (w *WeekSchedule) Set(d time.Weekday, h DayHours) {
	w[int(d)] = h
}

// MarshalJSON serialises the schedule as a map keyed by lowercase day name,
// the layout the storage blob uses.
func (w WeekSchedule) MarshalJSON() ([]byte, error) {
	out := make(map[string]DayHours, 7)
	for i, h := range w {
		out[dayNames[i]] = h
	}
	return json.Marshal(out)
}

// UnmarshalJSON accepts the lowercase-day-name map. Days absent from the blob
// stay zero, i.e. not working.
func (w *WeekSchedule) UnmarshalJSON(data []byte) error {
	var raw map[string]DayHours
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var ws WeekSchedule
	for i, name := range dayNames {
		if h, ok := raw[name]; ok {
			ws[i] = h
		}
	}
	*w = ws
	return nil
}

// Value implements driver.Valuer so gorm stores the schedule as a JSON blob.
func (w WeekSchedule) Value() (driver.Value, error) {
	b, err := json.Marshal(w)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (w *WeekSchedule) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*w = WeekSchedule{}
		return nil
	case []byte:
		return json.Unmarshal(v, w)
	case string:
		return json.Unmarshal([]byte(v), w)
	default:
		return fmt.Errorf("cannot scan %T into WeekSchedule", src)
	}
}
