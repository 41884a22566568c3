package schedule

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weekdaysNineToSix() WeekSchedule {
	var w WeekSchedule
	for d := time.Monday; d <= time.Friday; d++ {
		w.Set(d, DayHours{Start: "09:00", End: "18:00", IsWorking: true})
	}
	return w
}

func TestWeekScheduleJSONRoundTrip(t *testing.T) {
	w := weekdaysNineToSix()
	w.Set(time.Saturday, DayHours{Start: "10:00", End: "14:00", IsWorking: true})

	data, err := json.Marshal(w)
	require.NoError(t, err)

	var got WeekSchedule
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, w, got)
}

func TestWeekScheduleUnmarshalMissingDays(t *testing.T) {
	blob := `{"monday":{"start":"09:00","end":"18:00","isWorking":true}}`

	var w WeekSchedule
	require.NoError(t, json.Unmarshal([]byte(blob), &w))

	assert.True(t, w.For(time.Monday).IsWorking)
	for _, d := range []time.Weekday{
		time.Sunday, time.Tuesday, time.Wednesday,
		time.Thursday, time.Friday, time.Saturday,
	} {
		assert.False(t, w.For(d).IsWorking, d.String())
	}
}

func TestWeekScheduleMarshalUsesLowercaseDayNames(t *testing.T) {
	data, err := json.Marshal(weekdaysNineToSix())
	require.NoError(t, err)

	var raw map[string]DayHours
	require.NoError(t, json.Unmarshal(data, &raw))

	for _, name := range []string{
		"sunday", "monday", "tuesday", "wednesday",
		"thursday", "friday", "saturday",
	} {
		_, ok := raw[name]
		assert.True(t, ok, name)
	}
}

func TestWeekScheduleScanValue(t *testing.T) {
	w := weekdaysNineToSix()

	v, err := w.Value()
	require.NoError(t, err)

	var fromString WeekSchedule
	require.NoError(t, fromString.Scan(v))
	assert.Equal(t, w, fromString)

	var fromBytes WeekSchedule
	require.NoError(t, fromBytes.Scan([]byte(v.(string))))
	assert.Equal(t, w, fromBytes)

	var fromNil WeekSchedule
	require.NoError(t, fromNil.Scan(nil))
	assert.Equal(t, WeekSchedule{}, fromNil)

	assert.Error(t, fromNil.Scan(42))
}
