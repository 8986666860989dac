package calendar

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-01-06")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-06", d.ISO())
	assert.Equal(t, time.Monday, d.Weekday())

	_, err = ParseDate("06/01/2025")
	assert.Error(t, err)

	_, err = ParseDate("2025-13-40")
	assert.Error(t, err)
}

func TestAddDays(t *testing.T) {
	d := NewDate(2025, time.February, 27)

	assert.Equal(t, "2025-03-01", d.AddDays(2).ISO())
	assert.Equal(t, "2025-02-24", d.AddDays(-3).ISO())

	// anno bisestile
	assert.Equal(t, "2024-02-29", NewDate(2024, time.February, 28).AddDays(1).ISO())
}

func TestWeekdayIndex(t *testing.T) {
	assert.Equal(t, 0, NewDate(2025, time.January, 6).WeekdayIndex())  // lunedì
	assert.Equal(t, 3, NewDate(2025, time.January, 9).WeekdayIndex())  // giovedì
	assert.Equal(t, 6, NewDate(2025, time.January, 12).WeekdayIndex()) // domenica
}

func TestMondayOf(t *testing.T) {
	monday := NewDate(2025, time.January, 6)

	for d := 0; d < 7; d++ {
		day := monday.AddDays(d)
		assert.Equal(t, monday, MondayOf(day), "giorno %s", day.ISO())
	}

	// un lunedì è il lunedì di sé stesso
	assert.Equal(t, monday, MondayOf(monday))
}

func TestDaysBetween(t *testing.T) {
	a := NewDate(2025, time.February, 3)
	b := NewDate(2025, time.January, 6)

	assert.Equal(t, 28, DaysBetween(a, b))
	assert.Equal(t, -28, DaysBetween(b, a))
	assert.Equal(t, 0, DaysBetween(a, a))
}

func TestDateJSON(t *testing.T) {
	d := NewDate(2025, time.March, 10)

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-03-10"`, string(raw))

	var parsed Date
	require.NoError(t, json.Unmarshal(raw, &parsed))
	assert.Equal(t, d, parsed)

	assert.Error(t, json.Unmarshal([]byte(`"non-una-data"`), &parsed))
	assert.Error(t, json.Unmarshal([]byte(`null`), &parsed))
}

func TestDateScan(t *testing.T) {
	var d Date

	require.NoError(t, d.Scan(time.Date(2025, time.March, 10, 15, 30, 0, 0, time.Local)))
	assert.Equal(t, "2025-03-10", d.ISO())

	require.NoError(t, d.Scan("2025-03-11"))
	assert.Equal(t, "2025-03-11", d.ISO())

	assert.Error(t, d.Scan(42))
}
