package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLocation(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	require.NoError(t, err)
	return loc
}

func TestClassifyBoundaries(t *testing.T) {
	loc := mustLocation(t, "Europe/Madrid")
	now := time.Date(2025, 6, 10, 0, 0, 0, 0, loc)

	tests := []struct {
		date string
		want Window
	}{
		{"2025-06-09", WindowPast},
		{"2025-06-10", WindowDirect},
		{"2025-06-11", WindowDirect},
		{"2025-06-12", WindowRequest},
		{"2025-07-01", WindowRequest},
		{"2024-12-31", WindowPast},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			date, err := ParseDateKey(tt.date, loc)
			require.NoError(t, err)
			assert.Equal(t, tt.want, Classify(date, now))
		})
	}
}

func TestClassifyIgnoresTimeOfDay(t *testing.T) {
	loc := mustLocation(t, "Europe/Madrid")
	nows := []time.Time{
		time.Date(2025, 6, 10, 0, 0, 0, 0, loc),
		time.Date(2025, 6, 10, 0, 0, 1, 0, loc),
		time.Date(2025, 6, 10, 12, 30, 0, 0, loc),
		time.Date(2025, 6, 10, 23, 59, 59, 0, loc),
	}

	for _, now := range nows {
		assert.Equal(t, WindowPast, Classify(time.Date(2025, 6, 9, 23, 59, 0, 0, loc), now), now)
		assert.Equal(t, WindowDirect, Classify(time.Date(2025, 6, 10, 0, 0, 0, 0, loc), now), now)
		assert.Equal(t, WindowDirect, Classify(time.Date(2025, 6, 11, 23, 59, 0, 0, loc), now), now)
		assert.Equal(t, WindowRequest, Classify(time.Date(2025, 6, 12, 0, 0, 0, 0, loc), now), now)
	}
}

func TestClassifyAcrossDSTChange(t *testing.T) {
	loc := mustLocation(t, "Europe/Madrid")
	// 30 марта 2025 в Мадриде сутки длятся 23 часа
	now := time.Date(2025, 3, 29, 22, 0, 0, 0, loc)

	assert.Equal(t, WindowDirect, Classify(time.Date(2025, 3, 30, 0, 0, 0, 0, loc), now))
	assert.Equal(t, WindowRequest, Classify(time.Date(2025, 3, 31, 0, 0, 0, 0, loc), now))
}

func TestClassifyIsExhaustiveAndMonotonic(t *testing.T) {
	loc := mustLocation(t, "Europe/Madrid")
	now := time.Date(2025, 6, 10, 17, 45, 0, 0, loc)
	start := time.Date(2025, 5, 1, 0, 0, 0, 0, loc)

	rank := map[Window]int{WindowPast: 0, WindowDirect: 1, WindowRequest: 2}
	prev := -1
	direct := 0

	for i := 0; i < 120; i++ {
		date := start.AddDate(0, 0, i)
		w := Classify(date, now)

		r, ok := rank[w]
		require.True(t, ok, "unexpected window %q", w)
		assert.GreaterOrEqual(t, r, prev, "window went backwards at %s", DateKey(date))
		prev = r

		exclusive := 0
		for _, in := range []bool{IsPast(date, now), IsInDirectWindow(date, now), IsInRequestWindow(date, now)} {
			if in {
				exclusive++
			}
		}
		assert.Equal(t, 1, exclusive, DateKey(date))

		if w == WindowDirect {
			direct++
		}
	}

	assert.Equal(t, DirectWindowDays, direct)
}

func TestClassifyUsesNowLocation(t *testing.T) {
	madrid := mustLocation(t, "Europe/Madrid")
	now := time.Date(2025, 6, 10, 0, 30, 0, 0, madrid)
	// 2025-06-09 23:00 UTC is already the 10th in Madrid
	date := time.Date(2025, 6, 9, 23, 0, 0, 0, time.UTC)

	assert.Equal(t, WindowDirect, Classify(date, now))
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2025, 6, 12, 1, 0, 0, 0, time.UTC)
	b := time.Date(2025, 6, 10, 23, 0, 0, 0, time.UTC)

	assert.Equal(t, 2, DaysBetween(a, b))
	assert.Equal(t, -2, DaysBetween(b, a))
	assert.Equal(t, 0, DaysBetween(b, b))
	assert.Equal(t, 365, DaysBetween(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestDateKeyRoundTrip(t *testing.T) {
	loc := mustLocation(t, "Europe/Madrid")
	keys := []string{"2025-06-10", "2024-02-29", "1999-12-31", "2025-01-01", "2030-10-05"}

	for _, key := range keys {
		parsed, err := ParseDateKey(key, loc)
		require.NoError(t, err)
		assert.Equal(t, key, DateKey(parsed))
	}
}

func TestParseDateKeyRejectsNonCanonical(t *testing.T) {
	for _, s := range []string{"", "2025-6-10", "10/06/2025", "2025-02-30", "2025-06-10T10:00:00Z"} {
		_, err := ParseDateKey(s, time.UTC)
		assert.Error(t, err, s)
	}
}

func TestTodayUsesClock(t *testing.T) {
	loc := mustLocation(t, "Europe/Madrid")
	clock := FixedClock(time.Date(2025, 6, 10, 18, 20, 0, 0, loc))

	assert.Equal(t, time.Date(2025, 6, 10, 0, 0, 0, 0, loc), Today(clock))
}

func TestValidTimeSlot(t *testing.T) {
	valid := []string{"00:00", "09:30", "18:00", "23:59"}
	invalid := []string{"", "9:30", "24:00", "18:60", "18-00", "18:00:00", " 18:00"}

	for _, s := range valid {
		assert.True(t, ValidTimeSlot(s), s)
	}
	for _, s := range invalid {
		assert.False(t, ValidTimeSlot(s), s)
	}
}

func TestUpcoming(t *testing.T) {
	now := time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC)
	days := Upcoming(now, 4)

	require.Len(t, days, 4)
	assert.Equal(t, "2025-06-10", days[0].Key)
	assert.Equal(t, WindowDirect, days[0].Window)
	assert.Equal(t, WindowDirect, days[1].Window)
	assert.Equal(t, WindowRequest, days[2].Window)
	assert.Equal(t, "2025-06-13", days[3].Key)
}
