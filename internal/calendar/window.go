package calendar

import (
	"fmt"
	"regexp"
	"time"
)

// Window режим бронирования, в который попадает день
type Window string

const (
	WindowPast    Window = "past"
	WindowDirect  Window = "direct"
	WindowRequest Window = "request"
)

// DirectWindowDays ширина окна прямой брони: сегодня и завтра
const DirectWindowDays = 2

const dateKeyLayout = "2006-01-02"

var timeSlotPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// StartOfDay обрезает t до полуночи в его же таймзоне
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Today начало текущего дня по clock
func Today(clock Clock) time.Time {
	return StartOfDay(clock.Now())
}

// DateKey форматирует t как YYYY-MM-DD
func DateKey(t time.Time) string {
	return t.Format(dateKeyLayout)
}

// ParseDateKey разбирает ключ YYYY-MM-DD как полночь в loc
func ParseDateKey(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(dateKeyLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

// DaysBetween число календарных дней от b до a со знаком.
// Оба момента читаются как даты в таймзоне b,
// часы и переход на летнее время на результат не влияют.
func DaysBetween(a, b time.Time) int {
	return dayNumber(a.In(b.Location())) - dayNumber(b)
}

func dayNumber(t time.Time) int {
	y, m, d := t.Date()
	return int(time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400)
}

// Classify относит дату ровно к одному окну относительно now.
// Прямое окно [today, today+2d), today+2d уже относится к заявкам.
func Classify(date, now time.Time) Window {
	switch days := DaysBetween(date, now); {
	case days < 0:
		return WindowPast
	case days < DirectWindowDays:
		return WindowDirect
	default:
		return WindowRequest
	}
}

func IsPast(date, now time.Time) bool {
	return Classify(date, now) == WindowPast
}

func IsInDirectWindow(date, now time.Time) bool {
	return Classify(date, now) == WindowDirect
}

func IsInRequestWindow(date, now time.Time) bool {
	return Classify(date, now) == WindowRequest
}

// ValidTimeSlot проверяет формат HH:MM (24 часа)
func ValidTimeSlot(s string) bool {
	return timeSlotPattern.MatchString(s)
}

// Day одна ячейка календаря бронирования
type Day struct {
	Date   time.Time
	Key    string
	Window Window
}

// Upcoming ближайшие n дней начиная с сегодня вместе с окнами
func Upcoming(now time.Time, n int) []Day {
	today := StartOfDay(now)
	days := make([]Day, 0, n)
	for i := 0; i < n; i++ {
		date := today.AddDate(0, 0, i)
		days = append(days, Day{
			Date:   date,
			Key:    DateKey(date),
			Window: Classify(date, now),
		})
	}
	return days
}
