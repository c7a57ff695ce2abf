package formatting

import (
	"time"

	"github.com/Freeeeeet/padel_booking_bot/internal/calendar"
)

const DateLayout = "02/01/2006"

// FormatDate форматирует дату как dd/MM/yyyy
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatDateKey переводит YYYY-MM-DD в dd/MM/yyyy; некорректный ключ возвращается как есть
func FormatDateKey(key string) string {
	t, err := time.Parse("2006-01-02", key)
	if err != nil {
		return key
	}
	return FormatDate(t)
}

// FormatDateWithWeekday: "dimarts, 10/06/2025"
func FormatDateWithWeekday(t time.Time) string {
	return WeekdayName(t.Weekday()) + ", " + FormatDate(t)
}

// WeekdayName возвращает название дня недели на каталанском
func WeekdayName(weekday time.Weekday) string {
	names := []string{
		"diumenge",
		"dilluns",
		"dimarts",
		"dimecres",
		"dijous",
		"divendres",
		"dissabte",
	}
	if weekday >= 0 && int(weekday) < len(names) {
		return names[weekday]
	}
	return "?"
}

func WeekdayShort(weekday time.Weekday) string {
	names := []string{"dg", "dl", "dt", "dc", "dj", "dv", "ds"}
	if weekday >= 0 && int(weekday) < len(names) {
		return names[weekday]
	}
	return "?"
}

// Window как можно забронировать день
func Window(w calendar.Window) Display {
	switch w {
	case calendar.WindowDirect:
		return Display{"🟢", "Reserva directa"}
	case calendar.WindowRequest:
		return Display{"🎲", "Sol·licitud (sorteig)"}
	case calendar.WindowPast:
		return Display{"⚫️", "Passat"}
	}
	return Display{"❓", string(w)}
}
