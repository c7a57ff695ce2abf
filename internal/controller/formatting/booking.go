package formatting

import (
	"fmt"
	"strings"
	"time"

	"github.com/Freeeeeet/padel_booking_bot/internal/calendar"
	"github.com/Freeeeeet/padel_booking_bot/internal/model"
	"github.com/Freeeeeet/padel_booking_bot/internal/service"
)

// Booking одна строка-карточка брони
func Booking(b model.Booking) string {
	court := b.CourtID
	if b.Court != nil && b.Court.Name != "" {
		court = b.Court.Name
	}

	return fmt.Sprintf("%s %s · %s\n🎾 %s · 👥 %d jugadors\n🆔 %s",
		BookingStatus(b.Status).Emoji,
		FormatDateKey(b.Date),
		b.TimeSlot,
		court,
		b.NumberOfPlayers,
		b.ID,
	)
}

func Request(r model.BookingRequest) string {
	return fmt.Sprintf("%s %s · %s\n👥 %d jugadors · %s\n🆔 %s",
		BookingStatus(r.Status).Emoji,
		FormatDateKey(r.Date),
		r.TimeSlot,
		r.NumberOfPlayers,
		BookingStatus(r.Status).Text,
		r.ID,
	)
}

// BookingList склеивает карточки через пустую строку, для пустого списка placeholder
func BookingList(title string, bookings []model.Booking, empty string) string {
	if len(bookings) == 0 {
		return title + "\n\n" + empty
	}

	cards := make([]string, 0, len(bookings))
	for _, b := range bookings {
		cards = append(cards, Booking(b))
	}
	return title + "\n\n" + strings.Join(cards, "\n\n")
}

func RequestList(title string, requests []model.BookingRequest, empty string) string {
	if len(requests) == 0 {
		return title + "\n\n" + empty
	}

	cards := make([]string, 0, len(requests))
	for _, r := range requests {
		cards = append(cards, Request(r))
	}
	return title + "\n\n" + strings.Join(cards, "\n\n")
}

// Availability все слоты дня со свободными кортами
func Availability(day *model.DayAvailability) string {
	var sb strings.Builder
	header := day.Date
	if t, err := time.Parse("2006-01-02", day.Date); err == nil {
		header = FormatDateWithWeekday(t)
	}
	sb.WriteString("📅 Disponibilitat " + header + "\n")

	switch {
	case day.IsInDirectBookingWindow:
		sb.WriteString(Window(calendar.WindowDirect).String() + "\n")
	case day.IsInRequestWindow:
		sb.WriteString(Window(calendar.WindowRequest).String() + "\n")
	}

	if len(day.Slots) == 0 {
		sb.WriteString("\nNo hi ha franges horàries per aquest dia.")
		return sb.String()
	}

	for _, slot := range day.Slots {
		sb.WriteString("\n")
		if !slot.IsAvailable || len(slot.AvailableCourts) == 0 {
			sb.WriteString(fmt.Sprintf("🔴 %s %s · complet", slot.TimeSlot, SlotType(slot.Type).Emoji))
			continue
		}

		names := make([]string, 0, len(slot.AvailableCourts))
		for _, c := range slot.AvailableCourts {
			names = append(names, fmt.Sprintf("%s (%s)", c.Name, c.ID))
		}
		sb.WriteString(fmt.Sprintf("🟢 %s %s · %s", slot.TimeSlot, SlotType(slot.Type).Emoji, strings.Join(names, ", ")))
	}

	return sb.String()
}

// Profile для /me
func Profile(u *model.User) string {
	text := fmt.Sprintf("👤 %s\n📧 %s\n🏷 %s\n📊 Reserves completades aquest període: %d",
		u.Name, u.Email, UserType(u.Type), u.UsageCount)

	if u.IsMember() {
		text += "\n\nTens prioritat en el sorteig de reserves."
	} else {
		text += "\n\nPots fer reserves directes i sol·licituds."
	}
	return text
}

func Players(users []model.User) string {
	if len(users) == 0 {
		return "Cap jugador trobat."
	}

	lines := make([]string, 0, len(users))
	for _, u := range users {
		lines = append(lines, fmt.Sprintf("• %s · %s", u.Name, u.Email))
	}
	return strings.Join(lines, "\n")
}

func Stats(st service.Stats) string {
	return fmt.Sprintf("📈 Total: %d · Completades: %d · Cancel·lades: %d · Taxa: %d%%",
		st.Total, st.Completed, st.Cancelled, st.CompletionRate)
}
