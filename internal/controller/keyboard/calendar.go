package keyboard

import (
	"fmt"

	"github.com/Freeeeeet/padel_booking_bot/internal/calendar"
	"github.com/Freeeeeet/padel_booking_bot/internal/controller/formatting"
	"github.com/Freeeeeet/padel_booking_bot/internal/model"
	"github.com/go-telegram/bot/models"
)

const daysPerRow = 3

// Calendar по кнопке на каждый ближайший день с отметкой окна
func Calendar(days []calendar.Day) *models.InlineKeyboardMarkup {
	buttons := make([]models.InlineKeyboardButton, 0, len(days))
	for _, d := range days {
		label := fmt.Sprintf("%s %s %s",
			formatting.Window(d.Window).Emoji,
			formatting.WeekdayShort(d.Date.Weekday()),
			d.Date.Format("02/01"),
		)
		buttons = append(buttons, Button(label, PrefixDay+d.Key))
	}
	return NewBuilder().Grid(daysPerRow, buttons...).Build()
}

// CancelBookings кнопка отмены для каждой брони, которую можно отменить
func CancelBookings(bookings []model.Booking) *models.InlineKeyboardMarkup {
	b := NewBuilder()
	for _, bk := range bookings {
		if !bk.IsCancellable() {
			continue
		}
		b.Row(Button(fmt.Sprintf("❌ Cancel·lar %s %s", formatting.FormatDateKey(bk.Date), bk.TimeSlot), PrefixCancelBooking+bk.ID))
	}
	return b.Build()
}

func CancelRequests(requests []model.BookingRequest) *models.InlineKeyboardMarkup {
	b := NewBuilder()
	for _, r := range requests {
		if !r.IsCancellable() {
			continue
		}
		b.Row(Button(fmt.Sprintf("❌ Cancel·lar %s %s", formatting.FormatDateKey(r.Date), r.TimeSlot), PrefixCancelRequest+r.ID))
	}
	return b.Build()
}
