package formatting

import "github.com/Freeeeeet/padel_booking_bot/internal/model"

// Display представляет отображение статуса или типа
type Display struct {
	Emoji string
	Text  string
}

func (d Display) String() string {
	return d.Emoji + " " + d.Text
}

// BookingStatus возвращает emoji и текст для статуса бронирования
func BookingStatus(status model.BookingStatus) Display {
	displays := map[model.BookingStatus]Display{
		model.BookingStatusRequested: {"⏳", "Sol·licitada"},
		model.BookingStatusConfirmed: {"✅", "Confirmada"},
		model.BookingStatusCompleted: {"✔️", "Completada"},
		model.BookingStatusCancelled: {"❌", "Cancel·lada"},
	}

	if display, ok := displays[status]; ok {
		return display
	}

	return Display{"❓", string(status)}
}

// SlotType возвращает отображение типа слота
func SlotType(t model.TimeSlotType) Display {
	switch t {
	case model.TimeSlotTypePeak:
		return Display{"🔥", "Hora Punta"}
	case model.TimeSlotTypeOffPeak:
		return Display{"🌙", "Hora Vall"}
	}
	return Display{"❓", string(t)}
}

func UserType(t model.UserType) string {
	if t == model.UserTypeMember {
		return "Soci"
	}
	return "No Soci"
}
