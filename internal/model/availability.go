package model

// AvailabilitySlot слот и свободные на нём корты
type AvailabilitySlot struct {
	TimeSlot        string       `json:"timeSlot"`
	Type            TimeSlotType `json:"type"`
	AvailableCourts []Court      `json:"availableCourts"`
	IsAvailable     bool         `json:"isAvailable"`
}

// Court свободный корт с этим id, nil если на этом слоте он занят
func (s *AvailabilitySlot) Court(id string) *Court {
	for i := range s.AvailableCourts {
		if s.AvailableCourts[i].ID == id {
			return &s.AvailableCourts[i]
		}
	}
	return nil
}

// DayAvailability снимок одного дня от сервера
type DayAvailability struct {
	Date                    string             `json:"date"`
	Slots                   []AvailabilitySlot `json:"slots"`
	IsInRequestWindow       bool               `json:"isInRequestWindow"`
	IsInDirectBookingWindow bool               `json:"isInDirectBookingWindow"`
}

// Slot ищет слот, начинающийся в timeSlot
func (d *DayAvailability) Slot(timeSlot string) *AvailabilitySlot {
	for i := range d.Slots {
		if d.Slots[i].TimeSlot == timeSlot {
			return &d.Slots[i]
		}
	}
	return nil
}
