package model

type TimeSlotType string

const (
	TimeSlotTypePeak    TimeSlotType = "PEAK"
	TimeSlotTypeOffPeak TimeSlotType = "OFF_PEAK"
)

type TimeSlot struct {
	ID        string       `json:"id"`
	DayOfWeek int          `json:"dayOfWeek"` // 0 = Sunday, 6 = Saturday
	StartTime string       `json:"startTime"` // HH:MM
	EndTime   string       `json:"endTime"`   // HH:MM
	Duration  int          `json:"duration"`  // в минутах
	Type      TimeSlotType `json:"type"`
}
