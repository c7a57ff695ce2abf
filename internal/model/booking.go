package model

import "time"

type BookingStatus string

const (
	BookingStatusRequested BookingStatus = "REQUESTED" // Ожидает розыгрыша
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCompleted BookingStatus = "COMPLETED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

const (
	PlayerCountMin = 2
	PlayerCountMax = 4
)

// IsTerminal дальнейших переходов нет
func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusCompleted || s == BookingStatusCancelled
}

// IsActive пользователь ещё может отменить
func (s BookingStatus) IsActive() bool {
	return s == BookingStatusConfirmed || s == BookingStatusRequested
}

type Booking struct {
	ID              string        `json:"id"`
	UserID          string        `json:"userId"`
	CourtID         string        `json:"courtId"`
	Date            string        `json:"date"`     // YYYY-MM-DD
	TimeSlot        string        `json:"timeSlot"` // HH:MM
	NumberOfPlayers int           `json:"numberOfPlayers"`
	Status          BookingStatus `json:"status"`
	RequestID       *string       `json:"requestId,omitempty"` // заявка, из которой создана бронь
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
	CompletedAt     *time.Time    `json:"completedAt,omitempty"`
	CancelledAt     *time.Time    `json:"cancelledAt,omitempty"`

	User  *User  `json:"user,omitempty"`
	Court *Court `json:"court,omitempty"`
}

// IsCancellable проверяет можно ли ещё отменить бронь
func (b *Booking) IsCancellable() bool {
	return b.Status.IsActive()
}

type BookingRequest struct {
	ID              string        `json:"id"`
	UserID          string        `json:"userId"`
	Date            string        `json:"date"`
	TimeSlot        string        `json:"timeSlot"`
	NumberOfPlayers int           `json:"numberOfPlayers"`
	Status          BookingStatus `json:"status"`
	Weight          *float64      `json:"weight,omitempty"` // приоритет, назначенный розыгрышем
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`

	User *User `json:"user,omitempty"`
}

// IsCancellable проверяет можно ли ещё отменить заявку
func (r *BookingRequest) IsCancellable() bool {
	return r.Status.IsActive()
}

// NewBooking тело прямой брони
type NewBooking struct {
	UserID          string   `json:"userId"`
	CourtID         string   `json:"courtId"`
	Date            string   `json:"date"`
	TimeSlot        string   `json:"timeSlot"`
	NumberOfPlayers int      `json:"numberOfPlayers"`
	ParticipantIDs  []string `json:"participantIds"`
}

// NewBookingRequest тело заявки на розыгрыш
type NewBookingRequest struct {
	UserID          string   `json:"userId"`
	Date            string   `json:"date"`
	TimeSlot        string   `json:"timeSlot"`
	NumberOfPlayers int      `json:"numberOfPlayers"`
	ParticipantIDs  []string `json:"participantIds"`
}
