package validation

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Freeeeeet/padel_booking_bot/internal/calendar"
	"github.com/Freeeeeet/padel_booking_bot/internal/model"
	"github.com/google/uuid"
)

// Mode режим отправки, выбранный пользователем
type Mode string

const (
	ModeDirect  Mode = "direct"
	ModeRequest Mode = "request"
)

// Window окно календаря, в котором режим допустим
func (m Mode) Window() calendar.Window {
	switch m {
	case ModeDirect:
		return calendar.WindowDirect
	case ModeRequest:
		return calendar.WindowRequest
	default:
		return ""
	}
}

// Submission всё, что пользователь выбрал перед отправкой
type Submission struct {
	Mode            Mode
	UserID          string
	Date            time.Time
	TimeSlot        string
	CourtID         string // только для прямого бронирования
	NumberOfPlayers int
	ParticipantIDs  []string
}

// Payload заявка, прошедшая все локальные проверки.
// Заполнено ровно одно из Booking и Request, по Mode.
type Payload struct {
	Mode    Mode
	Booking *model.NewBooking
	Request *model.NewBookingRequest
}

// ValidPlayerCount правило 2..4 игрока
func ValidPlayerCount(n int) bool {
	return n >= model.PlayerCountMin && n <= model.PlayerCountMax
}

// ParsePlayerCount разбирает ввод, допускаются только целые 2..4
func ParsePlayerCount(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || !ValidPlayerCount(n) {
		return 0, ErrInvalidPlayerCount
	}
	return n, nil
}

// Validate решает, можно ли отправить sub в момент now, и собирает payload.
// В сеть не ходит.
func Validate(sub Submission, now time.Time) (*Payload, error) {
	if sub.Mode != ModeDirect && sub.Mode != ModeRequest {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, sub.Mode)
	}

	if strings.TrimSpace(sub.UserID) == "" {
		return nil, ErrMissingUser
	}

	if !ValidPlayerCount(sub.NumberOfPlayers) {
		return nil, ErrInvalidPlayerCount
	}

	participants := distinct(sub.ParticipantIDs)
	if len(participants) != sub.NumberOfPlayers {
		return nil, fmt.Errorf("%w: selected %d of %d", ErrIncompleteParticipants, len(participants), sub.NumberOfPlayers)
	}

	courtID := strings.TrimSpace(sub.CourtID)
	if sub.Mode == ModeDirect {
		if courtID == "" {
			return nil, ErrMissingCourt
		}
		if _, err := uuid.Parse(courtID); err != nil {
			return nil, ErrInvalidCourt
		}
	}

	timeSlot := strings.TrimSpace(sub.TimeSlot)
	if timeSlot == "" {
		return nil, ErrMissingTimeSlot
	}
	if !calendar.ValidTimeSlot(timeSlot) {
		return nil, ErrInvalidTimeSlot
	}

	if window := calendar.Classify(sub.Date, now); window != sub.Mode.Window() {
		return nil, fmt.Errorf("%w: %s is in the %s window", ErrWindowMismatch, calendar.DateKey(sub.Date), window)
	}

	date := calendar.DateKey(sub.Date.In(now.Location()))

	if sub.Mode == ModeDirect {
		return &Payload{
			Mode: ModeDirect,
			Booking: &model.NewBooking{
				UserID:          sub.UserID,
				CourtID:         courtID,
				Date:            date,
				TimeSlot:        timeSlot,
				NumberOfPlayers: sub.NumberOfPlayers,
				ParticipantIDs:  participants,
			},
		}, nil
	}

	return &Payload{
		Mode: ModeRequest,
		Request: &model.NewBookingRequest{
			UserID:          sub.UserID,
			Date:            date,
			TimeSlot:        timeSlot,
			NumberOfPlayers: sub.NumberOfPlayers,
			ParticipantIDs:  participants,
		},
	}, nil
}

// distinct убирает пустые и повторы, сохраняя порядок
func distinct(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
