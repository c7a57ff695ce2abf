package service

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/Freeeeeet/padel_booking_bot/internal/calendar"
	"github.com/Freeeeeet/padel_booking_bot/internal/model"
)

// DashboardLimit сколько записей показывают списки на главной
const DashboardLimit = 5

// Даты в формате YYYY-MM-DD, строковый порядок совпадает с календарным.

// UpcomingBookings подтверждённые брони с сегодняшнего дня, ближайшие первыми
func UpcomingBookings(bookings []model.Booking, now time.Time, limit int) []model.Booking {
	today := calendar.DateKey(now)

	var out []model.Booking
	for _, b := range bookings {
		if b.Status == model.BookingStatusConfirmed && b.Date >= today {
			out = append(out, b)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].TimeSlot < out[j].TimeSlot
	})

	return truncate(out, limit)
}

// PendingRequests заявки, ждущие розыгрыша, ближайшие первыми
func PendingRequests(requests []model.BookingRequest, limit int) []model.BookingRequest {
	var out []model.BookingRequest
	for _, r := range requests {
		if r.Status == model.BookingStatusRequested {
			out = append(out, r)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].TimeSlot < out[j].TimeSlot
	})

	return truncate(out, limit)
}

func truncate[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}

// Period фильтр истории по давности
type Period string

const (
	PeriodAll         Period = "all"
	PeriodLastWeek    Period = "last-week"
	PeriodLastMonth   Period = "last-month"
	PeriodLast3Months Period = "last-3-months"
)

func (p Period) days() int {
	switch p {
	case PeriodLastWeek:
		return 7
	case PeriodLastMonth:
		return 30
	case PeriodLast3Months:
		return 90
	}
	return 0
}

func ParsePeriod(s string) (Period, error) {
	switch p := Period(s); p {
	case "", PeriodAll:
		return PeriodAll, nil
	case PeriodLastWeek, PeriodLastMonth, PeriodLast3Months:
		return p, nil
	}
	return "", fmt.Errorf("unknown period %q", s)
}

// HistoryFilter сужает историю, пустой Status значит оба финальных статуса
type HistoryFilter struct {
	Status model.BookingStatus
	Period Period
}

// History завершённые брони, последние первыми
func History(bookings []model.Booking, filter HistoryFilter, now time.Time) []model.Booking {
	from := ""
	if d := filter.Period.days(); d > 0 {
		from = calendar.DateKey(calendar.StartOfDay(now).AddDate(0, 0, -d))
	}

	var out []model.Booking
	for _, b := range bookings {
		if !b.Status.IsTerminal() {
			continue
		}
		if filter.Status != "" && b.Status != filter.Status {
			continue
		}
		if from != "" && b.Date < from {
			continue
		}
		out = append(out, b)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].TimeSlot > out[j].TimeSlot
	})

	return out
}

type Stats struct {
	Total          int
	Completed      int
	Cancelled      int
	CompletionRate int // проценты, округлённые
}

// ComputeStats считает только завершённые брони
func ComputeStats(bookings []model.Booking) Stats {
	var st Stats
	for _, b := range bookings {
		switch b.Status {
		case model.BookingStatusCompleted:
			st.Completed++
		case model.BookingStatusCancelled:
			st.Cancelled++
		}
	}

	st.Total = st.Completed + st.Cancelled
	if st.Total > 0 {
		st.CompletionRate = int(math.Round(float64(st.Completed) / float64(st.Total) * 100))
	}
	return st
}
