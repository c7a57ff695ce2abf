package handlers

import (
	"fmt"
	"strings"
	"time"

	"github.com/Freeeeeet/padel_booking_bot/internal/calendar"
	"github.com/Freeeeeet/padel_booking_bot/internal/controller/formatting"
	"github.com/Freeeeeet/padel_booking_bot/internal/model"
	"github.com/Freeeeeet/padel_booking_bot/internal/service"
)

// parseCommand делит "/book@padel_bot a b" на "/book" и [a b]
func parseCommand(text string) (string, []string) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return "", nil
	}

	cmd := strings.ToLower(fields[0])
	if i := strings.Index(cmd, "@"); i >= 0 {
		cmd = cmd[:i]
	}
	return cmd, fields[1:]
}

// parseDate принимает dd/mm/yyyy или yyyy-mm-dd в loc
func parseDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)

	if t, err := calendar.ParseDateKey(s, loc); err == nil {
		return t, nil
	}

	t, err := time.ParseInLocation(formatting.DateLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// splitRefs: "a@x.cat, u2,,b" -> [a@x.cat u2 b]
func splitRefs(s string) []string {
	var refs []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			refs = append(refs, part)
		}
	}
	return refs
}

func parseHistoryStatus(s string) (model.BookingStatus, error) {
	switch strings.ToLower(s) {
	case "", "all", "totes":
		return "", nil
	case "completed", "completades":
		return model.BookingStatusCompleted, nil
	case "cancelled", "cancel·lades", "cancellades":
		return model.BookingStatusCancelled, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

// parseHistoryFilter читает "[status] [period]", любую часть можно опустить
func parseHistoryFilter(args []string) (service.HistoryFilter, error) {
	var filter service.HistoryFilter
	filter.Period = service.PeriodAll

	for _, arg := range args {
		if status, err := parseHistoryStatus(arg); err == nil {
			if status != "" {
				filter.Status = status
			}
			continue
		}

		period, err := service.ParsePeriod(strings.ToLower(arg))
		if err != nil {
			return service.HistoryFilter{}, fmt.Errorf("%w: %q", ErrInvalidPeriod, arg)
		}
		filter.Period = period
	}

	return filter, nil
}

// withSelf ставит автора брони первым, повторы убирает валидатор
func withSelf(userID string, others []string) []string {
	return append([]string{userID}, others...)
}
