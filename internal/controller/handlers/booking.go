package handlers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Freeeeeet/padel_booking_bot/internal/calendar"
	"github.com/Freeeeeet/padel_booking_bot/internal/controller/formatting"
	"github.com/Freeeeeet/padel_booking_bot/internal/controller/keyboard"
	"github.com/Freeeeeet/padel_booking_bot/internal/controller/state"
	"github.com/Freeeeeet/padel_booking_bot/internal/service"
	"github.com/Freeeeeet/padel_booking_bot/internal/validation"
)

func (h *Handlers) handleAvailability(ctx context.Context, s Sender, chatID int64, args []string) {
	if len(args) != 1 {
		h.sendError(ctx, s, chatID, usageAvailability)
		return
	}

	date, err := parseDate(args[0], h.clock.Now().Location())
	if err != nil {
		h.fail(ctx, s, chatID, "availability", err)
		return
	}

	h.showAvailability(ctx, s, chatID, date)
}

// showAvailability общий для /availability и кнопок календаря
func (h *Handlers) showAvailability(ctx context.Context, s Sender, chatID int64, date time.Time) {
	ws, _, ok := h.requireUser(ctx, s, chatID)
	if !ok {
		return
	}

	now := h.clock.Now()
	if calendar.IsPast(date, now) {
		h.sendError(ctx, s, chatID, "❌ No es poden consultar dies passats")
		return
	}

	day, err := ws.Availability.Fetch(ctx, calendar.DateKey(date))
	if err != nil {
		h.fail(ctx, s, chatID, "availability", err)
		return
	}

	text := formatting.Availability(day)
	switch calendar.Classify(date, now) {
	case calendar.WindowDirect:
		text += "\n\nReserva amb /book " + formatting.FormatDate(date) + " <HH:MM> <pista> <jugadors> <participants>"
	case calendar.WindowRequest:
		text += "\n\nSol·licita amb /request " + formatting.FormatDate(date) + " <HH:MM> <jugadors> <participants>"
	}

	h.sendMessage(ctx, s, chatID, text)
}

// handleBook: /book <data> <HH:MM> <pista> <jugadors> <participants>
func (h *Handlers) handleBook(ctx context.Context, s Sender, chatID int64, args []string) {
	if len(args) < 4 {
		h.sendError(ctx, s, chatID, usageBook)
		return
	}

	var participants string
	if len(args) > 4 {
		participants = strings.Join(args[4:], ",")
	}

	h.submit(ctx, s, chatID, validation.ModeDirect, args[0], args[1], args[2], args[3], participants)
}

// handleRequest: /request <data> <HH:MM> <jugadors> <participants>
func (h *Handlers) handleRequest(ctx context.Context, s Sender, chatID int64, args []string) {
	if len(args) < 3 {
		h.sendError(ctx, s, chatID, usageRequest)
		return
	}

	var participants string
	if len(args) > 3 {
		participants = strings.Join(args[3:], ",")
	}

	h.submit(ctx, s, chatID, validation.ModeRequest, args[0], args[1], "", args[2], participants)
}

func (h *Handlers) submit(ctx context.Context, s Sender, chatID int64, mode validation.Mode, rawDate, timeSlot, courtID, rawPlayers, rawParticipants string) {
	ws, user, ok := h.requireUser(ctx, s, chatID)
	if !ok {
		return
	}

	date, err := parseDate(rawDate, h.clock.Now().Location())
	if err != nil {
		h.fail(ctx, s, chatID, "submit", err)
		return
	}

	players, err := validation.ParsePlayerCount(rawPlayers)
	if err != nil {
		h.fail(ctx, s, chatID, "submit", err)
		return
	}

	others, err := h.resolvePlayers(ctx, ws, splitRefs(rawParticipants))
	if err != nil {
		h.fail(ctx, s, chatID, "submit", err)
		return
	}

	res, err := ws.Submitter.Submit(ctx, validation.Submission{
		Mode:            mode,
		UserID:          user.ID,
		Date:            date,
		TimeSlot:        timeSlot,
		CourtID:         courtID,
		NumberOfPlayers: players,
		ParticipantIDs:  withSelf(user.ID, others),
	})
	if err != nil {
		h.fail(ctx, s, chatID, "submit", err)
		return
	}

	if res.Booking != nil {
		h.sendMessage(ctx, s, chatID, "✅ Reserva confirmada!\n\n"+formatting.Booking(*res.Booking))
		return
	}
	h.sendMessage(ctx, s, chatID, "🎲 Sol·licitud enviada al sorteig!\n\n"+formatting.Request(*res.Request))
}

// resolvePlayers при первом вызове грузит список игроков и переводит ссылки в id
func (h *Handlers) resolvePlayers(ctx context.Context, ws *state.Workspace, refs []string) ([]string, error) {
	if len(refs) == 0 {
		return nil, nil
	}

	if ws.Users.Status() != service.StatusReady {
		if _, err := ws.Users.Fetch(ctx); err != nil {
			return nil, err
		}
	}

	return ws.Users.Resolve(ctx, refs)
}

func (h *Handlers) handleBookings(ctx context.Context, s Sender, chatID int64) {
	ws, user, ok := h.requireUser(ctx, s, chatID)
	if !ok {
		return
	}

	bookings, err := ws.Bookings.Fetch(ctx, user.ID)
	if err != nil {
		h.fail(ctx, s, chatID, "bookings", err)
		return
	}

	upcoming := service.UpcomingBookings(bookings, h.clock.Now(), 0)
	text := formatting.BookingList("📅 Les meves reserves", upcoming, "No tens reserves confirmades. Consulta /calendar")

	h.sendWithKeyboard(ctx, s, chatID, text, keyboard.CancelBookings(upcoming))
}

func (h *Handlers) handleRequests(ctx context.Context, s Sender, chatID int64) {
	ws, user, ok := h.requireUser(ctx, s, chatID)
	if !ok {
		return
	}

	requests, err := ws.Requests.Fetch(ctx, user.ID)
	if err != nil {
		h.fail(ctx, s, chatID, "requests", err)
		return
	}

	pending := service.PendingRequests(requests, 0)
	text := formatting.RequestList("🎲 Les meves sol·licituds", pending, "No tens sol·licituds pendents")

	h.sendWithKeyboard(ctx, s, chatID, text, keyboard.CancelRequests(pending))
}

func (h *Handlers) handleHistory(ctx context.Context, s Sender, chatID int64, args []string) {
	filter, err := parseHistoryFilter(args)
	if err != nil {
		h.fail(ctx, s, chatID, "history", err)
		return
	}

	ws, user, ok := h.requireUser(ctx, s, chatID)
	if !ok {
		return
	}

	bookings, err := ws.Bookings.Fetch(ctx, user.ID)
	if err != nil {
		h.fail(ctx, s, chatID, "history", err)
		return
	}

	history := service.History(bookings, filter, h.clock.Now())
	text := formatting.Stats(service.ComputeStats(bookings)) +
		fmt.Sprintf("\n📊 Comptador d'ús: %d", user.UsageCount) + "\n\n" +
		formatting.BookingList("🗂 Historial", history, "No hi ha reserves amb aquests filtres")

	h.sendMessage(ctx, s, chatID, text)
}

func (h *Handlers) handleCancelBooking(ctx context.Context, s Sender, chatID int64, args []string) {
	if len(args) != 1 {
		h.sendError(ctx, s, chatID, usageCancel)
		return
	}
	h.cancelBooking(ctx, s, chatID, args[0])
}

func (h *Handlers) cancelBooking(ctx context.Context, s Sender, chatID int64, bookingID string) {
	ws, _, ok := h.requireUser(ctx, s, chatID)
	if !ok {
		return
	}

	if b, found := ws.Bookings.Booking(bookingID); found && !b.IsCancellable() {
		h.fail(ctx, s, chatID, "cancel booking", ErrNotCancellable)
		return
	}

	if err := ws.Bookings.Cancel(ctx, bookingID); err != nil {
		h.fail(ctx, s, chatID, "cancel booking", err)
		return
	}

	h.sendMessage(ctx, s, chatID, "✅ Reserva cancel·lada")
}

func (h *Handlers) handleCancelRequest(ctx context.Context, s Sender, chatID int64, args []string) {
	if len(args) != 1 {
		h.sendError(ctx, s, chatID, usageCancelRequest)
		return
	}
	h.cancelRequest(ctx, s, chatID, args[0])
}

func (h *Handlers) cancelRequest(ctx context.Context, s Sender, chatID int64, requestID string) {
	ws, _, ok := h.requireUser(ctx, s, chatID)
	if !ok {
		return
	}

	if r, found := ws.Requests.Request(requestID); found && !r.IsCancellable() {
		h.fail(ctx, s, chatID, "cancel request", ErrNotCancellable)
		return
	}

	if err := ws.Requests.Cancel(ctx, requestID); err != nil {
		h.fail(ctx, s, chatID, "cancel request", err)
		return
	}

	h.sendMessage(ctx, s, chatID, "✅ Sol·licitud cancel·lada")
}

func (h *Handlers) handlePlayers(ctx context.Context, s Sender, chatID int64, args []string) {
	ws, _, ok := h.requireUser(ctx, s, chatID)
	if !ok {
		return
	}

	if _, err := ws.Users.Fetch(ctx); err != nil {
		h.fail(ctx, s, chatID, "players", err)
		return
	}

	found := ws.Users.Search(strings.Join(args, " "))
	total := len(found)
	if total > PlayersLimit {
		found = found[:PlayersLimit]
	}

	text := "👥 Jugadors del club\n\n" + formatting.Players(found)
	if total > PlayersLimit {
		text += fmt.Sprintf("\n\n… i %d més. Afina la cerca: /players <nom o email>", total-PlayersLimit)
	}

	h.sendMessage(ctx, s, chatID, text)
}
