package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/Freeeeeet/padel_booking_bot/internal/calendar"
	"github.com/Freeeeeet/padel_booking_bot/internal/controller/formatting"
	"github.com/Freeeeeet/padel_booking_bot/internal/controller/keyboard"
	"github.com/Freeeeeet/padel_booking_bot/internal/controller/state"
	"github.com/Freeeeeet/padel_booking_bot/internal/service"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleTextMessage обрабатывает все текстовые сообщения: команды и шаги диалогов
func (h *Handlers) HandleTextMessage(ctx context.Context, s Sender, update *models.Update) {
	if update.Message == nil || update.Message.Text == "" {
		return
	}

	// пароль может начинаться с "/", в этом шаге любой текст считается паролем
	if h.stateManager.GetState(update.Message.Chat.ID) == state.StateLoginPassword {
		h.handleLoginPasswordStep(ctx, s, update.Message)
		return
	}

	text := strings.TrimSpace(update.Message.Text)
	if strings.HasPrefix(text, "/") {
		h.HandleCommand(ctx, s, update)
		return
	}

	h.handleDialogStep(ctx, s, update)
}

// HandleCommand направляет команду в её обработчик
func (h *Handlers) HandleCommand(ctx context.Context, s Sender, update *models.Update) {
	if update.Message == nil {
		return
	}

	chatID := update.Message.Chat.ID
	cmd, args := parseCommand(update.Message.Text)

	// новая команда прерывает незавершённый диалог
	h.stateManager.ClearState(chatID)

	h.logger.Debug("Command received", zap.Int64("chat_id", chatID), zap.String("command", cmd))

	switch cmd {
	case CmdStart:
		h.handleStart(ctx, s, chatID)
	case CmdHelp:
		h.handleHelp(ctx, s, chatID)
	case CmdLogin:
		h.handleLogin(ctx, s, update.Message, args)
	case CmdLogout:
		h.handleLogout(ctx, s, chatID)
	case CmdMe:
		h.handleMe(ctx, s, chatID)
	case CmdCalendar:
		h.handleCalendar(ctx, s, chatID)
	case CmdAvailability:
		h.handleAvailability(ctx, s, chatID, args)
	case CmdBook:
		h.handleBook(ctx, s, chatID, args)
	case CmdRequest:
		h.handleRequest(ctx, s, chatID, args)
	case CmdBookings:
		h.handleBookings(ctx, s, chatID)
	case CmdRequests:
		h.handleRequests(ctx, s, chatID)
	case CmdHistory:
		h.handleHistory(ctx, s, chatID, args)
	case CmdCancel:
		h.handleCancelBooking(ctx, s, chatID, args)
	case CmdCancelRequest:
		h.handleCancelRequest(ctx, s, chatID, args)
	case CmdPlayers:
		h.handlePlayers(ctx, s, chatID, args)
	default:
		h.sendMessage(ctx, s, chatID, "🤷 Ordre desconeguda. Consulta /help")
	}
}

// handleStart показывает панель, если вход выполнен, иначе приветствие
func (h *Handlers) handleStart(ctx context.Context, s Sender, chatID int64) {
	ws := h.stateManager.Workspace(ctx, chatID)

	user, err := ws.Auth.User()
	if err != nil {
		h.sendMessage(ctx, s, chatID,
			"👋 Benvingut/da al bot de reserves de pàdel!\n\n"+
				"Per començar, inicia sessió amb el teu compte del club:\n"+
				usageLogin+"\n\n"+
				"/help - Llista d'ordres")
		return
	}

	h.sendDashboard(ctx, s, ws, user.Name, user.ID)
}

func (h *Handlers) sendDashboard(ctx context.Context, s Sender, ws *state.Workspace, name, userID string) {
	chatID := ws.ChatID
	now := h.clock.Now()

	bookings, err := ws.Bookings.Fetch(ctx, userID)
	if err != nil {
		h.fail(ctx, s, chatID, "dashboard bookings", err)
		return
	}

	requests, err := ws.Requests.Fetch(ctx, userID)
	if err != nil {
		h.fail(ctx, s, chatID, "dashboard requests", err)
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("👋 Hola, %s!\n\n", name))
	sb.WriteString(formatting.BookingList("📅 Properes reserves",
		service.UpcomingBookings(bookings, now, service.DashboardLimit),
		"No tens reserves confirmades. Crea'n una amb /calendar"))
	sb.WriteString("\n\n")
	sb.WriteString(formatting.RequestList("🎲 Sol·licituds pendents",
		service.PendingRequests(requests, service.DashboardLimit),
		"No tens sol·licituds pendents"))

	h.sendMessage(ctx, s, chatID, sb.String())
}

func (h *Handlers) handleHelp(ctx context.Context, s Sender, chatID int64) {
	helpText := "📚 Ordres disponibles:\n\n" +
		"/login <email> <contrasenya> - Iniciar sessió\n" +
		"/logout - Tancar sessió\n" +
		"/me - El meu perfil\n\n" +
		"/calendar - Calendari dels propers dies\n" +
		"/availability <data> - Pistes lliures d'un dia\n" +
		"/book <data> <HH:MM> <pista> <jugadors> <participants> - Reserva directa (avui i demà)\n" +
		"/request <data> <HH:MM> <jugadors> <participants> - Sol·licitud per al sorteig (a partir de demà passat)\n\n" +
		"/bookings - Les meves reserves\n" +
		"/requests - Les meves sol·licituds\n" +
		"/history [estat] [període] - Historial i estadístiques\n" +
		"/cancel <id> - Cancel·lar una reserva\n" +
		"/cancelrequest <id> - Cancel·lar una sol·licitud\n" +
		"/players [cerca] - Jugadors del club\n\n" +
		"Dates: dd/mm/aaaa o aaaa-mm-dd. Participants: emails o ids separats per comes."

	h.sendMessage(ctx, s, chatID, helpText)
}

func (h *Handlers) handleMe(ctx context.Context, s Sender, chatID int64) {
	ws, _, ok := h.requireUser(ctx, s, chatID)
	if !ok {
		return
	}

	// всегда спрашиваем сервер, счётчики меняются после розыгрыша
	user, err := ws.Gateway.CurrentUser(ctx)
	if err != nil {
		h.fail(ctx, s, chatID, "me", err)
		return
	}

	h.sendMessage(ctx, s, chatID, formatting.Profile(user))
}

func (h *Handlers) handleCalendar(ctx context.Context, s Sender, chatID int64) {
	if _, _, ok := h.requireUser(ctx, s, chatID); !ok {
		return
	}

	days := calendar.Upcoming(h.clock.Now(), CalendarDays)
	text := "📅 Tria un dia:\n\n" +
		formatting.Window(calendar.WindowDirect).String() + ": avui i demà, amb pista concreta (/book)\n" +
		formatting.Window(calendar.WindowRequest).String() + ": a partir de demà passat, entra al sorteig (/request)"

	h.sendWithKeyboard(ctx, s, chatID, text, keyboard.Calendar(days))
}

// handleDialogStep продолжает пошаговый диалог, если он есть
func (h *Handlers) handleDialogStep(ctx context.Context, s Sender, update *models.Update) {
	chatID := update.Message.Chat.ID

	switch h.stateManager.GetState(chatID) {
	case state.StateLoginEmail:
		h.handleLoginEmailStep(ctx, s, update.Message)
	case state.StateLoginPassword:
		h.handleLoginPasswordStep(ctx, s, update.Message)
	default:
		h.sendMessage(ctx, s, chatID, "Fes servir les ordres del bot. Consulta /help")
	}
}
