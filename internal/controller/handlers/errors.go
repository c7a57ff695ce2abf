package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Freeeeeet/padel_booking_bot/internal/gateway"
	"github.com/Freeeeeet/padel_booking_bot/internal/model"
	"github.com/Freeeeeet/padel_booking_bot/internal/service"
	"github.com/Freeeeeet/padel_booking_bot/internal/validation"
)

// Ошибки разбора аргументов команд
var (
	ErrInvalidDate    = errors.New("invalid date")
	ErrInvalidStatus  = errors.New("invalid history status")
	ErrInvalidPeriod  = errors.New("invalid history period")
	ErrMissingArgs    = errors.New("missing arguments")
	ErrNotCancellable = errors.New("not cancellable")
)

// ErrorMessage возвращает пользовательское сообщение для ошибки
func ErrorMessage(err error) string {
	var gwErr *gateway.Error
	if errors.As(err, &gwErr) {
		if gwErr.Kind == gateway.KindNetworkUnreachable {
			return "📡 " + gwErr.Error()
		}
		return "❌ " + gwErr.Error()
	}

	switch {
	case errors.Is(err, service.ErrNotAuthenticated):
		return "🔒 Has d'iniciar sessió.\n\n" + usageLogin
	case errors.Is(err, service.ErrBusy):
		return "⏳ Hi ha una operació en curs. Espera un moment i torna-ho a provar."
	case errors.Is(err, service.ErrSlotUnavailable):
		return "❌ Aquesta franja no està disponible. Consulta /availability"
	case errors.Is(err, service.ErrCourtUnavailable):
		return "❌ Aquesta pista no està lliure en aquesta franja. Consulta /availability"
	case errors.Is(err, service.ErrUnknownPlayer):
		return "❌ No s'ha trobat el jugador " + detail(err, service.ErrUnknownPlayer) + ". Consulta /players"
	case errors.Is(err, validation.ErrMissingUser):
		return "🔒 Has d'iniciar sessió."
	case errors.Is(err, validation.ErrInvalidPlayerCount):
		return fmt.Sprintf("❌ El nombre de jugadors ha de ser entre %d i %d", model.PlayerCountMin, model.PlayerCountMax)
	case errors.Is(err, validation.ErrIncompleteParticipants):
		return "❌ Has de seleccionar exactament tants participants com jugadors (tu inclòs)"
	case errors.Is(err, validation.ErrMissingCourt):
		return "❌ Has de seleccionar una pista per a la reserva directa"
	case errors.Is(err, validation.ErrInvalidCourt):
		return "❌ L'identificador de la pista no és vàlid"
	case errors.Is(err, validation.ErrMissingTimeSlot):
		return "❌ Has de seleccionar una franja horària"
	case errors.Is(err, validation.ErrInvalidTimeSlot):
		return "❌ Franja horària no vàlida, fes servir HH:MM"
	case errors.Is(err, validation.ErrWindowMismatch):
		return "❌ Aquesta data no admet aquest tipus de reserva.\nAvui i demà: /book (reserva directa). A partir de demà passat: /request (sorteig)."
	case errors.Is(err, validation.ErrMissingCredentials):
		return "❌ Cal l'email i la contrasenya"
	case errors.Is(err, validation.ErrInvalidEmail):
		return "❌ Email no vàlid"
	case errors.Is(err, validation.ErrPasswordTooShort):
		return "❌ La contrasenya ha de tenir almenys 6 caràcters"
	case errors.Is(err, ErrInvalidDate):
		return "❌ Data no vàlida. Fes servir dd/mm/aaaa o aaaa-mm-dd"
	case errors.Is(err, ErrInvalidStatus), errors.Is(err, ErrInvalidPeriod):
		return "❌ Filtre no vàlid.\n\n" + usageHistory
	case errors.Is(err, ErrNotCancellable):
		return "❌ Aquesta reserva ja no es pot cancel·lar"
	default:
		return "❌ " + gateway.MessageGeneric
	}
}

// detail отрезает префикс sentinel из "sentinel: detail"
func detail(err, sentinel error) string {
	msg := err.Error()
	prefix := sentinel.Error() + ": "
	if i := strings.Index(msg, prefix); i >= 0 {
		return msg[i+len(prefix):]
	}
	return ""
}
