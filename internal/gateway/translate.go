package gateway

// translations переводит фразы сервера на язык пользователя.
// Список неполный, остальное показывается как прислал сервер.
var translations = map[string]string{
	"User not found":                  "Usuari no trobat",
	"Court not available":             "Pista no disponible",
	"Court not found":                 "Pista no trobada",
	"Invalid number of players":       "El nombre de jugadors ha de ser entre 2 i 4",
	"Booking not found":               "Reserva no trobada",
	"Cannot cancel completed booking": "No es pot cancel·lar una reserva completada",
	"Court is inactive":               "La pista està inactiva",
	"Invalid time slot":               "Franja horària no vàlida",
	"Invalid request window":          "Finestra de sol·licitud no vàlida",
	"Invalid direct booking window":   "Finestra de reserva directa no vàlida",
	"Unauthorized":                    "No autoritzat",
	"Invalid credentials":             "Credencials no vàlides",
	"Email already exists":            "L'email ja existeix",
	"Validation error":                "Error de validació",
}

// Translate перевод msg или сам msg
func Translate(msg string) string {
	if t, ok := translations[msg]; ok {
		return t
	}
	return msg
}
