package state

// UserState представляет текущее состояние пользователя в диалоге
type UserState string

const (
	StateNone UserState = "" // Нет активного состояния

	// Пошаговый вход: /login без аргументов
	StateLoginEmail    UserState = "login_email"
	StateLoginPassword UserState = "login_password"
)

// Ключи временных данных диалога
const (
	DataEmail = "email"
)

// UserData хранит временные данные пользователя во время диалога
type UserData struct {
	State UserState
	Data  map[string]string
}
