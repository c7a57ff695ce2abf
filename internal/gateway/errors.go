package gateway

import "fmt"

// Kind закрытый набор сбоев gateway
type Kind string

const (
	KindUnauthorized       Kind = "unauthorized"
	KindServerRejected     Kind = "server_rejected"
	KindNetworkUnreachable Kind = "network_unreachable"
	KindUnexpected         Kind = "unexpected"
)

const (
	MessageUnauthorized = "No autoritzat"
	MessageNetwork      = "No s'ha pogut connectar amb el servidor. Comprova la teva connexió."
	MessageUnexpected   = "S'ha produït un error inesperat."
	MessageGeneric      = "S'ha produït un error. Si us plau, torna-ho a intentar."
)

// Error единственный тип ошибки Client.
// Message уже переведено и его можно показывать пользователю.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Status  int
	Err     error
}

// Sentinels для errors.Is, совпадают с любой Error того же вида
var (
	ErrUnauthorized       = &Error{Kind: KindUnauthorized}
	ErrServerRejected     = &Error{Kind: KindServerRejected}
	ErrNetworkUnreachable = &Error{Kind: KindNetworkUnreachable}
	ErrUnexpected         = &Error{Kind: KindUnexpected}
)

func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Code == "" || t.Code == e.Code)
}

// String для логов, Error() для пользователя
func (e *Error) String() string {
	return fmt.Sprintf("%s code=%s status=%d: %s", e.Kind, e.Code, e.Status, e.Message)
}

func networkError(err error) *Error {
	return &Error{Kind: KindNetworkUnreachable, Code: "NetworkError", Message: MessageNetwork, Err: err}
}

func unexpectedError(err error) *Error {
	return &Error{Kind: KindUnexpected, Code: "UnknownError", Message: MessageUnexpected, Err: err}
}
