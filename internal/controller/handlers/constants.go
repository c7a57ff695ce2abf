package handlers

const (
	CmdStart         = "/start"
	CmdHelp          = "/help"
	CmdLogin         = "/login"
	CmdLogout        = "/logout"
	CmdMe            = "/me"
	CmdCalendar      = "/calendar"
	CmdAvailability  = "/availability"
	CmdBook          = "/book"
	CmdRequest       = "/request"
	CmdBookings      = "/bookings"
	CmdRequests      = "/requests"
	CmdHistory       = "/history"
	CmdCancel        = "/cancel"
	CmdCancelRequest = "/cancelrequest"
	CmdPlayers       = "/players"
)

// Календарь показывает две недели вперёд
const CalendarDays = 14

// Максимум игроков в ответе /players
const PlayersLimit = 30

const (
	usageAvailability  = "Ús: /availability <data>\nExemple: /availability 12/06/2025"
	usageBook          = "Ús: /book <data> <HH:MM> <pista> <jugadors> <participants>\nEls participants són emails o ids separats per comes, sense incloure't a tu.\nExemple: /book 10/06/2025 18:00 6f1c1f0e-8d4a-4a8e-9a51-3c2f7f5b9e10 2 jordi@club.cat"
	usageRequest       = "Ús: /request <data> <HH:MM> <jugadors> <participants>\nExemple: /request 14/06/2025 19:30 4 jordi@club.cat,marta@mail.com,u7"
	usageHistory       = "Ús: /history [all|completed|cancelled] [all|last-week|last-month|last-3-months]"
	usageCancel        = "Ús: /cancel <id de la reserva>"
	usageCancelRequest = "Ús: /cancelrequest <id de la sol·licitud>"
	usageLogin         = "Ús: /login <email> <contrasenya>\nO només /login per introduir-los pas a pas."
)
