package game

// Status lines shown to the player after a turn.
const (
	StatusDefault      = "I don't understand. Try verb noun. Valid verbs are go, look, take."
	StatusDead         = "You are dead."
	StatusBadExit      = "Invalid Exit."
	StatusRoomChange   = "Room Changed."
	StatusGrabbed      = "Item grabbed."
	StatusBadGrabbable = "I can't grab that."
	StatusBadItem      = "I don't see that."
)

// QuitWords end the session when typed on their own.
var QuitWords = []string{"quit", "exit", "bye", "adios", "q"}
