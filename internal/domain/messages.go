package domain

const (
	MessageStart    = "Start guessing..."
	MessageNoNumber = "⛔️ No number!"
	MessageLost     = "💥 You lost the game!"
)
