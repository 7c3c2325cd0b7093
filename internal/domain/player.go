package domain

import "time"

// Player represents a bot player
type Player struct {
	PlayerID   int64
	Authorized bool
	CreatedAt  time.Time
}

// ConsolePlayerID is recorded as the owner of clues entered on the console
const ConsolePlayerID int64 = 0
