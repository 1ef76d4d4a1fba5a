package model

// PlayerID uniquely identifies a player within a game
type PlayerID string

// Player is a seat in a game together with the name shown in prompts
type Player struct {
	ID          PlayerID
	DisplayName string
}
