package model

import "time"

// GameID uniquely identifies a game
type GameID string

// GameState represents the current phase of a game
type GameState string

const (
	GameStatePlacing   GameState = "placing"   // Players are positioning their fleets
	GameStateShooting  GameState = "shooting"  // Players take turns firing
	GameStateComplete  GameState = "complete"  // A fleet has been destroyed
	GameStateAbandoned GameState = "abandoned" // Game was cancelled
)

// MaxPlayers is the number of seats in a game
const MaxPlayers = 2

// Game represents a single battleship session.
// With one player the game is a solo practice round: the player fires at
// their own fleet.
type Game struct {
	ID           GameID
	State        GameState
	Players      []PlayerID
	RepeatPolicy RepeatShotPolicy

	// Turn management
	CurrentTurn int // Index into Players of the player to shoot
	ShotsFired  int // Shots that consumed a turn

	Winner PlayerID // Empty until the game is complete

	// Timing
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsSolo returns true for single-player practice games
func (g *Game) IsSolo() bool {
	return len(g.Players) == 1
}

// IsFinished returns true once no further moves are accepted
func (g *Game) IsFinished() bool {
	return g.State == GameStateComplete || g.State == GameStateAbandoned
}

// CurrentPlayer returns the PlayerID of the player to shoot
func (g *Game) CurrentPlayer() PlayerID {
	if len(g.Players) == 0 {
		return ""
	}
	return g.Players[g.CurrentTurn%len(g.Players)]
}

// HasPlayer returns true if the player holds a seat in this game
func (g *Game) HasPlayer(playerID PlayerID) bool {
	return g.PlayerIndex(playerID) >= 0
}

// PlayerIndex returns the seat of the player, or -1
func (g *Game) PlayerIndex(playerID PlayerID) int {
	for i, p := range g.Players {
		if p == playerID {
			return i
		}
	}
	return -1
}

// Opponent returns the player whose board playerID fires at
func (g *Game) Opponent(playerID PlayerID) PlayerID {
	idx := g.PlayerIndex(playerID)
	if idx < 0 {
		return ""
	}
	return g.Players[(idx+1)%len(g.Players)]
}

// PassTurn hands the move to the next seat
func (g *Game) PassTurn() {
	if len(g.Players) == 0 {
		return
	}
	g.CurrentTurn = (g.CurrentTurn + 1) % len(g.Players)
}

// GameSummary is a lightweight record of a completed game
type GameSummary struct {
	ID          GameID
	Winner      PlayerID
	ShotsFired  int
	CompletedAt time.Time
}
