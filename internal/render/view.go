package render

import (
	"time"

	"github.com/mcoot/battleship-go/internal/model"
)

// BoardView is the JSON form of a board seen from one perspective
type BoardView struct {
	PlayerID       string   `json:"player_id"`
	Perspective    string   `json:"perspective"`
	Rows           []string `json:"rows"`
	ShipsRemaining int      `json:"ships_remaining"`
	LiveSegments   *int     `json:"live_segments,omitempty"`
}

// NewBoardView builds the view of b for perspective p.
// Segment counts are only revealed to the ally and omniscient perspectives.
func NewBoardView(b *model.Board, p Perspective) BoardView {
	cells := b.Cells()
	rows := make([]string, model.GridSize)
	for row := 0; row < model.GridSize; row++ {
		line := make([]rune, model.GridSize)
		for col := 0; col < model.GridSize; col++ {
			line[col] = Symbol(cells[row][col], p)
		}
		rows[row] = string(line)
	}

	remaining := 0
	for _, ship := range b.Ships() {
		if ship.IsAlive() {
			remaining++
		}
	}

	view := BoardView{
		PlayerID:       string(b.PlayerID),
		Perspective:    string(p),
		Rows:           rows,
		ShipsRemaining: remaining,
	}
	if p != PerspectiveEnemy {
		live := b.LiveSegments()
		view.LiveSegments = &live
	}
	return view
}

// GameView is the JSON form of a game session
type GameView struct {
	ID            string     `json:"id"`
	State         string     `json:"state"`
	Players       []string   `json:"players"`
	RepeatShots   string     `json:"repeat_shots"`
	CurrentPlayer string     `json:"current_player,omitempty"`
	ShotsFired    int        `json:"shots_fired"`
	Winner        *string    `json:"winner,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
}

// NewGameView builds the JSON view of a game
func NewGameView(g *model.Game) GameView {
	players := make([]string, len(g.Players))
	for i, p := range g.Players {
		players[i] = string(p)
	}

	view := GameView{
		ID:          string(g.ID),
		State:       string(g.State),
		Players:     players,
		RepeatShots: string(g.RepeatPolicy),
		ShotsFired:  g.ShotsFired,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
	if g.State == model.GameStateShooting {
		view.CurrentPlayer = string(g.CurrentPlayer())
	}
	if g.Winner != "" {
		winner := string(g.Winner)
		view.Winner = &winner
		completed := g.UpdatedAt
		view.CompletedAt = &completed
	}
	return view
}

// ShotView is the JSON form of a single shot
type ShotView struct {
	Shooter      string `json:"shooter"`
	TargetPlayer string `json:"target_player"`
	Target       string `json:"target"`
	Outcome      string `json:"outcome"`
}

// FleetEntry describes one ship class
type FleetEntry struct {
	Kind   string `json:"kind"`
	Name   string `json:"name"`
	Length int    `json:"length"`
}

// FleetView lists the ship classes in placement order
func FleetView() []FleetEntry {
	fleet := model.Fleet()
	entries := make([]FleetEntry, len(fleet))
	for i, kind := range fleet {
		entries[i] = FleetEntry{
			Kind:   kind.String(),
			Name:   kind.DisplayName(),
			Length: kind.Length(),
		}
	}
	return entries
}
