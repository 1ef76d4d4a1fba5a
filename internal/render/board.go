package render

import (
	"fmt"
	"strings"

	"github.com/mcoot/battleship-go/internal/model"
)

// Perspective controls which cell states are visible when drawing a board
type Perspective string

const (
	// PerspectiveAlly shows the owner's ships on fog and hides shot markers
	PerspectiveAlly Perspective = "ally"
	// PerspectiveEnemy hides intact ships and reserved cells
	PerspectiveEnemy Perspective = "enemy"
	// PerspectiveOmniscient shows every state
	PerspectiveOmniscient Perspective = "omniscient"
)

// Separator is printed between the two boards of the PvP view
const Separator = "---------------------"

// ParsePerspective validates a perspective name
func ParsePerspective(s string) (Perspective, error) {
	switch p := Perspective(s); p {
	case PerspectiveAlly, PerspectiveEnemy, PerspectiveOmniscient:
		return p, nil
	default:
		return "", fmt.Errorf("unknown perspective %q", s)
	}
}

// Symbol returns the character drawn for state under perspective p
func Symbol(state model.CellState, p Perspective) rune {
	switch p {
	case PerspectiveAlly:
		if state == model.CellHit || state == model.CellMissedShot || state == model.CellReserved {
			return model.SymbolFog
		}
	case PerspectiveEnemy:
		if state == model.CellShipPresent || state == model.CellReserved {
			return model.SymbolFog
		}
	}
	return state.Symbol()
}

// Board draws the grid as text: a header of column numbers followed by one
// line per row, labelled A to J. There is no trailing newline.
func Board(b *model.Board, p Perspective) string {
	var sb strings.Builder
	sb.WriteString(" ")
	for col := 1; col <= model.GridSize; col++ {
		fmt.Fprintf(&sb, " %d", col)
	}

	cells := b.Cells()
	for row := 0; row < model.GridSize; row++ {
		sb.WriteString("\n")
		sb.WriteByte(byte('A' + row))
		for col := 0; col < model.GridSize; col++ {
			sb.WriteByte(' ')
			sb.WriteRune(Symbol(cells[row][col], p))
		}
	}
	return sb.String()
}

// PvP draws the shooter's view: the opponent's board from the enemy
// perspective, a separator, then the shooter's own board
func PvP(enemy, own *model.Board) string {
	return Board(enemy, PerspectiveEnemy) + "\n" + Separator + "\n" + Board(own, PerspectiveAlly)
}
