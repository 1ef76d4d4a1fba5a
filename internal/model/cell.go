package model

// CellState is the content of a single board cell
type CellState int

const (
	CellFog         CellState = iota // untouched
	CellShipPresent                  // intact ship segment
	CellReserved                     // buffer around a placed ship
	CellHit                          // destroyed ship segment
	CellMissedShot                   // shot that found nothing
)

// Display symbols, one per cell state
const (
	SymbolFog      = '~'
	SymbolShip     = 'O'
	SymbolReserved = 'R'
	SymbolHit      = 'X'
	SymbolMiss     = 'M'
)

func (s CellState) String() string {
	switch s {
	case CellFog:
		return "fog"
	case CellShipPresent:
		return "ship"
	case CellReserved:
		return "reserved"
	case CellHit:
		return "hit"
	case CellMissedShot:
		return "miss"
	default:
		return "unknown"
	}
}

// Symbol returns the character used to draw the state
func (s CellState) Symbol() rune {
	switch s {
	case CellShipPresent:
		return SymbolShip
	case CellReserved:
		return SymbolReserved
	case CellHit:
		return SymbolHit
	case CellMissedShot:
		return SymbolMiss
	default:
		return SymbolFog
	}
}

// IsResolved returns true once a shot has landed on the cell
func (s CellState) IsResolved() bool {
	return s == CellHit || s == CellMissedShot
}

// blocksPlacement returns true for cells a new ship may not occupy
func (s CellState) blocksPlacement() bool {
	return s == CellShipPresent || s == CellReserved
}
