package model

// BoardPhase summarises where a board is in its lifecycle
type BoardPhase string

const (
	BoardFresh    BoardPhase = "fresh"    // no ships placed
	BoardActive   BoardPhase = "active"   // at least one ship still afloat
	BoardDefeated BoardPhase = "defeated" // every placed ship has sunk
)

// Board is a player's 10x10 grid together with the ships placed on it.
// A Board is not safe for concurrent use; a game only touches it from the
// active player's turn.
type Board struct {
	GameID       GameID
	PlayerID     PlayerID
	RepeatPolicy RepeatShotPolicy

	cells        [GridSize][GridSize]CellState
	firstShots   [GridSize][GridSize]ShotOutcome // outcome recorded when a cell was first resolved
	ships        []*Ship
	liveSegments int
}

// NewBoard creates a board covered in fog
func NewBoard(gameID GameID, playerID PlayerID, policy RepeatShotPolicy) *Board {
	if policy == "" {
		policy = RepeatReject
	}
	return &Board{
		GameID:       gameID,
		PlayerID:     playerID,
		RepeatPolicy: policy,
	}
}

// CellStateAt returns the state of the cell at c, or CellFog if c is off the grid
func (b *Board) CellStateAt(c Coordinate) CellState {
	if !c.InBounds() {
		return CellFog
	}
	return b.cells[c.Row][c.Col]
}

// Cells returns a copy of the full grid
func (b *Board) Cells() [GridSize][GridSize]CellState {
	return b.cells
}

// Ships returns the placed ships in placement order
func (b *Board) Ships() []*Ship {
	result := make([]*Ship, len(b.ships))
	copy(result, b.ships)
	return result
}

// LiveSegments returns the number of intact ship segments on the board
func (b *Board) LiveSegments() int {
	return b.liveSegments
}

// Phase returns the lifecycle phase derived from the ship counters
func (b *Board) Phase() BoardPhase {
	switch {
	case len(b.ships) == 0:
		return BoardFresh
	case b.liveSegments == 0:
		return BoardDefeated
	default:
		return BoardActive
	}
}

// ShipAt returns the ship placed over c, or nil
func (b *Board) ShipAt(c Coordinate) *Ship {
	for _, ship := range b.ships {
		if ship.Occupies(c) {
			return ship
		}
	}
	return nil
}

// HasShip returns true if a ship of the given kind has been placed
func (b *Board) HasShip(kind ShipKind) bool {
	for _, ship := range b.ships {
		if ship.Kind == kind {
			return true
		}
	}
	return false
}

// PlaceShip puts a ship of the given kind on the run between front and rear.
//
// The caller is expected to have checked that the run is aligned and spans
// exactly kind.Length() cells. Misaligned endpoints are answered with
// PlacementOutOfBounds. The board is left untouched unless the result is
// PlacementPlaced.
func (b *Board) PlaceShip(kind ShipKind, front, rear Coordinate) PlacementOutcome {
	if !front.InBounds() || !rear.InBounds() || !kind.Valid() {
		return PlacementOutOfBounds
	}
	run, ok := RunBetween(front, rear)
	if !ok {
		return PlacementOutOfBounds
	}
	for _, c := range run {
		if b.cells[c.Row][c.Col].blocksPlacement() {
			return PlacementTooClose
		}
	}

	b.ships = append(b.ships, newShip(kind, run))
	b.liveSegments += len(run)
	for _, c := range run {
		b.cells[c.Row][c.Col] = CellShipPresent
	}
	for _, c := range run {
		for _, n := range c.Neighbors() {
			if b.cells[n.Row][n.Col] != CellShipPresent {
				b.cells[n.Row][n.Col] = CellReserved
			}
		}
	}
	return PlacementPlaced
}

// RegisterShot fires at target and reports what happened.
// Shots at already resolved cells are handled according to RepeatPolicy and
// never change the board.
func (b *Board) RegisterShot(target Coordinate) ShotOutcome {
	if !target.InBounds() {
		return ShotOutOfBounds
	}

	switch state := b.cells[target.Row][target.Col]; state {
	case CellShipPresent:
		b.cells[target.Row][target.Col] = CellHit
		outcome := b.destroySegment(target)
		b.firstShots[target.Row][target.Col] = outcome
		return outcome
	case CellFog, CellReserved:
		b.cells[target.Row][target.Col] = CellMissedShot
		b.firstShots[target.Row][target.Col] = ShotMiss
		return ShotMiss
	default:
		if b.RepeatPolicy == RepeatReplay {
			return b.firstShots[target.Row][target.Col]
		}
		return ShotAlreadyTaken
	}
}

// destroySegment knocks out the ship segment at c and classifies the hit
func (b *Board) destroySegment(c Coordinate) ShotOutcome {
	ship := b.ShipAt(c)
	if ship == nil || !ship.destroy(c) {
		return ShotHit
	}
	b.liveSegments--

	if ship.IsAlive() {
		return ShotHit
	}
	if b.liveSegments == 0 {
		return ShotWin
	}
	return ShotSank
}
