package model

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type BoardSuite struct {
	suite.Suite
	board *Board
}

func TestBoardSuite(t *testing.T) {
	suite.Run(t, new(BoardSuite))
}

func (s *BoardSuite) SetupTest() {
	s.board = NewBoard("game-1", "player-1", RepeatReject)
}

func (s *BoardSuite) at(label string) Coordinate {
	c, err := ParseCoordinate(label)
	s.Require().NoError(err)
	return c
}

func (s *BoardSuite) place(kind ShipKind, front, rear string) PlacementOutcome {
	return s.board.PlaceShip(kind, s.at(front), s.at(rear))
}

func (s *BoardSuite) shoot(label string) ShotOutcome {
	return s.board.RegisterShot(s.at(label))
}

func (s *BoardSuite) assertSegmentsConserved() {
	total := 0
	for _, ship := range s.board.Ships() {
		total += ship.Remaining()
	}
	s.Equal(total, s.board.LiveSegments())
}

// NewBoard tests

func (s *BoardSuite) TestNewBoardIsFog() {
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			s.Equal(CellFog, s.board.CellStateAt(Coordinate{Row: row, Col: col}))
		}
	}
	s.Equal(BoardFresh, s.board.Phase())
	s.Equal(0, s.board.LiveSegments())
	s.Empty(s.board.Ships())
}

func (s *BoardSuite) TestNewBoardDefaultsToReject() {
	board := NewBoard("game-1", "player-1", "")
	s.Equal(RepeatReject, board.RepeatPolicy)
}

// PlaceShip tests

func (s *BoardSuite) TestPlaceDestroyerInCorner() {
	s.Equal(PlacementPlaced, s.place(Destroyer, "A1", "A2"))

	s.Equal(CellShipPresent, s.board.CellStateAt(s.at("A1")))
	s.Equal(CellShipPresent, s.board.CellStateAt(s.at("A2")))
	s.Equal(CellReserved, s.board.CellStateAt(s.at("A3")))
	s.Equal(CellReserved, s.board.CellStateAt(s.at("B1")))
	s.Equal(CellReserved, s.board.CellStateAt(s.at("B2")))
	s.Equal(CellReserved, s.board.CellStateAt(s.at("B3")))
	s.Equal(CellFog, s.board.CellStateAt(s.at("A4")))
	s.Equal(CellFog, s.board.CellStateAt(s.at("C1")))

	s.Equal(2, s.board.LiveSegments())
	s.Equal(BoardActive, s.board.Phase())
	s.Require().Len(s.board.Ships(), 1)
	s.Equal(Destroyer, s.board.Ships()[0].Kind)
}

func (s *BoardSuite) TestPlaceVerticalShipReversedEndpoints() {
	s.Equal(PlacementPlaced, s.place(Submarine, "F5", "D5"))

	ship := s.board.Ships()[0]
	s.Equal([]Coordinate{s.at("D5"), s.at("E5"), s.at("F5")}, ship.Squares)
	for _, label := range []string{"C4", "C5", "C6", "D4", "D6", "E4", "E6", "F4", "F6", "G4", "G5", "G6"} {
		s.Equal(CellReserved, s.board.CellStateAt(s.at(label)), label)
	}
}

func (s *BoardSuite) TestReservationRingCount() {
	s.Equal(PlacementPlaced, s.place(Cruiser, "E4", "E6"))

	reserved := 0
	cells := s.board.Cells()
	for row := range cells {
		for col := range cells[row] {
			if cells[row][col] == CellReserved {
				reserved++
			}
		}
	}
	s.Equal(12, reserved)
}

func (s *BoardSuite) TestPlaceTooCloseToReservedRing() {
	s.Require().Equal(PlacementPlaced, s.place(Destroyer, "A1", "A2"))
	before := s.board.Cells()

	s.Equal(PlacementTooClose, s.place(Cruiser, "B1", "B2"))

	s.Equal(before, s.board.Cells())
	s.Len(s.board.Ships(), 1)
	s.Equal(2, s.board.LiveSegments())
}

func (s *BoardSuite) TestPlaceOverlappingShip() {
	s.Require().Equal(PlacementPlaced, s.place(Battleship, "C3", "C6"))

	s.Equal(PlacementTooClose, s.place(Submarine, "A5", "C5"))
	s.Len(s.board.Ships(), 1)
}

func (s *BoardSuite) TestPlaceDiagonallyAdjacentIsTooClose() {
	s.Require().Equal(PlacementPlaced, s.place(Destroyer, "A1", "A2"))

	s.Equal(PlacementTooClose, s.place(Destroyer, "B3", "C3"))
}

func (s *BoardSuite) TestPlaceSharingBufferIsAllowed() {
	s.Require().Equal(PlacementPlaced, s.place(Destroyer, "A1", "A2"))

	// C1 is two rows away: the rings touch but the run is clear
	s.Equal(PlacementPlaced, s.place(Cruiser, "C1", "C3"))
	s.Equal(5, s.board.LiveSegments())
}

func (s *BoardSuite) TestPlaceOutOfBounds() {
	before := s.board.Cells()

	s.Equal(PlacementOutOfBounds, s.board.PlaceShip(Destroyer, Coordinate{Row: 10, Col: 0}, Coordinate{Row: 10, Col: 1}))
	s.Equal(PlacementOutOfBounds, s.board.PlaceShip(Destroyer, Coordinate{Row: 0, Col: 9}, Coordinate{Row: 0, Col: 10}))
	s.Equal(PlacementOutOfBounds, s.board.PlaceShip(Destroyer, Coordinate{Row: -1, Col: 0}, Coordinate{Row: 0, Col: 0}))

	s.Equal(before, s.board.Cells())
	s.Equal(BoardFresh, s.board.Phase())
}

func (s *BoardSuite) TestPlaceDiagonalIsOutOfBounds() {
	s.Equal(PlacementOutOfBounds, s.place(Destroyer, "A1", "B2"))
	s.Empty(s.board.Ships())
}

func (s *BoardSuite) TestPlaceUnknownKindIsOutOfBounds() {
	s.Equal(PlacementOutOfBounds, s.place(ShipKind(42), "A1", "A2"))
	s.Empty(s.board.Ships())
}

func (s *BoardSuite) TestPlaceFullFleet() {
	s.Equal(PlacementPlaced, s.place(AircraftCarrier, "A1", "A5"))
	s.Equal(PlacementPlaced, s.place(Battleship, "C1", "F1"))
	s.Equal(PlacementPlaced, s.place(Submarine, "J8", "J10"))
	s.Equal(PlacementPlaced, s.place(Cruiser, "E5", "E7"))
	s.Equal(PlacementPlaced, s.place(Destroyer, "H3", "H4"))

	s.Equal(FleetSegments(), s.board.LiveSegments())
	s.Len(s.board.Ships(), 5)
	for _, kind := range Fleet() {
		s.True(s.board.HasShip(kind))
	}
	s.assertSegmentsConserved()
}

// RegisterShot tests

func (s *BoardSuite) TestShotHitThenWinOnSingleShip() {
	s.Require().Equal(PlacementPlaced, s.place(Destroyer, "A1", "A2"))

	s.Equal(ShotHit, s.shoot("A1"))
	s.Equal(CellHit, s.board.CellStateAt(s.at("A1")))
	s.Equal(1, s.board.LiveSegments())

	s.Equal(ShotWin, s.shoot("A2"))
	s.Equal(0, s.board.LiveSegments())
	s.Equal(BoardDefeated, s.board.Phase())
}

func (s *BoardSuite) TestShotSankWhileOthersAfloat() {
	s.Require().Equal(PlacementPlaced, s.place(Destroyer, "A1", "A2"))
	s.Require().Equal(PlacementPlaced, s.place(Cruiser, "E5", "E7"))

	s.Equal(ShotHit, s.shoot("A2"))
	s.Equal(ShotSank, s.shoot("A1"))
	s.Equal(3, s.board.LiveSegments())
	s.False(s.board.ShipAt(s.at("A1")).IsAlive())
	s.True(s.board.ShipAt(s.at("E6")).IsAlive())

	s.Equal(ShotHit, s.shoot("E5"))
	s.Equal(ShotHit, s.shoot("E7"))
	s.Equal(ShotWin, s.shoot("E6"))
}

func (s *BoardSuite) TestShotMissOnFog() {
	s.Require().Equal(PlacementPlaced, s.place(Destroyer, "A1", "A2"))

	s.Equal(ShotMiss, s.shoot("J10"))
	s.Equal(CellMissedShot, s.board.CellStateAt(s.at("J10")))
	s.Equal(2, s.board.LiveSegments())
}

func (s *BoardSuite) TestShotMissOnReserved() {
	s.Require().Equal(PlacementPlaced, s.place(Destroyer, "A1", "A2"))

	s.Equal(ShotMiss, s.shoot("B2"))
	s.Equal(CellMissedShot, s.board.CellStateAt(s.at("B2")))
}

func (s *BoardSuite) TestShotOutOfBoundsIsRepeatableWithoutSideEffects() {
	s.Require().Equal(PlacementPlaced, s.place(Destroyer, "A1", "A2"))
	before := s.board.Cells()

	for i := 0; i < 5; i++ {
		s.Equal(ShotOutOfBounds, s.board.RegisterShot(Coordinate{Row: 10, Col: 0}))
		s.Equal(ShotOutOfBounds, s.board.RegisterShot(Coordinate{Row: 0, Col: -1}))
	}

	s.Equal(before, s.board.Cells())
	s.Equal(2, s.board.LiveSegments())
}

func (s *BoardSuite) TestRepeatShotRejected() {
	s.Require().Equal(PlacementPlaced, s.place(Destroyer, "A1", "A2"))
	s.Require().Equal(PlacementPlaced, s.place(Cruiser, "E5", "E7"))

	s.Equal(ShotHit, s.shoot("A1"))
	s.Equal(ShotAlreadyTaken, s.shoot("A1"))
	s.Equal(4, s.board.LiveSegments())

	s.Equal(ShotMiss, s.shoot("J1"))
	s.Equal(ShotAlreadyTaken, s.shoot("J1"))
	s.Equal(CellMissedShot, s.board.CellStateAt(s.at("J1")))
}

func (s *BoardSuite) TestRepeatShotReplayed() {
	s.board = NewBoard("game-1", "player-1", RepeatReplay)
	s.Require().Equal(PlacementPlaced, s.place(Destroyer, "A1", "A2"))
	s.Require().Equal(PlacementPlaced, s.place(Cruiser, "E5", "E7"))

	s.Equal(ShotHit, s.shoot("A1"))
	s.Equal(ShotHit, s.shoot("A1"))
	s.Equal(4, s.board.LiveSegments())

	s.Equal(ShotSank, s.shoot("A2"))
	s.Equal(ShotSank, s.shoot("A2"))
	s.Equal(ShotHit, s.shoot("A1"))
	s.Equal(3, s.board.LiveSegments())

	s.Equal(ShotMiss, s.shoot("J1"))
	s.Equal(ShotMiss, s.shoot("J1"))
	s.assertSegmentsConserved()
}

func (s *BoardSuite) TestSegmentConservationAcrossGame() {
	s.Require().Equal(PlacementPlaced, s.place(AircraftCarrier, "A1", "A5"))
	s.Require().Equal(PlacementPlaced, s.place(Destroyer, "J9", "J10"))

	previous := s.board.LiveSegments()
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			outcome := s.board.RegisterShot(Coordinate{Row: row, Col: col})
			s.assertSegmentsConserved()
			if outcome.IsHit() {
				s.Equal(previous-1, s.board.LiveSegments())
			} else {
				s.Equal(previous, s.board.LiveSegments())
			}
			previous = s.board.LiveSegments()
		}
	}
	s.Equal(BoardDefeated, s.board.Phase())
}

func (s *BoardSuite) TestWinOnlyOnLastSegment() {
	s.Require().Equal(PlacementPlaced, s.place(Submarine, "C3", "C5"))
	s.Require().Equal(PlacementPlaced, s.place(Destroyer, "G7", "H7"))

	outcomes := []ShotOutcome{
		s.shoot("C3"),
		s.shoot("G7"),
		s.shoot("C4"),
		s.shoot("H7"),
		s.shoot("C5"),
	}
	s.Equal([]ShotOutcome{ShotHit, ShotHit, ShotHit, ShotSank, ShotWin}, outcomes)
}

func (s *BoardSuite) TestShipNeverDowngradedByNeighbourRing() {
	s.Require().Equal(PlacementPlaced, s.place(Battleship, "D2", "D5"))

	for _, label := range []string{"D2", "D3", "D4", "D5"} {
		s.Equal(CellShipPresent, s.board.CellStateAt(s.at(label)))
	}
}

func (s *BoardSuite) TestCellStateAtOffGridIsFog() {
	s.Equal(CellFog, s.board.CellStateAt(Coordinate{Row: 12, Col: 3}))
}
