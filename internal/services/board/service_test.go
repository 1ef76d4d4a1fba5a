package board

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/battleship-go/internal/dependencies/mocks"
	"github.com/mcoot/battleship-go/internal/dependencies/random"
	"github.com/mcoot/battleship-go/internal/model"
	"github.com/mcoot/battleship-go/internal/storage/memory"
	"github.com/mcoot/battleship-go/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	random  *mocks.MockRandom
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.random = mocks.NewMockRandom()
	s.service = New(s.storage, s.random, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) newBoard() *model.Board {
	board, err := s.service.CreateBoard(s.ctx, "game-1", "player-1", model.RepeatReject)
	s.Require().NoError(err)
	return board
}

// CreateBoard tests

func (s *ServiceSuite) TestCreateBoardIsPersisted() {
	board := s.newBoard()

	retrieved, err := s.service.GetBoard(s.ctx, "game-1", "player-1")
	s.Require().NoError(err)
	s.Same(board, retrieved)
	s.Equal(model.BoardFresh, retrieved.Phase())
}

func (s *ServiceSuite) TestGetBoardNotFound() {
	_, err := s.service.GetBoard(s.ctx, "game-1", "player-1")
	s.ErrorIs(err, model.ErrBoardNotFound)
}

func (s *ServiceSuite) TestGetBoardsForGame() {
	_, _ = s.service.CreateBoard(s.ctx, "game-1", "player-1", model.RepeatReject)
	_, _ = s.service.CreateBoard(s.ctx, "game-1", "player-2", model.RepeatReject)
	_, _ = s.service.CreateBoard(s.ctx, "game-2", "player-1", model.RepeatReject) // Different game

	boards, err := s.service.GetBoardsForGame(s.ctx, "game-1")
	s.Require().NoError(err)
	s.Len(boards, 2)
}

// ParsePlacement tests

func (s *ServiceSuite) TestParsePlacement() {
	front, rear, err := ParsePlacement("  A1   A5 ")
	s.Require().NoError(err)
	s.Equal(model.Coordinate{Row: 0, Col: 0}, front)
	s.Equal(model.Coordinate{Row: 0, Col: 4}, rear)
}

func (s *ServiceSuite) TestParsePlacementWrongTokenCount() {
	_, _, err := ParsePlacement("A1")
	s.ErrorIs(err, model.ErrInvalidPlacementInput)

	_, _, err = ParsePlacement("A1 A2 A3")
	s.ErrorIs(err, model.ErrInvalidPlacementInput)

	_, _, err = ParsePlacement("")
	s.ErrorIs(err, model.ErrInvalidPlacementInput)
}

func (s *ServiceSuite) TestParsePlacementBadLabel() {
	_, _, err := ParsePlacement("A1 Z9")
	s.ErrorIs(err, model.ErrInvalidCoordinate)
}

// ValidatePlacement tests

func (s *ServiceSuite) TestValidatePlacementAccepts() {
	s.NoError(ValidatePlacement(model.AircraftCarrier, model.Coordinate{Row: 0, Col: 0}, model.Coordinate{Row: 0, Col: 4}))
	s.NoError(ValidatePlacement(model.Destroyer, model.Coordinate{Row: 5, Col: 3}, model.Coordinate{Row: 4, Col: 3}))
}

func (s *ServiceSuite) TestValidatePlacementDiagonal() {
	err := ValidatePlacement(model.Destroyer, model.Coordinate{Row: 0, Col: 0}, model.Coordinate{Row: 1, Col: 1})
	s.ErrorIs(err, model.ErrShipNotAligned)
}

func (s *ServiceSuite) TestValidatePlacementWrongLength() {
	err := ValidatePlacement(model.Cruiser, model.Coordinate{Row: 1, Col: 0}, model.Coordinate{Row: 1, Col: 1})
	s.ErrorIs(err, model.ErrShipLengthMismatch)
	s.Contains(err.Error(), "Cruiser")
}

// PlaceShip tests

func (s *ServiceSuite) TestPlaceShipSucceeds() {
	board := s.newBoard()

	outcome, err := s.service.PlaceShip(s.ctx, board, model.AircraftCarrier, "F3 F7")
	s.Require().NoError(err)
	s.Equal(model.PlacementPlaced, outcome)
	s.Equal(5, board.LiveSegments())
}

func (s *ServiceSuite) TestPlaceShipTooClose() {
	board := s.newBoard()
	_, _ = s.service.PlaceShip(s.ctx, board, model.Destroyer, "A1 A2")

	outcome, err := s.service.PlaceShip(s.ctx, board, model.Destroyer, "B1 B2")
	s.Require().NoError(err)
	s.Equal(model.PlacementTooClose, outcome)
	s.Len(board.Ships(), 1)
}

func (s *ServiceSuite) TestPlaceShipRejectsBeforeEngine() {
	board := s.newBoard()

	_, err := s.service.PlaceShip(s.ctx, board, model.Cruiser, "B1 B2")
	s.ErrorIs(err, model.ErrShipLengthMismatch)

	_, err = s.service.PlaceShip(s.ctx, board, model.Cruiser, "B1 D3")
	s.ErrorIs(err, model.ErrShipNotAligned)

	_, err = s.service.PlaceShip(s.ctx, board, model.Cruiser, "B1")
	s.ErrorIs(err, model.ErrInvalidPlacementInput)

	s.Equal(model.BoardFresh, board.Phase())
}

func (s *ServiceSuite) TestNextShipFollowsFleetOrder() {
	board := s.newBoard()

	kind, ok := s.service.NextShip(board)
	s.Require().True(ok)
	s.Equal(model.AircraftCarrier, kind)

	_, _ = s.service.PlaceShip(s.ctx, board, model.AircraftCarrier, "A1 A5")
	kind, ok = s.service.NextShip(board)
	s.Require().True(ok)
	s.Equal(model.Battleship, kind)
}

// Shoot tests

func (s *ServiceSuite) TestShootOutcomes() {
	board := s.newBoard()
	_, _ = s.service.PlaceShip(s.ctx, board, model.Destroyer, "A1 A2")

	outcome, target, err := s.service.Shoot(s.ctx, board, "A1")
	s.Require().NoError(err)
	s.Equal(model.ShotHit, outcome)
	s.Equal(model.Coordinate{Row: 0, Col: 0}, target)

	outcome, _, err = s.service.Shoot(s.ctx, board, "C5")
	s.Require().NoError(err)
	s.Equal(model.ShotMiss, outcome)

	outcome, _, err = s.service.Shoot(s.ctx, board, "A2")
	s.Require().NoError(err)
	s.Equal(model.ShotWin, outcome)
}

func (s *ServiceSuite) TestShootMalformedLabel() {
	board := s.newBoard()

	_, _, err := s.service.Shoot(s.ctx, board, "K11")
	s.ErrorIs(err, model.ErrInvalidCoordinate)
}

func (s *ServiceSuite) TestShootAtOffGrid() {
	board := s.newBoard()

	outcome, err := s.service.ShootAt(s.ctx, board, model.Coordinate{Row: 10, Col: 0})
	s.Require().NoError(err)
	s.Equal(model.ShotOutOfBounds, outcome)
}

// AutoPlaceFleet tests

func (s *ServiceSuite) TestAutoPlaceFleetDeterministic() {
	board := s.newBoard()
	s.random.QueueBool(true, true, true, true, true)
	s.random.QueueIntn(0, 0, 2, 0, 4, 0, 6, 0, 8, 0)

	err := s.service.AutoPlaceFleet(s.ctx, board)
	s.Require().NoError(err)

	ships := board.Ships()
	s.Require().Len(ships, 5)
	s.Equal(model.Coordinate{Row: 0, Col: 4}, ships[0].Squares[4])
	s.Equal(model.Coordinate{Row: 8, Col: 1}, ships[4].Squares[1])
	s.Equal(model.FleetSegments(), board.LiveSegments())
}

func (s *ServiceSuite) TestAutoPlaceFleetWithRealRandom() {
	s.service = New(s.storage, random.New(), testutil.NopLogger())

	for i := 0; i < 20; i++ {
		board := model.NewBoard("game-1", "player-1", model.RepeatReject)
		err := s.service.AutoPlaceFleet(s.ctx, board)
		s.Require().NoError(err)

		s.Len(board.Ships(), 5)
		for idx, kind := range model.Fleet() {
			s.Equal(kind, board.Ships()[idx].Kind)
			s.Len(board.Ships()[idx].Squares, kind.Length())
		}
		s.Equal(model.FleetSegments(), board.LiveSegments())
	}
}

func (s *ServiceSuite) TestAutoPlaceFleetGivesUp() {
	board := s.newBoard()
	// An empty mock queue always proposes the same vertical run at A1
	err := s.service.AutoPlaceFleet(s.ctx, board)
	s.ErrorIs(err, model.ErrFleetPlacementFailed)
	s.Equal(model.BoardFresh, board.Phase())
}

func (s *ServiceSuite) TestAutoPlaceFleetRequiresFreshBoard() {
	board := s.newBoard()
	_, _ = s.service.PlaceShip(s.ctx, board, model.AircraftCarrier, "A1 A5")

	err := s.service.AutoPlaceFleet(s.ctx, board)
	s.ErrorIs(err, model.ErrWrongPhase)
}
