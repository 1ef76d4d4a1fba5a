package board

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mcoot/battleship-go/internal/dependencies/random"
	"github.com/mcoot/battleship-go/internal/model"
	"github.com/mcoot/battleship-go/internal/storage"
)

// MaxFleetPlacementAttempts bounds the random search in AutoPlaceFleet
const MaxFleetPlacementAttempts = 10000

// Service provides board operations
type Service struct {
	storage storage.Storage
	random  random.Random
	logger  *slog.Logger
}

// New creates a new BoardService
func New(storage storage.Storage, random random.Random, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		random:  random,
		logger:  logger,
	}
}

// CreateBoard initializes an empty board for a player in a game
func (s *Service) CreateBoard(ctx context.Context, gameID model.GameID, playerID model.PlayerID, policy model.RepeatShotPolicy) (*model.Board, error) {
	board := model.NewBoard(gameID, playerID, policy)
	if err := s.storage.SaveBoard(ctx, board); err != nil {
		return nil, err
	}
	return board, nil
}

// GetBoard retrieves a player's board
func (s *Service) GetBoard(ctx context.Context, gameID model.GameID, playerID model.PlayerID) (*model.Board, error) {
	return s.storage.GetBoard(ctx, gameID, playerID)
}

// GetBoardsForGame retrieves all boards for a game
func (s *Service) GetBoardsForGame(ctx context.Context, gameID model.GameID) ([]*model.Board, error) {
	return s.storage.GetBoardsForGame(ctx, gameID)
}

// NextShip returns the next ship kind to place on the board, in fleet order
func (s *Service) NextShip(board *model.Board) (model.ShipKind, bool) {
	fleet := model.Fleet()
	placed := len(board.Ships())
	if placed >= len(fleet) {
		return 0, false
	}
	return fleet[placed], true
}

// ParsePlacement splits "FRONT REAR" input into two coordinates
func ParsePlacement(input string) (front, rear model.Coordinate, err error) {
	fields := strings.Fields(input)
	if len(fields) != 2 {
		return model.Coordinate{}, model.Coordinate{}, model.ErrInvalidPlacementInput
	}
	if front, err = model.ParseCoordinate(fields[0]); err != nil {
		return model.Coordinate{}, model.Coordinate{}, err
	}
	if rear, err = model.ParseCoordinate(fields[1]); err != nil {
		return model.Coordinate{}, model.Coordinate{}, err
	}
	return front, rear, nil
}

// ValidatePlacement checks that the endpoints form a straight run of the
// right length for the ship kind
func ValidatePlacement(kind model.ShipKind, front, rear model.Coordinate) error {
	if front.DirectionTo(rear).IsDiagonal() {
		return model.ErrShipNotAligned
	}
	if model.SpanLength(front, rear) != kind.Length() {
		return fmt.Errorf("%w: %s needs %d cells", model.ErrShipLengthMismatch, kind.DisplayName(), kind.Length())
	}
	return nil
}

// PlaceShip parses and validates "FRONT REAR" input and places the ship.
// Validation failures are returned as errors; engine rejections are
// returned as outcomes.
func (s *Service) PlaceShip(ctx context.Context, board *model.Board, kind model.ShipKind, input string) (model.PlacementOutcome, error) {
	front, rear, err := ParsePlacement(input)
	if err != nil {
		return model.PlacementOutOfBounds, err
	}
	return s.PlaceShipAt(ctx, board, kind, front, rear)
}

// PlaceShipAt validates the endpoints and places the ship
func (s *Service) PlaceShipAt(ctx context.Context, board *model.Board, kind model.ShipKind, front, rear model.Coordinate) (model.PlacementOutcome, error) {
	if err := ValidatePlacement(kind, front, rear); err != nil {
		return model.PlacementOutOfBounds, err
	}

	outcome := board.PlaceShip(kind, front, rear)
	s.logger.Debug("ship placement",
		slog.String("game_id", string(board.GameID)),
		slog.String("player_id", string(board.PlayerID)),
		slog.String("ship", kind.String()),
		slog.String("front", front.Label()),
		slog.String("rear", rear.Label()),
		slog.String("outcome", outcome.String()),
	)
	if outcome != model.PlacementPlaced {
		return outcome, nil
	}
	if err := s.storage.SaveBoard(ctx, board); err != nil {
		return outcome, err
	}
	return outcome, nil
}

// Shoot parses the target label and fires at the board
func (s *Service) Shoot(ctx context.Context, board *model.Board, label string) (model.ShotOutcome, model.Coordinate, error) {
	target, err := model.ParseCoordinate(strings.TrimSpace(label))
	if err != nil {
		return model.ShotOutOfBounds, model.Coordinate{}, err
	}
	outcome, err := s.ShootAt(ctx, board, target)
	return outcome, target, err
}

// ShootAt fires at the board at target
func (s *Service) ShootAt(ctx context.Context, board *model.Board, target model.Coordinate) (model.ShotOutcome, error) {
	outcome := board.RegisterShot(target)
	s.logger.Debug("shot registered",
		slog.String("game_id", string(board.GameID)),
		slog.String("player_id", string(board.PlayerID)),
		slog.String("target", target.Label()),
		slog.String("outcome", outcome.String()),
		slog.Int("live_segments", board.LiveSegments()),
	)
	if !outcome.ConsumesTurn() {
		return outcome, nil
	}
	if err := s.storage.SaveBoard(ctx, board); err != nil {
		return outcome, err
	}
	return outcome, nil
}

// AutoPlaceFleet places the whole fleet at random positions.
// The board must not have any ships yet. Layouts are planned on a scratch
// board so a failed search leaves the real board untouched.
func (s *Service) AutoPlaceFleet(ctx context.Context, board *model.Board) error {
	if len(board.Ships()) > 0 {
		return fmt.Errorf("%w: board already has ships", model.ErrWrongPhase)
	}

	layout, err := s.planFleet()
	if err != nil {
		s.logger.Warn("random fleet placement failed",
			slog.String("game_id", string(board.GameID)),
			slog.String("player_id", string(board.PlayerID)),
		)
		return err
	}

	for _, p := range layout {
		if outcome := board.PlaceShip(p.kind, p.front, p.rear); outcome != model.PlacementPlaced {
			return fmt.Errorf("%w: %s rejected as %s", model.ErrFleetPlacementFailed, p.kind, outcome)
		}
	}
	return s.storage.SaveBoard(ctx, board)
}

type placement struct {
	kind        model.ShipKind
	front, rear model.Coordinate
}

func (s *Service) planFleet() ([]placement, error) {
	scratch := model.NewBoard("", "", model.RepeatReject)
	layout := make([]placement, 0, len(model.Fleet()))
	attempts := 0

	for _, kind := range model.Fleet() {
		for {
			if attempts >= MaxFleetPlacementAttempts {
				return nil, model.ErrFleetPlacementFailed
			}
			attempts++

			front, rear := s.randomRun(kind.Length())
			if scratch.PlaceShip(kind, front, rear) == model.PlacementPlaced {
				layout = append(layout, placement{kind: kind, front: front, rear: rear})
				break
			}
		}
	}
	return layout, nil
}

// randomRun picks a straight run of the given length that fits on the grid
func (s *Service) randomRun(length int) (model.Coordinate, model.Coordinate) {
	if s.random.Bool() {
		row := s.random.Intn(model.GridSize)
		col := s.random.Intn(model.GridSize - length + 1)
		return model.Coordinate{Row: row, Col: col}, model.Coordinate{Row: row, Col: col + length - 1}
	}
	row := s.random.Intn(model.GridSize - length + 1)
	col := s.random.Intn(model.GridSize)
	return model.Coordinate{Row: row, Col: col}, model.Coordinate{Row: row + length - 1, Col: col}
}

// Interface for dependency injection
type ServiceInterface interface {
	CreateBoard(ctx context.Context, gameID model.GameID, playerID model.PlayerID, policy model.RepeatShotPolicy) (*model.Board, error)
	GetBoard(ctx context.Context, gameID model.GameID, playerID model.PlayerID) (*model.Board, error)
	GetBoardsForGame(ctx context.Context, gameID model.GameID) ([]*model.Board, error)
	NextShip(board *model.Board) (model.ShipKind, bool)
	PlaceShip(ctx context.Context, board *model.Board, kind model.ShipKind, input string) (model.PlacementOutcome, error)
	PlaceShipAt(ctx context.Context, board *model.Board, kind model.ShipKind, front, rear model.Coordinate) (model.PlacementOutcome, error)
	Shoot(ctx context.Context, board *model.Board, label string) (model.ShotOutcome, model.Coordinate, error)
	ShootAt(ctx context.Context, board *model.Board, target model.Coordinate) (model.ShotOutcome, error)
	AutoPlaceFleet(ctx context.Context, board *model.Board) error
}

var _ ServiceInterface = (*Service)(nil)
