package game

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/mcoot/battleship-go/internal/dependencies/clock"
	"github.com/mcoot/battleship-go/internal/events"
	"github.com/mcoot/battleship-go/internal/model"
	"github.com/mcoot/battleship-go/internal/services/board"
	"github.com/mcoot/battleship-go/internal/storage"
)

// ShotResult describes a resolved shot
type ShotResult struct {
	Shooter      model.PlayerID
	TargetPlayer model.PlayerID
	Target       model.Coordinate
	Outcome      model.ShotOutcome
	Repeat       bool // the cell had already been resolved before this shot
}

// Controller manages the game state machine and turn flow
type Controller struct {
	storage      storage.Storage
	boardService *board.Service
	publisher    events.Publisher
	clock        clock.Clock
	logger       *slog.Logger
}

// NewController creates a new GameController
func NewController(
	storage storage.Storage,
	boardService *board.Service,
	publisher events.Publisher,
	clock clock.Clock,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:      storage,
		boardService: boardService,
		publisher:    publisher,
		clock:        clock,
		logger:       logger,
	}
}

// CreateGame initializes a new game for one or two players.
// A single player gets a practice game against their own fleet.
func (c *Controller) CreateGame(ctx context.Context, players []model.PlayerID, policy model.RepeatShotPolicy) (*model.Game, error) {
	if len(players) == 0 {
		return nil, model.ErrInsufficientPlayers
	}
	if len(players) > model.MaxPlayers {
		return nil, model.ErrTooManyPlayers
	}
	seen := make(map[model.PlayerID]bool, len(players))
	for _, p := range players {
		if p == "" {
			return nil, model.ErrPlayerNotFound
		}
		if seen[p] {
			return nil, model.ErrDuplicatePlayer
		}
		seen[p] = true
	}
	if policy == "" {
		policy = model.RepeatReject
	}

	now := c.clock.Now()
	game := &model.Game{
		ID:           model.GameID(uuid.NewString()),
		State:        model.GameStatePlacing,
		Players:      append([]model.PlayerID(nil), players...),
		RepeatPolicy: policy,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// Create boards for all players
	for _, playerID := range game.Players {
		if _, err := c.boardService.CreateBoard(ctx, game.ID, playerID, policy); err != nil {
			return nil, err
		}
	}

	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("game created",
		slog.String("game_id", string(game.ID)),
		slog.Int("player_count", len(game.Players)),
		slog.String("repeat_shots", string(policy)),
	)
	c.publish(game.ID, "", model.EventGameCreated, model.GameCreatedPayload{Players: game.Players})

	return game, nil
}

// GetGame retrieves a game by ID
func (c *Controller) GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	return c.storage.GetGame(ctx, gameID)
}

// ListGames returns every game held in storage, oldest first
func (c *Controller) ListGames(ctx context.Context) ([]*model.Game, error) {
	return c.storage.ListGames(ctx)
}

// Board returns the player's own board
func (c *Controller) Board(ctx context.Context, gameID model.GameID, playerID model.PlayerID) (*model.Board, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if !game.HasPlayer(playerID) {
		return nil, model.ErrPlayerNotFound
	}
	return c.boardService.GetBoard(ctx, gameID, playerID)
}

// TargetBoard returns the board the player fires at
func (c *Controller) TargetBoard(ctx context.Context, gameID model.GameID, playerID model.PlayerID) (*model.Board, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if !game.HasPlayer(playerID) {
		return nil, model.ErrPlayerNotFound
	}
	return c.boardService.GetBoard(ctx, gameID, game.Opponent(playerID))
}

// NextShip returns the next ship the player must place, or false once their
// fleet is complete
func (c *Controller) NextShip(ctx context.Context, gameID model.GameID, playerID model.PlayerID) (model.ShipKind, bool, error) {
	boardObj, err := c.Board(ctx, gameID, playerID)
	if err != nil {
		return 0, false, err
	}
	kind, ok := c.boardService.NextShip(boardObj)
	return kind, ok, nil
}

// PlaceShip places the player's next ship from "FRONT REAR" input.
// Input errors are returned as errors, engine rejections as outcomes.
func (c *Controller) PlaceShip(ctx context.Context, gameID model.GameID, playerID model.PlayerID, input string) (model.PlacementOutcome, error) {
	game, boardObj, err := c.placementContext(ctx, gameID, playerID)
	if err != nil {
		return model.PlacementOutOfBounds, err
	}

	kind, ok := c.boardService.NextShip(boardObj)
	if !ok {
		return model.PlacementOutOfBounds, model.ErrFleetComplete
	}

	outcome, err := c.boardService.PlaceShip(ctx, boardObj, kind, input)
	if err != nil || outcome != model.PlacementPlaced {
		return outcome, err
	}

	c.publishShipPlaced(game.ID, playerID, boardObj.Ships()[len(boardObj.Ships())-1])

	if err := c.startShootingIfReady(ctx, game); err != nil {
		return outcome, err
	}
	return outcome, nil
}

// AutoPlace places the player's whole fleet at random
func (c *Controller) AutoPlace(ctx context.Context, gameID model.GameID, playerID model.PlayerID) error {
	game, boardObj, err := c.placementContext(ctx, gameID, playerID)
	if err != nil {
		return err
	}

	if err := c.boardService.AutoPlaceFleet(ctx, boardObj); err != nil {
		return err
	}
	for _, ship := range boardObj.Ships() {
		c.publishShipPlaced(game.ID, playerID, ship)
	}

	return c.startShootingIfReady(ctx, game)
}

func (c *Controller) placementContext(ctx context.Context, gameID model.GameID, playerID model.PlayerID) (*model.Game, *model.Board, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, nil, err
	}
	if err := checkNotFinished(game); err != nil {
		return nil, nil, err
	}
	if game.State != model.GameStatePlacing {
		return nil, nil, model.ErrWrongPhase
	}
	if !game.HasPlayer(playerID) {
		return nil, nil, model.ErrPlayerNotFound
	}

	boardObj, err := c.boardService.GetBoard(ctx, gameID, playerID)
	if err != nil {
		return nil, nil, err
	}
	return game, boardObj, nil
}

// startShootingIfReady moves the game into the shooting phase once every
// fleet is complete
func (c *Controller) startShootingIfReady(ctx context.Context, game *model.Game) error {
	boards, err := c.boardService.GetBoardsForGame(ctx, game.ID)
	if err != nil {
		return err
	}
	for _, b := range boards {
		if _, pending := c.boardService.NextShip(b); pending {
			return nil
		}
	}

	game.State = model.GameStateShooting
	game.CurrentTurn = 0
	game.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveGame(ctx, game); err != nil {
		return err
	}

	c.logger.Info("placement complete",
		slog.String("game_id", string(game.ID)),
		slog.String("first_player", string(game.CurrentPlayer())),
	)
	c.publish(game.ID, "", model.EventPlacementComplete, nil)
	return nil
}

// Shoot fires the player's shot at the opponent's board.
// OutOfBounds and AlreadyTaken outcomes leave the turn with the shooter;
// every other outcome passes it, and Win completes the game.
func (c *Controller) Shoot(ctx context.Context, gameID model.GameID, playerID model.PlayerID, label string) (*ShotResult, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if err := checkNotFinished(game); err != nil {
		return nil, err
	}
	if game.State != model.GameStateShooting {
		return nil, model.ErrWrongPhase
	}
	if !game.HasPlayer(playerID) {
		return nil, model.ErrPlayerNotFound
	}
	if game.CurrentPlayer() != playerID {
		return nil, model.ErrNotPlayerTurn
	}

	target, err := model.ParseCoordinate(strings.TrimSpace(label))
	if err != nil {
		return nil, err
	}

	targetPlayer := game.Opponent(playerID)
	targetBoard, err := c.boardService.GetBoard(ctx, gameID, targetPlayer)
	if err != nil {
		return nil, err
	}

	result := &ShotResult{
		Shooter:      playerID,
		TargetPlayer: targetPlayer,
		Target:       target,
		Repeat:       targetBoard.CellStateAt(target).IsResolved(),
	}
	result.Outcome, err = c.boardService.ShootAt(ctx, targetBoard, target)
	if err != nil {
		return nil, err
	}
	if !result.Outcome.ConsumesTurn() {
		return result, nil
	}

	game.ShotsFired++
	game.UpdatedAt = c.clock.Now()
	c.publish(gameID, playerID, model.EventShotFired, model.ShotFiredPayload{
		TargetPlayer: targetPlayer,
		Target:       target,
		Outcome:      result.Outcome,
	})

	sunk := result.Outcome == model.ShotSank || result.Outcome == model.ShotWin
	if sunk && !result.Repeat {
		if ship := targetBoard.ShipAt(target); ship != nil {
			c.publish(gameID, playerID, model.EventShipSunk, model.ShipSunkPayload{
				TargetPlayer: targetPlayer,
				Kind:         ship.Kind,
			})
		}
	}

	if result.Outcome == model.ShotWin {
		game.State = model.GameStateComplete
		game.Winner = playerID
		c.logger.Info("game completed",
			slog.String("game_id", string(gameID)),
			slog.String("winner", string(playerID)),
			slog.Int("shots_fired", game.ShotsFired),
		)
	} else {
		game.PassTurn()
	}

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	if game.State == model.GameStateComplete {
		c.publish(gameID, playerID, model.EventGameWon, model.GameWonPayload{
			Winner:     playerID,
			ShotsFired: game.ShotsFired,
		})
	}
	return result, nil
}

// AbandonGame ends a game prematurely
func (c *Controller) AbandonGame(ctx context.Context, gameID model.GameID, reason string) error {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return err
	}

	if game.IsFinished() {
		return nil // Already finished
	}

	game.State = model.GameStateAbandoned
	game.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveGame(ctx, game); err != nil {
		return err
	}

	c.logger.Info("game abandoned",
		slog.String("game_id", string(gameID)),
		slog.String("reason", reason),
	)
	c.publish(gameID, "", model.EventGameAbandoned, model.GameAbandonedPayload{Reason: reason})
	return nil
}

// RemoveGame deletes a finished game and its boards
func (c *Controller) RemoveGame(ctx context.Context, gameID model.GameID) error {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return err
	}
	if !game.IsFinished() {
		return model.ErrWrongPhase
	}

	if err := c.storage.DeleteBoardsForGame(ctx, gameID); err != nil {
		return err
	}
	if err := c.storage.DeleteGame(ctx, gameID); err != nil {
		return err
	}

	c.logger.Debug("game removed", slog.String("game_id", string(gameID)))
	return nil
}

// CreateGameSummary creates a summary record for a completed game
func (c *Controller) CreateGameSummary(ctx context.Context, gameID model.GameID) (*model.GameSummary, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game.State != model.GameStateComplete {
		return nil, model.ErrWrongPhase
	}

	return &model.GameSummary{
		ID:          gameID,
		Winner:      game.Winner,
		ShotsFired:  game.ShotsFired,
		CompletedAt: game.UpdatedAt,
	}, nil
}

func checkNotFinished(game *model.Game) error {
	switch game.State {
	case model.GameStateComplete:
		return model.ErrGameComplete
	case model.GameStateAbandoned:
		return model.ErrGameAbandoned
	}
	return nil
}

func (c *Controller) publishShipPlaced(gameID model.GameID, playerID model.PlayerID, ship *model.Ship) {
	c.publish(gameID, playerID, model.EventShipPlaced, model.ShipPlacedPayload{
		Kind:  ship.Kind,
		Front: ship.Squares[0],
		Rear:  ship.Squares[len(ship.Squares)-1],
	})
}

func (c *Controller) publish(gameID model.GameID, playerID model.PlayerID, eventType model.EventType, payload any) {
	if c.publisher == nil {
		return
	}
	c.publisher.Publish(model.Event{
		Type:      eventType,
		Timestamp: c.clock.Now(),
		GameID:    gameID,
		PlayerID:  playerID,
		Payload:   payload,
	})
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateGame(ctx context.Context, players []model.PlayerID, policy model.RepeatShotPolicy) (*model.Game, error)
	GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error)
	ListGames(ctx context.Context) ([]*model.Game, error)
	Board(ctx context.Context, gameID model.GameID, playerID model.PlayerID) (*model.Board, error)
	TargetBoard(ctx context.Context, gameID model.GameID, playerID model.PlayerID) (*model.Board, error)
	NextShip(ctx context.Context, gameID model.GameID, playerID model.PlayerID) (model.ShipKind, bool, error)
	PlaceShip(ctx context.Context, gameID model.GameID, playerID model.PlayerID, input string) (model.PlacementOutcome, error)
	AutoPlace(ctx context.Context, gameID model.GameID, playerID model.PlayerID) error
	RemoveGame(ctx context.Context, gameID model.GameID) error
	Shoot(ctx context.Context, gameID model.GameID, playerID model.PlayerID, label string) (*ShotResult, error)
	AbandonGame(ctx context.Context, gameID model.GameID, reason string) error
	CreateGameSummary(ctx context.Context, gameID model.GameID) (*model.GameSummary, error)
}

var _ ControllerInterface = (*Controller)(nil)
