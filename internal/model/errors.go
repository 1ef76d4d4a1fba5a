package model

import "errors"

// Common errors used across the application
var (
	// Input errors
	ErrInvalidCoordinate     = errors.New("invalid coordinate")
	ErrInvalidPlacementInput = errors.New("placement needs exactly two coordinates")
	ErrShipNotAligned        = errors.New("ship must lie on a single row or column")
	ErrShipLengthMismatch    = errors.New("ship length does not match its class")
	ErrInvalidRepeatPolicy   = errors.New("repeat shot policy must be 'reject' or 'replay'")

	// Placement errors
	ErrFleetComplete        = errors.New("all ships have already been placed")
	ErrFleetPlacementFailed = errors.New("failed to place fleet")

	// Game errors
	ErrGameNotFound        = errors.New("game not found")
	ErrPlayerNotFound      = errors.New("player not found")
	ErrInsufficientPlayers = errors.New("insufficient players to start game")
	ErrTooManyPlayers      = errors.New("too many players for one game")
	ErrDuplicatePlayer     = errors.New("player is already seated")
	ErrNotPlayerTurn       = errors.New("not this player's turn")
	ErrWrongPhase          = errors.New("action not allowed in this phase")
	ErrGameComplete        = errors.New("game is already complete")
	ErrGameAbandoned       = errors.New("game has been abandoned")

	// Board errors
	ErrBoardNotFound = errors.New("board not found")
)
