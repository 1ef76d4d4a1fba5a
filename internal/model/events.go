package model

import "time"

// EventType identifies the type of event
type EventType string

const (
	EventGameCreated       EventType = "game_created"
	EventShipPlaced        EventType = "ship_placed"
	EventPlacementComplete EventType = "placement_complete"
	EventShotFired         EventType = "shot_fired"
	EventShipSunk          EventType = "ship_sunk"
	EventGameWon           EventType = "game_won"
	EventGameAbandoned     EventType = "game_abandoned"
)

// Event is the base structure for all events
type Event struct {
	Type      EventType
	Timestamp time.Time
	GameID    GameID
	PlayerID  PlayerID // The player who triggered the event
	Payload   any      // Type-specific data
}

// GameCreatedPayload contains data for game created events
type GameCreatedPayload struct {
	Players []PlayerID
}

// ShipPlacedPayload contains data for ship placed events
type ShipPlacedPayload struct {
	Kind  ShipKind
	Front Coordinate
	Rear  Coordinate
}

// ShotFiredPayload contains data for shot fired events
type ShotFiredPayload struct {
	TargetPlayer PlayerID
	Target       Coordinate
	Outcome      ShotOutcome
}

// ShipSunkPayload contains data for ship sunk events
type ShipSunkPayload struct {
	TargetPlayer PlayerID
	Kind         ShipKind
}

// GameWonPayload contains data for game won events
type GameWonPayload struct {
	Winner     PlayerID
	ShotsFired int
}

// GameAbandonedPayload contains data for game abandoned events
type GameAbandonedPayload struct {
	Reason string
}
