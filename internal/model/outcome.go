package model

// PlacementOutcome is the result of trying to put a ship on a board
type PlacementOutcome int

const (
	PlacementOutOfBounds PlacementOutcome = iota
	PlacementTooClose
	PlacementPlaced
)

func (o PlacementOutcome) String() string {
	switch o {
	case PlacementOutOfBounds:
		return "out_of_bounds"
	case PlacementTooClose:
		return "too_close"
	case PlacementPlaced:
		return "placed"
	default:
		return "unknown"
	}
}

// ShotOutcome is the result of firing at a board
type ShotOutcome int

const (
	ShotOutOfBounds ShotOutcome = iota
	ShotMiss
	ShotHit
	ShotSank
	ShotWin
	ShotAlreadyTaken // repeat shot under RepeatReject
)

func (o ShotOutcome) String() string {
	switch o {
	case ShotOutOfBounds:
		return "out_of_bounds"
	case ShotMiss:
		return "miss"
	case ShotHit:
		return "hit"
	case ShotSank:
		return "sank"
	case ShotWin:
		return "win"
	case ShotAlreadyTaken:
		return "already_taken"
	default:
		return "unknown"
	}
}

// IsHit returns true for outcomes that destroyed a ship segment
func (o ShotOutcome) IsHit() bool {
	return o == ShotHit || o == ShotSank || o == ShotWin
}

// ConsumesTurn returns true when the shot counts as the player's move
func (o ShotOutcome) ConsumesTurn() bool {
	return o == ShotMiss || o.IsHit()
}

// RepeatShotPolicy decides how a board answers a shot at a resolved cell
type RepeatShotPolicy string

const (
	// RepeatReject answers ShotAlreadyTaken and changes nothing
	RepeatReject RepeatShotPolicy = "reject"
	// RepeatReplay answers with the outcome of the cell's first shot
	RepeatReplay RepeatShotPolicy = "replay"
)

// ParseRepeatShotPolicy validates a policy name
func ParseRepeatShotPolicy(s string) (RepeatShotPolicy, error) {
	switch RepeatShotPolicy(s) {
	case RepeatReject, RepeatReplay:
		return RepeatShotPolicy(s), nil
	case "":
		return RepeatReject, nil
	default:
		return "", ErrInvalidRepeatPolicy
	}
}
