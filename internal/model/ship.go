package model

// ShipKind is one of the five classes of vessel in a fleet
type ShipKind int

const (
	AircraftCarrier ShipKind = iota
	Battleship
	Submarine
	Cruiser
	Destroyer
)

type shipClass struct {
	length int
	name   string
	slug   string
}

var shipClasses = map[ShipKind]shipClass{
	AircraftCarrier: {length: 5, name: "Aircraft Carrier", slug: "aircraft_carrier"},
	Battleship:      {length: 4, name: "Battleship", slug: "battleship"},
	Submarine:       {length: 3, name: "Submarine", slug: "submarine"},
	Cruiser:         {length: 3, name: "Cruiser", slug: "cruiser"},
	Destroyer:       {length: 2, name: "Destroyer", slug: "destroyer"},
}

// Fleet returns the ship kinds in the order they are placed
func Fleet() []ShipKind {
	return []ShipKind{AircraftCarrier, Battleship, Submarine, Cruiser, Destroyer}
}

// FleetSegments is the total number of cells occupied by a full fleet
func FleetSegments() int {
	total := 0
	for _, kind := range Fleet() {
		total += kind.Length()
	}
	return total
}

// Length returns the number of segments a ship of this kind occupies
func (k ShipKind) Length() int {
	return shipClasses[k].length
}

// DisplayName returns the human-readable class name
func (k ShipKind) DisplayName() string {
	if c, ok := shipClasses[k]; ok {
		return c.name
	}
	return "Unknown"
}

// String returns a stable identifier suitable for logs and JSON
func (k ShipKind) String() string {
	if c, ok := shipClasses[k]; ok {
		return c.slug
	}
	return "unknown"
}

// Valid returns true if k is one of the five fleet classes
func (k ShipKind) Valid() bool {
	_, ok := shipClasses[k]
	return ok
}

// Ship is a placed vessel tracking which of its segments are still intact
type Ship struct {
	Kind      ShipKind
	Squares   []Coordinate // occupied cells, in run order
	remaining map[Coordinate]struct{}
}

func newShip(kind ShipKind, run []Coordinate) *Ship {
	squares := make([]Coordinate, len(run))
	copy(squares, run)
	remaining := make(map[Coordinate]struct{}, len(run))
	for _, c := range run {
		remaining[c] = struct{}{}
	}
	return &Ship{
		Kind:      kind,
		Squares:   squares,
		remaining: remaining,
	}
}

// IsAlive returns true while at least one segment is intact
func (s *Ship) IsAlive() bool {
	return len(s.remaining) > 0
}

// Remaining returns the number of intact segments
func (s *Ship) Remaining() int {
	return len(s.remaining)
}

// Occupies returns true if the ship was placed over c
func (s *Ship) Occupies(c Coordinate) bool {
	for _, sq := range s.Squares {
		if sq == c {
			return true
		}
	}
	return false
}

// IsIntact returns true if the segment at c has not been destroyed
func (s *Ship) IsIntact(c Coordinate) bool {
	_, ok := s.remaining[c]
	return ok
}

// destroy removes c from the intact segments, reporting whether it was intact
func (s *Ship) destroy(c Coordinate) bool {
	if _, ok := s.remaining[c]; !ok {
		return false
	}
	delete(s.remaining, c)
	return true
}
