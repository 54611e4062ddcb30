package navigator

import "fmt"

// Direction names the adjacent user a boundary asks for.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionNext
	DirectionPrevious
)

func (d Direction) String() string {
	switch d {
	case DirectionNext:
		return "next"
	case DirectionPrevious:
		return "previous"
	default:
		return "none"
	}
}

func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(text []byte) error {
	switch string(text) {
	case "next":
		*d = DirectionNext
	case "previous":
		*d = DirectionPrevious
	case "none", "":
		*d = DirectionNone
	default:
		return fmt.Errorf("unknown direction %q", text)
	}
	return nil
}

// Arrival is how the controller came to show its current user.
type Arrival int

const (
	// ArrivalInitial resumes at the persisted last viewed index.
	ArrivalInitial Arrival = iota
	// ArrivalNext follows a forward boundary and starts at the first image.
	ArrivalNext
	// ArrivalPrevious follows a backward boundary and starts at the last image.
	ArrivalPrevious
	// ArrivalSwipe is a drag to the adjacent user; it starts at the first image.
	ArrivalSwipe
)

// BoundaryEvent asks the host to move to the adjacent user.
// Seed identifies the seeding that produced it; hosts drop events whose seed is stale.
type BoundaryEvent struct {
	Direction Direction
	UserID    int
	Seed      uint64
}
