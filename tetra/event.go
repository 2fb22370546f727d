package tetra

// EventType classifies an Event.
type EventType uint8

const (
	// EventSpawned: a new piece of Kind entered the field; Cells are its absolute cells.
	EventSpawned EventType = iota
	// EventLocked: a piece of Kind was committed to the grid at Cells.
	EventLocked
	// EventLinesCleared: Count rows were removed; Rows are their indices before removal.
	EventLinesCleared
	// EventGameOver: a piece of Kind could not spawn at Cells.
	EventGameOver
)

func (t EventType) String() string {
	switch t {
	case EventSpawned:
		return "spawned"
	case EventLocked:
		return "locked"
	case EventLinesCleared:
		return "lines_cleared"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is an observable side effect of a Board operation.
type Event struct {
	Type  EventType
	Kind  Kind
	Cells [4]Vec
	Rows  []int
	Count int
}
