package blockfall

// EventKind names a piece of feedback the engine emits for audio, effects
// and the HUD.
type EventKind int

const (
	EventMove        EventKind = iota + 1 // piece shifted sideways
	EventRotate                           // rotation committed
	EventDrop                             // piece touched down and became grounded
	EventHardDrop                         // piece slammed to rest
	EventLock                             // piece merged into the board
	EventCellCleared                      // one cell of a completed row; X, Y, Color set
	EventClear                            // 1-3 rows cleared; Count set
	EventMajorClear                       // 4 rows cleared; Count set
	EventLevelUp                          // Count holds the new level
	EventGarbage                          // Count rows pushed up from the bottom
	EventGameOver                         // Score holds the final score
	EventStats                            // score, level or lines changed; Stats set
)

var eventNames = map[EventKind]string{
	EventMove:        "move",
	EventRotate:      "rotate",
	EventDrop:        "drop",
	EventHardDrop:    "hardDrop",
	EventLock:        "lock",
	EventCellCleared: "cellCleared",
	EventClear:       "clear",
	EventMajorClear:  "majorClear",
	EventLevelUp:     "levelUp",
	EventGarbage:     "garbage",
	EventGameOver:    "gameOver",
	EventStats:       "stats",
}

func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return "unknown"
}

// Stats is the HUD view of progression.
type Stats struct {
	Score int
	Level int
	Lines int
}

// Event is a single feedback record. Only the fields relevant to Kind are
// set.
type Event struct {
	Kind  EventKind
	X, Y  int
	Color uint8
	Count int
	Score int
	Stats Stats
}
