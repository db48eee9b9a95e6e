package platformer

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventJump EventKind = iota
	EventStomp
	EventHurt
	EventThorns
	EventFall
	EventDeath
	EventRespawn
	EventCollect
	EventLevelClear
	EventLevelStart
	EventGameOver
	EventVictory
	EventPause
	EventResume
	EventRestart
)

var eventNames = [...]string{
	EventJump:       "jump",
	EventStomp:      "stomp",
	EventHurt:       "hurt",
	EventThorns:     "thorns",
	EventFall:       "fall",
	EventDeath:      "death",
	EventRespawn:    "respawn",
	EventCollect:    "collect",
	EventLevelClear: "level_clear",
	EventLevelStart: "level_start",
	EventGameOver:   "game_over",
	EventVictory:    "victory",
	EventPause:      "pause",
	EventResume:     "resume",
	EventRestart:    "restart",
}

func (k EventKind) String() string {
	if k >= 0 && int(k) < len(eventNames) {
		return eventNames[k]
	}
	return "unknown"
}

// Event is emitted by Step. Points is the score change it caused, if any.
type Event struct {
	Kind   EventKind
	Tick   int
	Level  int
	Points int
}
