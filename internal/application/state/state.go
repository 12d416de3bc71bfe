package state

// GameState represents the current state of the game
type GameState int

const (
	StateTitle GameState = iota
	StateCrawl
	StateLevel
	StatePaused
	StateGameOver
	StateVictory
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateTitle:
		return "Title"
	case StateCrawl:
		return "Crawl"
	case StateLevel:
		return "Level"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	case StateVictory:
		return "Victory"
	default:
		return "Unknown"
	}
}

// Event is what a scene reports back after its update.
type Event int

const (
	EventNone Event = iota
	EventConfirm
	EventPause
	EventLose
	EventWin
	EventCrawlDone
)

func (e Event) String() string {
	switch e {
	case EventNone:
		return "None"
	case EventConfirm:
		return "Confirm"
	case EventPause:
		return "Pause"
	case EventLose:
		return "Lose"
	case EventWin:
		return "Win"
	case EventCrawlDone:
		return "CrawlDone"
	default:
		return "Unknown"
	}
}
