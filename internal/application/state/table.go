package state

// Transition is one edge of the scene graph.
type Transition struct {
	To GameState
	// Fade switches behind a full fade instead of on the next frame.
	Fade bool
	// NewRun rebuilds the player and level before To is entered.
	NewRun bool
}

type key struct {
	from  GameState
	event Event
}

// Table maps (state, event) to the transition to take.
type Table struct {
	edges map[key]Transition
}

// NewTable builds the scene graph. Without the crawl, Title confirms
// straight into a new run.
func NewTable(withCrawl bool) *Table {
	t := &Table{edges: make(map[key]Transition)}

	if withCrawl {
		t.add(StateTitle, EventConfirm, Transition{To: StateCrawl, Fade: true})
		t.add(StateCrawl, EventConfirm, Transition{To: StateLevel, Fade: true, NewRun: true})
		t.add(StateCrawl, EventCrawlDone, Transition{To: StateLevel, Fade: true, NewRun: true})
	} else {
		t.add(StateTitle, EventConfirm, Transition{To: StateLevel, Fade: true, NewRun: true})
	}

	t.add(StateLevel, EventLose, Transition{To: StateGameOver, Fade: true})
	t.add(StateLevel, EventWin, Transition{To: StateVictory, Fade: true})
	t.add(StateLevel, EventPause, Transition{To: StatePaused})

	t.add(StatePaused, EventPause, Transition{To: StateLevel})
	t.add(StatePaused, EventConfirm, Transition{To: StateTitle, Fade: true})

	t.add(StateGameOver, EventConfirm, Transition{To: StateTitle, Fade: true})
	t.add(StateVictory, EventConfirm, Transition{To: StateTitle, Fade: true})

	return t
}

func (t *Table) add(from GameState, e Event, tr Transition) {
	t.edges[key{from, e}] = tr
}

// Next looks up the transition for e in state from.
func (t *Table) Next(from GameState, e Event) (Transition, bool) {
	if e == EventNone {
		return Transition{}, false
	}
	tr, ok := t.edges[key{from, e}]
	return tr, ok
}
