package entity

// Level owns one run's course: the finish line and everything placed on it.
type Level struct {
	End      float64
	Complete bool

	Fuels     []*Item
	Shields   []*Item
	Asteroids []*Asteroid

	Elapsed float64
}

// MarkComplete sets Complete. It reports false if the level already was.
func (l *Level) MarkComplete() bool {
	if l.Complete {
		return false
	}
	l.Complete = true
	return true
}

// Progress is altitude y as a fraction of the course, clamped to [0, 1].
func (l *Level) Progress(y float64) float64 {
	if l.End <= 0 {
		return 1
	}
	return clamp(y/l.End, 0, 1)
}

// Items lists fuels then shields.
func (l *Level) Items() []*Item {
	items := make([]*Item, 0, len(l.Fuels)+len(l.Shields))
	items = append(items, l.Fuels...)
	return append(items, l.Shields...)
}
