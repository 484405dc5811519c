package timeline

// Set is an ordered collection of timelines owned by one entity. Timelines are advanced in the order
// they were added so that callbacks always run in a deterministic sequence.
type Set struct {
	timelines []*Timeline
}

// Add adds a timeline to the set and returns it.
func (s *Set) Add(t *Timeline) *Timeline {
	s.timelines = append(s.timelines, t)
	return t
}

// Delay adds a timeline with no update callback that calls f once it has played for the duration
// passed. It is a one-shot timer: call PlayFromStart on the returned timeline to (re)arm it.
func (s *Set) Delay(name string, duration float32, f func()) *Timeline {
	return s.Add(New(name, duration).OnFinished(f))
}

// Tick advances every timeline in the set by dt seconds.
func (s *Set) Tick(dt float32) {
	for _, t := range s.timelines {
		t.Tick(dt)
	}
}

// StopAll stops every timeline in the set, leaving their positions untouched.
func (s *Set) StopAll() {
	for _, t := range s.timelines {
		t.Stop()
	}
}

// Playing returns the names of the timelines currently playing.
func (s *Set) Playing() []string {
	var names []string
	for _, t := range s.timelines {
		if t.playing {
			names = append(names, t.name)
		}
	}
	return names
}

// Len ...
func (s *Set) Len() int {
	return len(s.timelines)
}
