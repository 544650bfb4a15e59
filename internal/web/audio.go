package web

import (
	"sync"

	"gradquest/internal/present"
)

// maxQueuedSounds caps how many cues one page shows.
const maxQueuedSounds = 32

// soundLog is the Audio of a web run. Nothing plays server side; the sounds
// a request triggered are queued and handed to the next page as cues.
type soundLog struct {
	mu     sync.Mutex
	queued []present.Sound
}

func (l *soundLog) Play(id present.Sound) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.queued) == maxQueuedSounds {
		l.queued = l.queued[1:]
	}
	l.queued = append(l.queued, id)
}

func (l *soundLog) BeginFrame() {}

// Drain returns the queued sound names in play order and empties the queue.
func (l *soundLog) Drain() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.queued))
	for i, s := range l.queued {
		out[i] = s.String()
	}
	l.queued = l.queued[:0]
	return out
}
