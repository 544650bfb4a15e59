package rng

// Script is a Source that replays queued values. Each value is clamped into
// the requested range; once the queue is empty every draw returns lo.
// Shuffle leaves the sequence untouched.
type Script struct {
	values []int
	draws  int
}

// NewScript queues values for successive Intn calls.
func NewScript(values ...int) *Script {
	return &Script{values: values}
}

func (s *Script) Intn(lo, hi int) int {
	checkRange(lo, hi)
	s.draws++
	if len(s.values) == 0 {
		return lo
	}
	v := s.values[0]
	s.values = s.values[1:]
	return min(max(v, lo), hi)
}

func (s *Script) Shuffle(int, func(i, j int)) {}

// Push appends more values to the queue.
func (s *Script) Push(values ...int) {
	s.values = append(s.values, values...)
}

// Draws is the number of Intn calls served so far.
func (s *Script) Draws() int { return s.draws }
