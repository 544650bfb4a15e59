package combat

import "gradquest/internal/geom"

// Motion walks an actor between its home spot and the centre of the screen.
type Motion struct {
	Pos     geom.Vec2
	Home    geom.Vec2
	Target  geom.Vec2
	Speed   float64
	Epsilon float64
}

// MoveTo remembers the current position as home and heads for target.
func (m *Motion) MoveTo(target geom.Vec2) {
	m.Home = m.Pos
	m.Target = target
}

// Return heads back home.
func (m *Motion) Return() {
	m.Target = m.Home
}

// Step advances dt seconds toward the target and reports arrival, which
// happens once the squared distance drops below Epsilon. A step long enough
// to pass the target lands on it.
func (m *Motion) Step(dt float64) bool {
	step := m.Speed * dt
	if step*step >= m.Pos.DistSq(m.Target) {
		m.Pos = m.Target
		return true
	}
	dir := m.Target.Sub(m.Pos).Normalize()
	m.Pos = m.Pos.Add(dir.Scale(m.Speed * dt))
	return m.Pos.DistSq(m.Target) < m.Epsilon
}

// EventTimer fires once per Interval of accumulated frame time.
type EventTimer struct {
	Interval float64
	acc      float64
}

// Advance adds dt and returns how many times the timer fired.
func (t *EventTimer) Advance(dt float64) int {
	t.acc += dt
	n := 0
	for t.acc >= t.Interval {
		t.acc -= t.Interval
		n++
	}
	return n
}

func (t *EventTimer) Reset() { t.acc = 0 }
