package combat

import "gradquest/internal/geom"

// PlayerState is the player's per-card cycle. It returns to PlayerIdle after
// every play.
type PlayerState int

const (
	PlayerIdle PlayerState = iota // waiting for input
	PlayerMovingToCenter
	PlayerActing
	PlayerReturning
	PlayerReturned
)

func (s PlayerState) String() string {
	return [...]string{"idle", "moving_to_center", "acting", "returning", "returned"}[s]
}

// Step results reported by actors.
type Event int

const (
	EventNone Event = iota
	EventArrived
	EventReturned
)

// Player is the run's hero: vitals, deck and battle position.
type Player struct {
	Vitals
	Deck   Deck
	State  PlayerState
	Motion Motion

	slot   int
	frames int
	timer  EventTimer
	tuning Tuning
}

// NewPlayer creates a player standing at home with the tuned starting health.
func NewPlayer(t Tuning, deck Deck, home geom.Vec2) *Player {
	return &Player{
		Vitals: Vitals{Health: t.PlayerHealth},
		Deck:   deck,
		Motion: Motion{Pos: home, Home: home, Target: home, Speed: t.Speed, Epsilon: t.Epsilon},
		timer:  EventTimer{Interval: t.FrameInterval},
		slot:   -1,
		tuning: t,
	}
}

// Use applies the shield and heal of c to the player and returns its damage.
func (p *Player) Use(c Card) int {
	if c.Shield > 0 {
		p.Shield += c.Shield
	}
	if c.Heal > 0 {
		p.Health += c.Heal
	}
	return c.Damage
}

// Slot is the deck slot of the card being played, or -1.
func (p *Player) Slot() int { return p.slot }

// PlayCard starts the approach to center with the card in slot.
func (p *Player) PlayCard(slot int, center geom.Vec2) {
	p.slot = slot
	p.State = PlayerMovingToCenter
	p.Motion.MoveTo(center)
}

// ReturnToPosition heads back after acting.
func (p *Player) ReturnToPosition() {
	p.State = PlayerReturning
	p.Motion.Return()
}

// Step advances the player dt seconds.
func (p *Player) Step(dt float64) Event {
	switch p.State {
	case PlayerMovingToCenter:
		if p.Motion.Step(dt) {
			p.State = PlayerActing
			p.frames = 0
			p.timer.Reset()
			return EventArrived
		}
	case PlayerActing:
		p.frames += p.timer.Advance(dt)
	case PlayerReturning:
		if p.Motion.Step(dt) {
			p.State = PlayerReturned
			return EventReturned
		}
	}
	return EventNone
}

// FinishedActing reports whether the acting animation has run its frames.
func (p *Player) FinishedActing() bool {
	return p.State == PlayerActing && p.frames >= p.tuning.PlayerActFrames
}

// SetBack puts the player at home, ready for the next card.
func (p *Player) SetBack() {
	p.State = PlayerIdle
	p.Motion.Pos = p.Motion.Home
	p.Motion.Target = p.Motion.Home
	p.slot = -1
}

// Reset abandons any play in progress and returns the player home.
func (p *Player) Reset() {
	p.SetBack()
	p.frames = 0
	p.timer.Reset()
}
