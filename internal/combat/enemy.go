package combat

import (
	"gradquest/internal/geom"
	"gradquest/internal/rng"
)

// EnemyState is an enemy's per-turn cycle.
type EnemyState int

const (
	EnemyInPosition EnemyState = iota
	EnemyMovingToCenter
	EnemyPlayingCard
	EnemyReturning
	EnemyReturned
)

func (s EnemyState) String() string {
	return [...]string{"in_position", "moving_to_center", "playing_card", "returning", "returned"}[s]
}

// Archetype selects how an enemy attacks.
type Archetype int

const (
	// Homework is steady single-target damage.
	Homework Archetype = iota
	// Lame hits a little harder; bosses always use it.
	Lame
)

func (a Archetype) String() string {
	if a == Lame {
		return "lame"
	}
	return "homework"
}

// EnemyCardType is what an enemy does on its turn.
type EnemyCardType int

const (
	EnemyAttack EnemyCardType = iota
	EnemyHeal
)

// EnemyCard is an enemy's chosen action for one turn.
type EnemyCard struct {
	Type  EnemyCardType
	Value int
}

type Enemy struct {
	Vitals
	State     EnemyState
	Archetype Archetype
	Boss      bool
	Scale     float64
	Motion    Motion
	Next      EnemyCard

	acting float64
	tuning Tuning
}

// NewEnemy creates a regular enemy standing at pos.
func NewEnemy(t Tuning, pos geom.Vec2) *Enemy {
	return &Enemy{
		Vitals:    Vitals{Health: t.EnemyHealth},
		Archetype: Homework,
		Scale:     1,
		Motion:    Motion{Pos: pos, Home: pos, Target: pos, Speed: t.Speed, Epsilon: t.Epsilon},
		tuning:    t,
	}
}

// MakeBoss turns the enemy into the final-layer boss.
func (e *Enemy) MakeBoss() {
	e.Boss = true
	e.Archetype = Lame
	e.Scale = e.tuning.BossScale
	e.Health = e.tuning.BossHealth
}

// Heal adds amount to health with no upper bound.
func (e *Enemy) Heal(amount int) {
	e.Health += amount
}

// Decide picks this turn's action: a hurt enemy usually heals, anything
// else attacks with its archetype.
func (e *Enemy) Decide(r rng.Source) EnemyCard {
	t := e.tuning
	if e.Health < t.LowHealth && r.Intn(1, 10) <= t.HealChance {
		return EnemyCard{Type: EnemyHeal, Value: t.HealBase + r.Intn(t.HealJitter.Min, t.HealJitter.Max)}
	}
	a := t.Homework
	if e.Archetype == Lame {
		a = t.Lame
	}
	return EnemyCard{Type: EnemyAttack, Value: a.Base + r.Intn(a.Jitter.Min, a.Jitter.Max)}
}

// PlayCard starts the approach to center.
func (e *Enemy) PlayCard(center geom.Vec2) {
	e.State = EnemyMovingToCenter
	e.Motion.MoveTo(center)
}

// ReturnToPosition heads back after acting.
func (e *Enemy) ReturnToPosition() {
	e.State = EnemyReturning
	e.Motion.Return()
}

// Step advances the enemy dt seconds. On arrival the enemy decides its card.
func (e *Enemy) Step(dt float64, r rng.Source) Event {
	switch e.State {
	case EnemyMovingToCenter:
		if e.Motion.Step(dt) {
			e.State = EnemyPlayingCard
			e.acting = 0
			e.Next = e.Decide(r)
			return EventArrived
		}
	case EnemyPlayingCard:
		e.acting += dt
	case EnemyReturning:
		if e.Motion.Step(dt) {
			e.State = EnemyReturned
			return EventReturned
		}
	}
	return EventNone
}

// FinishedActing reports whether the enemy has played its card long enough.
func (e *Enemy) FinishedActing() bool {
	return e.State == EnemyPlayingCard && e.acting >= e.tuning.EnemyActSeconds
}

// SetBack readies the enemy for its next turn.
func (e *Enemy) SetBack() {
	e.State = EnemyInPosition
}

// Kill drops health to zero.
func (e *Enemy) Kill() {
	e.Health = 0
}
