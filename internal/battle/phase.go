package battle

import "fmt"

// Phase is where a battle stands. Exactly one of the types below.
type Phase interface {
	isPhase()
	fmt.Stringer
}

// AwaitingCard waits for the player to pick a card from the hand.
type AwaitingCard struct{}

// AwaitingTarget holds the picked card until the player confirms a target.
type AwaitingTarget struct{ Slot int }

// PlayerActing is the player's approach and card animation. Target is the
// enemy index, or -1 for a card the player plays on themselves.
type PlayerActing struct{ Slot, Target int }

// PlayerReturning walks the player home after a card resolved.
type PlayerReturning struct{ Slot int }

// EnemyActing is enemy Enemy's turn.
type EnemyActing struct{ Enemy int }

// Victory means every enemy is gone.
type Victory struct{}

// Defeat means the player died.
type Defeat struct{}

func (AwaitingCard) isPhase()    {}
func (AwaitingTarget) isPhase()  {}
func (PlayerActing) isPhase()    {}
func (PlayerReturning) isPhase() {}
func (EnemyActing) isPhase()     {}
func (Victory) isPhase()         {}
func (Defeat) isPhase()          {}

func (AwaitingCard) String() string      { return "awaiting_card" }
func (p AwaitingTarget) String() string  { return fmt.Sprintf("awaiting_target(%d)", p.Slot) }
func (p PlayerActing) String() string    { return fmt.Sprintf("player_acting(%d->%d)", p.Slot, p.Target) }
func (p PlayerReturning) String() string { return fmt.Sprintf("player_returning(%d)", p.Slot) }
func (p EnemyActing) String() string     { return fmt.Sprintf("enemy_acting(%d)", p.Enemy) }
func (Victory) String() string           { return "victory" }
func (Defeat) String() string            { return "defeat" }

// Outcome is the result of a battle.
type Outcome int

const (
	Ongoing Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	return [...]string{"ongoing", "won", "lost"}[o]
}
