package game

import (
	"gradquest/internal/combat"
	"gradquest/internal/rng"
)

// newCharacter creates the hero for a fresh run: full health, standing at
// the stage's home spot, holding a shuffled copy of the starter deck.
func newCharacter(b Balance, starter combat.Deck, r rng.Source) *combat.Player {
	deck := starter
	deck.Shuffle(r)
	return combat.NewPlayer(b.Combat, deck, b.Stage.PlayerHome())
}
