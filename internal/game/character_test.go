package game

import (
	"testing"

	"gradquest/internal/combat"
	"gradquest/internal/geom"
	"gradquest/internal/rng"
)

func TestNewCharacter(t *testing.T) {
	b := DefaultBalance()
	starter, err := combat.NewDeck(b.Combat.StarterDeck)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	p := newCharacter(b, starter, rng.New(3))

	if p.Health != 15 {
		t.Errorf("Expected starting health 15, got %d", p.Health)
	}
	if p.Shield != 0 {
		t.Errorf("Expected no shield, got %d", p.Shield)
	}
	if p.Motion.Pos != geom.V(125, 430) {
		t.Errorf("Expected player at (125,430), got %+v", p.Motion.Pos)
	}

	kinds := map[combat.Kind]int{}
	for _, c := range p.Deck.Cards() {
		kinds[c.Kind()]++
	}
	if kinds[combat.KindDamage] != 5 || kinds[combat.KindShield] != 4 || kinds[combat.KindHeal] != 1 {
		t.Errorf("Expected 5 damage, 4 shield, 1 heal, got %v", kinds)
	}
}

func TestNewCharacterLeavesStarterUntouched(t *testing.T) {
	b := DefaultBalance()
	starter, _ := combat.NewDeck(b.Combat.StarterDeck)
	before := starter.Cards()

	p := newCharacter(b, starter, rng.New(9))
	p.Deck.UpgradeAll(5)

	after := starter.Cards()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("Expected starter deck unchanged at slot %d: %v vs %v", i, before[i], after[i])
		}
	}
}
