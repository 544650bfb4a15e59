package web

import (
	"gradquest/internal/battle"
	"gradquest/internal/combat"
	"gradquest/internal/game"
)

// CardView is one deck slot as a button.
type CardView struct {
	Slot  int
	Kind  string
	Value int
	Label string
	Used  bool
}

type EnemyView struct {
	Index     int
	Health    int
	Boss      bool
	Archetype string
}

type NodeView struct {
	ID        int
	Enemies   int
	Unlocked  bool
	Completed bool
	Special   bool
	Terminal  bool
	Current   bool
}

// PlayViewModel contains everything the play page shows for one screen.
type PlayViewModel struct {
	Screen string
	Seed   uint64

	Health int
	Shield int

	// Battle
	Phase         string
	Hand          []CardView
	Enemies       []EnemyView
	Plays         int
	PlaysPerRound int
	Picking       bool
	Picked        CardView

	// Map, one row per layer
	Layers [][]NodeView

	// Reward
	Deck         []CardView
	CardUpgrade  int
	BonusUpgrade int

	Won    bool
	Sounds []string
}

func makeViewModel(sess *Session) PlayViewModel {
	run := sess.run
	b := run.Balance()
	p := run.Player()
	vm := PlayViewModel{
		Screen:        run.Screen().String(),
		Seed:          sess.seed,
		Health:        p.Health,
		Shield:        p.Shield,
		PlaysPerRound: battle.PlaysPerRound,
		CardUpgrade:   b.Rewards.CardUpgrade,
		BonusUpgrade:  b.Rewards.BonusUpgrade,
		Won:           run.Won(),
		Sounds:        sess.sounds.Drain(),
	}

	switch run.Screen() {
	case game.ScreenMap:
		vm.Layers = nodeViews(run)
	case game.ScreenReward:
		for i := 0; i < combat.DeckSize; i++ {
			vm.Deck = append(vm.Deck, cardView(p.Deck.Card(i), i, false))
		}
	case game.ScreenBattle:
		bt := run.Battle()
		vm.Phase = bt.Phase().String()
		vm.Plays = bt.Plays()
		h := bt.Hand()
		for _, slot := range h.Slots() {
			vm.Hand = append(vm.Hand, cardView(p.Deck.Card(slot), slot, h.IsUsed(slot)))
		}
		for i, e := range bt.Enemies() {
			vm.Enemies = append(vm.Enemies, EnemyView{
				Index:     i,
				Health:    e.Health,
				Boss:      e.Boss,
				Archetype: e.Archetype.String(),
			})
		}
		if at, ok := bt.Phase().(battle.AwaitingTarget); ok {
			vm.Picking = true
			vm.Picked = cardView(p.Deck.Card(at.Slot), at.Slot, false)
		}
	}
	return vm
}

func cardView(c *combat.Card, slot int, used bool) CardView {
	return CardView{
		Slot:  slot,
		Kind:  c.Kind().String(),
		Value: c.Value(),
		Label: c.String(),
		Used:  used,
	}
}

func nodeViews(run *game.Run) [][]NodeView {
	g := run.Graph()
	current, _ := run.Current()
	out := make([][]NodeView, len(g.Layers))
	for i, layer := range g.Layers {
		for _, id := range layer {
			n := g.Node(id)
			out[i] = append(out[i], NodeView{
				ID:        int(id),
				Enemies:   n.NumEnemies,
				Unlocked:  n.Unlocked,
				Completed: n.Completed,
				Special:   n.Special,
				Terminal:  g.IsTerminal(id),
				Current:   id == current,
			})
		}
	}
	return out
}
