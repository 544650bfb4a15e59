package game

import (
	"fmt"

	"gradquest/internal/battle"
	"gradquest/internal/combat"
	"gradquest/internal/levelgraph"
)

// SettleStep is the fixed frame length Settle advances by.
const SettleStep = 1.0 / 60

// Run drives one playthrough: the map, the battles on it and the rewards
// between them.
type Run struct {
	env     Env
	balance Balance
	starter combat.Deck

	graph    *levelgraph.Graph
	player   *combat.Player
	hand     combat.Hand
	battle   *battle.Battle
	screen   Screen
	won      bool
	current  levelgraph.NodeID
	unlocked []levelgraph.NodeID
}

// NewRun validates the balance and starts a run on the menu screen.
func NewRun(env Env, b Balance) (*Run, error) {
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("new run: %w", err)
	}
	starter, err := combat.NewDeck(b.Combat.StarterDeck)
	if err != nil {
		return nil, fmt.Errorf("new run: %w", err)
	}
	r := &Run{env: env.withDefaults(), balance: b, starter: starter}
	r.Restart()
	return r, nil
}

// Restart throws the run away and builds a new one: a new map with only the
// start node unlocked, a new player and deck, back on the menu. The map takes
// the first draws, so a fresh Rand with seed s always yields
// levelgraph.Generate(rng.New(s), ...).
func (r *Run) Restart() {
	r.graph = levelgraph.Generate(r.env.Rand, r.balance.Graph)
	r.player = newCharacter(r.balance, r.starter, r.env.Rand)
	r.hand.Reset()
	r.battle = nil
	r.screen = ScreenMenu
	r.won = false
	r.current = -1

	start := r.graph.Start()
	r.unlocked = []levelgraph.NodeID{start}

	sizes := make([]int, len(r.graph.Layers))
	for i, l := range r.graph.Layers {
		sizes[i] = len(l)
	}
	special, _ := r.graph.Special()
	r.env.Log.Info("run started", "layers", sizes, "special", special)
}

func (r *Run) Screen() Screen                { return r.screen }
func (r *Run) Graph() *levelgraph.Graph      { return r.graph }
func (r *Run) Player() *combat.Player        { return r.player }
func (r *Run) Hand() *combat.Hand            { return &r.hand }
func (r *Run) Battle() *battle.Battle        { return r.battle }
func (r *Run) Balance() Balance              { return r.balance }
func (r *Run) Unlocked() []levelgraph.NodeID { return r.unlocked }

// Won reports whether a finished run ended in victory.
func (r *Run) Won() bool { return r.screen == ScreenGameOver && r.won }

// Current is the last node the player entered.
func (r *Run) Current() (levelgraph.NodeID, bool) { return r.current, r.current >= 0 }

// Continue leaves the menu, intro and bonus screens. On the game-over
// screen it starts a new run.
func (r *Run) Continue() bool {
	switch r.screen {
	case ScreenMenu:
		r.screen = ScreenIntro
	case ScreenIntro, ScreenBonus:
		r.screen = ScreenMap
	case ScreenGameOver:
		r.Restart()
	default:
		return false
	}
	return true
}

// SelectNode enters an unlocked node from the map. The special node pays
// out its deck upgrade at once; any other node starts a battle.
func (r *Run) SelectNode(id levelgraph.NodeID) bool {
	if r.screen != ScreenMap || int(id) < 0 || int(id) >= len(r.graph.Nodes) {
		return false
	}
	n := r.graph.Node(id)
	if !n.Unlocked {
		return false
	}
	r.current = id
	if n.Special {
		r.advance(id)
		r.player.Deck.UpgradeAll(r.balance.Rewards.BonusUpgrade)
		r.screen = ScreenBonus
		r.env.Log.Info("bonus node", "node", id, "upgrade", r.balance.Rewards.BonusUpgrade)
		return true
	}

	stage := r.balance.Stage
	r.battle = battle.New(
		battle.Env{Rand: r.env.Rand, Audio: r.env.Audio, Log: r.env.Log},
		r.balance.Combat, r.player, &r.hand,
		battle.Setup{
			Node:         int(id),
			NumEnemies:   n.NumEnemies,
			Boss:         r.graph.IsTerminal(id),
			Center:       stage.Center(),
			ScreenHeight: stage.Height,
		},
	)
	r.screen = ScreenBattle
	return true
}

// ChooseCard forwards a card pick to the current battle.
func (r *Run) ChooseCard(slot int) bool {
	if r.screen != ScreenBattle {
		return false
	}
	return r.battle.ChooseCard(slot)
}

// ChooseTarget forwards a target confirmation to the current battle.
func (r *Run) ChooseTarget(index int, ok bool) bool {
	if r.screen != ScreenBattle {
		return false
	}
	return r.battle.ChooseTarget(index, ok)
}

// CancelCard drops the picked card.
func (r *Run) CancelCard() bool {
	if r.screen != ScreenBattle {
		return false
	}
	return r.battle.Cancel()
}

// ChooseReward upgrades deck slot after a won battle and goes back to the map.
func (r *Run) ChooseReward(slot int) bool {
	if r.screen != ScreenReward || slot < 0 || slot >= combat.DeckSize {
		return false
	}
	r.player.Deck.Upgrade(slot, r.balance.Rewards.CardUpgrade)
	r.screen = ScreenMap
	r.env.Log.Debug("card upgraded", "slot", slot, "card", r.player.Deck.Card(slot).String())
	return true
}

// GodMode wins the current battle on the spot.
func (r *Run) GodMode() bool {
	if r.screen != ScreenBattle || !r.battle.ForceVictory() {
		return false
	}
	r.finishBattle()
	return true
}

// Tick advances the run dt seconds.
func (r *Run) Tick(dt float64) {
	if r.screen != ScreenBattle {
		return
	}
	if r.battle.Tick(dt) {
		r.finishBattle()
	}
}

// Busy reports whether the run is animating and needs no input.
func (r *Run) Busy() bool {
	return r.screen == ScreenBattle && !r.battle.NeedsInput()
}

// Settle ticks at SettleStep until the run needs input again or maxFrames
// frames have passed. It returns the number of frames ticked.
func (r *Run) Settle(maxFrames int) int {
	n := 0
	for ; n < maxFrames && r.Busy(); n++ {
		r.Tick(SettleStep)
	}
	return n
}

func (r *Run) finishBattle() {
	outcome := r.battle.Outcome()
	r.battle = nil
	switch outcome {
	case battle.Lost:
		r.endRun(false)
	case battle.Won:
		if r.graph.IsTerminal(r.current) {
			r.endRun(true)
			return
		}
		r.advance(r.current)
		r.player.Reset()
		r.hand.Redraw(&r.player.Deck, r.env.Rand)
		r.screen = ScreenReward
		r.env.Log.Info("battle cleared", "node", r.current, "health", r.player.Health, "unlocked", r.unlocked)
	}
}

// advance leaves node id behind: everything that was open closes, and the
// nodes it leads to open.
func (r *Run) advance(id levelgraph.NodeID) {
	for _, u := range r.unlocked {
		r.graph.Node(u).Unlocked = false
	}
	r.unlocked = r.graph.Neighbors(id)
	for _, u := range r.unlocked {
		r.graph.Node(u).Unlocked = true
	}
	r.graph.Node(id).Completed = true
}

func (r *Run) endRun(won bool) {
	r.won = won
	r.screen = ScreenGameOver
	r.env.Log.Info("run over", "won", won, "node", r.current)
}
