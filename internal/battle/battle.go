// Package battle runs a single encounter: the player's three-card rounds
// followed by each enemy's turn, until one side is gone.
package battle

import (
	"log/slog"

	"gradquest/internal/combat"
	"gradquest/internal/geom"
	"gradquest/internal/present"
	"gradquest/internal/rng"
)

// PlaysPerRound is how many cards the player plays before the enemies act.
const PlaysPerRound = 3

// Env carries the collaborators a battle reports to.
type Env struct {
	Rand  rng.Source
	Audio present.Audio
	Log   *slog.Logger
}

// Setup describes the encounter to build.
type Setup struct {
	Node         int
	NumEnemies   int
	Boss         bool
	Center       geom.Vec2
	ScreenHeight float64
}

// Battle is one encounter. It borrows the run's player and hand.
type Battle struct {
	env     Env
	setup   Setup
	player  *combat.Player
	hand    *combat.Hand
	enemies []*combat.Enemy

	phase  Phase
	plays  int
	cursor int
}

// New lines up setup.NumEnemies enemies in formation. On the boss layer the
// first enemy becomes the boss.
func New(env Env, t combat.Tuning, p *combat.Player, h *combat.Hand, setup Setup) *Battle {
	if env.Audio == nil {
		env.Audio = present.Silent{}
	}
	if env.Log == nil {
		env.Log = slog.Default()
	}
	b := &Battle{
		env:    env,
		setup:  setup,
		player: p,
		hand:   h,
		phase:  AwaitingCard{},
		cursor: -1,
	}
	for _, pos := range combat.Formation(setup.NumEnemies, setup.ScreenHeight) {
		b.enemies = append(b.enemies, combat.NewEnemy(t, pos))
	}
	if setup.Boss && len(b.enemies) > 0 {
		b.enemies[0].MakeBoss()
	}
	env.Log.Debug("battle started", "node", setup.Node, "enemies", len(b.enemies), "boss", setup.Boss)
	return b
}

func (b *Battle) Phase() Phase             { return b.phase }
func (b *Battle) Plays() int               { return b.plays }
func (b *Battle) Player() *combat.Player   { return b.player }
func (b *Battle) Hand() *combat.Hand       { return b.hand }
func (b *Battle) Enemies() []*combat.Enemy { return b.enemies }
func (b *Battle) Setup() Setup             { return b.setup }

// EnemyCursor is the index of the acting enemy, or -1 on the player's turn.
func (b *Battle) EnemyCursor() int { return b.cursor }

// Outcome reports whether the battle is over and who won.
func (b *Battle) Outcome() Outcome {
	switch b.phase.(type) {
	case Victory:
		return Won
	case Defeat:
		return Lost
	}
	return Ongoing
}

// NeedsInput reports whether the battle is waiting on the player.
func (b *Battle) NeedsInput() bool {
	switch b.phase.(type) {
	case AwaitingCard, AwaitingTarget:
		return true
	}
	return false
}

// ChooseCard picks the card in deck slot. It only applies while waiting for
// a card, and the slot must be dealt and unplayed. A slot outside the deck
// panics.
func (b *Battle) ChooseCard(slot int) bool {
	if b.hand.IsUsed(slot) {
		return false
	}
	if _, ok := b.phase.(AwaitingCard); !ok || !b.hand.InHand(slot) {
		return false
	}
	b.phase = AwaitingTarget{Slot: slot}
	return true
}

// ChooseTarget confirms the picked card. A damage card needs a living enemy:
// ok false or a bad index cancels the pick. Any other card commits on any
// confirmation.
func (b *Battle) ChooseTarget(index int, ok bool) bool {
	p, waiting := b.phase.(AwaitingTarget)
	if !waiting {
		return false
	}
	target := -1
	if b.player.Deck.Card(p.Slot).DamageValue() > 0 {
		if !ok || index < 0 || index >= len(b.enemies) {
			b.phase = AwaitingCard{}
			return false
		}
		target = index
	}
	b.hand.MarkUsed(p.Slot)
	b.plays++
	b.player.PlayCard(p.Slot, b.setup.Center)
	b.phase = PlayerActing{Slot: p.Slot, Target: target}
	b.env.Log.Debug("card played", "slot", p.Slot, "card", b.player.Deck.Card(p.Slot).String(), "target", target, "plays", b.plays)
	return true
}

// Cancel drops a picked card before it is committed.
func (b *Battle) Cancel() bool {
	if _, ok := b.phase.(AwaitingTarget); !ok {
		return false
	}
	b.phase = AwaitingCard{}
	return true
}

// ForceVictory kills every enemy at once. It reports whether the battle
// ended because of it.
func (b *Battle) ForceVictory() bool {
	if b.Outcome() != Ongoing {
		return false
	}
	for _, e := range b.enemies {
		e.Kill()
	}
	b.enemies = nil
	b.cursor = -1
	b.player.Reset()
	b.phase = Victory{}
	b.env.Log.Info("battle forced", "node", b.setup.Node)
	return true
}

// Tick advances the battle dt seconds. It returns true on the tick the
// battle ends and never again.
func (b *Battle) Tick(dt float64) bool {
	switch p := b.phase.(type) {
	case PlayerActing:
		return b.tickPlayerActing(dt, p)
	case PlayerReturning:
		b.tickPlayerReturning(dt)
	case EnemyActing:
		return b.tickEnemy(dt, p)
	}
	return false
}

func (b *Battle) tickPlayerActing(dt float64, p PlayerActing) bool {
	if b.player.Step(dt) == combat.EventArrived {
		b.env.Audio.Play(cardSound(b.player.Deck.Card(p.Slot).Kind()))
	}
	if !b.player.FinishedActing() {
		return false
	}
	damage := b.player.Use(*b.player.Deck.Card(p.Slot))
	if p.Target >= 0 {
		e := b.enemies[p.Target]
		e.ApplyDamage(damage)
		b.env.Audio.Play(present.SoundEnemyDamage)
		if e.IsDead() {
			b.removeEnemy(p.Target)
		}
	}
	if len(b.enemies) == 0 {
		b.player.SetBack()
		b.phase = Victory{}
		b.env.Log.Info("battle won", "node", b.setup.Node, "health", b.player.Health)
		return true
	}
	b.player.ReturnToPosition()
	b.phase = PlayerReturning{Slot: p.Slot}
	return false
}

func (b *Battle) tickPlayerReturning(dt float64) {
	if b.player.Step(dt) != combat.EventReturned {
		return
	}
	b.player.SetBack()
	if b.plays < PlaysPerRound && len(b.hand.Available()) > 0 {
		b.phase = AwaitingCard{}
		return
	}
	b.hand.Redraw(&b.player.Deck, b.env.Rand)
	b.plays = 0
	b.cursor = 0
	b.phase = EnemyActing{Enemy: 0}
}

func (b *Battle) tickEnemy(dt float64, p EnemyActing) bool {
	e := b.enemies[p.Enemy]
	switch e.State {
	case combat.EnemyInPosition:
		e.PlayCard(b.setup.Center)
		return false
	case combat.EnemyPlayingCard:
		if e.FinishedActing() {
			if b.resolveEnemyCard(e) {
				return true
			}
			e.ReturnToPosition()
			return false
		}
	case combat.EnemyReturned:
		e.SetBack()
		b.cursor++
		if b.cursor == len(b.enemies) {
			b.player.ResetShield()
			b.cursor = -1
			b.phase = AwaitingCard{}
			return false
		}
		b.phase = EnemyActing{Enemy: b.cursor}
		return false
	}
	if e.Step(dt, b.env.Rand) == combat.EventArrived {
		b.env.Audio.Play(enemySound(e))
	}
	return false
}

// resolveEnemyCard applies the enemy's card and reports whether it killed
// the player.
func (b *Battle) resolveEnemyCard(e *combat.Enemy) bool {
	switch e.Next.Type {
	case combat.EnemyAttack:
		b.player.ApplyDamage(e.Next.Value)
		b.env.Audio.Play(present.SoundPlayerDamage)
		if b.player.IsDead() {
			b.phase = Defeat{}
			b.env.Log.Info("battle lost", "node", b.setup.Node, "enemy", b.cursor)
			return true
		}
	case combat.EnemyHeal:
		e.Heal(e.Next.Value)
	}
	return false
}

func (b *Battle) removeEnemy(i int) {
	b.enemies = append(b.enemies[:i], b.enemies[i+1:]...)
	for j, pos := range combat.Formation(len(b.enemies), b.setup.ScreenHeight) {
		m := &b.enemies[j].Motion
		m.Pos, m.Home, m.Target = pos, pos, pos
	}
}

func cardSound(k combat.Kind) present.Sound {
	switch k {
	case combat.KindHeal:
		return present.SoundPowerNap
	case combat.KindShield:
		return present.SoundTime
	}
	return present.SoundStudyTime
}

func enemySound(e *combat.Enemy) present.Sound {
	switch {
	case e.Next.Type == combat.EnemyHeal:
		return present.SoundAuto
	case e.Archetype == combat.Lame:
		return present.SoundLame
	}
	return present.SoundEndlessHomework
}
