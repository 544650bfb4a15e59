package game

import (
	"log/slog"

	"gradquest/internal/present"
	"gradquest/internal/rng"
)

// Screen is the part of the run the player is looking at.
type Screen int

const (
	ScreenMenu Screen = iota
	ScreenIntro
	ScreenMap
	ScreenBattle
	ScreenReward // pick a card to upgrade after a won battle
	ScreenBonus  // the special node's deck-wide upgrade
	ScreenGameOver
)

func (s Screen) String() string {
	return [...]string{"menu", "intro", "map", "battle", "reward", "bonus", "game_over"}[s]
}

// Env holds the collaborators a run talks to. Renderer may be nil when
// nothing draws frames.
type Env struct {
	Rand     rng.Source
	Audio    present.Audio
	Renderer present.Renderer
	Log      *slog.Logger
}

func (e Env) withDefaults() Env {
	if e.Rand == nil {
		e.Rand = rng.NewRandom()
	}
	if e.Audio == nil {
		e.Audio = present.Silent{}
	}
	if e.Log == nil {
		e.Log = slog.Default()
	}
	return e
}
