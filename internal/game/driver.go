package game

import (
	"gradquest/internal/battle"
	"gradquest/internal/present"
)

// Game runs a Run one frame at a time against real input, timer and
// renderer collaborators.
type Game struct {
	Run    *Run
	Input  present.Input
	Timer  present.Timer
	Layout HitTester

	showFPS bool
}

// NewGame wires a run to its frame collaborators using the default layout.
func NewGame(run *Run, in present.Input, timer present.Timer) *Game {
	return &Game{
		Run:    run,
		Input:  in,
		Timer:  timer,
		Layout: ScreenLayout{Stage: run.Balance().Stage},
	}
}

// ShowFPS reports whether the frame-rate readout is on.
func (g *Game) ShowFPS() bool { return g.showFPS }

// ProcessFrame handles this frame's input, moves everything along by the
// frame time and draws the result.
func (g *Game) ProcessFrame() {
	g.Input.Poll()
	g.handleInput()
	g.Run.env.Audio.BeginFrame()
	g.Run.Tick(g.Timer.ElapsedSeconds())
	g.render()
}

func (g *Game) handleInput() {
	in := g.Input
	if in.Triggered(present.KeyF2) {
		g.showFPS = !g.showFPS
	}
	if in.Triggered(present.KeyBackspace) {
		g.Run.Restart()
		return
	}

	r := g.Run
	click := in.Triggered(present.KeyLeftButton)
	p := in.Cursor()
	switch r.Screen() {
	case ScreenMenu, ScreenGameOver:
		if click && g.Layout.Button(r, p) {
			r.Continue()
		}
	case ScreenIntro:
		if in.Triggered(present.KeyEnter) {
			r.Continue()
		}
	case ScreenBonus:
		if click {
			r.Continue()
		}
	case ScreenMap:
		if !click {
			return
		}
		if id, ok := g.Layout.Node(r, p); ok {
			r.SelectNode(id)
		}
	case ScreenReward:
		if !click {
			return
		}
		if slot, ok := g.Layout.RewardCard(r, p); ok {
			r.ChooseReward(slot)
		}
	case ScreenBattle:
		if in.Triggered(present.KeyG) {
			r.GodMode()
			return
		}
		if !click {
			return
		}
		switch r.Battle().Phase().(type) {
		case battle.AwaitingCard:
			if slot, ok := g.Layout.HandCard(r, p); ok {
				r.ChooseCard(slot)
			}
		case battle.AwaitingTarget:
			r.ChooseTarget(g.Layout.Enemy(r, p))
		}
	}
}
