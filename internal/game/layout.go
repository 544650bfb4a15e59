package game

import (
	"gradquest/internal/combat"
	"gradquest/internal/geom"
	"gradquest/internal/levelgraph"
)

// HitTester maps a cursor position to what is under it. Positions are in
// world space: origin bottom-left, y up.
type HitTester interface {
	// HandCard returns the deck slot of the dealt card under p.
	HandCard(r *Run, p geom.Vec2) (int, bool)
	Enemy(r *Run, p geom.Vec2) (int, bool)
	Node(r *Run, p geom.Vec2) (levelgraph.NodeID, bool)
	// RewardCard returns the deck slot under p on the reward screen.
	RewardCard(r *Run, p geom.Vec2) (int, bool)
	// Button reports a hit on the screen's single button, if it has one.
	Button(r *Run, p geom.Vec2) bool
}

// Screen furniture, in pixels.
const (
	cardRowLeft   = 314.0
	cardPitch     = 80.0
	cardWidth     = 67.0
	cardBottom    = 68.0
	cardTop       = 187.0
	enemyBoxW     = 88.0
	enemyBoxH     = 158.0
	nodeBoxW      = 1430 * 0.05
	nodeBoxH      = 1604 * 0.05
	rewardLeft    = 112.0
	rewardPitch   = 160.0
	rewardWidth   = 74.0
	rewardHeight  = 124.0
	rewardTopY    = 336.0
	rewardRowStep = 180.0
	buttonW       = 220.0
	buttonH       = 90.0
	playButtonDY  = 100.0
	againButtonDY = 75.0
)

// ScreenLayout is the fixed-resolution layout the game was drawn for.
type ScreenLayout struct {
	Stage Stage
}

// CardRect is the on-screen box of the i-th dealt card.
func (l ScreenLayout) CardRect(i int) geom.Rect {
	x := cardRowLeft + cardPitch*float64(i)
	return geom.Rect{Min: geom.V(x, cardBottom), Max: geom.V(x+cardWidth, cardTop)}
}

// RewardRect is the box of deck slot i on the reward screen: two rows of five.
func (l ScreenLayout) RewardRect(i int) geom.Rect {
	x := rewardLeft + rewardPitch*float64(i%combat.HandSize)
	y := rewardTopY - rewardRowStep*float64(i/combat.HandSize)
	return geom.Rect{
		Min: geom.V(x, y-rewardHeight/2),
		Max: geom.V(x+rewardWidth, y+rewardHeight/2),
	}
}

// ButtonCenter is where the menu or game-over button sits.
func (l ScreenLayout) ButtonCenter(s Screen) geom.Vec2 {
	c := l.Stage.Center()
	if s == ScreenGameOver {
		return c.Add(geom.V(0, againButtonDY))
	}
	return c.Add(geom.V(0, playButtonDY))
}

func (l ScreenLayout) HandCard(r *Run, p geom.Vec2) (int, bool) {
	for i, slot := range r.Hand().Slots() {
		if l.CardRect(i).Contains(p) {
			return slot, true
		}
	}
	return 0, false
}

func (l ScreenLayout) Enemy(r *Run, p geom.Vec2) (int, bool) {
	b := r.Battle()
	if b == nil {
		return 0, false
	}
	for i, e := range b.Enemies() {
		if geom.RectAround(e.Motion.Home, enemyBoxW, enemyBoxH).Contains(p) {
			return i, true
		}
	}
	return 0, false
}

func (l ScreenLayout) Node(r *Run, p geom.Vec2) (levelgraph.NodeID, bool) {
	for _, n := range r.Graph().Nodes {
		if geom.RectAround(n.Position, nodeBoxW, nodeBoxH).Contains(p) {
			return n.ID, true
		}
	}
	return 0, false
}

func (l ScreenLayout) RewardCard(_ *Run, p geom.Vec2) (int, bool) {
	for i := 0; i < combat.DeckSize; i++ {
		if l.RewardRect(i).Contains(p) {
			return i, true
		}
	}
	return 0, false
}

func (l ScreenLayout) Button(r *Run, p geom.Vec2) bool {
	return geom.RectAround(l.ButtonCenter(r.Screen()), buttonW, buttonH).Contains(p)
}
