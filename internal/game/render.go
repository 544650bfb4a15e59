package game

import (
	"fmt"

	"gradquest/internal/battle"
	"gradquest/internal/combat"
	"gradquest/internal/geom"
	"gradquest/internal/present"
)

var (
	playsTextPos = geom.V(125, 635)
	fpsTextPos   = geom.V(30, 30)
)

func (g *Game) render() {
	rd := g.Run.env.Renderer
	if rd == nil {
		return
	}
	rd.BeginFrame()
	defer rd.EndFrame()

	r := g.Run
	center := r.Balance().Stage.Center()
	switch r.Screen() {
	case ScreenMenu:
		rd.DrawSprite(present.SpriteMenuBackground, center, present.White, 1)
		rd.DrawSprite(present.SpritePlayButton, g.buttonCenter(), present.White, 1)
	case ScreenIntro:
		rd.DrawSprite(present.SpriteIntroBackground, center, present.White, 1)
	case ScreenMap:
		g.renderMap(rd)
	case ScreenBattle:
		g.renderBattle(rd)
	case ScreenReward:
		rd.DrawSprite(present.SpriteCardBackground, center, present.White, 1)
		g.renderRewards(rd)
	case ScreenBonus:
		rd.DrawSprite(present.SpriteNerdBackground, center, present.White, 1)
		rd.DrawSprite(present.SpriteNerd, center, present.White, 1)
		rd.DrawText(fmt.Sprintf("Study group! Every card +%d", r.Balance().Rewards.BonusUpgrade), center.Add(geom.V(0, -200)), present.Black)
	case ScreenGameOver:
		bg, msg := present.SpriteLoseBackground, "You dropped out."
		if r.Won() {
			bg, msg = present.SpriteWinBackground, "You graduated!"
		}
		rd.DrawSprite(bg, center, present.White, 1)
		rd.DrawSprite(present.SpritePlayAgainButton, g.buttonCenter(), present.White, 1)
		rd.DrawText(msg, center.Add(geom.V(0, 150)), present.Black)
	}
	if g.showFPS {
		rd.DrawText(fmt.Sprintf("%d fps", g.Timer.FPS()), fpsTextPos, present.White)
	}
}

func (g *Game) buttonCenter() geom.Vec2 {
	if l, ok := g.Layout.(ScreenLayout); ok {
		return l.ButtonCenter(g.Run.Screen())
	}
	return g.Run.Balance().Stage.Center()
}

func (g *Game) renderMap(rd present.Renderer) {
	gr := g.Run.Graph()
	rd.DrawSprite(present.SpriteMapBackground, g.Run.Balance().Stage.Center(), present.White, 1)
	for _, e := range gr.Edges() {
		rd.DrawLine(gr.Node(e.From).Position, gr.Node(e.To).Position)
	}
	for _, n := range gr.Nodes {
		sprite, tint := present.SpriteDoorClosed, present.Locked
		if n.Unlocked {
			sprite, tint = present.SpriteDoorOpen, present.White
		}
		rd.DrawSprite(sprite, n.Position, tint, 0.05)
		if n.Completed {
			rd.DrawSprite(present.SpriteCheckmark, n.Position, present.White, 1)
		}
	}
}

func (g *Game) renderBattle(rd present.Renderer) {
	r := g.Run
	b := r.Battle()
	p := r.Player()
	rd.DrawSprite(present.SpriteBackground, r.Balance().Stage.Center(), present.White, 1)
	rd.DrawText(fmt.Sprintf("%d/%d", battle.PlaysPerRound-b.Plays(), battle.PlaysPerRound), playsTextPos, present.Black)

	sprite := present.SpritePlayer
	if p.State == combat.PlayerMovingToCenter || p.State == combat.PlayerReturning {
		sprite = present.SpritePlayerRunning
	}
	rd.DrawSprite(sprite, p.Motion.Pos, present.White, 1)
	if p.State == combat.PlayerActing {
		rd.DrawSprite(present.SpriteBook, p.Motion.Pos.Add(geom.V(0, 100)), present.White, 1)
	}
	rd.DrawText(fmt.Sprintf("HP %d  SH %d", p.Health, p.Shield), p.Motion.Pos.Add(geom.V(0, -100)), present.Black)

	_, targeting := b.Phase().(battle.AwaitingTarget)
	for _, e := range b.Enemies() {
		sprite := present.SpriteEnemy
		switch {
		case e.Boss:
			sprite = present.SpriteBoss
		case e.State == combat.EnemyMovingToCenter || e.State == combat.EnemyReturning:
			sprite = present.SpriteEnemyRunning
		}
		tint := present.White
		if targeting {
			tint = present.Hurt
		}
		rd.DrawSprite(sprite, e.Motion.Pos, tint, e.Scale)
		if e.State == combat.EnemyPlayingCard {
			rd.DrawSprite(present.SpritePaper, e.Motion.Pos.Add(geom.V(0, 100)), present.White, 1)
		}
		rd.DrawText(fmt.Sprintf("HP %d", e.Health), e.Motion.Pos.Add(geom.V(0, -100)), present.Black)
	}

	l, _ := g.Layout.(ScreenLayout)
	for i, slot := range r.Hand().Slots() {
		if r.Hand().IsUsed(slot) {
			continue
		}
		tint := present.White
		if at, ok := b.Phase().(battle.AwaitingTarget); ok && at.Slot == slot {
			tint = present.Grey
		}
		rect := l.CardRect(i)
		g.drawCard(rd, *p.Deck.Card(slot), rect.Min.Add(rect.Max).Scale(0.5), tint)
	}
}

func (g *Game) renderRewards(rd present.Renderer) {
	l, _ := g.Layout.(ScreenLayout)
	deck := g.Run.Player().Deck
	for i, c := range deck.Cards() {
		rect := l.RewardRect(i)
		g.drawCard(rd, c, rect.Min.Add(rect.Max).Scale(0.5), present.White)
	}
}

func (g *Game) drawCard(rd present.Renderer, c combat.Card, pos geom.Vec2, tint present.Color) {
	sprite := present.SpriteCardDamage
	switch c.Kind() {
	case combat.KindShield:
		sprite = present.SpriteCardShield
	case combat.KindHeal:
		sprite = present.SpriteCardHealth
	}
	rd.DrawSprite(sprite, pos, tint, 1)
	rd.DrawText(c.String(), pos.Add(geom.V(0, -40)), present.Black)
}
