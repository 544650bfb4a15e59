// Package present defines the collaborators the game talks to for output and
// input. A frontend supplies concrete implementations; the recorders in this
// package stand in for them in tests and in the headless web driver.
package present

import "gradquest/internal/geom"

// Sprite identifies a drawable image.
type Sprite int

const (
	SpritePlayer Sprite = iota
	SpritePlayerRunning
	SpriteEnemy
	SpriteEnemyRunning
	SpriteBoss
	SpriteBackground
	SpriteMapBackground
	SpriteMenuBackground
	SpriteIntroBackground
	SpriteWinBackground
	SpriteLoseBackground
	SpriteNerdBackground
	SpriteNerd
	SpriteNode
	SpriteLine
	SpriteDoorClosed
	SpriteDoorOpen
	SpriteCheckmark
	SpriteCard
	SpriteCardBackground
	SpriteCardDamage
	SpriteCardShield
	SpriteCardHealth
	SpriteBook
	SpritePaper
	SpriteLaptop
	SpriteCalendar
	SpritePlayButton
	SpritePlayAgainButton
)

// Sound identifies a sound effect.
type Sound int

const (
	SoundStudyTime       Sound = iota // player plays a damage card
	SoundPowerNap                     // player plays a heal card
	SoundTime                         // player plays a shield card
	SoundEndlessHomework              // homework enemy attacks
	SoundLame                         // lame enemy attacks
	SoundAuto                         // enemy heals
	SoundPlayerDamage
	SoundEnemyDamage
)

func (s Sound) String() string {
	return [...]string{
		"study_time", "power_nap", "time", "endless_homework",
		"lame", "auto", "player_damage", "enemy_damage",
	}[s]
}

// Key is a polled input.
type Key int

const (
	KeyLeftButton Key = iota
	KeyEnter
	KeyBackspace
	KeyF2
	KeyG
)

// Color is an RGBA tint with components in [0, 1].
type Color struct {
	R, G, B, A float64
}

var (
	White  = Color{1, 1, 1, 1}
	Black  = Color{0, 0, 0, 1}
	Grey   = Color{0.5, 0.5, 0.5, 1}
	Hurt   = Color{0.9, 0.4, 0.4, 1}
	Locked = Color{0.4, 0.4, 0.4, 1}
)

// Renderer draws one frame at a time between BeginFrame and EndFrame.
type Renderer interface {
	BeginFrame()
	EndFrame()
	DrawSprite(id Sprite, pos geom.Vec2, tint Color, scale float64)
	DrawText(s string, pos geom.Vec2, c Color)
	DrawLine(from, to geom.Vec2)
	Width(id Sprite) float64
	Height(id Sprite) float64
}

// Audio plays sound effects. BeginFrame is called once per frame.
type Audio interface {
	Play(id Sound)
	BeginFrame()
}

// Input is polled once per frame. Triggered reports a key that went down
// since the previous poll.
type Input interface {
	Poll()
	Triggered(k Key) bool
	Cursor() geom.Vec2
}

// Timer reports the length of the last frame.
type Timer interface {
	ElapsedSeconds() float64
	FPS() int
}
