package present

import (
	"sync"

	"gradquest/internal/geom"
)

// SpriteCall is one recorded DrawSprite.
type SpriteCall struct {
	ID    Sprite
	Pos   geom.Vec2
	Tint  Color
	Scale float64
}

// TextCall is one recorded DrawText.
type TextCall struct {
	Text string
	Pos  geom.Vec2
}

// RenderRecorder is a Renderer that keeps the draw calls of the last
// completed frame.
type RenderRecorder struct {
	Frames  int
	Sprites []SpriteCall
	Texts   []TextCall
	Lines   int

	pending RenderFrame
}

// RenderFrame holds the calls made during one frame.
type RenderFrame struct {
	Sprites []SpriteCall
	Texts   []TextCall
	Lines   int
}

func (r *RenderRecorder) BeginFrame() { r.pending = RenderFrame{} }

func (r *RenderRecorder) EndFrame() {
	r.Frames++
	r.Sprites = r.pending.Sprites
	r.Texts = r.pending.Texts
	r.Lines = r.pending.Lines
}

func (r *RenderRecorder) DrawSprite(id Sprite, pos geom.Vec2, tint Color, scale float64) {
	r.pending.Sprites = append(r.pending.Sprites, SpriteCall{ID: id, Pos: pos, Tint: tint, Scale: scale})
}

func (r *RenderRecorder) DrawText(s string, pos geom.Vec2, _ Color) {
	r.pending.Texts = append(r.pending.Texts, TextCall{Text: s, Pos: pos})
}

func (r *RenderRecorder) DrawLine(geom.Vec2, geom.Vec2) { r.pending.Lines++ }

func (r *RenderRecorder) Width(Sprite) float64  { return 64 }
func (r *RenderRecorder) Height(Sprite) float64 { return 64 }

// Count returns how many times id was drawn in the last frame.
func (r *RenderRecorder) Count(id Sprite) int {
	n := 0
	for _, c := range r.Sprites {
		if c.ID == id {
			n++
		}
	}
	return n
}

// HasText reports whether s was drawn in the last frame.
func (r *RenderRecorder) HasText(s string) bool {
	for _, t := range r.Texts {
		if t.Text == s {
			return true
		}
	}
	return false
}

// AudioRecorder is an Audio that remembers every sound played. It is safe
// for concurrent use.
type AudioRecorder struct {
	mu     sync.Mutex
	played []Sound
	frames int
}

func (a *AudioRecorder) Play(id Sound) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.played = append(a.played, id)
}

func (a *AudioRecorder) BeginFrame() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.frames++
}

// Played returns a copy of the sounds played so far.
func (a *AudioRecorder) Played() []Sound {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]Sound(nil), a.played...)
}

// Frames is the number of BeginFrame calls.
func (a *AudioRecorder) Frames() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.frames
}

// Silent discards every sound.
type Silent struct{}

func (Silent) Play(Sound)  {}
func (Silent) BeginFrame() {}

// ScriptedInput replays one set of pressed keys per Poll.
type ScriptedInput struct {
	frames  []InputFrame
	current InputFrame
}

// InputFrame is the input state for a single poll.
type InputFrame struct {
	Keys   []Key
	Cursor geom.Vec2
}

// Queue appends frames to replay.
func (s *ScriptedInput) Queue(frames ...InputFrame) {
	s.frames = append(s.frames, frames...)
}

// Click queues a left click at pos.
func (s *ScriptedInput) Click(pos geom.Vec2) {
	s.Queue(InputFrame{Keys: []Key{KeyLeftButton}, Cursor: pos})
}

// Press queues a key press, keeping the cursor where it was.
func (s *ScriptedInput) Press(k Key) {
	s.Queue(InputFrame{Keys: []Key{k}, Cursor: s.current.Cursor})
}

func (s *ScriptedInput) Poll() {
	if len(s.frames) == 0 {
		s.current = InputFrame{Cursor: s.current.Cursor}
		return
	}
	s.current = s.frames[0]
	s.frames = s.frames[1:]
}

func (s *ScriptedInput) Triggered(k Key) bool {
	for _, pressed := range s.current.Keys {
		if pressed == k {
			return true
		}
	}
	return false
}

func (s *ScriptedInput) Cursor() geom.Vec2 { return s.current.Cursor }

// FixedTimer reports the same frame length every frame.
type FixedTimer struct {
	Step float64
}

func (f FixedTimer) ElapsedSeconds() float64 { return f.Step }

func (f FixedTimer) FPS() int {
	if f.Step <= 0 {
		return 0
	}
	return int(1/f.Step + 0.5)
}
