package combat

import (
	"errors"
	"fmt"
)

// Range is a closed integer interval [Min, Max].
type Range struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Attack describes an enemy attack archetype: Base plus a draw from Jitter.
type Attack struct {
	Base   int   `yaml:"base"`
	Jitter Range `yaml:"jitter"`
}

// Tuning holds the combat constants. The defaults are the hand-tuned values
// the game was balanced with.
type Tuning struct {
	PlayerHealth int     `yaml:"player_health"`
	EnemyHealth  int     `yaml:"enemy_health"`
	BossHealth   int     `yaml:"boss_health"`
	BossScale    float64 `yaml:"boss_scale"`

	// An enemy below LowHealth heals when a d10 roll is at most HealChance.
	LowHealth  int   `yaml:"low_health"`
	HealChance int   `yaml:"heal_chance"`
	HealBase   int   `yaml:"heal_base"`
	HealJitter Range `yaml:"heal_jitter"`

	Homework Attack `yaml:"homework"`
	Lame     Attack `yaml:"lame"`

	Speed           float64 `yaml:"speed"`
	Epsilon         float64 `yaml:"epsilon"`
	FrameInterval   float64 `yaml:"frame_interval"`
	PlayerActFrames int     `yaml:"player_act_frames"`
	EnemyActSeconds float64 `yaml:"enemy_act_seconds"`

	StarterDeck []Card `yaml:"starter_deck"`
}

// DefaultTuning returns the shipped combat constants.
func DefaultTuning() Tuning {
	return Tuning{
		PlayerHealth: 15,
		EnemyHealth:  10,
		BossHealth:   20,
		BossScale:    0.75,

		LowHealth:  3,
		HealChance: 7,
		HealBase:   1,
		HealJitter: Range{Min: 0, Max: 2},

		Homework: Attack{Base: 2, Jitter: Range{Min: -1, Max: 1}},
		Lame:     Attack{Base: 3, Jitter: Range{Min: 0, Max: 1}},

		Speed:           460,
		Epsilon:         15,
		FrameInterval:   0.1,
		PlayerActFrames: 10,
		EnemyActSeconds: 2.5,

		StarterDeck: StarterCards(),
	}
}

// Validate reports every inconsistent constant.
func (t Tuning) Validate() error {
	var errs []error
	for name, v := range map[string]int{
		"player_health":     t.PlayerHealth,
		"enemy_health":      t.EnemyHealth,
		"boss_health":       t.BossHealth,
		"player_act_frames": t.PlayerActFrames,
	} {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", name, v))
		}
	}
	if t.HealChance < 0 || t.HealChance > 10 {
		errs = append(errs, fmt.Errorf("heal_chance must be within [0, 10], got %d", t.HealChance))
	}
	for name, r := range map[string]Range{
		"heal_jitter":     t.HealJitter,
		"homework.jitter": t.Homework.Jitter,
		"lame.jitter":     t.Lame.Jitter,
	} {
		if r.Max < r.Min {
			errs = append(errs, fmt.Errorf("%s is empty: [%d, %d]", name, r.Min, r.Max))
		}
	}
	if t.Speed <= 0 || t.Epsilon <= 0 || t.FrameInterval <= 0 || t.EnemyActSeconds <= 0 {
		errs = append(errs, errors.New("speed, epsilon, frame_interval and enemy_act_seconds must be positive"))
	}
	if _, err := NewDeck(t.StarterDeck); err != nil {
		errs = append(errs, fmt.Errorf("starter_deck: %w", err))
	}
	return errors.Join(errs...)
}
