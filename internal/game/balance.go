package game

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"gradquest/internal/combat"
	"gradquest/internal/geom"
	"gradquest/internal/levelgraph"
)

// Rewards are the deck upgrades handed out between battles.
type Rewards struct {
	CardUpgrade  int `yaml:"card_upgrade"`  // one chosen card after a won battle
	BonusUpgrade int `yaml:"bonus_upgrade"` // every card at the special node
}

// Stage is the battle and map screen geometry.
type Stage struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	PlayerX float64 `yaml:"player_x"`
	PlayerY float64 `yaml:"player_y"`
}

// Center is where actors walk to when they play a card.
func (s Stage) Center() geom.Vec2 { return geom.V(s.Width/2, s.Height/2) }

// PlayerHome is where the player stands between cards.
func (s Stage) PlayerHome() geom.Vec2 { return geom.V(s.PlayerX, s.PlayerY) }

// Balance is every tunable number of a run.
type Balance struct {
	Graph   levelgraph.Config `yaml:"graph"`
	Combat  combat.Tuning     `yaml:"combat"`
	Rewards Rewards           `yaml:"rewards"`
	Stage   Stage             `yaml:"stage"`
}

func DefaultBalance() Balance {
	return Balance{
		Graph:   levelgraph.DefaultConfig(),
		Combat:  combat.DefaultTuning(),
		Rewards: Rewards{CardUpgrade: 1, BonusUpgrade: 2},
		Stage:   Stage{Width: 1024, Height: 768, PlayerX: 125, PlayerY: 430},
	}
}

func (b Balance) Validate() error {
	var errs []error
	if err := b.Graph.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("graph: %w", err))
	}
	if err := b.Combat.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("combat: %w", err))
	}
	if b.Rewards.CardUpgrade < 0 || b.Rewards.BonusUpgrade < 0 {
		errs = append(errs, errors.New("rewards: upgrades must not be negative"))
	}
	if b.Stage.Width <= 0 || b.Stage.Height <= 0 {
		errs = append(errs, errors.New("stage: width and height must be positive"))
	}
	return errors.Join(errs...)
}

// LoadBalance reads a YAML balance file. Keys missing from the file keep
// their default values.
func LoadBalance(path string) (Balance, error) {
	b := DefaultBalance()
	raw, err := os.ReadFile(filepath.Clean(path)) //nolint:gosec // path comes from operator config
	if err != nil {
		return Balance{}, fmt.Errorf("read balance: %w", err)
	}
	if err := yaml.Unmarshal(raw, &b); err != nil {
		return Balance{}, fmt.Errorf("parse balance %s: %w", path, err)
	}
	if err := b.Validate(); err != nil {
		return Balance{}, fmt.Errorf("invalid balance %s: %w", path, err)
	}
	return b, nil
}
