package game

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func writeBalance(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "balance.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write balance file: %v", err)
	}
	return path
}

func TestLoadBalance_Overrides(t *testing.T) {
	path := writeBalance(t, `graph:
  num_layers: 6
combat:
  player_health: 20
  lame:
    base: 4
    jitter: {min: 0, max: 2}
rewards:
  card_upgrade: 3
`)

	b, err := LoadBalance(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if b.Graph.NumLayers != 6 {
		t.Errorf("Expected 6 layers, got %d", b.Graph.NumLayers)
	}
	if b.Combat.PlayerHealth != 20 {
		t.Errorf("Expected player health 20, got %d", b.Combat.PlayerHealth)
	}
	if b.Combat.Lame.Base != 4 || b.Combat.Lame.Jitter.Max != 2 {
		t.Errorf("Expected lame 4+[0,2], got %+v", b.Combat.Lame)
	}
	if b.Rewards.CardUpgrade != 3 {
		t.Errorf("Expected card upgrade 3, got %d", b.Rewards.CardUpgrade)
	}

	// Untouched keys keep their defaults.
	if b.Combat.EnemyHealth != 10 {
		t.Errorf("Expected default enemy health 10, got %d", b.Combat.EnemyHealth)
	}
	if b.Rewards.BonusUpgrade != 2 {
		t.Errorf("Expected default bonus upgrade 2, got %d", b.Rewards.BonusUpgrade)
	}
	if len(b.Combat.StarterDeck) != 10 {
		t.Errorf("Expected default starter deck of 10, got %d", len(b.Combat.StarterDeck))
	}
	if b.Graph.Layout.LayerSpacing != 125 {
		t.Errorf("Expected default layer spacing 125, got %d", b.Graph.Layout.LayerSpacing)
	}
}

func TestLoadBalance_RoundTripsDefaults(t *testing.T) {
	raw, err := yaml.Marshal(DefaultBalance())
	if err != nil {
		t.Fatalf("Unexpected marshal error: %v", err)
	}
	b, err := LoadBalance(writeBalance(t, string(raw)))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !reflect.DeepEqual(b, DefaultBalance()) {
		t.Errorf("Expected defaults to round-trip, got %+v", b)
	}
}

func TestLoadBalance_FileNotFound(t *testing.T) {
	_, err := LoadBalance(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected a not-exist error, got %v", err)
	}
}

func TestLoadBalance_InvalidYAML(t *testing.T) {
	_, err := LoadBalance(writeBalance(t, "graph: [unterminated"))
	if err == nil {
		t.Fatal("Expected error for invalid YAML")
	}
}

func TestLoadBalance_InvalidValues(t *testing.T) {
	_, err := LoadBalance(writeBalance(t, `graph:
  num_layers: 3
combat:
  heal_chance: 12
  starter_deck:
    - damage: 4
`))
	if err == nil {
		t.Fatal("Expected validation error")
	}
	for _, want := range []string{"num_layers", "heal_chance", "starter_deck"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Expected error to mention %s, got %v", want, err)
		}
	}
}

func TestDefaultBalanceIsValid(t *testing.T) {
	if err := DefaultBalance().Validate(); err != nil {
		t.Errorf("Expected default balance to be valid, got %v", err)
	}
	b := DefaultBalance()
	b.Stage.Width = 0
	b.Rewards.CardUpgrade = -1
	if err := b.Validate(); err == nil {
		t.Error("Expected error for zero stage width and negative reward")
	}
}
