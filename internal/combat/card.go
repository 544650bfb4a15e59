// Package combat models the fighters of a battle: cards and decks, the
// player and enemies with their health and shield, the enemy decision policy
// and the per-turn movement each actor performs when it plays a card.
package combat

import "fmt"

// Kind is the single effect a card has.
type Kind int

const (
	KindNone Kind = iota
	KindDamage
	KindShield
	KindHeal
)

func (k Kind) String() string {
	switch k {
	case KindDamage:
		return "damage"
	case KindShield:
		return "shield"
	case KindHeal:
		return "heal"
	default:
		return "none"
	}
}

// Card carries exactly one non-zero effect. Nothing enforces that after
// construction; the constructors below are the only intended way in.
type Card struct {
	Damage int `yaml:"damage"`
	Shield int `yaml:"shield"`
	Heal   int `yaml:"heal"`
}

func DamageCard(n int) Card { return Card{Damage: n} }
func ShieldCard(n int) Card { return Card{Shield: n} }
func HealCard(n int) Card   { return Card{Heal: n} }

func (c Card) DamageValue() int { return c.Damage }
func (c Card) ShieldValue() int { return c.Shield }
func (c Card) HealValue() int   { return c.Heal }

// Kind reports which effect the card has.
func (c Card) Kind() Kind {
	switch {
	case c.Damage > 0:
		return KindDamage
	case c.Heal > 0:
		return KindHeal
	case c.Shield > 0:
		return KindShield
	default:
		return KindNone
	}
}

// Value is the magnitude of the card's effect.
func (c Card) Value() int {
	switch c.Kind() {
	case KindDamage:
		return c.Damage
	case KindHeal:
		return c.Heal
	case KindShield:
		return c.Shield
	default:
		return 0
	}
}

// Upgrade adds amount to the card's effect. A card with no effect is left
// unchanged.
func (c *Card) Upgrade(amount int) {
	switch c.Kind() {
	case KindDamage:
		c.Damage += amount
	case KindHeal:
		c.Heal += amount
	case KindShield:
		c.Shield += amount
	}
}

func (c Card) String() string {
	return fmt.Sprintf("%s %d", c.Kind(), c.Value())
}
