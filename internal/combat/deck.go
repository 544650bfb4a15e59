package combat

import (
	"fmt"

	"gradquest/internal/rng"
)

const (
	// DeckSize is the number of cards a player owns.
	DeckSize = 10
	// HandSize is the number of deck slots dealt at once.
	HandSize = DeckSize / 2
	// RedrawShuffles is how many shuffle passes a reshuffling redraw makes.
	RedrawShuffles = 10
)

// Deck is the player's ten cards. Slot order matters: the hand deals the
// first or second half of it.
type Deck struct {
	cards [DeckSize]Card
}

// NewDeck builds a deck from exactly DeckSize cards.
func NewDeck(cards []Card) (Deck, error) {
	var d Deck
	if len(cards) != DeckSize {
		return d, fmt.Errorf("deck needs %d cards, got %d", DeckSize, len(cards))
	}
	for i, c := range cards {
		if c.Kind() == KindNone {
			return d, fmt.Errorf("card %d has no effect", i)
		}
		if exclusive(c) != 1 {
			return d, fmt.Errorf("card %d has more than one effect", i)
		}
		d.cards[i] = c
	}
	return d, nil
}

func exclusive(c Card) int {
	n := 0
	for _, v := range []int{c.Damage, c.Shield, c.Heal} {
		if v != 0 {
			n++
		}
	}
	return n
}

// StarterCards is the deck every run begins with.
func StarterCards() []Card {
	return []Card{
		DamageCard(4), DamageCard(4), DamageCard(4), DamageCard(4), DamageCard(4),
		ShieldCard(2), ShieldCard(2), ShieldCard(2), ShieldCard(2),
		HealCard(1),
	}
}

// Card returns the card in slot i. Slots outside the deck panic.
func (d *Deck) Card(i int) *Card {
	if i < 0 || i >= DeckSize {
		panic(fmt.Sprintf("combat: deck slot %d out of range [0, %d)", i, DeckSize))
	}
	return &d.cards[i]
}

// Cards returns a copy of the deck in slot order.
func (d *Deck) Cards() []Card {
	out := make([]Card, DeckSize)
	copy(out, d.cards[:])
	return out
}

func (d *Deck) Shuffle(r rng.Source) {
	r.Shuffle(DeckSize, func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Upgrade adds amount to the card in slot i.
func (d *Deck) Upgrade(i, amount int) {
	d.Card(i).Upgrade(amount)
}

// UpgradeAll adds amount to every card.
func (d *Deck) UpgradeAll(amount int) {
	for i := range d.cards {
		d.cards[i].Upgrade(amount)
	}
}
