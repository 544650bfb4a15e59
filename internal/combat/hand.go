package combat

import (
	"fmt"

	"gradquest/internal/rng"
)

// Hand tracks which half of the deck is dealt and which of its cards have
// been played since the last redraw.
type Hand struct {
	used [DeckSize]bool
	half int
}

// Half is 0 when slots 0-4 are dealt and 1 when slots 5-9 are.
func (h *Hand) Half() int { return h.half }

// Slots returns the deck slots of the active half.
func (h *Hand) Slots() []int {
	out := make([]int, HandSize)
	for i := range out {
		out[i] = h.half*HandSize + i
	}
	return out
}

// InHand reports whether slot belongs to the active half.
func (h *Hand) InHand(slot int) bool {
	checkSlot(slot)
	return slot/HandSize == h.half
}

func (h *Hand) IsUsed(slot int) bool {
	checkSlot(slot)
	return h.used[slot]
}

func (h *Hand) MarkUsed(slot int) {
	checkSlot(slot)
	h.used[slot] = true
}

// Available lists the dealt slots that have not been played.
func (h *Hand) Available() []int {
	var out []int
	for _, s := range h.Slots() {
		if !h.used[s] {
			out = append(out, s)
		}
	}
	return out
}

// Redraw clears the used marks and deals the other half. Returning to the
// first half reshuffles the whole deck first, so the deck is reshuffled on
// every second redraw. It reports whether a reshuffle happened.
func (h *Hand) Redraw(d *Deck, r rng.Source) bool {
	h.used = [DeckSize]bool{}
	if h.half == 1 {
		for i := 0; i < RedrawShuffles; i++ {
			d.Shuffle(r)
		}
		h.half = 0
		return true
	}
	h.half = 1
	return false
}

// Reset returns the hand to the first half with nothing used.
func (h *Hand) Reset() {
	*h = Hand{}
}

func checkSlot(slot int) {
	if slot < 0 || slot >= DeckSize {
		panic(fmt.Sprintf("combat: card slot %d out of range [0, %d)", slot, DeckSize))
	}
}
