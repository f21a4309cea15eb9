package shuffle

// Deck is a pool of item ids dealt without replacement from the end.
type Deck struct {
	cards []uint32
}

// NewDeck copies pool and shuffles the copy once.
func NewDeck(pool []uint32, rng RandomSource) *Deck {
	cards := append([]uint32(nil), pool...)
	Shuffle(rng, cards)
	return &Deck{cards: cards}
}

// TryPop removes and returns the last card. ok is false once the deck is
// empty; callers skip the slot rather than treat that as an error.
func (d *Deck) TryPop() (id uint32, ok bool) {
	if d == nil || len(d.cards) == 0 {
		return 0, false
	}
	n := len(d.cards) - 1
	id = d.cards[n]
	d.cards = d.cards[:n]
	return id, true
}

func (d *Deck) Len() int {
	if d == nil {
		return 0
	}
	return len(d.cards)
}
