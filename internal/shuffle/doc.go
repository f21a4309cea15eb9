// Package shuffle holds the seeded decision making of the randomizer: the
// xorshift128 generator, uniform draws over it, badge decks and the two
// consumers of the generator, RoomShuffler for warps and ItemDealer for item
// slots.
//
// Nothing in this package touches the ROM image. Callers feed it the current
// slot values and write back whatever it decides.
//
// The draw order is the seed format. Building decks, picking warps and
// drawing per-slot items all consume the same RNG, so reordering any of them
// changes what a published seed produces.
package shuffle
