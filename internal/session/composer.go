// Package session builds bounded practice queues for one sitting. The queue
// biases sampling toward error-prone and leeched cards but never excludes an
// easy one, and a miss brings the same card back a couple of positions later
// in the same sitting — independent of the long-horizon review schedule.
package session

import (
	"math/rand"
	"sort"
)

// DefaultWeightCap bounds how much extra weight a single card's miss history
// can add, so one disaster card can't crowd out the rest of the deck.
const DefaultWeightCap = 4

// retryOffset is how many positions after the current one a missed card is
// reinserted.
const retryOffset = 2

// Card is the slice of per-card statistics the composer samples from.
type Card struct {
	ID         string
	Prompt     string
	Answer     string
	Wrong      int
	LeechCount int
}

// Weight returns the sampling weight for a card: a base of 1 plus its capped
// miss pressure, with leeches counting double.
func Weight(c Card, capWeight int) int {
	pressure := c.Wrong + c.LeechCount*2
	if pressure > capWeight {
		pressure = capWeight
	}
	return 1 + pressure
}

// Composer samples practice queues. The zero value is not usable; construct
// with New.
type Composer struct {
	// WeightCap bounds the per-card miss pressure. Defaults to
	// DefaultWeightCap.
	WeightCap int

	rng *rand.Rand
}

// New creates a composer with its own RNG. Deterministic for a fixed seed.
func New(seed int64) *Composer {
	return &Composer{
		WeightCap: DefaultWeightCap,
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// Build draws a queue of the requested length from the card set, sampling
// each position by weight. Heavily missed cards appear more often; a card
// can appear more than once in one queue. Cumulative weights with a binary
// search keep this linear in the deck size rather than in the weight sum.
// Rebuilding after a restart picks up whatever statistics changed meanwhile.
func (c *Composer) Build(cards []Card, length int) *Queue {
	if len(cards) == 0 || length <= 0 {
		return &Queue{}
	}

	cum := make([]int, len(cards))
	total := 0
	for i, card := range cards {
		total += Weight(card, c.WeightCap)
		cum[i] = total
	}

	items := make([]Card, 0, length)
	for len(items) < length {
		r := c.rng.Intn(total)
		idx := sort.SearchInts(cum, r+1)
		items = append(items, cards[idx])
	}

	return &Queue{items: items}
}

// Queue is one sitting's practice order. Single-threaded on the consuming
// side; abandoning it loses nothing that was already committed elsewhere.
type Queue struct {
	items []Card
	index int
}

// Len returns the current queue length, including reinserted retries.
func (q *Queue) Len() int {
	return len(q.items)
}

// Done reports whether the sitting is over.
func (q *Queue) Done() bool {
	return q.index >= len(q.items)
}

// Current returns the card under the cursor.
func (q *Queue) Current() (Card, bool) {
	if q.Done() {
		return Card{}, false
	}
	return q.items[q.index], true
}

// Record registers the learner's response to the current card and moves on.
// A miss reinserts the same card at currentIndex+2 (or at the end when the
// queue is shorter), guaranteeing a near-term second look within the
// sitting.
func (q *Queue) Record(correct bool) {
	if q.Done() {
		return
	}
	if !correct {
		card := q.items[q.index]
		pos := q.index + retryOffset
		if pos > len(q.items) {
			pos = len(q.items)
		}
		q.items = append(q.items[:pos], append([]Card{card}, q.items[pos:]...)...)
	}
	q.index++
}
