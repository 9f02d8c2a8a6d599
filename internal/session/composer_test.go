package session

import "testing"

func TestWeight(t *testing.T) {
	tests := []struct {
		name string
		card Card
		want int
	}{
		{"clean card", Card{}, 1},
		{"two misses", Card{Wrong: 2}, 3},
		{"leech counts double", Card{Wrong: 1, LeechCount: 1}, 4},
		{"capped", Card{Wrong: 10, LeechCount: 3}, 1 + DefaultWeightCap},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Weight(tt.card, DefaultWeightCap); got != tt.want {
				t.Errorf("Weight = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestBuild_LengthAndTruncation(t *testing.T) {
	c := New(1)
	cards := []Card{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	q := c.Build(cards, 10)
	if q.Len() != 10 {
		t.Errorf("Len = %d, want 10", q.Len())
	}

	q = c.Build(cards, 0)
	if !q.Done() {
		t.Error("zero-length queue should be done")
	}

	q = c.Build(nil, 10)
	if !q.Done() {
		t.Error("empty deck should yield a done queue")
	}
}

func TestBuild_BiasesTowardMissedCards(t *testing.T) {
	c := New(42)
	cards := []Card{
		{ID: "easy"},
		{ID: "hard", Wrong: 3, LeechCount: 1}, // weight 5 vs 1
	}

	counts := map[string]int{}
	q := c.Build(cards, 600)
	for !q.Done() {
		card, _ := q.Current()
		counts[card.ID]++
		q.Record(true)
	}

	if counts["easy"] == 0 {
		t.Error("easy card never sampled; weighting must not exclude clean cards")
	}
	if counts["hard"] <= counts["easy"] {
		t.Errorf("hard=%d easy=%d, want hard sampled more", counts["hard"], counts["easy"])
	}
}

func TestBuild_DeterministicForSeed(t *testing.T) {
	cards := []Card{{ID: "a", Wrong: 2}, {ID: "b"}, {ID: "c", LeechCount: 1}}

	ids := func(q *Queue) []string {
		var out []string
		for !q.Done() {
			card, _ := q.Current()
			out = append(out, card.ID)
			q.Record(true)
		}
		return out
	}

	first := ids(New(7).Build(cards, 20))
	second := ids(New(7).Build(cards, 20))
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("position %d differs: %s vs %s", i, first[i], second[i])
		}
	}
}

func TestRecord_MissReinsertsTwoAhead(t *testing.T) {
	q := &Queue{items: []Card{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}}}

	q.Record(false) // miss "a" at index 0: reinserted at position 2

	if q.Len() != 5 {
		t.Fatalf("Len = %d, want 5", q.Len())
	}
	want := []string{"a", "b", "a", "c", "d"}
	for i, id := range want {
		if q.items[i].ID != id {
			t.Errorf("items[%d] = %s, want %s", i, q.items[i].ID, id)
		}
	}

	card, ok := q.Current()
	if !ok || card.ID != "b" {
		t.Errorf("cursor at %v, want b", card.ID)
	}
}

func TestRecord_MissNearEndAppends(t *testing.T) {
	q := &Queue{items: []Card{{ID: "a"}, {ID: "b"}}}
	q.Record(true) // pass "a"
	q.Record(false) // miss "b" at the last position

	want := []string{"a", "b", "b"}
	if q.Len() != len(want) {
		t.Fatalf("Len = %d, want %d", q.Len(), len(want))
	}
	for i, id := range want {
		if q.items[i].ID != id {
			t.Errorf("items[%d] = %s, want %s", i, q.items[i].ID, id)
		}
	}

	card, ok := q.Current()
	if !ok || card.ID != "b" {
		t.Error("retry should be reachable before the sitting ends")
	}
}

func TestRecord_PassAdvancesWithoutGrowth(t *testing.T) {
	q := &Queue{items: []Card{{ID: "a"}, {ID: "b"}}}
	q.Record(true)
	if q.Len() != 2 {
		t.Errorf("Len = %d, want 2", q.Len())
	}
	card, _ := q.Current()
	if card.ID != "b" {
		t.Errorf("cursor at %s, want b", card.ID)
	}
	q.Record(true)
	if !q.Done() {
		t.Error("queue should be done")
	}
}
