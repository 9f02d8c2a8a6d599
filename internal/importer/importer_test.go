package importer

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nosziii/words/internal/store"
)

func TestParse(t *testing.T) {
	input := strings.Join([]string{
		"der Hund;the dog",
		"  das Haus ; the house  ",
		"",
		"no separator here",
		";missing prompt",
		"missing answer;",
		"der Satz;a phrase; with a semicolon",
	}, "\n")

	pairs, invalid, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 3, invalid)
	require.Len(t, pairs, 3)
	assert.Equal(t, Pair{Prompt: "der Hund", Answer: "the dog"}, pairs[0])
	assert.Equal(t, Pair{Prompt: "das Haus", Answer: "the house"}, pairs[1])
	assert.Equal(t, Pair{Prompt: "der Satz", Answer: "a phrase; with a semicolon"}, pairs[2])
}

func TestParse_LongLines(t *testing.T) {
	// Longer than the scanner's 64 KiB default, still a valid pair.
	long := strings.Repeat("a", 100*1024)
	pairs, invalid, err := Parse(strings.NewReader(long + ";answer\n"))
	require.NoError(t, err)
	assert.Zero(t, invalid)
	require.Len(t, pairs, 1)
	assert.Equal(t, long, pairs[0].Prompt)

	// Over the hard cap: counted invalid, earlier pairs kept, no error.
	huge := strings.Repeat("b", (1<<20)+1)
	pairs, invalid, err = Parse(strings.NewReader("eins;one\n" + huge + ";two\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, invalid)
	require.Len(t, pairs, 1)
	assert.Equal(t, "eins", pairs[0].Prompt)
}

func TestImport(t *testing.T) {
	s, err := store.Open("file::memory:?cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	ctx := context.Background()
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	pairs := []Pair{
		{Prompt: "eins", Answer: "one"},
		{Prompt: "zwei", Answer: "two"},
		{Prompt: "eins", Answer: "one"}, // duplicate within the file
	}

	sum, err := Import(ctx, s, pairs, now)
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Imported)
	assert.Equal(t, 1, sum.Skipped)

	count, err := s.CountCards(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	// Re-importing the same file is a no-op.
	sum, err = Import(ctx, s, pairs[:2], now)
	require.NoError(t, err)
	assert.Equal(t, 0, sum.Imported)
	assert.Equal(t, 2, sum.Skipped)

	// New cards start due today with default scheduling state.
	stats, err := s.ListCardStats(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 2)
	for _, st := range stats {
		assert.Equal(t, "2026-03-10", st.DueDate)
		assert.InDelta(t, 2.5, st.EaseFactor, 1e-9)
		assert.Zero(t, st.Attempts)
	}
}
