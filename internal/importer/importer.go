// Package importer loads vocabulary pairs from "prompt;answer" text files
// into the deck.
package importer

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/nosziii/words/internal/srs"
	"github.com/nosziii/words/internal/store"
)

// Pair is one prompt/answer line from an import file.
type Pair struct {
	Prompt string
	Answer string
}

// Summary reports what an import run did.
type Summary struct {
	Imported int
	Skipped  int // duplicates of cards already in the deck
	Invalid  int // malformed lines dropped by the parser
}

// maxLineBytes bounds a single import line. Anything longer is not a
// vocabulary pair.
const maxLineBytes = 1 << 20

// Parse reads semicolon-separated pairs, one per line. The first ';' splits
// prompt from answer, so answers may themselves contain semicolons. Blank
// lines, lines missing either side and lines over maxLineBytes are counted
// as invalid and skipped.
func Parse(r io.Reader) ([]Pair, int, error) {
	var pairs []Pair
	invalid := 0

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		prompt, answer, ok := strings.Cut(line, ";")
		prompt = strings.TrimSpace(prompt)
		answer = strings.TrimSpace(answer)
		if !ok || prompt == "" || answer == "" {
			invalid++
			continue
		}
		pairs = append(pairs, Pair{Prompt: prompt, Answer: answer})
	}
	if err := sc.Err(); err != nil {
		// An oversized line is bad input, not a read failure. The rest of
		// the file is unreachable past it, so parsing stops there.
		if errors.Is(err, bufio.ErrTooLong) {
			return pairs, invalid + 1, nil
		}
		return nil, invalid, err
	}
	return pairs, invalid, nil
}

// Import inserts the pairs in a single transaction. Each new card gets a
// fresh review state due the same day. Pairs already present (same prompt
// and answer) are skipped rather than failing the run.
func Import(ctx context.Context, st *store.Store, pairs []Pair, now time.Time) (Summary, error) {
	sum := Summary{}
	createdAt := now.UTC().Format(time.RFC3339)
	dueDay := srs.DayOf(now).Format(store.DayFormat)

	err := st.WithTx(ctx, func(tx *sqlx.Tx) error {
		for _, p := range pairs {
			exists, err := store.CardExistsTx(tx, p.Prompt, p.Answer)
			if err != nil {
				return err
			}
			if exists {
				sum.Skipped++
				continue
			}
			card := store.Card{
				ID:        uuid.NewString(),
				Prompt:    p.Prompt,
				Answer:    p.Answer,
				CreatedAt: createdAt,
			}
			if err := store.InsertCardTx(tx, card); err != nil {
				return err
			}
			if err := store.InsertStateTx(tx, card.ID, dueDay); err != nil {
				return err
			}
			sum.Imported++
		}
		return nil
	})
	if err != nil {
		return Summary{}, err
	}
	return sum, nil
}
