package analytics

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/mydiary/journal-insights/internal/domain"
)

var testUserID = uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")

func entryAt(at time.Time, content string, mood *domain.Mood) domain.Entry {
	return domain.Entry{
		ID:         uuid.New(),
		UserID:     testUserID,
		Content:    content,
		Mood:       mood,
		WordCount:  domain.CountWords(content),
		OccurredAt: at,
	}
}

// dailyEntries builds one entry per day for n consecutive days ending at
// end (inclusive).
func dailyEntries(end time.Time, n int, content string) []domain.Entry {
	entries := make([]domain.Entry, 0, n)
	for i := n - 1; i >= 0; i-- {
		entries = append(entries, entryAt(end.AddDate(0, 0, -i), content, nil))
	}
	return entries
}

func moodPtr(m domain.Mood) *domain.Mood {
	return &m
}

// shuffled returns a copy of entries in a deterministic pseudo-random order.
func shuffled(entries []domain.Entry) []domain.Entry {
	out := make([]domain.Entry, len(entries))
	copy(out, entries)
	rng := rand.New(rand.NewSource(42))
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
