package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/mydiary/journal-insights/internal/domain"
)

// KeywordScope selects how much history the keyword builder scans.
type KeywordScope string

const (
	// KeywordScopeRecent scans the most recent entries only.
	KeywordScopeRecent KeywordScope = "recent"
	// KeywordScopeAll scans the full history for a complete word cloud.
	KeywordScopeAll KeywordScope = "all"
)

// Keywords frequency-counts filtered tokens across an entry window and
// emits a sized, categorized keyword list. topK overrides the scope's
// default keep limit when positive. The highest-frequency word always
// renders at the top of the size range; ties in frequency keep first-seen
// order.
func Keywords(entries []domain.Entry, now time.Time, scope KeywordScope, topK int, cfg Config) (domain.KeywordCloud, error) {
	cfg = cfg.withDefaults()

	sorted, err := prepare(entries, now)
	if err != nil {
		return domain.KeywordCloud{}, err
	}

	if scope == KeywordScopeRecent && len(sorted) > cfg.KeywordRecentEntries {
		sorted = sorted[len(sorted)-cfg.KeywordRecentEntries:]
	}
	if topK <= 0 {
		if scope == KeywordScopeAll {
			topK = cfg.KeywordTopKFull
		} else {
			topK = cfg.KeywordTopK
		}
	}

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	var order []string
	for _, e := range sorted {
		for _, token := range Tokenize(e.Content) {
			if _, seen := counts[token]; !seen {
				firstSeen[token] = len(order)
				order = append(order, token)
			}
			counts[token]++
		}
	}

	result := domain.KeywordCloud{
		Words:          []domain.KeywordItem{},
		CategoryTotals: make(map[string]int),
		EntriesScanned: len(sorted),
	}
	if len(order) == 0 {
		return result, nil
	}

	// Descending frequency, ties by first-seen order in the scanned
	// sequence.
	sort.Slice(order, func(i, j int) bool {
		if counts[order[i]] == counts[order[j]] {
			return firstSeen[order[i]] < firstSeen[order[j]]
		}
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > topK {
		order = order[:topK]
	}

	maxFreq := counts[order[0]]
	for _, word := range order {
		category := categorize(word)
		result.Words = append(result.Words, domain.KeywordItem{
			Text:           word,
			Frequency:      counts[word],
			NormalizedSize: normalizedSize(counts[word], maxFreq, cfg),
			Category:       category,
			Color:          CategoryColor(category),
		})
		result.CategoryTotals[category] += counts[word]
	}

	return result, nil
}

// normalizedSize maps a frequency into the configured display range
// relative to the maximum frequency of the current result set.
func normalizedSize(freq, maxFreq int, cfg Config) int {
	span := float64(cfg.WordSizeMax - cfg.WordSizeMin)
	return int(math.Round(float64(cfg.WordSizeMin) + float64(freq)/float64(maxFreq)*span))
}
