package analytics

import (
	"time"

	"github.com/mydiary/journal-insights/internal/domain"
)

// MoodTrends buckets mood labels into ISO weeks over a trailing window and
// classifies the recent trend direction against the all-time mean. Entries
// without a mood label are skipped. Fewer than three scored entries yields
// "insufficient_data".
func MoodTrends(entries []domain.Entry, now time.Time, cfg Config) (domain.MoodTrendResult, error) {
	cfg = cfg.withDefaults()

	sorted, err := prepare(entries, now)
	if err != nil {
		return domain.MoodTrendResult{}, err
	}

	result := domain.MoodTrendResult{
		Distribution: make(map[domain.Mood]int),
		RecentWindow: []domain.MoodBucket{},
		Trend:        domain.TrendInsufficientData,
	}

	cutoff := now.AddDate(0, 0, -cfg.TrendWeeks*7)

	type bucketKey struct{ year, week int }
	buckets := make(map[bucketKey]*domain.MoodBucket)
	var bucketOrder []bucketKey

	var scores []float64
	var moodOrder []domain.Mood

	for _, e := range sorted {
		if e.Mood == nil || e.OccurredAt.Before(cutoff) {
			continue
		}

		mood := *e.Mood
		if _, seen := result.Distribution[mood]; !seen {
			moodOrder = append(moodOrder, mood)
		}
		result.Distribution[mood]++
		scores = append(scores, moodScores[mood])

		year, week := e.OccurredAt.UTC().ISOWeek()
		key := bucketKey{year, week}
		bucket, ok := buckets[key]
		if !ok {
			bucket = &domain.MoodBucket{
				Year:   year,
				Week:   week,
				Counts: make(map[domain.Mood]int),
			}
			buckets[key] = bucket
			bucketOrder = append(bucketOrder, key)
		}
		bucket.Counts[mood]++
	}
	result.ScoredEntries = len(scores)

	// Per-bucket mean scores in ascending order (entries are sorted, so
	// bucketOrder is chronological).
	for _, key := range bucketOrder {
		bucket := buckets[key]
		sum, n := 0.0, 0
		for mood, count := range bucket.Counts {
			sum += moodScores[mood] * float64(count)
			n += count
		}
		if n > 0 {
			bucket.MeanScore = round2(sum / float64(n))
		}
		result.RecentWindow = append(result.RecentWindow, *bucket)
	}

	// Mode of the distribution; ties resolve to the mood first encountered
	// in ascending bucket order.
	best := 0
	for _, mood := range moodOrder {
		if result.Distribution[mood] > best {
			best = result.Distribution[mood]
			result.MostCommonMood = mood
		}
	}

	if len(scores) < TrendRecentPoints {
		return result, nil
	}

	overall := mean(scores)
	recent := mean(scores[len(scores)-TrendRecentPoints:])
	switch {
	case recent > overall+cfg.TrendThreshold:
		result.Trend = domain.TrendImproving
	case recent < overall-cfg.TrendThreshold:
		result.Trend = domain.TrendDeclining
	default:
		result.Trend = domain.TrendStable
	}

	return result, nil
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
