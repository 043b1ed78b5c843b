package analytics

import (
	"strings"
	"time"

	"github.com/mydiary/journal-insights/internal/domain"
)

// ClassifySentiment applies the lexicon heuristic to one entry body:
// occurrences of each positive and negative lexicon word are counted by
// substring match against the lowercased text, and the larger side wins.
func ClassifySentiment(text string) domain.Sentiment {
	lower := strings.ToLower(text)

	positive, negative := 0, 0
	for _, w := range positiveWords {
		positive += strings.Count(lower, w)
	}
	for _, w := range negativeWords {
		negative += strings.Count(lower, w)
	}

	switch {
	case positive > negative:
		return domain.SentimentPositive
	case negative > positive:
		return domain.SentimentNegative
	default:
		return domain.SentimentNeutral
	}
}

// Journey classifies each entry's sentiment, collects contiguous
// positive/negative runs, and derives a resilience score from
// negative-to-positive recovery distances. A neutral point closes a run of
// either polarity; neutral points never count toward a pending recovery.
func Journey(entries []domain.Entry, now time.Time, cfg Config) (domain.EmotionalJourney, error) {
	cfg = cfg.withDefaults()

	sorted, err := prepare(entries, now)
	if err != nil {
		return domain.EmotionalJourney{}, err
	}

	result := domain.EmotionalJourney{
		Points:          []domain.JourneyPoint{},
		PositivePeriods: []domain.SentimentPeriod{},
		NegativePeriods: []domain.SentimentPeriod{},
	}

	for _, e := range sorted {
		if e.Content == "" {
			continue
		}
		result.Points = append(result.Points, domain.JourneyPoint{
			Date:      e.OccurredAt,
			Sentiment: ClassifySentiment(e.Content),
			Mood:      e.Mood,
		})
	}

	result.PositivePeriods, result.NegativePeriods = collectPeriods(result.Points)
	result.Resilience = resilience(result.Points, len(sorted), cfg)

	return result, nil
}

// collectPeriods finds maximal contiguous runs of the same non-neutral
// sentiment. A neutral point or a polarity change closes the current run;
// an open run at the end of the sequence is recorded closed at the last
// point.
func collectPeriods(points []domain.JourneyPoint) (positive, negative []domain.SentimentPeriod) {
	positive = []domain.SentimentPeriod{}
	negative = []domain.SentimentPeriod{}

	runStart := -1
	var runSentiment domain.Sentiment

	endRun := func(endIdx int) {
		if runStart < 0 {
			return
		}
		period := domain.SentimentPeriod{
			StartDate:  points[runStart].Date,
			EndDate:    points[endIdx].Date,
			EntryCount: endIdx - runStart + 1,
		}
		if runSentiment == domain.SentimentPositive {
			positive = append(positive, period)
		} else {
			negative = append(negative, period)
		}
		runStart = -1
	}

	for i, p := range points {
		switch {
		case p.Sentiment == domain.SentimentNeutral:
			endRun(i - 1)
		case runStart < 0:
			runStart, runSentiment = i, p.Sentiment
		case p.Sentiment != runSentiment:
			endRun(i - 1)
			runStart, runSentiment = i, p.Sentiment
		}
	}
	endRun(len(points) - 1)

	return positive, negative
}

// resilience derives a 0-100 recovery-speed score. Each time a negative run
// is immediately followed by a positive point, the distance from the run's
// start is a recovery event. With no recoveries the score defaults to the
// neutral midpoint; with too few entries the report is flagged insufficient
// instead of computed from a meaningless sample.
func resilience(points []domain.JourneyPoint, totalEntries int, cfg Config) domain.Resilience {
	if totalEntries < cfg.MinEntriesForResilience {
		return domain.Resilience{
			Score:            0,
			Level:            domain.ResilienceVeryLow,
			InsufficientData: true,
		}
	}

	var recoverySteps []int
	negStart := -1
	for i, p := range points {
		switch p.Sentiment {
		case domain.SentimentNegative:
			if negStart < 0 {
				negStart = i
			}
		case domain.SentimentPositive:
			if negStart >= 0 {
				recoverySteps = append(recoverySteps, i-negStart)
			}
			negStart = -1
		default:
			// Neutral breaks the pending negative run.
			negStart = -1
		}
	}

	result := domain.Resilience{
		Score:              DefaultResilienceScore,
		RecoveryEventCount: len(recoverySteps),
	}
	if len(recoverySteps) > 0 {
		sum, max := 0, 0
		for _, s := range recoverySteps {
			sum += s
			if s > max {
				max = s
			}
		}
		avg := float64(sum) / float64(len(recoverySteps))
		result.AverageRecoverySteps = round2(avg)
		result.Score = round1((1 - avg/float64(max)) * 100)
	}
	result.Level = resilienceLevel(result.Score)

	return result
}

func resilienceLevel(score float64) domain.ResilienceLevel {
	switch {
	case score >= 80:
		return domain.ResilienceVeryHigh
	case score >= 60:
		return domain.ResilienceHigh
	case score >= 40:
		return domain.ResilienceModerate
	case score >= 20:
		return domain.ResilienceLow
	default:
		return domain.ResilienceVeryLow
	}
}
