// Package analytics turns a user's journal entries into derived reports:
// writing streaks, a productivity score, mood trends, a weighted keyword
// cloud, and an emotional resilience profile. Every report is a pure
// function of (entries, now, Config) with no I/O and no clock reads, so
// repeated calls with the same input return identical output.
package analytics

const (
	// Productivity score weights and caps. These are a frozen heuristic
	// contract, not tunable model parameters.
	ConsistencyWeight = 5
	ConsistencyCap    = 40
	VolumeWeight      = 2
	VolumeCap         = 30
	QualityDivisor    = 10
	QualityCap        = 20
	GoalWeight        = 10

	// TrendRecentPoints is the number of most recent scored entries
	// compared against the overall mean for trend classification.
	TrendRecentPoints = 3

	// DefaultResilienceScore is reported when a user has entries but no
	// negative-to-positive recoveries. A neutral midpoint rather than zero,
	// so absence of data implies neither resilience nor fragility.
	DefaultResilienceScore = 50.0
)

// GoalConfig carries the user's writing goals into the productivity scorer.
type GoalConfig struct {
	// Target entries per day; zero or negative means the goal is not set.
	DailyGoal int
	// Target entries per week; zero or negative means the goal is not set.
	WeeklyGoal int
}

// Config holds the engine's tunable windows and limits. The zero value is
// usable: any unset field falls back to its default.
type Config struct {
	// Days in the trailing consistency window (default 30)
	TrailingDays int
	// Recent entries considered for mood seeding in recommendations (default 10)
	RecentEntriesWindow int
	// Trailing ISO weeks bucketed for mood trends (default 12)
	TrendWeeks int
	// Mean-score delta required to call a trend improving/declining (default 0.1)
	TrendThreshold float64
	// Entries scanned for the "recent" keyword scope (default 30)
	KeywordRecentEntries int
	// Keywords kept in the recent scope (default 12)
	KeywordTopK int
	// Keywords kept in the full word cloud scope (default 50)
	KeywordTopKFull int
	// Smallest rendered word size (default 10)
	WordSizeMin int
	// Largest rendered word size (default 60)
	WordSizeMax int
	// Entries required before resilience is computed (default 5)
	MinEntriesForResilience int
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() Config {
	return Config{
		TrailingDays:            30,
		RecentEntriesWindow:     10,
		TrendWeeks:              12,
		TrendThreshold:          0.1,
		KeywordRecentEntries:    30,
		KeywordTopK:             12,
		KeywordTopKFull:         50,
		WordSizeMin:             10,
		WordSizeMax:             60,
		MinEntriesForResilience: 5,
	}
}

// withDefaults fills any zero field from DefaultConfig.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.TrailingDays <= 0 {
		c.TrailingDays = def.TrailingDays
	}
	if c.RecentEntriesWindow <= 0 {
		c.RecentEntriesWindow = def.RecentEntriesWindow
	}
	if c.TrendWeeks <= 0 {
		c.TrendWeeks = def.TrendWeeks
	}
	if c.TrendThreshold <= 0 {
		c.TrendThreshold = def.TrendThreshold
	}
	if c.KeywordRecentEntries <= 0 {
		c.KeywordRecentEntries = def.KeywordRecentEntries
	}
	if c.KeywordTopK <= 0 {
		c.KeywordTopK = def.KeywordTopK
	}
	if c.KeywordTopKFull <= 0 {
		c.KeywordTopKFull = def.KeywordTopKFull
	}
	if c.WordSizeMin <= 0 {
		c.WordSizeMin = def.WordSizeMin
	}
	if c.WordSizeMax <= c.WordSizeMin {
		c.WordSizeMax = def.WordSizeMax
	}
	if c.MinEntriesForResilience <= 0 {
		c.MinEntriesForResilience = def.MinEntriesForResilience
	}
	return c
}
