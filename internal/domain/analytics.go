package domain

import "time"

// Trend classifies the recent mood direction.
// @Description Mood trend direction over the recent window.
type Trend string

const (
	TrendImproving        Trend = "improving"
	TrendDeclining        Trend = "declining"
	TrendStable           Trend = "stable"
	TrendInsufficientData Trend = "insufficient_data"
)

// Sentiment is the lexicon-classified tone of a single entry.
// @Description Heuristic sentiment classification of an entry.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// ResilienceLevel buckets the resilience score into a label.
type ResilienceLevel string

const (
	ResilienceVeryHigh ResilienceLevel = "very_high"
	ResilienceHigh     ResilienceLevel = "high"
	ResilienceModerate ResilienceLevel = "moderate"
	ResilienceLow      ResilienceLevel = "low"
	ResilienceVeryLow  ResilienceLevel = "very_low"
)

// StreakResult contains consecutive-day writing streak statistics.
// @Description Writing streak analysis over distinct calendar days (UTC).
type StreakResult struct {
	// Consecutive days ending at or touching today
	CurrentStreak int `json:"current_streak" example:"4"`
	// Longest consecutive-day run in the full history
	LongestStreak int `json:"longest_streak" example:"12"`
	// Distinct calendar days with at least one entry
	TotalWritingDays int `json:"total_writing_days" example:"87"`
	// Share of the trailing 30 days with at least one entry (0-100)
	ConsistencyPercent float64 `json:"consistency_percent" example:"63.3"`
}

// ScoreComponents breaks the productivity score into its capped parts.
// @Description Capped sub-scores contributing to the productivity score.
type ScoreComponents struct {
	// min(current_streak x 5, 40)
	Consistency float64 `json:"consistency" example:"20"`
	// min(entries_last_30_days x 2, 30)
	Volume float64 `json:"volume" example:"24"`
	// min(avg_word_count / 10, 20)
	Quality float64 `json:"quality" example:"15.2"`
	// daily_progress x 10
	Goal float64 `json:"goal" example:"10"`
}

// GoalProgress tracks progress against writing goals.
// @Description Progress toward the user's daily and weekly entry goals.
type GoalProgress struct {
	DailyGoal      int     `json:"daily_goal" example:"1"`
	WeeklyGoal     int     `json:"weekly_goal" example:"7"`
	TodayEntries   int     `json:"today_entries" example:"1"`
	WeekEntries    int     `json:"week_entries" example:"5"`
	DailyProgress  float64 `json:"daily_progress" example:"1.0"`
	WeeklyProgress float64 `json:"weekly_progress" example:"0.71"`
}

// WritingPatterns summarizes when and how much the user writes.
// @Description Hour-of-day and day-of-week writing habit analysis.
type WritingPatterns struct {
	// Hour (0-23) with the most entries, -1 when no entries
	MostProductiveHour int `json:"most_productive_hour" example:"21"`
	// Weekday name with the most entries, empty when no entries
	MostProductiveDay string `json:"most_productive_day" example:"Sunday"`
	// Average words per entry
	AvgWordCount float64 `json:"avg_word_count" example:"182.4"`
	// Total words across all entries
	TotalWords int `json:"total_words" example:"15832"`
	// Entry count per hour of day
	HourDistribution map[int]int `json:"hour_distribution"`
	// Entry count per weekday name
	DayDistribution map[string]int `json:"day_distribution"`
}

// ProductivityScore is the composite 0-100 productivity report.
// @Description Composite writing productivity score with component breakdown.
type ProductivityScore struct {
	// Composite score (0-100)
	Score      int             `json:"score" example:"69"`
	Components ScoreComponents `json:"components"`
	Goals      GoalProgress    `json:"goals"`
	Patterns   WritingPatterns `json:"patterns"`
	// Plain-language recommendations derived from threshold rules
	Recommendations []string `json:"recommendations"`
}

// MoodBucket is one ISO-week bucket of mood counts.
// @Description Mood counts for a single ISO week.
type MoodBucket struct {
	// ISO year of the bucket
	Year int `json:"year" example:"2024"`
	// ISO week number of the bucket
	Week int `json:"week" example:"7"`
	// Count per mood label within the week
	Counts map[Mood]int `json:"counts"`
	// Mean mood score of the bucket
	MeanScore float64 `json:"mean_score" example:"0.5"`
}

// MoodTrendResult contains the mood distribution and trend direction.
// @Description Mood distribution and trend classification over a trailing window.
type MoodTrendResult struct {
	// Count per mood label across the window
	Distribution map[Mood]int `json:"distribution"`
	// Mode of the distribution, empty when no moods recorded
	MostCommonMood Mood `json:"most_common_mood,omitempty" example:"happy"`
	// Trend direction of the recent buckets against the overall mean
	Trend Trend `json:"trend" example:"improving"`
	// Per-week mood counts in ascending bucket order
	RecentWindow []MoodBucket `json:"recent_window"`
	// Entries with a mood label that fell inside the window
	ScoredEntries int `json:"scored_entries" example:"34"`
}

// KeywordItem is one weighted word in the cloud.
// @Description A single keyword with frequency, display size, and category.
type KeywordItem struct {
	Text      string `json:"text" example:"grateful"`
	Frequency int    `json:"frequency" example:"9"`
	// Display size in the configured range, max frequency always renders at the top of the range
	NormalizedSize int `json:"normalized_size" example:"60"`
	// Semantic category bucket
	Category string `json:"category" example:"personal_growth"`
	// Display color for the category
	Color string `json:"color" example:"#8b5cf6"`
}

// KeywordCloud contains the weighted keyword list for visualization.
// @Description Frequency-weighted keyword cloud extracted from entry content.
type KeywordCloud struct {
	Words []KeywordItem `json:"words"`
	// Total keyword count per semantic category
	CategoryTotals map[string]int `json:"category_totals"`
	// Number of entries scanned
	EntriesScanned int `json:"entries_scanned" example:"30"`
}

// JourneyPoint is one classified step in the emotional journey.
// @Description Sentiment classification of a single entry in time order.
type JourneyPoint struct {
	Date      time.Time `json:"date" example:"2024-01-15T21:30:00Z"`
	Sentiment Sentiment `json:"sentiment" example:"positive"`
	Mood      *Mood     `json:"mood,omitempty" example:"happy"`
}

// SentimentPeriod describes a maximal contiguous run of one sentiment.
// @Description Contiguous run of same-polarity entries.
type SentimentPeriod struct {
	StartDate  time.Time `json:"start_date" example:"2024-01-10T08:00:00Z"`
	EndDate    time.Time `json:"end_date" example:"2024-01-14T22:00:00Z"`
	EntryCount int       `json:"entry_count" example:"5"`
}

// Resilience summarizes negative-to-positive recovery behavior.
// @Description Recovery-speed heuristic derived from sentiment transitions.
type Resilience struct {
	// Resilience score (0-100); 50 when no recoveries observed
	Score float64 `json:"score" example:"72.5"`
	// Resilience level label
	Level ResilienceLevel `json:"level" example:"high"`
	// Mean entry-index distance from negative run start to the next positive entry
	AverageRecoverySteps float64 `json:"average_recovery_steps" example:"2.3"`
	// Number of negative-to-positive transitions observed
	RecoveryEventCount int `json:"recovery_event_count" example:"4"`
	// True when the history is too small for a meaningful resilience estimate
	InsufficientData bool `json:"insufficient_data" example:"false"`
}

// EmotionalJourney is the full sentiment-over-time report.
// @Description Classified sentiment timeline with runs and resilience.
type EmotionalJourney struct {
	Points          []JourneyPoint    `json:"points"`
	PositivePeriods []SentimentPeriod `json:"positive_periods"`
	NegativePeriods []SentimentPeriod `json:"negative_periods"`
	Resilience      Resilience        `json:"resilience"`
}

// HeatmapPoint is one day in the activity heatmap.
// @Description Entry count for a single calendar day.
type HeatmapPoint struct {
	Date  string `json:"date" example:"2024-01-15"`
	Count int    `json:"count" example:"2"`
}

// TrendPoint is one day in the entries-per-day trend.
// @Description Labeled entry count for a single day.
type TrendPoint struct {
	Label string `json:"label" example:"Jan 15"`
	Count int    `json:"count" example:"2"`
}

// DashboardStats holds headline totals for the dashboard.
// @Description Headline journal statistics.
type DashboardStats struct {
	TotalEntries     int  `json:"total_entries" example:"231"`
	EntriesThisWeek  int  `json:"entries_this_week" example:"5"`
	EntriesThisMonth int  `json:"entries_this_month" example:"22"`
	MostCommonMood   Mood `json:"most_common_mood,omitempty" example:"happy"`
}

// DashboardResponse aggregates every report for the dashboard view.
// @Description Combined analytics dashboard for one user.
type DashboardResponse struct {
	Stats        DashboardStats    `json:"stats"`
	Streaks      StreakResult      `json:"streaks"`
	Productivity ProductivityScore `json:"productivity"`
	MoodTrends   MoodTrendResult   `json:"mood_trends"`
	Keywords     KeywordCloud      `json:"keywords"`
	Journey      EmotionalJourney  `json:"journey"`
	// Per-day entry counts for the trailing 90 days
	Heatmap []HeatmapPoint `json:"heatmap"`
	// Highest single-day count in the heatmap
	HeatmapMax int `json:"heatmap_max" example:"3"`
	// Per-day entry counts for the trailing 30 days
	Trend []TrendPoint `json:"trend"`
}
