package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/mydiary/journal-insights/internal/analytics"
	"github.com/mydiary/journal-insights/internal/domain"
	"github.com/mydiary/journal-insights/internal/repository"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// DashboardService assembles every report into one dashboard payload. A
// failing section degrades to its zero value instead of failing the whole
// dashboard; input-guard errors still abort since they poison every section.
type DashboardService interface {
	Build(ctx context.Context, userID uuid.UUID) (*domain.DashboardResponse, error)
}

type dashboardService struct {
	entryRepo repository.EntryRepository
	userRepo  repository.UserRepository
	cfg       analytics.Config
	now       func() time.Time
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(entryRepo repository.EntryRepository, userRepo repository.UserRepository) DashboardService {
	return &dashboardService{
		entryRepo: entryRepo,
		userRepo:  userRepo,
		cfg:       analytics.DefaultConfig(),
		now:       time.Now,
	}
}

func (s *dashboardService) Build(ctx context.Context, userID uuid.UUID) (*domain.DashboardResponse, error) {
	tracer := otel.Tracer("journal-insights-api/analytics")
	ctx, span := tracer.Start(ctx, "DashboardService.Build",
		trace.WithAttributes(attribute.String("user.id", userID.String())),
	)
	defer span.End()

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	entries, err := s.entryRepo.ListAll(ctx, userID)
	if err != nil {
		return nil, err
	}

	// One reference time for every section.
	now := s.now().UTC()

	// The input guards reject the whole history, so no section could
	// produce anything meaningful.
	streaks, err := analytics.Streaks(entries, now, s.cfg)
	if err != nil {
		return nil, err
	}

	response := &domain.DashboardResponse{
		Stats:   dashboardStats(entries, now),
		Streaks: streaks,
	}

	goals := analytics.GoalConfig{DailyGoal: user.DailyGoal, WeeklyGoal: user.WeeklyGoal}
	if productivity, err := analytics.Productivity(entries, now, goals, s.cfg); err == nil {
		response.Productivity = productivity
	} else {
		log.Printf("dashboard: productivity section failed for user %s: %v", userID, err)
	}

	if moods, err := analytics.MoodTrends(entries, now, s.cfg); err == nil {
		response.MoodTrends = moods
	} else {
		log.Printf("dashboard: mood section failed for user %s: %v", userID, err)
	}

	if keywords, err := analytics.Keywords(entries, now, analytics.KeywordScopeRecent, 0, s.cfg); err == nil {
		response.Keywords = keywords
	} else {
		log.Printf("dashboard: keywords section failed for user %s: %v", userID, err)
	}

	if journey, err := analytics.Journey(entries, now, s.cfg); err == nil {
		response.Journey = journey
	} else {
		log.Printf("dashboard: journey section failed for user %s: %v", userID, err)
	}

	if heatmap, max, err := analytics.Heatmap(entries, now); err == nil {
		response.Heatmap = heatmap
		response.HeatmapMax = max
	} else {
		log.Printf("dashboard: heatmap section failed for user %s: %v", userID, err)
	}

	if trend, err := analytics.EntryTrend(entries, now); err == nil {
		response.Trend = trend
	} else {
		log.Printf("dashboard: trend section failed for user %s: %v", userID, err)
	}

	span.SetAttributes(attribute.Int("dashboard.total_entries", response.Stats.TotalEntries))
	return response, nil
}

// dashboardStats computes the headline totals directly from the history.
func dashboardStats(entries []domain.Entry, now time.Time) domain.DashboardStats {
	stats := domain.DashboardStats{TotalEntries: len(entries)}

	weekAgo := now.AddDate(0, 0, -7)
	monthAgo := now.AddDate(0, 0, -30)

	moodCounts := make(map[domain.Mood]int)
	var moodOrder []domain.Mood
	for _, e := range entries {
		if !e.OccurredAt.Before(weekAgo) {
			stats.EntriesThisWeek++
		}
		if !e.OccurredAt.Before(monthAgo) {
			stats.EntriesThisMonth++
		}
		if e.Mood != nil {
			if _, seen := moodCounts[*e.Mood]; !seen {
				moodOrder = append(moodOrder, *e.Mood)
			}
			moodCounts[*e.Mood]++
		}
	}

	best := 0
	for _, mood := range moodOrder {
		if moodCounts[mood] > best {
			best = moodCounts[mood]
			stats.MostCommonMood = mood
		}
	}
	return stats
}
