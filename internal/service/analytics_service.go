package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mydiary/journal-insights/internal/analytics"
	"github.com/mydiary/journal-insights/internal/domain"
	"github.com/mydiary/journal-insights/internal/repository"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// AnalyticsService runs the derived reports over a user's entry history.
// Every report captures the reference time once, so a single request is
// internally consistent even across midnight.
type AnalyticsService interface {
	Streaks(ctx context.Context, userID uuid.UUID) (*domain.StreakResult, error)
	Productivity(ctx context.Context, userID uuid.UUID) (*domain.ProductivityScore, error)
	MoodTrends(ctx context.Context, userID uuid.UUID, weeks int) (*domain.MoodTrendResult, error)
	Keywords(ctx context.Context, userID uuid.UUID, scope analytics.KeywordScope, topK int) (*domain.KeywordCloud, error)
	Journey(ctx context.Context, userID uuid.UUID) (*domain.EmotionalJourney, error)
}

type analyticsService struct {
	entryRepo repository.EntryRepository
	userRepo  repository.UserRepository
	cfg       analytics.Config
	now       func() time.Time
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(entryRepo repository.EntryRepository, userRepo repository.UserRepository) AnalyticsService {
	return &analyticsService{
		entryRepo: entryRepo,
		userRepo:  userRepo,
		cfg:       analytics.DefaultConfig(),
		now:       time.Now,
	}
}

// loadHistory validates the user and fetches their full entry history in
// ascending order.
func (s *analyticsService) loadHistory(ctx context.Context, userID uuid.UUID) ([]domain.Entry, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}
	return s.entryRepo.ListAll(ctx, userID)
}

func (s *analyticsService) startSpan(ctx context.Context, name string, userID uuid.UUID) (context.Context, trace.Span) {
	tracer := otel.Tracer("journal-insights-api/analytics")
	return tracer.Start(ctx, name,
		trace.WithAttributes(attribute.String("user.id", userID.String())),
	)
}

func (s *analyticsService) Streaks(ctx context.Context, userID uuid.UUID) (*domain.StreakResult, error) {
	ctx, span := s.startSpan(ctx, "AnalyticsService.Streaks", userID)
	defer span.End()

	entries, err := s.loadHistory(ctx, userID)
	if err != nil {
		return nil, err
	}

	result, err := analytics.Streaks(entries, s.now().UTC(), s.cfg)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(
		attribute.Int("streak.current", result.CurrentStreak),
		attribute.Int("streak.longest", result.LongestStreak),
	)
	return &result, nil
}

func (s *analyticsService) Productivity(ctx context.Context, userID uuid.UUID) (*domain.ProductivityScore, error) {
	ctx, span := s.startSpan(ctx, "AnalyticsService.Productivity", userID)
	defer span.End()

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	entries, err := s.entryRepo.ListAll(ctx, userID)
	if err != nil {
		return nil, err
	}

	goals := analytics.GoalConfig{
		DailyGoal:  user.DailyGoal,
		WeeklyGoal: user.WeeklyGoal,
	}
	result, err := analytics.Productivity(entries, s.now().UTC(), goals, s.cfg)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("productivity.score", result.Score))
	return &result, nil
}

func (s *analyticsService) MoodTrends(ctx context.Context, userID uuid.UUID, weeks int) (*domain.MoodTrendResult, error) {
	ctx, span := s.startSpan(ctx, "AnalyticsService.MoodTrends", userID)
	defer span.End()

	entries, err := s.loadHistory(ctx, userID)
	if err != nil {
		return nil, err
	}

	cfg := s.cfg
	if weeks > 0 {
		cfg.TrendWeeks = weeks
	}
	result, err := analytics.MoodTrends(entries, s.now().UTC(), cfg)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(
		attribute.String("mood.trend", string(result.Trend)),
		attribute.Int("mood.scored_entries", result.ScoredEntries),
	)
	return &result, nil
}

func (s *analyticsService) Keywords(ctx context.Context, userID uuid.UUID, scope analytics.KeywordScope, topK int) (*domain.KeywordCloud, error) {
	ctx, span := s.startSpan(ctx, "AnalyticsService.Keywords", userID)
	defer span.End()

	entries, err := s.loadHistory(ctx, userID)
	if err != nil {
		return nil, err
	}

	result, err := analytics.Keywords(entries, s.now().UTC(), scope, topK, s.cfg)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(
		attribute.String("keywords.scope", string(scope)),
		attribute.Int("keywords.count", len(result.Words)),
	)
	return &result, nil
}

func (s *analyticsService) Journey(ctx context.Context, userID uuid.UUID) (*domain.EmotionalJourney, error) {
	ctx, span := s.startSpan(ctx, "AnalyticsService.Journey", userID)
	defer span.End()

	entries, err := s.loadHistory(ctx, userID)
	if err != nil {
		return nil, err
	}

	result, err := analytics.Journey(entries, s.now().UTC(), s.cfg)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(
		attribute.Float64("journey.resilience_score", result.Resilience.Score),
		attribute.Int("journey.points", len(result.Points)),
	)
	return &result, nil
}
