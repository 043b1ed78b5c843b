package handler

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mydiary/journal-insights/internal/analytics"
	"github.com/mydiary/journal-insights/internal/domain"
)

// MockUserService is a mock implementation of service.UserService
type MockUserService struct {
	createFunc      func(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error)
	getByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	updateGoalsFunc func(ctx context.Context, id uuid.UUID, req *domain.UpdateGoalsRequest) (*domain.User, error)
}

func (m *MockUserService) Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return &domain.User{ID: uuid.New(), Timezone: req.Timezone, DailyGoal: 1, WeeklyGoal: 7}, nil
}

func (m *MockUserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *MockUserService) UpdateGoals(ctx context.Context, id uuid.UUID, req *domain.UpdateGoalsRequest) (*domain.User, error) {
	if m.updateGoalsFunc != nil {
		return m.updateGoalsFunc(ctx, id, req)
	}
	return nil, domain.ErrNotFound
}

// MockEntryService is a mock implementation of service.EntryService
type MockEntryService struct {
	createFunc  func(ctx context.Context, userID uuid.UUID, req *domain.CreateEntryRequest) (*domain.Entry, bool, error)
	getByIDFunc func(ctx context.Context, userID, entryID uuid.UUID) (*domain.Entry, error)
	updateFunc  func(ctx context.Context, userID, entryID uuid.UUID, req *domain.UpdateEntryRequest) (*domain.Entry, error)
	deleteFunc  func(ctx context.Context, userID, entryID uuid.UUID) error
	listFunc    func(ctx context.Context, userID uuid.UUID, filter domain.EntryFilter) (*domain.EntryListResponse, error)
}

func (m *MockEntryService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateEntryRequest) (*domain.Entry, bool, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, userID, req)
	}
	occurredAt := time.Now().UTC()
	if req.OccurredAt != nil {
		occurredAt = *req.OccurredAt
	}
	return &domain.Entry{
		ID:         uuid.New(),
		UserID:     userID,
		Title:      req.Title,
		Content:    req.Content,
		Mood:       req.Mood,
		WordCount:  domain.CountWords(req.Content),
		OccurredAt: occurredAt,
		CreatedAt:  time.Now(),
	}, false, nil
}

func (m *MockEntryService) GetByID(ctx context.Context, userID, entryID uuid.UUID) (*domain.Entry, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, userID, entryID)
	}
	return nil, domain.ErrNotFound
}

func (m *MockEntryService) Update(ctx context.Context, userID, entryID uuid.UUID, req *domain.UpdateEntryRequest) (*domain.Entry, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, userID, entryID, req)
	}
	return nil, domain.ErrNotFound
}

func (m *MockEntryService) Delete(ctx context.Context, userID, entryID uuid.UUID) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, userID, entryID)
	}
	return domain.ErrNotFound
}

func (m *MockEntryService) List(ctx context.Context, userID uuid.UUID, filter domain.EntryFilter) (*domain.EntryListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, filter)
	}
	return &domain.EntryListResponse{
		Data:       []domain.EntryResponse{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

// MockAnalyticsService is a mock implementation of service.AnalyticsService
type MockAnalyticsService struct {
	streaksFunc      func(ctx context.Context, userID uuid.UUID) (*domain.StreakResult, error)
	productivityFunc func(ctx context.Context, userID uuid.UUID) (*domain.ProductivityScore, error)
	moodTrendsFunc   func(ctx context.Context, userID uuid.UUID, weeks int) (*domain.MoodTrendResult, error)
	keywordsFunc     func(ctx context.Context, userID uuid.UUID, scope analytics.KeywordScope, topK int) (*domain.KeywordCloud, error)
	journeyFunc      func(ctx context.Context, userID uuid.UUID) (*domain.EmotionalJourney, error)
}

func (m *MockAnalyticsService) Streaks(ctx context.Context, userID uuid.UUID) (*domain.StreakResult, error) {
	if m.streaksFunc != nil {
		return m.streaksFunc(ctx, userID)
	}
	return &domain.StreakResult{}, nil
}

func (m *MockAnalyticsService) Productivity(ctx context.Context, userID uuid.UUID) (*domain.ProductivityScore, error) {
	if m.productivityFunc != nil {
		return m.productivityFunc(ctx, userID)
	}
	return &domain.ProductivityScore{}, nil
}

func (m *MockAnalyticsService) MoodTrends(ctx context.Context, userID uuid.UUID, weeks int) (*domain.MoodTrendResult, error) {
	if m.moodTrendsFunc != nil {
		return m.moodTrendsFunc(ctx, userID, weeks)
	}
	return &domain.MoodTrendResult{Trend: domain.TrendInsufficientData}, nil
}

func (m *MockAnalyticsService) Keywords(ctx context.Context, userID uuid.UUID, scope analytics.KeywordScope, topK int) (*domain.KeywordCloud, error) {
	if m.keywordsFunc != nil {
		return m.keywordsFunc(ctx, userID, scope, topK)
	}
	return &domain.KeywordCloud{Words: []domain.KeywordItem{}}, nil
}

func (m *MockAnalyticsService) Journey(ctx context.Context, userID uuid.UUID) (*domain.EmotionalJourney, error) {
	if m.journeyFunc != nil {
		return m.journeyFunc(ctx, userID)
	}
	return &domain.EmotionalJourney{}, nil
}

// MockDashboardService is a mock implementation of service.DashboardService
type MockDashboardService struct {
	buildFunc func(ctx context.Context, userID uuid.UUID) (*domain.DashboardResponse, error)
}

func (m *MockDashboardService) Build(ctx context.Context, userID uuid.UUID) (*domain.DashboardResponse, error) {
	if m.buildFunc != nil {
		return m.buildFunc(ctx, userID)
	}
	return &domain.DashboardResponse{}, nil
}
