package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/mydiary/journal-insights/internal/analytics"
	"github.com/mydiary/journal-insights/internal/domain"
)

func TestAnalyticsHandler_Streaks(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name           string
		userID         string
		mockService    *MockAnalyticsService
		wantStatusCode int
	}{
		{
			name:   "success",
			userID: userID.String(),
			mockService: &MockAnalyticsService{
				streaksFunc: func(ctx context.Context, id uuid.UUID) (*domain.StreakResult, error) {
					return &domain.StreakResult{CurrentStreak: 4, LongestStreak: 9, TotalWritingDays: 40, ConsistencyPercent: 53.3}, nil
				},
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "invalid UUID",
			userID:         "not-a-uuid",
			mockService:    &MockAnalyticsService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:   "unknown user",
			userID: uuid.New().String(),
			mockService: &MockAnalyticsService{
				streaksFunc: func(ctx context.Context, id uuid.UUID) (*domain.StreakResult, error) {
					return nil, domain.ErrNotFound
				},
			},
			wantStatusCode: http.StatusNotFound,
		},
		{
			name:   "mixed-user history",
			userID: userID.String(),
			mockService: &MockAnalyticsService{
				streaksFunc: func(ctx context.Context, id uuid.UUID) (*domain.StreakResult, error) {
					return nil, domain.ErrMixedUsers
				},
			},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewAnalyticsHandler(tt.mockService, &MockDashboardService{})

			req := newURLParamRequest(http.MethodGet, "/v1/users/"+tt.userID+"/analytics/streaks", "", map[string]string{"userId": tt.userID})
			rec := httptest.NewRecorder()

			handler.Streaks(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("Streaks() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}

			if tt.wantStatusCode == http.StatusOK {
				var resp domain.StreakResult
				if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
					t.Fatalf("decode: %v", err)
				}
				if resp.CurrentStreak != 4 {
					t.Errorf("current streak = %d, want 4", resp.CurrentStreak)
				}
			}
		})
	}
}

func TestAnalyticsHandler_KeywordsParams(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name           string
		query          string
		wantStatusCode int
		wantScope      analytics.KeywordScope
		wantTopK       int
	}{
		{"default scope", "", http.StatusOK, analytics.KeywordScopeRecent, 0},
		{"explicit recent", "?scope=recent", http.StatusOK, analytics.KeywordScopeRecent, 0},
		{"full scope", "?scope=all", http.StatusOK, analytics.KeywordScopeAll, 0},
		{"custom top", "?top=5", http.StatusOK, analytics.KeywordScopeRecent, 5},
		{"invalid scope", "?scope=everything", http.StatusBadRequest, "", 0},
		{"invalid top", "?top=0", http.StatusBadRequest, "", 0},
		{"top too large", "?top=9999", http.StatusBadRequest, "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotScope analytics.KeywordScope
			var gotTopK int
			mockService := &MockAnalyticsService{
				keywordsFunc: func(ctx context.Context, id uuid.UUID, scope analytics.KeywordScope, topK int) (*domain.KeywordCloud, error) {
					gotScope, gotTopK = scope, topK
					return &domain.KeywordCloud{Words: []domain.KeywordItem{}}, nil
				},
			}
			handler := NewAnalyticsHandler(mockService, &MockDashboardService{})

			target := "/v1/users/" + userID.String() + "/analytics/keywords" + tt.query
			req := newURLParamRequest(http.MethodGet, target, "", map[string]string{"userId": userID.String()})
			rec := httptest.NewRecorder()

			handler.Keywords(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Fatalf("Keywords() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
			if tt.wantStatusCode == http.StatusOK {
				if gotScope != tt.wantScope || gotTopK != tt.wantTopK {
					t.Errorf("scope/topK = %q/%d, want %q/%d", gotScope, gotTopK, tt.wantScope, tt.wantTopK)
				}
			}
		})
	}
}

func TestAnalyticsHandler_Dashboard(t *testing.T) {
	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		mockDashboard := &MockDashboardService{
			buildFunc: func(ctx context.Context, id uuid.UUID) (*domain.DashboardResponse, error) {
				return &domain.DashboardResponse{
					Stats: domain.DashboardStats{TotalEntries: 12},
				}, nil
			},
		}
		handler := NewAnalyticsHandler(&MockAnalyticsService{}, mockDashboard)

		req := newURLParamRequest(http.MethodGet, "/v1/users/"+userID.String()+"/analytics/dashboard", "", map[string]string{"userId": userID.String()})
		rec := httptest.NewRecorder()

		handler.Dashboard(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("Dashboard() status = %d, body: %s", rec.Code, rec.Body.String())
		}
		var resp domain.DashboardResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp.Stats.TotalEntries != 12 {
			t.Errorf("total entries = %d, want 12", resp.Stats.TotalEntries)
		}
	})

	t.Run("clock skew rejected", func(t *testing.T) {
		mockDashboard := &MockDashboardService{
			buildFunc: func(ctx context.Context, id uuid.UUID) (*domain.DashboardResponse, error) {
				return nil, domain.ErrClockSkew
			},
		}
		handler := NewAnalyticsHandler(&MockAnalyticsService{}, mockDashboard)

		req := newURLParamRequest(http.MethodGet, "/v1/users/"+userID.String()+"/analytics/dashboard", "", map[string]string{"userId": userID.String()})
		rec := httptest.NewRecorder()

		handler.Dashboard(rec, req)

		if rec.Code != http.StatusUnprocessableEntity {
			t.Errorf("Dashboard() status = %d, want 422", rec.Code)
		}
	})
}

func TestAnalyticsHandler_MoodTrendsWeeksParam(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantWeeks  int
	}{
		{name: "default window", query: "", wantStatus: http.StatusOK, wantWeeks: 0},
		{name: "explicit window", query: "?weeks=26", wantStatus: http.StatusOK, wantWeeks: 26},
		{name: "zero weeks", query: "?weeks=0", wantStatus: http.StatusBadRequest},
		{name: "non-numeric weeks", query: "?weeks=month", wantStatus: http.StatusBadRequest},
		{name: "oversized weeks", query: "?weeks=500", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotWeeks int
			mockService := &MockAnalyticsService{
				moodTrendsFunc: func(ctx context.Context, id uuid.UUID, weeks int) (*domain.MoodTrendResult, error) {
					gotWeeks = weeks
					return &domain.MoodTrendResult{Trend: domain.TrendStable}, nil
				},
			}
			handler := NewAnalyticsHandler(mockService, &MockDashboardService{})

			req := newURLParamRequest(http.MethodGet, "/v1/users/"+userID.String()+"/analytics/mood-trends"+tt.query, "", map[string]string{"userId": userID.String()})
			rec := httptest.NewRecorder()

			handler.MoodTrends(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("MoodTrends() status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusOK && gotWeeks != tt.wantWeeks {
				t.Errorf("weeks passed to service = %d, want %d", gotWeeks, tt.wantWeeks)
			}
		})
	}
}

func TestAnalyticsHandler_ReportEndpoints(t *testing.T) {
	userID := uuid.New()
	handler := NewAnalyticsHandler(&MockAnalyticsService{}, &MockDashboardService{})

	endpoints := map[string]http.HandlerFunc{
		"productivity": handler.Productivity,
		"mood-trends":  handler.MoodTrends,
		"journey":      handler.Journey,
	}

	for name, fn := range endpoints {
		t.Run(name, func(t *testing.T) {
			req := newURLParamRequest(http.MethodGet, "/v1/users/"+userID.String()+"/analytics/"+name, "", map[string]string{"userId": userID.String()})
			rec := httptest.NewRecorder()

			fn(rec, req)

			if rec.Code != http.StatusOK {
				t.Errorf("%s status = %d, body: %s", name, rec.Code, rec.Body.String())
			}
		})
	}
}
