package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/mydiary/journal-insights/internal/analytics"
	"github.com/mydiary/journal-insights/internal/domain"
	"github.com/mydiary/journal-insights/internal/service"
	"github.com/mydiary/journal-insights/pkg/problem"
)

type AnalyticsHandler struct {
	service   service.AnalyticsService
	dashboard service.DashboardService
}

func NewAnalyticsHandler(analyticsService service.AnalyticsService, dashboardService service.DashboardService) *AnalyticsHandler {
	return &AnalyticsHandler{
		service:   analyticsService,
		dashboard: dashboardService,
	}
}

// Streaks handles GET /v1/users/{userId}/analytics/streaks
// @Summary Writing streaks
// @Description Current and longest consecutive-day writing streaks plus 30-day consistency.
// @Tags analytics
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {object} domain.StreakResult
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 422 {object} problem.Problem "History failed input validation"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/analytics/streaks [get]
func (h *AnalyticsHandler) Streaks(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	result, err := h.service.Streaks(r.Context(), userID)
	if err != nil {
		writeAnalyticsError(w, err, "Failed to compute streaks")
		return
	}

	writeJSON(w, result)
}

// Productivity handles GET /v1/users/{userId}/analytics/productivity
// @Summary Productivity score
// @Description Composite 0-100 writing productivity score with component breakdown, goal progress, writing patterns, and recommendations.
// @Tags analytics
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {object} domain.ProductivityScore
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 422 {object} problem.Problem "History failed input validation"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/analytics/productivity [get]
func (h *AnalyticsHandler) Productivity(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	result, err := h.service.Productivity(r.Context(), userID)
	if err != nil {
		writeAnalyticsError(w, err, "Failed to compute productivity score")
		return
	}

	writeJSON(w, result)
}

// MoodTrends handles GET /v1/users/{userId}/analytics/mood-trends
// @Summary Mood trends
// @Description Mood distribution, weekly buckets, and trend direction over the trailing 12 weeks.
// @Tags analytics
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param weeks query integer false "Trailing window in weeks" minimum(1) maximum(104) default(12)
// @Success 200 {object} domain.MoodTrendResult
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 422 {object} problem.Problem "History failed input validation"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/analytics/mood-trends [get]
func (h *AnalyticsHandler) MoodTrends(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	weeks := 0
	if weeksStr := r.URL.Query().Get("weeks"); weeksStr != "" {
		parsed, err := strconv.Atoi(weeksStr)
		if err != nil || parsed < 1 || parsed > 104 {
			problem.BadRequest("weeks must be an integer between 1 and 104").Write(w)
			return
		}
		weeks = parsed
	}

	result, err := h.service.MoodTrends(r.Context(), userID, weeks)
	if err != nil {
		writeAnalyticsError(w, err, "Failed to compute mood trends")
		return
	}

	writeJSON(w, result)
}

// Keywords handles GET /v1/users/{userId}/analytics/keywords
// @Summary Keyword cloud
// @Description Frequency-weighted keyword cloud extracted from entry content. Scope "recent" scans the last 30 entries, "all" the full history.
// @Tags analytics
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param scope query string false "Scan scope" Enums(recent, all) default(recent)
// @Param top query integer false "Maximum keywords to return" minimum(1) maximum(200)
// @Success 200 {object} domain.KeywordCloud
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 422 {object} problem.Problem "History failed input validation"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/analytics/keywords [get]
func (h *AnalyticsHandler) Keywords(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	scope := analytics.KeywordScopeRecent
	switch r.URL.Query().Get("scope") {
	case "", "recent":
	case "all":
		scope = analytics.KeywordScopeAll
	default:
		problem.BadRequest("scope must be 'recent' or 'all'").Write(w)
		return
	}

	topK := 0
	if topStr := r.URL.Query().Get("top"); topStr != "" {
		top, err := strconv.Atoi(topStr)
		if err != nil || top < 1 || top > 200 {
			problem.BadRequest("top must be an integer between 1 and 200").Write(w)
			return
		}
		topK = top
	}

	result, err := h.service.Keywords(r.Context(), userID, scope, topK)
	if err != nil {
		writeAnalyticsError(w, err, "Failed to build keyword cloud")
		return
	}

	writeJSON(w, result)
}

// Journey handles GET /v1/users/{userId}/analytics/journey
// @Summary Emotional journey
// @Description Per-entry sentiment timeline with positive/negative runs and a resilience estimate.
// @Tags analytics
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {object} domain.EmotionalJourney
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 422 {object} problem.Problem "History failed input validation"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/analytics/journey [get]
func (h *AnalyticsHandler) Journey(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	result, err := h.service.Journey(r.Context(), userID)
	if err != nil {
		writeAnalyticsError(w, err, "Failed to compute emotional journey")
		return
	}

	writeJSON(w, result)
}

// Dashboard handles GET /v1/users/{userId}/analytics/dashboard
// @Summary Analytics dashboard
// @Description Every report combined into one payload: headline stats, streaks, productivity, mood trends, keywords, journey, heatmap, and entry trend.
// @Tags analytics
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {object} domain.DashboardResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 422 {object} problem.Problem "History failed input validation"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/analytics/dashboard [get]
func (h *AnalyticsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	result, err := h.dashboard.Build(r.Context(), userID)
	if err != nil {
		writeAnalyticsError(w, err, "Failed to build dashboard")
		return
	}

	writeJSON(w, result)
}

func parseUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return uuid.Nil, false
	}
	return userID, true
}

func writeAnalyticsError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		problem.NotFound("User not found").Write(w)
	case errors.Is(err, domain.ErrInvalidInput):
		problem.InvalidInput(err.Error()).Write(w)
	default:
		problem.InternalError(fallback).Write(w)
	}
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payload)
}
