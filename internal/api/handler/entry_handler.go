package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/mydiary/journal-insights/internal/api/validation"
	"github.com/mydiary/journal-insights/internal/domain"
	"github.com/mydiary/journal-insights/internal/service"
	"github.com/mydiary/journal-insights/pkg/problem"
)

type EntryHandler struct {
	service service.EntryService
}

func NewEntryHandler(service service.EntryService) *EntryHandler {
	return &EntryHandler{service: service}
}

// Create handles POST /v1/users/{userId}/entries
// @Summary Write a journal entry
// @Description Create a journal entry. Use client_request_id for safe retries (idempotency). Returns 200 if duplicate request, 201 if new.
// @Tags entries
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param request body domain.CreateEntryRequest true "Entry data"
// @Success 201 {object} domain.EntryResponse "New entry created"
// @Success 200 {object} domain.EntryResponse "Existing entry returned (idempotent duplicate)"
// @Failure 400 {object} problem.Problem "Invalid request body or parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/entries [post]
func (h *EntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req domain.CreateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	entry, isExisting, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			problem.BadRequest("occurred_at must not be in the future").Write(w)
			return
		}
		problem.InternalError("Failed to create entry").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if isExisting {
		w.WriteHeader(http.StatusOK) // Return 200 for idempotent duplicate
	} else {
		w.WriteHeader(http.StatusCreated)
	}
	json.NewEncoder(w).Encode(entry.ToResponse())
}

// GetByID handles GET /v1/users/{userId}/entries/{entryId}
// @Summary Get a journal entry
// @Tags entries
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param entryId path string true "Entry UUID" format(uuid)
// @Success 200 {object} domain.EntryResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/entries/{entryId} [get]
func (h *EntryHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	userID, entryID, ok := parseEntryPath(w, r)
	if !ok {
		return
	}

	entry, err := h.service.GetByID(r.Context(), userID, entryID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Entry not found").Write(w)
			return
		}
		problem.InternalError("Failed to get entry").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entry.ToResponse())
}

// Update handles PATCH /v1/users/{userId}/entries/{entryId}
// @Summary Edit a journal entry
// @Description Update an entry's title, content, or mood. Word count is recomputed when content changes.
// @Tags entries
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param entryId path string true "Entry UUID" format(uuid)
// @Param request body domain.UpdateEntryRequest true "Fields to update"
// @Success 200 {object} domain.EntryResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/entries/{entryId} [patch]
func (h *EntryHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, entryID, ok := parseEntryPath(w, r)
	if !ok {
		return
	}

	var req domain.UpdateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	entry, err := h.service.Update(r.Context(), userID, entryID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Entry not found").Write(w)
			return
		}
		problem.InternalError("Failed to update entry").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entry.ToResponse())
}

// Delete handles DELETE /v1/users/{userId}/entries/{entryId}
// @Summary Delete a journal entry
// @Tags entries
// @Param userId path string true "User UUID" format(uuid)
// @Param entryId path string true "Entry UUID" format(uuid)
// @Success 204 "Entry deleted"
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/entries/{entryId} [delete]
func (h *EntryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, entryID, ok := parseEntryPath(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), userID, entryID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Entry not found").Write(w)
			return
		}
		problem.InternalError("Failed to delete entry").Write(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// List handles GET /v1/users/{userId}/entries
// @Summary List journal entries
// @Description Fetch paginated journal history. Filter by date range. Results sorted by occurred_at descending (newest first).
// @Tags entries
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param from query string false "Start of date range (RFC3339)" format(date-time) example(2024-01-01T00:00:00Z)
// @Param to query string false "End of date range (RFC3339)" format(date-time) example(2024-01-31T23:59:59Z)
// @Param limit query integer false "Results per page (1-100)" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.EntryListResponse "Entries with pagination"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/entries [get]
func (h *EntryHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	filter, fieldErrors := parseListFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	response, err := h.service.List(r.Context(), userID, filter)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to list entries").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func parseEntryPath(w http.ResponseWriter, r *http.Request) (userID, entryID uuid.UUID, ok bool) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return uuid.Nil, uuid.Nil, false
	}
	entryID, err = uuid.Parse(chi.URLParam(r, "entryId"))
	if err != nil {
		problem.BadRequest("Invalid entry ID format").Write(w)
		return uuid.Nil, uuid.Nil, false
	}
	return userID, entryID, true
}

func parseListFilter(r *http.Request) (domain.EntryFilter, []problem.FieldError) {
	var filter domain.EntryFilter
	var fieldErrors []problem.FieldError

	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "from",
				Message: "must be a valid RFC3339 timestamp",
			})
		} else {
			filter.From = &from
		}
	}

	if toStr := r.URL.Query().Get("to"); toStr != "" {
		to, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "to",
				Message: "must be a valid RFC3339 timestamp",
			})
		} else {
			filter.To = &to
		}
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "limit",
				Message: "must be a positive integer",
			})
		} else {
			filter.Limit = limit
		}
	}

	filter.Cursor = r.URL.Query().Get("cursor")

	if len(fieldErrors) > 0 {
		return filter, fieldErrors
	}

	return filter, nil
}
