package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mydiary/journal-insights/internal/domain"
)

func TestEntryHandler_Create(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name           string
		userID         string
		body           string
		mockService    *MockEntryService
		wantStatusCode int
	}{
		{
			name:           "valid entry",
			userID:         userID.String(),
			body:           `{"content": "today was calm", "mood": "calm"}`,
			mockService:    &MockEntryService{},
			wantStatusCode: http.StatusCreated,
		},
		{
			name:           "empty body entry",
			userID:         userID.String(),
			body:           `{}`,
			mockService:    &MockEntryService{},
			wantStatusCode: http.StatusCreated,
		},
		{
			name:           "invalid mood",
			userID:         userID.String(),
			body:           `{"content": "hello", "mood": "ecstatic"}`,
			mockService:    &MockEntryService{},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:           "invalid JSON",
			userID:         userID.String(),
			body:           `{broken`,
			mockService:    &MockEntryService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "invalid user UUID",
			userID:         "nope",
			body:           `{"content": "hello"}`,
			mockService:    &MockEntryService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:   "unknown user",
			userID: userID.String(),
			body:   `{"content": "hello"}`,
			mockService: &MockEntryService{
				createFunc: func(ctx context.Context, id uuid.UUID, req *domain.CreateEntryRequest) (*domain.Entry, bool, error) {
					return nil, false, domain.ErrNotFound
				},
			},
			wantStatusCode: http.StatusNotFound,
		},
		{
			name:   "idempotent duplicate returns 200",
			userID: userID.String(),
			body:   `{"content": "hello", "client_request_id": "req-1"}`,
			mockService: &MockEntryService{
				createFunc: func(ctx context.Context, id uuid.UUID, req *domain.CreateEntryRequest) (*domain.Entry, bool, error) {
					return &domain.Entry{ID: uuid.New(), UserID: id, Content: req.Content, OccurredAt: time.Now()}, true, nil
				},
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:   "future timestamp rejected",
			userID: userID.String(),
			body:   `{"content": "hello"}`,
			mockService: &MockEntryService{
				createFunc: func(ctx context.Context, id uuid.UUID, req *domain.CreateEntryRequest) (*domain.Entry, bool, error) {
					return nil, false, domain.ErrInvalidInput
				},
			},
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewEntryHandler(tt.mockService)

			req := newURLParamRequest(http.MethodPost, "/v1/users/"+tt.userID+"/entries", tt.body, map[string]string{"userId": tt.userID})
			rec := httptest.NewRecorder()

			handler.Create(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("Create() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}

func TestEntryHandler_List(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name           string
		target         string
		mockService    *MockEntryService
		wantStatusCode int
	}{
		{
			name:           "default listing",
			target:         "/v1/users/" + userID.String() + "/entries",
			mockService:    &MockEntryService{},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "bad from timestamp",
			target:         "/v1/users/" + userID.String() + "/entries?from=yesterday",
			mockService:    &MockEntryService{},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:           "bad limit",
			target:         "/v1/users/" + userID.String() + "/entries?limit=-5",
			mockService:    &MockEntryService{},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:   "unknown user",
			target: "/v1/users/" + userID.String() + "/entries",
			mockService: &MockEntryService{
				listFunc: func(ctx context.Context, id uuid.UUID, filter domain.EntryFilter) (*domain.EntryListResponse, error) {
					return nil, domain.ErrNotFound
				},
			},
			wantStatusCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewEntryHandler(tt.mockService)

			req := newURLParamRequest(http.MethodGet, tt.target, "", map[string]string{"userId": userID.String()})
			rec := httptest.NewRecorder()

			handler.List(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("List() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}

func TestEntryHandler_ListFilterThreading(t *testing.T) {
	userID := uuid.New()
	var captured domain.EntryFilter

	mockService := &MockEntryService{
		listFunc: func(ctx context.Context, id uuid.UUID, filter domain.EntryFilter) (*domain.EntryListResponse, error) {
			captured = filter
			return &domain.EntryListResponse{Data: []domain.EntryResponse{}}, nil
		},
	}
	handler := NewEntryHandler(mockService)

	target := "/v1/users/" + userID.String() + "/entries?from=2024-01-01T00:00:00Z&limit=5&cursor=abc"
	req := newURLParamRequest(http.MethodGet, target, "", map[string]string{"userId": userID.String()})
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("List() status = %d, body: %s", rec.Code, rec.Body.String())
	}
	if captured.From == nil || !captured.From.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("from not threaded: %v", captured.From)
	}
	if captured.Limit != 5 || captured.Cursor != "abc" {
		t.Errorf("limit/cursor not threaded: %+v", captured)
	}
}

func TestEntryHandler_GetUpdateDelete(t *testing.T) {
	userID := uuid.New()
	entryID := uuid.New()
	entry := &domain.Entry{
		ID:         entryID,
		UserID:     userID,
		Content:    "stored entry",
		WordCount:  2,
		OccurredAt: time.Date(2024, 1, 15, 21, 30, 0, 0, time.UTC),
	}

	mockService := &MockEntryService{
		getByIDFunc: func(ctx context.Context, uID, eID uuid.UUID) (*domain.Entry, error) {
			if uID == userID && eID == entryID {
				return entry, nil
			}
			return nil, domain.ErrNotFound
		},
		updateFunc: func(ctx context.Context, uID, eID uuid.UUID, req *domain.UpdateEntryRequest) (*domain.Entry, error) {
			if uID == userID && eID == entryID {
				return entry, nil
			}
			return nil, domain.ErrNotFound
		},
		deleteFunc: func(ctx context.Context, uID, eID uuid.UUID) error {
			if uID == userID && eID == entryID {
				return nil
			}
			return domain.ErrNotFound
		},
	}
	handler := NewEntryHandler(mockService)
	params := map[string]string{"userId": userID.String(), "entryId": entryID.String()}

	t.Run("get", func(t *testing.T) {
		req := newURLParamRequest(http.MethodGet, "/v1/users/"+userID.String()+"/entries/"+entryID.String(), "", params)
		rec := httptest.NewRecorder()
		handler.GetByID(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("GetByID() status = %d, body: %s", rec.Code, rec.Body.String())
		}
		var resp domain.EntryResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp.ID != entryID {
			t.Errorf("response ID = %s, want %s", resp.ID, entryID)
		}
	})

	t.Run("update", func(t *testing.T) {
		req := newURLParamRequest(http.MethodPatch, "/v1/users/"+userID.String()+"/entries/"+entryID.String(), `{"title": "renamed"}`, params)
		rec := httptest.NewRecorder()
		handler.Update(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("Update() status = %d, body: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("delete", func(t *testing.T) {
		req := newURLParamRequest(http.MethodDelete, "/v1/users/"+userID.String()+"/entries/"+entryID.String(), "", params)
		rec := httptest.NewRecorder()
		handler.Delete(rec, req)
		if rec.Code != http.StatusNoContent {
			t.Errorf("Delete() status = %d, body: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("foreign entry not found", func(t *testing.T) {
		otherParams := map[string]string{"userId": uuid.New().String(), "entryId": entryID.String()}
		req := newURLParamRequest(http.MethodGet, "/v1/users/x/entries/"+entryID.String(), "", otherParams)
		rec := httptest.NewRecorder()
		handler.GetByID(rec, req)
		if rec.Code != http.StatusNotFound {
			t.Errorf("GetByID() status = %d, want 404", rec.Code)
		}
	})
}
