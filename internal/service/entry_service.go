package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mydiary/journal-insights/internal/domain"
	"github.com/mydiary/journal-insights/internal/repository"
	"github.com/mydiary/journal-insights/pkg/pagination"
)

type EntryService interface {
	Create(ctx context.Context, userID uuid.UUID, req *domain.CreateEntryRequest) (*domain.Entry, bool, error)
	GetByID(ctx context.Context, userID, entryID uuid.UUID) (*domain.Entry, error)
	Update(ctx context.Context, userID, entryID uuid.UUID, req *domain.UpdateEntryRequest) (*domain.Entry, error)
	Delete(ctx context.Context, userID, entryID uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, filter domain.EntryFilter) (*domain.EntryListResponse, error)
}

type entryService struct {
	repo     repository.EntryRepository
	userRepo repository.UserRepository
	now      func() time.Time
}

func NewEntryService(repo repository.EntryRepository, userRepo repository.UserRepository) EntryService {
	return &entryService{
		repo:     repo,
		userRepo: userRepo,
		now:      time.Now,
	}
}

// Create writes a new journal entry.
// Returns (entry, isExisting, error) - isExisting is true if returning an
// existing entry due to idempotency.
func (s *entryService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateEntryRequest) (*domain.Entry, bool, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, false, err
	}
	if !exists {
		return nil, false, domain.ErrNotFound
	}

	// Idempotency check on duplicate client_request_id
	if req.ClientRequestID != nil && *req.ClientRequestID != "" {
		existing, err := s.repo.GetByClientRequestID(ctx, userID, *req.ClientRequestID)
		if err != nil {
			return nil, false, err
		}
		if existing != nil {
			return existing, true, nil
		}
	}

	occurredAt := s.now().UTC()
	if req.OccurredAt != nil {
		occurredAt = req.OccurredAt.UTC()
	}
	if occurredAt.After(s.now().UTC()) {
		return nil, false, domain.ErrInvalidInput
	}

	entry := &domain.Entry{
		ID:              uuid.New(),
		UserID:          userID,
		Title:           req.Title,
		Content:         req.Content,
		Mood:            req.Mood,
		WordCount:       domain.CountWords(req.Content),
		OccurredAt:      occurredAt,
		ClientRequestID: req.ClientRequestID,
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, false, err
	}

	return entry, false, nil
}

func (s *entryService) GetByID(ctx context.Context, userID, entryID uuid.UUID) (*domain.Entry, error) {
	entry, err := s.repo.GetByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	// Ownership check; a foreign entry looks like a missing one.
	if entry.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return entry, nil
}

func (s *entryService) Update(ctx context.Context, userID, entryID uuid.UUID, req *domain.UpdateEntryRequest) (*domain.Entry, error) {
	entry, err := s.GetByID(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		entry.Title = *req.Title
	}
	if req.Content != nil {
		entry.Content = *req.Content
		entry.WordCount = domain.CountWords(*req.Content)
	}
	if req.Mood != nil {
		entry.Mood = req.Mood
	}

	if err := s.repo.Update(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *entryService) Delete(ctx context.Context, userID, entryID uuid.UUID) error {
	if _, err := s.GetByID(ctx, userID, entryID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, entryID)
}

func (s *entryService) List(ctx context.Context, userID uuid.UUID, filter domain.EntryFilter) (*domain.EntryListResponse, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	entries, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(entries) > limit
	if hasMore {
		entries = entries[:limit]
	}

	response := &domain.EntryListResponse{
		Data: make([]domain.EntryResponse, len(entries)),
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}
	for i, entry := range entries {
		response.Data[i] = entry.ToResponse()
	}

	if hasMore && len(entries) > 0 {
		last := entries[len(entries)-1]
		cursor := &pagination.Cursor{
			ID:         last.ID,
			OccurredAt: last.OccurredAt,
		}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}
