package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/mydiary/journal-insights/internal/domain"
)

// MockEntryRepository is a mock implementation of EntryRepository
type MockEntryRepository struct {
	entries         map[uuid.UUID]*domain.Entry
	clientRequestID map[string]*domain.Entry
	listResult      []domain.Entry
	err             error
}

func NewMockEntryRepository() *MockEntryRepository {
	return &MockEntryRepository{
		entries:         make(map[uuid.UUID]*domain.Entry),
		clientRequestID: make(map[string]*domain.Entry),
	}
}

func (m *MockEntryRepository) Create(ctx context.Context, entry *domain.Entry) error {
	if m.err != nil {
		return m.err
	}
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	entry.CreatedAt = time.Now()
	m.entries[entry.ID] = entry
	if entry.ClientRequestID != nil {
		key := entry.UserID.String() + ":" + *entry.ClientRequestID
		m.clientRequestID[key] = entry
	}
	return nil
}

func (m *MockEntryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error) {
	if m.err != nil {
		return nil, m.err
	}
	entry, ok := m.entries[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return entry, nil
}

func (m *MockEntryRepository) Update(ctx context.Context, entry *domain.Entry) error {
	if m.err != nil {
		return m.err
	}
	m.entries[entry.ID] = entry
	return nil
}

func (m *MockEntryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.entries[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.entries, id)
	return nil
}

func (m *MockEntryRepository) List(ctx context.Context, userID uuid.UUID, filter domain.EntryFilter) ([]domain.Entry, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.listResult != nil {
		result := make([]domain.Entry, len(m.listResult))
		copy(result, m.listResult)
		return result, nil
	}
	result := m.userEntries(userID)
	// DESC to mirror the real listing order
	sort.Slice(result, func(i, j int) bool {
		return result[i].OccurredAt.After(result[j].OccurredAt)
	})
	return result, nil
}

func (m *MockEntryRepository) ListByRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.Entry, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.Entry
	for _, e := range m.userEntries(userID) {
		if !e.OccurredAt.Before(from) && e.OccurredAt.Before(to) {
			result = append(result, e)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].OccurredAt.Before(result[j].OccurredAt)
	})
	return result, nil
}

func (m *MockEntryRepository) ListAll(ctx context.Context, userID uuid.UUID) ([]domain.Entry, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.listResult != nil {
		result := make([]domain.Entry, len(m.listResult))
		copy(result, m.listResult)
		return result, nil
	}
	result := m.userEntries(userID)
	sort.Slice(result, func(i, j int) bool {
		return result[i].OccurredAt.Before(result[j].OccurredAt)
	})
	return result, nil
}

func (m *MockEntryRepository) GetByClientRequestID(ctx context.Context, userID uuid.UUID, clientRequestID string) (*domain.Entry, error) {
	if m.err != nil {
		return nil, m.err
	}
	key := userID.String() + ":" + clientRequestID
	entry, ok := m.clientRequestID[key]
	if !ok {
		return nil, nil
	}
	return entry, nil
}

func (m *MockEntryRepository) userEntries(userID uuid.UUID) []domain.Entry {
	var result []domain.Entry
	for _, e := range m.entries {
		if e.UserID == userID {
			result = append(result, *e)
		}
	}
	return result
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	users map[uuid.UUID]*domain.User
	err   error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{users: make(map[uuid.UUID]*domain.User)}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (m *MockUserRepository) UpdateGoals(ctx context.Context, id uuid.UUID, dailyGoal, weeklyGoal *int) error {
	if m.err != nil {
		return m.err
	}
	user, ok := m.users[id]
	if !ok {
		return domain.ErrNotFound
	}
	if dailyGoal != nil {
		user.DailyGoal = *dailyGoal
	}
	if weeklyGoal != nil {
		user.WeeklyGoal = *weeklyGoal
	}
	return nil
}

func (m *MockUserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.users[id]
	return ok, nil
}

func strPtr(s string) *string {
	return &s
}

func intPtr(i int) *int {
	return &i
}

func moodPtr(m domain.Mood) *domain.Mood {
	return &m
}
