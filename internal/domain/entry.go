package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Mood is a label from the fixed mood vocabulary.
// @Description Mood label attached to a journal entry.
type Mood string

const (
	MoodHappy   Mood = "happy"
	MoodExcited Mood = "excited"
	MoodCalm    Mood = "calm"
	MoodNeutral Mood = "neutral"
	MoodTired   Mood = "tired"
	MoodAnxious Mood = "anxious"
	MoodSad     Mood = "sad"
	MoodAngry   Mood = "angry"
)

type Entry struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index:idx_entries_user_occurred" json:"user_id"`
	Title           string    `gorm:"type:varchar(255);not null;default:''" json:"title"`
	Content         string    `gorm:"type:text;not null;default:''" json:"content"`
	Mood            *Mood     `gorm:"type:varchar(16)" json:"mood,omitempty"`
	WordCount       int       `gorm:"not null;default:0" json:"word_count"`
	OccurredAt      time.Time `gorm:"not null;index:idx_entries_user_occurred,sort:desc" json:"occurred_at"`
	ClientRequestID *string   `gorm:"type:varchar(255);uniqueIndex:idx_entries_user_client_request,where:client_request_id IS NOT NULL" json:"client_request_id,omitempty"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Entry) TableName() string {
	return "entries"
}

// CountWords returns the number of whitespace-separated words in content.
func CountWords(content string) int {
	return len(strings.Fields(content))
}

// CreateEntryRequest is the request body for creating a journal entry.
// @Description Request payload for writing a journal entry.
type CreateEntryRequest struct {
	// Optional entry title
	Title string `json:"title,omitempty" validate:"omitempty,max=255" example:"Morning pages"`
	// Entry body text (may be empty)
	Content string `json:"content" validate:"max=100000" example:"Today was a good day..."`
	// Optional mood label
	Mood *Mood `json:"mood,omitempty" validate:"omitempty,oneof=happy excited calm neutral tired anxious sad angry" example:"happy" enums:"happy,excited,calm,neutral,tired,anxious,sad,angry"`
	// When the entry was written (RFC3339, defaults to now)
	OccurredAt *time.Time `json:"occurred_at,omitempty" example:"2024-01-15T21:30:00Z"`
	// Optional client-generated ID for idempotent requests (max 255 chars)
	ClientRequestID *string `json:"client_request_id,omitempty" validate:"omitempty,max=255" example:"client-uuid-12345"`
}

// UpdateEntryRequest is the request body for updating a journal entry.
// @Description Request payload for editing a journal entry. Omitted fields are left unchanged.
type UpdateEntryRequest struct {
	Title   *string `json:"title,omitempty" validate:"omitempty,max=255"`
	Content *string `json:"content,omitempty" validate:"omitempty,max=100000"`
	Mood    *Mood   `json:"mood,omitempty" validate:"omitempty,oneof=happy excited calm neutral tired anxious sad angry"`
}

// EntryResponse is the response body for entry endpoints.
// @Description Journal entry record.
type EntryResponse struct {
	ID              uuid.UUID `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	UserID          uuid.UUID `json:"user_id" example:"660e8400-e29b-41d4-a716-446655440001"`
	Title           string    `json:"title" example:"Morning pages"`
	Content         string    `json:"content" example:"Today was a good day..."`
	Mood            *Mood     `json:"mood,omitempty" example:"happy"`
	WordCount       int       `json:"word_count" example:"214"`
	OccurredAt      time.Time `json:"occurred_at" example:"2024-01-15T21:30:00Z"`
	ClientRequestID *string   `json:"client_request_id,omitempty" example:"client-uuid-12345"`
	CreatedAt       time.Time `json:"created_at" example:"2024-01-15T21:31:02Z"`
}

func (e *Entry) ToResponse() EntryResponse {
	return EntryResponse{
		ID:              e.ID,
		UserID:          e.UserID,
		Title:           e.Title,
		Content:         e.Content,
		Mood:            e.Mood,
		WordCount:       e.WordCount,
		OccurredAt:      e.OccurredAt,
		ClientRequestID: e.ClientRequestID,
		CreatedAt:       e.CreatedAt,
	}
}

// EntryListResponse is the response body for listing entries.
// @Description Paginated list of journal entries.
type EntryListResponse struct {
	Data       []EntryResponse    `json:"data"`
	Pagination PaginationResponse `json:"pagination"`
}

// PaginationResponse contains pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty"`
	// True if more results are available
	HasMore bool `json:"has_more" example:"true"`
}

// EntryFilter contains filter parameters for listing entries.
type EntryFilter struct {
	From   *time.Time
	To     *time.Time
	Limit  int
	Cursor string
}
