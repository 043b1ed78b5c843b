package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Timezone   string    `gorm:"type:varchar(64);not null;default:'UTC'" json:"timezone"`
	DailyGoal  int       `gorm:"type:smallint;not null;default:1" json:"daily_goal"`
	WeeklyGoal int       `gorm:"type:smallint;not null;default:7" json:"weekly_goal"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// CreateUserRequest is the request body for creating a user.
// @Description Request payload for registering a journal user.
type CreateUserRequest struct {
	// IANA timezone used for display purposes
	Timezone string `json:"timezone" validate:"required,timezone" example:"Europe/Prague"`
	// Target journal entries per day (0 disables the daily goal)
	DailyGoal *int `json:"daily_goal,omitempty" validate:"omitempty,min=0,max=50" example:"1"`
	// Target journal entries per week (0 disables the weekly goal)
	WeeklyGoal *int `json:"weekly_goal,omitempty" validate:"omitempty,min=0,max=100" example:"7"`
}

// UpdateGoalsRequest is the request body for updating writing goals.
// @Description Request payload for updating daily/weekly writing goals.
type UpdateGoalsRequest struct {
	DailyGoal  *int `json:"daily_goal,omitempty" validate:"omitempty,min=0,max=50" example:"2"`
	WeeklyGoal *int `json:"weekly_goal,omitempty" validate:"omitempty,min=0,max=100" example:"10"`
}

// UserResponse is the response body for user endpoints.
type UserResponse struct {
	ID         uuid.UUID `json:"id"`
	Timezone   string    `json:"timezone"`
	DailyGoal  int       `json:"daily_goal"`
	WeeklyGoal int       `json:"weekly_goal"`
	CreatedAt  time.Time `json:"created_at"`
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:         u.ID,
		Timezone:   u.Timezone,
		DailyGoal:  u.DailyGoal,
		WeeklyGoal: u.WeeklyGoal,
		CreatedAt:  u.CreatedAt,
	}
}
