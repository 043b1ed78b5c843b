package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/mydiary/journal-insights/internal/domain"
	"github.com/mydiary/journal-insights/internal/repository"
)

const (
	defaultDailyGoal  = 1
	defaultWeeklyGoal = 7
)

type UserService interface {
	Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateGoals(ctx context.Context, id uuid.UUID, req *domain.UpdateGoalsRequest) (*domain.User, error)
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	user := &domain.User{
		ID:         uuid.New(),
		Timezone:   req.Timezone,
		DailyGoal:  defaultDailyGoal,
		WeeklyGoal: defaultWeeklyGoal,
	}
	if req.DailyGoal != nil {
		user.DailyGoal = *req.DailyGoal
	}
	if req.WeeklyGoal != nil {
		user.WeeklyGoal = *req.WeeklyGoal
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *userService) UpdateGoals(ctx context.Context, id uuid.UUID, req *domain.UpdateGoalsRequest) (*domain.User, error) {
	if err := s.repo.UpdateGoals(ctx, id, req.DailyGoal, req.WeeklyGoal); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}
