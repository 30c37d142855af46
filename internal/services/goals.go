package services

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/Leonardo777l/Finanzas-Leo/internal/dto"
	"github.com/Leonardo777l/Finanzas-Leo/internal/errs"
	"github.com/Leonardo777l/Finanzas-Leo/internal/models"
)

type goalStateStore interface {
	AddGoal(g models.Goal) models.Goal
	UpdateGoal(id string, updates dto.GoalUpdates)
	AddGoalFunds(id string, amount float64)
	RemoveGoal(id string)
	Goals() []models.Goal
}

type goalService struct {
	store goalStateStore
}

func NewGoalService(store goalStateStore) *goalService {
	return &goalService{store: store}
}

func (s *goalService) List(ctx context.Context) []dto.GoalProgress {
	goals := s.store.Goals()
	out := make([]dto.GoalProgress, len(goals))
	for i, g := range goals {
		progress := 0.0
		if g.TargetAmount > 0 {
			progress = g.CurrentAmount / g.TargetAmount * 100
		}
		remaining := g.TargetAmount - g.CurrentAmount
		if remaining < 0 {
			remaining = 0
		}
		out[i] = dto.GoalProgress{
			Goal:      g,
			Progress:  progress,
			Remaining: remaining,
			Completed: g.CurrentAmount >= g.TargetAmount,
		}
	}
	return out
}

func (s *goalService) Add(ctx context.Context, req dto.CreateGoalRequest) (models.Goal, error) {
	if req.Name == "" {
		return models.Goal{}, errs.NewValidationError("name is required")
	}
	if req.TargetAmount <= 0 {
		return models.Goal{}, errs.NewValidationError("target amount must be greater than zero")
	}
	color := req.Color
	if color == "" {
		color = fmt.Sprintf("hsl(%d, 70%%, 50%%)", rand.Intn(360))
	}
	return s.store.AddGoal(models.Goal{
		Name:         req.Name,
		TargetAmount: req.TargetAmount,
		Deadline:     req.Deadline,
		Color:        color,
	}), nil
}

func (s *goalService) Update(ctx context.Context, id string, updates dto.GoalUpdates) (models.Goal, error) {
	if updates.TargetAmount != nil && *updates.TargetAmount <= 0 {
		return models.Goal{}, errs.NewValidationError("target amount must be greater than zero")
	}
	if updates.CurrentAmount != nil && *updates.CurrentAmount < 0 {
		return models.Goal{}, errs.NewValidationError("current amount must not be negative")
	}
	if _, ok := s.find(id); !ok {
		return models.Goal{}, errs.NewNotFoundError("goal not found")
	}
	s.store.UpdateGoal(id, updates)
	updated, _ := s.find(id)
	return updated, nil
}

// AddFunds moves the goal toward its target; the stored amount never exceeds
// the target through this path.
func (s *goalService) AddFunds(ctx context.Context, id string, amount float64) (models.Goal, error) {
	if amount <= 0 {
		return models.Goal{}, errs.NewValidationError("amount must be greater than zero")
	}
	if _, ok := s.find(id); !ok {
		return models.Goal{}, errs.NewNotFoundError("goal not found")
	}
	s.store.AddGoalFunds(id, amount)
	updated, _ := s.find(id)
	return updated, nil
}

func (s *goalService) Remove(ctx context.Context, id string) {
	s.store.RemoveGoal(id)
}

func (s *goalService) find(id string) (models.Goal, bool) {
	for _, g := range s.store.Goals() {
		if g.ID == id {
			return g, true
		}
	}
	return models.Goal{}, false
}
