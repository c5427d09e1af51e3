package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/goalkeeper/internal/client/client"
	"github.com/dmitrijs2005/goalkeeper/internal/client/models"
	"github.com/dmitrijs2005/goalkeeper/internal/common"
)

// GoalService wraps the goal and dashboard endpoints. Methods that need an
// identity refuse early with common.ErrorNoToken when logged out.
type GoalService interface {
	List(ctx context.Context, p models.ListParams) (*models.GoalPage, error)
	Create(ctx context.Context, g models.NewGoal) (*models.Goal, error)
	Get(ctx context.Context, id string) (*models.Goal, error)
	Update(ctx context.Context, id string, u models.GoalUpdate) (*models.Goal, error)
	Toggle(ctx context.Context, id string) (*models.Goal, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (models.DashboardStats, error)
}

type goalService struct {
	client client.Client
	tokens client.TokenSource
}

func NewGoalService(c client.Client, tokens client.TokenSource) GoalService {
	return &goalService{client: c, tokens: tokens}
}

var errEmptyID = errors.New("goal id is required")

func (s *goalService) requireToken(ctx context.Context) error {
	tok, err := s.tokens.Token(ctx)
	if err != nil {
		return fmt.Errorf("read access token: %w", err)
	}
	if tok == "" {
		return common.ErrorNoToken
	}
	return nil
}

func (s *goalService) List(ctx context.Context, p models.ListParams) (*models.GoalPage, error) {
	if err := s.requireToken(ctx); err != nil {
		return nil, err
	}
	return s.client.ListGoals(ctx, p)
}

func (s *goalService) Create(ctx context.Context, g models.NewGoal) (*models.Goal, error) {
	if err := s.requireToken(ctx); err != nil {
		return nil, err
	}
	return s.client.CreateGoal(ctx, g)
}

func (s *goalService) Get(ctx context.Context, id string) (*models.Goal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errEmptyID
	}
	if err := s.requireToken(ctx); err != nil {
		return nil, err
	}
	return s.client.GetGoal(ctx, id)
}

func (s *goalService) Update(ctx context.Context, id string, u models.GoalUpdate) (*models.Goal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errEmptyID
	}
	if err := s.requireToken(ctx); err != nil {
		return nil, err
	}
	return s.client.UpdateGoal(ctx, id, u)
}

func (s *goalService) Toggle(ctx context.Context, id string) (*models.Goal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errEmptyID
	}
	if err := s.requireToken(ctx); err != nil {
		return nil, err
	}
	return s.client.ToggleGoal(ctx, id)
}

func (s *goalService) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return errEmptyID
	}
	if err := s.requireToken(ctx); err != nil {
		return err
	}
	return s.client.DeleteGoal(ctx, id)
}

func (s *goalService) Stats(ctx context.Context) (models.DashboardStats, error) {
	return s.client.DashboardStats(ctx)
}
