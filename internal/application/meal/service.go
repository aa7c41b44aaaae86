package meal

import (
	"context"
	"fmt"
	"time"

	"github.com/abmacros/server/internal/domain"
	"github.com/abmacros/server/internal/pkg/id"
)

// Repository is the store contract the meal service requires.
type Repository interface {
	Put(ctx context.Context, m *domain.Meal) error
	Get(ctx context.Context, mealID string) (*domain.Meal, error)
	ListByUserRange(ctx context.Context, userID string, start, end time.Time) ([]domain.Meal, error)
	Delete(ctx context.Context, mealID string) error
}

// FoodLookup resolves food ids against the catalog.
type FoodLookup interface {
	Get(foodID string) (domain.FoodItem, bool)
}

// DefaultListWindow is the lookback applied when no range is given.
const DefaultListWindow = 7 * 24 * time.Hour

type Service interface {
	Add(ctx context.Context, userID string, req domain.AddMealRequest) (*domain.Meal, error)
	List(ctx context.Context, userID string, start, end *time.Time) ([]domain.Meal, error)
	Delete(ctx context.Context, userID, mealID string) error
}

type service struct {
	repo  Repository
	foods FoodLookup
	now   func() time.Time
}

func NewService(repo Repository, foods FoodLookup) Service {
	return &service{repo: repo, foods: foods, now: time.Now}
}

func (s *service) Add(ctx context.Context, userID string, req domain.AddMealRequest) (*domain.Meal, error) {
	for _, it := range req.Items {
		if _, ok := s.foods.Get(it.FoodID); !ok {
			return nil, fmt.Errorf("unknown food %q: %w", it.FoodID, domain.ErrBadRequest)
		}
	}
	ts := s.now().UTC()
	if req.Timestamp != nil {
		ts = req.Timestamp.UTC()
	}
	m := &domain.Meal{
		MealID:    id.New(),
		UserID:    userID,
		Name:      req.Name,
		CreatedAt: ts,
		Items:     req.Items,
		Notes:     req.Notes,
	}
	if err := s.repo.Put(ctx, m); err != nil {
		return nil, fmt.Errorf("save meal: %w", err)
	}
	return m, nil
}

func (s *service) List(ctx context.Context, userID string, start, end *time.Time) ([]domain.Meal, error) {
	e := s.now().UTC()
	if end != nil {
		e = end.UTC()
	}
	st := e.Add(-DefaultListWindow)
	if start != nil {
		st = start.UTC()
	}
	meals, err := s.repo.ListByUserRange(ctx, userID, st, e)
	if err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}
	return meals, nil
}

func (s *service) Delete(ctx context.Context, userID, mealID string) error {
	m, err := s.repo.Get(ctx, mealID)
	if err != nil {
		return err
	}
	if m.UserID != userID {
		return fmt.Errorf("meal belongs to another user: %w", domain.ErrForbidden)
	}
	return s.repo.Delete(ctx, mealID)
}
