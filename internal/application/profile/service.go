package profile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abmacros/server/internal/domain"
)

// Repository is the store contract the profile service requires.
type Repository interface {
	Put(ctx context.Context, p *domain.Profile) error
	Get(ctx context.Context, userID string) (*domain.Profile, error)
	UpdateTargets(ctx context.Context, userID string, targets *domain.NutrientTargets, updatedAt int64) error
}

type Service interface {
	// Get returns the profile for the identity, creating an empty one on
	// first access. Identity doubles as the phone number.
	Get(ctx context.Context, userID string) (*domain.Profile, error)
	UpdateTargets(ctx context.Context, userID string, targets domain.NutrientTargets) (*domain.Profile, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) Get(ctx context.Context, userID string) (*domain.Profile, error) {
	p, err := s.repo.Get(ctx, userID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("load profile: %w", err)
	}

	now := s.now().UTC()
	p = &domain.Profile{
		UserID:    userID,
		Phone:     userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Put(ctx, p); err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}
	return p, nil
}

func (s *service) UpdateTargets(ctx context.Context, userID string, targets domain.NutrientTargets) (*domain.Profile, error) {
	p, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	now := s.now().UTC()
	if err := s.repo.UpdateTargets(ctx, userID, &targets, now.Unix()); err != nil {
		return nil, fmt.Errorf("update targets: %w", err)
	}
	p.Targets = &targets
	p.UpdatedAt = now
	return p, nil
}
