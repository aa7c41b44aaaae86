package profile

import (
	"context"
	"testing"

	"github.com/abmacros/server/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockProfileStore struct{ mock.Mock }

func (m *mockProfileStore) Put(ctx context.Context, p *domain.Profile) error {
	return m.Called(ctx, p).Error(0)
}
func (m *mockProfileStore) Get(ctx context.Context, userID string) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if p, _ := args.Get(0).(*domain.Profile); p != nil {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockProfileStore) UpdateTargets(ctx context.Context, userID string, targets *domain.NutrientTargets, updatedAt int64) error {
	return m.Called(ctx, userID, targets, updatedAt).Error(0)
}

func TestGet_CreatesProfileOnFirstAccess(t *testing.T) {
	repo := &mockProfileStore{}
	repo.On("Get", mock.Anything, "+15551234567").Return(nil, domain.ErrNotFound)
	repo.On("Put", mock.Anything, mock.MatchedBy(func(p *domain.Profile) bool {
		return p.UserID == "+15551234567" && p.Phone == "+15551234567"
	})).Return(nil)

	svc := NewService(repo)
	p, err := svc.Get(context.Background(), "+15551234567")

	require.NoError(t, err)
	assert.Equal(t, "+15551234567", p.UserID)
	assert.Nil(t, p.Targets)
	repo.AssertExpectations(t)
}

func TestGet_ReturnsExistingProfile(t *testing.T) {
	repo := &mockProfileStore{}
	existing := &domain.Profile{UserID: "+15551234567", Phone: "+15551234567"}
	repo.On("Get", mock.Anything, "+15551234567").Return(existing, nil)

	svc := NewService(repo)
	p, err := svc.Get(context.Background(), "+15551234567")

	require.NoError(t, err)
	assert.Same(t, existing, p)
	repo.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
}

func TestUpdateTargets_PersistsAndReturns(t *testing.T) {
	repo := &mockProfileStore{}
	existing := &domain.Profile{UserID: "+15551234567", Phone: "+15551234567"}
	repo.On("Get", mock.Anything, "+15551234567").Return(existing, nil)
	repo.On("UpdateTargets", mock.Anything, "+15551234567",
		mock.AnythingOfType("*domain.NutrientTargets"), mock.AnythingOfType("int64")).Return(nil)

	targets := domain.NutrientTargets{
		Macros: domain.MacroTargets{Protein: domain.Range{Min: 120, Max: 180}},
	}

	svc := NewService(repo)
	p, err := svc.UpdateTargets(context.Background(), "+15551234567", targets)

	require.NoError(t, err)
	require.NotNil(t, p.Targets)
	assert.Equal(t, 120.0, p.Targets.Macros.Protein.Min)
	repo.AssertExpectations(t)
}
