package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/abmacros/server/internal/config"
	"github.com/abmacros/server/internal/domain"
	jwtinfra "github.com/abmacros/server/internal/infrastructure/jwt"
	"github.com/abmacros/server/internal/transport/http/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockMealSvc struct{ mock.Mock }

func (m *mockMealSvc) Add(ctx context.Context, userID string, req domain.AddMealRequest) (*domain.Meal, error) {
	args := m.Called(ctx, userID, req)
	if meal, _ := args.Get(0).(*domain.Meal); meal != nil {
		return meal, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockMealSvc) List(ctx context.Context, userID string, start, end *time.Time) ([]domain.Meal, error) {
	args := m.Called(ctx, userID, start, end)
	meals, _ := args.Get(0).([]domain.Meal)
	return meals, args.Error(1)
}

func (m *mockMealSvc) Delete(ctx context.Context, userID, mealID string) error {
	return m.Called(ctx, userID, mealID).Error(0)
}

// authedRequest routes the request through the gate with a freshly signed token.
func authedRequest(t *testing.T, handler http.Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	p, err := jwtinfra.NewProvider(&config.Config{JWTSecret: "test-secret-key", JWTExpiry: time.Hour})
	require.NoError(t, err)
	token, err := p.Sign("+15551234567")
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	middleware.Auth(p)(handler).ServeHTTP(rr, req)
	return rr
}

func TestAddMeal_WithoutGate_Unauthorized(t *testing.T) {
	svc := &mockMealSvc{}
	h := NewMealHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/meals", bytes.NewReader([]byte(`{}`)))
	rr := httptest.NewRecorder()
	h.Add(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	// Same body shape as the bearer gate's rejection.
	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "unauthorized", body["error"])
	assert.NotEmpty(t, body["message"])
	svc.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything)
}

func TestAddMeal_Created(t *testing.T) {
	svc := &mockMealSvc{}
	svc.On("Add", mock.Anything, "+15551234567", mock.MatchedBy(func(req domain.AddMealRequest) bool {
		return req.Name == "Breakfast" && len(req.Items) == 1
	})).Return(&domain.Meal{MealID: "m1", UserID: "+15551234567", Name: "Breakfast"}, nil)

	body, _ := json.Marshal(domain.AddMealRequest{
		Name:  "Breakfast",
		Items: []domain.MealItem{{FoodID: "eggs", Amount: 3}},
	})
	req := httptest.NewRequest(http.MethodPost, "/api/meals", bytes.NewReader(body))
	rr := authedRequest(t, http.HandlerFunc(NewMealHandler(svc).Add), req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	var m domain.Meal
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &m))
	assert.Equal(t, "m1", m.MealID)
}

func TestAddMeal_NoItems_Unprocessable(t *testing.T) {
	svc := &mockMealSvc{}

	body, _ := json.Marshal(domain.AddMealRequest{Name: "Breakfast"})
	req := httptest.NewRequest(http.MethodPost, "/api/meals", bytes.NewReader(body))
	rr := authedRequest(t, http.HandlerFunc(NewMealHandler(svc).Add), req)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	svc.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything)
}

func TestListMeals_BadRange_BadRequest(t *testing.T) {
	svc := &mockMealSvc{}

	req := httptest.NewRequest(http.MethodGet, "/api/meals?start_date=yesterday", nil)
	rr := authedRequest(t, http.HandlerFunc(NewMealHandler(svc).List), req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	svc.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
