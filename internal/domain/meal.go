package domain

import "time"

// Meal is a single recorded meal.
// PK: meal_id, GSI user_id-created_at-index for time-range queries.
// CreatedAt is stored as Unix seconds so the GSI sort key ranges numerically.
type Meal struct {
	MealID    string     `json:"id" dynamodbav:"meal_id"`
	UserID    string     `json:"user_id" dynamodbav:"user_id"`
	Name      string     `json:"name" dynamodbav:"name"`
	CreatedAt time.Time  `json:"timestamp" dynamodbav:"created_at,unixtime"`
	Items     []MealItem `json:"items" dynamodbav:"items"`
	Notes     *string    `json:"notes,omitempty" dynamodbav:"notes"`
}

// MealItem references a food and the consumed amount in the food's serving unit.
type MealItem struct {
	FoodID string  `json:"food_id" dynamodbav:"food_id" validate:"required"`
	Amount float64 `json:"amount" dynamodbav:"amount" validate:"required,gt=0"`
}

// AddMealRequest is the payload for recording a meal.
type AddMealRequest struct {
	Name      string     `json:"name" validate:"required"`
	Timestamp *time.Time `json:"timestamp"`
	Items     []MealItem `json:"items" validate:"required,min=1,dive"`
	Notes     *string    `json:"notes"`
}
