package dynamo

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/abmacros/server/internal/domain"
)

// MealRepo provides typed DynamoDB operations for the meals table.
type MealRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewMealRepo(client *dynamodb.Client, tableName string) *MealRepo {
	return &MealRepo{client: client, tableName: tableName}
}

func (r *MealRepo) Put(ctx context.Context, m *domain.Meal) error {
	item, err := attributevalue.MarshalMap(m)
	if err != nil {
		return fmt.Errorf("marshal meal: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *MealRepo) Get(ctx context.Context, mealID string) (*domain.Meal, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("meal_id", mealID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("meal not found: %w", domain.ErrNotFound)
	}
	var m domain.Meal
	if err := attributevalue.UnmarshalMap(out.Item, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// ListByUserRange queries the user_id-created_at GSI for meals recorded in
// [start, end], oldest first.
func (r *MealRepo) ListByUserRange(ctx context.Context, userID string, start, end time.Time) ([]domain.Meal, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String("user_id-created_at-index"),
		KeyConditionExpression: aws.String("user_id = :uid AND created_at BETWEEN :start AND :end"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid":   &types.AttributeValueMemberS{Value: userID},
			":start": &types.AttributeValueMemberN{Value: strconv.FormatInt(start.Unix(), 10)},
			":end":   &types.AttributeValueMemberN{Value: strconv.FormatInt(end.Unix(), 10)},
		},
		ScanIndexForward: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	var meals []domain.Meal
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &meals); err != nil {
		return nil, err
	}
	return meals, nil
}

func (r *MealRepo) Delete(ctx context.Context, mealID string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("meal_id", mealID),
	})
	return err
}
