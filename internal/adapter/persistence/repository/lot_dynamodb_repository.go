package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"parking_xpto/internal/domain/entities"
	"parking_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultLotsTableName = "lots"

type lotItem struct {
	ID               string `dynamodbav:"id"`
	Name             string `dynamodbav:"name"`
	TotalSpaces      int    `dynamodbav:"total_spaces"`
	AvailableSpaces  int    `dynamodbav:"available_spaces"`
	HourlyRate       string `dynamodbav:"hourly_rate"`
	MonthlyRate      string `dynamodbav:"monthly_rate"`
	ReservationCount int    `dynamodbav:"reservation_count"`
	Status           string `dynamodbav:"status"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

// LotDynamoRepository persists Lot entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The available-spaces counter only moves through AdjustAvailableSpaces:
// a single ADD with a bounds condition on the stored value. There is no
// read-modify-write anywhere, so concurrent create/finalize/cancel on
// the same lot cannot push the counter outside [0, total_spaces].

type LotDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ILotRepository = (*LotDynamoRepository)(nil)

func NewLotDynamoRepository(ddb *dynamodb.Client) *LotDynamoRepository {
	return &LotDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("LOTS_TABLE", defaultLotsTableName),
	}
}

func (r *LotDynamoRepository) GetByID(ctx context.Context, id string) (entities.Lot, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Lot{}, err
	}
	if len(out.Item) == 0 {
		return entities.Lot{}, nil
	}

	var it lotItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Lot{}, err
	}
	return fromLotItem(it), nil
}

// AdjustAvailableSpaces atomically adds delta to the available counter.
// TotalSpaces is immutable configuration, so it is read once to compute
// the pre-update bounds; the ADD itself plus its condition on the
// stored counter is what makes the adjustment race-free. A zero-value
// Lot means the lot is missing or the adjustment would leave
// [0, total_spaces].
func (r *LotDynamoRepository) AdjustAvailableSpaces(ctx context.Context, id string, delta int) (entities.Lot, error) {
	lot, err := r.GetByID(ctx, id)
	if err != nil {
		return entities.Lot{}, err
	}
	if lot.ID == "" {
		return entities.Lot{}, nil
	}

	// Pre-update value must satisfy: current + delta in [0, total].
	lo := 0
	if delta < 0 {
		lo = -delta
	}
	hi := lot.TotalSpaces - delta
	if hi > lot.TotalSpaces {
		hi = lot.TotalSpaces
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #available BETWEEN :lo AND :hi"),
		UpdateExpression:    aws.String("ADD #available :delta SET #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#available":  "available_spaces",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":delta":      &types.AttributeValueMemberN{Value: strconv.Itoa(delta)},
			":lo":         &types.AttributeValueMemberN{Value: strconv.Itoa(lo)},
			":hi":         &types.AttributeValueMemberN{Value: strconv.Itoa(hi)},
			":updated_at": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Lot{}, nil
		}
		return entities.Lot{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Lot{}, nil
	}

	var it lotItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Lot{}, err
	}
	return fromLotItem(it), nil
}

func (r *LotDynamoRepository) IncrementReservationCount(ctx context.Context, id string) (entities.Lot, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("ADD #count :one SET #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#count":      "reservation_count",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one":        &types.AttributeValueMemberN{Value: "1"},
			":updated_at": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Lot{}, nil
		}
		return entities.Lot{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Lot{}, nil
	}

	var it lotItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Lot{}, err
	}
	return fromLotItem(it), nil
}

func fromLotItem(it lotItem) entities.Lot {
	hourly, _ := strconv.ParseFloat(it.HourlyRate, 64)
	monthly, _ := strconv.ParseFloat(it.MonthlyRate, 64)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Lot{
		ID:               it.ID,
		Name:             it.Name,
		TotalSpaces:      it.TotalSpaces,
		AvailableSpaces:  it.AvailableSpaces,
		HourlyRate:       hourly,
		MonthlyRate:      monthly,
		ReservationCount: it.ReservationCount,
		Status:           entities.LotStatus(it.Status),
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}
}
