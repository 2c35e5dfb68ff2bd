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

const defaultPenaltiesTableName = "penalties"

type penaltyItem struct {
	ID          string `dynamodbav:"id"`
	TicketID    string `dynamodbav:"ticket_id"`
	UserID      string `dynamodbav:"user_id"`
	Type        string `dynamodbav:"type"`
	Amount      string `dynamodbav:"amount"`
	Status      string `dynamodbav:"status"`
	Description string `dynamodbav:"description,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// PenaltyDynamoRepository persists Penalty entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI ticket_id-index: ticket_id

type PenaltyDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPenaltyRepository = (*PenaltyDynamoRepository)(nil)

func NewPenaltyDynamoRepository(ddb *dynamodb.Client) *PenaltyDynamoRepository {
	return &PenaltyDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PENALTIES_TABLE", defaultPenaltiesTableName),
	}
}

func (r *PenaltyDynamoRepository) Create(ctx context.Context, p entities.Penalty) (entities.Penalty, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	av, err := attributevalue.MarshalMap(toPenaltyItem(p))
	if err != nil {
		return entities.Penalty{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Penalty{}, err
	}
	return p, nil
}

func (r *PenaltyDynamoRepository) GetByID(ctx context.Context, id string) (entities.Penalty, error) {
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
		return entities.Penalty{}, err
	}
	if len(out.Item) == 0 {
		return entities.Penalty{}, nil
	}

	var it penaltyItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Penalty{}, err
	}
	return fromPenaltyItem(it), nil
}

func (r *PenaltyDynamoRepository) ListByTicketID(ctx context.Context, ticketID string) ([]entities.Penalty, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String("ticket_id-index"),
		KeyConditionExpression: aws.String("#ticket_id = :ticket_id"),
		ExpressionAttributeNames: map[string]string{
			"#ticket_id": "ticket_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ticket_id": &types.AttributeValueMemberS{Value: ticketID},
		},
	})
	if err != nil {
		return nil, err
	}

	penalties := make([]entities.Penalty, 0, len(out.Items))
	for _, item := range out.Items {
		var it penaltyItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		penalties = append(penalties, fromPenaltyItem(it))
	}
	return penalties, nil
}

func (r *PenaltyDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.PenaltyStatus) (entities.Penalty, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Penalty{}, nil
		}
		return entities.Penalty{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Penalty{}, nil
	}

	var it penaltyItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Penalty{}, err
	}
	return fromPenaltyItem(it), nil
}

func toPenaltyItem(p entities.Penalty) penaltyItem {
	return penaltyItem{
		ID:          p.ID,
		TicketID:    p.TicketID,
		UserID:      p.UserID,
		Type:        string(p.Type),
		Amount:      floatToString(p.Amount),
		Status:      string(p.Status),
		Description: p.Description,
		CreatedAt:   p.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPenaltyItem(it penaltyItem) entities.Penalty {
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Penalty{
		ID:          it.ID,
		TicketID:    it.TicketID,
		UserID:      it.UserID,
		Type:        entities.PenaltyType(it.Type),
		Amount:      amount,
		Status:      entities.PenaltyStatus(it.Status),
		Description: it.Description,
		CreatedAt:   createdAt,
	}
}
