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

const defaultTicketsTableName = "tickets"

type ticketItem struct {
	ID             string `dynamodbav:"id"`
	Code           string `dynamodbav:"code"`
	UserID         string `dynamodbav:"user_id"`
	VehicleID      string `dynamodbav:"vehicle_id"`
	LotID          string `dynamodbav:"lot_id"`
	Type           string `dynamodbav:"type"`
	EntryTime      string `dynamodbav:"entry_time"`
	ExitTime       string `dynamodbav:"exit_time,omitempty"`
	DeclaredHours  string `dynamodbav:"declared_hours"`
	DeclaredDays   int    `dynamodbav:"declared_days"`
	EstimatedPrice string `dynamodbav:"estimated_price"`
	Price          string `dynamodbav:"price,omitempty"`
	Status         string `dynamodbav:"status"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

// TicketDynamoRepository persists Ticket entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI user_id-index: user_id
//   - GSI code-index: code
//   - GSI vehicle_id-index: vehicle_id
//
// State transitions (Finalize/Cancel/MarkPaid) are conditional updates
// on the current status, so two racing requests cannot both win; the
// loser gets a zero-value Ticket back.

type TicketDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITicketRepository = (*TicketDynamoRepository)(nil)

func NewTicketDynamoRepository(ddb *dynamodb.Client) *TicketDynamoRepository {
	return &TicketDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TICKETS_TABLE", defaultTicketsTableName),
	}
}

func (r *TicketDynamoRepository) Create(ctx context.Context, t entities.Ticket) (entities.Ticket, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	av, err := attributevalue.MarshalMap(toTicketItem(t))
	if err != nil {
		return entities.Ticket{}, err
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
		return entities.Ticket{}, err
	}
	return t, nil
}

func (r *TicketDynamoRepository) GetByID(ctx context.Context, id string) (entities.Ticket, error) {
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
		return entities.Ticket{}, err
	}
	if len(out.Item) == 0 {
		return entities.Ticket{}, nil
	}

	var it ticketItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Ticket{}, err
	}
	return fromTicketItem(it), nil
}

func (r *TicketDynamoRepository) GetByCode(ctx context.Context, code string) (entities.Ticket, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String("code-index"),
		KeyConditionExpression: aws.String("#code = :code"),
		ExpressionAttributeNames: map[string]string{
			"#code": "code",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":code": &types.AttributeValueMemberS{Value: code},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Ticket{}, err
	}
	if len(out.Items) == 0 {
		return entities.Ticket{}, nil
	}

	var it ticketItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Ticket{}, err
	}
	return fromTicketItem(it), nil
}

func (r *TicketDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Ticket, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String("user_id-index"),
		KeyConditionExpression: aws.String("#user_id = :user_id"),
		ExpressionAttributeNames: map[string]string{
			"#user_id": "user_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":user_id": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}

	tickets := make([]entities.Ticket, 0, len(out.Items))
	for _, item := range out.Items {
		var it ticketItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		tickets = append(tickets, fromTicketItem(it))
	}
	return tickets, nil
}

func (r *TicketDynamoRepository) HasActiveForVehicleLot(ctx context.Context, vehicleID, lotID string) (bool, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String("vehicle_id-index"),
		KeyConditionExpression: aws.String("#vehicle_id = :vehicle_id"),
		FilterExpression:       aws.String("#lot_id = :lot_id AND #status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#vehicle_id": "vehicle_id",
			"#lot_id":     "lot_id",
			"#status":     "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":vehicle_id": &types.AttributeValueMemberS{Value: vehicleID},
			":lot_id":     &types.AttributeValueMemberS{Value: lotID},
			":status":     &types.AttributeValueMemberS{Value: string(entities.TicketStatusActive)},
		},
	})
	if err != nil {
		return false, err
	}
	return len(out.Items) > 0, nil
}

func (r *TicketDynamoRepository) Finalize(ctx context.Context, id string, exitTime time.Time, price float64) (entities.Ticket, error) {
	return r.transition(ctx, id,
		"SET #status = :next, #exit_time = :exit_time, #price = :price, #updated_at = :updated_at",
		map[string]string{
			"#status":     "status",
			"#exit_time":  "exit_time",
			"#price":      "price",
			"#updated_at": "updated_at",
		},
		map[string]types.AttributeValue{
			":next":       &types.AttributeValueMemberS{Value: string(entities.TicketStatusFinalized)},
			":exit_time":  &types.AttributeValueMemberS{Value: exitTime.UTC().Format(time.RFC3339Nano)},
			":price":      &types.AttributeValueMemberS{Value: floatToString(price)},
			":updated_at": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
			":active":     &types.AttributeValueMemberS{Value: string(entities.TicketStatusActive)},
		},
		"#status = :active",
	)
}

func (r *TicketDynamoRepository) Cancel(ctx context.Context, id string, exitTime time.Time) (entities.Ticket, error) {
	return r.transition(ctx, id,
		"SET #status = :next, #exit_time = :exit_time, #updated_at = :updated_at",
		map[string]string{
			"#status":     "status",
			"#exit_time":  "exit_time",
			"#updated_at": "updated_at",
		},
		map[string]types.AttributeValue{
			":next":       &types.AttributeValueMemberS{Value: string(entities.TicketStatusCancelled)},
			":exit_time":  &types.AttributeValueMemberS{Value: exitTime.UTC().Format(time.RFC3339Nano)},
			":updated_at": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
			":active":     &types.AttributeValueMemberS{Value: string(entities.TicketStatusActive)},
		},
		"#status = :active",
	)
}

func (r *TicketDynamoRepository) MarkPaid(ctx context.Context, id string, price float64) (entities.Ticket, error) {
	return r.transition(ctx, id,
		"SET #status = :next, #price = :price, #updated_at = :updated_at",
		map[string]string{
			"#status":     "status",
			"#price":      "price",
			"#updated_at": "updated_at",
		},
		map[string]types.AttributeValue{
			":next":       &types.AttributeValueMemberS{Value: string(entities.TicketStatusPaid)},
			":price":      &types.AttributeValueMemberS{Value: floatToString(price)},
			":updated_at": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
			":active":     &types.AttributeValueMemberS{Value: string(entities.TicketStatusActive)},
			":finalized":  &types.AttributeValueMemberS{Value: string(entities.TicketStatusFinalized)},
		},
		"#status IN (:active, :finalized)",
	)
}

func (r *TicketDynamoRepository) transition(
	ctx context.Context,
	id string,
	updateExpr string,
	names map[string]string,
	values map[string]types.AttributeValue,
	statusCondition string,
) (entities.Ticket, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND " + statusCondition),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Ticket{}, nil
		}
		return entities.Ticket{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Ticket{}, nil
	}

	var it ticketItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Ticket{}, err
	}
	return fromTicketItem(it), nil
}

func toTicketItem(t entities.Ticket) ticketItem {
	it := ticketItem{
		ID:             t.ID,
		Code:           t.Code,
		UserID:         t.UserID,
		VehicleID:      t.VehicleID,
		LotID:          t.LotID,
		Type:           string(t.Type),
		EntryTime:      t.EntryTime.UTC().Format(time.RFC3339Nano),
		DeclaredHours:  floatToString(t.DeclaredHours),
		DeclaredDays:   t.DeclaredDays,
		EstimatedPrice: floatToString(t.EstimatedPrice),
		Status:         string(t.Status),
		CreatedAt:      t.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      t.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if t.ExitTime != nil {
		it.ExitTime = t.ExitTime.UTC().Format(time.RFC3339Nano)
	}
	if t.Price != nil {
		it.Price = floatToString(*t.Price)
	}
	return it
}

func fromTicketItem(it ticketItem) entities.Ticket {
	entryTime, _ := time.Parse(time.RFC3339Nano, it.EntryTime)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	declaredHours, _ := strconv.ParseFloat(it.DeclaredHours, 64)
	estimated, _ := strconv.ParseFloat(it.EstimatedPrice, 64)

	t := entities.Ticket{
		ID:             it.ID,
		Code:           it.Code,
		UserID:         it.UserID,
		VehicleID:      it.VehicleID,
		LotID:          it.LotID,
		Type:           entities.ReservationType(it.Type),
		EntryTime:      entryTime,
		DeclaredHours:  declaredHours,
		DeclaredDays:   it.DeclaredDays,
		EstimatedPrice: estimated,
		Status:         entities.TicketStatus(it.Status),
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
	if it.ExitTime != "" {
		if exitTime, err := time.Parse(time.RFC3339Nano, it.ExitTime); err == nil {
			t.ExitTime = &exitTime
		}
	}
	if it.Price != "" {
		if price, err := strconv.ParseFloat(it.Price, 64); err == nil {
			t.Price = &price
		}
	}
	return t
}
