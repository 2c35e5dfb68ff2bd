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

const defaultPaymentsTableName = "payments"

type paymentItem struct {
	ID              string `dynamodbav:"id"`
	TicketID        string `dynamodbav:"ticket_id"`
	UserID          string `dynamodbav:"user_id"`
	Amount          string `dynamodbav:"amount"`
	Method          string `dynamodbav:"method"`
	Status          string `dynamodbav:"status"`
	TransactionCode string `dynamodbav:"transaction_code,omitempty"`
	CardMasked      string `dynamodbav:"card_masked,omitempty"`
	CardBrand       string `dynamodbav:"card_brand,omitempty"`
	FailureReason   string `dynamodbav:"failure_reason,omitempty"`
	RefundReason    string `dynamodbav:"refund_reason,omitempty"`
	Date            string `dynamodbav:"date"`
}

// PaymentDynamoRepository persists Payment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI ticket_id-index: ticket_id
//   - GSI user_id-index: user_id

type PaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.Payment{}, err
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
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
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
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) ListByTicketID(ctx context.Context, ticketID string) ([]entities.Payment, error) {
	return r.queryIndex(ctx, "ticket_id-index", "ticket_id", ticketID)
}

func (r *PaymentDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Payment, error) {
	return r.queryIndex(ctx, "user_id-index", "user_id", userID)
}

// UpdateStatus applies the gateway/refund outcome. The reason lands in
// failure_reason for failed payments and refund_reason for refunds.
func (r *PaymentDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.PaymentStatus, transactionCode, reason string) (entities.Payment, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	expr := "SET #status = :status"
	names := map[string]string{
		"#id":     "id",
		"#status": "status",
	}
	values := map[string]types.AttributeValue{
		":status": &types.AttributeValueMemberS{Value: string(status)},
	}

	if transactionCode != "" {
		expr += ", #transaction_code = :transaction_code"
		names["#transaction_code"] = "transaction_code"
		values[":transaction_code"] = &types.AttributeValueMemberS{Value: transactionCode}
	}
	if reason != "" {
		field := "failure_reason"
		if status == entities.PaymentStatusRefunded {
			field = "refund_reason"
		}
		expr += ", #reason = :reason"
		names["#reason"] = field
		values[":reason"] = &types.AttributeValueMemberS{Value: reason}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Payment{}, nil
		}
		return entities.Payment{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) queryIndex(ctx context.Context, index, key, value string) ([]entities.Payment, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#key = :value"),
		ExpressionAttributeNames: map[string]string{
			"#key": key,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":value": &types.AttributeValueMemberS{Value: value},
		},
	})
	if err != nil {
		return nil, err
	}

	payments := make([]entities.Payment, 0, len(out.Items))
	for _, item := range out.Items {
		var it paymentItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		payments = append(payments, fromPaymentItem(it))
	}
	return payments, nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:              p.ID,
		TicketID:        p.TicketID,
		UserID:          p.UserID,
		Amount:          floatToString(p.Amount),
		Method:          p.Method,
		Status:          string(p.Status),
		TransactionCode: p.TransactionCode,
		CardMasked:      p.CardMasked,
		CardBrand:       p.CardBrand,
		FailureReason:   p.FailureReason,
		RefundReason:    p.RefundReason,
		Date:            p.Date.UTC().Format(time.RFC3339Nano),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	date, _ := time.Parse(time.RFC3339Nano, it.Date)
	return entities.Payment{
		ID:              it.ID,
		TicketID:        it.TicketID,
		UserID:          it.UserID,
		Amount:          amount,
		Method:          it.Method,
		Status:          entities.PaymentStatus(it.Status),
		TransactionCode: it.TransactionCode,
		CardMasked:      it.CardMasked,
		CardBrand:       it.CardBrand,
		FailureReason:   it.FailureReason,
		RefundReason:    it.RefundReason,
		Date:            date,
	}
}
