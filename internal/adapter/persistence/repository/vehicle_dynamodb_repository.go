package repository

import (
	"context"
	"time"

	"parking_xpto/internal/domain/entities"
	"parking_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultVehiclesTableName = "vehicles"

type vehicleItem struct {
	ID           string `dynamodbav:"id"`
	LicensePlate string `dynamodbav:"license_plate"`
	OwnerID      string `dynamodbav:"owner_id"`
	Model        string `dynamodbav:"model,omitempty"`
	CreatedAt    string `dynamodbav:"created_at"`
}

// VehicleDynamoRepository reads Vehicle collaborators from DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI license_plate-index: license_plate

type VehicleDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IVehicleRepository = (*VehicleDynamoRepository)(nil)

func NewVehicleDynamoRepository(ddb *dynamodb.Client) *VehicleDynamoRepository {
	return &VehicleDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("VEHICLES_TABLE", defaultVehiclesTableName),
	}
}

func (r *VehicleDynamoRepository) GetByPlate(ctx context.Context, plate string) (entities.Vehicle, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String("license_plate-index"),
		KeyConditionExpression: aws.String("#license_plate = :license_plate"),
		ExpressionAttributeNames: map[string]string{
			"#license_plate": "license_plate",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":license_plate": &types.AttributeValueMemberS{Value: plate},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Vehicle{}, err
	}
	if len(out.Items) == 0 {
		return entities.Vehicle{}, nil
	}

	var it vehicleItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Vehicle{}, err
	}

	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Vehicle{
		ID:           it.ID,
		LicensePlate: it.LicensePlate,
		OwnerID:      it.OwnerID,
		Model:        it.Model,
		CreatedAt:    createdAt,
	}, nil
}
