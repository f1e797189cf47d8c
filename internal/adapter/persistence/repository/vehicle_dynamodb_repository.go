package repository

import (
	"context"
	"time"

	"oficina_ibs/internal/domain/entities"
	"oficina_ibs/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultVehiclesTableName = "vehicles"

type vehicleItem struct {
	ID           string `dynamodbav:"id"`
	ClientID     string `dynamodbav:"client_id"`
	LicensePlate string `dynamodbav:"license_plate"`
	Model        string `dynamodbav:"model"`
	Brand        string `dynamodbav:"brand"`
	Year         int    `dynamodbav:"year"`
	Color        string `dynamodbav:"color,omitempty"`
	Transmission string `dynamodbav:"transmission,omitempty"`
	FuelType     string `dynamodbav:"fuel_type,omitempty"`
	Mileage      int    `dynamodbav:"mileage,omitempty"`
	Engine       string `dynamodbav:"engine,omitempty"`
	Notes        string `dynamodbav:"notes,omitempty"`
	CreatedAt    string `dynamodbav:"created_at"`
}

// VehicleDynamoRepository persists Vehicle entities in DynamoDB (PK: id).
// Per-client listing uses a filtered scan; the fleet of a single workshop is
// small enough that a GSI would not pay for itself.
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

func (r *VehicleDynamoRepository) Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	if _, err := putItem(ctx, r.ddb, r.tableName, toVehicleItem(v), false); err != nil {
		return entities.Vehicle{}, err
	}
	return v, nil
}

func (r *VehicleDynamoRepository) GetByID(ctx context.Context, id string) (entities.Vehicle, error) {
	var it vehicleItem
	found, err := getItem(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.Vehicle{}, err
	}
	return fromVehicleItem(it), nil
}

func (r *VehicleDynamoRepository) List(ctx context.Context) ([]entities.Vehicle, error) {
	return r.scan(ctx, "", nil)
}

func (r *VehicleDynamoRepository) ListByClientID(ctx context.Context, clientID string) ([]entities.Vehicle, error) {
	return r.scan(ctx, "client_id = :client_id", map[string]types.AttributeValue{
		":client_id": &types.AttributeValueMemberS{Value: clientID},
	})
}

func (r *VehicleDynamoRepository) scan(ctx context.Context, filterExpr string, filterVals map[string]types.AttributeValue) ([]entities.Vehicle, error) {
	raw, err := scanItems(ctx, r.ddb, r.tableName, filterExpr, filterVals)
	if err != nil {
		return nil, err
	}

	vehicles := make([]entities.Vehicle, 0, len(raw))
	for _, item := range raw {
		var it vehicleItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		vehicles = append(vehicles, fromVehicleItem(it))
	}
	return vehicles, nil
}

func (r *VehicleDynamoRepository) Replace(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	found, err := putItem(ctx, r.ddb, r.tableName, toVehicleItem(v), true)
	if err != nil || !found {
		return entities.Vehicle{}, err
	}
	return v, nil
}

func (r *VehicleDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteItem(ctx, r.ddb, r.tableName, id)
}

func (r *VehicleDynamoRepository) Count(ctx context.Context) (int, error) {
	return countItems(ctx, r.ddb, r.tableName)
}

func toVehicleItem(v entities.Vehicle) vehicleItem {
	return vehicleItem{
		ID:           v.ID,
		ClientID:     v.ClientID,
		LicensePlate: v.LicensePlate,
		Model:        v.Model,
		Brand:        v.Brand,
		Year:         v.Year,
		Color:        v.Color,
		Transmission: v.Transmission,
		FuelType:     v.FuelType,
		Mileage:      v.Mileage,
		Engine:       v.Engine,
		Notes:        v.Notes,
		CreatedAt:    v.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromVehicleItem(it vehicleItem) entities.Vehicle {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Vehicle{
		ID:           it.ID,
		ClientID:     it.ClientID,
		LicensePlate: it.LicensePlate,
		Model:        it.Model,
		Brand:        it.Brand,
		Year:         it.Year,
		Color:        it.Color,
		Transmission: it.Transmission,
		FuelType:     it.FuelType,
		Mileage:      it.Mileage,
		Engine:       it.Engine,
		Notes:        it.Notes,
		CreatedAt:    createdAt,
	}
}
