package repository

import (
	"context"
	"time"

	"oficina_ibs/internal/domain/entities"
	"oficina_ibs/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const (
	defaultServicesTableName = "services"
	defaultPartsTableName    = "parts"
)

type serviceItem struct {
	ID           string  `dynamodbav:"id"`
	Name         string  `dynamodbav:"name"`
	Description  string  `dynamodbav:"description,omitempty"`
	DefaultPrice float64 `dynamodbav:"default_price"`
	CreatedAt    string  `dynamodbav:"created_at"`
}

type partItem struct {
	ID          string  `dynamodbav:"id"`
	Name        string  `dynamodbav:"name"`
	Description string  `dynamodbav:"description,omitempty"`
	Price       float64 `dynamodbav:"price"`
	Stock       int     `dynamodbav:"stock"`
	CreatedAt   string  `dynamodbav:"created_at"`
}

// ServiceDynamoRepository persists the service catalog (PK: id).
type ServiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceRepository = (*ServiceDynamoRepository)(nil)

func NewServiceDynamoRepository(ddb *dynamodb.Client) *ServiceDynamoRepository {
	return &ServiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SERVICES_TABLE", defaultServicesTableName),
	}
}

func (r *ServiceDynamoRepository) Create(ctx context.Context, s entities.Service) (entities.Service, error) {
	if _, err := putItem(ctx, r.ddb, r.tableName, toServiceItem(s), false); err != nil {
		return entities.Service{}, err
	}
	return s, nil
}

func (r *ServiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Service, error) {
	var it serviceItem
	found, err := getItem(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.Service{}, err
	}
	return fromServiceItem(it), nil
}

func (r *ServiceDynamoRepository) List(ctx context.Context) ([]entities.Service, error) {
	raw, err := scanItems(ctx, r.ddb, r.tableName, "", nil)
	if err != nil {
		return nil, err
	}

	services := make([]entities.Service, 0, len(raw))
	for _, item := range raw {
		var it serviceItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		services = append(services, fromServiceItem(it))
	}
	return services, nil
}

func (r *ServiceDynamoRepository) Replace(ctx context.Context, s entities.Service) (entities.Service, error) {
	found, err := putItem(ctx, r.ddb, r.tableName, toServiceItem(s), true)
	if err != nil || !found {
		return entities.Service{}, err
	}
	return s, nil
}

func (r *ServiceDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteItem(ctx, r.ddb, r.tableName, id)
}

func toServiceItem(s entities.Service) serviceItem {
	return serviceItem{
		ID:           s.ID,
		Name:         s.Name,
		Description:  s.Description,
		DefaultPrice: s.DefaultPrice,
		CreatedAt:    s.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromServiceItem(it serviceItem) entities.Service {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Service{
		ID:           it.ID,
		Name:         it.Name,
		Description:  it.Description,
		DefaultPrice: it.DefaultPrice,
		CreatedAt:    createdAt,
	}
}

// PartDynamoRepository persists the parts inventory (PK: id).
type PartDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPartRepository = (*PartDynamoRepository)(nil)

func NewPartDynamoRepository(ddb *dynamodb.Client) *PartDynamoRepository {
	return &PartDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PARTS_TABLE", defaultPartsTableName),
	}
}

func (r *PartDynamoRepository) Create(ctx context.Context, p entities.Part) (entities.Part, error) {
	if _, err := putItem(ctx, r.ddb, r.tableName, toPartItem(p), false); err != nil {
		return entities.Part{}, err
	}
	return p, nil
}

func (r *PartDynamoRepository) GetByID(ctx context.Context, id string) (entities.Part, error) {
	var it partItem
	found, err := getItem(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.Part{}, err
	}
	return fromPartItem(it), nil
}

func (r *PartDynamoRepository) List(ctx context.Context) ([]entities.Part, error) {
	raw, err := scanItems(ctx, r.ddb, r.tableName, "", nil)
	if err != nil {
		return nil, err
	}

	parts := make([]entities.Part, 0, len(raw))
	for _, item := range raw {
		var it partItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		parts = append(parts, fromPartItem(it))
	}
	return parts, nil
}

func (r *PartDynamoRepository) Replace(ctx context.Context, p entities.Part) (entities.Part, error) {
	found, err := putItem(ctx, r.ddb, r.tableName, toPartItem(p), true)
	if err != nil || !found {
		return entities.Part{}, err
	}
	return p, nil
}

func (r *PartDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteItem(ctx, r.ddb, r.tableName, id)
}

func toPartItem(p entities.Part) partItem {
	return partItem{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		CreatedAt:   p.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPartItem(it partItem) entities.Part {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Part{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Price:       it.Price,
		Stock:       it.Stock,
		CreatedAt:   createdAt,
	}
}
