package repository

import (
	"context"
	"time"

	"oficina_ibs/internal/domain/entities"
	"oficina_ibs/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultClientsTableName = "clients"

type clientItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Phone     string `dynamodbav:"phone"`
	Email     string `dynamodbav:"email,omitempty"`
	CPF       string `dynamodbav:"cpf,omitempty"`
	Address   string `dynamodbav:"address,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
}

// ClientDynamoRepository persists Client entities in DynamoDB (PK: id).
type ClientDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IClientRepository = (*ClientDynamoRepository)(nil)

func NewClientDynamoRepository(ddb *dynamodb.Client) *ClientDynamoRepository {
	return &ClientDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CLIENTS_TABLE", defaultClientsTableName),
	}
}

func (r *ClientDynamoRepository) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	if _, err := putItem(ctx, r.ddb, r.tableName, toClientItem(c), false); err != nil {
		return entities.Client{}, err
	}
	return c, nil
}

func (r *ClientDynamoRepository) GetByID(ctx context.Context, id string) (entities.Client, error) {
	var it clientItem
	found, err := getItem(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.Client{}, err
	}
	return fromClientItem(it), nil
}

func (r *ClientDynamoRepository) List(ctx context.Context) ([]entities.Client, error) {
	raw, err := scanItems(ctx, r.ddb, r.tableName, "", nil)
	if err != nil {
		return nil, err
	}

	clients := make([]entities.Client, 0, len(raw))
	for _, item := range raw {
		var it clientItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		clients = append(clients, fromClientItem(it))
	}
	return clients, nil
}

func (r *ClientDynamoRepository) Replace(ctx context.Context, c entities.Client) (entities.Client, error) {
	found, err := putItem(ctx, r.ddb, r.tableName, toClientItem(c), true)
	if err != nil || !found {
		return entities.Client{}, err
	}
	return c, nil
}

func (r *ClientDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteItem(ctx, r.ddb, r.tableName, id)
}

func (r *ClientDynamoRepository) Count(ctx context.Context) (int, error) {
	return countItems(ctx, r.ddb, r.tableName)
}

func toClientItem(c entities.Client) clientItem {
	return clientItem{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		CPF:       c.CPF,
		Address:   c.Address,
		CreatedAt: c.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromClientItem(it clientItem) entities.Client {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Client{
		ID:        it.ID,
		Name:      it.Name,
		Phone:     it.Phone,
		Email:     it.Email,
		CPF:       it.CPF,
		Address:   it.Address,
		CreatedAt: createdAt,
	}
}
