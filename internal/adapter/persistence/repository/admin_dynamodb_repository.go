package repository

import (
	"context"
	"time"

	"oficina_ibs/internal/domain/entities"
	"oficina_ibs/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultAdminsTableName = "admins"

type adminItem struct {
	Username     string `dynamodbav:"username"`
	ID           string `dynamodbav:"id"`
	PasswordHash string `dynamodbav:"password_hash"`
	CreatedAt    string `dynamodbav:"created_at"`
}

// AdminDynamoRepository persists admin accounts. The table is keyed by
// username since login is the only lookup, so the shared id-keyed helpers
// do not apply here.
type AdminDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAdminRepository = (*AdminDynamoRepository)(nil)

func NewAdminDynamoRepository(ddb *dynamodb.Client) *AdminDynamoRepository {
	return &AdminDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ADMINS_TABLE", defaultAdminsTableName),
	}
}

func (r *AdminDynamoRepository) GetByUsername(ctx context.Context, username string) (entities.Admin, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"username": &types.AttributeValueMemberS{Value: username},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Admin{}, err
	}
	if len(out.Item) == 0 {
		return entities.Admin{}, nil
	}

	var it adminItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Admin{}, err
	}
	return fromAdminItem(it), nil
}

func (r *AdminDynamoRepository) Create(ctx context.Context, a entities.Admin) (entities.Admin, error) {
	av, err := attributevalue.MarshalMap(toAdminItem(a))
	if err != nil {
		return entities.Admin{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#username)"),
		ExpressionAttributeNames: map[string]string{
			"#username": "username",
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Admin{}, nil
		}
		return entities.Admin{}, err
	}
	return a, nil
}

func toAdminItem(a entities.Admin) adminItem {
	return adminItem{
		Username:     a.Username,
		ID:           a.ID,
		PasswordHash: a.PasswordHash,
		CreatedAt:    a.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromAdminItem(it adminItem) entities.Admin {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Admin{
		ID:           it.ID,
		Username:     it.Username,
		PasswordHash: it.PasswordHash,
		CreatedAt:    createdAt,
	}
}
