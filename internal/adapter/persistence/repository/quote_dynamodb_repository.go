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

const defaultQuotesTableName = "quotes"

type quoteLineItem struct {
	Type      string  `dynamodbav:"type"`
	ItemID    string  `dynamodbav:"item_id"`
	Name      string  `dynamodbav:"name"`
	Quantity  int     `dynamodbav:"quantity"`
	UnitPrice float64 `dynamodbav:"unit_price"`
	Total     float64 `dynamodbav:"total"`
}

type quoteItem struct {
	ID         string          `dynamodbav:"id"`
	ClientID   string          `dynamodbav:"client_id"`
	VehicleID  string          `dynamodbav:"vehicle_id"`
	Items      []quoteLineItem `dynamodbav:"items"`
	Subtotal   float64         `dynamodbav:"subtotal"`
	Discount   float64         `dynamodbav:"discount"`
	LaborCost  float64         `dynamodbav:"labor_cost"`
	Total      float64         `dynamodbav:"total"`
	Status     string          `dynamodbav:"status"`
	Notes      string          `dynamodbav:"notes,omitempty"`
	CreatedAt  string          `dynamodbav:"created_at"`
	ApprovedAt string          `dynamodbav:"approved_at,omitempty"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Timestamps are stored as RFC3339Nano strings so the records stay readable
// as plain documents.

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	if _, err := putItem(ctx, r.ddb, r.tableName, toQuoteItem(q), false); err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	var it quoteItem
	found, err := getItem(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) List(ctx context.Context) ([]entities.Quote, error) {
	raw, err := scanItems(ctx, r.ddb, r.tableName, "", nil)
	if err != nil {
		return nil, err
	}

	quotes := make([]entities.Quote, 0, len(raw))
	for _, item := range raw {
		var it quoteItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		quotes = append(quotes, fromQuoteItem(it))
	}
	return quotes, nil
}

func (r *QuoteDynamoRepository) Replace(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	found, err := putItem(ctx, r.ddb, r.tableName, toQuoteItem(q), true)
	if err != nil || !found {
		return entities.Quote{}, err
	}
	return q, nil
}

// UpdateStatus flips the status in place; approvedAt is only written when the
// caller supplies it (reject must not disturb a previous approval stamp).
func (r *QuoteDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus, approvedAt *time.Time) (entities.Quote, error) {
	expr := "SET #status = :status"
	vals := map[string]types.AttributeValue{
		":status": &types.AttributeValueMemberS{Value: string(status)},
	}
	names := map[string]string{
		"#id":     "id",
		"#status": "status",
	}
	if approvedAt != nil {
		expr += ", #approved_at = :approved_at"
		vals[":approved_at"] = &types.AttributeValueMemberS{Value: approvedAt.UTC().Format(time.RFC3339Nano)}
		names["#approved_at"] = "approved_at"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: vals,
		ExpressionAttributeNames:  names,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteItem(ctx, r.ddb, r.tableName, id)
}

func toQuoteItem(q entities.Quote) quoteItem {
	items := make([]quoteLineItem, 0, len(q.Items))
	for _, li := range q.Items {
		items = append(items, quoteLineItem{
			Type:      string(li.Type),
			ItemID:    li.ItemID,
			Name:      li.Name,
			Quantity:  li.Quantity,
			UnitPrice: li.UnitPrice,
			Total:     li.Total,
		})
	}

	it := quoteItem{
		ID:        q.ID,
		ClientID:  q.ClientID,
		VehicleID: q.VehicleID,
		Items:     items,
		Subtotal:  q.Subtotal,
		Discount:  q.Discount,
		LaborCost: q.LaborCost,
		Total:     q.Total,
		Status:    string(q.Status),
		Notes:     q.Notes,
		CreatedAt: q.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if q.ApprovedAt != nil {
		it.ApprovedAt = q.ApprovedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromQuoteItem(it quoteItem) entities.Quote {
	items := make([]entities.QuoteItem, 0, len(it.Items))
	for _, li := range it.Items {
		items = append(items, entities.QuoteItem{
			Type:      entities.QuoteItemType(li.Type),
			ItemID:    li.ItemID,
			Name:      li.Name,
			Quantity:  li.Quantity,
			UnitPrice: li.UnitPrice,
			Total:     li.Total,
		})
	}

	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	q := entities.Quote{
		ID:        it.ID,
		ClientID:  it.ClientID,
		VehicleID: it.VehicleID,
		Items:     items,
		Subtotal:  it.Subtotal,
		Discount:  it.Discount,
		LaborCost: it.LaborCost,
		Total:     it.Total,
		Status:    entities.QuoteStatus(it.Status),
		Notes:     it.Notes,
		CreatedAt: createdAt,
	}
	if it.ApprovedAt != "" {
		if approvedAt, err := time.Parse(time.RFC3339Nano, it.ApprovedAt); err == nil {
			q.ApprovedAt = &approvedAt
		}
	}
	return q
}
