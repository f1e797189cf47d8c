package repository

import (
	"context"

	"oficina_ibs/internal/domain/entities"
	"oficina_ibs/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultSettingsTableName = "settings"

type settingsItem struct {
	ID           string `dynamodbav:"id"`
	WorkshopName string `dynamodbav:"workshop_name"`
	WhatsApp     string `dynamodbav:"whatsapp,omitempty"`
	Email        string `dynamodbav:"email,omitempty"`
	EmailAPIKey  string `dynamodbav:"email_api_key,omitempty"`
	Address      string `dynamodbav:"address,omitempty"`
}

// SettingsDynamoRepository stores the single workshop settings record under a
// fixed key. Put is a plain upsert; lazy creation is the use case's job.
type SettingsDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISettingsRepository = (*SettingsDynamoRepository)(nil)

func NewSettingsDynamoRepository(ddb *dynamodb.Client) *SettingsDynamoRepository {
	return &SettingsDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SETTINGS_TABLE", defaultSettingsTableName),
	}
}

func (r *SettingsDynamoRepository) Get(ctx context.Context) (entities.Settings, error) {
	var it settingsItem
	found, err := getItem(ctx, r.ddb, r.tableName, entities.SettingsID, &it)
	if err != nil || !found {
		return entities.Settings{}, err
	}
	return fromSettingsItem(it), nil
}

func (r *SettingsDynamoRepository) Put(ctx context.Context, s entities.Settings) (entities.Settings, error) {
	s.ID = entities.SettingsID

	av, err := attributevalue.MarshalMap(toSettingsItem(s))
	if err != nil {
		return entities.Settings{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Settings{}, err
	}
	return s, nil
}

func toSettingsItem(s entities.Settings) settingsItem {
	return settingsItem{
		ID:           s.ID,
		WorkshopName: s.WorkshopName,
		WhatsApp:     s.WhatsApp,
		Email:        s.Email,
		EmailAPIKey:  s.EmailAPIKey,
		Address:      s.Address,
	}
}

func fromSettingsItem(it settingsItem) entities.Settings {
	return entities.Settings{
		ID:           it.ID,
		WorkshopName: it.WorkshopName,
		WhatsApp:     it.WhatsApp,
		Email:        it.Email,
		EmailAPIKey:  it.EmailAPIKey,
		Address:      it.Address,
	}
}
