package repository

import (
	"context"
	"time"

	"oficina_ibs/internal/domain/entities"
	"oficina_ibs/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultAppointmentsTableName = "appointments"

type appointmentItem struct {
	ID              string `dynamodbav:"id"`
	ClientID        string `dynamodbav:"client_id"`
	VehicleID       string `dynamodbav:"vehicle_id"`
	AppointmentDate string `dynamodbav:"appointment_date"`
	Status          string `dynamodbav:"status"`
	Notes           string `dynamodbav:"notes,omitempty"`
	CreatedAt       string `dynamodbav:"created_at"`
}

// AppointmentDynamoRepository persists Appointment entities in DynamoDB (PK: id).
type AppointmentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAppointmentRepository = (*AppointmentDynamoRepository)(nil)

func NewAppointmentDynamoRepository(ddb *dynamodb.Client) *AppointmentDynamoRepository {
	return &AppointmentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("APPOINTMENTS_TABLE", defaultAppointmentsTableName),
	}
}

func (r *AppointmentDynamoRepository) Create(ctx context.Context, a entities.Appointment) (entities.Appointment, error) {
	if _, err := putItem(ctx, r.ddb, r.tableName, toAppointmentItem(a), false); err != nil {
		return entities.Appointment{}, err
	}
	return a, nil
}

func (r *AppointmentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Appointment, error) {
	var it appointmentItem
	found, err := getItem(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.Appointment{}, err
	}
	return fromAppointmentItem(it), nil
}

func (r *AppointmentDynamoRepository) List(ctx context.Context) ([]entities.Appointment, error) {
	raw, err := scanItems(ctx, r.ddb, r.tableName, "", nil)
	if err != nil {
		return nil, err
	}

	appointments := make([]entities.Appointment, 0, len(raw))
	for _, item := range raw {
		var it appointmentItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		appointments = append(appointments, fromAppointmentItem(it))
	}
	return appointments, nil
}

func (r *AppointmentDynamoRepository) Replace(ctx context.Context, a entities.Appointment) (entities.Appointment, error) {
	found, err := putItem(ctx, r.ddb, r.tableName, toAppointmentItem(a), true)
	if err != nil || !found {
		return entities.Appointment{}, err
	}
	return a, nil
}

func (r *AppointmentDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteItem(ctx, r.ddb, r.tableName, id)
}

func toAppointmentItem(a entities.Appointment) appointmentItem {
	return appointmentItem{
		ID:              a.ID,
		ClientID:        a.ClientID,
		VehicleID:       a.VehicleID,
		AppointmentDate: a.AppointmentDate.UTC().Format(time.RFC3339Nano),
		Status:          string(a.Status),
		Notes:           a.Notes,
		CreatedAt:       a.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromAppointmentItem(it appointmentItem) entities.Appointment {
	appointmentDate, _ := time.Parse(time.RFC3339Nano, it.AppointmentDate)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Appointment{
		ID:              it.ID,
		ClientID:        it.ClientID,
		VehicleID:       it.VehicleID,
		AppointmentDate: appointmentDate,
		Status:          entities.AppointmentStatus(it.Status),
		Notes:           it.Notes,
		CreatedAt:       createdAt,
	}
}
