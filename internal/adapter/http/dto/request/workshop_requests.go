package request

import (
	"strings"
	"time"

	"oficina_ibs/internal/domain/entities"
	"oficina_ibs/internal/usecase"
)

type ClientRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Email   string `json:"email"`
	CPF     string `json:"cpf"`
	Address string `json:"address"`
}

func (r ClientRequest) ToDraft() usecase.ClientDraft {
	return usecase.ClientDraft{
		Name:    strings.TrimSpace(r.Name),
		Phone:   strings.TrimSpace(r.Phone),
		Email:   strings.TrimSpace(r.Email),
		CPF:     strings.TrimSpace(r.CPF),
		Address: strings.TrimSpace(r.Address),
	}
}

type VehicleRequest struct {
	ClientID     string `json:"client_id" binding:"required"`
	LicensePlate string `json:"license_plate" binding:"required"`
	Model        string `json:"model" binding:"required"`
	Brand        string `json:"brand" binding:"required"`
	Year         int    `json:"year" binding:"required"`
	Color        string `json:"color"`
	Transmission string `json:"transmission"`
	FuelType     string `json:"fuel_type"`
	Mileage      int    `json:"mileage"`
	Engine       string `json:"engine"`
	Notes        string `json:"notes"`
}

func (r VehicleRequest) ToDraft() usecase.VehicleDraft {
	return usecase.VehicleDraft{
		ClientID:     strings.TrimSpace(r.ClientID),
		LicensePlate: strings.TrimSpace(r.LicensePlate),
		Model:        strings.TrimSpace(r.Model),
		Brand:        strings.TrimSpace(r.Brand),
		Year:         r.Year,
		Color:        strings.TrimSpace(r.Color),
		Transmission: strings.TrimSpace(r.Transmission),
		FuelType:     strings.TrimSpace(r.FuelType),
		Mileage:      r.Mileage,
		Engine:       strings.TrimSpace(r.Engine),
		Notes:        strings.TrimSpace(r.Notes),
	}
}

type ServiceRequest struct {
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description"`
	DefaultPrice float64 `json:"default_price"`
}

func (r ServiceRequest) ToDraft() usecase.ServiceDraft {
	return usecase.ServiceDraft{
		Name:         strings.TrimSpace(r.Name),
		Description:  strings.TrimSpace(r.Description),
		DefaultPrice: r.DefaultPrice,
	}
}

type PartRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
}

func (r PartRequest) ToDraft() usecase.PartDraft {
	return usecase.PartDraft{
		Name:        strings.TrimSpace(r.Name),
		Description: strings.TrimSpace(r.Description),
		Price:       r.Price,
		Stock:       r.Stock,
	}
}

type AppointmentRequest struct {
	ClientID        string    `json:"client_id" binding:"required"`
	VehicleID       string    `json:"vehicle_id" binding:"required"`
	AppointmentDate time.Time `json:"appointment_date" binding:"required"`
	Status          string    `json:"status"`
	Notes           string    `json:"notes"`
}

func (r AppointmentRequest) ToDraft() usecase.AppointmentDraft {
	return usecase.AppointmentDraft{
		ClientID:        strings.TrimSpace(r.ClientID),
		VehicleID:       strings.TrimSpace(r.VehicleID),
		AppointmentDate: r.AppointmentDate,
		Status:          entities.AppointmentStatus(strings.ToLower(strings.TrimSpace(r.Status))),
		Notes:           strings.TrimSpace(r.Notes),
	}
}

// SettingsRequest carries a partial update; empty fields keep their stored
// values.
type SettingsRequest struct {
	WorkshopName string `json:"workshop_name"`
	WhatsApp     string `json:"whatsapp"`
	Email        string `json:"email"`
	EmailAPIKey  string `json:"email_api_key"`
	Address      string `json:"address"`
}

func (r SettingsRequest) ToPatch() usecase.SettingsPatch {
	return usecase.SettingsPatch{
		WorkshopName: strings.TrimSpace(r.WorkshopName),
		WhatsApp:     strings.TrimSpace(r.WhatsApp),
		Email:        strings.TrimSpace(r.Email),
		EmailAPIKey:  strings.TrimSpace(r.EmailAPIKey),
		Address:      strings.TrimSpace(r.Address),
	}
}
