package entities

import "time"

// Vehicle belongs to a client by weak reference (ClientID).
type Vehicle struct {
	ID           string    `json:"id"`
	ClientID     string    `json:"client_id"`
	LicensePlate string    `json:"license_plate"`
	Model        string    `json:"model"`
	Brand        string    `json:"brand"`
	Year         int       `json:"year"`
	Color        string    `json:"color,omitempty"`
	Transmission string    `json:"transmission,omitempty"`
	FuelType     string    `json:"fuel_type,omitempty"`
	Mileage      int       `json:"mileage,omitempty"`
	Engine       string    `json:"engine,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
