package usecase

import (
	"context"
	"sort"
	"time"

	"oficina_ibs/internal/domain/entities"
	"oficina_ibs/internal/usecase/interfaces"
)

const recentAppointmentsLimit = 5

// AppointmentSummary is a dashboard row with display names resolved
// best-effort; broken weak references show up as "N/A".
type AppointmentSummary struct {
	ID         string                     `json:"id"`
	ClientName string                     `json:"client_name"`
	Vehicle    string                     `json:"vehicle"`
	Date       time.Time                  `json:"date"`
	Status     entities.AppointmentStatus `json:"status"`
}

type DashboardStats struct {
	TotalClients        int                  `json:"total_clients"`
	TotalVehicles       int                  `json:"total_vehicles"`
	PendingAppointments int                  `json:"pending_appointments"`
	PendingQuotes       int                  `json:"pending_quotes"`
	MonthlyRevenue      float64              `json:"monthly_revenue"`
	RecentAppointments  []AppointmentSummary `json:"recent_appointments"`
}

type IDashboardUseCase interface {
	Stats(ctx context.Context) (DashboardStats, error)
}

type DashboardUseCase struct {
	clients      interfaces.IClientRepository
	vehicles     interfaces.IVehicleRepository
	appointments interfaces.IAppointmentRepository
	quotes       interfaces.IQuoteRepository
	now          func() time.Time
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(
	clients interfaces.IClientRepository,
	vehicles interfaces.IVehicleRepository,
	appointments interfaces.IAppointmentRepository,
	quotes interfaces.IQuoteRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		clients:      clients,
		vehicles:     vehicles,
		appointments: appointments,
		quotes:       quotes,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (u *DashboardUseCase) Stats(ctx context.Context) (DashboardStats, error) {
	totalClients, err := u.clients.Count(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	totalVehicles, err := u.vehicles.Count(ctx)
	if err != nil {
		return DashboardStats{}, err
	}

	appointments, err := u.appointments.List(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	pendingAppointments := 0
	for _, a := range appointments {
		if a.Status == entities.AppointmentStatusScheduled || a.Status == entities.AppointmentStatusConfirmed {
			pendingAppointments++
		}
	}

	quotes, err := u.quotes.List(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	now := u.now()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	pendingQuotes := 0
	monthlyRevenue := 0.0
	for _, q := range quotes {
		if q.Status == entities.QuoteStatusPending {
			pendingQuotes++
		}
		decided := q.Status == entities.QuoteStatusApproved || q.Status == entities.QuoteStatusCompleted
		if decided && !q.CreatedAt.Before(startOfMonth) {
			monthlyRevenue += q.Total
		}
	}

	return DashboardStats{
		TotalClients:        totalClients,
		TotalVehicles:       totalVehicles,
		PendingAppointments: pendingAppointments,
		PendingQuotes:       pendingQuotes,
		MonthlyRevenue:      monthlyRevenue,
		RecentAppointments:  u.recentAppointments(ctx, appointments),
	}, nil
}

func (u *DashboardUseCase) recentAppointments(ctx context.Context, appointments []entities.Appointment) []AppointmentSummary {
	sorted := make([]entities.Appointment, len(appointments))
	copy(sorted, appointments)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	if len(sorted) > recentAppointmentsLimit {
		sorted = sorted[:recentAppointmentsLimit]
	}

	summaries := make([]AppointmentSummary, 0, len(sorted))
	for _, a := range sorted {
		clientName := "N/A"
		if c, err := u.clients.GetByID(ctx, a.ClientID); err == nil && c.ID != "" {
			clientName = c.Name
		}
		vehicleName := "N/A"
		if v, err := u.vehicles.GetByID(ctx, a.VehicleID); err == nil && v.ID != "" {
			vehicleName = v.Brand + " " + v.Model
		}
		summaries = append(summaries, AppointmentSummary{
			ID:         a.ID,
			ClientName: clientName,
			Vehicle:    vehicleName,
			Date:       a.AppointmentDate,
			Status:     a.Status,
		})
	}
	return summaries
}
