package usecase

import (
	"context"
	"testing"
	"time"

	"oficina_ibs/internal/domain/entities"
	mock_interfaces "oficina_ibs/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestDashboardUseCase_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	clients := mock_interfaces.NewMockIClientRepository(ctrl)
	vehicles := mock_interfaces.NewMockIVehicleRepository(ctrl)
	appointments := mock_interfaces.NewMockIAppointmentRepository(ctrl)
	quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)

	uc := NewDashboardUseCase(clients, vehicles, appointments, quotes)
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return now }

	clients.EXPECT().Count(gomock.Any()).Return(12, nil)
	vehicles.EXPECT().Count(gomock.Any()).Return(20, nil)

	appointments.EXPECT().List(gomock.Any()).Return([]entities.Appointment{
		{ID: "apt-1", ClientID: "client-1", VehicleID: "vehicle-1", Status: entities.AppointmentStatusScheduled, CreatedAt: now.Add(-time.Hour)},
		{ID: "apt-2", ClientID: "client-2", VehicleID: "vehicle-2", Status: entities.AppointmentStatusConfirmed, CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "apt-3", ClientID: "client-3", VehicleID: "vehicle-3", Status: entities.AppointmentStatusCompleted, CreatedAt: now.Add(-3 * time.Hour)},
		{ID: "apt-4", ClientID: "client-4", VehicleID: "vehicle-4", Status: entities.AppointmentStatusCancelled, CreatedAt: now.Add(-4 * time.Hour)},
	}, nil)

	quotes.EXPECT().List(gomock.Any()).Return([]entities.Quote{
		// counted: approved this month
		{ID: "q-1", Status: entities.QuoteStatusApproved, Total: 100, CreatedAt: now.Add(-24 * time.Hour)},
		// counted: completed this month
		{ID: "q-2", Status: entities.QuoteStatusCompleted, Total: 250, CreatedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
		// ignored: approved but last month
		{ID: "q-3", Status: entities.QuoteStatusApproved, Total: 999, CreatedAt: time.Date(2025, 5, 31, 23, 59, 0, 0, time.UTC)},
		// ignored for revenue, counted as pending
		{ID: "q-4", Status: entities.QuoteStatusPending, Total: 50, CreatedAt: now},
		// ignored: rejected
		{ID: "q-5", Status: entities.QuoteStatusRejected, Total: 75, CreatedAt: now},
	}, nil)

	// recent appointment summaries resolve names; apt-1 resolves, the rest miss.
	clients.EXPECT().GetByID(gomock.Any(), "client-1").Return(entities.Client{ID: "client-1", Name: "João"}, nil)
	vehicles.EXPECT().GetByID(gomock.Any(), "vehicle-1").Return(entities.Vehicle{ID: "vehicle-1", Brand: "Fiat", Model: "Uno"}, nil)
	clients.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(entities.Client{}, nil).Times(3)
	vehicles.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(entities.Vehicle{}, nil).Times(3)

	stats, err := uc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}

	if stats.TotalClients != 12 || stats.TotalVehicles != 20 {
		t.Errorf("totals = %d clients, %d vehicles", stats.TotalClients, stats.TotalVehicles)
	}
	if stats.PendingAppointments != 2 {
		t.Errorf("PendingAppointments = %d, want 2", stats.PendingAppointments)
	}
	if stats.PendingQuotes != 1 {
		t.Errorf("PendingQuotes = %d, want 1", stats.PendingQuotes)
	}
	if stats.MonthlyRevenue != 350 {
		t.Errorf("MonthlyRevenue = %v, want 350", stats.MonthlyRevenue)
	}

	if len(stats.RecentAppointments) != 4 {
		t.Fatalf("RecentAppointments = %d entries, want 4", len(stats.RecentAppointments))
	}
	first := stats.RecentAppointments[0]
	if first.ID != "apt-1" {
		t.Errorf("most recent appointment = %q, want apt-1", first.ID)
	}
	if first.ClientName != "João" || first.Vehicle != "Fiat Uno" {
		t.Errorf("resolved names = %q, %q", first.ClientName, first.Vehicle)
	}
	if stats.RecentAppointments[1].ClientName != "N/A" {
		t.Errorf("unresolved client = %q, want N/A", stats.RecentAppointments[1].ClientName)
	}
}

func TestDashboardUseCase_RecentAppointmentsLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	clients := mock_interfaces.NewMockIClientRepository(ctrl)
	vehicles := mock_interfaces.NewMockIVehicleRepository(ctrl)
	appointments := mock_interfaces.NewMockIAppointmentRepository(ctrl)
	quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)

	uc := NewDashboardUseCase(clients, vehicles, appointments, quotes)

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return now }

	many := make([]entities.Appointment, 8)
	for i := range many {
		many[i] = entities.Appointment{
			ID:        string(rune('a' + i)),
			Status:    entities.AppointmentStatusCompleted,
			CreatedAt: now.Add(-time.Duration(i) * time.Hour),
		}
	}

	clients.EXPECT().Count(gomock.Any()).Return(0, nil)
	vehicles.EXPECT().Count(gomock.Any()).Return(0, nil)
	appointments.EXPECT().List(gomock.Any()).Return(many, nil)
	quotes.EXPECT().List(gomock.Any()).Return(nil, nil)
	clients.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(entities.Client{}, nil).Times(5)
	vehicles.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(entities.Vehicle{}, nil).Times(5)

	stats, err := uc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if len(stats.RecentAppointments) != 5 {
		t.Errorf("RecentAppointments = %d entries, want 5", len(stats.RecentAppointments))
	}
	if stats.RecentAppointments[0].ID != "a" {
		t.Errorf("first = %q, want newest", stats.RecentAppointments[0].ID)
	}
}
