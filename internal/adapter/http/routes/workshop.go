package routes

import (
	"oficina_ibs/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathClients      = "/clients"
	PathVehicles     = "/vehicles"
	PathServices     = "/services"
	PathParts        = "/parts"
	PathAppointments = "/appointments"
	PathSettings     = "/settings"
	PathDashboard    = "/dashboard"
)

func addWorkshopRoutes(
	rg *gin.RouterGroup,
	clientHandler *handlers.ClientHandler,
	vehicleHandler *handlers.VehicleHandler,
	catalogHandler *handlers.CatalogHandler,
	appointmentHandler *handlers.AppointmentHandler,
	settingsHandler *handlers.SettingsHandler,
	dashboardHandler *handlers.DashboardHandler,
) {
	clients := rg.Group(PathClients)
	{
		clients.GET("", clientHandler.ListClients)
		clients.POST("", clientHandler.CreateClient)
		clients.PUT("/:client_id", clientHandler.UpdateClient)
		clients.DELETE("/:client_id", clientHandler.DeleteClient)
	}

	vehicles := rg.Group(PathVehicles)
	{
		vehicles.GET("", vehicleHandler.ListVehicles)
		vehicles.GET("/by-client/:client_id", vehicleHandler.ListVehiclesByClient)
		vehicles.POST("", vehicleHandler.CreateVehicle)
		vehicles.PUT("/:vehicle_id", vehicleHandler.UpdateVehicle)
		vehicles.DELETE("/:vehicle_id", vehicleHandler.DeleteVehicle)
	}

	services := rg.Group(PathServices)
	{
		services.GET("", catalogHandler.ListServices)
		services.POST("", catalogHandler.CreateService)
		services.PUT("/:service_id", catalogHandler.UpdateService)
		services.DELETE("/:service_id", catalogHandler.DeleteService)
	}

	parts := rg.Group(PathParts)
	{
		parts.GET("", catalogHandler.ListParts)
		parts.POST("", catalogHandler.CreatePart)
		parts.PUT("/:part_id", catalogHandler.UpdatePart)
		parts.DELETE("/:part_id", catalogHandler.DeletePart)
	}

	appointments := rg.Group(PathAppointments)
	{
		appointments.GET("", appointmentHandler.ListAppointments)
		appointments.POST("", appointmentHandler.CreateAppointment)
		appointments.PUT("/:appointment_id", appointmentHandler.UpdateAppointment)
		appointments.DELETE("/:appointment_id", appointmentHandler.DeleteAppointment)
	}

	settings := rg.Group(PathSettings)
	{
		settings.GET("", settingsHandler.GetSettings)
		settings.PUT("", settingsHandler.UpdateSettings)
	}

	dashboard := rg.Group(PathDashboard)
	{
		dashboard.GET("/stats", dashboardHandler.GetStats)
	}
}
