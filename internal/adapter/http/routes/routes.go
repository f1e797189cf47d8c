package routes

import (
	"context"
	"log"
	"os"

	_ "oficina_ibs/docs" // swag-generated documentation
	"oficina_ibs/internal/adapter/http/handlers"
	"oficina_ibs/internal/adapter/http/middleware"
	"oficina_ibs/internal/adapter/persistence/repository"
	"oficina_ibs/internal/infrastructure/auth"
	"oficina_ibs/internal/infrastructure/database"
	"oficina_ibs/internal/infrastructure/pdf"
	"oficina_ibs/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = "8080"

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	clientRepo := repository.NewClientDynamoRepository(ddb)
	vehicleRepo := repository.NewVehicleDynamoRepository(ddb)
	serviceRepo := repository.NewServiceDynamoRepository(ddb)
	partRepo := repository.NewPartDynamoRepository(ddb)
	appointmentRepo := repository.NewAppointmentDynamoRepository(ddb)
	quoteRepo := repository.NewQuoteDynamoRepository(ddb)
	settingsRepo := repository.NewSettingsDynamoRepository(ddb)
	adminRepo := repository.NewAdminDynamoRepository(ddb)

	tokenService := auth.NewJWTTokenService()
	quoteRenderer := pdf.NewQuotePDFRenderer()

	authUseCase := usecase.NewAuthUseCase(adminRepo, tokenService)
	clientUseCase := usecase.NewClientUseCase(clientRepo)
	vehicleUseCase := usecase.NewVehicleUseCase(vehicleRepo)
	catalogUseCase := usecase.NewCatalogUseCase(serviceRepo, partRepo)
	appointmentUseCase := usecase.NewAppointmentUseCase(appointmentRepo)
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, clientRepo, vehicleRepo, settingsRepo, quoteRenderer, usecase.QuoteConfigFromEnv())
	settingsUseCase := usecase.NewSettingsUseCase(settingsRepo)
	dashboardUseCase := usecase.NewDashboardUseCase(clientRepo, vehicleRepo, appointmentRepo, quoteRepo)

	if err := authUseCase.EnsureDefaultAdmin(context.Background()); err != nil {
		log.Printf("[auth][bootstrap] could not seed default admin: %v", err)
	}

	authHandler := handlers.NewAuthHandler(authUseCase)
	clientHandler := handlers.NewClientHandler(clientUseCase)
	vehicleHandler := handlers.NewVehicleHandler(vehicleUseCase)
	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentUseCase)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	settingsHandler := handlers.NewSettingsHandler(settingsUseCase)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUseCase)

	api := router.Group("/api")
	addPingRoutes(api)
	api.POST("/auth/login", authHandler.Login)

	protected := api.Group("", middleware.RequireAuth(tokenService))
	addQuoteRoutes(protected, quoteHandler)
	addWorkshopRoutes(protected, clientHandler, vehicleHandler, catalogHandler, appointmentHandler, settingsHandler, dashboardHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
