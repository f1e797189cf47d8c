package main

import (
	_ "oficina_ibs/docs"
	"oficina_ibs/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Oficina IBS API
// @version         1.0
// @description     Auto repair shop management backend (clients, vehicles, quotes and PDF documents) backed by DynamoDB.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /api

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	routes.Run()
}
