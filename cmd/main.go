// Package main is the entry point for the carton-service application.
//
// @title           Carton Service API
// @version         1.0.0
// @description     API for calculating carton arrangements and running the packing cascade.
//
//	This service finds minimum-volume carton arrangements for unit quantities and
//	writes inner and master carton dimensions and weights back to product records.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/carton-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Required if authentication is enabled.
//
// @tag.name        Cartons
// @tag.description Carton arrangement and packing operations
//
// @tag.name        Field Config
// @tag.description Field mapping configuration endpoints
//
// @tag.name        Runs
// @tag.description Packing run log queries
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/guttosm/carton-service/docs" // swagger docs

	"github.com/guttosm/carton-service/config"
	"github.com/guttosm/carton-service/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
