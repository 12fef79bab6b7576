package main

import (
	"context"
	"log"

	"github.com/jobmanagement/job-service/config"
	"github.com/jobmanagement/job-service/internal/app"

	postgresDriver "github.com/jobmanagement/job-service/internal/infrastructure/database/postgres"
)

func main() {
	config := config.CreateNewConfig()
	db, err := postgresDriver.GetDBInstance(config.PostgreSQLConfig.DBUsername, config.PostgreSQLConfig.DBPassword, config.PostgreSQLConfig.DBHost, config.PostgreSQLConfig.DBPort, config.PostgreSQLConfig.DBName)
	if err != nil {
		log.Fatalf("Failed to connect to the database: %v", err)
	}

	if err := postgresDriver.Apply(context.Background(), db); err != nil {
		log.Fatalf("Failed to apply schema: %v", err)
	}

	server := app.App{
		DB:     db,
		Config: config,
	}

	server.Start()
}
