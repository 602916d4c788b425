package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"mistakebook/internal/config"
	"mistakebook/internal/database"
	"mistakebook/internal/services"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open the local database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer database.Close(db)

	// Perform health check
	result := services.HealthCheck(context.Background(), db, cfg.QuotaBytes())

	// Output result as JSON
	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("Failed to marshal health check result: %v", err)
	}

	fmt.Println(string(output))

	// Exit with appropriate code
	if result.Status != "healthy" {
		os.Exit(1)
	}
	os.Exit(0)
}
