// Command migrate applies the database schema for the backend.
// Production deployments connect without automigration, so schema changes
// are rolled out explicitly with this tool.
package main

import (
	"log"

	"scamwatch/internal/config"
	"scamwatch/internal/database"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}
	log.Println("migrations applied")
}
