// Command main runs the database seeder for Scamwatch.
package main

import (
	"flag"
	"log"

	"scamwatch/internal/config"
	"scamwatch/internal/database"
	"scamwatch/internal/seed"
)

func main() {
	// Parse command line flags
	numUsers := flag.Int("users", 50, "Number of users to create")
	numReports := flag.Int("reports", 200, "Number of reports to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	skipBcrypt := flag.Bool("fast", false, "Skip bcrypt hashing for faster seeding")
	maxDays := flag.Int("max-days", 90, "Spread created_at timestamps over this many days")
	flag.Parse()

	log.Println("🌱 Database Seeder")
	log.Println("==================")
	log.Printf("Target: %d users, %d reports, clean=%v\n", *numUsers, *numReports, *shouldClean)

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Seed(db, seed.Options{
		NumUsers:    *numUsers,
		NumReports:  *numReports,
		ShouldClean: *shouldClean,
		SkipBcrypt:  *skipBcrypt,
		MaxDays:     *maxDays,
	}); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}

	log.Println("✨ All done! Your database is now populated with test data.")
	log.Println("📧 All test users have the secret: password123")
}
