// Command main runs the database seeder for Saisonnalite.
package main

import (
	"flag"
	"log"

	"saisonnalite/internal/config"
	"saisonnalite/internal/database"
	"saisonnalite/internal/seed"
)

func main() {
	numProducers := flag.Int("producers", 10, "Number of producers to create")
	numConsumers := flag.Int("consumers", 30, "Number of consumers to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	fast := flag.Bool("fast", false, "Skip bcrypt hashing for faster seeding")
	flag.Parse()

	log.Println("Database Seeder")
	log.Printf("Target: %d producers, %d consumers, clean=%v\n", *numProducers, *numConsumers, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	s := seed.NewSeederWithOptions(db, seed.SeedOptions{SkipBcrypt: *fast})

	if *shouldClean {
		if err := s.ClearAll(); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	}

	if _, _, err := s.SeedMarketplace(*numProducers, *numConsumers); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Done. All seeded accounts use the password:", seed.DemoPassword)
}
