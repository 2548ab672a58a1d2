// Command seed fills the database with demo users, content and share links.
package main

import (
	"context"
	"flag"
	"log"

	"brainly/internal/config"
	"brainly/internal/database"
	"brainly/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 10, "Number of users to create")
	perUser := flag.Int("content", 5, "Content items per user")
	shareEvery := flag.Int("share-every", 2, "Enable a share link for every n-th user (0 disables)")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	seedValue := flag.Int64("seed", 0, "Random seed (0 picks one)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	s, err := seed.NewSeeder(db, cfg.JWTSecret, cfg.BcryptCost)
	if err != nil {
		log.Fatalf("Failed to create seeder: %v", err)
	}

	if *shouldClean {
		if err := s.ClearAll(); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	}

	users, err := s.Run(context.Background(), seed.Options{
		NumUsers:       *numUsers,
		ContentPerUser: *perUser,
		ShareEvery:     *shareEvery,
		Seed:           *seedValue,
	})
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	for _, u := range users {
		if u.ShareHash != "" {
			log.Printf("%s shares at /api/v1/brain/%s", u.Username, u.ShareHash)
		} else {
			log.Printf("%s", u.Username)
		}
	}
	log.Printf("Seeded %d users. All seeded users have the password: %s", len(users), seed.DefaultPassword)
}
