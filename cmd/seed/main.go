package main

import (
	"context"
	_ "embed"
	"encoding/json"
	"log"

	"github.com/Vaishnavi-Jogi/SamarthaYoga/internal/config"
	"github.com/Vaishnavi-Jogi/SamarthaYoga/internal/database"
	"github.com/Vaishnavi-Jogi/SamarthaYoga/internal/models"
	"github.com/Vaishnavi-Jogi/SamarthaYoga/internal/repository"
)

//go:embed asanas.json
var asanasJSON []byte

// Seeds the asana reference dataset. Safe to run repeatedly: records
// are upserted by name.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := database.ConnectDB(cfg.DBUrl); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB()

	var asanas []models.Asana
	if err := json.Unmarshal(asanasJSON, &asanas); err != nil {
		log.Fatalf("Failed to parse asana dataset: %v", err)
	}

	repo := repository.NewAsanaRepository(database.DB)
	ctx := context.Background()
	for i := range asanas {
		if err := repo.UpsertByName(ctx, &asanas[i]); err != nil {
			log.Fatalf("Failed to seed %q: %v", asanas[i].Name, err)
		}
	}

	log.Printf("Seeded asanas: %d", len(asanas))
}
