package main

import (
	"log"

	"github.com/Vaishnavi-Jogi/SamarthaYoga/internal/config"
	"github.com/Vaishnavi-Jogi/SamarthaYoga/internal/database"
	"github.com/Vaishnavi-Jogi/SamarthaYoga/internal/routes"
	"github.com/gofiber/fiber/v2"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Connect to Database
	if err := database.ConnectDB(cfg.DBUrl); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB()

	// 3. Setup Fiber
	app := routes.NewApp(cfg.CORSOrigin)

	// Routes
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "backend",
			"version": "0.1.0",
		})
	})
	routes.RegisterRoutes(app, cfg, database.DB)

	// Previously uploaded images
	app.Static("/uploads", cfg.UploadDir)

	// 4. Start Server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
