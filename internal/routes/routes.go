package routes

import (
	"strings"

	"github.com/Vaishnavi-Jogi/SamarthaYoga/internal/config"
	"github.com/Vaishnavi-Jogi/SamarthaYoga/internal/handlers"
	"github.com/Vaishnavi-Jogi/SamarthaYoga/internal/middleware"
	"github.com/Vaishnavi-Jogi/SamarthaYoga/internal/repository"
	"github.com/Vaishnavi-Jogi/SamarthaYoga/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	// jsonBodyLimitBytes caps JSON request bodies. The transport-level
	// limit is higher so multipart image uploads can reach the upload
	// handler, which enforces its own file ceiling.
	jsonBodyLimitBytes = 2 * 1024 * 1024
	maxBodyLimitBytes  = 10 * 1024 * 1024
)

// NewApp builds the Fiber app with the shared middleware stack.
func NewApp(corsOrigin string) *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit: maxBodyLimitBytes,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigin,
		AllowCredentials: corsOrigin != "*",
	}))
	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(jsonBodyLimit)

	return app
}

func jsonBodyLimit(c *fiber.Ctx) error {
	contentType := c.Get(fiber.HeaderContentType)
	if strings.HasPrefix(contentType, fiber.MIMEApplicationJSON) && len(c.Body()) > jsonBodyLimitBytes {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(fiber.Map{"error": "Request body too large"})
	}
	return c.Next()
}

func RegisterRoutes(app *fiber.App, cfg *config.Config, db *pgxpool.Pool) {
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	asanaRepo := repository.NewAsanaRepository(db)
	analysisRepo := repository.NewAnalysisRepository(db)

	analyzerService := services.NewHTTPAnalyzerService(cfg.AnalyzerURL)
	openRouterService := services.NewOpenRouterService(cfg.OpenRouterKey)
	musicService := services.NewMusicService()

	authHandler := handlers.NewAuthHandler(userRepo, profileRepo, cfg.JWTSecret)
	profileHandler := handlers.NewProfileHandler(profileRepo)
	asanaHandler := handlers.NewAsanaHandler(asanaRepo)
	uploadHandler := handlers.NewUploadHandler(analyzerService, analysisRepo, activityRepo, cfg.UploadDir)
	analysisHandler := handlers.NewAnalysisHandler(analysisRepo)
	chatHandler := handlers.NewChatHandler(asanaRepo, openRouterService)
	challengeHandler := handlers.NewChallengeHandler(profileRepo)
	activityHandler := handlers.NewActivityHandler(activityRepo)
	musicHandler := handlers.NewMusicHandler(musicService)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Get("/me", middleware.AuthRequired(cfg.JWTSecret), authHandler.Me)

	protected := middleware.AuthRequired(cfg.JWTSecret)

	api.Get("/asanas", protected, asanaHandler.Search)

	profile := api.Group("/profile", protected)
	profile.Get("/me", profileHandler.GetMe)
	profile.Put("/me", profileHandler.UpdateMe)

	api.Post("/upload", protected, uploadHandler.Upload)

	analysis := api.Group("/analysis", protected)
	analysis.Get("", analysisHandler.List)
	analysis.Get("/:id", analysisHandler.Get)

	api.Post("/chat", protected, chatHandler.Chat)

	api.Post("/challenge/generate", protected, challengeHandler.Generate)

	activity := api.Group("/activity", protected)
	activity.Post("/mark", activityHandler.Mark)
	activity.Get("/streak", activityHandler.Streak)

	music := api.Group("/music", protected)
	music.Get("/tracks", musicHandler.Tracks)
	music.Post("/favorites", musicHandler.AddFavorite)
}
