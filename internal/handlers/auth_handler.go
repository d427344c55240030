package handlers

import (
	"context"
	"errors"
	"strconv"

	"github.com/Vaishnavi-Jogi/SamarthaYoga/internal/models"
	"github.com/Vaishnavi-Jogi/SamarthaYoga/internal/repository"
	"github.com/Vaishnavi-Jogi/SamarthaYoga/pkg/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type userStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

type profileUpserter interface {
	Upsert(ctx context.Context, userID int64, req repository.UpsertProfileInput) (*models.Profile, error)
}

type AuthHandler struct {
	userRepo    userStore
	profileRepo profileUpserter
	jwtSecret   string
}

func NewAuthHandler(userRepo userStore, profileRepo profileUpserter, jwtSecret string) *AuthHandler {
	return &AuthHandler{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		jwtSecret:   jwtSecret,
	}
}

type registerRequest struct {
	Email       string  `json:"email"`
	Password    string  `json:"password"`
	Name        *string `json:"name"`
	Age         *int    `json:"age"`
	Gender      *string `json:"gender"`
	Level       *string `json:"level"`
	Flexibility *string `json:"flexibility"`
	Goal        *string `json:"goal"`
	PcosOrPcod  *bool   `json:"pcosOrPcod"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "email and password required"})
	}

	existing, err := h.userRepo.GetByEmail(c.Context(), req.Email)
	if err == nil && existing != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Email already registered"})
	}
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to check email"})
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	user := &models.User{Email: req.Email, PasswordHash: hashed}
	if err := h.userRepo.CreateUser(c.Context(), user); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Email already registered"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create user"})
	}

	token, err := utils.GenerateToken(strconv.FormatInt(user.ID, 10), user.Email, h.jwtSecret)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate token"})
	}

	// Seed an initial profile when the minimal fields are all present.
	if req.Name != nil && req.Age != nil && req.Gender != nil && req.Level != nil {
		flexibility := "medium"
		if req.Flexibility != nil {
			flexibility = *req.Flexibility
		}
		_, err := h.profileRepo.Upsert(c.Context(), user.ID, repository.UpsertProfileInput{
			Name:        req.Name,
			Age:         req.Age,
			Gender:      req.Gender,
			Level:       req.Level,
			Flexibility: &flexibility,
			Goal:        req.Goal,
			PcosOrPcod:  req.PcosOrPcod,
		})
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create profile"})
		}
	}

	return c.JSON(fiber.Map{"token": token})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "email and password required"})
	}

	user, err := h.userRepo.GetByEmail(c.Context(), req.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to lookup user"})
	}

	if !utils.CheckPassword(req.Password, user.PasswordHash) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
	}

	token, err := utils.GenerateToken(strconv.FormatInt(user.ID, 10), user.Email, h.jwtSecret)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate token"})
	}

	return c.JSON(fiber.Map{"token": token})
}

// Me answers straight from the verified token; no store lookup.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, err := authUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	email, err := authEmail(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	return c.JSON(fiber.Map{"id": userID, "email": email})
}
