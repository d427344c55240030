package handlers

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/Vaishnavi-Jogi/SamarthaYoga/internal/models"
	"github.com/Vaishnavi-Jogi/SamarthaYoga/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const maxUploadSizeBytes = 8 * 1024 * 1024

type analysisCreator interface {
	Create(ctx context.Context, analysis *models.Analysis) error
}

type activityMarker interface {
	Upsert(ctx context.Context, userID int64, activityType, date string, meta map[string]any) (*models.Activity, error)
}

type UploadHandler struct {
	analyzer     services.AnalyzerService
	analysisRepo analysisCreator
	activityRepo activityMarker
	uploadDir    string
}

func NewUploadHandler(
	analyzer services.AnalyzerService,
	analysisRepo analysisCreator,
	activityRepo activityMarker,
	uploadDir string,
) *UploadHandler {
	return &UploadHandler{
		analyzer:     analyzer,
		analysisRepo: analysisRepo,
		activityRepo: activityRepo,
		uploadDir:    uploadDir,
	}
}

// Upload accepts one JPEG, stores it locally, forwards it to the
// analyzer with the profile fields from the form, persists the result
// and marks today's upload activity. The stored file is kept even when
// the analyzer fails; its generated name is never reused.
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	userID, err := authUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No file uploaded"})
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if ext != ".jpg" && ext != ".jpeg" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Only .jpg/.jpeg allowed"})
	}
	if fileHeader.Size > maxUploadSizeBytes {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "File too large"})
	}

	age, err := strconv.Atoi(c.FormValue("age", "30"))
	if err != nil {
		age = 30
	}
	flexibility := c.FormValue("flexibility", "medium")
	goal := c.FormValue("goal", "alignment")

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to prepare upload directory"})
	}

	fileName := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), ext)
	filePath := filepath.Join(h.uploadDir, fileName)
	if err := c.SaveFile(fileHeader, filePath); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to store file"})
	}

	result, err := h.analyzer.Analyze(c.Context(), filePath, age, flexibility, goal)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	analysis := &models.Analysis{
		FileName:    fileName,
		FilePath:    filePath,
		AsanaName:   asString(result["asana_name"]),
		Score:       asFloat(result["score"]),
		Angles:      asFloatMap(result["angles"]),
		Validation:  asAnyMap(result["validation"]),
		Suggestions: asStringSlice(result["suggestions"]),
		Keypoints:   asAnyMap(result["keypoints"]),
		Profile: models.AnalysisProfile{
			Age:         age,
			Flexibility: flexibility,
			Goal:        goal,
		},
	}
	if err := h.analysisRepo.Create(c.Context(), analysis); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to store analysis"})
	}

	today := time.Now().Format("2006-01-02")
	if _, err := h.activityRepo.Upsert(c.Context(), userID, models.ActivityUpload, today, map[string]any{
		"analysis_id": analysis.ID,
	}); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to record activity"})
	}

	response := fiber.Map{}
	for key, value := range result {
		response[key] = value
	}
	response["file"] = fileName
	response["analysis_id"] = analysis.ID
	return c.JSON(response)
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asFloat(v any) float64 {
	f, _ := v.(float64)
	return f
}

func asAnyMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	if m == nil {
		m = map[string]any{}
	}
	return m
}

func asFloatMap(v any) map[string]float64 {
	out := map[string]float64{}
	for key, value := range asAnyMap(v) {
		if f, ok := value.(float64); ok {
			out[key] = f
		}
	}
	return out
}

func asStringSlice(v any) []string {
	raw, _ := v.([]any)
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
