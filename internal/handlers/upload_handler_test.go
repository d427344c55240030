package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/Vaishnavi-Jogi/SamarthaYoga/internal/models"
	"github.com/gofiber/fiber/v2"
)

var errAnalyzerDown = errors.New("analyzer: status 500: no person detected")

type stubAnalyzer struct {
	result       map[string]any
	err          error
	lastFilePath string
	lastAge      int
	lastFlex     string
	lastGoal     string
	calls        int
}

func (s *stubAnalyzer) Analyze(_ context.Context, filePath string, age int, flexibility, goal string) (map[string]any, error) {
	s.calls++
	s.lastFilePath = filePath
	s.lastAge = age
	s.lastFlex = flexibility
	s.lastGoal = goal
	return s.result, s.err
}

type stubAnalysisCreator struct {
	created *models.Analysis
	err     error
}

func (s *stubAnalysisCreator) Create(_ context.Context, analysis *models.Analysis) error {
	analysis.ID = 5
	s.created = analysis
	return s.err
}

func newUploadTestApp(handler *UploadHandler) *fiber.App {
	// The body limit mirrors the server app so multipart uploads larger
	// than the JSON cap reach the handler's own size check.
	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024,
	})
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", "42")
		return c.Next()
	})
	app.Post("/api/upload", handler.Upload)
	return app
}

func multipartUpload(t *testing.T, fileName string, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	return multipartUploadContent(t, fileName, []byte("fake-jpeg-bytes"), fields)
}

func multipartUploadContent(t *testing.T, fileName string, content []byte, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if fileName != "" {
		part, err := writer.CreateFormFile("file", fileName)
		if err != nil {
			t.Fatalf("CreateFormFile: %v", err)
		}
		if _, err := part.Write(content); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			t.Fatalf("WriteField: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	return body, writer.FormDataContentType()
}

func TestUploadRequiresFile(t *testing.T) {
	handler := NewUploadHandler(&stubAnalyzer{}, &stubAnalysisCreator{}, &stubActivityStore{}, t.TempDir())
	app := newUploadTestApp(handler)

	body, contentType := multipartUpload(t, "", map[string]string{"age": "30"})
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestUploadRejectsNonJPEG(t *testing.T) {
	analyzer := &stubAnalyzer{}
	handler := NewUploadHandler(analyzer, &stubAnalysisCreator{}, &stubActivityStore{}, t.TempDir())
	app := newUploadTestApp(handler)

	body, contentType := multipartUpload(t, "pose.png", nil)
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if analyzer.calls != 0 {
		t.Fatalf("expected no analyzer call, got %d", analyzer.calls)
	}
}

func TestUploadAcceptsFileLargerThanJSONCap(t *testing.T) {
	analyzer := &stubAnalyzer{result: map[string]any{"asana_name": "Tadasana"}}
	handler := NewUploadHandler(analyzer, &stubAnalysisCreator{}, &stubActivityStore{}, t.TempDir())
	app := newUploadTestApp(handler)

	content := bytes.Repeat([]byte("x"), 3*1024*1024)
	body, contentType := multipartUploadContent(t, "pose.jpg", content, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for 3MB upload, got %d", resp.StatusCode)
	}
	if analyzer.calls != 1 {
		t.Fatalf("expected one analyzer call, got %d", analyzer.calls)
	}
}

func TestUploadRejectsFileOverCeiling(t *testing.T) {
	analyzer := &stubAnalyzer{}
	handler := NewUploadHandler(analyzer, &stubAnalysisCreator{}, &stubActivityStore{}, t.TempDir())
	app := newUploadTestApp(handler)

	content := bytes.Repeat([]byte("x"), 9*1024*1024)
	body, contentType := multipartUploadContent(t, "pose.jpg", content, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for 9MB upload, got %d", resp.StatusCode)
	}
	if analyzer.calls != 0 {
		t.Fatalf("expected no analyzer call, got %d", analyzer.calls)
	}
}

func TestUploadForwardsPersistsAndMarksActivity(t *testing.T) {
	uploadDir := t.TempDir()
	analyzer := &stubAnalyzer{result: map[string]any{
		"asana_name":  "Trikonasana",
		"score":       82.5,
		"angles":      map[string]any{"left_knee": 176.0},
		"validation":  map[string]any{"ok": true},
		"suggestions": []any{"Lengthen the side body"},
		"keypoints":   map[string]any{},
		"profile":     map[string]any{"age": 28.0},
	}}
	creator := &stubAnalysisCreator{}
	activities := &stubActivityStore{}
	handler := NewUploadHandler(analyzer, creator, activities, uploadDir)
	app := newUploadTestApp(handler)

	body, contentType := multipartUpload(t, "pose.jpg", map[string]string{
		"age":         "28",
		"flexibility": "high",
		"goal":        "strength",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	if analyzer.lastAge != 28 || analyzer.lastFlex != "high" || analyzer.lastGoal != "strength" {
		t.Fatalf("unexpected analyzer fields: %d %q %q", analyzer.lastAge, analyzer.lastFlex, analyzer.lastGoal)
	}
	if _, err := os.Stat(analyzer.lastFilePath); err != nil {
		t.Fatalf("expected stored file at %q: %v", analyzer.lastFilePath, err)
	}
	if filepath.Ext(analyzer.lastFilePath) != ".jpg" {
		t.Fatalf("expected preserved extension, got %q", analyzer.lastFilePath)
	}

	if creator.created == nil || creator.created.AsanaName != "Trikonasana" || creator.created.Score != 82.5 {
		t.Fatalf("unexpected persisted analysis: %+v", creator.created)
	}
	if creator.created.Angles["left_knee"] != 176.0 {
		t.Fatalf("unexpected angles: %+v", creator.created.Angles)
	}

	if activities.lastType != models.ActivityUpload {
		t.Fatalf("expected upload activity, got %q", activities.lastType)
	}

	var response map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if response["asana_name"] != "Trikonasana" {
		t.Fatalf("expected analyzer fields in response, got %+v", response)
	}
	if response["analysis_id"] != float64(5) {
		t.Fatalf("expected analysis_id 5, got %v", response["analysis_id"])
	}
	if response["file"] == "" {
		t.Fatalf("expected stored file name in response")
	}
}

func TestUploadSurfacesAnalyzerError(t *testing.T) {
	analyzer := &stubAnalyzer{err: errAnalyzerDown}
	handler := NewUploadHandler(analyzer, &stubAnalysisCreator{}, &stubActivityStore{}, t.TempDir())
	app := newUploadTestApp(handler)

	body, contentType := multipartUpload(t, "pose.jpg", nil)
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}

	var parsed struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if parsed.Error != errAnalyzerDown.Error() {
		t.Fatalf("expected analyzer error passthrough, got %q", parsed.Error)
	}
}
