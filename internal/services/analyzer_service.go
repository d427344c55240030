package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// AnalyzerService forwards an uploaded image to the external pose
// analyzer and returns the decoded result document.
type AnalyzerService interface {
	Analyze(ctx context.Context, filePath string, age int, flexibility, goal string) (map[string]any, error)
}

type HTTPAnalyzerService struct {
	baseURL    string
	httpClient *http.Client
}

func NewHTTPAnalyzerService(baseURL string) *HTTPAnalyzerService {
	return &HTTPAnalyzerService{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
	}
}

// Analyze streams the file as one part of a multipart request so the
// image is never buffered in memory twice.
func (s *HTTPAnalyzerService) Analyze(ctx context.Context, filePath string, age int, flexibility, goal string) (map[string]any, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer file.Close()

	pr, pw := io.Pipe()
	writer := multipart.NewWriter(pw)

	go func() {
		part, err := writer.CreateFormFile("file", filepath.Base(filePath))
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, file); err != nil {
			pw.CloseWithError(err)
			return
		}
		fields := map[string]string{
			"age":         strconv.Itoa(age),
			"flexibility": flexibility,
			"goal":        goal,
		}
		for name, value := range fields {
			if err := writer.WriteField(name, value); err != nil {
				pw.CloseWithError(err)
				return
			}
		}
		pw.CloseWithError(writer.Close())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/analyze", pr)
	if err != nil {
		return nil, fmt.Errorf("build analyze request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("analyze request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("analyzer: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var result map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode analyzer response: %w", err)
	}
	return result, nil
}
