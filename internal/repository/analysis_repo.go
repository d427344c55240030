package repository

import (
	"context"

	"github.com/Vaishnavi-Jogi/SamarthaYoga/internal/models"
)

type AnalysisRepository struct {
	db DBTX
}

func NewAnalysisRepository(db DBTX) *AnalysisRepository {
	return &AnalysisRepository{db: db}
}

const analysisColumns = `id, file_name, file_path, asana_name, score, angles, validation, suggestions, keypoints, profile, created_at`

func (r *AnalysisRepository) Create(ctx context.Context, analysis *models.Analysis) error {
	query := `
		INSERT INTO analyses (file_name, file_path, asana_name, score, angles, validation, suggestions, keypoints, profile)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`
	return r.db.QueryRow(ctx, query,
		analysis.FileName,
		analysis.FilePath,
		analysis.AsanaName,
		analysis.Score,
		analysis.Angles,
		analysis.Validation,
		analysis.Suggestions,
		analysis.Keypoints,
		analysis.Profile,
	).Scan(&analysis.ID, &analysis.CreatedAt)
}

func (r *AnalysisRepository) ListRecent(ctx context.Context, limit int) ([]models.Analysis, error) {
	query := `
		SELECT ` + analysisColumns + `
		FROM analyses
		ORDER BY created_at DESC
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	analyses := []models.Analysis{}
	for rows.Next() {
		var analysis models.Analysis
		if err := rows.Scan(
			&analysis.ID,
			&analysis.FileName,
			&analysis.FilePath,
			&analysis.AsanaName,
			&analysis.Score,
			&analysis.Angles,
			&analysis.Validation,
			&analysis.Suggestions,
			&analysis.Keypoints,
			&analysis.Profile,
			&analysis.CreatedAt,
		); err != nil {
			return nil, err
		}
		analyses = append(analyses, analysis)
	}
	return analyses, rows.Err()
}

func (r *AnalysisRepository) GetByID(ctx context.Context, id int64) (*models.Analysis, error) {
	query := `
		SELECT ` + analysisColumns + `
		FROM analyses
		WHERE id = $1
	`
	var analysis models.Analysis
	err := r.db.QueryRow(ctx, query, id).Scan(
		&analysis.ID,
		&analysis.FileName,
		&analysis.FilePath,
		&analysis.AsanaName,
		&analysis.Score,
		&analysis.Angles,
		&analysis.Validation,
		&analysis.Suggestions,
		&analysis.Keypoints,
		&analysis.Profile,
		&analysis.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &analysis, nil
}
