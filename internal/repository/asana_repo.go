package repository

import (
	"context"
	"strings"

	"github.com/Vaishnavi-Jogi/SamarthaYoga/internal/models"
)

type AsanaRepository struct {
	db DBTX
}

func NewAsanaRepository(db DBTX) *AsanaRepository {
	return &AsanaRepository{db: db}
}

const asanaColumns = `id, asana_name, alignment, mistakes, benefits, precautions, quotes, "references"`

// GetByName looks a pose up by its normalized lower-cased key.
func (r *AsanaRepository) GetByName(ctx context.Context, name string) (*models.Asana, error) {
	query := `
		SELECT ` + asanaColumns + `
		FROM asanas
		WHERE name_key = $1
	`
	var asana models.Asana
	err := r.db.QueryRow(ctx, query, strings.ToLower(strings.TrimSpace(name))).Scan(
		&asana.ID,
		&asana.Name,
		&asana.Alignment,
		&asana.Mistakes,
		&asana.Benefits,
		&asana.Precautions,
		&asana.Quotes,
		&asana.References,
	)
	if err != nil {
		return nil, err
	}
	return &asana, nil
}

func (r *AsanaRepository) List(ctx context.Context, limit int) ([]models.Asana, error) {
	query := `
		SELECT ` + asanaColumns + `
		FROM asanas
		ORDER BY asana_name
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	asanas := []models.Asana{}
	for rows.Next() {
		var asana models.Asana
		if err := rows.Scan(
			&asana.ID,
			&asana.Name,
			&asana.Alignment,
			&asana.Mistakes,
			&asana.Benefits,
			&asana.Precautions,
			&asana.Quotes,
			&asana.References,
		); err != nil {
			return nil, err
		}
		asanas = append(asanas, asana)
	}
	return asanas, rows.Err()
}

// UpsertByName is the seed path; records are read-only at runtime.
func (r *AsanaRepository) UpsertByName(ctx context.Context, asana *models.Asana) error {
	query := `
		INSERT INTO asanas (asana_name, name_key, alignment, mistakes, benefits, precautions, quotes, "references")
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (name_key) DO UPDATE SET
			asana_name = EXCLUDED.asana_name,
			alignment = EXCLUDED.alignment,
			mistakes = EXCLUDED.mistakes,
			benefits = EXCLUDED.benefits,
			precautions = EXCLUDED.precautions,
			quotes = EXCLUDED.quotes,
			"references" = EXCLUDED."references"
	`
	_, err := r.db.Exec(ctx, query,
		asana.Name,
		strings.ToLower(strings.TrimSpace(asana.Name)),
		asana.Alignment,
		asana.Mistakes,
		asana.Benefits,
		asana.Precautions,
		asana.Quotes,
		asana.References,
	)
	return err
}
