package repository

import (
	"context"

	"github.com/Vaishnavi-Jogi/SamarthaYoga/internal/models"
)

type ProfileRepository struct {
	db DBTX
}

func NewProfileRepository(db DBTX) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// UpsertProfileInput carries only the fields the caller supplied. Nil
// fields never overwrite stored values.
type UpsertProfileInput struct {
	Name        *string
	Age         *int
	Gender      *string
	Level       *string
	Flexibility *string
	Goal        *string
	PcosOrPcod  *bool
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID int64) (*models.Profile, error) {
	query := `
		SELECT id, user_id, name, age, gender, level, flexibility, goal, pcos_or_pcod, created_at, updated_at
		FROM profiles
		WHERE user_id = $1
	`
	var profile models.Profile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&profile.ID,
		&profile.UserID,
		&profile.Name,
		&profile.Age,
		&profile.Gender,
		&profile.Level,
		&profile.Flexibility,
		&profile.Goal,
		&profile.PcosOrPcod,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Upsert creates the profile row on first write and merges supplied
// fields into it afterwards. The defaults in the VALUES list only apply
// when the row does not exist yet.
func (r *ProfileRepository) Upsert(ctx context.Context, userID int64, req UpsertProfileInput) (*models.Profile, error) {
	query := `
		INSERT INTO profiles (user_id, name, age, gender, level, flexibility, goal, pcos_or_pcod)
		VALUES (
			$1,
			COALESCE($2, 'Guest'),
			COALESCE($3, 30),
			COALESCE($4, 'other'),
			COALESCE($5, 'beginner'),
			COALESCE($6, 'medium'),
			COALESCE($7, 'alignment'),
			$8
		)
		ON CONFLICT (user_id) DO UPDATE SET
			name = COALESCE($2, profiles.name),
			age = COALESCE($3, profiles.age),
			gender = COALESCE($4, profiles.gender),
			level = COALESCE($5, profiles.level),
			flexibility = COALESCE($6, profiles.flexibility),
			goal = COALESCE($7, profiles.goal),
			pcos_or_pcod = COALESCE($8, profiles.pcos_or_pcod),
			updated_at = NOW()
		RETURNING id, user_id, name, age, gender, level, flexibility, goal, pcos_or_pcod, created_at, updated_at
	`
	var profile models.Profile
	err := r.db.QueryRow(ctx, query,
		userID,
		req.Name,
		req.Age,
		req.Gender,
		req.Level,
		req.Flexibility,
		req.Goal,
		req.PcosOrPcod,
	).Scan(
		&profile.ID,
		&profile.UserID,
		&profile.Name,
		&profile.Age,
		&profile.Gender,
		&profile.Level,
		&profile.Flexibility,
		&profile.Goal,
		&profile.PcosOrPcod,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
