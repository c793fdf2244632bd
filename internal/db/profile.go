package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// GetUserProfile loads a user with skills and education eagerly included.
// Returns nil (no error) when the user does not exist.
func (db *DB) GetUserProfile(ctx context.Context, userID string) (*UserProfile, error) {
	var profile UserProfile
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, email, created_at, updated_at FROM users WHERE id = $1`,
		userID,
	).Scan(&profile.ID, &profile.Name, &profile.Email, &profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user %s: %w", userID, err)
	}

	profile.Skills = []Skill{}
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, name, COALESCE(level, ''), created_at
		 FROM skills WHERE user_id = $1 ORDER BY created_at, id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills for %s: %w", userID, err)
	}
	defer rows.Close()
	for rows.Next() {
		var s Skill
		if err := rows.Scan(&s.ID, &s.UserID, &s.Name, &s.Level, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan skill: %w", err)
		}
		profile.Skills = append(profile.Skills, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read skills: %w", err)
	}

	profile.Education = []Education{}
	rows, err = db.pool.Query(ctx,
		`SELECT id, user_id, school, COALESCE(degree, ''), COALESCE(field, ''), created_at
		 FROM education WHERE user_id = $1 ORDER BY created_at, id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list education for %s: %w", userID, err)
	}
	defer rows.Close()
	for rows.Next() {
		var e Education
		if err := rows.Scan(&e.ID, &e.UserID, &e.School, &e.Degree, &e.Field, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan education: %w", err)
		}
		profile.Education = append(profile.Education, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read education: %w", err)
	}

	return &profile, nil
}
