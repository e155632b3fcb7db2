package repository

import (
	"context"
	"errors"

	"skillnuron/internal/database"
	"skillnuron/internal/domain/skill"
)

var ErrSkillNotFound = errors.New("skill not found")

type SkillRepository interface {
	ListByUserID(ctx context.Context, userID int64) ([]skill.Skill, error)
	Create(ctx context.Context, s skill.Skill) (skill.Skill, error)
	DeleteByName(ctx context.Context, userID int64, name string) error
}

type PostgresSkillRepository struct {
	db database.DB
}

func NewPostgresSkillRepository(db database.DB) *PostgresSkillRepository {
	return &PostgresSkillRepository{db: db}
}

func (r *PostgresSkillRepository) ListByUserID(ctx context.Context, userID int64) ([]skill.Skill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, name, level, category, created_at
		 FROM skills
		 WHERE user_id = $1
		 ORDER BY name ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]skill.Skill, 0)
	for rows.Next() {
		var s skill.Skill
		if err := rows.Scan(&s.ID, &s.UserID, &s.Name, &s.Level, &s.Category, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresSkillRepository) Create(ctx context.Context, s skill.Skill) (skill.Skill, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO skills (user_id, name, level, category)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		s.UserID, s.Name, s.Level, s.Category,
	)
	if err := row.Scan(&s.ID, &s.CreatedAt); err != nil {
		return skill.Skill{}, err
	}
	return s, nil
}

// DeleteByName removes a user's skill by its name, the natural per-user key.
func (r *PostgresSkillRepository) DeleteByName(ctx context.Context, userID int64, name string) error {
	rowsAffected, err := r.db.Exec(ctx,
		`DELETE FROM skills WHERE user_id = $1 AND name = $2`,
		userID, name,
	)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrSkillNotFound
	}
	return nil
}
