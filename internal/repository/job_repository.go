package repository

import (
	"context"
	"database/sql"
	"errors"

	"skillnuron/internal/database"
	"skillnuron/internal/domain/job"

	"github.com/jackc/pgx/v5"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	Create(ctx context.Context, j job.Job) (job.Job, error)
	GetByID(ctx context.Context, id int64) (job.Job, error)
	ListAll(ctx context.Context) ([]job.Job, error)
	Update(ctx context.Context, j job.Job) (job.Job, error)
	Delete(ctx context.Context, id int64) error
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const jobColumns = `id, title, company, location, type, salary_range, description, required_skills, posted_date, created_at`

func (r *PostgresJobRepository) Create(ctx context.Context, j job.Job) (job.Job, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO jobs (title, company, location, type, salary_range, description, required_skills, posted_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at`,
		j.Title, j.Company, j.Location, j.Type, j.SalaryRange, j.Description, j.RequiredSkills, j.PostedDate,
	)
	if err := row.Scan(&j.ID, &j.CreatedAt); err != nil {
		return job.Job{}, err
	}
	return j, nil
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id int64) (job.Job, error) {
	row := r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	return scanJob(row)
}

func (r *PostgresJobRepository) ListAll(ctx context.Context) ([]job.Job, error) {
	rows, err := r.db.Query(ctx, `SELECT `+jobColumns+` FROM jobs ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Job, 0)
	for rows.Next() {
		var j job.Job
		if err := rows.Scan(&j.ID, &j.Title, &j.Company, &j.Location, &j.Type, &j.SalaryRange, &j.Description, &j.RequiredSkills, &j.PostedDate, &j.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresJobRepository) Update(ctx context.Context, j job.Job) (job.Job, error) {
	rowsAffected, err := r.db.Exec(ctx,
		`UPDATE jobs
		 SET title = $1, company = $2, location = $3, type = $4, salary_range = $5,
		     description = $6, required_skills = $7, posted_date = $8
		 WHERE id = $9`,
		j.Title, j.Company, j.Location, j.Type, j.SalaryRange, j.Description, j.RequiredSkills, j.PostedDate, j.ID,
	)
	if err != nil {
		return job.Job{}, err
	}
	if rowsAffected == 0 {
		return job.Job{}, ErrJobNotFound
	}
	return r.GetByID(ctx, j.ID)
}

func (r *PostgresJobRepository) Delete(ctx context.Context, id int64) error {
	rowsAffected, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func scanJob(row database.Row) (job.Job, error) {
	var j job.Job
	if err := row.Scan(&j.ID, &j.Title, &j.Company, &j.Location, &j.Type, &j.SalaryRange, &j.Description, &j.RequiredSkills, &j.PostedDate, &j.CreatedAt); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, err
	}
	return j, nil
}
