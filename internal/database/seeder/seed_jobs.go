package seeder

import (
	"context"

	"skillnuron/internal/database"
)

// JobSeeder inserts a couple of starter postings so a fresh deployment has
// something to match against. Skipped when the table already has rows.
type JobSeeder struct{}

func (JobSeeder) Name() string { return "jobs" }

func (JobSeeder) Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return errNilDB
	}

	var count int64
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	jobs := []struct {
		title, company, location, jobType, salary, description, skills, posted string
	}{
		{
			title:       "Senior Full Stack Developer",
			company:     "TechCorp Inc.",
			location:    "Remote",
			jobType:     "Full-time",
			salary:      "$120k - $160k",
			description: "We are looking for an experienced Full Stack Developer...",
			skills:      "React,Node.js,TypeScript,MongoDB,AWS",
			posted:      "2025-11-20",
		},
		{
			title:       "Frontend Developer (React)",
			company:     "StartupXYZ",
			location:    "San Francisco, CA",
			jobType:     "Full-time",
			salary:      "$100k - $140k",
			description: "Join our fast-growing startup...",
			skills:      "React,JavaScript,HTML/CSS,Git",
			posted:      "2025-11-22",
		},
	}

	for _, j := range jobs {
		_, err := db.Exec(ctx,
			`INSERT INTO jobs (title, company, location, type, salary_range, description, required_skills, posted_date)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			j.title, j.company, j.location, j.jobType, j.salary, j.description, j.skills, j.posted,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
