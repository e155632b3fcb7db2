package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"skillnuron/internal/domain/job"
	"skillnuron/internal/repository"
)

var ErrJobNotFound = errors.New("job not found")

type JobInput struct {
	Title          string
	Company        string
	Location       string
	Type           string
	SalaryRange    string
	Description    string
	RequiredSkills string
	PostedDate     string
}

type JobUsecase interface {
	CreateJob(ctx context.Context, in JobInput) (job.Job, error)
	GetJob(ctx context.Context, id int64) (job.Job, error)
	ListJobs(ctx context.Context) ([]job.Job, error)
	UpdateJob(ctx context.Context, id int64, in JobInput) (job.Job, error)
	DeleteJob(ctx context.Context, id int64) error
}

type Job struct {
	jobs   repository.JobRepository
	cache  JobsCache
	logger *log.Logger
}

func NewJobUsecase(jobs repository.JobRepository, cache JobsCache, logger *log.Logger) *Job {
	return &Job{jobs: jobs, cache: cache, logger: logger}
}

func (u *Job) CreateJob(ctx context.Context, in JobInput) (job.Job, error) {
	j, err := jobFromInput(in)
	if err != nil {
		return job.Job{}, err
	}

	created, err := u.jobs.Create(ctx, j)
	if err != nil {
		return job.Job{}, ErrInternal
	}

	invalidateJobsCache(ctx, u.cache)
	return created, nil
}

func (u *Job) GetJob(ctx context.Context, id int64) (job.Job, error) {
	j, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, ErrInternal
	}
	return j, nil
}

func (u *Job) ListJobs(ctx context.Context) ([]job.Job, error) {
	out, err := listAllJobs(ctx, u.jobs, u.cache, u.logger)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Job) UpdateJob(ctx context.Context, id int64, in JobInput) (job.Job, error) {
	j, err := jobFromInput(in)
	if err != nil {
		return job.Job{}, err
	}
	j.ID = id

	updated, err := u.jobs.Update(ctx, j)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, ErrInternal
	}

	invalidateJobsCache(ctx, u.cache)
	return updated, nil
}

func (u *Job) DeleteJob(ctx context.Context, id int64) error {
	if err := u.jobs.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return ErrJobNotFound
		}
		return ErrInternal
	}

	invalidateJobsCache(ctx, u.cache)
	return nil
}

func jobFromInput(in JobInput) (job.Job, error) {
	title := strings.TrimSpace(in.Title)
	company := strings.TrimSpace(in.Company)
	if title == "" || company == "" {
		return job.Job{}, ErrInvalidInput
	}

	// Re-join through the split helper so stored required_skills never
	// carries empty entries from stray commas.
	requiredSkills := job.JoinSkills(job.SplitSkills(in.RequiredSkills))

	return job.Job{
		Title:          title,
		Company:        company,
		Location:       strings.TrimSpace(in.Location),
		Type:           strings.TrimSpace(in.Type),
		SalaryRange:    strings.TrimSpace(in.SalaryRange),
		Description:    in.Description,
		RequiredSkills: requiredSkills,
		PostedDate:     strings.TrimSpace(in.PostedDate),
	}, nil
}
