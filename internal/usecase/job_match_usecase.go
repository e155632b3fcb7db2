package usecase

import (
	"context"
	"errors"
	"log"

	"skillnuron/internal/domain/matching"
	"skillnuron/internal/domain/user"
	"skillnuron/internal/repository"
)

// RecommendationMinScore is the cutoff for the recommendations endpoint;
// the plain listing keeps every job by passing 0.
const RecommendationMinScore = 50

type JobMatchUsecase interface {
	MatchJobs(ctx context.Context, userEmail string, minScore int) ([]matching.Result, error)
}

type JobMatch struct {
	users  user.Repository
	skills repository.SkillRepository
	jobs   repository.JobRepository
	cache  JobsCache
	logger *log.Logger
}

func NewJobMatchUsecase(users user.Repository, skills repository.SkillRepository, jobs repository.JobRepository, cache JobsCache, logger *log.Logger) *JobMatch {
	return &JobMatch{users: users, skills: skills, jobs: jobs, cache: cache, logger: logger}
}

// MatchJobs scores every stored job against the caller's skill profile and
// returns the ranked results at or above minScore. A user with no declared
// skills still gets results: every job simply scores 0 (and drops out of
// any filtered view).
func (u *JobMatch) MatchJobs(ctx context.Context, userEmail string, minScore int) ([]matching.Result, error) {
	if userEmail == "" {
		return nil, ErrUnauthorized
	}
	if minScore < 0 {
		minScore = 0
	}

	usr, err := u.users.GetByEmail(ctx, userEmail)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, ErrInternal
	}

	skills, err := u.skills.ListByUserID(ctx, usr.ID)
	if err != nil {
		return nil, ErrInternal
	}

	names := make([]string, 0, len(skills))
	for _, s := range skills {
		names = append(names, s.Name)
	}

	jobs, err := listAllJobs(ctx, u.jobs, u.cache, u.logger)
	if err != nil {
		return nil, ErrInternal
	}

	return matching.Rank(jobs, names, minScore), nil
}
