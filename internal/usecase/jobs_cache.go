package usecase

import (
	"context"
	"log"
	"time"

	"skillnuron/internal/domain/job"
	"skillnuron/internal/repository"
)

const jobsAllCacheKey = "jobs:all"

type JobsCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// listAllJobs is the shared cached read path for every consumer of the full
// job list. Cache errors are deliberately ignored: the store is the source
// of truth and the cache only shaves load.
func listAllJobs(ctx context.Context, jobs repository.JobRepository, cache JobsCache, logger *log.Logger) ([]job.Job, error) {
	if cache != nil {
		var cached []job.Job
		hit, err := cache.GetJSON(ctx, jobsAllCacheKey, &cached)
		if err == nil && hit {
			if logger != nil {
				logger.Printf("[Jobs] Cache HIT: %s", jobsAllCacheKey)
			}
			return cached, nil
		}
	}

	out, err := jobs.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	if cache != nil {
		_ = cache.SetJSON(ctx, jobsAllCacheKey, out, 0)
	}
	return out, nil
}

func invalidateJobsCache(ctx context.Context, cache JobsCache) {
	if cache != nil {
		_ = cache.Delete(ctx, jobsAllCacheKey)
	}
}
