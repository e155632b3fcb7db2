package usecase

import (
	"context"
	"log"

	"skillnuron/internal/domain/resume"
	"skillnuron/internal/extract"
)

type ResumeUsecase interface {
	AnalyzeResume(ctx context.Context, filename string, data []byte) (resume.Analysis, error)
}

type Resume struct {
	logger *log.Logger
}

func NewResumeUsecase(logger *log.Logger) *Resume {
	return &Resume{logger: logger}
}

// AnalyzeResume extracts plain text from the uploaded document and runs the
// heuristic analysis over it. Errors keep their extract/resume sentinels so
// the handler can map each to a distinct user-visible message.
func (u *Resume) AnalyzeResume(_ context.Context, filename string, data []byte) (resume.Analysis, error) {
	text, err := extract.Extract(data, filename)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Resume] extraction failed for %q: %v", filename, err)
		}
		return resume.Analysis{}, err
	}

	return resume.Analyze(text)
}
