package job

import (
	"strings"
	"time"
)

type Job struct {
	ID             int64
	Title          string
	Company        string
	Location       string
	Type           string
	SalaryRange    string
	Description    string
	RequiredSkills string
	PostedDate     string
	CreatedAt      time.Time
}

// SplitSkills parses a comma-joined required-skills string. Entries are
// trimmed and empty ones dropped, so stray commas never become skill names.
// An empty string yields an empty sequence.
func SplitSkills(s string) []string {
	out := make([]string, 0)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}

// JoinSkills is the storage-side inverse of SplitSkills.
func JoinSkills(skills []string) string {
	cleaned := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		cleaned = append(cleaned, s)
	}
	return strings.Join(cleaned, ",")
}

func (j Job) RequiredSkillList() []string {
	return SplitSkills(j.RequiredSkills)
}
