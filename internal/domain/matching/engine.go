package matching

import (
	"sort"
	"strings"

	"skillnuron/internal/domain/job"
)

type Result struct {
	Job   job.Job
	Score int
}

// Score computes the 0-100 overlap between a job's required skills and the
// user's declared skill names. Both sides are normalized to lower-case with
// surrounding whitespace trimmed. Empty required entries are dropped before
// counting; a job with no stated requirements scores 0 rather than 100.
// Duplicate requirements each count toward the total, and a single user
// skill may satisfy several of them.
func Score(requiredSkills []string, userSkillNames []string) int {
	required := make([]string, 0, len(requiredSkills))
	for _, r := range requiredSkills {
		r = normalize(r)
		if r == "" {
			continue
		}
		required = append(required, r)
	}
	if len(required) == 0 {
		return 0
	}

	owned := make(map[string]struct{}, len(userSkillNames))
	for _, s := range userSkillNames {
		s = normalize(s)
		if s == "" {
			continue
		}
		owned[s] = struct{}{}
	}

	matched := 0
	for _, r := range required {
		if _, ok := owned[r]; ok {
			matched++
		}
	}

	return matched * 100 / len(required)
}

// Rank scores every job against the user's skills, drops jobs below
// minScore and returns the rest ordered by score descending. The sort is
// stable so ties keep their input order and the result is reproducible.
func Rank(jobs []job.Job, userSkillNames []string, minScore int) []Result {
	out := make([]Result, 0, len(jobs))
	for _, j := range jobs {
		s := Score(j.RequiredSkillList(), userSkillNames)
		if s < minScore {
			continue
		}
		out = append(out, Result{Job: j, Score: s})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
