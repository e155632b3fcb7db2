package matching

import (
	"testing"

	"skillnuron/internal/domain/job"
)

func TestScore_EmptyRequirements(t *testing.T) {
	if got := Score(nil, []string{"python", "react"}); got != 0 {
		t.Fatalf("expected 0 for no requirements, got %d", got)
	}
	if got := Score([]string{}, nil); got != 0 {
		t.Fatalf("expected 0 for empty requirements, got %d", got)
	}
	// Stray commas produce empty entries; they are not requirements.
	if got := Score([]string{"", "  ", ""}, []string{"python"}); got != 0 {
		t.Fatalf("expected 0 for whitespace-only requirements, got %d", got)
	}
}

func TestScore_CaseAndWhitespaceInvariance(t *testing.T) {
	a := Score([]string{"  Python "}, []string{"python"})
	b := Score([]string{"python"}, []string{"python"})
	if a != b {
		t.Fatalf("normalization mismatch: %d vs %d", a, b)
	}
	if a != 100 {
		t.Fatalf("expected 100, got %d", a)
	}
}

func TestScore_PartialMatch(t *testing.T) {
	got := Score([]string{"Python", "Django"}, []string{"python", "react"})
	if got != 50 {
		t.Fatalf("expected 50 for 1 of 2 matched, got %d", got)
	}
}

func TestScore_FullMatchOnly(t *testing.T) {
	cases := []struct {
		name     string
		required []string
		skills   []string
		want     int
	}{
		{"all matched", []string{"Go", "SQL", "Docker"}, []string{"go", "sql", "docker"}, 100},
		{"none matched", []string{"Go", "SQL"}, []string{"rust"}, 0},
		{"duplicates count individually", []string{"Go", "Go", "SQL"}, []string{"go"}, 66},
		{"one of three", []string{"Go", "SQL", "Docker"}, []string{"docker"}, 33},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Score(tc.required, tc.skills)
			if got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
			if got < 0 || got > 100 {
				t.Fatalf("score out of range: %d", got)
			}
		})
	}
}

func TestRank_SortedAndFiltered(t *testing.T) {
	jobs := []job.Job{
		{ID: 1, Title: "No overlap", RequiredSkills: "Rust,C++"},
		{ID: 2, Title: "Full overlap", RequiredSkills: "Python,React"},
		{ID: 3, Title: "Half overlap", RequiredSkills: "Python,Django"},
	}
	skills := []string{"python", "react"}

	all := Rank(jobs, skills, 0)
	if len(all) != 3 {
		t.Fatalf("minScore=0 must keep every job, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i].Score > all[i-1].Score {
			t.Fatalf("results not sorted descending: %d before %d", all[i-1].Score, all[i].Score)
		}
	}
	if all[0].Job.ID != 2 || all[0].Score != 100 {
		t.Fatalf("expected job 2 with score 100 first, got job %d score %d", all[0].Job.ID, all[0].Score)
	}

	filtered := Rank(jobs, skills, 50)
	for _, r := range filtered {
		if r.Score < 50 {
			t.Fatalf("minScore=50 returned score %d", r.Score)
		}
	}
	if len(filtered) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(filtered))
	}
}

func TestRank_StableOnTies(t *testing.T) {
	jobs := []job.Job{
		{ID: 1, RequiredSkills: "Python"},
		{ID: 2, RequiredSkills: "python"},
		{ID: 3, RequiredSkills: "PYTHON"},
	}

	got := Rank(jobs, []string{"Python"}, 0)
	if len(got) != 3 {
		t.Fatalf("expected 3 results, got %d", len(got))
	}
	for i, wantID := range []int64{1, 2, 3} {
		if got[i].Job.ID != wantID {
			t.Fatalf("tie order not preserved at %d: got job %d", i, got[i].Job.ID)
		}
	}
}
