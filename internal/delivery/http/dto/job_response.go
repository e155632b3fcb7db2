package dto

import (
	"skillnuron/internal/domain/job"
	"skillnuron/internal/domain/matching"
)

// JobResponse keeps the camelCase keys of the original public contract.
type JobResponse struct {
	ID             int64    `json:"id"`
	Title          string   `json:"title"`
	Company        string   `json:"company"`
	Location       string   `json:"location"`
	Type           string   `json:"type"`
	Salary         string   `json:"salary"`
	RequiredSkills []string `json:"requiredSkills"`
	Description    string   `json:"description"`
	PostedDate     string   `json:"postedDate"`
	MatchScore     int      `json:"matchScore"`
}

func JobFromDomain(j job.Job) JobResponse {
	return JobResponse{
		ID:             j.ID,
		Title:          j.Title,
		Company:        j.Company,
		Location:       j.Location,
		Type:           j.Type,
		Salary:         j.SalaryRange,
		RequiredSkills: j.RequiredSkillList(),
		Description:    j.Description,
		PostedDate:     j.PostedDate,
	}
}

func JobsFromMatchResults(results []matching.Result) []JobResponse {
	out := make([]JobResponse, 0, len(results))
	for _, r := range results {
		jr := JobFromDomain(r.Job)
		jr.MatchScore = r.Score
		out = append(out, jr)
	}
	return out
}
