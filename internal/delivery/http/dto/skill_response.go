package dto

import "skillnuron/internal/domain/skill"

type SkillResponse struct {
	ID       int64  `json:"id"`
	UserID   int64  `json:"user_id"`
	Name     string `json:"name"`
	Level    int    `json:"level"`
	Category string `json:"category"`
}

func SkillFromDomain(s skill.Skill) SkillResponse {
	return SkillResponse{
		ID:       s.ID,
		UserID:   s.UserID,
		Name:     s.Name,
		Level:    s.Level,
		Category: s.Category,
	}
}

func SkillsFromDomain(items []skill.Skill) []SkillResponse {
	out := make([]SkillResponse, 0, len(items))
	for _, s := range items {
		out = append(out, SkillFromDomain(s))
	}
	return out
}
