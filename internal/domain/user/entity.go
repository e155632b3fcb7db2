package user

import "time"

const (
	RoleJobseeker = "jobseeker"
	RoleRecruiter = "recruiter"
)

func ValidRole(role string) bool {
	return role == RoleJobseeker || role == RoleRecruiter
}

type User struct {
	ID           int64
	Email        string
	FullName     string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}
