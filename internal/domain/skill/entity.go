package skill

import (
	"errors"
	"strings"
	"time"
)

const (
	MinLevel = 0
	MaxLevel = 100
)

var (
	ErrEmptyName       = errors.New("skill name empty")
	ErrLevelOutOfRange = errors.New("skill level out of range")
)

type Skill struct {
	ID        int64
	UserID    int64
	Name      string
	Level     int
	Category  string
	CreatedAt time.Time
}

// New validates the level range at construction so repositories and
// usecases never see an out-of-range skill.
func New(userID int64, name string, level int, category string) (Skill, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Skill{}, ErrEmptyName
	}
	if level < MinLevel || level > MaxLevel {
		return Skill{}, ErrLevelOutOfRange
	}

	return Skill{
		UserID:   userID,
		Name:     name,
		Level:    level,
		Category: strings.TrimSpace(category),
	}, nil
}
