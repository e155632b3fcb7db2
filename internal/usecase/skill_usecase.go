package usecase

import (
	"context"
	"errors"

	"skillnuron/internal/domain/skill"
	"skillnuron/internal/domain/user"
	"skillnuron/internal/repository"
)

var ErrSkillNotFound = errors.New("skill not found")

type AddSkillInput struct {
	Name     string
	Level    int
	Category string
}

type SkillUsecase interface {
	ListSkills(ctx context.Context, userEmail string) ([]skill.Skill, error)
	AddSkill(ctx context.Context, userEmail string, in AddSkillInput) (skill.Skill, error)
	RemoveSkill(ctx context.Context, userEmail string, name string) error
}

type Skill struct {
	users user.Repository
	repo  repository.SkillRepository
}

func NewSkillUsecase(users user.Repository, repo repository.SkillRepository) *Skill {
	return &Skill{users: users, repo: repo}
}

func (u *Skill) ListSkills(ctx context.Context, userEmail string) ([]skill.Skill, error) {
	usr, err := u.currentUser(ctx, userEmail)
	if err != nil {
		return nil, err
	}

	items, err := u.repo.ListByUserID(ctx, usr.ID)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Skill) AddSkill(ctx context.Context, userEmail string, in AddSkillInput) (skill.Skill, error) {
	usr, err := u.currentUser(ctx, userEmail)
	if err != nil {
		return skill.Skill{}, err
	}

	s, err := skill.New(usr.ID, in.Name, in.Level, in.Category)
	if err != nil {
		return skill.Skill{}, ErrInvalidInput
	}

	created, err := u.repo.Create(ctx, s)
	if err != nil {
		return skill.Skill{}, ErrInternal
	}
	return created, nil
}

func (u *Skill) RemoveSkill(ctx context.Context, userEmail string, name string) error {
	if name == "" {
		return ErrInvalidInput
	}

	usr, err := u.currentUser(ctx, userEmail)
	if err != nil {
		return err
	}

	if err := u.repo.DeleteByName(ctx, usr.ID, name); err != nil {
		if errors.Is(err, repository.ErrSkillNotFound) {
			return ErrSkillNotFound
		}
		return ErrInternal
	}
	return nil
}

func (u *Skill) currentUser(ctx context.Context, email string) (user.User, error) {
	if email == "" {
		return user.User{}, ErrUnauthorized
	}
	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrUnauthorized
		}
		return user.User{}, ErrInternal
	}
	return usr, nil
}
