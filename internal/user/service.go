package user

import (
	"context"
	"errors"

	"expense_manager/internal/observability"
)

var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type ServiceInterface interface {
	Signup(ctx context.Context, username, password string) (string, error)
	Login(ctx context.Context, username, password string) (string, error)
}

type Service struct {
	repo RepositoryInterface
}

func NewService(repo RepositoryInterface) ServiceInterface {
	return &Service{repo: repo}
}

// Signup creates a new user if the username is free and returns the
// generated id. Uniqueness is lookup-before-insert only — there is no
// unique index, so two concurrent signups for the same username can
// both pass the check.
func (s *Service) Signup(ctx context.Context, username, password string) (string, error) {
	_, err := s.repo.FindByUsername(ctx, username)
	if err == nil {
		return "", ErrUsernameTaken
	}
	if !errors.Is(err, ErrNotFound) {
		return "", err
	}

	id, err := s.repo.Insert(ctx, &User{Username: username, Password: password})
	if err != nil {
		return "", err
	}

	observability.CountSignup()
	return id.Hex(), nil
}

// Login matches username and password verbatim and returns the user id.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	u, err := s.repo.FindByCredentials(ctx, username, password)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	return u.ID.Hex(), nil
}
