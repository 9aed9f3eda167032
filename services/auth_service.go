package services

import (
	"errors"
	"log/slog"

	"elective-hub/auth"
	"elective-hub/domain"
	apperrors "elective-hub/errors"
	"elective-hub/repositories"
)

// ErrInvalidCredentials is deliberately generic: login failures never
// reveal whether the account exists.
var ErrInvalidCredentials = errors.New("invalid credentials")

type IAuthService interface {
	Login(userID, password string) (string, error)
}

// AuthService exchanges credentials for session tokens. Students and
// teachers share one login surface; the role comes from where the
// account lives in the roster.
type AuthService struct {
	log    *slog.Logger
	roster repositories.IRosterRepository
	tokens *auth.TokenService
}

func NewAuthService(log *slog.Logger, roster repositories.IRosterRepository,
	tokens *auth.TokenService) *AuthService {
	return &AuthService{log: log, roster: roster, tokens: tokens}
}

func (s *AuthService) Login(userID, password string) (string, error) {
	role, hash, err := s.lookup(userID)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	match, err := auth.ComparePassword(password, hash)
	if err != nil || !match {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(userID, role)
	if err != nil {
		s.log.Error("Token generation failed", "user", userID, "err", err)
		return "", err
	}
	return token, nil
}

func (s *AuthService) lookup(userID string) (domain.Role, string, error) {
	student, err := s.roster.GetStudent(userID)
	if err == nil {
		return domain.RoleStudent, student.PasswordHash, nil
	}
	var notFound apperrors.NotFoundError
	if !errors.As(err, &notFound) {
		return "", "", err
	}

	teacher, err := s.roster.GetTeacher(userID)
	if err != nil {
		return "", "", err
	}
	return domain.RoleTeacher, teacher.PasswordHash, nil
}
