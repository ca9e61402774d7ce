package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/riod94/pitaya-store-sub001/internal/shared/apperr"
)

var ErrBadCredentials = errors.New("bad credentials")

type Service struct {
	repo      *Repo
	jwtSecret []byte
	jwtTTL    time.Duration
}

func NewService(repo *Repo, jwtSecret string, jwtTTL time.Duration) *Service {
	return &Service{repo: repo, jwtSecret: []byte(jwtSecret), jwtTTL: jwtTTL}
}

func (s *Service) Register(ctx context.Context, email, password, name string) (User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return User{}, apperr.ConflictErr("Email is already registered.")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return User{}, apperr.Wrap(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, apperr.Wrap(err)
	}

	u, err := s.repo.Create(ctx, email, string(hash), name, RoleCustomer)
	if err != nil {
		return User{}, apperr.Wrap(err)
	}
	return u, nil
}

// Login verifies credentials and issues an HS256 token with user_id, email
// and role claims.
func (s *Service) Login(ctx context.Context, email, password string) (User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return User{}, "", ErrBadCredentials
		}
		return User{}, "", apperr.Wrap(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return User{}, "", ErrBadCredentials
	}

	token, err := s.issueToken(u)
	if err != nil {
		return User{}, "", apperr.Wrap(err)
	}
	return u, token, nil
}

func (s *Service) issueToken(u User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": u.ID,
		"email":   u.Email,
		"role":    u.Role,
		"exp":     time.Now().Add(s.jwtTTL).Unix(),
		"iat":     time.Now().Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
}
