package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"sigma/internal/models"
	"sigma/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const defaultTokenTTL = time.Hour

// UserService handles sign-up, sign-in and account administration.
type UserService struct {
	guard *repository.Guard
	users repository.UserRepo
	cfg   AuthConfig
}

func NewUserService(guard *repository.Guard, users repository.UserRepo, cfg AuthConfig) *UserService {
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = defaultTokenTTL
	}
	return &UserService{guard: guard, users: users, cfg: cfg}
}

// SignUp registers an AGENT pending approval. Promotion goes through
// UpdateRole only.
func (s *UserService) SignUp(ctx context.Context, p RegisterParams) (models.PublicUser, error) {
	p.Matricula = strings.TrimSpace(p.Matricula)
	if p.Matricula == "" || strings.TrimSpace(p.Password) == "" {
		return models.PublicUser{}, ErrCredentialsMissing
	}
	hash, err := hashPassword(p.Password)
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("invalid password: %w", err)
	}

	unlock := s.guard.Lock(repository.CollectionUsers)
	defer unlock()

	users, err := s.users.List(ctx)
	if err != nil {
		return models.PublicUser{}, err
	}
	if findByMatricula(users, p.Matricula) != nil {
		return models.PublicUser{}, ErrMatriculaTaken
	}
	u := models.User{
		ID:           uuid.NewString(),
		Matricula:    p.Matricula,
		PasswordHash: hash,
		FullName:     p.FullName,
		Role:         models.RoleAgent,
		IsApproved:   false,
	}
	if err := s.users.ReplaceAll(ctx, append(users, u)); err != nil {
		return models.PublicUser{}, err
	}
	return u.Public(), nil
}

// Claims defines JWT claims
type Claims struct {
	jwt.RegisteredClaims
	UserID string          `json:"user_id"`
	Role   models.UserRole `json:"role"`
}

// SignIn validates credentials of an approved user and returns a JWT.
func (s *UserService) SignIn(ctx context.Context, matricula, password string) (string, error) {
	unlock := s.guard.Lock(repository.CollectionUsers)
	users, err := s.users.List(ctx)
	unlock()
	if err != nil {
		return "", err
	}

	u := findByMatricula(users, strings.TrimSpace(matricula))
	if u == nil {
		return "", ErrUserNotFound
	}
	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return "", ErrInvalidPassword
	}
	if !u.IsApproved {
		return "", ErrUserNotApproved
	}
	return s.issueToken(*u)
}

// ParseToken parses JWT and returns the session it carries.
func (s *UserService) ParseToken(accessToken string) (Session, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SigningKey), nil
	})
	if err != nil {
		return Session{}, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == "" {
		return Session{}, ErrInvalidToken
	}
	return Session{UserID: claims.UserID, Role: claims.Role}, nil
}

func (s *UserService) List(ctx context.Context) ([]models.PublicUser, error) {
	return s.publicUsers(ctx, func(models.User) bool { return true })
}

// Pending lists users waiting for approval.
func (s *UserService) Pending(ctx context.Context) ([]models.PublicUser, error) {
	return s.publicUsers(ctx, func(u models.User) bool { return !u.IsApproved })
}

// Approve marks the user approved, or removes the registration when approve is false.
// Unknown ids are a no-op.
func (s *UserService) Approve(ctx context.Context, id string, approve bool) error {
	if !approve {
		return s.Delete(ctx, id)
	}
	return s.mutate(ctx, id, func(u *models.User) { u.IsApproved = true })
}

func (s *UserService) UpdateRole(ctx context.Context, id string, role models.UserRole) error {
	if !validRole(role) {
		return ErrInvalidRole
	}
	return s.mutate(ctx, id, func(u *models.User) { u.Role = role })
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	unlock := s.guard.Lock(repository.CollectionUsers)
	defer unlock()

	users, err := s.users.List(ctx)
	if err != nil {
		return err
	}
	kept := slices.DeleteFunc(users, func(u models.User) bool { return u.ID == id })
	if len(kept) == len(users) {
		return nil
	}
	return s.users.ReplaceAll(ctx, kept)
}

// EnsureAdmin creates the approved administrator when no user exists yet.
// It reports whether the administrator was created.
func (s *UserService) EnsureAdmin(ctx context.Context, p AdminParams) (bool, error) {
	if strings.TrimSpace(p.Matricula) == "" || p.Password == "" {
		return false, ErrCredentialsMissing
	}

	unlock := s.guard.Lock(repository.CollectionUsers)
	defer unlock()

	users, err := s.users.List(ctx)
	if err != nil {
		return false, err
	}
	if len(users) > 0 {
		return false, nil
	}
	hash, err := hashPassword(p.Password)
	if err != nil {
		return false, err
	}
	admin := models.User{
		ID:           uuid.NewString(),
		Matricula:    strings.TrimSpace(p.Matricula),
		PasswordHash: hash,
		FullName:     p.FullName,
		Role:         models.RoleAdmin,
		IsApproved:   true,
	}
	if err := s.users.ReplaceAll(ctx, []models.User{admin}); err != nil {
		return false, err
	}
	return true, nil
}

func (s *UserService) mutate(ctx context.Context, id string, apply func(*models.User)) error {
	unlock := s.guard.Lock(repository.CollectionUsers)
	defer unlock()

	users, err := s.users.List(ctx)
	if err != nil {
		return err
	}
	found := false
	for i := range users {
		if users[i].ID == id {
			apply(&users[i])
			found = true
		}
	}
	if !found {
		return nil
	}
	return s.users.ReplaceAll(ctx, users)
}

func (s *UserService) publicUsers(ctx context.Context, keep func(models.User) bool) ([]models.PublicUser, error) {
	unlock := s.guard.Lock(repository.CollectionUsers)
	users, err := s.users.List(ctx)
	unlock()
	if err != nil {
		return nil, err
	}
	out := make([]models.PublicUser, 0, len(users))
	for _, u := range users {
		if keep(u) {
			out = append(out, u.Public())
		}
	}
	return out, nil
}

func findByMatricula(users []models.User, matricula string) *models.User {
	for i := range users {
		if users[i].Matricula == matricula {
			return &users[i]
		}
	}
	return nil
}

func validRole(r models.UserRole) bool {
	return r == models.RoleAdmin || r == models.RoleAgent
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("password is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// helper: issue a signed JWT for a user
func (s *UserService) issueToken(u models.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: u.ID,
		Role:   u.Role,
	})
	return token.SignedString([]byte(s.cfg.SigningKey))
}
