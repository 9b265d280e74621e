package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const defaultBcryptCost = 10

type Options struct {
	BcryptCost int
	Cache      Cache
	CacheTTL   time.Duration
}

type Service struct {
	repo       Repository
	tokens     TokenIssuer
	bcryptCost int
	cache      Cache
	cacheTTL   time.Duration
}

func NewService(repo Repository, tokens TokenIssuer, opts Options) *Service {
	cost := opts.BcryptCost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = defaultBcryptCost
	}
	cache := opts.Cache
	if cache == nil {
		cache = noopCache{}
	}

	return &Service{
		repo:       repo,
		tokens:     tokens,
		bcryptCost: cost,
		cache:      cache,
		cacheTTL:   opts.CacheTTL,
	}
}

func (s *Service) Register(ctx context.Context, input RegisterInput) (*Session, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	input.Role = strings.TrimSpace(input.Role)

	switch {
	case input.Name == "":
		return nil, ErrNameRequired
	case input.Email == "":
		return nil, ErrEmailRequired
	case input.Password == "":
		return nil, ErrPasswordRequired
	case !IsValidRole(input.Role):
		return nil, ErrInvalidRole
	}

	existing, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	created := User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         input.Role,
	}
	if err := s.repo.Create(ctx, &created); err != nil {
		return nil, err
	}

	return s.newSession(&created)
}

func (s *Service) Login(ctx context.Context, email, password string) (*Session, error) {
	found, err := s.repo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.newSession(found)
}

// Authenticate returns the user id a token was issued for. It does not
// consult storage; see Verify.
func (s *Service) Authenticate(ctx context.Context, token string) (int64, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return 0, ErrInvalidToken
	}
	userID, err := s.tokens.Parse(token)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return userID, nil
}

// Verify confirms that userID still refers to a stored user.
func (s *Service) Verify(ctx context.Context, userID int64) (*User, error) {
	if cached, ok := s.cache.Get(userID); ok {
		return cached, nil
	}

	found, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if s.cacheTTL > 0 {
		s.cache.Set(userID, found, s.cacheTTL)
	}
	return found, nil
}

func (s *Service) Me(ctx context.Context, userID int64) (PublicUser, error) {
	found, err := s.Verify(ctx, userID)
	if err != nil {
		return PublicUser{}, err
	}
	return found.Public(), nil
}

func (s *Service) newSession(u *User) (*Session, error) {
	token, err := s.tokens.Issue(u.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &Session{Token: token, User: u.Public()}, nil
}
