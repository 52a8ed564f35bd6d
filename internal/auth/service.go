package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/gymload/internal/telemetry/tracing"
	"github.com/2beens/gymload/pkg"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=auth_test

type usersRepo interface {
	Add(ctx context.Context, username, passwordHash string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
}

// cachedUser keeps the password hash, which User leaves out of its json.
type cachedUser struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Service struct {
	repo     usersRepo
	cache    *freecache.Cache
	cacheTTL time.Duration
	hashCost int
}

// NewService creates the auth service. Users rows never change after registration,
// so they are cached by username; a nil cache disables caching.
func NewService(repo usersRepo, cache *freecache.Cache, cacheTTL time.Duration, hashCost int) *Service {
	if hashCost <= 0 {
		hashCost = pkg.DefaultHashCost
	}
	return &Service{
		repo:     repo,
		cache:    cache,
		cacheTTL: cacheTTL,
		hashCost: hashCost,
	}
}

func (s *Service) Register(ctx context.Context, username, password string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.auth.register")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	hash, err := pkg.HashPassword(password, s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.repo.Add(ctx, username, hash)
	if err != nil {
		return nil, err
	}

	log.Infof("auth: new user registered: %s [%d]", user.Username, user.ID)
	return user, nil
}

// ResolveUser returns the user identified by the credentials. Unknown users and
// wrong passwords both give ErrInvalidCredentials.
func (s *Service) ResolveUser(ctx context.Context, username, password string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.auth.resolve")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	user, err := s.getUser(ctx, username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !pkg.CheckPasswordHash(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *Service) getUser(ctx context.Context, username string) (*User, error) {
	if user, ok := s.cachedUser(username); ok {
		return user, nil
	}

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	s.cacheUser(user)
	return user, nil
}

func (s *Service) cachedUser(username string) (*User, bool) {
	if s.cache == nil {
		return nil, false
	}

	userBytes, err := s.cache.Get([]byte(username))
	if err != nil {
		// freecache.ErrNotFound
		return nil, false
	}

	var cu cachedUser
	if err := json.Unmarshal(userBytes, &cu); err != nil {
		log.Warnf("auth: unmarshal cached user %s: %s", username, err)
		s.cache.Del([]byte(username))
		return nil, false
	}

	return &User{
		ID:           cu.ID,
		Username:     cu.Username,
		PasswordHash: cu.PasswordHash,
		CreatedAt:    cu.CreatedAt,
	}, true
}

func (s *Service) cacheUser(user *User) {
	if s.cache == nil {
		return
	}

	userBytes, err := json.Marshal(cachedUser{
		ID:           user.ID,
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt,
	})
	if err != nil {
		log.Warnf("auth: marshal user %s for cache: %s", user.Username, err)
		return
	}

	if err := s.cache.Set([]byte(user.Username), userBytes, int(s.cacheTTL.Seconds())); err != nil {
		log.Warnf("auth: cache user %s: %s", user.Username, err)
	}
}
