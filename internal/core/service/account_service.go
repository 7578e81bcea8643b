package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/adopet/account-service/internal/core/domain"
	"github.com/adopet/account-service/internal/core/ports"
)

// ActivityRecorder abstracts the async audit trail (the queue dispatcher).
// Enqueue must never block the request path.
type ActivityRecorder interface {
	Enqueue(in ports.ActivityInput)
}

// ProfileCache abstracts the by-id profile cache (Redis). Only
// invalidation is needed here; reads happen in the authorization pipeline.
type ProfileCache interface {
	Invalidate(ctx context.Context, id string) error
}

// AccountService implements registration, login, and profile updates.
type AccountService struct {
	repo     ports.UserRepository
	hasher   *PasswordHasher
	tokens   *TokenIssuer
	activity ActivityRecorder
	cache    ProfileCache
	log      zerolog.Logger
}

// NewAccountService wires the account operations. activity and cache may
// be nil, in which case recording and invalidation are skipped.
func NewAccountService(
	repo ports.UserRepository,
	hasher *PasswordHasher,
	tokens *TokenIssuer,
	activity ActivityRecorder,
	cache ProfileCache,
	log zerolog.Logger,
) *AccountService {
	return &AccountService{
		repo:     repo,
		hasher:   hasher,
		tokens:   tokens,
		activity: activity,
		cache:    cache,
		log:      log,
	}
}

// Register creates a new account and returns a token for it.
// Required fields are checked one at a time, name first, so a request
// missing several fields still receives a single deterministic error.
func (s *AccountService) Register(ctx context.Context, in ports.RegisterInput) (string, *domain.User, error) {
	if in.Name == "" {
		return "", nil, domain.ErrNameRequired
	}
	if in.Email == "" {
		return "", nil, domain.ErrEmailRequired
	}
	if in.Password == "" {
		return "", nil, domain.ErrPasswordRequired
	}

	// Best-effort existence check; the unique index on email is the real
	// backstop against concurrent signups with the same address.
	if _, err := s.repo.FindByEmail(ctx, in.Email); err == nil {
		return "", nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return "", nil, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Issue(created.ID)
	if err != nil {
		return "", nil, err
	}

	s.record(created.ID, domain.ActivitySignup)
	s.log.Info().Str("user_id", created.ID).Msg("user registered")

	return token, created, nil
}

// Login authenticates by email and password. An unknown email and a wrong
// password are indistinguishable to the caller: both return
// domain.ErrUserNotFound so the response never reveals whether the
// account exists.
func (s *AccountService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" {
		return "", nil, domain.ErrEmailRequired
	}
	if password == "" {
		return "", nil, domain.ErrPasswordRequired
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", nil, domain.ErrUserNotFound
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", nil, err
	}

	s.record(user.ID, domain.ActivityLogin)
	s.log.Info().Str("user_id", user.ID).Msg("user authenticated")

	return token, user, nil
}

// UpdateProfile overwrites the mutable fields with the given values and
// drops the cached projection so the next read sees the new state.
func (s *AccountService) UpdateProfile(ctx context.Context, id string, update ports.ProfileUpdate) (*domain.User, error) {
	user, err := s.repo.UpdateProfile(ctx, id, update)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, id); err != nil {
			s.log.Warn().Err(err).Str("user_id", id).Msg("profile cache invalidation failed")
		}
	}

	s.record(id, domain.ActivityProfileUpdate)
	s.log.Info().Str("user_id", id).Msg("profile updated")

	return user, nil
}

func (s *AccountService) record(userID string, kind domain.ActivityKind) {
	if s.activity == nil {
		return
	}
	s.activity.Enqueue(ports.ActivityInput{
		UserID:    userID,
		Kind:      kind,
		Timestamp: time.Now().UTC(),
	})
}
