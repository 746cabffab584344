package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/flockhq/flock/internal/members/domain"
	"github.com/flockhq/flock/internal/members/store"
	"github.com/flockhq/flock/pkg/cryptox"
	"github.com/flockhq/flock/pkg/idx"
	"github.com/flockhq/flock/pkg/jwtx"
	"github.com/flockhq/flock/pkg/slogx"
)

var (
	ErrUsernameTaken = errors.New("username_taken")
	ErrEmailTaken    = errors.New("email_taken")
	ErrUnknownChurch = errors.New("unknown_church")

	// ErrInvalidCredentials is deliberately the only authentication
	// failure: callers cannot tell an unknown username from a wrong
	// church from a wrong password.
	ErrInvalidCredentials = errors.New("invalid_credentials")

	// ErrRegistrationFailed wraps an unexpected store failure during the
	// registration write. The cause stays server-side.
	ErrRegistrationFailed = errors.New("registration_failed")
)

// AuthService owns registration and login. It is the only writer that
// creates Person+User pairs; the per-entity CRUD services never do.
type AuthService struct {
	Store     store.Store
	Hasher    *cryptox.Hasher
	Signer    jwtx.Signer
	Issuer    string
	AccessTTL time.Duration
}

// RegisterParams is the full registration payload: account fields plus
// the person profile created alongside.
type RegisterParams struct {
	Username   string
	Password   string
	ChurchName string
	RoleID     string
	Firstname  string
	Lastname   string
	Email      string
	Phone      *string
}

// Register creates a linked Person+User pair.
//
// Conflict pre-checks fail fast before anything is written; the unique
// indexes remain the final arbiter for concurrent registrations, so a
// race that slips past the pre-check still comes back as the matching
// conflict error rather than ErrRegistrationFailed. The Person and User
// inserts happen in one transaction: either both land or neither does.
func (s *AuthService) Register(ctx context.Context, p RegisterParams) (domain.UserDetail, error) {
	log := slogx.FromContext(ctx)

	if _, err := s.Store.Users().GetUserByUsername(ctx, p.Username); err == nil {
		return domain.UserDetail{}, ErrUsernameTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return domain.UserDetail{}, fmt.Errorf("%w: %w", ErrRegistrationFailed, err)
	}

	if _, err := s.Store.Persons().GetPersonByEmail(ctx, p.Email); err == nil {
		return domain.UserDetail{}, ErrEmailTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return domain.UserDetail{}, fmt.Errorf("%w: %w", ErrRegistrationFailed, err)
	}

	church, err := s.Store.Churches().GetChurchByName(ctx, p.ChurchName)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.UserDetail{}, ErrUnknownChurch
		}
		return domain.UserDetail{}, fmt.Errorf("%w: %w", ErrRegistrationFailed, err)
	}

	hash, err := s.Hasher.Hash(p.Password)
	if err != nil {
		return domain.UserDetail{}, fmt.Errorf("%w: %w", ErrRegistrationFailed, err)
	}

	var detail domain.UserDetail
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		person := domain.Person{
			ID:        idx.New().String(),
			Firstname: p.Firstname,
			Lastname:  p.Lastname,
			Email:     p.Email,
			Phone:     p.Phone,
		}
		if err := tx.Persons().CreatePerson(ctx, person); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrEmailTaken
			}
			return err
		}

		user := domain.User{
			ID:           idx.New().String(),
			Username:     p.Username,
			PasswordHash: hash,
			RoleID:       p.RoleID,
			ChurchID:     church.ID,
			PersonID:     person.ID,
		}
		if err := tx.Users().CreateUser(ctx, user); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrUsernameTaken
			}
			return err
		}

		detail, err = tx.Users().GetUserDetailByID(ctx, user.ID)
		return err
	})
	if err != nil {
		if errors.Is(err, ErrUsernameTaken) || errors.Is(err, ErrEmailTaken) {
			return domain.UserDetail{}, err
		}
		return domain.UserDetail{}, fmt.Errorf("%w: %w", ErrRegistrationFailed, err)
	}

	log.Info("user registered",
		slog.String("user_id", detail.ID),
		slog.String("church_id", church.ID),
	)
	return detail, nil
}

// Authenticate verifies the (username, password, church name) credential
// triple and issues a signed bearer token on success. Nothing is
// persisted; the token itself is the session.
func (s *AuthService) Authenticate(
	ctx context.Context,
	username, password, churchName string,
) (domain.AccessGrant, error) {
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.AccessGrant{}, ErrInvalidCredentials
		}
		return domain.AccessGrant{}, err
	}

	church, err := s.Store.Churches().GetChurchByID(ctx, user.ChurchID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.AccessGrant{}, ErrInvalidCredentials
		}
		return domain.AccessGrant{}, err
	}
	if church.Name != churchName {
		log.Info("login failed", slog.String("username", username))
		return domain.AccessGrant{}, ErrInvalidCredentials
	}

	if err := s.Hasher.Verify(password, user.PasswordHash); err != nil {
		log.Info("login failed", slog.String("username", username))
		return domain.AccessGrant{}, ErrInvalidCredentials
	}

	now := time.Now().UTC()
	claims := jwtx.NewAccessClaims(user.ID, user.Username, s.Issuer, s.AccessTTL, now)
	token, err := s.Signer.Sign(claims)
	if err != nil {
		return domain.AccessGrant{}, err
	}

	return domain.AccessGrant{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   s.AccessTTL,
	}, nil
}
