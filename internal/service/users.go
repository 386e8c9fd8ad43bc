package service

import (
	"context"
	"errors"

	"github.com/sleepsound/storefront/internal/events"
	"github.com/sleepsound/storefront/internal/hash"
	"github.com/sleepsound/storefront/internal/logging"
	"github.com/sleepsound/storefront/internal/models"
	"github.com/sleepsound/storefront/internal/store"
	"github.com/sleepsound/storefront/internal/transport"
)

type UserService struct {
	Store  store.UserStore
	Events events.Publisher
}

func NewUserService(s store.UserStore, p events.Publisher) *UserService {
	return &UserService{Store: s, Events: p}
}

func (s *UserService) Register(ctx context.Context, req transport.RegisterUserRequest) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "users.register")

	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, ErrMissingFields
	}

	pwHash, err := hash.HashPassword(req.Password)
	if err != nil {
		l.Error("register_error", "reason", "cannot hash password", "error", err)
		return nil, err
	}

	user := &models.User{Name: req.Name, Email: req.Email, PasswordHash: pwHash}
	if err := s.Store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			l.Warn("register_error", "status", 400, "reason", "email taken")
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	s.Events.Publish(ctx, UserToken(user.ID), events.Event{
		Type: events.TypeUserRegistered,
		Data: map[string]any{"user_id": user.ID, "email": user.Email},
	})
	l.Info("user registered", "user_id", user.ID)
	return user, nil
}

// Login returns the user and its "user-<id>" token. Failures are always
// the generic invalid-credentials error, never "unknown email".
func (s *UserService) Login(ctx context.Context, req transport.LoginUserRequest) (*models.User, string, error) {
	l := logging.FromContext(ctx).With("svc", "users.login")

	user, err := s.Store.UserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			l.Warn("login_failed", "status", 401)
			return nil, "", ErrInvalidLogin
		}
		return nil, "", err
	}
	if !hash.CheckPassword(user.PasswordHash, req.Password) {
		l.Warn("login_failed", "status", 401)
		return nil, "", ErrInvalidLogin
	}

	l.Info("login_successful", "user_id", user.ID)
	return user, UserToken(user.ID), nil
}
