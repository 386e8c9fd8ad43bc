package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/sleepsound/storefront/internal/events"
	"github.com/sleepsound/storefront/internal/hash"
	"github.com/sleepsound/storefront/internal/logging"
	"github.com/sleepsound/storefront/internal/models"
	"github.com/sleepsound/storefront/internal/store"
)

type AdminService struct {
	Store  store.AdminStore
	Events events.Publisher
}

func NewAdminService(s store.AdminStore, p events.Publisher) *AdminService {
	return &AdminService{Store: s, Events: p}
}

// Register files an admin access request. New admins always start pending
// and never main, whatever the caller sends.
func (s *AdminService) Register(ctx context.Context, username, password string) (*models.Admin, error) {
	l := logging.FromContext(ctx).With("svc", "admins.register")

	if username == "" || password == "" {
		return nil, ErrMissingFields
	}

	pwHash, err := hash.HashPassword(password)
	if err != nil {
		l.Error("register_error", "reason", "cannot hash password", "error", err)
		return nil, err
	}

	admin := &models.Admin{
		Username:     username,
		PasswordHash: pwHash,
		Role:         models.AdminRoleAdmin,
		Status:       models.AdminStatusPending,
		IsMain:       false,
	}
	if err := s.Store.CreateAdmin(ctx, admin); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			l.Warn("register_error", "status", 400, "reason", "username taken")
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	s.Events.Publish(ctx, AdminToken(admin.ID), events.Event{
		Type: events.TypeAdminRegistered,
		Data: map[string]any{"admin_id": admin.ID, "username": admin.Username},
	})
	l.Info("admin registered", "admin_id", admin.ID)
	return admin, nil
}

// Login checks credentials first and approval second, so a pending admin
// with the right password learns it is pending rather than "invalid".
func (s *AdminService) Login(ctx context.Context, username, password string) (*models.Admin, string, error) {
	l := logging.FromContext(ctx).With("svc", "admins.login")

	admin, err := s.Store.AdminByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			l.Warn("login_failed", "status", 401)
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if !hash.CheckPassword(admin.PasswordHash, password) {
		l.Warn("login_failed", "status", 401)
		return nil, "", ErrInvalidCredentials
	}

	switch admin.Status {
	case models.AdminStatusPending:
		l.Warn("login_failed", "status", 403, "reason", "pending")
		return nil, "", ErrPendingApproval
	case models.AdminStatusRejected:
		l.Warn("login_failed", "status", 403, "reason", "rejected")
		return nil, "", ErrRejected
	}

	l.Info("login_successful", "admin_id", admin.ID)
	return admin, AdminToken(admin.ID), nil
}

// Authenticate resolves a bearer token into an approved admin record.
// mainOnly additionally requires IsMain. The caller passes the raw
// Authorization header.
func (s *AdminService) Authenticate(ctx context.Context, authHeader string, mainOnly bool) (*models.Admin, error) {
	id, ok := ParseAdminToken(authHeader)
	if !ok {
		return nil, ErrTokenRequired
	}
	admin, err := s.Store.AdminByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrTokenRequired
		}
		return nil, err
	}
	if admin.Status != models.AdminStatusApproved {
		return nil, ErrNotApproved
	}
	if mainOnly && !admin.IsMain {
		return nil, ErrMainOnly
	}
	return admin, nil
}

func (s *AdminService) Pending(ctx context.Context) ([]models.Admin, error) {
	return s.Store.ListAdmins(ctx, models.AdminStatusPending)
}

func (s *AdminService) All(ctx context.Context) ([]models.Admin, error) {
	return s.Store.ListAdmins(ctx, "")
}

func (s *AdminService) Approve(ctx context.Context, id int) (*models.Admin, error) {
	return s.decide(ctx, id, models.AdminStatusApproved, events.TypeAdminApproved)
}

func (s *AdminService) Reject(ctx context.Context, id int) (*models.Admin, error) {
	return s.decide(ctx, id, models.AdminStatusRejected, events.TypeAdminRejected)
}

func (s *AdminService) decide(ctx context.Context, id int, status, eventType string) (*models.Admin, error) {
	l := logging.FromContext(ctx).With("svc", "admins.decide")

	admin, err := s.Store.UpdateAdminStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}

	s.Events.Publish(ctx, AdminToken(id), events.Event{
		Type: eventType,
		Data: map[string]any{"admin_id": id, "status": status},
	})
	l.Info("admin status updated", "admin_id", id, "new_status", status)
	return admin, nil
}

// Remove deletes an admin. The main admin is never removable, not even by
// itself.
func (s *AdminService) Remove(ctx context.Context, id int) error {
	l := logging.FromContext(ctx).With("svc", "admins.remove")

	target, err := s.Store.AdminByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrAdminNotFound
		}
		return err
	}
	if target.IsMain {
		l.Warn("remove_refused", "status", 400, "admin_id", id)
		return ErrMainProtected
	}
	if err := s.Store.DeleteAdmin(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrAdminNotFound
		}
		return err
	}

	s.Events.Publish(ctx, strconv.Itoa(id), events.Event{
		Type: events.TypeAdminRemoved,
		Data: map[string]any{"admin_id": id, "username": target.Username},
	})
	l.Info("admin removed", "admin_id", id)
	return nil
}
