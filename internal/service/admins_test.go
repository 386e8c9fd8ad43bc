package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sleepsound/storefront/internal/events"
	"github.com/sleepsound/storefront/internal/hash"
	"github.com/sleepsound/storefront/internal/models"
	"github.com/sleepsound/storefront/internal/store"
	"github.com/sleepsound/storefront/internal/store/memory"
)

// newAdminService seeds the main admin (id 1, password "sleep123") the way
// the server does at startup.
func newAdminService(t *testing.T) *AdminService {
	t.Helper()
	s := memory.New()
	pwHash, err := hash.HashPassword("sleep123")
	require.NoError(t, err)
	require.NoError(t, store.EnsureMainAdmin(context.Background(), s, "admin", pwHash))
	return NewAdminService(s, events.Noop{})
}

func TestAdminRegister_AlwaysPending(t *testing.T) {
	t.Parallel()

	svc := newAdminService(t)
	ctx := context.Background()

	admin, err := svc.Register(ctx, "newbie", "secret")
	require.NoError(t, err)
	assert.Equal(t, 2, admin.ID)
	assert.Equal(t, models.AdminStatusPending, admin.Status)
	assert.Equal(t, models.AdminRoleAdmin, admin.Role)
	assert.False(t, admin.IsMain)
}

func TestAdminRegister_Validation(t *testing.T) {
	t.Parallel()

	svc := newAdminService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "", "secret")
	require.ErrorIs(t, err, ErrMissingFields)

	_, err = svc.Register(ctx, "newbie", "")
	require.ErrorIs(t, err, ErrMissingFields)

	_, err = svc.Register(ctx, "admin", "secret")
	require.ErrorIs(t, err, ErrUsernameTaken)
}

func TestAdminLogin(t *testing.T) {
	t.Parallel()

	svc := newAdminService(t)
	ctx := context.Background()

	admin, token, err := svc.Login(ctx, "admin", "sleep123")
	require.NoError(t, err)
	assert.Equal(t, "admin-1", token)
	assert.True(t, admin.IsMain)

	_, _, err = svc.Login(ctx, "admin", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "nobody", "sleep123")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAdminLogin_PendingAndRejected(t *testing.T) {
	t.Parallel()

	svc := newAdminService(t)
	ctx := context.Background()

	pending, err := svc.Register(ctx, "pending_admin", "secret")
	require.NoError(t, err)

	_, token, err := svc.Login(ctx, "pending_admin", "secret")
	require.ErrorIs(t, err, ErrPendingApproval)
	assert.Empty(t, token)

	_, err = svc.Reject(ctx, pending.ID)
	require.NoError(t, err)

	_, token, err = svc.Login(ctx, "pending_admin", "secret")
	require.ErrorIs(t, err, ErrRejected)
	assert.Empty(t, token)
}

func TestAdminApproveEnablesLogin(t *testing.T) {
	t.Parallel()

	svc := newAdminService(t)
	ctx := context.Background()

	created, err := svc.Register(ctx, "helper", "secret")
	require.NoError(t, err)

	approved, err := svc.Approve(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AdminStatusApproved, approved.Status)

	admin, token, err := svc.Login(ctx, "helper", "secret")
	require.NoError(t, err)
	assert.Equal(t, AdminToken(created.ID), token)
	assert.False(t, admin.IsMain)
}

func TestAdminDecide_NotFound(t *testing.T) {
	t.Parallel()

	svc := newAdminService(t)
	ctx := context.Background()

	_, err := svc.Approve(ctx, 999)
	require.ErrorIs(t, err, ErrAdminNotFound)

	_, err = svc.Reject(ctx, 999)
	require.ErrorIs(t, err, ErrAdminNotFound)
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	svc := newAdminService(t)
	ctx := context.Background()

	helper, err := svc.Register(ctx, "helper", "secret")
	require.NoError(t, err)

	tests := []struct {
		name     string
		header   string
		mainOnly bool
		wantErr  error
	}{
		{name: "no header", header: "", wantErr: ErrTokenRequired},
		{name: "malformed", header: "Bearer nonsense", wantErr: ErrTokenRequired},
		{name: "unknown id", header: "Bearer admin-999", wantErr: ErrTokenRequired},
		{name: "pending admin", header: "Bearer admin-2", wantErr: ErrNotApproved},
		{name: "main ok", header: "Bearer admin-1", wantErr: nil},
		{name: "main ok bare", header: "admin-1", wantErr: nil},
		{name: "main only as main", header: "Bearer admin-1", mainOnly: true, wantErr: nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			admin, err := svc.Authenticate(ctx, tt.header, tt.mainOnly)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, admin)
		})
	}

	// approved but not main
	_, err = svc.Approve(ctx, helper.ID)
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, AdminToken(helper.ID), false)
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, AdminToken(helper.ID), true)
	require.ErrorIs(t, err, ErrMainOnly)
}

func TestAuthenticate_RemovedAdminLosesAccess(t *testing.T) {
	t.Parallel()

	svc := newAdminService(t)
	ctx := context.Background()

	helper, err := svc.Register(ctx, "helper", "secret")
	require.NoError(t, err)
	_, err = svc.Approve(ctx, helper.ID)
	require.NoError(t, err)

	token := AdminToken(helper.ID)
	_, err = svc.Authenticate(ctx, token, false)
	require.NoError(t, err)

	require.NoError(t, svc.Remove(ctx, helper.ID))

	_, err = svc.Authenticate(ctx, token, false)
	require.ErrorIs(t, err, ErrTokenRequired)
}

func TestAdminRemove(t *testing.T) {
	t.Parallel()

	svc := newAdminService(t)
	ctx := context.Background()

	helper, err := svc.Register(ctx, "helper", "secret")
	require.NoError(t, err)

	require.NoError(t, svc.Remove(ctx, helper.ID))
	require.ErrorIs(t, svc.Remove(ctx, helper.ID), ErrAdminNotFound)

	// the main admin is protected, even when targeted by its own id
	require.ErrorIs(t, svc.Remove(ctx, 1), ErrMainProtected)
}

func TestAdminPendingList(t *testing.T) {
	t.Parallel()

	svc := newAdminService(t)
	ctx := context.Background()

	pending, err := svc.Pending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)

	_, err = svc.Register(ctx, "first", "secret")
	require.NoError(t, err)
	_, err = svc.Register(ctx, "second", "secret")
	require.NoError(t, err)

	pending, err = svc.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 2)

	all, err := svc.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
