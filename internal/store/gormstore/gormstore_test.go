package gormstore

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sleepsound/storefront/internal/config"
	"github.com/sleepsound/storefront/internal/models"
	"github.com/sleepsound/storefront/internal/store"
)

// newTestStore opens a private in-memory database per test. cache=shared
// keeps every pooled connection on the same database.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	s, err := Open(config.DriverSQLite, dsn)
	require.NoError(t, err)
	return s
}

func TestOpen_UnknownDriver(t *testing.T) {
	t.Parallel()

	_, err := Open("oracle", "dsn")
	require.Error(t, err)
}

func TestUsers(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()

	u := &models.User{Name: "Asha", Email: "asha@example.com", PasswordHash: "hash"}
	require.NoError(t, s.CreateUser(ctx, u))
	require.NotZero(t, u.ID)

	err := s.CreateUser(ctx, &models.User{Name: "Other", Email: "asha@example.com", PasswordHash: "hash"})
	require.ErrorIs(t, err, store.ErrDuplicate)

	got, err := s.UserByEmail(ctx, "asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = s.UserByEmail(ctx, "nobody@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.UserByID(ctx, 999)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestAdmins(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()

	main := &models.Admin{Username: "admin", PasswordHash: "hash", Role: models.AdminRoleSuper, Status: models.AdminStatusApproved, IsMain: true}
	require.NoError(t, s.CreateAdmin(ctx, main))

	helper := &models.Admin{Username: "helper", PasswordHash: "hash", Role: models.AdminRoleAdmin, Status: models.AdminStatusPending}
	require.NoError(t, s.CreateAdmin(ctx, helper))

	err := s.CreateAdmin(ctx, &models.Admin{Username: "helper", PasswordHash: "hash"})
	require.ErrorIs(t, err, store.ErrDuplicate)

	pending, err := s.ListAdmins(ctx, models.AdminStatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "helper", pending[0].Username)

	all, err := s.ListAdmins(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	updated, err := s.UpdateAdminStatus(ctx, helper.ID, models.AdminStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, models.AdminStatusApproved, updated.Status)

	got, err := s.AdminByUsername(ctx, "helper")
	require.NoError(t, err)
	assert.Equal(t, models.AdminStatusApproved, got.Status)

	_, err = s.UpdateAdminStatus(ctx, 999, models.AdminStatusApproved)
	require.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, s.DeleteAdmin(ctx, helper.ID))
	require.ErrorIs(t, s.DeleteAdmin(ctx, helper.ID), store.ErrNotFound)

	_, err = s.AdminByID(ctx, helper.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestOrders(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()

	first := &models.Order{
		ID:     "SS-2026-AAAA",
		Status: models.OrderStatusPlaced,
		Branch: "Andheri",
		Total:  2499,
		Items: []models.OrderItem{
			{ProductID: 1, Name: "Casual Hoodie", Price: 2499, Quantity: 1, Size: "M"},
		},
		Customer:      models.GuestCustomer(),
		PaymentMethod: models.PaymentMethodDefault,
		PaymentStatus: models.PaymentStatusPending,
	}
	require.NoError(t, s.CreateOrder(ctx, first))

	second := &models.Order{ID: "SS-2026-BBBB", Status: models.OrderStatusPlaced, Branch: "Thane", Customer: models.GuestCustomer()}
	require.NoError(t, s.CreateOrder(ctx, second))

	got, err := s.OrderByID(ctx, "SS-2026-AAAA")
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "Casual Hoodie", got.Items[0].Name)
	assert.Equal(t, "Guest", got.Customer.Name)

	_, err = s.OrderByID(ctx, "SS-2026-ZZZZ")
	require.ErrorIs(t, err, store.ErrNotFound)

	orders, err := s.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "SS-2026-BBBB", orders[0].ID, "newest order first")
	assert.Equal(t, "SS-2026-AAAA", orders[1].ID)

	loc := "Mumbai HQ"
	updated, err := s.UpdateOrderStatus(ctx, "SS-2026-AAAA", "Shipped", &loc)
	require.NoError(t, err)
	assert.Equal(t, "Shipped", updated.Status)
	assert.Equal(t, "Mumbai HQ", updated.Location)

	// nil location leaves the stored one alone
	updated, err = s.UpdateOrderStatus(ctx, "SS-2026-AAAA", "Delivered", nil)
	require.NoError(t, err)
	assert.Equal(t, "Mumbai HQ", updated.Location)

	_, err = s.UpdateOrderStatus(ctx, "SS-2026-ZZZZ", "Shipped", nil)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestProducts(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.EnsureCatalog(ctx, s))

	products, err := s.ListProducts(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, products)

	// a second call must not duplicate the catalog
	require.NoError(t, store.EnsureCatalog(ctx, s))
	again, err := s.ListProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, again, len(products))

	p, err := s.UpdateProductPrice(ctx, products[0].ID, 4242)
	require.NoError(t, err)
	assert.Equal(t, 4242, p.Price)

	got, err := s.ProductByID(ctx, products[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 4242, got.Price)

	_, err = s.UpdateProductPrice(ctx, 999, 100)
	require.ErrorIs(t, err, store.ErrNotFound)
}
