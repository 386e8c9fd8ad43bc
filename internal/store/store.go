package store

import (
	"context"
	"errors"

	"github.com/sleepsound/storefront/internal/models"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)

// UserStore holds customer accounts. CreateUser assigns the next id from a
// monotonic counter; ids are never reused.
type UserStore interface {
	CreateUser(ctx context.Context, u *models.User) error
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	UserByID(ctx context.Context, id int) (*models.User, error)
}

type AdminStore interface {
	CreateAdmin(ctx context.Context, a *models.Admin) error
	AdminByID(ctx context.Context, id int) (*models.Admin, error)
	AdminByUsername(ctx context.Context, username string) (*models.Admin, error)
	// ListAdmins filters by status; an empty status returns every record.
	ListAdmins(ctx context.Context, status string) ([]models.Admin, error)
	UpdateAdminStatus(ctx context.Context, id int, status string) (*models.Admin, error)
	DeleteAdmin(ctx context.Context, id int) error
}

// OrderStore keeps orders newest first: CreateOrder inserts at the head and
// ListOrders returns the current head-first sequence.
type OrderStore interface {
	CreateOrder(ctx context.Context, o *models.Order) error
	OrderByID(ctx context.Context, id string) (*models.Order, error)
	ListOrders(ctx context.Context) ([]models.Order, error)
	UpdateOrderStatus(ctx context.Context, id, status string, location *string) (*models.Order, error)
}

type ProductStore interface {
	CreateProduct(ctx context.Context, p *models.Product) error
	ProductByID(ctx context.Context, id int) (*models.Product, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
	UpdateProductPrice(ctx context.Context, id, price int) (*models.Product, error)
}

type Store interface {
	UserStore
	AdminStore
	OrderStore
	ProductStore
}
