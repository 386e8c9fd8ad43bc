// Package gormstore backs the repositories onto a relational database.
// The sqlite driver with the in-memory DSN keeps the demo non-persistent;
// postgres is for running against a real database.
package gormstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/sleepsound/storefront/internal/config"
	"github.com/sleepsound/storefront/internal/models"
	"github.com/sleepsound/storefront/internal/store"
)

type Store struct {
	db *gorm.DB
}

var _ store.Store = (*Store)(nil)

func Open(driver, dsn string) (*Store, error) {
	var dialector gorm.Dialector
	switch driver {
	case config.DriverSQLite:
		dialector = sqlite.Open(dsn)
	case config.DriverPostgres:
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported store driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Admin{}, &models.Order{}, &models.OrderItem{}, &models.Product{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// New wraps an already-open gorm handle; tests use it with their own DSN.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) DB() *gorm.DB { return s.db }

// ---- users ----

func (s *Store) CreateUser(ctx context.Context, u *models.User) error {
	var existing models.User
	err := s.db.WithContext(ctx).Where("email = ?", u.Email).First(&existing).Error
	if err == nil {
		return store.ErrDuplicate
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return s.db.WithContext(ctx).Create(u).Error
}

func (s *Store) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, mapErr(err)
	}
	return &u, nil
}

func (s *Store) UserByID(ctx context.Context, id int) (*models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, mapErr(err)
	}
	return &u, nil
}

// ---- admins ----

func (s *Store) CreateAdmin(ctx context.Context, a *models.Admin) error {
	var existing models.Admin
	err := s.db.WithContext(ctx).Where("username = ?", a.Username).First(&existing).Error
	if err == nil {
		return store.ErrDuplicate
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return s.db.WithContext(ctx).Create(a).Error
}

func (s *Store) AdminByID(ctx context.Context, id int) (*models.Admin, error) {
	var a models.Admin
	if err := s.db.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, mapErr(err)
	}
	return &a, nil
}

func (s *Store) AdminByUsername(ctx context.Context, username string) (*models.Admin, error) {
	var a models.Admin
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&a).Error; err != nil {
		return nil, mapErr(err)
	}
	return &a, nil
}

func (s *Store) ListAdmins(ctx context.Context, status string) ([]models.Admin, error) {
	q := s.db.WithContext(ctx).Model(&models.Admin{}).Order("id ASC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var admins []models.Admin
	if err := q.Find(&admins).Error; err != nil {
		return nil, err
	}
	return admins, nil
}

func (s *Store) UpdateAdminStatus(ctx context.Context, id int, status string) (*models.Admin, error) {
	a, err := s.AdminByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(a).Update("status", status).Error; err != nil {
		return nil, err
	}
	a.Status = status
	return a, nil
}

func (s *Store) DeleteAdmin(ctx context.Context, id int) error {
	res := s.db.WithContext(ctx).Delete(&models.Admin{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// ---- orders ----

func (s *Store) CreateOrder(ctx context.Context, o *models.Order) error {
	return s.db.WithContext(ctx).Create(o).Error
}

func (s *Store) OrderByID(ctx context.Context, id string) (*models.Order, error) {
	var o models.Order
	if err := s.db.WithContext(ctx).Preload("Items").Where("id = ?", id).First(&o).Error; err != nil {
		return nil, mapErr(err)
	}
	return &o, nil
}

func (s *Store) ListOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	// seq DESC = insertion order reversed, same contract as insert-at-head
	if err := s.db.WithContext(ctx).Preload("Items").Order("seq DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *Store) UpdateOrderStatus(ctx context.Context, id, status string, location *string) (*models.Order, error) {
	o, err := s.OrderByID(ctx, id)
	if err != nil {
		return nil, err
	}
	updates := map[string]any{"status": status}
	o.Status = status
	if location != nil {
		updates["location"] = *location
		o.Location = *location
	}
	if err := s.db.WithContext(ctx).Model(&models.Order{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return o, nil
}

// ---- products ----

func (s *Store) CreateProduct(ctx context.Context, p *models.Product) error {
	return s.db.WithContext(ctx).Create(p).Error
}

func (s *Store) ProductByID(ctx context.Context, id int) (*models.Product, error) {
	var p models.Product
	if err := s.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, mapErr(err)
	}
	return &p, nil
}

func (s *Store) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *Store) UpdateProductPrice(ctx context.Context, id, price int) (*models.Product, error) {
	p, err := s.ProductByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(p).Update("price", price).Error; err != nil {
		return nil, err
	}
	p.Price = price
	return p, nil
}

func mapErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return store.ErrNotFound
	}
	return err
}
