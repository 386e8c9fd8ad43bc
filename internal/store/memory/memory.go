// Package memory is the reference store: plain slices behind one mutex,
// nothing survives the process.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/sleepsound/storefront/internal/models"
	"github.com/sleepsound/storefront/internal/store"
)

type Store struct {
	mu sync.Mutex

	users      []models.User
	admins     []models.Admin
	orders     []models.Order
	products   []models.Product
	nextUserID int
	nextAdmID  int
}

var _ store.Store = (*Store)(nil)

func New() *Store {
	return &Store{}
}

// ---- users ----

func (s *Store) CreateUser(_ context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if strings.EqualFold(s.users[i].Email, u.Email) {
			return store.ErrDuplicate
		}
	}
	s.nextUserID++
	u.ID = s.nextUserID
	s.users = append(s.users, *u)
	return nil
}

func (s *Store) UserByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if strings.EqualFold(s.users[i].Email, email) {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) UserByID(_ context.Context, id int) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, store.ErrNotFound
}

// ---- admins ----

func (s *Store) CreateAdmin(_ context.Context, a *models.Admin) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.admins {
		if s.admins[i].Username == a.Username {
			return store.ErrDuplicate
		}
	}
	s.nextAdmID++
	a.ID = s.nextAdmID
	s.admins = append(s.admins, *a)
	return nil
}

func (s *Store) AdminByID(_ context.Context, id int) (*models.Admin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.admins {
		if s.admins[i].ID == id {
			a := s.admins[i]
			return &a, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) AdminByUsername(_ context.Context, username string) (*models.Admin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.admins {
		if s.admins[i].Username == username {
			a := s.admins[i]
			return &a, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) ListAdmins(_ context.Context, status string) ([]models.Admin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Admin, 0, len(s.admins))
	for i := range s.admins {
		if status == "" || s.admins[i].Status == status {
			out = append(out, s.admins[i])
		}
	}
	return out, nil
}

func (s *Store) UpdateAdminStatus(_ context.Context, id int, status string) (*models.Admin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.admins {
		if s.admins[i].ID == id {
			s.admins[i].Status = status
			a := s.admins[i]
			return &a, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) DeleteAdmin(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.admins {
		if s.admins[i].ID == id {
			s.admins = append(s.admins[:i], s.admins[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

// ---- orders ----

func (s *Store) CreateOrder(_ context.Context, o *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == o.ID {
			return store.ErrDuplicate
		}
	}
	// newest first
	s.orders = append([]models.Order{*o}, s.orders...)
	return nil
}

func (s *Store) OrderByID(_ context.Context, id string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			o := cloneOrder(s.orders[i])
			return &o, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) ListOrders(_ context.Context) ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Order, 0, len(s.orders))
	for i := range s.orders {
		out = append(out, cloneOrder(s.orders[i]))
	}
	return out, nil
}

func (s *Store) UpdateOrderStatus(_ context.Context, id, status string, location *string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = status
			if location != nil {
				s.orders[i].Location = *location
			}
			o := cloneOrder(s.orders[i])
			return &o, nil
		}
	}
	return nil, store.ErrNotFound
}

func cloneOrder(o models.Order) models.Order {
	items := make([]models.OrderItem, len(o.Items))
	copy(items, o.Items)
	o.Items = items
	return o
}

// ---- products ----

func (s *Store) CreateProduct(_ context.Context, p *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == p.ID {
			return store.ErrDuplicate
		}
	}
	s.products = append(s.products, *p)
	return nil
}

func (s *Store) ProductByID(_ context.Context, id int) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			p := s.products[i]
			return &p, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) ListProducts(_ context.Context) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out, nil
}

func (s *Store) UpdateProductPrice(_ context.Context, id, price int) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products[i].Price = price
			p := s.products[i]
			return &p, nil
		}
	}
	return nil, store.ErrNotFound
}
