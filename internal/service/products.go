package service

import (
	"context"
	"errors"

	"github.com/sleepsound/storefront/internal/logging"
	"github.com/sleepsound/storefront/internal/models"
	"github.com/sleepsound/storefront/internal/store"
)

const maxProductPrice = 1_000_000

type ProductService struct {
	Store store.ProductStore
}

func NewProductService(s store.ProductStore) *ProductService {
	return &ProductService{Store: s}
}

func (s *ProductService) List(ctx context.Context) ([]models.Product, error) {
	return s.Store.ListProducts(ctx)
}

func (s *ProductService) Get(ctx context.Context, id int) (*models.Product, error) {
	product, err := s.Store.ProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *ProductService) UpdatePrice(ctx context.Context, id int, price *int) (*models.Product, error) {
	l := logging.FromContext(ctx).With("svc", "products.update_price")

	if price == nil || *price <= 0 || *price > maxProductPrice {
		return nil, ErrInvalidPrice
	}
	product, err := s.Store.UpdateProductPrice(ctx, id, *price)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	l.Info("product price updated", "product_id", id, "price", *price)
	return product, nil
}
