package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/sleepsound/storefront/internal/models"
)

// EnsureMainAdmin creates the single main administrator when it does not
// exist yet. On an empty store it receives id 1, which the plaintext token
// contract ("admin-1") relies on.
func EnsureMainAdmin(ctx context.Context, s AdminStore, username, passwordHash string) error {
	_, err := s.AdminByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("lookup main admin: %w", err)
	}
	return s.CreateAdmin(ctx, &models.Admin{
		Username:     username,
		PasswordHash: passwordHash,
		Role:         models.AdminRoleSuper,
		Status:       models.AdminStatusApproved,
		IsMain:       true,
	})
}

// EnsureCatalog loads the demo catalog once, on an empty product store.
func EnsureCatalog(ctx context.Context, s ProductStore) error {
	existing, err := s.ListProducts(ctx)
	if err != nil {
		return fmt.Errorf("list products: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}
	for i := range defaultCatalog {
		p := defaultCatalog[i]
		if err := s.CreateProduct(ctx, &p); err != nil {
			return fmt.Errorf("seed product %d: %w", p.ID, err)
		}
	}
	return nil
}

var defaultCatalog = []models.Product{
	{ID: 1, Name: "Casual Hoodie", Category: "Men", Price: 1499, Description: "Relaxed-fit hoodie with adjustable hood"},
	{ID: 2, Name: "Casual Trousers", Category: "Men", Price: 1299, Description: "Breathable cotton trousers with adjustable waist"},
	{ID: 3, Name: "Casual Sneakers", Category: "Footwear", Price: 2199, Description: "Everyday sneakers with cushioned sole"},
	{ID: 4, Name: "Casual Shirt", Category: "Women", Price: 999, Description: "Comfortable fit, breathable fabric"},
	{ID: 5, Name: "Kids Bodysuit", Category: "Boys", Price: 599, Description: "Comfortable and stylish clothing for your little ones"},
}
