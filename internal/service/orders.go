package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sleepsound/storefront/internal/events"
	"github.com/sleepsound/storefront/internal/logging"
	"github.com/sleepsound/storefront/internal/models"
	"github.com/sleepsound/storefront/internal/store"
	"github.com/sleepsound/storefront/internal/transport"
)

type OrderService struct {
	Store  store.OrderStore
	Events events.Publisher
}

func NewOrderService(s store.OrderStore, p events.Publisher) *OrderService {
	return &OrderService{Store: s, Events: p}
}

// NewOrderID returns ids like "SS-2026-3F0A": the order year plus four hex
// characters cut from a fresh UUID. Collisions are not handled; 65536 codes
// per year is plenty for a demo.
func NewOrderID(now time.Time) string {
	code := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:4])
	return fmt.Sprintf("SS-%d-%s", now.Year(), code)
}

func (s *OrderService) Create(ctx context.Context, req transport.CreateOrderRequest) (*models.Order, error) {
	l := logging.FromContext(ctx).With("svc", "orders.create")

	if req.Branch == "" || len(req.Items) == 0 || req.Total == nil {
		return nil, ErrMissingFields
	}

	customer := models.GuestCustomer()
	if req.Customer != nil && (req.Customer.Name != "" || req.Customer.Email != "") {
		customer = *req.Customer
	}
	method := req.PaymentMethod
	if method == "" {
		method = models.PaymentMethodDefault
	}

	now := time.Now().UTC()
	order := &models.Order{
		ID:            NewOrderID(now),
		Date:          now,
		Total:         *req.Total,
		Status:        models.OrderStatusPlaced,
		Branch:        req.Branch,
		Items:         req.Items,
		Customer:      customer,
		PaymentMethod: method,
		PaymentStatus: models.PaymentStatusPending,
	}
	if err := s.Store.CreateOrder(ctx, order); err != nil {
		return nil, err
	}

	s.Events.Publish(ctx, order.ID, events.Event{
		Type: events.TypeOrderCreated,
		Data: map[string]any{"order_id": order.ID, "branch": order.Branch, "total": order.Total},
	})
	l.Info("order created", "order_id", order.ID, "branch", order.Branch)
	return order, nil
}

func (s *OrderService) Get(ctx context.Context, id string) (*models.Order, error) {
	order, err := s.Store.OrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

func (s *OrderService) List(ctx context.Context) ([]models.Order, error) {
	return s.Store.ListOrders(ctx)
}

// UpdateStatus overwrites the status with any non-empty string; there is no
// status enum and no transition history. Location is set only when present.
func (s *OrderService) UpdateStatus(ctx context.Context, id string, req transport.UpdateOrderStatusRequest) (*models.Order, error) {
	l := logging.FromContext(ctx).With("svc", "orders.update_status")

	if req.Status == "" {
		return nil, ErrMissingStatus
	}

	order, err := s.Store.UpdateOrderStatus(ctx, id, req.Status, req.Location)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	s.Events.Publish(ctx, order.ID, events.Event{
		Type: events.TypeOrderStatusUpdated,
		Data: map[string]any{"order_id": order.ID, "status": order.Status},
	})
	l.Info("order status updated", "order_id", order.ID, "new_status", order.Status)
	return order, nil
}
