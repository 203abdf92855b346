package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"handicraft-server/models"
	"handicraft-server/repositories"
)

type OrderNotifier interface {
	SendOrderConfirmation(order models.Order) error
}

type OrderService struct {
	orderRepo repositories.OrderRepository
	notifier  OrderNotifier
	logger    *slog.Logger
	now       func() time.Time
	pending   sync.WaitGroup
}

// NewOrderService accepts a nil notifier; confirmation mail is then skipped.
// Mail is sent in the background so checkout never waits on SMTP.
func NewOrderService(orderRepo repositories.OrderRepository, notifier OrderNotifier, logger *slog.Logger) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		notifier:  notifier,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *OrderService) GetAllOrders(ctx context.Context) ([]models.Order, error) {
	return s.orderRepo.FindAll(ctx)
}

func (s *OrderService) GetOrdersByUserEmail(ctx context.Context, email string) ([]models.Order, error) {
	return s.orderRepo.FindByUserEmail(ctx, email)
}

// CreateOrder does not check that the product or the user exist.
func (s *OrderService) CreateOrder(ctx context.Context, req models.CreateOrderRequest) (*models.InsertResult, error) {
	now := s.now().UTC()
	order := &models.Order{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		UserEmail: req.UserEmail,
		CreatedAt: &now,
	}

	result, err := s.orderRepo.Create(ctx, order)
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.pending.Add(1)
		go s.sendConfirmation(*order)
	}

	return result, nil
}

// sendConfirmation runs off the request path. A failure is logged and does
// not affect the stored order.
func (s *OrderService) sendConfirmation(order models.Order) {
	defer s.pending.Done()

	if err := s.notifier.SendOrderConfirmation(order); err != nil {
		s.logger.Warn("order confirmation email failed",
			"order_id", order.ID.Hex(),
			"email", order.UserEmail,
			"error", err,
		)
	}
}

// Wait blocks until every confirmation mail started so far has been handed
// to the notifier.
func (s *OrderService) Wait() {
	s.pending.Wait()
}
