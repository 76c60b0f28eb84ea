package autoparts

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/playmixer/autoparts/internal/adapters/metrics"
	"github.com/playmixer/autoparts/internal/adapters/store/model"
	"go.uber.org/zap"
)

type OrderItemRequest struct {
	SparePartID uint
	Quantity    int
}

type orderEvent struct {
	OrderID uint   `json:"order_id"`
	Number  string `json:"number"`
	UserID  uint   `json:"user_id"`
	Status  string `json:"status"`
}

type paymentEvent struct {
	PaymentID uint    `json:"payment_id"`
	OrderID   uint    `json:"order_id"`
	UserID    uint    `json:"user_id"`
	Amount    float64 `json:"amount"`
	Status    string  `json:"status"`
}

// CreateOrder builds an order with per-item price snapshots at the user's
// markup and decrements stock according to the oversell policy.
func (a *AutoParts) CreateOrder(ctx context.Context, userID uint, items []OrderItemRequest) (model.Order, error) {
	order := model.Order{}
	if len(items) == 0 {
		return order, ErrOrderEmpty
	}

	user, err := a.store.GetUserByID(ctx, userID)
	if err != nil {
		return order, fmt.Errorf("failed getting user: %w", err)
	}

	order.UserID = userID
	for _, item := range items {
		if item.Quantity <= 0 {
			return order, fmt.Errorf("%w: part %d", ErrQuantityNotValid, item.SparePartID)
		}
		part, err := a.store.GetSparePart(ctx, item.SparePartID)
		if err != nil {
			return order, fmt.Errorf("failed getting spare part: %w", err)
		}
		price := a.PriceForUser(part, user)
		order.Items = append(order.Items, model.OrderItem{
			SparePartID: part.ID,
			Quantity:    item.Quantity,
			Price:       price,
		})
		order.TotalPrice += price * float64(item.Quantity)
	}

	err = a.store.CreateOrder(ctx, &order, a.cfg.Oversell == OversellReject)
	if err != nil {
		return order, fmt.Errorf("failed create order: %w", err)
	}

	metrics.OrdersCreatedTotal.Inc()
	a.publish(ctx, fmt.Sprintf("order-%d", order.ID), orderEvent{
		OrderID: order.ID,
		Number:  order.Number,
		UserID:  order.UserID,
		Status:  string(order.Status),
	})
	a.log.Info("order created",
		zap.Uint("orderID", order.ID),
		zap.String("number", order.Number),
		zap.Uint("userID", userID),
	)

	return order, nil
}

func (a *AutoParts) GetOrder(ctx context.Context, orderID uint) (model.Order, error) {
	order, err := a.store.GetOrder(ctx, orderID)
	if err != nil {
		return order, fmt.Errorf("failed getting order: %w", err)
	}
	return order, nil
}

func (a *AutoParts) ListUserOrders(ctx context.Context, userID uint) ([]*model.Order, error) {
	orders, err := a.store.ListUserOrders(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed getting orders: %w", err)
	}
	return orders, nil
}

func validOrderStatus(status model.OrderStatus) bool {
	switch status {
	case model.OrderStatusPending, model.OrderStatusProcessing, model.OrderStatusShipped,
		model.OrderStatusCompleted, model.OrderStatusCancelled:
		return true
	}
	return false
}

func (a *AutoParts) UpdateOrderStatus(ctx context.Context, orderID uint, status model.OrderStatus, adminID uint) (model.Order, error) {
	order := model.Order{}
	if !validOrderStatus(status) {
		return order, fmt.Errorf("%w: %q", ErrOrderStatusNotValid, status)
	}

	order, err := a.store.UpdateOrderStatus(ctx, orderID, status, adminID)
	if err != nil {
		return order, fmt.Errorf("failed update order status: %w", err)
	}

	a.publish(ctx, fmt.Sprintf("order-%d", order.ID), orderEvent{
		OrderID: order.ID,
		Number:  order.Number,
		UserID:  order.UserID,
		Status:  string(order.Status),
	})

	return order, nil
}

func (a *AutoParts) AddOrderNote(ctx context.Context, orderID uint, text string, adminID uint) (model.Order, error) {
	order := model.Order{}
	if strings.TrimSpace(text) == "" {
		return order, ErrNoteTextRequired
	}

	order, err := a.store.AddOrderNote(ctx, orderID, text, adminID)
	if err != nil {
		return order, fmt.Errorf("failed add order note: %w", err)
	}

	return order, nil
}

func validPaymentStatus(status model.PaymentStatus) bool {
	switch status {
	case model.PaymentPending, model.PaymentCompleted, model.PaymentFailed, model.PaymentRefunded:
		return true
	}
	return false
}

// CreatePayment records a manual payment against an order.
func (a *AutoParts) CreatePayment(ctx context.Context, orderID uint, amount float64, method string, status model.PaymentStatus, notes string, adminID uint) (model.Payment, error) {
	payment := model.Payment{}
	if amount <= 0 {
		return payment, ErrAmountNotPositive
	}
	if status == "" {
		status = model.PaymentPending
	}
	if !validPaymentStatus(status) {
		return payment, fmt.Errorf("%w: %q", ErrPaymentStatusInvalid, status)
	}

	order, err := a.store.GetOrder(ctx, orderID)
	if err != nil {
		return payment, fmt.Errorf("failed getting order: %w", err)
	}

	payment = model.Payment{
		OrderID:       order.ID,
		UserID:        order.UserID,
		Amount:        amount,
		PaymentMethod: method,
		Status:        status,
		Notes:         notes,
		TransactionID: uuid.NewString(),
	}
	if err := a.store.CreatePayment(ctx, &payment); err != nil {
		return payment, fmt.Errorf("failed create payment: %w", err)
	}

	metrics.PaymentsTotal.WithLabelValues(string(payment.Status)).Inc()
	a.publish(ctx, fmt.Sprintf("order-%d", order.ID), paymentEvent{
		PaymentID: payment.ID,
		OrderID:   order.ID,
		UserID:    payment.UserID,
		Amount:    payment.Amount,
		Status:    string(payment.Status),
	})
	a.log.Info("payment created",
		zap.Uint("paymentID", payment.ID),
		zap.Uint("orderID", order.ID),
		zap.Uint("adminID", adminID),
	)

	return payment, nil
}

func (a *AutoParts) UpdatePaymentStatus(ctx context.Context, paymentID uint, status model.PaymentStatus) (model.Payment, error) {
	payment := model.Payment{}
	if !validPaymentStatus(status) {
		return payment, fmt.Errorf("%w: %q", ErrPaymentStatusInvalid, status)
	}

	payment, err := a.store.UpdatePaymentStatus(ctx, paymentID, status)
	if err != nil {
		return payment, fmt.Errorf("failed update payment status: %w", err)
	}

	metrics.PaymentsTotal.WithLabelValues(string(payment.Status)).Inc()
	a.publish(ctx, fmt.Sprintf("order-%d", payment.OrderID), paymentEvent{
		PaymentID: payment.ID,
		OrderID:   payment.OrderID,
		UserID:    payment.UserID,
		Amount:    payment.Amount,
		Status:    string(payment.Status),
	})

	return payment, nil
}
