package database

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/playmixer/autoparts/internal/adapters/store/errstore"
	"github.com/playmixer/autoparts/internal/adapters/store/model"
	"gorm.io/gorm"
)

// Order numbers are sequential decimal strings starting at 100000001.
const firstOrderNumber = 100000001

func nextOrderNumber(tx *gorm.DB) (string, error) {
	last := model.Order{}
	err := tx.Order("id desc").First(&last).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("failed get last order: %w", err)
	}

	next := firstOrderNumber
	if n, convErr := strconv.Atoi(last.Number); convErr == nil && n >= firstOrderNumber {
		next = n + 1
	}

	return strconv.Itoa(next), nil
}

// CreateOrder persists the order with its item snapshots and decrements the
// stock of every ordered part. With rejectOversell unset an over-sell silently
// floors the stock at zero, otherwise the whole order fails.
func (s *Store) CreateOrder(ctx context.Context, order *model.Order, rejectOversell bool) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if order.Number == "" {
			number, err := nextOrderNumber(tx)
			if err != nil {
				return err
			}
			order.Number = number
		}

		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("failed create order: %w", err)
		}

		for _, item := range order.Items {
			part := model.SparePart{}
			if err := tx.First(&part, item.SparePartID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return errstore.ErrNotFoundData
				}
				return fmt.Errorf("failed get part: %w", err)
			}

			quantity := part.StockQuantity - item.Quantity
			if quantity < 0 {
				if rejectOversell {
					return fmt.Errorf("%w: part %d", errstore.ErrNotEnoughStock, part.ID)
				}
				quantity = 0
			}
			part.StockQuantity = quantity
			part.IsAvailable = quantity > 0
			if err := tx.Save(&part).Error; err != nil {
				return fmt.Errorf("failed save part stock: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	return nil
}

func (s *Store) GetOrder(ctx context.Context, orderID uint) (model.Order, error) {
	order := model.Order{}
	err := s.db.WithContext(ctx).Preload("Items").Preload("Items.SparePart").
		First(&order, orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return order, errstore.ErrNotFoundData
		}
		return order, fmt.Errorf("failed get order: %w", err)
	}

	return order, nil
}

func (s *Store) ListUserOrders(ctx context.Context, userID uint) ([]*model.Order, error) {
	orders := []*model.Order{}
	err := s.db.WithContext(ctx).Preload("Items").
		Where(&model.Order{UserID: userID}).
		Order("created_at desc").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed get orders: %w", err)
	}

	return orders, nil
}

func (s *Store) UpdateOrderStatus(ctx context.Context, orderID uint, status model.OrderStatus, changedBy uint) (model.Order, error) {
	order := model.Order{}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errstore.ErrNotFoundData
			}
			return fmt.Errorf("failed get order: %w", err)
		}

		order.StatusHistory = append(order.StatusHistory, model.StatusChange{
			From:      order.Status,
			To:        status,
			ChangedAt: time.Now(),
			ChangedBy: changedBy,
		})
		order.Status = status
		if err := tx.Save(&order).Error; err != nil {
			return fmt.Errorf("failed save order: %w", err)
		}

		return nil
	})
	if err != nil {
		return order, err
	}

	return order, nil
}

func (s *Store) AddOrderNote(ctx context.Context, orderID uint, text string, createdBy uint) (model.Order, error) {
	order := model.Order{}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errstore.ErrNotFoundData
			}
			return fmt.Errorf("failed get order: %w", err)
		}

		order.Notes = append(order.Notes, model.OrderNote{
			Text:      text,
			CreatedAt: time.Now(),
			CreatedBy: createdBy,
		})
		if err := tx.Save(&order).Error; err != nil {
			return fmt.Errorf("failed save order: %w", err)
		}

		return nil
	})
	if err != nil {
		return order, err
	}

	return order, nil
}

func completedAmount(tx *gorm.DB, orderID uint) (float64, error) {
	var paid float64
	err := tx.Model(&model.Payment{}).
		Where("order_id = ? and status = ?", orderID, model.PaymentCompleted).
		Select("coalesce(sum(amount), 0)").
		Scan(&paid).Error
	if err != nil {
		return 0, fmt.Errorf("failed sum payments: %w", err)
	}

	return paid, nil
}

func (s *Store) CreatePayment(ctx context.Context, payment *model.Payment) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		order := model.Order{}
		if err := tx.First(&order, payment.OrderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errstore.ErrNotFoundData
			}
			return fmt.Errorf("failed get order: %w", err)
		}

		if payment.Status == model.PaymentCompleted && payment.PaymentDate == nil {
			now := time.Now()
			payment.PaymentDate = &now
		}
		if err := tx.Create(payment).Error; err != nil {
			return fmt.Errorf("failed create payment: %w", err)
		}

		if order.PaymentID == nil {
			order.PaymentID = &payment.ID
		}
		if err := promoteOrderIfPaid(tx, &order, payment.UserID); err != nil {
			return err
		}
		if err := tx.Save(&order).Error; err != nil {
			return fmt.Errorf("failed save order: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	return nil
}

// promoteOrderIfPaid moves a pending order to processing once the completed
// payments cover its total.
func promoteOrderIfPaid(tx *gorm.DB, order *model.Order, changedBy uint) error {
	if order.Status != model.OrderStatusPending {
		return nil
	}
	paid, err := completedAmount(tx, order.ID)
	if err != nil {
		return err
	}
	if paid < order.TotalPrice {
		return nil
	}

	order.StatusHistory = append(order.StatusHistory, model.StatusChange{
		From:      order.Status,
		To:        model.OrderStatusProcessing,
		ChangedAt: time.Now(),
		ChangedBy: changedBy,
	})
	order.Status = model.OrderStatusProcessing

	return nil
}

func (s *Store) UpdatePaymentStatus(ctx context.Context, paymentID uint, status model.PaymentStatus) (model.Payment, error) {
	payment := model.Payment{}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&payment, paymentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errstore.ErrNotFoundData
			}
			return fmt.Errorf("failed get payment: %w", err)
		}

		switch status {
		case model.PaymentCompleted, model.PaymentFailed:
			if payment.Status != model.PaymentPending {
				return errstore.ErrPaymentNotPending
			}
		case model.PaymentRefunded:
			if payment.Status != model.PaymentCompleted {
				return errstore.ErrPaymentNotPending
			}
		}

		oldStatus := payment.Status
		payment.Status = status
		now := time.Now()
		if status == model.PaymentCompleted && payment.PaymentDate == nil {
			payment.PaymentDate = &now
		}
		if status == model.PaymentRefunded && payment.RefundDate == nil {
			payment.RefundDate = &now
		}
		if err := tx.Save(&payment).Error; err != nil {
			return fmt.Errorf("failed save payment: %w", err)
		}

		order := model.Order{}
		if err := tx.First(&order, payment.OrderID).Error; err != nil {
			return fmt.Errorf("failed get order: %w", err)
		}
		if status == model.PaymentCompleted && oldStatus != model.PaymentCompleted {
			if err := promoteOrderIfPaid(tx, &order, payment.UserID); err != nil {
				return err
			}
		}
		if status == model.PaymentRefunded && oldStatus == model.PaymentCompleted &&
			order.Status != model.OrderStatusCancelled {
			order.StatusHistory = append(order.StatusHistory, model.StatusChange{
				From:      order.Status,
				To:        model.OrderStatusCancelled,
				ChangedAt: now,
				ChangedBy: payment.UserID,
			})
			order.Status = model.OrderStatusCancelled
		}
		if err := tx.Save(&order).Error; err != nil {
			return fmt.Errorf("failed save order: %w", err)
		}

		return nil
	})
	if err != nil {
		return payment, err
	}

	return payment, nil
}

// PayOrderFromBalance settles the remaining order amount from the stored user
// balance: a completed payment, the balance debit and its ledger row are all
// written in one transaction.
func (s *Store) PayOrderFromBalance(ctx context.Context, orderID uint, transactionID string) (model.Payment, error) {
	payment := model.Payment{}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		order := model.Order{}
		if err := tx.First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errstore.ErrNotFoundData
			}
			return fmt.Errorf("failed get order: %w", err)
		}

		paid, err := completedAmount(tx, order.ID)
		if err != nil {
			return err
		}
		amount := order.TotalPrice - paid
		if amount <= 0 {
			return errstore.ErrOrderAlreadyPaid
		}

		user := model.User{}
		if err := tx.First(&user, order.UserID).Error; err != nil {
			return fmt.Errorf("failed get user: %w", err)
		}
		if user.Balance < amount {
			return fmt.Errorf("%w: %.2f", errstore.ErrBalanceNotEnough, amount)
		}

		now := time.Now()
		payment = model.Payment{
			OrderID:       order.ID,
			UserID:        user.ID,
			Amount:        amount,
			Status:        model.PaymentCompleted,
			PaymentMethod: "user_balance",
			TransactionID: transactionID,
			PaymentDate:   &now,
		}
		if err := tx.Create(&payment).Error; err != nil {
			return fmt.Errorf("failed create payment: %w", err)
		}

		user.Balance -= amount
		if err := tx.Save(&user).Error; err != nil {
			return fmt.Errorf("failed save balance: %w", err)
		}
		transaction := model.BalanceTransaction{
			UserID:        user.ID,
			Amount:        -amount,
			BalanceAfter:  user.Balance,
			OperationType: model.OperationOrderPayment,
			Description:   fmt.Sprintf("payment for order %s", order.Number),
			PaymentID:     &payment.ID,
			OrderID:       &order.ID,
		}
		if err := tx.Create(&transaction).Error; err != nil {
			return fmt.Errorf("failed save balance transaction: %w", err)
		}

		if order.PaymentID == nil {
			order.PaymentID = &payment.ID
		}
		if err := promoteOrderIfPaid(tx, &order, user.ID); err != nil {
			return err
		}
		if err := tx.Save(&order).Error; err != nil {
			return fmt.Errorf("failed save order: %w", err)
		}

		return nil
	})
	if err != nil {
		return payment, err
	}

	return payment, nil
}
