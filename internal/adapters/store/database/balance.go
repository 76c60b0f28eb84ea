package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/playmixer/autoparts/internal/adapters/store/errstore"
	"github.com/playmixer/autoparts/internal/adapters/store/model"
	"gorm.io/gorm"
)

// ApplyBalanceChange updates the user balance and appends the matching ledger
// row in one transaction. A balance write without its transaction row (or the
// other way around) must never be observable.
func (s *Store) ApplyBalanceChange(ctx context.Context, userID uint, delta float64, operation model.OperationType, description string, ref model.LedgerRef) (model.BalanceTransaction, error) {
	transaction := model.BalanceTransaction{}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user := model.User{}
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errstore.ErrNotFoundData
			}
			return fmt.Errorf("failed get user: %w", err)
		}

		user.Balance += delta
		if err := tx.Save(&user).Error; err != nil {
			return fmt.Errorf("failed save balance: %w", err)
		}

		transaction = model.BalanceTransaction{
			UserID:        userID,
			Amount:        delta,
			BalanceAfter:  user.Balance,
			OperationType: operation,
			Description:   description,
			PaymentID:     ref.PaymentID,
			OrderID:       ref.OrderID,
			AdminID:       ref.AdminID,
		}
		if err := tx.Create(&transaction).Error; err != nil {
			return fmt.Errorf("failed save balance transaction: %w", err)
		}

		return nil
	})
	if err != nil {
		return transaction, err
	}

	return transaction, nil
}

func (s *Store) ListBalanceTransactions(ctx context.Context, userID uint) ([]*model.BalanceTransaction, error) {
	transactions := []*model.BalanceTransaction{}
	err := s.db.WithContext(ctx).
		Where(&model.BalanceTransaction{UserID: userID}).
		Order("created_at desc").
		Find(&transactions).Error
	if err != nil {
		return nil, fmt.Errorf("failed get balance transactions: %w", err)
	}

	return transactions, nil
}
