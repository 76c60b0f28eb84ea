package autoparts

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/playmixer/autoparts/internal/adapters/metrics"
	"github.com/playmixer/autoparts/internal/adapters/store/errstore"
	"github.com/playmixer/autoparts/internal/adapters/store/model"
	"go.uber.org/zap"
)

type balanceEvent struct {
	UserID       uint    `json:"user_id"`
	Amount       float64 `json:"amount"`
	BalanceAfter float64 `json:"balance_after"`
	Operation    string  `json:"operation"`
}

// Deposit credits the user balance. The ledger row is written together with
// the balance update.
func (a *AutoParts) Deposit(ctx context.Context, userID uint, amount float64, description string, adminID *uint) (model.BalanceTransaction, error) {
	transaction := model.BalanceTransaction{}
	if amount <= 0 {
		return transaction, ErrAmountNotPositive
	}
	if description == "" {
		description = "balance deposit"
	}

	transaction, err := a.store.ApplyBalanceChange(ctx, userID, amount, model.OperationDeposit, description,
		model.LedgerRef{AdminID: adminID})
	if err != nil {
		return transaction, fmt.Errorf("failed deposit: %w", err)
	}
	a.recordBalanceOp(ctx, transaction)

	return transaction, nil
}

// Withdraw debits the user balance and requires sufficient funds.
func (a *AutoParts) Withdraw(ctx context.Context, userID uint, amount float64, description string, adminID *uint) (model.BalanceTransaction, error) {
	transaction := model.BalanceTransaction{}
	if amount <= 0 {
		return transaction, ErrAmountNotPositive
	}
	if description == "" {
		description = "balance withdrawal"
	}

	user, err := a.store.GetUserByID(ctx, userID)
	if err != nil {
		return transaction, fmt.Errorf("failed getting user: %w", err)
	}
	if user.Balance < amount {
		return transaction, fmt.Errorf("%w: %.2f", errstore.ErrBalanceNotEnough, amount)
	}

	transaction, err = a.store.ApplyBalanceChange(ctx, userID, -amount, model.OperationWithdraw, description,
		model.LedgerRef{AdminID: adminID})
	if err != nil {
		return transaction, fmt.Errorf("failed withdraw: %w", err)
	}
	a.recordBalanceOp(ctx, transaction)

	return transaction, nil
}

// AdjustBalance is the admin correction path. The delta is signed and the
// resulting balance may go negative.
func (a *AutoParts) AdjustBalance(ctx context.Context, userID uint, delta float64, description string, adminID uint) (model.BalanceTransaction, error) {
	transaction := model.BalanceTransaction{}
	if delta == 0 {
		return transaction, ErrAmountNotPositive
	}
	if description == "" {
		description = "admin balance adjustment"
	}

	transaction, err := a.store.ApplyBalanceChange(ctx, userID, delta, model.OperationAdjustment, description,
		model.LedgerRef{AdminID: &adminID})
	if err != nil {
		return transaction, fmt.Errorf("failed adjust balance: %w", err)
	}
	a.recordBalanceOp(ctx, transaction)
	a.log.Info("balance adjusted",
		zap.Uint("userID", userID),
		zap.Float64("delta", delta),
		zap.Float64("balanceAfter", transaction.BalanceAfter),
		zap.Uint("adminID", adminID),
	)

	return transaction, nil
}

func (a *AutoParts) BalanceHistory(ctx context.Context, userID uint) ([]*model.BalanceTransaction, error) {
	transactions, err := a.store.ListBalanceTransactions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed getting balance history: %w", err)
	}
	return transactions, nil
}

// PayOrderFromBalance settles the order remainder from the stored balance.
func (a *AutoParts) PayOrderFromBalance(ctx context.Context, orderID uint) (model.Payment, error) {
	payment, err := a.store.PayOrderFromBalance(ctx, orderID, uuid.NewString())
	if err != nil {
		return payment, fmt.Errorf("failed pay order from balance: %w", err)
	}

	metrics.PaymentsTotal.WithLabelValues(string(payment.Status)).Inc()
	metrics.BalanceOperationsTotal.WithLabelValues(string(model.OperationOrderPayment)).Inc()
	a.publish(ctx, fmt.Sprintf("order-%d", orderID), paymentEvent{
		PaymentID: payment.ID,
		OrderID:   orderID,
		UserID:    payment.UserID,
		Amount:    payment.Amount,
		Status:    string(payment.Status),
	})

	return payment, nil
}

func (a *AutoParts) recordBalanceOp(ctx context.Context, transaction model.BalanceTransaction) {
	metrics.BalanceOperationsTotal.WithLabelValues(string(transaction.OperationType)).Inc()
	a.publish(ctx, fmt.Sprintf("balance-%d", transaction.UserID), balanceEvent{
		UserID:       transaction.UserID,
		Amount:       transaction.Amount,
		BalanceAfter: transaction.BalanceAfter,
		Operation:    string(transaction.OperationType),
	})
}
