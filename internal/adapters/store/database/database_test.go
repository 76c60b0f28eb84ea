package database

import (
	"context"
	"testing"

	"github.com/playmixer/autoparts/internal/adapters/store/errstore"
	"github.com/playmixer/autoparts/internal/adapters/store/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	s := &Store{db: db, log: zap.NewNop()}
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.CarBrand{},
		&model.CarModel{},
		&model.CarEngine{},
		&model.SparePart{},
		&model.SparePartCompatibility{},
		&model.SparePartAnalog{},
		&model.UserSuggestion{},
		&model.BalanceTransaction{},
		&model.Order{},
		&model.OrderItem{},
		&model.Payment{},
		&model.VinRequest{},
	))
	return s
}

func TestStore_ApplyBalanceChange(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	require.NoError(t, s.db.Create(&model.User{Login: "user", Balance: 100}).Error)

	transaction, err := s.ApplyBalanceChange(ctx, 1, -30, model.OperationWithdraw, "withdraw", model.LedgerRef{})
	assert.NoError(t, err)

	user := model.User{}
	require.NoError(t, s.db.First(&user, 1).Error)
	assert.InDelta(t, 70, user.Balance, 0.001)
	assert.InDelta(t, user.Balance, transaction.BalanceAfter, 0.001)

	var ledger int64
	require.NoError(t, s.db.Model(&model.BalanceTransaction{}).Count(&ledger).Error)
	assert.EqualValues(t, 1, ledger)

	_, err = s.ApplyBalanceChange(ctx, 99, 10, model.OperationDeposit, "", model.LedgerRef{})
	assert.ErrorIs(t, err, errstore.ErrNotFoundData)
}

func TestStore_ApproveSuggestion(t *testing.T) {
	ctx := context.Background()

	t.Run("staged analog creates part and mirrored edges", func(t *testing.T) {
		s := newTestStore(t)
		require.NoError(t, s.db.Create(&model.User{Login: "user"}).Error)
		source := model.SparePart{Name: "Brake pad", PartNumber: "BP1", Manufacturer: "TRW", Slug: "trw-bp1", CategoryID: 4}
		require.NoError(t, s.db.Create(&source).Error)

		suggestion := model.UserSuggestion{
			UserID:      1,
			SparePartID: source.ID,
			Type:        model.SuggestionAnalog,
			Data: model.SuggestionData{
				AnalogArticle:     "0986452041",
				AnalogBrand:       "Bosch",
				AnalogDescription: "Brake pad set",
				NeedCreatePart:    true,
			},
		}
		require.NoError(t, s.CreateSuggestion(ctx, &suggestion))

		approved, err := s.ApproveSuggestion(ctx, suggestion.ID, 2)
		assert.NoError(t, err)
		assert.Equal(t, model.SuggestionApproved, approved.Status)
		if assert.NotNil(t, approved.ApprovedBy) {
			assert.Equal(t, uint(2), *approved.ApprovedBy)
		}

		var parts int64
		require.NoError(t, s.db.Model(&model.SparePart{}).Count(&parts).Error)
		assert.EqualValues(t, 2, parts)

		created := model.SparePart{}
		require.NoError(t, s.db.Where(&model.SparePart{PartNumber: "0986452041"}).First(&created).Error)
		assert.Equal(t, source.CategoryID, created.CategoryID)

		forward := model.SparePartAnalog{}
		require.NoError(t, s.db.Where(&model.SparePartAnalog{SparePartID: source.ID, AnalogSparePartID: created.ID}).
			First(&forward).Error)
		assert.True(t, forward.IsVerified)
		mirror := model.SparePartAnalog{}
		require.NoError(t, s.db.Where(&model.SparePartAnalog{SparePartID: created.ID, AnalogSparePartID: source.ID}).
			First(&mirror).Error)
		assert.True(t, mirror.IsDirect)

		_, err = s.ApproveSuggestion(ctx, suggestion.ID, 2)
		assert.ErrorIs(t, err, errstore.ErrSuggestionNotPending)

		var edges int64
		require.NoError(t, s.db.Model(&model.SparePartAnalog{}).Count(&edges).Error)
		assert.EqualValues(t, 2, edges)
	})

	t.Run("compatibility materializes one row", func(t *testing.T) {
		s := newTestStore(t)
		require.NoError(t, s.db.Create(&model.User{Login: "user"}).Error)
		part := model.SparePart{Name: "Oil filter", PartNumber: "OF1", Manufacturer: "Mann", Slug: "mann-of1"}
		require.NoError(t, s.db.Create(&part).Error)
		carModel := model.CarModel{Name: "Octavia", BrandID: 1}
		require.NoError(t, s.db.Create(&carModel).Error)

		start := 2010
		end := 2015
		suggestion := model.UserSuggestion{
			UserID:      1,
			SparePartID: part.ID,
			Type:        model.SuggestionCompatibility,
			CarModelID:  &carModel.ID,
			Data:        model.SuggestionData{StartYear: &start, EndYear: &end},
		}
		require.NoError(t, s.CreateSuggestion(ctx, &suggestion))

		_, err := s.ApproveSuggestion(ctx, suggestion.ID, 2)
		assert.NoError(t, err)

		rows := []model.SparePartCompatibility{}
		require.NoError(t, s.db.Find(&rows).Error)
		if assert.Len(t, rows, 1) {
			assert.True(t, rows[0].IsVerified)
			assert.Equal(t, part.ID, rows[0].SparePartID)
			if assert.NotNil(t, rows[0].StartYear) {
				assert.Equal(t, start, *rows[0].StartYear)
			}
		}

		_, err = s.ApproveSuggestion(ctx, suggestion.ID, 2)
		assert.ErrorIs(t, err, errstore.ErrSuggestionNotPending)

		var count int64
		require.NoError(t, s.db.Model(&model.SparePartCompatibility{}).Count(&count).Error)
		assert.EqualValues(t, 1, count)
	})
}

func TestStore_CreateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("oversell clamps stock at zero", func(t *testing.T) {
		s := newTestStore(t)
		require.NoError(t, s.db.Create(&model.User{Login: "user"}).Error)
		part := model.SparePart{Name: "Oil filter", PartNumber: "OF1", Manufacturer: "Mann", Slug: "mann-of1", Price: 100, StockQuantity: 5, IsAvailable: true}
		require.NoError(t, s.db.Create(&part).Error)

		order := model.Order{
			UserID:     1,
			Status:     model.OrderStatusPending,
			TotalPrice: 1250,
			Items:      []model.OrderItem{{SparePartID: part.ID, Quantity: 10, Price: 125}},
		}
		err := s.CreateOrder(ctx, &order, false)
		assert.NoError(t, err)
		assert.Equal(t, "100000001", order.Number)

		reloaded := model.SparePart{}
		require.NoError(t, s.db.First(&reloaded, part.ID).Error)
		assert.Equal(t, 0, reloaded.StockQuantity)
		assert.False(t, reloaded.IsAvailable)
	})

	t.Run("reject policy rolls the order back", func(t *testing.T) {
		s := newTestStore(t)
		require.NoError(t, s.db.Create(&model.User{Login: "user"}).Error)
		part := model.SparePart{Name: "Oil filter", PartNumber: "OF1", Manufacturer: "Mann", Slug: "mann-of1", Price: 100, StockQuantity: 5, IsAvailable: true}
		require.NoError(t, s.db.Create(&part).Error)

		order := model.Order{
			UserID: 1,
			Status: model.OrderStatusPending,
			Items:  []model.OrderItem{{SparePartID: part.ID, Quantity: 10, Price: 125}},
		}
		err := s.CreateOrder(ctx, &order, true)
		assert.ErrorIs(t, err, errstore.ErrNotEnoughStock)

		reloaded := model.SparePart{}
		require.NoError(t, s.db.First(&reloaded, part.ID).Error)
		assert.Equal(t, 5, reloaded.StockQuantity)

		var orders int64
		require.NoError(t, s.db.Model(&model.Order{}).Count(&orders).Error)
		assert.EqualValues(t, 0, orders)
	})
}

func TestStore_PayOrderFromBalance(t *testing.T) {
	ctx := context.Background()

	t.Run("not enough funds", func(t *testing.T) {
		s := newTestStore(t)
		require.NoError(t, s.db.Create(&model.User{Login: "user", Balance: 50}).Error)
		order := model.Order{UserID: 1, Number: "100000001", Status: model.OrderStatusPending, TotalPrice: 100}
		require.NoError(t, s.db.Create(&order).Error)

		_, err := s.PayOrderFromBalance(ctx, order.ID, "tx-1")
		assert.ErrorIs(t, err, errstore.ErrBalanceNotEnough)

		user := model.User{}
		require.NoError(t, s.db.First(&user, 1).Error)
		assert.InDelta(t, 50, user.Balance, 0.001)

		var payments int64
		require.NoError(t, s.db.Model(&model.Payment{}).Count(&payments).Error)
		assert.EqualValues(t, 0, payments)
	})

	t.Run("settles and promotes the order", func(t *testing.T) {
		s := newTestStore(t)
		require.NoError(t, s.db.Create(&model.User{Login: "user", Balance: 200}).Error)
		order := model.Order{UserID: 1, Number: "100000001", Status: model.OrderStatusPending, TotalPrice: 100}
		require.NoError(t, s.db.Create(&order).Error)

		payment, err := s.PayOrderFromBalance(ctx, order.ID, "tx-1")
		assert.NoError(t, err)
		assert.Equal(t, model.PaymentCompleted, payment.Status)
		assert.Equal(t, "user_balance", payment.PaymentMethod)
		assert.InDelta(t, 100, payment.Amount, 0.001)

		user := model.User{}
		require.NoError(t, s.db.First(&user, 1).Error)
		assert.InDelta(t, 100, user.Balance, 0.001)

		transaction := model.BalanceTransaction{}
		require.NoError(t, s.db.Where(&model.BalanceTransaction{UserID: 1}).First(&transaction).Error)
		assert.InDelta(t, -100, transaction.Amount, 0.001)
		assert.InDelta(t, user.Balance, transaction.BalanceAfter, 0.001)
		assert.Equal(t, model.OperationOrderPayment, transaction.OperationType)

		reloaded := model.Order{}
		require.NoError(t, s.db.First(&reloaded, order.ID).Error)
		assert.Equal(t, model.OrderStatusProcessing, reloaded.Status)
		assert.NotNil(t, reloaded.PaymentID)

		_, err = s.PayOrderFromBalance(ctx, order.ID, "tx-2")
		assert.ErrorIs(t, err, errstore.ErrOrderAlreadyPaid)
	})
}

func TestStore_CreateCompatibility(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	part := model.SparePart{Name: "Oil filter", PartNumber: "OF1", Manufacturer: "Mann", Slug: "mann-of1"}
	require.NoError(t, s.db.Create(&part).Error)
	carModel := model.CarModel{Name: "Octavia", BrandID: 1}
	require.NoError(t, s.db.Create(&carModel).Error)

	first := model.SparePartCompatibility{SparePartID: part.ID, CarModelID: carModel.ID}
	assert.NoError(t, s.CreateCompatibility(ctx, &first))

	duplicate := model.SparePartCompatibility{SparePartID: part.ID, CarModelID: carModel.ID}
	assert.ErrorIs(t, s.CreateCompatibility(ctx, &duplicate), errstore.ErrCompatibilityConflict)

	engineID := uint(5)
	narrowed := model.SparePartCompatibility{SparePartID: part.ID, CarModelID: carModel.ID, CarEngineID: &engineID}
	assert.NoError(t, s.CreateCompatibility(ctx, &narrowed))
}

func TestStore_CreateAnalog(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	source := model.SparePart{Name: "Brake pad", PartNumber: "BP1", Manufacturer: "TRW", Slug: "trw-bp1"}
	require.NoError(t, s.db.Create(&source).Error)
	analogPart := model.SparePart{Name: "Brake pad set", PartNumber: "0986452041", Manufacturer: "Bosch", Slug: "bosch-0986452041"}
	require.NoError(t, s.db.Create(&analogPart).Error)

	edge := model.SparePartAnalog{SparePartID: source.ID, AnalogSparePartID: analogPart.ID, IsDirect: true, Notes: "oem"}
	assert.NoError(t, s.CreateAnalog(ctx, &edge))
	assert.NotZero(t, edge.ID)

	var edges int64
	require.NoError(t, s.db.Model(&model.SparePartAnalog{}).Count(&edges).Error)
	assert.EqualValues(t, 2, edges)

	mirror := model.SparePartAnalog{}
	require.NoError(t, s.db.Where(&model.SparePartAnalog{SparePartID: analogPart.ID, AnalogSparePartID: source.ID}).
		First(&mirror).Error)
	assert.True(t, mirror.IsDirect)

	unknown := model.SparePartAnalog{SparePartID: source.ID, AnalogSparePartID: 99}
	assert.ErrorIs(t, s.CreateAnalog(ctx, &unknown), errstore.ErrNotFoundData)
}

func TestStore_UpdatePaymentStatus(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	require.NoError(t, s.db.Create(&model.User{Login: "user"}).Error)
	order := model.Order{UserID: 1, Number: "100000001", Status: model.OrderStatusPending, TotalPrice: 100}
	require.NoError(t, s.db.Create(&order).Error)
	payment := model.Payment{OrderID: order.ID, UserID: 1, Amount: 100, Status: model.PaymentPending}
	require.NoError(t, s.db.Create(&payment).Error)

	refundPending := model.Payment{OrderID: order.ID, UserID: 1, Amount: 10, Status: model.PaymentPending}
	require.NoError(t, s.db.Create(&refundPending).Error)
	_, err := s.UpdatePaymentStatus(ctx, refundPending.ID, model.PaymentRefunded)
	assert.ErrorIs(t, err, errstore.ErrPaymentNotPending)

	completed, err := s.UpdatePaymentStatus(ctx, payment.ID, model.PaymentCompleted)
	assert.NoError(t, err)
	assert.NotNil(t, completed.PaymentDate)

	reloaded := model.Order{}
	require.NoError(t, s.db.First(&reloaded, order.ID).Error)
	assert.Equal(t, model.OrderStatusProcessing, reloaded.Status)

	_, err = s.UpdatePaymentStatus(ctx, payment.ID, model.PaymentCompleted)
	assert.ErrorIs(t, err, errstore.ErrPaymentNotPending)

	refunded, err := s.UpdatePaymentStatus(ctx, payment.ID, model.PaymentRefunded)
	assert.NoError(t, err)
	assert.NotNil(t, refunded.RefundDate)

	require.NoError(t, s.db.First(&reloaded, order.ID).Error)
	assert.Equal(t, model.OrderStatusCancelled, reloaded.Status)
}
