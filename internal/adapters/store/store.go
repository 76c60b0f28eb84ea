package store

import (
	"context"
	"fmt"

	"github.com/playmixer/autoparts/internal/adapters/store/database"
	"github.com/playmixer/autoparts/internal/adapters/store/model"
	"go.uber.org/zap"
)

type Config struct {
	Database *database.Config
}

type Store interface {
	RegisterUser(ctx context.Context, login, hashPassword string, markupPercent float64) error
	GetUserByLogin(ctx context.Context, login string) (model.User, error)
	GetUserByID(ctx context.Context, userID uint) (model.User, error)

	CreateCarBrand(ctx context.Context, brand *model.CarBrand) error
	ListCarBrands(ctx context.Context) ([]*model.CarBrand, error)
	CreateCarModel(ctx context.Context, carModel *model.CarModel) error
	ListCarModels(ctx context.Context, brandID uint) ([]*model.CarModel, error)
	GetCarModel(ctx context.Context, carModelID uint) (model.CarModel, error)
	CreateCarEngine(ctx context.Context, engine *model.CarEngine) error
	ListCarEngines(ctx context.Context, carModelID uint) ([]*model.CarEngine, error)
	CreateSparePart(ctx context.Context, part *model.SparePart) error
	GetSparePart(ctx context.Context, sparePartID uint) (model.SparePart, error)
	FindSparePartByNumber(ctx context.Context, partNumber, manufacturer string) (model.SparePart, error)
	SaveStock(ctx context.Context, sparePartID uint, quantity int, available bool) error

	FindCompatibilities(ctx context.Context, sparePartID, carModelID uint) ([]*model.SparePartCompatibility, error)
	ListCompatibilities(ctx context.Context, sparePartID uint) ([]*model.SparePartCompatibility, error)
	CreateCompatibility(ctx context.Context, compat *model.SparePartCompatibility) error
	ListAnalogs(ctx context.Context, sparePartID uint) ([]*model.SparePartAnalog, error)
	ListAnalogsFor(ctx context.Context, analogSparePartID uint) ([]*model.SparePartAnalog, error)
	CreateAnalog(ctx context.Context, analog *model.SparePartAnalog) error

	CreateSuggestion(ctx context.Context, suggestion *model.UserSuggestion) error
	GetSuggestion(ctx context.Context, suggestionID uint) (model.UserSuggestion, error)
	ListSuggestions(ctx context.Context, status model.SuggestionStatus) ([]*model.UserSuggestion, error)
	ListUserSuggestions(ctx context.Context, userID uint) ([]*model.UserSuggestion, error)
	ApproveSuggestion(ctx context.Context, suggestionID, adminID uint) (model.UserSuggestion, error)
	RejectSuggestion(ctx context.Context, suggestionID, adminID uint, adminComment string) (model.UserSuggestion, error)
	DeleteSuggestion(ctx context.Context, suggestionID uint) error

	ApplyBalanceChange(ctx context.Context, userID uint, delta float64, operation model.OperationType, description string, ref model.LedgerRef) (model.BalanceTransaction, error)
	ListBalanceTransactions(ctx context.Context, userID uint) ([]*model.BalanceTransaction, error)

	CreateOrder(ctx context.Context, order *model.Order, rejectOversell bool) error
	GetOrder(ctx context.Context, orderID uint) (model.Order, error)
	ListUserOrders(ctx context.Context, userID uint) ([]*model.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID uint, status model.OrderStatus, changedBy uint) (model.Order, error)
	AddOrderNote(ctx context.Context, orderID uint, text string, createdBy uint) (model.Order, error)
	CreatePayment(ctx context.Context, payment *model.Payment) error
	UpdatePaymentStatus(ctx context.Context, paymentID uint, status model.PaymentStatus) (model.Payment, error)
	PayOrderFromBalance(ctx context.Context, orderID uint, transactionID string) (model.Payment, error)

	CreateVinRequest(ctx context.Context, req *model.VinRequest) error
	ListVinRequests(ctx context.Context) ([]*model.VinRequest, error)
}

func New(ctx context.Context, cfg *Config, log *zap.Logger) (Store, error) {
	s, err := database.New(ctx, cfg.Database, database.Logger(log))
	if err != nil {
		return nil, fmt.Errorf("failed to create store: %w", err)
	}

	return s, nil
}
