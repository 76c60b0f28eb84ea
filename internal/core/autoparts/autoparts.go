package autoparts

import (
	"context"
	"fmt"

	"github.com/playmixer/autoparts/internal/adapters/store/model"
	"github.com/playmixer/autoparts/internal/adapters/vindecoder"
	"go.uber.org/zap"
)

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

// VinDecoder is the external VIN decode collaborator.
type VinDecoder interface {
	Decode(ctx context.Context, vin string) (vindecoder.Vehicle, error)
}

// EventPublisher pushes domain events to the broker. Implementations must
// tolerate a nil receiver so an unconfigured broker disables publishing.
type EventPublisher interface {
	Publish(ctx context.Context, key string, event interface{}) error
}

type OversellPolicy string

const (
	OversellClamp  OversellPolicy = "clamp"
	OversellReject OversellPolicy = "reject"
)

type Config struct {
	DefaultMarkupPercent float64        `env:"DEFAULT_MARKUP_PERCENT" envDefault:"25"`
	Oversell             OversellPolicy `env:"OVERSELL_POLICY" envDefault:"clamp"`
}

type AutoParts struct {
	log    *zap.Logger
	cfg    *Config
	store  Store
	vin    VinDecoder
	events EventPublisher
}

type option func(*AutoParts)

func Logger(log *zap.Logger) option {
	return func(a *AutoParts) {
		if log != nil {
			a.log = log
		}
	}
}

func SetVinDecoder(decoder VinDecoder) option {
	return func(a *AutoParts) {
		a.vin = decoder
	}
}

func SetEvents(publisher EventPublisher) option {
	return func(a *AutoParts) {
		a.events = publisher
	}
}

func New(cfg *Config, store Store, options ...option) *AutoParts {
	a := &AutoParts{
		log:   zap.NewNop(),
		cfg:   cfg,
		store: store,
	}

	for _, opt := range options {
		opt(a)
	}

	return a
}

func (a *AutoParts) Register(ctx context.Context, login, password string) error {
	if err := validatePassword(password); err != nil {
		return fmt.Errorf("password invalidate: %w", err)
	}

	if err := validateLogin(login); err != nil {
		return fmt.Errorf("login invalidate: %w", err)
	}

	hashPass, err := HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed hash password: %w", err)
	}

	err = a.store.RegisterUser(ctx, login, hashPass, a.cfg.DefaultMarkupPercent)
	if err != nil {
		return fmt.Errorf("failed register user: %w", err)
	}

	return nil
}

func (a *AutoParts) Authorization(ctx context.Context, login, password string) (model.User, error) {
	var user model.User
	var err error
	if err := validatePassword(password); err != nil {
		return user, fmt.Errorf("password invalidate: %w", err)
	}

	if err := validateLogin(login); err != nil {
		return user, fmt.Errorf("login invalidate: %w", err)
	}

	user, err = a.store.GetUserByLogin(ctx, login)
	if err != nil {
		return user, fmt.Errorf("failed getting user `%s`: %w", login, err)
	}

	if ok := checkPasswordHash(password, user.PasswordHash); !ok {
		return user, ErrPasswordNotEquale
	}

	return user, nil
}

func (a *AutoParts) GetUser(ctx context.Context, userID uint) (model.User, error) {
	user, err := a.store.GetUserByID(ctx, userID)
	if err != nil {
		return user, fmt.Errorf("failed getting user: %w", err)
	}

	return user, nil
}

func (a *AutoParts) publish(ctx context.Context, key string, event interface{}) {
	if a.events == nil {
		return
	}
	if err := a.events.Publish(ctx, key, event); err != nil {
		a.log.Error("failed publish event", zap.String("key", key), zap.Error(err))
	}
}
