package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/playmixer/autoparts/docs"
	"github.com/playmixer/autoparts/internal/adapters/store/errstore"
	"github.com/playmixer/autoparts/internal/adapters/store/model"
	"github.com/playmixer/autoparts/internal/adapters/vindecoder"
	"github.com/playmixer/autoparts/internal/core/autoparts"
	"github.com/playmixer/autoparts/pkg/jwt"
)

var (
	cookieName = "token"
	cookieKey  = "UserID"

	errUnauthorize = errors.New("unauthorize")
)

type autopartsI interface {
	Register(ctx context.Context, login, password string) error
	Authorization(ctx context.Context, login, password string) (model.User, error)
	GetUser(ctx context.Context, userID uint) (model.User, error)

	CreateCarBrand(ctx context.Context, brand model.CarBrand) (model.CarBrand, error)
	ListCarBrands(ctx context.Context) ([]*model.CarBrand, error)
	CreateCarModel(ctx context.Context, carModel model.CarModel) (model.CarModel, error)
	ListCarModels(ctx context.Context, brandID uint) ([]*model.CarModel, error)
	CreateCarEngine(ctx context.Context, engine model.CarEngine) (model.CarEngine, error)
	ListCarEngines(ctx context.Context, carModelID uint) ([]*model.CarEngine, error)
	CreateSparePart(ctx context.Context, part model.SparePart) (model.SparePart, error)
	GetSparePart(ctx context.Context, sparePartID uint) (model.SparePart, error)
	UpdateAvailability(ctx context.Context, sparePartID uint, delta int) (model.SparePart, error)
	PriceForUser(part model.SparePart, user model.User) float64
	IsCompatibleWith(ctx context.Context, sparePartID, carModelID uint, carEngineID *uint) (bool, error)
	IsCompatibleWithYear(ctx context.Context, sparePartID, carModelID uint, carEngineID *uint, year int) (bool, error)
	AddCompatibility(ctx context.Context, compat model.SparePartCompatibility) (model.SparePartCompatibility, error)
	AddAnalog(ctx context.Context, analog model.SparePartAnalog) (model.SparePartAnalog, error)
	ListCompatibilities(ctx context.Context, sparePartID uint) ([]*model.SparePartCompatibility, error)
	ListAnalogs(ctx context.Context, sparePartID uint) ([]*model.SparePartAnalog, error)
	ListAnalogsFor(ctx context.Context, sparePartID uint) ([]*model.SparePartAnalog, error)

	SuggestAnalog(ctx context.Context, req autoparts.AnalogSuggestionRequest) (model.UserSuggestion, error)
	SuggestCompatibility(ctx context.Context, req autoparts.CompatibilitySuggestionRequest) (model.UserSuggestion, error)
	ListSuggestions(ctx context.Context, status model.SuggestionStatus) ([]*model.UserSuggestion, error)
	ListUserSuggestions(ctx context.Context, userID uint) ([]*model.UserSuggestion, error)
	ApproveSuggestion(ctx context.Context, suggestionID, adminID uint) (model.UserSuggestion, error)
	RejectSuggestion(ctx context.Context, suggestionID, adminID uint, adminComment string) (model.UserSuggestion, error)
	DeleteSuggestion(ctx context.Context, suggestionID uint) error
	DeleteOwnSuggestion(ctx context.Context, suggestionID, userID uint) error

	AdjustBalance(ctx context.Context, userID uint, delta float64, description string, adminID uint) (model.BalanceTransaction, error)
	BalanceHistory(ctx context.Context, userID uint) ([]*model.BalanceTransaction, error)
	PayOrderFromBalance(ctx context.Context, orderID uint) (model.Payment, error)

	CreateOrder(ctx context.Context, userID uint, items []autoparts.OrderItemRequest) (model.Order, error)
	GetOrder(ctx context.Context, orderID uint) (model.Order, error)
	ListUserOrders(ctx context.Context, userID uint) ([]*model.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID uint, status model.OrderStatus, adminID uint) (model.Order, error)
	AddOrderNote(ctx context.Context, orderID uint, text string, adminID uint) (model.Order, error)
	CreatePayment(ctx context.Context, orderID uint, amount float64, method string, status model.PaymentStatus, notes string, adminID uint) (model.Payment, error)
	UpdatePaymentStatus(ctx context.Context, paymentID uint, status model.PaymentStatus) (model.Payment, error)

	DecodeVin(ctx context.Context, userID uint, vin string) (vindecoder.Vehicle, error)
	ListVinRequests(ctx context.Context) ([]*model.VinRequest, error)
}

type Server struct {
	log     *zap.Logger
	engine  *gin.Engine
	service autopartsI
	address string
	secret  []byte
}

type Option func(*Server)

func Logger(log *zap.Logger) Option {
	return func(s *Server) {
		s.log = log
	}
}

func Configure(cfg *Config) Option {
	return func(s *Server) {
		s.address = cfg.Address
		s.secret = []byte(cfg.Secret)
	}
}

func SecretKey(key []byte) Option {
	return func(s *Server) {
		s.secret = key
	}
}

//	@title			Autoparts storefront
//	@version		1.0
//	@description	Интернет-магазин автозапчастей: каталог, аналоги, совместимость, заказы.
//	@host			localhost:8080
//	@BasePath		/

func New(service autopartsI, options ...Option) (*Server, error) {
	s := &Server{
		log:     zap.NewNop(),
		service: service,
	}

	s.engine = gin.New()
	s.engine.Use(
		s.Logger(),
		s.Metrics(),
	)

	apiUser := s.engine.Group("/api/user")
	{
		apiUser.POST("/register", s.handlerRegister)
		apiUser.POST("/login", s.handlerLogin)

		authAPIUser := apiUser.Group("/")
		authAPIUser.Use(s.Authentication())
		{
			authAPIUser.POST("/orders", s.handlerCreateOrder)
			authAPIUser.GET("/orders", s.handlerGetUserOrders)
			authAPIUser.GET("/orders/:id", s.handlerGetOrder)
			authAPIUser.GET("/balance", s.handlerGetUserBalance)
			authAPIUser.GET("/balance/history", s.handlerBalanceHistory)
			authAPIUser.POST("/suggestions/analog", s.handlerSuggestAnalog)
			authAPIUser.POST("/suggestions/compatibility", s.handlerSuggestCompatibility)
			authAPIUser.GET("/suggestions", s.handlerGetUserSuggestions)
			authAPIUser.DELETE("/suggestions/:id", s.handlerDeleteOwnSuggestion)
			authAPIUser.POST("/vin", s.handlerDecodeVin)
		}
	}

	apiCatalog := s.engine.Group("/api/catalog")
	{
		apiCatalog.GET("/brands", s.handlerGetBrands)
		apiCatalog.GET("/brands/:id/models", s.handlerGetModels)
		apiCatalog.GET("/models/:id/engines", s.handlerGetEngines)
		apiCatalog.GET("/parts/:id", s.handlerGetSparePart)
		apiCatalog.GET("/parts/:id/analogs", s.handlerGetAnalogs)
		apiCatalog.GET("/parts/:id/analogs-for", s.handlerGetAnalogsFor)
		apiCatalog.GET("/parts/:id/compatibilities", s.handlerGetCompatibilities)
		apiCatalog.GET("/parts/:id/compatible", s.handlerCheckCompatibility)
	}

	apiAdmin := s.engine.Group("/api/admin")
	apiAdmin.Use(s.Authentication(), s.RequireAdmin())
	{
		apiAdmin.GET("/suggestions", s.handlerAdminSuggestions)
		apiAdmin.POST("/suggestions/:id/approve", s.handlerAdminApproveSuggestion)
		apiAdmin.POST("/suggestions/:id/reject", s.handlerAdminRejectSuggestion)
		apiAdmin.DELETE("/suggestions/:id", s.handlerAdminDeleteSuggestion)
		apiAdmin.PUT("/orders/:id/status", s.handlerAdminOrderStatus)
		apiAdmin.POST("/orders/:id/notes", s.handlerAdminOrderNote)
		apiAdmin.POST("/orders/:id/pay-from-balance", s.handlerAdminPayFromBalance)
		apiAdmin.POST("/payments", s.handlerAdminCreatePayment)
		apiAdmin.PUT("/payments/:id/status", s.handlerAdminPaymentStatus)
		apiAdmin.POST("/users/:id/balance", s.handlerAdminAdjustBalance)
		apiAdmin.POST("/brands", s.handlerAdminCreateBrand)
		apiAdmin.POST("/models", s.handlerAdminCreateModel)
		apiAdmin.POST("/engines", s.handlerAdminCreateEngine)
		apiAdmin.POST("/parts", s.handlerAdminCreatePart)
		apiAdmin.PUT("/parts/:id/stock", s.handlerAdminUpdateStock)
		apiAdmin.POST("/parts/:id/compatibilities", s.handlerAdminCreateCompatibility)
		apiAdmin.POST("/parts/:id/analogs", s.handlerAdminCreateAnalog)
		apiAdmin.GET("/vin-requests", s.handlerAdminVinRequests)
	}

	s.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	for _, opt := range options {
		opt(s)
	}

	return s, nil
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) Run() error {
	if err := s.engine.Run(s.address); err != nil {
		return fmt.Errorf("server stopped with error: %w", err)
	}

	return nil
}

func (s *Server) checkAuth(c *gin.Context) (userID uint, err error) {
	var ok bool
	var userIDS string
	cookieUserID, err := c.Request.Cookie(cookieName)
	if err != nil {
		return 0, fmt.Errorf("failed reade user cookie: %w %w", err, errUnauthorize)
	}

	jwtRest := jwt.New(s.secret)
	userIDS, ok, err = jwtRest.Verify(cookieUserID.Value, cookieKey)
	if err != nil {
		return 0, fmt.Errorf("failed verify token: %w %w", err, errUnauthorize)
	}

	if !ok {
		return 0, fmt.Errorf("unverify usercookie: %w", errUnauthorize)
	}

	userID64, err := strconv.ParseUint(userIDS, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("can't convert string userID to uint: %w", err)
	}

	return uint(userID64), nil
}

func unauthorize(c *gin.Context) {
	userCookie := &http.Cookie{
		Name:  cookieName,
		Value: "",
		Path:  "/",
	}
	c.Request.AddCookie(userCookie)
	http.SetCookie(c.Writer, userCookie)
}

func (s *Server) authorization(c *gin.Context, login, password string) error {
	ctx := c.Request.Context()
	var err error
	var user model.User
	if user, err = s.service.Authorization(ctx, login, password); err != nil {
		return fmt.Errorf("failed authorization: %w", err)
	}

	jwtRest := jwt.New(s.secret)
	signedCookie, err := jwtRest.Create(cookieKey, strconv.Itoa(int(user.ID)))
	if err != nil {
		return fmt.Errorf("can't create cookie data: %w", err)
	}

	userCookie := &http.Cookie{
		Name:  cookieName,
		Value: signedCookie,
		Path:  "/",
	}
	c.Request.AddCookie(userCookie)
	http.SetCookie(c.Writer, userCookie)

	return nil
}

// userFromCookie resolves the request user when a valid auth cookie is
// present. Anonymous requests get the zero user, priced with the default
// markup.
func (s *Server) userFromCookie(c *gin.Context) model.User {
	userID, err := s.checkAuth(c)
	if err != nil {
		return model.User{}
	}
	user, err := s.service.GetUser(c.Request.Context(), userID)
	if err != nil {
		return model.User{}
	}
	return user
}

func parseIDParam(c *gin.Context, name string) (uint, error) {
	id64, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("failed parse param %s: %w", name, err)
	}
	return uint(id64), nil
}

// respondError maps domain and storage errors onto the admin response shape.
func (s *Server) respondError(c *gin.Context, err error, message string) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errstore.ErrNotFoundData):
		status = http.StatusNotFound
	case errors.Is(err, errstore.ErrLoginNotUnique) || errors.Is(err, errstore.ErrSlugNotUnique):
		status = http.StatusConflict
	case errors.Is(err, errstore.ErrSuggestionNotPending) ||
		errors.Is(err, errstore.ErrBalanceNotEnough) ||
		errors.Is(err, errstore.ErrNotEnoughStock) ||
		errors.Is(err, errstore.ErrPaymentNotPending) ||
		errors.Is(err, errstore.ErrOrderAlreadyPaid) ||
		errors.Is(err, errstore.ErrAnalogTargetUnknown) ||
		errors.Is(err, errstore.ErrCompatibilityConflict):
		status = http.StatusBadRequest
	case errors.Is(err, autoparts.ErrAmountNotPositive) ||
		errors.Is(err, autoparts.ErrCommentRequired) ||
		errors.Is(err, autoparts.ErrSuggestionNotValid) ||
		errors.Is(err, autoparts.ErrAnalogNotValid) ||
		errors.Is(err, autoparts.ErrOrderEmpty) ||
		errors.Is(err, autoparts.ErrQuantityNotValid) ||
		errors.Is(err, autoparts.ErrOrderStatusNotValid) ||
		errors.Is(err, autoparts.ErrPaymentStatusInvalid) ||
		errors.Is(err, autoparts.ErrNoteTextRequired) ||
		errors.Is(err, autoparts.ErrVinNotValid):
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		s.log.Error(message, zap.Error(err))
		c.JSON(status, tAdminResponse{Success: false, Message: message, Error: "internal error"})
		return
	}

	c.JSON(status, tAdminResponse{Success: false, Message: message, Error: err.Error()})
}
