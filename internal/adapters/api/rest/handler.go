package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/playmixer/autoparts/internal/adapters/store/errstore"
	"github.com/playmixer/autoparts/internal/core/autoparts"
	"go.uber.org/zap"
)

var (
	msgErrorCloseBody = "failed close body request"
)

//	@Summary	Register user
//	@Schemes
//	@Description	registration user
//	@Tags			auth
//	@Accept			json
//	@Produce		plain
//	@Param			registration	body	tRegistration	true	"registration"
//	@Success		200				"пользователь успешно зарегистрирован и аутентифицирован"
//	@failure		400				"неверный формат запроса"
//	@failure		409				"логин уже занят"
//	@failure		500				"внутренняя ошибка сервера"
//	@Router			/api/user/register [post]
func (s *Server) handlerRegister(c *gin.Context) {
	ctx := c.Request.Context()

	unauthorize(c)

	bBody, err := io.ReadAll(c.Request.Body)
	if err != nil {
		s.log.Error("failed read body", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}
	defer func() {
		if err := c.Request.Body.Close(); err != nil {
			s.log.Error(msgErrorCloseBody, zap.Error(err))
		}
	}()

	jBody := tRegistration{}

	err = json.Unmarshal(bBody, &jBody)
	if err != nil {
		s.log.Error("failed parse body", zap.Error(err))
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	if err = s.service.Register(ctx, jBody.Login, jBody.Password); err != nil {
		if errors.Is(err, errstore.ErrLoginNotUnique) {
			c.Writer.WriteHeader(http.StatusConflict)
			return
		}
		if errors.Is(err, autoparts.ErrLoginNotValid) || errors.Is(err, autoparts.ErrPasswordNotValid) {
			c.Writer.WriteHeader(http.StatusBadRequest)
			return
		}

		s.log.Error("failed register user", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err = s.authorization(c, jBody.Login, jBody.Password); err != nil {
		if errors.Is(err, autoparts.ErrPasswordNotEquale) || errors.Is(err, errstore.ErrNotFoundData) {
			c.Writer.WriteHeader(http.StatusUnauthorized)
			return
		}
		s.log.Error("authorization failed", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}
	c.Writer.WriteHeader(http.StatusOK)
}

//	@Summary	Login user
//	@Schemes
//	@Description	authorization
//	@Tags			auth
//	@Accept			json
//	@Produce		plain
//	@Param			auth	body	tAuthorization	true	"auth"
//	@Success		200		"пользователь успешно аутентифицирован"
//	@failure		400		"неверный формат запроса"
//	@failure		401		"неверная пара логин/пароль"
//	@failure		500		"внутренняя ошибка сервера"
//	@Router			/api/user/login [post]
func (s *Server) handlerLogin(c *gin.Context) {
	unauthorize(c)

	bBody, err := io.ReadAll(c.Request.Body)
	if err != nil {
		s.log.Error("failed read body", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}
	defer func() {
		if err := c.Request.Body.Close(); err != nil {
			s.log.Error(msgErrorCloseBody, zap.Error(err))
		}
	}()

	jBody := tAuthorization{}

	err = json.Unmarshal(bBody, &jBody)
	if err != nil {
		s.log.Error("failed parse body", zap.Error(err))
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	if err = s.authorization(c, jBody.Login, jBody.Password); err != nil {
		if errors.Is(err, autoparts.ErrLoginNotValid) || errors.Is(err, autoparts.ErrPasswordNotValid) {
			c.Writer.WriteHeader(http.StatusBadRequest)
			return
		}
		if errors.Is(err, autoparts.ErrPasswordNotEquale) || errors.Is(err, errstore.ErrNotFoundData) {
			c.Writer.WriteHeader(http.StatusUnauthorized)
			return
		}
		s.log.Error("authorization failed", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}
	c.Writer.WriteHeader(http.StatusOK)
}

//	@Summary	Create order
//	@Schemes
//	@Description	create order from item list
//	@Tags			order
//	@Accept			json
//	@Produce		json
//	@Param			order	body	tCreateOrder	true	"order"
//	@Success		201		{object}	tOrder	"заказ создан"
//	@failure		400		"неверный формат запроса"
//	@failure		401		"пользователь не авторизован"
//	@failure		409		"недостаточно товара на складе"
//	@failure		500		"внутренняя ошибка сервера"
//	@Router			/api/user/orders [post]
func (s *Server) handlerCreateOrder(c *gin.Context) {
	ctx := c.Request.Context()
	userID, err := s.checkAuth(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}

	bBody, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}
	defer func() {
		if err := c.Request.Body.Close(); err != nil {
			s.log.Error(msgErrorCloseBody, zap.Error(err))
		}
	}()

	jBody := tCreateOrder{}
	if err := json.Unmarshal(bBody, &jBody); err != nil {
		s.log.Error("failed parse body", zap.Error(err))
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	items := make([]autoparts.OrderItemRequest, 0, len(jBody.Items))
	for _, item := range jBody.Items {
		items = append(items, autoparts.OrderItemRequest{
			SparePartID: item.SparePartID,
			Quantity:    item.Quantity,
		})
	}

	order, err := s.service.CreateOrder(ctx, userID, items)
	if err != nil {
		if errors.Is(err, autoparts.ErrOrderEmpty) || errors.Is(err, autoparts.ErrQuantityNotValid) {
			c.Writer.WriteHeader(http.StatusBadRequest)
			return
		}
		if errors.Is(err, errstore.ErrNotFoundData) {
			c.Writer.WriteHeader(http.StatusBadRequest)
			return
		}
		if errors.Is(err, errstore.ErrNotEnoughStock) {
			c.Writer.WriteHeader(http.StatusConflict)
			return
		}

		s.log.Error("failed create order", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, newTOrder(order))
}

//	@Summary	List user orders
//	@Schemes
//	@Description	get user orders
//	@Tags			order
//	@Accept			plain
//	@Produce		json
//	@Success		200	{array}	tOrder	"успешная обработка запроса"
//	@Success		204	"нет данных для ответа"
//	@failure		401	"пользователь не авторизован"
//	@failure		500	"внутренняя ошибка сервера"
//	@Router			/api/user/orders [get]
func (s *Server) handlerGetUserOrders(c *gin.Context) {
	ctx := c.Request.Context()
	userID, err := s.checkAuth(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}

	orders, err := s.service.ListUserOrders(ctx, userID)
	if err != nil {
		if errors.Is(err, errstore.ErrNotFoundData) {
			c.Writer.WriteHeader(http.StatusNoContent)
			return
		}

		s.log.Error("failed get orders by user", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := []tOrder{}
	for _, order := range orders {
		response = append(response, newTOrder(*order))
	}
	c.JSON(http.StatusOK, response)
}

//	@Summary	Get order
//	@Schemes
//	@Description	get order by id, own orders only
//	@Tags			order
//	@Accept			plain
//	@Produce		json
//	@Param			id	path	integer	true	"order id"
//	@Success		200	{object}	tOrder	"успешная обработка запроса"
//	@failure		401	"пользователь не авторизован"
//	@failure		404	"заказ не найден"
//	@failure		500	"внутренняя ошибка сервера"
//	@Router			/api/user/orders/{id} [get]
func (s *Server) handlerGetOrder(c *gin.Context) {
	ctx := c.Request.Context()
	userID, err := s.checkAuth(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}

	orderID, err := parseIDParam(c, "id")
	if err != nil {
		c.Writer.WriteHeader(http.StatusNotFound)
		return
	}

	order, err := s.service.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, errstore.ErrNotFoundData) {
			c.Writer.WriteHeader(http.StatusNotFound)
			return
		}

		s.log.Error("failed get order", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}
	if order.UserID != userID {
		c.Writer.WriteHeader(http.StatusNotFound)
		return
	}

	c.JSON(http.StatusOK, newTOrder(order))
}

//	@Summary	User balance
//	@Schemes
//	@Description	get user balance
//	@Tags			balance
//	@Accept			plain
//	@Produce		json
//	@Success		200	{object}	tBalance	"успешная обработка запроса"
//	@failure		401	"пользователь не авторизован"
//	@failure		500	"внутренняя ошибка сервера"
//	@Router			/api/user/balance [get]
func (s *Server) handlerGetUserBalance(c *gin.Context) {
	ctx := c.Request.Context()
	userID, err := s.checkAuth(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}

	user, err := s.service.GetUser(ctx, userID)
	if err != nil {
		s.log.Error("failed getting user", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, tBalance{Balance: user.Balance})
}

//	@Summary	Balance history
//	@Schemes
//	@Description	balance ledger, newest first
//	@Tags			balance
//	@Accept			plain
//	@Produce		json
//	@Success		200	{array}	tBalanceTransaction	"успешная обработка запроса"
//	@failure		401	"пользователь не авторизован"
//	@failure		500	"внутренняя ошибка сервера"
//	@Router			/api/user/balance/history [get]
func (s *Server) handlerBalanceHistory(c *gin.Context) {
	ctx := c.Request.Context()
	userID, err := s.checkAuth(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}

	transactions, err := s.service.BalanceHistory(ctx, userID)
	if err != nil {
		s.log.Error("failed getting balance history", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := []tBalanceTransaction{}
	for _, transaction := range transactions {
		response = append(response, tBalanceTransaction{
			ID:           transaction.ID,
			Amount:       transaction.Amount,
			BalanceAfter: transaction.BalanceAfter,
			Operation:    transaction.OperationType,
			Description:  transaction.Description,
			CreatedAt:    transaction.CreatedAt.Format(time.RFC3339),
		})
	}
	c.JSON(http.StatusOK, response)
}

//	@Summary	Suggest analog
//	@Schemes
//	@Description	suggest an analog part for moderation
//	@Tags			suggestion
//	@Accept			json
//	@Produce		json
//	@Param			suggestion	body	tAnalogSuggestion	true	"suggestion"
//	@Success		201	{object}	tSuggestion	"предложение принято"
//	@failure		400	"неверный формат запроса"
//	@failure		401	"пользователь не авторизован"
//	@failure		404	"запчасть не найдена"
//	@failure		500	"внутренняя ошибка сервера"
//	@Router			/api/user/suggestions/analog [post]
func (s *Server) handlerSuggestAnalog(c *gin.Context) {
	ctx := c.Request.Context()
	userID, err := s.checkAuth(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}

	bBody, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}
	defer func() {
		if err := c.Request.Body.Close(); err != nil {
			s.log.Error(msgErrorCloseBody, zap.Error(err))
		}
	}()

	jBody := tAnalogSuggestion{}
	if err := json.Unmarshal(bBody, &jBody); err != nil {
		s.log.Error("failed parse body", zap.Error(err))
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	suggestion, err := s.service.SuggestAnalog(ctx, autoparts.AnalogSuggestionRequest{
		UserID:      userID,
		SparePartID: jBody.SparePartID,
		Article:     jBody.Article,
		Brand:       jBody.Brand,
		Description: jBody.Description,
		AnalogType:  jBody.AnalogType,
		Comment:     jBody.Comment,
	})
	if err != nil {
		if errors.Is(err, autoparts.ErrSuggestionNotValid) {
			c.Writer.WriteHeader(http.StatusBadRequest)
			return
		}
		if errors.Is(err, errstore.ErrNotFoundData) {
			c.Writer.WriteHeader(http.StatusNotFound)
			return
		}

		s.log.Error("failed suggest analog", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, newTSuggestion(suggestion))
}

//	@Summary	Suggest compatibility
//	@Schemes
//	@Description	suggest part compatibility with a car model for moderation
//	@Tags			suggestion
//	@Accept			json
//	@Produce		json
//	@Param			suggestion	body	tCompatibilitySuggestion	true	"suggestion"
//	@Success		201	{object}	tSuggestion	"предложение принято"
//	@failure		400	"неверный формат запроса"
//	@failure		401	"пользователь не авторизован"
//	@failure		404	"запчасть или модель не найдена"
//	@failure		500	"внутренняя ошибка сервера"
//	@Router			/api/user/suggestions/compatibility [post]
func (s *Server) handlerSuggestCompatibility(c *gin.Context) {
	ctx := c.Request.Context()
	userID, err := s.checkAuth(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}

	bBody, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}
	defer func() {
		if err := c.Request.Body.Close(); err != nil {
			s.log.Error(msgErrorCloseBody, zap.Error(err))
		}
	}()

	jBody := tCompatibilitySuggestion{}
	if err := json.Unmarshal(bBody, &jBody); err != nil {
		s.log.Error("failed parse body", zap.Error(err))
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	suggestion, err := s.service.SuggestCompatibility(ctx, autoparts.CompatibilitySuggestionRequest{
		UserID:      userID,
		SparePartID: jBody.SparePartID,
		CarModelID:  jBody.CarModelID,
		CarEngineID: jBody.CarEngineID,
		StartYear:   jBody.StartYear,
		EndYear:     jBody.EndYear,
		Comment:     jBody.Comment,
	})
	if err != nil {
		if errors.Is(err, autoparts.ErrSuggestionNotValid) {
			c.Writer.WriteHeader(http.StatusBadRequest)
			return
		}
		if errors.Is(err, errstore.ErrNotFoundData) {
			c.Writer.WriteHeader(http.StatusNotFound)
			return
		}

		s.log.Error("failed suggest compatibility", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, newTSuggestion(suggestion))
}

//	@Summary	List own suggestions
//	@Schemes
//	@Description	suggestions of the authorized user, newest first
//	@Tags			suggestion
//	@Accept			plain
//	@Produce		json
//	@Success		200	{array}	tSuggestion	"успешная обработка запроса"
//	@failure		401	"пользователь не авторизован"
//	@failure		500	"внутренняя ошибка сервера"
//	@Router			/api/user/suggestions [get]
func (s *Server) handlerGetUserSuggestions(c *gin.Context) {
	ctx := c.Request.Context()
	userID, err := s.checkAuth(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}

	suggestions, err := s.service.ListUserSuggestions(ctx, userID)
	if err != nil {
		s.log.Error("failed getting user suggestions", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := []tSuggestion{}
	for _, suggestion := range suggestions {
		response = append(response, newTSuggestion(*suggestion))
	}
	c.JSON(http.StatusOK, response)
}

//	@Summary	Withdraw own suggestion
//	@Schemes
//	@Description	delete an own pending suggestion
//	@Tags			suggestion
//	@Accept			plain
//	@Produce		plain
//	@Param			id	path	integer	true	"suggestion id"
//	@Success		200	"предложение удалено"
//	@failure		400	"предложение уже рассмотрено"
//	@failure		401	"пользователь не авторизован"
//	@failure		404	"предложение не найдено"
//	@failure		500	"внутренняя ошибка сервера"
//	@Router			/api/user/suggestions/{id} [delete]
func (s *Server) handlerDeleteOwnSuggestion(c *gin.Context) {
	ctx := c.Request.Context()
	userID, err := s.checkAuth(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}

	suggestionID, err := parseIDParam(c, "id")
	if err != nil {
		c.Writer.WriteHeader(http.StatusNotFound)
		return
	}

	if err := s.service.DeleteOwnSuggestion(ctx, suggestionID, userID); err != nil {
		if errors.Is(err, errstore.ErrNotFoundData) {
			c.Writer.WriteHeader(http.StatusNotFound)
			return
		}
		if errors.Is(err, errstore.ErrSuggestionNotPending) {
			c.Writer.WriteHeader(http.StatusBadRequest)
			return
		}

		s.log.Error("failed delete suggestion", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	c.Writer.WriteHeader(http.StatusOK)
}

//	@Summary	Decode VIN
//	@Schemes
//	@Description	decode vehicle by VIN through the external service
//	@Tags			vin
//	@Accept			json
//	@Produce		json
//	@Param			vin	body	tVin	true	"vin"
//	@Success		200	"успешная обработка запроса"
//	@failure		400	"неверный формат VIN"
//	@failure		401	"пользователь не авторизован"
//	@failure		502	"сервис декодирования недоступен"
//	@failure		500	"внутренняя ошибка сервера"
//	@Router			/api/user/vin [post]
func (s *Server) handlerDecodeVin(c *gin.Context) {
	ctx := c.Request.Context()
	userID, err := s.checkAuth(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}

	bBody, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}
	defer func() {
		if err := c.Request.Body.Close(); err != nil {
			s.log.Error(msgErrorCloseBody, zap.Error(err))
		}
	}()

	jBody := tVin{}
	if err := json.Unmarshal(bBody, &jBody); err != nil {
		s.log.Error("failed parse body", zap.Error(err))
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	vehicle, err := s.service.DecodeVin(ctx, userID, jBody.Vin)
	if err != nil {
		if errors.Is(err, autoparts.ErrVinNotValid) {
			c.Writer.WriteHeader(http.StatusBadRequest)
			return
		}

		s.log.Error("failed decode vin", zap.String("vin", jBody.Vin), zap.Error(err))
		c.Writer.WriteHeader(http.StatusBadGateway)
		return
	}

	c.JSON(http.StatusOK, vehicle)
}

//	@Summary	List brands
//	@Schemes
//	@Description	car brands
//	@Tags			catalog
//	@Accept			plain
//	@Produce		json
//	@Success		200	"успешная обработка запроса"
//	@failure		500	"внутренняя ошибка сервера"
//	@Router			/api/catalog/brands [get]
func (s *Server) handlerGetBrands(c *gin.Context) {
	brands, err := s.service.ListCarBrands(c.Request.Context())
	if err != nil {
		s.log.Error("failed getting brands", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, brands)
}

//	@Summary	List models
//	@Schemes
//	@Description	car models of a brand
//	@Tags			catalog
//	@Accept			plain
//	@Produce		json
//	@Param			id	path	integer	true	"brand id"
//	@Success		200	"успешная обработка запроса"
//	@failure		404	"бренд не найден"
//	@failure		500	"внутренняя ошибка сервера"
//	@Router			/api/catalog/brands/{id}/models [get]
func (s *Server) handlerGetModels(c *gin.Context) {
	brandID, err := parseIDParam(c, "id")
	if err != nil {
		c.Writer.WriteHeader(http.StatusNotFound)
		return
	}

	models, err := s.service.ListCarModels(c.Request.Context(), brandID)
	if err != nil {
		s.log.Error("failed getting models", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, models)
}

//	@Summary	List engines
//	@Schemes
//	@Description	engines of a car model
//	@Tags			catalog
//	@Accept			plain
//	@Produce		json
//	@Param			id	path	integer	true	"model id"
//	@Success		200	"успешная обработка запроса"
//	@failure		404	"модель не найдена"
//	@failure		500	"внутренняя ошибка сервера"
//	@Router			/api/catalog/models/{id}/engines [get]
func (s *Server) handlerGetEngines(c *gin.Context) {
	carModelID, err := parseIDParam(c, "id")
	if err != nil {
		c.Writer.WriteHeader(http.StatusNotFound)
		return
	}

	engines, err := s.service.ListCarEngines(c.Request.Context(), carModelID)
	if err != nil {
		s.log.Error("failed getting engines", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, engines)
}

//	@Summary	Get spare part
//	@Schemes
//	@Description	spare part with the price for the current user
//	@Tags			catalog
//	@Accept			plain
//	@Produce		json
//	@Param			id	path	integer	true	"part id"
//	@Success		200	{object}	tSparePart	"успешная обработка запроса"
//	@failure		404	"запчасть не найдена"
//	@failure		500	"внутренняя ошибка сервера"
//	@Router			/api/catalog/parts/{id} [get]
func (s *Server) handlerGetSparePart(c *gin.Context) {
	ctx := c.Request.Context()
	sparePartID, err := parseIDParam(c, "id")
	if err != nil {
		c.Writer.WriteHeader(http.StatusNotFound)
		return
	}

	part, err := s.service.GetSparePart(ctx, sparePartID)
	if err != nil {
		if errors.Is(err, errstore.ErrNotFoundData) {
			c.Writer.WriteHeader(http.StatusNotFound)
			return
		}

		s.log.Error("failed getting spare part", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	user := s.userFromCookie(c)
	c.JSON(http.StatusOK, newTSparePart(part, s.service.PriceForUser(part, user)))
}

//	@Summary	List analogs
//	@Schemes
//	@Description	analogs of a part
//	@Tags			catalog
//	@Accept			plain
//	@Produce		json
//	@Param			id	path	integer	true	"part id"
//	@Success		200	"успешная обработка запроса"
//	@failure		404	"запчасть не найдена"
//	@failure		500	"внутренняя ошибка сервера"
//	@Router			/api/catalog/parts/{id}/analogs [get]
func (s *Server) handlerGetAnalogs(c *gin.Context) {
	sparePartID, err := parseIDParam(c, "id")
	if err != nil {
		c.Writer.WriteHeader(http.StatusNotFound)
		return
	}

	analogs, err := s.service.ListAnalogs(c.Request.Context(), sparePartID)
	if err != nil {
		s.log.Error("failed getting analogs", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, analogs)
}

//	@Summary	List reverse analogs
//	@Schemes
//	@Description	parts this one is an analog for
//	@Tags			catalog
//	@Accept			plain
//	@Produce		json
//	@Param			id	path	integer	true	"part id"
//	@Success		200	"успешная обработка запроса"
//	@failure		404	"запчасть не найдена"
//	@failure		500	"внутренняя ошибка сервера"
//	@Router			/api/catalog/parts/{id}/analogs-for [get]
func (s *Server) handlerGetAnalogsFor(c *gin.Context) {
	sparePartID, err := parseIDParam(c, "id")
	if err != nil {
		c.Writer.WriteHeader(http.StatusNotFound)
		return
	}

	analogs, err := s.service.ListAnalogsFor(c.Request.Context(), sparePartID)
	if err != nil {
		s.log.Error("failed getting reverse analogs", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, analogs)
}

//	@Summary	List compatibilities
//	@Schemes
//	@Description	compatibility records of a part
//	@Tags			catalog
//	@Accept			plain
//	@Produce		json
//	@Param			id	path	integer	true	"part id"
//	@Success		200	"успешная обработка запроса"
//	@failure		404	"запчасть не найдена"
//	@failure		500	"внутренняя ошибка сервера"
//	@Router			/api/catalog/parts/{id}/compatibilities [get]
func (s *Server) handlerGetCompatibilities(c *gin.Context) {
	sparePartID, err := parseIDParam(c, "id")
	if err != nil {
		c.Writer.WriteHeader(http.StatusNotFound)
		return
	}

	compatibilities, err := s.service.ListCompatibilities(c.Request.Context(), sparePartID)
	if err != nil {
		s.log.Error("failed getting compatibilities", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, compatibilities)
}

//	@Summary	Check compatibility
//	@Schemes
//	@Description	check part fitment against a car model, optional engine and year
//	@Tags			catalog
//	@Accept			plain
//	@Produce		json
//	@Param			id				path	integer	true	"part id"
//	@Param			car_model_id	query	integer	true	"car model id"
//	@Param			car_engine_id	query	integer	false	"car engine id"
//	@Param			year			query	integer	false	"production year"
//	@Success		200	{object}	tCompatibleCheck	"успешная обработка запроса"
//	@failure		400	"неверный формат запроса"
//	@failure		500	"внутренняя ошибка сервера"
//	@Router			/api/catalog/parts/{id}/compatible [get]
func (s *Server) handlerCheckCompatibility(c *gin.Context) {
	ctx := c.Request.Context()
	sparePartID, err := parseIDParam(c, "id")
	if err != nil {
		c.Writer.WriteHeader(http.StatusNotFound)
		return
	}

	carModelID64, err := strconv.ParseUint(c.Query("car_model_id"), 10, 32)
	if err != nil {
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}
	carModelID := uint(carModelID64)

	var carEngineID *uint
	if raw := c.Query("car_engine_id"); raw != "" {
		engineID64, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.Writer.WriteHeader(http.StatusBadRequest)
			return
		}
		engineID := uint(engineID64)
		carEngineID = &engineID
	}

	var compatible bool
	if raw := c.Query("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			c.Writer.WriteHeader(http.StatusBadRequest)
			return
		}
		compatible, err = s.service.IsCompatibleWithYear(ctx, sparePartID, carModelID, carEngineID, year)
		if err != nil {
			s.log.Error("failed check compatibility", zap.Error(err))
			c.Writer.WriteHeader(http.StatusInternalServerError)
			return
		}
	} else {
		compatible, err = s.service.IsCompatibleWith(ctx, sparePartID, carModelID, carEngineID)
		if err != nil {
			s.log.Error("failed check compatibility", zap.Error(err))
			c.Writer.WriteHeader(http.StatusInternalServerError)
			return
		}
	}

	c.JSON(http.StatusOK, tCompatibleCheck{Compatible: compatible})
}
