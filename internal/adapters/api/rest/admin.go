package rest

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/playmixer/autoparts/internal/adapters/store/model"
	"go.uber.org/zap"
)

func (s *Server) readAdminBody(c *gin.Context, target interface{}) bool {
	bBody, err := io.ReadAll(c.Request.Body)
	if err != nil {
		s.log.Error("failed read body", zap.Error(err))
		c.JSON(http.StatusInternalServerError, tAdminResponse{Success: false, Message: "failed read request", Error: "internal error"})
		return false
	}
	defer func() {
		if err := c.Request.Body.Close(); err != nil {
			s.log.Error(msgErrorCloseBody, zap.Error(err))
		}
	}()

	if err := json.Unmarshal(bBody, target); err != nil {
		c.JSON(http.StatusBadRequest, tAdminResponse{Success: false, Message: "invalid request body", Error: err.Error()})
		return false
	}
	return true
}

func (s *Server) adminIDParam(c *gin.Context) (uint, bool) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusNotFound, tAdminResponse{Success: false, Message: "not found", Error: err.Error()})
		return 0, false
	}
	return id, true
}

//	@Summary	List suggestions
//	@Schemes
//	@Description	suggestions filtered by status
//	@Tags			admin
//	@Accept			plain
//	@Produce		json
//	@Param			status	query	string	false	"pending|approved|rejected"
//	@Success		200	{object}	tAdminResponse	"успешная обработка запроса"
//	@failure		400	"неизвестный статус"
//	@failure		401	"пользователь не авторизован"
//	@failure		403	"нет прав"
//	@failure		500	"внутренняя ошибка сервера"
//	@Router			/api/admin/suggestions [get]
func (s *Server) handlerAdminSuggestions(c *gin.Context) {
	suggestions, err := s.service.ListSuggestions(c.Request.Context(), model.SuggestionStatus(c.Query("status")))
	if err != nil {
		s.respondError(c, err, "failed list suggestions")
		return
	}

	response := []tSuggestion{}
	for _, suggestion := range suggestions {
		response = append(response, newTSuggestion(*suggestion))
	}
	c.JSON(http.StatusOK, tAdminResponse{Success: true, Data: response})
}

//	@Summary	Approve suggestion
//	@Schemes
//	@Description	approve a pending suggestion, materializing analog or compatibility records
//	@Tags			admin
//	@Accept			plain
//	@Produce		json
//	@Param			id	path	integer	true	"suggestion id"
//	@Success		200	{object}	tAdminResponse	"предложение одобрено"
//	@failure		400	"предложение уже рассмотрено"
//	@failure		404	"предложение не найдено"
//	@failure		500	"внутренняя ошибка сервера"
//	@Router			/api/admin/suggestions/{id}/approve [post]
func (s *Server) handlerAdminApproveSuggestion(c *gin.Context) {
	adminID, err := s.checkAuth(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}
	suggestionID, ok := s.adminIDParam(c)
	if !ok {
		return
	}

	suggestion, err := s.service.ApproveSuggestion(c.Request.Context(), suggestionID, adminID)
	if err != nil {
		s.respondError(c, err, "failed approve suggestion")
		return
	}

	c.JSON(http.StatusOK, tAdminResponse{Success: true, Message: "suggestion approved", Data: newTSuggestion(suggestion)})
}

//	@Summary	Reject suggestion
//	@Schemes
//	@Description	reject a pending suggestion, admin comment required
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			id		path	integer				true	"suggestion id"
//	@Param			reject	body	tRejectSuggestion	true	"rejection"
//	@Success		200	{object}	tAdminResponse	"предложение отклонено"
//	@failure		400	"нет комментария или предложение уже рассмотрено"
//	@failure		404	"предложение не найдено"
//	@failure		500	"внутренняя ошибка сервера"
//	@Router			/api/admin/suggestions/{id}/reject [post]
func (s *Server) handlerAdminRejectSuggestion(c *gin.Context) {
	adminID, err := s.checkAuth(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}
	suggestionID, ok := s.adminIDParam(c)
	if !ok {
		return
	}

	jBody := tRejectSuggestion{}
	if !s.readAdminBody(c, &jBody) {
		return
	}

	suggestion, err := s.service.RejectSuggestion(c.Request.Context(), suggestionID, adminID, jBody.AdminComment)
	if err != nil {
		s.respondError(c, err, "failed reject suggestion")
		return
	}

	c.JSON(http.StatusOK, tAdminResponse{Success: true, Message: "suggestion rejected", Data: newTSuggestion(suggestion)})
}

//	@Summary	Delete suggestion
//	@Schemes
//	@Description	delete a suggestion row, materialized records stay
//	@Tags			admin
//	@Accept			plain
//	@Produce		json
//	@Param			id	path	integer	true	"suggestion id"
//	@Success		200	{object}	tAdminResponse	"предложение удалено"
//	@failure		404	"предложение не найдено"
//	@failure		500	"внутренняя ошибка сервера"
//	@Router			/api/admin/suggestions/{id} [delete]
func (s *Server) handlerAdminDeleteSuggestion(c *gin.Context) {
	suggestionID, ok := s.adminIDParam(c)
	if !ok {
		return
	}

	if err := s.service.DeleteSuggestion(c.Request.Context(), suggestionID); err != nil {
		s.respondError(c, err, "failed delete suggestion")
		return
	}

	c.JSON(http.StatusOK, tAdminResponse{Success: true, Message: "suggestion deleted"})
}

//	@Summary	Update order status
//	@Schemes
//	@Description	change order status, the transition is appended to the history
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			id		path	integer				true	"order id"
//	@Param			status	body	tOrderStatusUpdate	true	"status"
//	@Success		200	{object}	tAdminResponse	"статус обновлён"
//	@failure		400	"неизвестный статус"
//	@failure		404	"заказ не найден"
//	@failure		500	"внутренняя ошибка сервера"
//	@Router			/api/admin/orders/{id}/status [put]
func (s *Server) handlerAdminOrderStatus(c *gin.Context) {
	adminID, err := s.checkAuth(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}
	orderID, ok := s.adminIDParam(c)
	if !ok {
		return
	}

	jBody := tOrderStatusUpdate{}
	if !s.readAdminBody(c, &jBody) {
		return
	}

	order, err := s.service.UpdateOrderStatus(c.Request.Context(), orderID, jBody.Status, adminID)
	if err != nil {
		s.respondError(c, err, "failed update order status")
		return
	}

	c.JSON(http.StatusOK, tAdminResponse{Success: true, Message: "order status updated", Data: newTOrder(order)})
}

//	@Summary	Add order note
//	@Schemes
//	@Description	append a note to the order
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			id		path	integer		true	"order id"
//	@Param			note	body	tOrderNote	true	"note"
//	@Success		200	{object}	tAdminResponse	"заметка добавлена"
//	@failure		400	"пустой текст"
//	@failure		404	"заказ не найден"
//	@failure		500	"внутренняя ошибка сервера"
//	@Router			/api/admin/orders/{id}/notes [post]
func (s *Server) handlerAdminOrderNote(c *gin.Context) {
	adminID, err := s.checkAuth(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}
	orderID, ok := s.adminIDParam(c)
	if !ok {
		return
	}

	jBody := tOrderNote{}
	if !s.readAdminBody(c, &jBody) {
		return
	}

	order, err := s.service.AddOrderNote(c.Request.Context(), orderID, jBody.Text, adminID)
	if err != nil {
		s.respondError(c, err, "failed add order note")
		return
	}

	c.JSON(http.StatusOK, tAdminResponse{Success: true, Message: "note added", Data: newTOrder(order)})
}

//	@Summary	Pay order from balance
//	@Schemes
//	@Description	settle the order remainder from the customer balance
//	@Tags			admin
//	@Accept			plain
//	@Produce		json
//	@Param			id	path	integer	true	"order id"
//	@Success		200	{object}	tAdminResponse	"заказ оплачен"
//	@failure		400	"заказ уже оплачен или недостаточно средств"
//	@failure		404	"заказ не найден"
//	@failure		500	"внутренняя ошибка сервера"
//	@Router			/api/admin/orders/{id}/pay-from-balance [post]
func (s *Server) handlerAdminPayFromBalance(c *gin.Context) {
	orderID, ok := s.adminIDParam(c)
	if !ok {
		return
	}

	payment, err := s.service.PayOrderFromBalance(c.Request.Context(), orderID)
	if err != nil {
		s.respondError(c, err, "failed pay order from balance")
		return
	}

	c.JSON(http.StatusOK, tAdminResponse{Success: true, Message: "order paid from balance", Data: newTPayment(payment)})
}

//	@Summary	Create payment
//	@Schemes
//	@Description	record a payment against an order
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			payment	body	tCreatePayment	true	"payment"
//	@Success		200	{object}	tAdminResponse	"платёж создан"
//	@failure		400	"неверная сумма или статус"
//	@failure		404	"заказ не найден"
//	@failure		500	"внутренняя ошибка сервера"
//	@Router			/api/admin/payments [post]
func (s *Server) handlerAdminCreatePayment(c *gin.Context) {
	adminID, err := s.checkAuth(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}

	jBody := tCreatePayment{}
	if !s.readAdminBody(c, &jBody) {
		return
	}

	payment, err := s.service.CreatePayment(c.Request.Context(), jBody.OrderID, jBody.Amount,
		jBody.PaymentMethod, jBody.Status, jBody.Notes, adminID)
	if err != nil {
		s.respondError(c, err, "failed create payment")
		return
	}

	c.JSON(http.StatusOK, tAdminResponse{Success: true, Message: "payment created", Data: newTPayment(payment)})
}

//	@Summary	Update payment status
//	@Schemes
//	@Description	completed payments may promote the order, refunds cancel it
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			id		path	integer					true	"payment id"
//	@Param			status	body	tPaymentStatusUpdate	true	"status"
//	@Success		200	{object}	tAdminResponse	"статус обновлён"
//	@failure		400	"неизвестный статус"
//	@failure		404	"платёж не найден"
//	@failure		500	"внутренняя ошибка сервера"
//	@Router			/api/admin/payments/{id}/status [put]
func (s *Server) handlerAdminPaymentStatus(c *gin.Context) {
	paymentID, ok := s.adminIDParam(c)
	if !ok {
		return
	}

	jBody := tPaymentStatusUpdate{}
	if !s.readAdminBody(c, &jBody) {
		return
	}

	payment, err := s.service.UpdatePaymentStatus(c.Request.Context(), paymentID, jBody.Status)
	if err != nil {
		s.respondError(c, err, "failed update payment status")
		return
	}

	c.JSON(http.StatusOK, tAdminResponse{Success: true, Message: "payment status updated", Data: newTPayment(payment)})
}

//	@Summary	Adjust user balance
//	@Schemes
//	@Description	signed balance correction, the resulting balance may go negative
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			id			path	integer			true	"user id"
//	@Param			adjustment	body	tAdjustBalance	true	"adjustment"
//	@Success		200	{object}	tAdminResponse	"баланс изменён"
//	@failure		400	"нулевая сумма"
//	@failure		404	"пользователь не найден"
//	@failure		500	"внутренняя ошибка сервера"
//	@Router			/api/admin/users/{id}/balance [post]
func (s *Server) handlerAdminAdjustBalance(c *gin.Context) {
	adminID, err := s.checkAuth(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}
	userID, ok := s.adminIDParam(c)
	if !ok {
		return
	}

	jBody := tAdjustBalance{}
	if !s.readAdminBody(c, &jBody) {
		return
	}

	transaction, err := s.service.AdjustBalance(c.Request.Context(), userID, jBody.Amount, jBody.Description, adminID)
	if err != nil {
		s.respondError(c, err, "failed adjust balance")
		return
	}

	c.JSON(http.StatusOK, tAdminResponse{Success: true, Message: "balance adjusted", Data: tBalanceTransaction{
		ID:           transaction.ID,
		Amount:       transaction.Amount,
		BalanceAfter: transaction.BalanceAfter,
		Operation:    transaction.OperationType,
		Description:  transaction.Description,
	}})
}

//	@Summary	Create brand
//	@Schemes
//	@Description	add a car brand to the catalog
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			brand	body	tCreateBrand	true	"brand"
//	@Success		200	{object}	tAdminResponse	"бренд создан"
//	@failure		409	"slug уже занят"
//	@failure		500	"внутренняя ошибка сервера"
//	@Router			/api/admin/brands [post]
func (s *Server) handlerAdminCreateBrand(c *gin.Context) {
	jBody := tCreateBrand{}
	if !s.readAdminBody(c, &jBody) {
		return
	}

	brand, err := s.service.CreateCarBrand(c.Request.Context(), model.CarBrand{
		Name:      jBody.Name,
		Country:   jBody.Country,
		IsPopular: jBody.IsPopular,
	})
	if err != nil {
		s.respondError(c, err, "failed create brand")
		return
	}

	c.JSON(http.StatusOK, tAdminResponse{Success: true, Message: "brand created", Data: brand})
}

//	@Summary	Create model
//	@Schemes
//	@Description	add a car model to the catalog
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			model	body	tCreateModel	true	"model"
//	@Success		200	{object}	tAdminResponse	"модель создана"
//	@failure		500	"внутренняя ошибка сервера"
//	@Router			/api/admin/models [post]
func (s *Server) handlerAdminCreateModel(c *gin.Context) {
	jBody := tCreateModel{}
	if !s.readAdminBody(c, &jBody) {
		return
	}

	carModel, err := s.service.CreateCarModel(c.Request.Context(), model.CarModel{
		BrandID:    jBody.BrandID,
		Name:       jBody.Name,
		Generation: jBody.Generation,
		YearStart:  jBody.YearStart,
		YearEnd:    jBody.YearEnd,
		IsPopular:  jBody.IsPopular,
	})
	if err != nil {
		s.respondError(c, err, "failed create model")
		return
	}

	c.JSON(http.StatusOK, tAdminResponse{Success: true, Message: "model created", Data: carModel})
}

//	@Summary	Create engine
//	@Schemes
//	@Description	add an engine to a car model
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			engine	body	tCreateEngine	true	"engine"
//	@Success		200	{object}	tAdminResponse	"двигатель создан"
//	@failure		500	"внутренняя ошибка сервера"
//	@Router			/api/admin/engines [post]
func (s *Server) handlerAdminCreateEngine(c *gin.Context) {
	jBody := tCreateEngine{}
	if !s.readAdminBody(c, &jBody) {
		return
	}

	engine, err := s.service.CreateCarEngine(c.Request.Context(), model.CarEngine{
		ModelID:   jBody.ModelID,
		Name:      jBody.Name,
		Type:      jBody.Type,
		Volume:    jBody.Volume,
		Power:     jBody.Power,
		YearStart: jBody.YearStart,
		YearEnd:   jBody.YearEnd,
	})
	if err != nil {
		s.respondError(c, err, "failed create engine")
		return
	}

	c.JSON(http.StatusOK, tAdminResponse{Success: true, Message: "engine created", Data: engine})
}

//	@Summary	Create spare part
//	@Schemes
//	@Description	add a spare part, availability derived from stock
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			part	body	tCreatePart	true	"part"
//	@Success		200	{object}	tAdminResponse	"запчасть создана"
//	@failure		409	"slug уже занят"
//	@failure		500	"внутренняя ошибка сервера"
//	@Router			/api/admin/parts [post]
func (s *Server) handlerAdminCreatePart(c *gin.Context) {
	jBody := tCreatePart{}
	if !s.readAdminBody(c, &jBody) {
		return
	}

	part, err := s.service.CreateSparePart(c.Request.Context(), model.SparePart{
		Name:          jBody.Name,
		Description:   jBody.Description,
		PartNumber:    jBody.PartNumber,
		Manufacturer:  jBody.Manufacturer,
		CategoryID:    jBody.CategoryID,
		Price:         jBody.Price,
		StockQuantity: jBody.StockQuantity,
	})
	if err != nil {
		s.respondError(c, err, "failed create part")
		return
	}

	c.JSON(http.StatusOK, tAdminResponse{Success: true, Message: "part created", Data: newTSparePart(part, part.Price)})
}

//	@Summary	Update part stock
//	@Schemes
//	@Description	apply a stock delta, availability recomputed, negative stock clamps or rejects by policy
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			id		path	integer			true	"part id"
//	@Param			stock	body	tStockUpdate	true	"stock delta"
//	@Success		200	{object}	tAdminResponse	"остаток обновлён"
//	@failure		400	"недостаточно товара"
//	@failure		404	"запчасть не найдена"
//	@failure		500	"внутренняя ошибка сервера"
//	@Router			/api/admin/parts/{id}/stock [put]
func (s *Server) handlerAdminUpdateStock(c *gin.Context) {
	sparePartID, ok := s.adminIDParam(c)
	if !ok {
		return
	}

	jBody := tStockUpdate{}
	if !s.readAdminBody(c, &jBody) {
		return
	}

	part, err := s.service.UpdateAvailability(c.Request.Context(), sparePartID, jBody.Delta)
	if err != nil {
		s.respondError(c, err, "failed update stock")
		return
	}

	c.JSON(http.StatusOK, tAdminResponse{Success: true, Message: "stock updated", Data: newTSparePart(part, part.Price)})
}

//	@Summary	Add compatibility
//	@Schemes
//	@Description	record a verified compatibility for a part, duplicates rejected
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			id				path	integer					true	"part id"
//	@Param			compatibility	body	tCreateCompatibility	true	"compatibility"
//	@Success		200	{object}	tAdminResponse	"совместимость добавлена"
//	@failure		400	"такая совместимость уже есть"
//	@failure		404	"запчасть или модель не найдена"
//	@failure		500	"внутренняя ошибка сервера"
//	@Router			/api/admin/parts/{id}/compatibilities [post]
func (s *Server) handlerAdminCreateCompatibility(c *gin.Context) {
	sparePartID, ok := s.adminIDParam(c)
	if !ok {
		return
	}

	jBody := tCreateCompatibility{}
	if !s.readAdminBody(c, &jBody) {
		return
	}

	compat, err := s.service.AddCompatibility(c.Request.Context(), model.SparePartCompatibility{
		SparePartID: sparePartID,
		CarModelID:  jBody.CarModelID,
		CarEngineID: jBody.CarEngineID,
		StartYear:   jBody.StartYear,
		EndYear:     jBody.EndYear,
		Notes:       jBody.Notes,
	})
	if err != nil {
		s.respondError(c, err, "failed create compatibility")
		return
	}

	c.JSON(http.StatusOK, tAdminResponse{Success: true, Message: "compatibility created", Data: compat})
}

//	@Summary	Add analog
//	@Schemes
//	@Description	record a verified analog edge, direct analogs get the mirrored edge
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			id		path	integer			true	"part id"
//	@Param			analog	body	tCreateAnalog	true	"analog"
//	@Success		200	{object}	tAdminResponse	"аналог добавлен"
//	@failure		400	"запчасть ссылается сама на себя"
//	@failure		404	"запчасть или аналог не найдены"
//	@failure		500	"внутренняя ошибка сервера"
//	@Router			/api/admin/parts/{id}/analogs [post]
func (s *Server) handlerAdminCreateAnalog(c *gin.Context) {
	sparePartID, ok := s.adminIDParam(c)
	if !ok {
		return
	}

	jBody := tCreateAnalog{}
	if !s.readAdminBody(c, &jBody) {
		return
	}

	analog, err := s.service.AddAnalog(c.Request.Context(), model.SparePartAnalog{
		SparePartID:       sparePartID,
		AnalogSparePartID: jBody.AnalogSparePartID,
		IsDirect:          jBody.IsDirect,
		Notes:             jBody.Notes,
	})
	if err != nil {
		s.respondError(c, err, "failed create analog")
		return
	}

	c.JSON(http.StatusOK, tAdminResponse{Success: true, Message: "analog created", Data: analog})
}

//	@Summary	List VIN requests
//	@Schemes
//	@Description	recorded VIN decode lookups
//	@Tags			admin
//	@Accept			plain
//	@Produce		json
//	@Success		200	{object}	tAdminResponse	"успешная обработка запроса"
//	@failure		500	"внутренняя ошибка сервера"
//	@Router			/api/admin/vin-requests [get]
func (s *Server) handlerAdminVinRequests(c *gin.Context) {
	requests, err := s.service.ListVinRequests(c.Request.Context())
	if err != nil {
		s.respondError(c, err, "failed list vin requests")
		return
	}

	response := []tVinRequest{}
	for _, request := range requests {
		response = append(response, tVinRequest{
			ID:        request.ID,
			UserID:    request.UserID,
			Vin:       request.Vin,
			Make:      request.Make,
			Model:     request.ModelName,
			Year:      request.Year,
			CreatedAt: request.CreatedAt.Format(time.RFC3339),
		})
	}
	c.JSON(http.StatusOK, tAdminResponse{Success: true, Data: response})
}
