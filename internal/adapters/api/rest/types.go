package rest

import (
	"time"

	"github.com/playmixer/autoparts/internal/adapters/store/model"
)

type tRegistration struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type tAuthorization struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type tAdminResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Success bool        `json:"success"`
}

type tOrderItemRequest struct {
	SparePartID uint `json:"spare_part_id"`
	Quantity    int  `json:"quantity"`
}

type tCreateOrder struct {
	Items []tOrderItemRequest `json:"items"`
}

type tOrderItem struct {
	SparePartID uint    `json:"spare_part_id"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

type tOrder struct {
	CreatedAt  string            `json:"created_at"`
	Number     string            `json:"number"`
	Status     model.OrderStatus `json:"status"`
	Items      []tOrderItem      `json:"items"`
	ID         uint              `json:"id"`
	TotalPrice float64           `json:"total_price"`
}

func newTOrder(order model.Order) tOrder {
	result := tOrder{
		ID:         order.ID,
		Number:     order.Number,
		Status:     order.Status,
		TotalPrice: order.TotalPrice,
		CreatedAt:  order.CreatedAt.Format(time.RFC3339),
		Items:      []tOrderItem{},
	}
	for _, item := range order.Items {
		result.Items = append(result.Items, tOrderItem{
			SparePartID: item.SparePartID,
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
	}
	return result
}

type tBalance struct {
	Balance float64 `json:"balance"`
}

type tBalanceTransaction struct {
	CreatedAt    string              `json:"created_at"`
	Operation    model.OperationType `json:"operation"`
	Description  string              `json:"description"`
	ID           uint                `json:"id"`
	Amount       float64             `json:"amount"`
	BalanceAfter float64             `json:"balance_after"`
}

type tAnalogSuggestion struct {
	Article     string `json:"article"`
	Brand       string `json:"brand"`
	Description string `json:"description"`
	AnalogType  string `json:"analog_type"`
	Comment     string `json:"comment"`
	SparePartID uint   `json:"spare_part_id"`
}

type tCompatibilitySuggestion struct {
	Comment     string `json:"comment"`
	CarEngineID *uint  `json:"car_engine_id"`
	StartYear   *int   `json:"start_year"`
	EndYear     *int   `json:"end_year"`
	SparePartID uint   `json:"spare_part_id"`
	CarModelID  uint   `json:"car_model_id"`
}

type tSuggestion struct {
	CreatedAt    string                 `json:"created_at"`
	Type         model.SuggestionType   `json:"type"`
	Status       model.SuggestionStatus `json:"status"`
	Comment      string                 `json:"comment,omitempty"`
	AdminComment string                 `json:"admin_comment,omitempty"`
	ID           uint                   `json:"id"`
	SparePartID  uint                   `json:"spare_part_id"`
}

func newTSuggestion(suggestion model.UserSuggestion) tSuggestion {
	return tSuggestion{
		ID:           suggestion.ID,
		Type:         suggestion.Type,
		Status:       suggestion.Status,
		Comment:      suggestion.Comment,
		AdminComment: suggestion.AdminComment,
		SparePartID:  suggestion.SparePartID,
		CreatedAt:    suggestion.CreatedAt.Format(time.RFC3339),
	}
}

type tVin struct {
	Vin string `json:"vin"`
}

type tSparePart struct {
	Name          string  `json:"name"`
	Slug          string  `json:"slug"`
	Description   string  `json:"description,omitempty"`
	PartNumber    string  `json:"part_number"`
	Manufacturer  string  `json:"manufacturer"`
	ID            uint    `json:"id"`
	CategoryID    uint    `json:"category_id,omitempty"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stock_quantity"`
	IsAvailable   bool    `json:"is_available"`
}

func newTSparePart(part model.SparePart, price float64) tSparePart {
	return tSparePart{
		ID:            part.ID,
		Name:          part.Name,
		Slug:          part.Slug,
		Description:   part.Description,
		PartNumber:    part.PartNumber,
		Manufacturer:  part.Manufacturer,
		CategoryID:    part.CategoryID,
		Price:         price,
		StockQuantity: part.StockQuantity,
		IsAvailable:   part.IsAvailable,
	}
}

type tCompatibleCheck struct {
	Compatible bool `json:"compatible"`
}

type tCreateBrand struct {
	Name      string `json:"name"`
	Country   string `json:"country"`
	IsPopular bool   `json:"is_popular"`
}

type tCreateModel struct {
	Name       string `json:"name"`
	Generation string `json:"generation"`
	BrandID    uint   `json:"brand_id"`
	YearStart  int    `json:"year_start"`
	YearEnd    int    `json:"year_end"`
	IsPopular  bool   `json:"is_popular"`
}

type tCreateEngine struct {
	Name      string `json:"name"`
	Type      string `json:"type"`
	Volume    string `json:"volume"`
	ModelID   uint   `json:"model_id"`
	Power     int    `json:"power"`
	YearStart int    `json:"year_start"`
	YearEnd   int    `json:"year_end"`
}

type tCreatePart struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	PartNumber    string  `json:"part_number"`
	Manufacturer  string  `json:"manufacturer"`
	CategoryID    uint    `json:"category_id"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stock_quantity"`
}

type tStockUpdate struct {
	Delta int `json:"delta"`
}

type tCreateCompatibility struct {
	Notes       string `json:"notes"`
	CarEngineID *uint  `json:"car_engine_id"`
	StartYear   *int   `json:"start_year"`
	EndYear     *int   `json:"end_year"`
	CarModelID  uint   `json:"car_model_id"`
}

type tCreateAnalog struct {
	Notes             string `json:"notes"`
	AnalogSparePartID uint   `json:"analog_spare_part_id"`
	IsDirect          bool   `json:"is_direct"`
}

type tAdjustBalance struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

type tOrderStatusUpdate struct {
	Status model.OrderStatus `json:"status"`
}

type tOrderNote struct {
	Text string `json:"text"`
}

type tCreatePayment struct {
	PaymentMethod string              `json:"payment_method"`
	Notes         string              `json:"notes"`
	Status        model.PaymentStatus `json:"status"`
	OrderID       uint                `json:"order_id"`
	Amount        float64             `json:"amount"`
}

type tPaymentStatusUpdate struct {
	Status model.PaymentStatus `json:"status"`
}

type tPayment struct {
	CreatedAt     string              `json:"created_at"`
	TransactionID string              `json:"transaction_id"`
	PaymentMethod string              `json:"payment_method"`
	Status        model.PaymentStatus `json:"status"`
	ID            uint                `json:"id"`
	OrderID       uint                `json:"order_id"`
	Amount        float64             `json:"amount"`
}

func newTPayment(payment model.Payment) tPayment {
	return tPayment{
		ID:            payment.ID,
		OrderID:       payment.OrderID,
		Amount:        payment.Amount,
		Status:        payment.Status,
		PaymentMethod: payment.PaymentMethod,
		TransactionID: payment.TransactionID,
		CreatedAt:     payment.CreatedAt.Format(time.RFC3339),
	}
}

type tRejectSuggestion struct {
	AdminComment string `json:"admin_comment"`
}

type tVinRequest struct {
	CreatedAt string `json:"created_at"`
	Vin       string `json:"vin"`
	Make      string `json:"make"`
	Model     string `json:"model"`
	ID        uint   `json:"id"`
	UserID    uint   `json:"user_id"`
	Year      int    `json:"year"`
}
