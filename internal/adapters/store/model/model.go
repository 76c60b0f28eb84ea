package model

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Login         string `gorm:"unique"`
	PasswordHash  string
	Role          Role `gorm:"default:user"`
	ID            uint `gorm:"primarykey"`
	Balance       float64
	MarkupPercent float64
}

type CarBrand struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	Name      string
	Slug      string `gorm:"unique"`
	Country   string
	ID        uint `gorm:"primarykey"`
	IsPopular bool
}

type CarModel struct {
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Name       string
	Slug       string
	Generation string
	Brand      CarBrand `gorm:"foreignKey:BrandID"`
	ID         uint     `gorm:"primarykey"`
	BrandID    uint     `gorm:"index"`
	YearStart  int
	YearEnd    int
	IsPopular  bool
}

type CarEngine struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	Name      string
	Slug      string
	Type      string
	Volume    string
	Model     CarModel `gorm:"foreignKey:ModelID"`
	ID        uint     `gorm:"primarykey"`
	ModelID   uint     `gorm:"index"`
	Power     int
	YearStart int
	YearEnd   int
}

type SparePart struct {
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Name          string
	Slug          string `gorm:"unique"`
	Description   string
	PartNumber    string `gorm:"index"`
	Manufacturer  string `gorm:"index"`
	ID            uint   `gorm:"primarykey"`
	CategoryID    uint
	Price         float64
	StockQuantity int
	IsAvailable   bool
}

// SparePartCompatibility states that a part fits a car model, optionally
// narrowed to an engine and a production year range. Nil bounds mean
// unbounded on that side.
type SparePartCompatibility struct {
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Notes       string
	SparePart   SparePart
	CarModel    CarModel
	ID          uint  `gorm:"primarykey"`
	SparePartID uint  `gorm:"index"`
	CarModelID  uint  `gorm:"index"`
	CarEngineID *uint `gorm:"index"`
	StartYear   *int
	EndYear     *int
	IsVerified  bool
}

// SparePartAnalog is a directional interchangeability edge. Direct analogs
// get a mirrored edge on approval, substitutes stay one-way.
type SparePartAnalog struct {
	CreatedAt         time.Time
	UpdatedAt         time.Time
	Notes             string
	SparePart         SparePart
	AnalogSparePart   SparePart `gorm:"foreignKey:AnalogSparePartID"`
	ID                uint      `gorm:"primarykey"`
	SparePartID       uint      `gorm:"index"`
	AnalogSparePartID uint      `gorm:"index"`
	IsDirect          bool      `gorm:"default:true"`
	IsVerified        bool
}

type SuggestionType string

const (
	SuggestionAnalog        SuggestionType = "analog"
	SuggestionCompatibility SuggestionType = "compatibility"
)

type SuggestionStatus string

const (
	SuggestionPending  SuggestionStatus = "pending"
	SuggestionApproved SuggestionStatus = "approved"
	SuggestionRejected SuggestionStatus = "rejected"
)

// SuggestionData stages the payload of a suggestion until moderation.
// For analogs it can describe a part that does not exist in the catalog yet.
type SuggestionData struct {
	AnalogArticle     string `json:"analog_article,omitempty"`
	AnalogBrand       string `json:"analog_brand,omitempty"`
	AnalogDescription string `json:"analog_description,omitempty"`
	AnalogType        string `json:"analog_type,omitempty"`
	NeedCreatePart    bool   `json:"need_create_part,omitempty"`
	CarBrandID        uint   `json:"car_brand_id,omitempty"`
	CarModelID        uint   `json:"car_model_id,omitempty"`
	CarEngineID       *uint  `json:"car_engine_id,omitempty"`
	StartYear         *int   `json:"start_year,omitempty"`
	EndYear           *int   `json:"end_year,omitempty"`
}

type UserSuggestion struct {
	CreatedAt         time.Time
	UpdatedAt         time.Time
	Comment           string
	AdminComment      string
	Type              SuggestionType   `gorm:"column:suggestion_type"`
	Status            SuggestionStatus `gorm:"default:pending"`
	Data              SuggestionData   `gorm:"serializer:json"`
	User              User
	SparePart         SparePart
	ApprovedAt        *time.Time
	ID                uint `gorm:"primarykey"`
	UserID            uint `gorm:"index"`
	SparePartID       uint `gorm:"index"`
	AnalogSparePartID *uint
	CarModelID        *uint
	ApprovedBy        *uint
}

type OperationType string

const (
	OperationDeposit      OperationType = "deposit"
	OperationWithdraw     OperationType = "withdraw"
	OperationAdjustment   OperationType = "adjustment"
	OperationOrderPayment OperationType = "order_payment"
	OperationRefund       OperationType = "refund"
)

// BalanceTransaction is an append-only ledger row. BalanceAfter always equals
// User.Balance at the moment the row was written.
type BalanceTransaction struct {
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Description   string
	OperationType OperationType
	User          User
	ID            uint `gorm:"primarykey"`
	UserID        uint `gorm:"index"`
	Amount        float64
	BalanceAfter  float64
	PaymentID     *uint
	OrderID       *uint
	AdminID       *uint
}

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

type StatusChange struct {
	From      OrderStatus `json:"from"`
	To        OrderStatus `json:"to"`
	ChangedAt time.Time   `json:"changed_at"`
	ChangedBy uint        `json:"changed_by"`
}

type OrderNote struct {
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	CreatedBy uint      `json:"created_by"`
}

type Order struct {
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Number        string         `gorm:"unique"`
	Status        OrderStatus    `gorm:"default:pending"`
	StatusHistory []StatusChange `gorm:"serializer:json"`
	Notes         []OrderNote    `gorm:"serializer:json"`
	User          User
	Items         []OrderItem
	ID            uint `gorm:"primarykey"`
	UserID        uint `gorm:"index"`
	PaymentID     *uint
	TotalPrice    float64
}

// OrderItem snapshots the part price at order time.
type OrderItem struct {
	CreatedAt   time.Time
	UpdatedAt   time.Time
	SparePart   SparePart
	ID          uint `gorm:"primarykey"`
	OrderID     uint `gorm:"index"`
	SparePartID uint
	Quantity    int
	Price       float64
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

type Payment struct {
	CreatedAt     time.Time
	UpdatedAt     time.Time
	TransactionID string
	Currency      string `gorm:"default:RUB"`
	Notes         string
	PaymentMethod string
	Status        PaymentStatus `gorm:"default:pending"`
	PaymentDate   *time.Time
	RefundDate    *time.Time
	ID            uint `gorm:"primarykey"`
	OrderID       uint `gorm:"index"`
	UserID        uint `gorm:"index"`
	Amount        float64
}

type VinRequest struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	Vin       string `gorm:"index"`
	Make      string
	ModelName string
	ID        uint `gorm:"primarykey"`
	UserID    uint `gorm:"index"`
	Year      int
}
