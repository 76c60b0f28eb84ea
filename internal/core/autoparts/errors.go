package autoparts

import "errors"

var (
	ErrLoginNotValid        = errors.New("login not valid")
	ErrPasswordNotValid     = errors.New("password not valid")
	ErrPasswordNotEquale    = errors.New("password not equal")
	ErrAmountNotPositive    = errors.New("amount must be positive")
	ErrCommentRequired      = errors.New("admin comment is required")
	ErrSuggestionNotValid   = errors.New("suggestion not valid")
	ErrAnalogNotValid       = errors.New("analog not valid")
	ErrOrderEmpty           = errors.New("order has no items")
	ErrQuantityNotValid     = errors.New("quantity must be positive")
	ErrOrderStatusNotValid  = errors.New("unknown order status")
	ErrPaymentStatusInvalid = errors.New("unknown payment status")
	ErrNoteTextRequired     = errors.New("note text is required")
	ErrVinNotValid          = errors.New("vin number not valid")
)
