package errstore

import "errors"

var (
	ErrNotFoundData          = errors.New("data not found")
	ErrLoginNotUnique        = errors.New("login already exists")
	ErrSlugNotUnique         = errors.New("slug already exists")
	ErrSuggestionNotPending  = errors.New("suggestion is not pending")
	ErrBalanceNotEnough      = errors.New("not enough balance")
	ErrNotEnoughStock        = errors.New("not enough stock")
	ErrPaymentNotPending     = errors.New("payment is not pending")
	ErrOrderAlreadyPaid      = errors.New("order already paid")
	ErrAnalogTargetUnknown   = errors.New("analog target is not set")
	ErrCompatibilityConflict = errors.New("compatibility already exists")
)
