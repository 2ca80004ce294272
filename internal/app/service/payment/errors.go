package payment

import "errors"

// ErrInvalidAmount rejects non-positive payment amounts.
var ErrInvalidAmount = errors.New("payment amount must be positive")

// ErrInvalidMethod rejects unknown payment methods.
var ErrInvalidMethod = errors.New("unknown payment method")
