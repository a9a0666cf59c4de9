package customer

import (
	apperrors "github.com/umalmyha/ordering/internal/errors"
)

var (
	// ErrArchived rejects any mutation of an archived customer.
	ErrArchived = apperrors.NewStateErr("customer", "customer is archived and can no longer be modified")
	// ErrZeroPointsAdded rejects an add of a zero delta; ZeroPoints is a
	// valid balance but never a valid award.
	ErrZeroPointsAdded = apperrors.NewValidationErr("loyaltyPoints", "added loyalty points must be greater than zero")
)
