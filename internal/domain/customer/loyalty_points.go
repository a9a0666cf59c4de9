package customer

import (
	"strconv"

	apperrors "github.com/umalmyha/ordering/internal/errors"
)

// LoyaltyPoints is a non-negative reward balance.
type LoyaltyPoints struct {
	value int
}

// ZeroPoints is the valid resting balance of a brand-new customer. It is
// rejected as a delta by Customer.AddLoyaltyPoints.
var ZeroPoints = LoyaltyPoints{value: 0}

func NewLoyaltyPoints(value int) (LoyaltyPoints, error) {
	if value < 0 {
		return LoyaltyPoints{}, apperrors.NewValidationErr("loyaltyPoints", "loyalty points must not be negative")
	}
	return LoyaltyPoints{value: value}, nil
}

func (p LoyaltyPoints) Add(other LoyaltyPoints) LoyaltyPoints {
	return LoyaltyPoints{value: p.value + other.value}
}

func (p LoyaltyPoints) IsZero() bool {
	return p.value == 0
}

func (p LoyaltyPoints) Value() int {
	return p.value
}

func (p LoyaltyPoints) String() string {
	return strconv.Itoa(p.value)
}
