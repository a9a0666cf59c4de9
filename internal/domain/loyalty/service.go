package loyalty

import (
	"github.com/umalmyha/ordering/internal/domain/customer"
	"github.com/umalmyha/ordering/internal/domain/money"
	"github.com/umalmyha/ordering/internal/domain/order"
	apperrors "github.com/umalmyha/ordering/internal/errors"
)

var (
	// ErrOrderNotBelongsToCustomer rejects awarding points for an order
	// owned by a different customer.
	ErrOrderNotBelongsToCustomer = apperrors.NewConsistencyErr("order", "order does not belong to the customer")
	// ErrOrderNotReady rejects awarding points before the order reached
	// its ready milestone.
	ErrOrderNotReady = apperrors.NewConsistencyErr("order", "order is not ready for loyalty points")
)

// Policy holds the award calculation constants: BasePoints are granted per
// every ExpectedAmount of the order total.
type Policy struct {
	BasePoints     customer.LoyaltyPoints
	ExpectedAmount money.Money
}

func DefaultPolicy() Policy {
	basePoints, err := customer.NewLoyaltyPoints(5)
	if err != nil {
		panic(err)
	}
	return Policy{
		BasePoints:     basePoints,
		ExpectedAmount: money.MustNew("1000"),
	}
}

// Service awards loyalty points to a customer for a qualifying order. It is
// stateless apart from its policy and mutates only the passed-in customer.
type Service struct {
	policy Policy
}

func NewService(policy Policy) *Service {
	return &Service{policy: policy}
}

// AddPoints validates that the order belongs to the customer and is ready,
// then credits base * floor(total / expected amount) points. An award of
// zero leaves the customer untouched.
func (s *Service) AddPoints(cust *customer.Customer, ord *order.Order) error {
	if cust == nil {
		return apperrors.NewPreconditionErr("customer is required")
	}
	if ord == nil {
		return apperrors.NewPreconditionErr("order is required")
	}

	if cust.ID() != ord.CustomerID() {
		return ErrOrderNotBelongsToCustomer
	}

	if !ord.IsReady() {
		return ErrOrderNotReady
	}

	points, err := s.calculatePoints(ord)
	if err != nil {
		return err
	}

	if points.IsZero() {
		return nil
	}
	return cust.AddLoyaltyPoints(points)
}

func (s *Service) calculatePoints(ord *order.Order) (customer.LoyaltyPoints, error) {
	if !ord.TotalAmount().GreaterThanOrEqual(s.policy.ExpectedAmount) {
		return customer.ZeroPoints, nil
	}

	multiplier, err := ord.TotalAmount().Times(s.policy.ExpectedAmount)
	if err != nil {
		return customer.ZeroPoints, err
	}
	return customer.NewLoyaltyPoints(int(multiplier) * s.policy.BasePoints.Value())
}
