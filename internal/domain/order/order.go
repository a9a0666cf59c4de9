package order

import (
	"github.com/google/uuid"
	"github.com/umalmyha/ordering/internal/domain/customer"
	"github.com/umalmyha/ordering/internal/domain/money"
	apperrors "github.com/umalmyha/ordering/internal/errors"
)

// OrderID is an opaque order identifier.
type OrderID struct {
	value uuid.UUID
}

func NewOrderID() OrderID {
	id, err := uuid.NewV7()
	if err != nil {
		panic(err)
	}
	return OrderID{value: id}
}

func ParseOrderID(s string) (OrderID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return OrderID{}, apperrors.NewValidationErr("orderId", "malformed order id "+s)
	}
	return OrderID{value: id}, nil
}

func (id OrderID) String() string {
	return id.value.String()
}

type Status string

const (
	StatusDraft    Status = "DRAFT"
	StatusPlaced   Status = "PLACED"
	StatusPaid     Status = "PAID"
	StatusReady    Status = "READY"
	StatusCanceled Status = "CANCELED"
)

func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusDraft, StatusPlaced, StatusPaid, StatusReady, StatusCanceled:
		return st, nil
	default:
		return "", apperrors.NewValidationErr("status", "unknown order status "+s)
	}
}

// Order is the narrow read-only view of the order aggregate this module
// consumes: identity, owning customer, total amount and readiness. It is
// never constructed or mutated by the loyalty service itself.
type Order struct {
	id          OrderID
	customerID  customer.CustomerID
	totalAmount money.Money
	status      Status
}

func New(id OrderID, customerID customer.CustomerID, totalAmount money.Money, status Status) (*Order, error) {
	if customerID.IsZero() {
		return nil, apperrors.NewValidationErr("customerId", "order must reference its owning customer")
	}

	if _, err := ParseStatus(string(status)); err != nil {
		return nil, err
	}

	return &Order{
		id:          id,
		customerID:  customerID,
		totalAmount: totalAmount,
		status:      status,
	}, nil
}

func (o *Order) ID() OrderID {
	return o.id
}

func (o *Order) CustomerID() customer.CustomerID {
	return o.customerID
}

func (o *Order) TotalAmount() money.Money {
	return o.totalAmount
}

func (o *Order) Status() Status {
	return o.status
}

// IsReady reports whether the order reached the milestone required before
// loyalty points may be awarded.
func (o *Order) IsReady() bool {
	return o.status == StatusReady
}
