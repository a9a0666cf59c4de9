package customer

import (
	"github.com/google/uuid"
	apperrors "github.com/umalmyha/ordering/internal/errors"
)

// CustomerID is an opaque customer identifier, generated once at registration.
type CustomerID struct {
	value uuid.UUID
}

// NewCustomerID generates a time-ordered identifier so freshly registered
// customers sort by creation time in storage.
func NewCustomerID() CustomerID {
	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 fails only if the entropy source is broken
		panic(err)
	}
	return CustomerID{value: id}
}

func ParseCustomerID(s string) (CustomerID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return CustomerID{}, apperrors.NewValidationErr("customerId", "malformed customer id "+s)
	}
	return CustomerID{value: id}, nil
}

func (id CustomerID) IsZero() bool {
	return id.value == uuid.Nil
}

func (id CustomerID) String() string {
	return id.value.String()
}
