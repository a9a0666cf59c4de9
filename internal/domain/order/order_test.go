package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/umalmyha/ordering/internal/domain/customer"
	"github.com/umalmyha/ordering/internal/domain/money"
)

func TestNew(t *testing.T) {
	ord, err := New(NewOrderID(), customer.NewCustomerID(), money.MustNew("2500"), StatusReady)
	require.NoError(t, err)
	assert.True(t, ord.IsReady())

	_, err = New(NewOrderID(), customer.CustomerID{}, money.MustNew("2500"), StatusReady)
	assert.Error(t, err, "order without owning customer must be rejected")

	_, err = New(NewOrderID(), customer.NewCustomerID(), money.MustNew("2500"), Status("SHIPPED"))
	assert.Error(t, err, "unknown status must be rejected")
}

func TestIsReady(t *testing.T) {
	customerID := customer.NewCustomerID()
	for _, status := range []Status{StatusDraft, StatusPlaced, StatusPaid, StatusCanceled} {
		ord, err := New(NewOrderID(), customerID, money.MustNew("100"), status)
		require.NoError(t, err)
		assert.False(t, ord.IsReady(), "status %s must not be ready", status)
	}
}

func TestParseStatus(t *testing.T) {
	status, err := ParseStatus("READY")
	require.NoError(t, err)
	assert.Equal(t, StatusReady, status)

	_, err = ParseStatus("DELIVERED")
	assert.Error(t, err)
}
