package customer

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apperrors "github.com/umalmyha/ordering/internal/errors"
)

func registration() Registration {
	return Registration{
		FirstName:                     "John",
		LastName:                      "Doe",
		BirthDate:                     time.Date(1991, time.July, 5, 0, 0, 0, 0, time.UTC),
		Email:                         "john.doe@gmail.com",
		Phone:                         "478-256-2504",
		Document:                      "255-08-0578",
		PromotionNotificationsAllowed: false,
	}
}

func registeredCustomer(t *testing.T) *Customer {
	t.Helper()
	c, err := Register(registration())
	require.NoError(t, err)
	return c
}

func TestRegisterBrandNewCustomer(t *testing.T) {
	c := registeredCustomer(t)

	assert.False(t, c.IsArchived())
	assert.True(t, c.LoyaltyPoints().IsZero())
	assert.False(t, c.ID().IsZero())
	assert.False(t, c.RegisteredAt().IsZero())
	assert.Nil(t, c.ArchivedAt())
	assert.Equal(t, "john.doe@gmail.com", c.Email().String())
}

func TestRegisterInvalidEmail(t *testing.T) {
	reg := registration()
	reg.Email = "invalid"

	_, err := Register(reg)
	require.Error(t, err)

	var validationErr *apperrors.ValidationErr
	assert.ErrorAs(t, err, &validationErr)
}

func TestRegisterInvalidPhone(t *testing.T) {
	reg := registration()
	reg.Phone = "not-a-phone"

	_, err := Register(reg)
	var validationErr *apperrors.ValidationErr
	assert.ErrorAs(t, err, &validationErr)
}

func TestRegisterInvalidDocument(t *testing.T) {
	reg := registration()
	reg.Document = "12345"

	_, err := Register(reg)
	var validationErr *apperrors.ValidationErr
	assert.ErrorAs(t, err, &validationErr)
}

func TestChangeEmail(t *testing.T) {
	c := registeredCustomer(t)

	require.NoError(t, c.ChangeEmail("john.doe@hotmail.com"))
	assert.Equal(t, "john.doe@hotmail.com", c.Email().String())
}

func TestChangeEmailInvalid(t *testing.T) {
	c := registeredCustomer(t)

	err := c.ChangeEmail("invalid")
	require.Error(t, err)
	assert.Equal(t, "john.doe@gmail.com", c.Email().String(), "failed change must not touch prior state")
}

func TestArchiveAnonymizes(t *testing.T) {
	c := registeredCustomer(t)
	require.NoError(t, c.AddLoyaltyPoints(points(t, 10)))

	require.NoError(t, c.Archive())

	expectedName, err := NewFullName("Anonymous", "Anonymous")
	require.NoError(t, err)

	assert.True(t, c.IsArchived())
	assert.Equal(t, expectedName, c.FullName())
	assert.NotEqual(t, "john.doe@gmail.com", c.Email().String())
	assert.True(t, strings.HasSuffix(c.Email().String(), "@anonymous.com"))
	assert.Equal(t, "000-000-0000", c.Phone().String())
	assert.Equal(t, "000-000-0000", c.Document().String())
	assert.Nil(t, c.BirthDate())
	assert.False(t, c.IsPromotionNotificationsAllowed())
	assert.NotNil(t, c.ArchivedAt())
	assert.Equal(t, 10, c.LoyaltyPoints().Value(), "archiving keeps the earned balance")
}

func TestArchivedCustomerIsFrozen(t *testing.T) {
	c := registeredCustomer(t)
	require.NoError(t, c.Archive())

	snapBefore := c.Snapshot()

	assert.ErrorIs(t, c.Archive(), ErrArchived)
	assert.ErrorIs(t, c.ChangeEmail("email@gmail.com"), ErrArchived)
	assert.ErrorIs(t, c.ChangePhone("123-123-1111"), ErrArchived)
	assert.ErrorIs(t, c.ChangeName("Jane", "Doe"), ErrArchived)
	assert.ErrorIs(t, c.ChangeBirthDate(time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC)), ErrArchived)
	assert.ErrorIs(t, c.EnablePromotionNotifications(), ErrArchived)
	assert.ErrorIs(t, c.DisablePromotionNotifications(), ErrArchived)
	assert.ErrorIs(t, c.AddLoyaltyPoints(points(t, 10)), ErrArchived)

	assert.Equal(t, snapBefore, c.Snapshot(), "failed attempts must not alter anonymized state")
}

func TestRestoreArchivedCustomer(t *testing.T) {
	now := time.Now().UTC()
	c, err := Restore(Snapshot{
		ID:            NewCustomerID().String(),
		FirstName:     "Anonymous",
		LastName:      "Anonymous",
		Email:         "anonymous@anonymous.com",
		Phone:         "000-000-0000",
		Document:      "000-000-0000",
		Archived:      true,
		RegisteredAt:  now,
		ArchivedAt:    &now,
		LoyaltyPoints: 10,
	})
	require.NoError(t, err)

	assert.True(t, c.IsArchived())
	assert.Nil(t, c.BirthDate())
	assert.Equal(t, 10, c.LoyaltyPoints().Value())
	assert.ErrorIs(t, c.ChangeEmail("email@gmail.com"), ErrArchived)
}

func TestRestoreRoundTrip(t *testing.T) {
	c := registeredCustomer(t)
	require.NoError(t, c.AddLoyaltyPoints(points(t, 30)))

	restored, err := Restore(c.Snapshot())
	require.NoError(t, err)
	assert.Equal(t, c.Snapshot(), restored.Snapshot())
}

func TestRestoreRejectsNegativePoints(t *testing.T) {
	snap := registeredCustomer(t).Snapshot()
	snap.LoyaltyPoints = -1

	_, err := Restore(snap)
	var validationErr *apperrors.ValidationErr
	assert.ErrorAs(t, err, &validationErr)
}

func TestAddLoyaltyPointsSumsUp(t *testing.T) {
	c := registeredCustomer(t)

	require.NoError(t, c.AddLoyaltyPoints(points(t, 10)))
	require.NoError(t, c.AddLoyaltyPoints(points(t, 20)))

	assert.Equal(t, 30, c.LoyaltyPoints().Value())
}

func TestAddZeroLoyaltyPoints(t *testing.T) {
	c := registeredCustomer(t)

	assert.ErrorIs(t, c.AddLoyaltyPoints(ZeroPoints), ErrZeroPointsAdded)
	assert.True(t, c.LoyaltyPoints().IsZero())
}

func TestNegativeLoyaltyPoints(t *testing.T) {
	_, err := NewLoyaltyPoints(-10)

	var validationErr *apperrors.ValidationErr
	assert.ErrorAs(t, err, &validationErr)
}

func TestChangeName(t *testing.T) {
	c := registeredCustomer(t)

	require.NoError(t, c.ChangeName("Matt", "Damon"))
	assert.Equal(t, "Matt Damon", c.FullName().String())
}

func points(t *testing.T, value int) LoyaltyPoints {
	t.Helper()
	p, err := NewLoyaltyPoints(value)
	require.NoError(t, err)
	return p
}
