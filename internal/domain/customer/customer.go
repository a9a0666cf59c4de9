package customer

import (
	"time"

	"github.com/google/uuid"
)

const (
	anonymizedName       = "Anonymous"
	anonymizedPhone      = "000-000-0000"
	anonymizedDocument   = "000-000-0000"
	anonymousEmailDomain = "anonymous.com"
)

// Customer is the aggregate root owning identity, contact data, archival
// state and the loyalty point balance. All mutation goes through its methods,
// which enforce format validity and the archived guard. An archived customer
// is frozen - every mutator fails with ErrArchived.
type Customer struct {
	id                            CustomerID
	fullName                      FullName
	birthDate                     *BirthDate
	email                         Email
	phone                         Phone
	document                      Document
	promotionNotificationsAllowed bool
	archived                      bool
	registeredAt                  time.Time
	archivedAt                    *time.Time
	loyaltyPoints                 LoyaltyPoints
}

// Registration carries the raw input of a brand-new customer. Validation of
// every field happens inside Register, so call sites stay free of it.
type Registration struct {
	ID                            CustomerID
	FirstName                     string
	LastName                      string
	BirthDate                     time.Time
	Email                         string
	Phone                         string
	Document                      string
	PromotionNotificationsAllowed bool
	RegisteredAt                  time.Time
}

func Register(reg Registration) (*Customer, error) {
	fullName, err := NewFullName(reg.FirstName, reg.LastName)
	if err != nil {
		return nil, err
	}

	birthDate, err := NewBirthDate(reg.BirthDate)
	if err != nil {
		return nil, err
	}

	email, err := NewEmail(reg.Email)
	if err != nil {
		return nil, err
	}

	phone, err := NewPhone(reg.Phone)
	if err != nil {
		return nil, err
	}

	document, err := NewDocument(reg.Document)
	if err != nil {
		return nil, err
	}

	id := reg.ID
	if id.IsZero() {
		id = NewCustomerID()
	}

	registeredAt := reg.RegisteredAt
	if registeredAt.IsZero() {
		registeredAt = time.Now().UTC()
	}

	return &Customer{
		id:                            id,
		fullName:                      fullName,
		birthDate:                     &birthDate,
		email:                         email,
		phone:                         phone,
		document:                      document,
		promotionNotificationsAllowed: reg.PromotionNotificationsAllowed,
		archived:                      false,
		registeredAt:                  registeredAt,
		loyaltyPoints:                 ZeroPoints,
	}, nil
}

// Snapshot carries every persisted field of a customer. It is how storage and
// cache reconstitute the aggregate without spreading validation over call
// sites.
type Snapshot struct {
	ID                            string
	FirstName                     string
	LastName                      string
	BirthDate                     *time.Time
	Email                         string
	Phone                         string
	Document                      string
	PromotionNotificationsAllowed bool
	Archived                      bool
	RegisteredAt                  time.Time
	ArchivedAt                    *time.Time
	LoyaltyPoints                 int
}

// Restore reconstitutes a customer from a stored snapshot, re-running the
// same validators used at registration and mutation.
func Restore(snap Snapshot) (*Customer, error) {
	id, err := ParseCustomerID(snap.ID)
	if err != nil {
		return nil, err
	}

	fullName, err := NewFullName(snap.FirstName, snap.LastName)
	if err != nil {
		return nil, err
	}

	email, err := NewEmail(snap.Email)
	if err != nil {
		return nil, err
	}

	phone, err := NewPhone(snap.Phone)
	if err != nil {
		return nil, err
	}

	document, err := NewDocument(snap.Document)
	if err != nil {
		return nil, err
	}

	points, err := NewLoyaltyPoints(snap.LoyaltyPoints)
	if err != nil {
		return nil, err
	}

	var birthDate *BirthDate
	if snap.BirthDate != nil {
		bd, err := NewBirthDate(*snap.BirthDate)
		if err != nil {
			return nil, err
		}
		birthDate = &bd
	}

	return &Customer{
		id:                            id,
		fullName:                      fullName,
		birthDate:                     birthDate,
		email:                         email,
		phone:                         phone,
		document:                      document,
		promotionNotificationsAllowed: snap.PromotionNotificationsAllowed,
		archived:                      snap.Archived,
		registeredAt:                  snap.RegisteredAt,
		archivedAt:                    snap.ArchivedAt,
		loyaltyPoints:                 points,
	}, nil
}

func (c *Customer) Snapshot() Snapshot {
	var birthDate *time.Time
	if c.birthDate != nil {
		bd := c.birthDate.Value()
		birthDate = &bd
	}

	return Snapshot{
		ID:                            c.id.String(),
		FirstName:                     c.fullName.FirstName(),
		LastName:                      c.fullName.LastName(),
		BirthDate:                     birthDate,
		Email:                         c.email.String(),
		Phone:                         c.phone.String(),
		Document:                      c.document.String(),
		PromotionNotificationsAllowed: c.promotionNotificationsAllowed,
		Archived:                      c.archived,
		RegisteredAt:                  c.registeredAt,
		ArchivedAt:                    c.archivedAt,
		LoyaltyPoints:                 c.loyaltyPoints.Value(),
	}
}

func (c *Customer) ChangeEmail(newEmail string) error {
	if err := c.assertNotArchived(); err != nil {
		return err
	}

	email, err := NewEmail(newEmail)
	if err != nil {
		return err
	}

	c.email = email
	return nil
}

func (c *Customer) ChangePhone(newPhone string) error {
	if err := c.assertNotArchived(); err != nil {
		return err
	}

	phone, err := NewPhone(newPhone)
	if err != nil {
		return err
	}

	c.phone = phone
	return nil
}

func (c *Customer) ChangeName(firstName, lastName string) error {
	if err := c.assertNotArchived(); err != nil {
		return err
	}

	fullName, err := NewFullName(firstName, lastName)
	if err != nil {
		return err
	}

	c.fullName = fullName
	return nil
}

func (c *Customer) ChangeBirthDate(newBirthDate time.Time) error {
	if err := c.assertNotArchived(); err != nil {
		return err
	}

	birthDate, err := NewBirthDate(newBirthDate)
	if err != nil {
		return err
	}

	c.birthDate = &birthDate
	return nil
}

func (c *Customer) EnablePromotionNotifications() error {
	if err := c.assertNotArchived(); err != nil {
		return err
	}

	c.promotionNotificationsAllowed = true
	return nil
}

func (c *Customer) DisablePromotionNotifications() error {
	if err := c.assertNotArchived(); err != nil {
		return err
	}

	c.promotionNotificationsAllowed = false
	return nil
}

// AddLoyaltyPoints increases the balance by a strictly positive delta. The
// archived guard applies like to every other mutation.
func (c *Customer) AddLoyaltyPoints(points LoyaltyPoints) error {
	if err := c.assertNotArchived(); err != nil {
		return err
	}

	if points.IsZero() {
		return ErrZeroPointsAdded
	}

	c.loyaltyPoints = c.loyaltyPoints.Add(points)
	return nil
}

// Archive anonymizes the customer and freezes the record. The transition is
// one-way - a second call fails with ErrArchived and changes nothing.
func (c *Customer) Archive() error {
	if err := c.assertNotArchived(); err != nil {
		return err
	}

	anonymousName, err := NewFullName(anonymizedName, anonymizedName)
	if err != nil {
		return err
	}

	anonymousEmail, err := NewEmail(uuid.NewString() + "@" + anonymousEmailDomain)
	if err != nil {
		return err
	}

	anonymousPhone, err := NewPhone(anonymizedPhone)
	if err != nil {
		return err
	}

	anonymousDocument, err := NewDocument(anonymizedDocument)
	if err != nil {
		return err
	}

	now := time.Now().UTC()

	c.fullName = anonymousName
	c.email = anonymousEmail
	c.phone = anonymousPhone
	c.document = anonymousDocument
	c.birthDate = nil
	c.promotionNotificationsAllowed = false
	c.archived = true
	c.archivedAt = &now
	return nil
}

func (c *Customer) ID() CustomerID {
	return c.id
}

func (c *Customer) FullName() FullName {
	return c.fullName
}

func (c *Customer) BirthDate() *BirthDate {
	return c.birthDate
}

func (c *Customer) Email() Email {
	return c.email
}

func (c *Customer) Phone() Phone {
	return c.phone
}

func (c *Customer) Document() Document {
	return c.document
}

func (c *Customer) IsPromotionNotificationsAllowed() bool {
	return c.promotionNotificationsAllowed
}

func (c *Customer) IsArchived() bool {
	return c.archived
}

func (c *Customer) RegisteredAt() time.Time {
	return c.registeredAt
}

func (c *Customer) ArchivedAt() *time.Time {
	return c.archivedAt
}

func (c *Customer) LoyaltyPoints() LoyaltyPoints {
	return c.loyaltyPoints
}

func (c *Customer) assertNotArchived() error {
	if c.archived {
		return ErrArchived
	}
	return nil
}
