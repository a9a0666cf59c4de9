package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/umalmyha/ordering/internal/cache"
	"github.com/umalmyha/ordering/internal/domain/customer"
	"github.com/umalmyha/ordering/internal/domain/loyalty"
	apperrors "github.com/umalmyha/ordering/internal/errors"
	"github.com/umalmyha/ordering/internal/repository"
)

// RegisterCustomer carries raw registration input from the embedding
// application; all validation happens in the domain.
type RegisterCustomer struct {
	FirstName                     string    `json:"firstName"`
	LastName                      string    `json:"lastName"`
	BirthDate                     time.Time `json:"birthDate"`
	Email                         string    `json:"email"`
	Phone                         string    `json:"phone"`
	Document                      string    `json:"document"`
	PromotionNotificationsAllowed bool      `json:"promotionNotificationsAllowed"`
}

type CustomerService interface {
	Register(context.Context, RegisterCustomer) (*customer.Customer, error)
	FindByID(context.Context, string) (*customer.Customer, error)
	UpdateName(ctx context.Context, id string, firstName string, lastName string) (*customer.Customer, error)
	ChangeEmail(ctx context.Context, id string, newEmail string) (*customer.Customer, error)
	ChangePhone(ctx context.Context, id string, newPhone string) (*customer.Customer, error)
	EnablePromotionNotifications(ctx context.Context, id string) (*customer.Customer, error)
	DisablePromotionNotifications(ctx context.Context, id string) (*customer.Customer, error)
	Archive(ctx context.Context, id string) (*customer.Customer, error)
	AwardLoyaltyPoints(ctx context.Context, customerID string, orderID string) (*customer.Customer, error)
}

type customerService struct {
	customerRepo  repository.CustomerRepository
	orderRepo     repository.OrderRepository
	customerCache cache.CustomerCache
	loyaltySvc    *loyalty.Service
}

func NewCustomerService(
	customerRepo repository.CustomerRepository,
	orderRepo repository.OrderRepository,
	customerCache cache.CustomerCache,
	loyaltySvc *loyalty.Service,
) CustomerService {
	return &customerService{
		customerRepo:  customerRepo,
		orderRepo:     orderRepo,
		customerCache: customerCache,
		loyaltySvc:    loyaltySvc,
	}
}

func (s *customerService) Register(ctx context.Context, reg RegisterCustomer) (*customer.Customer, error) {
	c, err := customer.Register(customer.Registration{
		FirstName:                     reg.FirstName,
		LastName:                      reg.LastName,
		BirthDate:                     reg.BirthDate,
		Email:                         reg.Email,
		Phone:                         reg.Phone,
		Document:                      reg.Document,
		PromotionNotificationsAllowed: reg.PromotionNotificationsAllowed,
	})
	if err != nil {
		return nil, err
	}

	if err := s.customerRepo.Create(ctx, c); err != nil {
		return nil, err
	}

	logrus.Infof("customer %s has been registered", c.ID())
	return c, nil
}

func (s *customerService) FindByID(ctx context.Context, id string) (*customer.Customer, error) {
	c, err := s.customerCache.FindByID(ctx, id)
	if err != nil {
		logrus.Errorf("failed to read customer %s from cache - %v", id, err)
	}

	if c != nil {
		return c, nil
	}

	c, err = s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if c == nil {
		return nil, nil
	}

	if err := s.customerCache.Cache(ctx, c); err != nil {
		logrus.Errorf("failed to cache customer %s - %v", id, err)
	}
	return c, nil
}

func (s *customerService) UpdateName(ctx context.Context, id string, firstName string, lastName string) (*customer.Customer, error) {
	return s.mutate(ctx, id, func(c *customer.Customer) error {
		return c.ChangeName(firstName, lastName)
	})
}

func (s *customerService) ChangeEmail(ctx context.Context, id string, newEmail string) (*customer.Customer, error) {
	return s.mutate(ctx, id, func(c *customer.Customer) error {
		return c.ChangeEmail(newEmail)
	})
}

func (s *customerService) ChangePhone(ctx context.Context, id string, newPhone string) (*customer.Customer, error) {
	return s.mutate(ctx, id, func(c *customer.Customer) error {
		return c.ChangePhone(newPhone)
	})
}

func (s *customerService) EnablePromotionNotifications(ctx context.Context, id string) (*customer.Customer, error) {
	return s.mutate(ctx, id, func(c *customer.Customer) error {
		return c.EnablePromotionNotifications()
	})
}

func (s *customerService) DisablePromotionNotifications(ctx context.Context, id string) (*customer.Customer, error) {
	return s.mutate(ctx, id, func(c *customer.Customer) error {
		return c.DisablePromotionNotifications()
	})
}

func (s *customerService) Archive(ctx context.Context, id string) (*customer.Customer, error) {
	c, err := s.mutate(ctx, id, func(c *customer.Customer) error {
		return c.Archive()
	})
	if err != nil {
		return nil, err
	}

	logrus.Infof("customer %s has been archived", c.ID())
	return c, nil
}

func (s *customerService) AwardLoyaltyPoints(ctx context.Context, customerID string, orderID string) (*customer.Customer, error) {
	c, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperrors.NewEntryNotFoundErr("customer is not found")
	}

	ord, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if ord == nil {
		return nil, apperrors.NewEntryNotFoundErr("order is not found")
	}

	balanceBefore := c.LoyaltyPoints()
	if err := s.loyaltySvc.AddPoints(c, ord); err != nil {
		return nil, err
	}

	if c.LoyaltyPoints() == balanceBefore {
		return c, nil
	}

	if err := s.customerRepo.Update(ctx, c); err != nil {
		return nil, err
	}

	if err := s.customerCache.EvictByID(ctx, customerID); err != nil {
		logrus.Errorf("failed to evict customer %s from cache - %v", customerID, err)
	}

	logrus.Infof("customer %s loyalty points balance is %s after order %s", c.ID(), c.LoyaltyPoints(), ord.ID())
	return c, nil
}

func (s *customerService) mutate(ctx context.Context, id string, mutation func(*customer.Customer) error) (*customer.Customer, error) {
	c, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperrors.NewEntryNotFoundErr("customer is not found")
	}

	if err := mutation(c); err != nil {
		return nil, err
	}

	if err := s.customerRepo.Update(ctx, c); err != nil {
		return nil, err
	}

	if err := s.customerCache.EvictByID(ctx, id); err != nil {
		logrus.Errorf("failed to evict customer %s from cache - %v", id, err)
	}
	return c, nil
}
