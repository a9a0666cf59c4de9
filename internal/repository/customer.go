package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/umalmyha/ordering/internal/domain/customer"
)

type CustomerRepository interface {
	FindByID(context.Context, string) (*customer.Customer, error)
	Create(context.Context, *customer.Customer) error
	Update(context.Context, *customer.Customer) error
}

type postgresCustomerRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresCustomerRepository(p *pgxpool.Pool) CustomerRepository {
	return &postgresCustomerRepository{pool: p}
}

func (repo *postgresCustomerRepository) FindByID(ctx context.Context, id string) (*customer.Customer, error) {
	q := `SELECT id, first_name, last_name, birth_date, email, phone, document,
                 promotion_notifications_allowed, archived, registered_at, archived_at, loyalty_points
            FROM customers WHERE id = $1`

	var snap customer.Snapshot
	var birthDate pgtype.Date
	var archivedAt pgtype.Timestamptz

	row := repo.pool.QueryRow(ctx, q, id)
	err := row.Scan(
		&snap.ID, &snap.FirstName, &snap.LastName, &birthDate, &snap.Email, &snap.Phone, &snap.Document,
		&snap.PromotionNotificationsAllowed, &snap.Archived, &snap.RegisteredAt, &archivedAt, &snap.LoyaltyPoints,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	if birthDate.Status == pgtype.Present {
		t := birthDate.Time
		snap.BirthDate = &t
	}
	if archivedAt.Status == pgtype.Present {
		t := archivedAt.Time
		snap.ArchivedAt = &t
	}

	return customer.Restore(snap)
}

func (repo *postgresCustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	q := `INSERT INTO customers(id, first_name, last_name, birth_date, email, phone, document,
                                promotion_notifications_allowed, archived, registered_at, archived_at, loyalty_points)
               VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	snap := c.Snapshot()
	_, err := repo.pool.Exec(ctx, q,
		snap.ID, snap.FirstName, snap.LastName, snap.BirthDate, snap.Email, snap.Phone, snap.Document,
		snap.PromotionNotificationsAllowed, snap.Archived, snap.RegisteredAt, snap.ArchivedAt, snap.LoyaltyPoints,
	)
	return err
}

func (repo *postgresCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	q := `UPDATE customers SET first_name = $1, last_name = $2, birth_date = $3, email = $4, phone = $5,
                               document = $6, promotion_notifications_allowed = $7, archived = $8,
                               registered_at = $9, archived_at = $10, loyalty_points = $11
          WHERE id = $12`

	snap := c.Snapshot()
	_, err := repo.pool.Exec(ctx, q,
		snap.FirstName, snap.LastName, snap.BirthDate, snap.Email, snap.Phone, snap.Document,
		snap.PromotionNotificationsAllowed, snap.Archived, snap.RegisteredAt, snap.ArchivedAt, snap.LoyaltyPoints,
		snap.ID,
	)
	return err
}
