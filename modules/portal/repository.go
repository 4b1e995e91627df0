package portal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository implements Storage on PostgreSQL.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a PostgreSQL-backed portal storage.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

const customerColumns = `id, email, name, phone, password_hash, is_active, last_login_at, created_at`

func scanCustomer(row pgx.Row) (*Customer, error) {
	var c Customer
	err := row.Scan(
		&c.ID, &c.Email, &c.Name, &c.Phone,
		&c.PasswordHash, &c.IsActive, &c.LastLoginAt, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to scan customer: %w", err)
	}
	return &c, nil
}

func (r *Repository) GetCustomerByEmail(ctx context.Context, email string) (*Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE email = $1`
	return scanCustomer(r.db.QueryRow(ctx, query, email))
}

func (r *Repository) GetCustomerByID(ctx context.Context, id int64) (*Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`
	return scanCustomer(r.db.QueryRow(ctx, query, id))
}

func (r *Repository) CreateCustomer(ctx context.Context, customer *Customer) error {
	const query = `
		INSERT INTO customers (email, name, phone, password_hash, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	err := r.db.QueryRow(ctx, query,
		customer.Email, customer.Name, customer.Phone,
		customer.PasswordHash, customer.IsActive, customer.CreatedAt,
	).Scan(&customer.ID)
	if err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}

	return nil
}

func (r *Repository) UpdatePassword(ctx context.Context, customerID int64, passwordHash []byte) error {
	const query = `UPDATE customers SET password_hash = $2 WHERE id = $1`

	if _, err := r.db.Exec(ctx, query, customerID, passwordHash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

func (r *Repository) UpdateLastLogin(ctx context.Context, customerID int64, at time.Time) error {
	const query = `UPDATE customers SET last_login_at = $2 WHERE id = $1`

	if _, err := r.db.Exec(ctx, query, customerID, at); err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}

	return nil
}

func (r *Repository) CreateContactMessage(ctx context.Context, msg *ContactMessage) error {
	const query = `
		INSERT INTO contact_messages (name, email, phone, message, client_ip, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(ctx, query,
		msg.Name, msg.Email, msg.Phone, msg.Message, msg.ClientIP, msg.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create contact message: %w", err)
	}

	return nil
}

func (r *Repository) CreateSubcontractorApplication(ctx context.Context, app *SubcontractorApplication) error {
	const query = `
		INSERT INTO subcontractor_applications (company_name, contact_name, email, phone, trade, message, client_ip, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(ctx, query,
		app.CompanyName, app.ContactName, app.Email, app.Phone,
		app.Trade, app.Message, app.ClientIP, app.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create subcontractor application: %w", err)
	}

	return nil
}
