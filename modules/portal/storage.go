package portal

import (
	"context"
	"time"
)

// Customer is a portal account record.
type Customer struct {
	ID           int64
	Email        string
	Name         string
	Phone        string
	PasswordHash []byte
	IsActive     bool
	LastLoginAt  *time.Time
	CreatedAt    time.Time
}

// ContactMessage is a public contact-form submission.
type ContactMessage struct {
	Name      string
	Email     string
	Phone     string
	Message   string
	ClientIP  string
	CreatedAt time.Time
}

// SubcontractorApplication is a public application-form submission.
type SubcontractorApplication struct {
	CompanyName string
	ContactName string
	Email       string
	Phone       string
	Trade       string
	Message     string
	ClientIP    string
	CreatedAt   time.Time
}

// Storage defines the persistence operations the portal flows need.
type Storage interface {
	// GetCustomerByEmail returns ErrCustomerNotFound when no account matches.
	GetCustomerByEmail(ctx context.Context, email string) (*Customer, error)
	// GetCustomerByID returns ErrCustomerNotFound when no account matches.
	GetCustomerByID(ctx context.Context, id int64) (*Customer, error)
	// CreateCustomer inserts the record and fills in the generated ID.
	CreateCustomer(ctx context.Context, customer *Customer) error
	UpdatePassword(ctx context.Context, customerID int64, passwordHash []byte) error
	UpdateLastLogin(ctx context.Context, customerID int64, at time.Time) error

	CreateContactMessage(ctx context.Context, msg *ContactMessage) error
	CreateSubcontractorApplication(ctx context.Context, app *SubcontractorApplication) error
}
