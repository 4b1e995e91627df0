package portal_test

import (
	"context"
	"sync"
	"time"

	"github.com/leadvane/leadvane/modules/portal"
	"github.com/leadvane/leadvane/pkg/email"
)

// mockStorage is an in-memory Storage keyed by normalized email and id.
type mockStorage struct {
	mu           sync.Mutex
	nextID       int64
	byEmail      map[string]*portal.Customer
	byID         map[int64]*portal.Customer
	contacts     []*portal.ContactMessage
	applications []*portal.SubcontractorApplication

	createErr error
}

func newMockStorage(customers ...*portal.Customer) *mockStorage {
	m := &mockStorage{
		nextID:  1,
		byEmail: make(map[string]*portal.Customer),
		byID:    make(map[int64]*portal.Customer),
	}
	for _, c := range customers {
		if c.ID == 0 {
			c.ID = m.nextID
		}
		if c.ID >= m.nextID {
			m.nextID = c.ID + 1
		}
		m.byEmail[c.Email] = c
		m.byID[c.ID] = c
	}
	return m
}

func (m *mockStorage) GetCustomerByEmail(_ context.Context, email string) (*portal.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.byEmail[email]
	if !ok {
		return nil, portal.ErrCustomerNotFound
	}
	return c, nil
}

func (m *mockStorage) GetCustomerByID(_ context.Context, id int64) (*portal.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.byID[id]
	if !ok {
		return nil, portal.ErrCustomerNotFound
	}
	return c, nil
}

func (m *mockStorage) CreateCustomer(_ context.Context, customer *portal.Customer) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.createErr != nil {
		return m.createErr
	}
	customer.ID = m.nextID
	m.nextID++
	m.byEmail[customer.Email] = customer
	m.byID[customer.ID] = customer
	return nil
}

func (m *mockStorage) UpdatePassword(_ context.Context, customerID int64, passwordHash []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.byID[customerID]
	if !ok {
		return portal.ErrCustomerNotFound
	}
	c.PasswordHash = passwordHash
	return nil
}

func (m *mockStorage) UpdateLastLogin(_ context.Context, customerID int64, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.byID[customerID]
	if !ok {
		return portal.ErrCustomerNotFound
	}
	c.LastLoginAt = &at
	return nil
}

func (m *mockStorage) CreateContactMessage(_ context.Context, msg *portal.ContactMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.contacts = append(m.contacts, msg)
	return nil
}

func (m *mockStorage) CreateSubcontractorApplication(_ context.Context, app *portal.SubcontractorApplication) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.applications = append(m.applications, app)
	return nil
}

// mockMailer captures outbound emails.
type mockMailer struct {
	mu      sync.Mutex
	sent    []email.SendEmailParams
	sendErr error
}

func (m *mockMailer) SendEmail(_ context.Context, params email.SendEmailParams) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.sendErr != nil {
		return m.sendErr
	}
	m.sent = append(m.sent, params)
	return nil
}

func (m *mockMailer) sentEmails() []email.SendEmailParams {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]email.SendEmailParams, len(m.sent))
	copy(out, m.sent)
	return out
}
