package service

import (
	"context"
	"fmt"

	"github.com/retailshop/customer-services/internal/customersvc/models"
)

// CustomerStore is the storage dependency of the service. Declared here so
// tests can substitute the real pgx-backed store.
type CustomerStore interface {
	Create(ctx context.Context, c *models.Customer) (int64, string, error)
	GetByEmail(ctx context.Context, email string) (*models.Customer, error)
	GetByID(ctx context.Context, customerId int64) (*models.PublicCustomer, error)
	List(ctx context.Context) ([]models.CustomerSummary, error)
	Update(ctx context.Context, customerId int64, fields map[string]any) (bool, error)
	Delete(ctx context.Context, customerId int64) (bool, error)
}

// RegistrationResult is what a successful registration hands back.
type RegistrationResult struct {
	CustomerId int64  `json:"customerId"`
	Message    string `json:"message"`
}

// CustomerService struct represents the customer service layer
type CustomerService struct {
	customerStore CustomerStore
}

// NewCustomerService creates a new CustomerService instance
func NewCustomerService(customerStore CustomerStore) *CustomerService {
	return &CustomerService{
		customerStore: customerStore,
	}
}

// Register runs the duplicate pre-check and then inserts the customer. The
// pre-check is advisory only: two concurrent registrations for the same email
// can both pass it, and the unique constraint decides the loser. Both paths
// surface models.ErrDuplicateEmail and read identically to the caller.
func (s *CustomerService) Register(ctx context.Context, c *models.Customer) (*RegistrationResult, error) {
	existing, err := s.customerStore.GetByEmail(ctx, c.Email)
	if err != nil {
		return nil, fmt.Errorf("duplicate pre-check failed: %w", err)
	}
	if existing != nil {
		return nil, models.ErrDuplicateEmail
	}

	customerId, message, err := s.customerStore.Create(ctx, c)
	if err != nil {
		return nil, err
	}

	return &RegistrationResult{
		CustomerId: customerId,
		Message:    message,
	}, nil
}

func (s *CustomerService) GetByID(ctx context.Context, customerId int64) (*models.PublicCustomer, error) {
	return s.customerStore.GetByID(ctx, customerId)
}

func (s *CustomerService) List(ctx context.Context) ([]models.CustomerSummary, error) {
	return s.customerStore.List(ctx)
}

func (s *CustomerService) Update(ctx context.Context, customerId int64, fields map[string]any) (bool, error) {
	return s.customerStore.Update(ctx, customerId, fields)
}

func (s *CustomerService) Delete(ctx context.Context, customerId int64) (bool, error) {
	return s.customerStore.Delete(ctx, customerId)
}
