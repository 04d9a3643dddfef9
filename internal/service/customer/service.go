package customer

import (
	"context"
	"time"

	"github.com/brickmart/console-backend-go/internal/domain/customer"
	"github.com/brickmart/console-backend-go/internal/pkg/database"
)

type CustomerServiceImpl struct {
	db           *database.DB
	customerRepo customer.CustomerRepository
}

func NewCustomerService(db *database.DB, customerRepo customer.CustomerRepository) customer.CustomerService {
	return &CustomerServiceImpl{
		db:           db,
		customerRepo: customerRepo,
	}
}

// Create implements customer.CustomerService.
func (s *CustomerServiceImpl) Create(ctx context.Context, req customer.CreateCustomerRequest) (customer.CustomerResponse, error) {
	if err := req.Validate(); err != nil {
		return customer.CustomerResponse{}, err
	}

	created, err := s.customerRepo.Create(ctx, customer.Customer{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		Segment:  customer.Segment(req.Segment),
	})
	if err != nil {
		return customer.CustomerResponse{}, err
	}

	return toCustomerResponse(created), nil
}

// GetByID implements customer.CustomerService.
func (s *CustomerServiceImpl) GetByID(ctx context.Context, id string) (customer.CustomerResponse, error) {
	c, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return customer.CustomerResponse{}, err
	}
	return toCustomerResponse(c), nil
}

// List implements customer.CustomerService.
func (s *CustomerServiceImpl) List(ctx context.Context, filter customer.CustomerFilter) ([]customer.CustomerResponse, error) {
	customers, err := s.customerRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]customer.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		responses = append(responses, toCustomerResponse(c))
	}

	return responses, nil
}

// Update implements customer.CustomerService.
func (s *CustomerServiceImpl) Update(ctx context.Context, req customer.UpdateCustomerRequest) (customer.CustomerResponse, error) {
	if err := req.Validate(); err != nil {
		return customer.CustomerResponse{}, err
	}

	if err := s.customerRepo.Update(ctx, req); err != nil {
		return customer.CustomerResponse{}, err
	}

	return s.GetByID(ctx, req.ID)
}

// Delete implements customer.CustomerService.
func (s *CustomerServiceImpl) Delete(ctx context.Context, id string) error {
	return s.customerRepo.Delete(ctx, id)
}

func toCustomerResponse(c customer.Customer) customer.CustomerResponse {
	return customer.CustomerResponse{
		ID:        c.ID,
		FullName:  c.FullName,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		Segment:   string(c.Segment),
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}
