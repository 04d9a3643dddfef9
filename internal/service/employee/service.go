package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/brickmart/console-backend-go/internal/domain/user"
	"github.com/brickmart/console-backend-go/internal/pkg/database"
	"golang.org/x/crypto/bcrypt"
)

type EmployeeServiceImpl struct {
	db       *database.DB
	userRepo user.UserRepository
}

func NewEmployeeService(db *database.DB, userRepo user.UserRepository) user.EmployeeService {
	return &EmployeeServiceImpl{
		db:       db,
		userRepo: userRepo,
	}
}

// Create implements user.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req user.CreateEmployeeRequest) (user.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return user.EmployeeResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}
	hashed := string(hash)

	created, err := s.userRepo.Create(ctx, user.User{
		Email:        req.Email,
		PasswordHash: &hashed,
		FullName:     req.FullName,
		Role:         user.Role(req.Role),
		Phone:        req.Phone,
		Salary:       req.Salary,
		SalaryPerDay: req.SalaryPerDay,
	})
	if err != nil {
		return user.EmployeeResponse{}, err
	}

	return toEmployeeResponse(created), nil
}

// GetByID implements user.EmployeeService.
func (s *EmployeeServiceImpl) GetByID(ctx context.Context, id string) (user.EmployeeResponse, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return user.EmployeeResponse{}, err
	}
	return toEmployeeResponse(u), nil
}

// List implements user.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]user.EmployeeResponse, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]user.EmployeeResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, toEmployeeResponse(u))
	}

	return responses, nil
}

// Update implements user.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req user.UpdateEmployeeRequest) (user.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return user.EmployeeResponse{}, err
	}

	if err := s.userRepo.Update(ctx, req); err != nil {
		return user.EmployeeResponse{}, err
	}

	return s.GetByID(ctx, req.ID)
}

// Delete implements user.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string, callerID string) error {
	if id == callerID {
		return user.ErrCannotDeleteSelf
	}
	return s.userRepo.Delete(ctx, id)
}

func toEmployeeResponse(u user.User) user.EmployeeResponse {
	return user.EmployeeResponse{
		ID:           u.ID,
		Email:        u.Email,
		FullName:     u.FullName,
		Role:         string(u.Role),
		Phone:        u.Phone,
		Salary:       u.Salary,
		SalaryPerDay: u.SalaryPerDay,
		CreatedAt:    u.CreatedAt.Format(time.RFC3339),
	}
}
