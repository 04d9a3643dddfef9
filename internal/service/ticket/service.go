package ticket

import (
	"context"
	"time"

	"github.com/brickmart/console-backend-go/internal/domain/customer"
	"github.com/brickmart/console-backend-go/internal/domain/ticket"
	"github.com/brickmart/console-backend-go/internal/pkg/database"
)

type TicketServiceImpl struct {
	db           *database.DB
	ticketRepo   ticket.TicketRepository
	customerRepo customer.CustomerRepository
}

func NewTicketService(db *database.DB, ticketRepo ticket.TicketRepository, customerRepo customer.CustomerRepository) ticket.TicketService {
	return &TicketServiceImpl{
		db:           db,
		ticketRepo:   ticketRepo,
		customerRepo: customerRepo,
	}
}

// Create implements ticket.TicketService.
func (s *TicketServiceImpl) Create(ctx context.Context, req ticket.CreateTicketRequest) (ticket.TicketResponse, error) {
	if err := req.Validate(); err != nil {
		return ticket.TicketResponse{}, err
	}

	if req.CustomerID != nil {
		if _, err := s.customerRepo.GetByID(ctx, *req.CustomerID); err != nil {
			return ticket.TicketResponse{}, err
		}
	}

	created, err := s.ticketRepo.Create(ctx, ticket.Ticket{
		CustomerID:  req.CustomerID,
		Subject:     req.Subject,
		Description: req.Description,
		Priority:    ticket.Priority(req.Priority),
		Status:      ticket.Status(req.Status),
	})
	if err != nil {
		return ticket.TicketResponse{}, err
	}

	return toTicketResponse(created), nil
}

// GetByID implements ticket.TicketService.
func (s *TicketServiceImpl) GetByID(ctx context.Context, id string) (ticket.TicketResponse, error) {
	t, err := s.ticketRepo.GetByID(ctx, id)
	if err != nil {
		return ticket.TicketResponse{}, err
	}
	return toTicketResponse(t), nil
}

// List implements ticket.TicketService.
func (s *TicketServiceImpl) List(ctx context.Context) ([]ticket.TicketResponse, error) {
	tickets, err := s.ticketRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]ticket.TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		responses = append(responses, toTicketResponse(t))
	}

	return responses, nil
}

// UpdateStatus implements ticket.TicketService.
func (s *TicketServiceImpl) UpdateStatus(ctx context.Context, req ticket.UpdateStatusRequest) (ticket.TicketResponse, error) {
	if err := req.Validate(); err != nil {
		return ticket.TicketResponse{}, err
	}

	var priority *ticket.Priority
	if req.Priority != nil {
		p := ticket.Priority(*req.Priority)
		priority = &p
	}

	if err := s.ticketRepo.UpdateStatus(ctx, req.ID, ticket.Status(req.Status), priority); err != nil {
		return ticket.TicketResponse{}, err
	}

	return s.GetByID(ctx, req.ID)
}

func toTicketResponse(t ticket.Ticket) ticket.TicketResponse {
	return ticket.TicketResponse{
		ID:            t.ID,
		CustomerID:    t.CustomerID,
		CustomerName:  t.CustomerName,
		CustomerEmail: t.CustomerEmail,
		Subject:       t.Subject,
		Description:   t.Description,
		Priority:      string(t.Priority),
		Status:        string(t.Status),
		CreatedAt:     t.CreatedAt.Format(time.RFC3339),
	}
}
