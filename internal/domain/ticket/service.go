package ticket

import "context"

type TicketService interface {
	Create(ctx context.Context, req CreateTicketRequest) (TicketResponse, error)
	GetByID(ctx context.Context, id string) (TicketResponse, error)
	List(ctx context.Context) ([]TicketResponse, error)
	UpdateStatus(ctx context.Context, req UpdateStatusRequest) (TicketResponse, error)
}
