package repository

import (
	"context"

	"github.com/virality-gg/backend/internal/entity"
	"github.com/virality-gg/backend/pkg/xcontext"
)

type TicketRepository interface {
	Create(ctx context.Context, ticket *entity.Ticket) error
	GetByNumber(ctx context.Context, number string) (*entity.Ticket, error)
}

type ticketRepository struct{}

func NewTicketRepository() *ticketRepository {
	return &ticketRepository{}
}

func (r *ticketRepository) Create(ctx context.Context, ticket *entity.Ticket) error {
	return xcontext.DB(ctx).Create(ticket).Error
}

func (r *ticketRepository) GetByNumber(ctx context.Context, number string) (*entity.Ticket, error) {
	var result entity.Ticket
	err := xcontext.DB(ctx).Take(&result, "number=?", number).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}
