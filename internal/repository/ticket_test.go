package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/virality-gg/backend/internal/entity"
	"github.com/virality-gg/backend/pkg/idutil"
	"github.com/virality-gg/backend/pkg/testutil"
)

func Test_ticketRepository(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	repo := NewTicketRepository()

	ticket := &entity.Ticket{
		Number:  idutil.NewTicketNumber(),
		UserID:  testutil.User1.ID,
		Subject: "Payment issue",
		Message: "**Subject:** Payment issue\n\nMy payout has not arrived.",
		Status:  entity.TicketOpen,
	}
	require.NoError(t, repo.Create(ctx, ticket))

	got, err := repo.GetByNumber(ctx, ticket.Number)
	require.NoError(t, err)
	require.Equal(t, ticket.Subject, got.Subject)
	require.Equal(t, entity.TicketOpen, got.Status)
}
