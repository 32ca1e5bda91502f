package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techgpt/techgpt-api/internal/domain/enum"
	infrarepo "github.com/techgpt/techgpt-api/internal/infrastructure/repository"
	"github.com/techgpt/techgpt-api/pkg/apperror"
)

func newTicketService(t *testing.T) (*TicketService, *testingDeps) {
	t.Helper()
	db := newTestDB(t)
	deps := &testingDeps{db: db}
	return NewTicketService(infrarepo.NewTicketRepository(db), infrarepo.NewUserRepository(db)), deps
}

func TestCreateTicket_DefaultsPriority(t *testing.T) {
	svc, deps := newTicketService(t)
	user := seedUser(t, deps.db, enum.UserTypeCustomer, "alice@example.com")

	ticket, err := svc.CreateTicket(context.Background(), &CreateTicketInput{
		UserID:   user.ID,
		Subject:  "Cannot log in",
		Category: "account",
	})
	require.NoError(t, err)

	assert.Equal(t, "normal", ticket.Priority)
	assert.Equal(t, enum.TicketStatusOpen, ticket.Status)
}

func TestGetTicket_OwnerOrAdminOnly(t *testing.T) {
	svc, deps := newTicketService(t)
	owner := seedUser(t, deps.db, enum.UserTypeCustomer, "alice@example.com")
	other := seedUser(t, deps.db, enum.UserTypeCustomer, "carol@example.com")
	admin := seedUser(t, deps.db, enum.UserTypeAdmin, "admin@example.com")

	ticket, err := svc.CreateTicket(context.Background(), &CreateTicketInput{
		UserID:  owner.ID,
		Subject: "Cannot log in",
	})
	require.NoError(t, err)

	_, err = svc.GetTicket(context.Background(), ticket.ID, other.ID, enum.UserTypeCustomer)
	assert.ErrorIs(t, err, apperror.ErrForbidden)

	got, err := svc.GetTicket(context.Background(), ticket.ID, owner.ID, enum.UserTypeCustomer)
	require.NoError(t, err)
	assert.Equal(t, ticket.ID, got.ID)

	got, err = svc.GetTicket(context.Background(), ticket.ID, admin.ID, enum.UserTypeAdmin)
	require.NoError(t, err)
	assert.Equal(t, ticket.ID, got.ID)
}

func TestUpdateTicket_ResolvedTimestamps(t *testing.T) {
	svc, deps := newTicketService(t)
	user := seedUser(t, deps.db, enum.UserTypeCustomer, "alice@example.com")
	admin := seedUser(t, deps.db, enum.UserTypeAdmin, "admin@example.com")

	ticket, err := svc.CreateTicket(context.Background(), &CreateTicketInput{
		UserID:  user.ID,
		Subject: "Cannot log in",
	})
	require.NoError(t, err)
	assert.Nil(t, ticket.ResolvedAt)

	resolved := enum.TicketStatusResolved
	updated, err := svc.UpdateTicket(context.Background(), &UpdateTicketInput{
		TicketID:   ticket.ID,
		Status:     &resolved,
		Priority:   "high",
		AssignedTo: &admin.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, enum.TicketStatusResolved, updated.Status)
	assert.NotNil(t, updated.ResolvedAt)
	assert.Equal(t, "high", updated.Priority)
	require.NotNil(t, updated.AssignedTo)
	assert.Equal(t, admin.ID, *updated.AssignedTo)
}

func TestListUserTickets_ScopedToOwner(t *testing.T) {
	svc, deps := newTicketService(t)
	owner := seedUser(t, deps.db, enum.UserTypeCustomer, "alice@example.com")
	other := seedUser(t, deps.db, enum.UserTypeCustomer, "carol@example.com")

	_, err := svc.CreateTicket(context.Background(), &CreateTicketInput{UserID: owner.ID, Subject: "One"})
	require.NoError(t, err)
	_, err = svc.CreateTicket(context.Background(), &CreateTicketInput{UserID: owner.ID, Subject: "Two"})
	require.NoError(t, err)
	_, err = svc.CreateTicket(context.Background(), &CreateTicketInput{UserID: other.ID, Subject: "Three"})
	require.NoError(t, err)

	result, err := svc.ListUserTickets(context.Background(), owner.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.Pagination.Total)

	all, err := svc.ListAllTickets(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(3), all.Pagination.Total)
}
