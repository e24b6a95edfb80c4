package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"go-todo-api/internal/model"
	"go-todo-api/internal/repository"
)

func TestAuditRecordCarriesClientIP(t *testing.T) {
	t.Parallel()

	store := &repository.MockAuditRepository{}
	store.On("Log", mock.Anything, mock.MatchedBy(func(entry model.AuditEntry) bool {
		return entry.Action == model.AuditActionLogin &&
			entry.ClientIP == "10.0.0.1" &&
			entry.ActorID == 4 &&
			!entry.OccurredAt.IsZero()
	})).Return(nil)

	ctx := WithClientIP(context.Background(), "10.0.0.1")
	NewAuditService(store).Record(ctx, model.AuditActionLogin, model.AuditStatusSuccess, 4, "a@test.com")

	store.AssertExpectations(t)
}

func TestAuditRecordSwallowsStoreErrors(t *testing.T) {
	t.Parallel()

	store := &repository.MockAuditRepository{}
	store.On("Log", mock.Anything, mock.Anything).Return(errors.New("disk full"))

	require.NotPanics(t, func() {
		NewAuditService(store).Record(context.Background(), model.AuditActionLogin, model.AuditStatusFailure, 0, "")
	})

	var nilService *AuditService
	require.NotPanics(t, func() {
		nilService.Record(context.Background(), model.AuditActionLogin, model.AuditStatusFailure, 0, "")
	})
}

func TestAuditListClampsLimit(t *testing.T) {
	t.Parallel()

	store := &repository.MockAuditRepository{}
	store.On("ListByActor", mock.Anything, int64(4), 200).Return([]model.AuditEntry{{ID: 1}}, nil)
	store.On("ListByActor", mock.Anything, int64(4), 50).Return([]model.AuditEntry{}, nil)

	svc := NewAuditService(store)
	entries, err := svc.ListForActor(context.Background(), model.User{ID: 4}, 1000)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	_, err = svc.ListForActor(context.Background(), model.User{ID: 4}, 0)
	require.NoError(t, err)
	store.AssertExpectations(t)
}
