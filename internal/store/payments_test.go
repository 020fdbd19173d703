package store

import (
	"context"
	"testing"

	"task-bidding-api/internal/apperrors"
	"task-bidding-api/internal/models"

	"github.com/stretchr/testify/require"
)

func TestPaymentLifecycle(t *testing.T) {
	s, db := newTestStore(t)
	seedUser(t, db, "c-1", false)
	seedUser(t, db, "w-1", true)
	task := postTask(t, s, "c-1", "20", "40")
	ctx := context.Background()

	// no payment exists before a bid is accepted
	_, err := s.GetPaymentByTask(ctx, task.ID)
	require.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))

	bid := placeBid(t, s, task.ID, "w-1", "25")
	_, err = s.AcceptBid(ctx, bid.ID, "c-1")
	require.NoError(t, err)

	payment, err := s.GetPaymentByTask(ctx, task.ID)
	require.NoError(t, err)
	require.Nil(t, payment.ProviderIntentID)

	// only the paying customer may fund it
	_, err = s.AttachProviderIntent(ctx, task.ID, "pi_123", "w-1")
	require.Equal(t, apperrors.KindForbidden, apperrors.KindOf(err))

	payment, err = s.AttachProviderIntent(ctx, task.ID, "pi_123", "c-1")
	require.NoError(t, err)
	require.NotNil(t, payment.ProviderIntentID)
	require.Equal(t, "pi_123", *payment.ProviderIntentID)

	held, err := s.UpdatePaymentStatus(ctx, payment.ID, models.PaymentHeld)
	require.NoError(t, err)
	require.Equal(t, models.PaymentHeld, held.Status)
}

func TestMessagesRoundTrip(t *testing.T) {
	s, db := newTestStore(t)
	seedUser(t, db, "c-1", false)
	seedUser(t, db, "w-1", true)
	task := postTask(t, s, "c-1", "20", "40")
	ctx := context.Background()

	_, err := s.CreateMessage(ctx, NewMessage{
		TaskID:     task.ID,
		SenderID:   "w-1",
		ReceiverID: "c-1",
		Content:    "Is the parcel heavy?",
	})
	require.NoError(t, err)
	_, err = s.CreateMessage(ctx, NewMessage{
		TaskID:     task.ID,
		SenderID:   "c-1",
		ReceiverID: "w-1",
		Content:    "Under 5kg.",
	})
	require.NoError(t, err)

	msgs, err := s.GetMessagesForTask(ctx, task.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	require.Equal(t, "w-1", msgs[0].SenderID)
	require.Equal(t, "c-1", msgs[1].SenderID)

	_, err = s.CreateMessage(ctx, NewMessage{
		TaskID:     "missing",
		SenderID:   "c-1",
		ReceiverID: "w-1",
		Content:    "hello?",
	})
	require.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}
