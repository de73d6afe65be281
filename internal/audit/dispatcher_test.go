package audit

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/educonnect-booking/internal/models"
	"github.com/BruksfildServices01/educonnect-booking/internal/testutil"
)

func TestDispatcher_WritesQueuedEvents(t *testing.T) {
	db := testutil.NewDB(t)
	d := NewDispatcher(New(db), zap.NewNop())

	userID := uint(7)
	d.Dispatch(Event{
		UserID:   &userID,
		Action:   ActionCheckoutStarted,
		Entity:   "slot_reservation",
		EntityID: "res-1",
		Metadata: map[string]any{"counselor_id": "counselor-001", "amount": 1500000},
	})
	d.Dispatch(Event{Action: ActionLogout, Entity: "session"})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, d.Close(ctx))

	var rows []models.AuditLog
	require.NoError(t, db.Order("id ASC").Find(&rows).Error)
	require.Len(t, rows, 2)

	assert.Equal(t, ActionCheckoutStarted, rows[0].Action)
	assert.Equal(t, "res-1", rows[0].EntityID)
	require.NotNil(t, rows[0].UserID)
	assert.Equal(t, uint(7), *rows[0].UserID)
	assert.JSONEq(t, `{"counselor_id":"counselor-001","amount":1500000}`, rows[0].Metadata)

	assert.Nil(t, rows[1].UserID)
	assert.Empty(t, rows[1].Metadata)
}

func TestDispatcher_DispatchAfterCloseDoesNotPanic(t *testing.T) {
	d := NewDispatcher(New(testutil.NewDB(t)), zap.NewNop())
	require.NoError(t, d.Close(context.Background()))

	assert.NotPanics(t, func() {
		d.Dispatch(Event{Action: ActionLogin})
	})
	assert.NoError(t, d.Close(context.Background()))
}

func TestDispatcher_ConcurrentDispatchDuringClose(t *testing.T) {
	db := testutil.NewDB(t)
	d := NewDispatcher(New(db), zap.NewNop())

	const senders, perSender = 8, 25
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < senders; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			for j := 0; j < perSender; j++ {
				d.Dispatch(Event{Action: ActionLogin, Entity: "session"})
			}
		}()
	}

	close(start)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	require.NoError(t, d.Close(ctx))
	wg.Wait()

	var written int64
	require.NoError(t, db.Model(&models.AuditLog{}).Count(&written).Error)
	assert.LessOrEqual(t, written, int64(senders*perSender))
}
