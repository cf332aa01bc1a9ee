package ws

import (
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSubscriptionBookkeeping(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	user := uuid.New()

	hub.Subscribe("req_1", user)
	hub.Subscribe("req_1", user) // duplicate is a no-op
	assert.Len(t, hub.subscriptions["req_1"], 1)

	hub.Unsubscribe("req_1", user)
	assert.Empty(t, hub.subscriptions["req_1"])
}

func TestSendToUserWithoutConnection(t *testing.T) {
	hub := NewHub(zerolog.Nop())

	err := hub.SendToUser(uuid.New(), Message{Type: TypePong})
	assert.ErrorIs(t, err, ErrConnectionNotFound)
}

func TestBroadcastToRequestWithNoSubscribers(t *testing.T) {
	hub := NewHub(zerolog.Nop())

	assert.NoError(t, hub.BroadcastToRequest("req_none", Message{Type: TypeRequestStatus}))
}

func TestConnectionSendQueueFull(t *testing.T) {
	conn := NewConnection(nil, zerolog.Nop())

	for i := 0; i < cap(conn.sendCh); i++ {
		assert.NoError(t, conn.Send(Message{Type: TypePing}))
	}
	assert.ErrorIs(t, conn.Send(Message{Type: TypePing}), ErrSendQueueFull)
}
