package ws

import "encoding/json"

// MessageType constants for the WebSocket protocol.
const (
	// Client -> Server
	TypeSubscribeRequest   = "subscribe_request"
	TypeUnsubscribeRequest = "unsubscribe_request"
	TypePing               = "ping"

	// Server -> Client
	TypeRequestStatus = "request_status"
	TypeError         = "error"
	TypePong          = "pong"
)

// Message wraps all WebSocket payloads with type and optional request ID.
type Message struct {
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload"`
	RequestID string          `json:"request_id,omitempty"`
}

// Client Messages (incoming)

type SubscribeRequestPayload struct {
	GenerationRequestID string `json:"generation_request_id"`
}

type UnsubscribeRequestPayload struct {
	GenerationRequestID string `json:"generation_request_id"`
}

// Server Messages (outgoing)

type RequestStatusPayload struct {
	GenerationRequestID string `json:"generation_request_id"`
	Status              string `json:"status"`
	ProgressPct         int    `json:"progress_pct"`
	Error               string `json:"error,omitempty"`
	SetID               string `json:"set_id,omitempty"`
}

type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
