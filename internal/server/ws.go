package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/examgenius/exam-platform/internal/auth"
	"github.com/examgenius/exam-platform/internal/generate"
	httperrors "github.com/examgenius/exam-platform/pkg/http/errors"
	ws "github.com/examgenius/exam-platform/pkg/http/ws"
)

// StatusNotifier pushes generation request transitions to subscribed
// WebSocket clients.
type StatusNotifier struct {
	hub    *ws.Hub
	logger zerolog.Logger
}

var _ generate.StatusNotifier = (*StatusNotifier)(nil)

func NewStatusNotifier(hub *ws.Hub, logger zerolog.Logger) *StatusNotifier {
	return &StatusNotifier{hub: hub, logger: logger}
}

func (n *StatusNotifier) NotifyStatus(req generate.Request) {
	payload, err := json.Marshal(ws.RequestStatusPayload{
		GenerationRequestID: req.ID,
		Status:              req.Status,
		ProgressPct:         req.ProgressPct,
		Error:               req.Error,
		SetID:               req.SetID,
	})
	if err != nil {
		n.logger.Error().Err(err).Str("request_id", req.ID).Msg("status payload encode failed")
		return
	}

	if err := n.hub.BroadcastToRequest(req.ID, ws.Message{
		Type:    ws.TypeRequestStatus,
		Payload: payload,
	}); err != nil {
		n.logger.Warn().Err(err).Str("request_id", req.ID).Msg("status broadcast failed")
	}
}

// WSHandler upgrades /ws/requests connections and routes subscription
// messages.
type WSHandler struct {
	hub     *ws.Hub
	authSvc *auth.Service
	genSvc  *generate.Service
	logger  zerolog.Logger
}

func NewWSHandler(hub *ws.Hub, authSvc *auth.Service, genSvc *generate.Service, logger zerolog.Logger) *WSHandler {
	return &WSHandler{hub: hub, authSvc: authSvc, genSvc: genSvc, logger: logger}
}

// ServeHTTP authenticates the caller, upgrades the connection and pumps
// messages until disconnect.
func (h *WSHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		httperrors.RespondUnauthorized(w, httperrors.ErrCodeAuthenticationRequired, "Missing token query parameter")
		return
	}

	claims, err := h.authSvc.ValidateToken(token)
	if err != nil {
		httperrors.RespondUnauthorized(w, httperrors.ErrCodeInvalidToken, "Invalid or expired token")
		return
	}

	conn, err := WSUpgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	userID := claims.UserID
	wsConn := ws.NewConnection(conn, h.logger)
	h.hub.RegisterConnection(userID, wsConn)

	go wsConn.WritePump()

	wsConn.ReadPump(func(msg ws.Message) error {
		return h.handleMessage(r.Context(), userID, msg)
	})

	h.hub.UnregisterConnection(userID)
}

func (h *WSHandler) handleMessage(ctx context.Context, userID uuid.UUID, msg ws.Message) error {
	switch msg.Type {
	case ws.TypeSubscribeRequest:
		return h.handleSubscribe(ctx, userID, msg.Payload)
	case ws.TypeUnsubscribeRequest:
		return h.handleUnsubscribe(userID, msg.Payload)
	case ws.TypePing:
		return h.hub.SendToUser(userID, ws.Message{Type: ws.TypePong})
	default:
		return h.sendError(userID, httperrors.ErrCodeUnknownMessageType, fmt.Sprintf("Unknown message type: %s", msg.Type))
	}
}

func (h *WSHandler) handleSubscribe(ctx context.Context, userID uuid.UUID, payload json.RawMessage) error {
	var req ws.SubscribeRequestPayload
	if err := json.Unmarshal(payload, &req); err != nil {
		return h.sendError(userID, httperrors.ErrCodeInvalidPayload, "Invalid subscribe_request payload")
	}

	// Ownership check doubles as an existence check.
	status, err := h.genSvc.Status(ctx, userID.String(), req.GenerationRequestID)
	if err != nil {
		return h.sendError(userID, httperrors.ErrCodeRequestNotFound, "Request not found")
	}

	h.hub.Subscribe(req.GenerationRequestID, userID)

	// Send the current state immediately so a subscriber never waits for
	// the next transition to learn where the request stands.
	statusPayload, err := json.Marshal(ws.RequestStatusPayload{
		GenerationRequestID: status.ID,
		Status:              status.Status,
		ProgressPct:         status.ProgressPct,
		Error:               status.Error,
		SetID:               status.SetID,
	})
	if err != nil {
		return err
	}
	return h.hub.SendToUser(userID, ws.Message{Type: ws.TypeRequestStatus, Payload: statusPayload})
}

func (h *WSHandler) handleUnsubscribe(userID uuid.UUID, payload json.RawMessage) error {
	var req ws.UnsubscribeRequestPayload
	if err := json.Unmarshal(payload, &req); err != nil {
		return h.sendError(userID, httperrors.ErrCodeInvalidPayload, "Invalid unsubscribe_request payload")
	}

	h.hub.Unsubscribe(req.GenerationRequestID, userID)
	return nil
}

func (h *WSHandler) sendError(userID uuid.UUID, code, message string) error {
	payload, err := json.Marshal(ws.ErrorPayload{Code: code, Message: message})
	if err != nil {
		return err
	}
	return h.hub.SendToUser(userID, ws.Message{Type: ws.TypeError, Payload: payload})
}
