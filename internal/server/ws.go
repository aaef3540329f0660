package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"slices"

	"github.com/gorilla/websocket"

	"github.com/ayusman/samvaad/internal/metrics"
	"github.com/ayusman/samvaad/internal/server/api"
)

// PredictStreamHandler classifies frames sent over a WebSocket.
// Each text message {"image": "..."} gets exactly one reply: a prediction
// or {"error": "..."}. Frames on one connection are handled in order.
type PredictStreamHandler struct {
	predictor api.Predictor
	upgrader  websocket.Upgrader
}

// NewPredictStreamHandler creates a PredictStreamHandler. Handshakes are
// accepted from the given origins, or from any origin when "*" is listed.
func NewPredictStreamHandler(p api.Predictor, allowedOrigins []string) *PredictStreamHandler {
	return &PredictStreamHandler{
		predictor: p,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || slices.Contains(allowedOrigins, "*") || slices.Contains(allowedOrigins, origin)
			},
		},
	}
}

// ServeHTTP handles WebSocket upgrade requests.
func (h *PredictStreamHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed", "request_id", api.RequestID(r.Context()), "error", err)
		return
	}
	defer conn.Close()

	metrics.ActiveStreams.Inc()
	defer metrics.ActiveStreams.Dec()

	conn.SetReadLimit(api.MaxBodyBytes)

	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				slog.Warn("websocket read failed", "request_id", api.RequestID(r.Context()), "error", err)
			}
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}

		if err := conn.WriteJSON(h.predict(r, data)); err != nil {
			slog.Warn("websocket write failed", "request_id", api.RequestID(r.Context()), "error", err)
			return
		}
	}
}

func (h *PredictStreamHandler) predict(r *http.Request, data []byte) any {
	var req api.PredictRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return api.ErrorResponse{Error: fmt.Errorf("%w: %w", api.ErrValidation, err).Error()}
	}
	if req.Image == "" {
		return api.ErrorResponse{Error: "No image data"}
	}

	prediction, err := h.predictor.Predict(r.Context(), req.Image)
	if err != nil {
		slog.Error("stream predict failed", "request_id", api.RequestID(r.Context()), "error", err)
		return api.ErrorResponse{Error: err.Error()}
	}
	return api.NewPredictResponse(prediction)
}
