package handlers

import (
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	ws "github.com/chynybekuuludastan/copywriting_agent/internal/api/websocket"
)

// HandleRunSocket subscribes a websocket client to a run's progress
// events
func (h *ContentHandler) HandleRunSocket(conn *websocket.Conn) {
	runID, err := uuid.Parse(conn.Params("id"))
	if err != nil {
		conn.WriteJSON(ws.Message{
			Type: "error",
			Data: map[string]interface{}{"error": "Invalid run ID"},
		})
		conn.Close()
		return
	}

	h.Hub.HandleConnection(conn, runID)
}

// HubPublisher forwards workflow stage events to the websocket hub.
type HubPublisher struct {
	Hub *ws.Hub
}

// Publish implements the workflow publisher contract
func (p *HubPublisher) Publish(runID, stage, status string) {
	id, err := uuid.Parse(runID)
	if err != nil {
		return
	}
	p.Hub.BroadcastToRun(id, ws.Message{
		Type: "stage_update",
		Data: map[string]interface{}{
			"run_id": runID,
			"stage":  stage,
			"status": status,
		},
	})
}
