package websocket

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// Client represents a connected WebSocket client
type Client struct {
	conn  *websocket.Conn
	runID uuid.UUID
	send  chan []byte
}

// Message represents a WebSocket message
type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Hub maintains the set of active clients and broadcasts run progress
type Hub struct {
	// Registered clients by run ID
	clients map[uuid.UUID]map[*Client]bool

	register   chan *Client
	unregister chan *Client

	// Guard clients map
	mu sync.RWMutex
}

// NewHub creates a new websocket hub
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[uuid.UUID]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run starts the hub's message handling loop
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if _, ok := h.clients[client.runID]; !ok {
				h.clients[client.runID] = make(map[*Client]bool)
			}
			h.clients[client.runID][client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.runID]; ok {
				delete(h.clients[client.runID], client)
				close(client.send)

				if len(h.clients[client.runID]) == 0 {
					delete(h.clients, client.runID)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Register registers a new client connection
func (h *Hub) Register(client *Client) {
	h.register <- client
}

// Unregister removes a client connection
func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// BroadcastToRun sends a message to all clients watching a run
func (h *Hub) BroadcastToRun(runID uuid.UUID, message Message) {
	messageJSON, err := json.Marshal(message)
	if err != nil {
		log.Printf("Error marshalling WebSocket message: %v", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	clients, ok := h.clients[runID]
	if !ok {
		return
	}

	for client := range clients {
		select {
		case client.send <- messageJSON:
		default:
			// Client's send buffer is full, unregister
			go h.Unregister(client)
		}
	}
}

// HandleConnection handles an incoming WebSocket connection
func (h *Hub) HandleConnection(conn *websocket.Conn, runID uuid.UUID) {
	client := &Client{
		conn:  conn,
		runID: runID,
		send:  make(chan []byte, 256),
	}

	h.Register(client)

	initialMsg := Message{
		Type: "connected",
		Data: map[string]interface{}{
			"run_id": runID.String(),
			"status": "connected",
		},
	}
	msgJSON, _ := json.Marshal(initialMsg)
	client.send <- msgJSON

	go client.writePump()
	go client.readPump(h)
}

// writePump pumps messages from the hub to the websocket connection
func (c *Client) writePump() {
	defer func() {
		c.conn.Close()
	}()

	for {
		message, ok := <-c.send
		if !ok {
			// Hub closed the channel
			c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}

		err := c.conn.WriteMessage(websocket.TextMessage, message)
		if err != nil {
			return
		}
	}
}

// readPump discards client messages and tears down on close
func (c *Client) readPump(h *Hub) {
	defer func() {
		h.Unregister(c)
		c.conn.Close()
	}()

	for {
		_, _, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err) {
				log.Printf("WebSocket error: %v", err)
			}
			break
		}
	}
}
