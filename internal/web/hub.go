package web

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/dojanjanjan/charm-reservations/internal/booking"
)

const (
	eventReservationCreated = "reservation_created"
	eventReservationUpdated = "reservation_updated"
	eventReservationDeleted = "reservation_deleted"
)

// Event is the wire message pushed to every client watching a date.
type Event struct {
	Type        string              `json:"type"`
	Date        string              `json:"date"`
	Reservation booking.Reservation `json:"reservation"`
	Timestamp   int64               `json:"timestamp"`
}

type client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
	date string
}

// Hub fans reservation events out to WebSocket clients, grouped by the
// calendar date each client is watching. It doubles as an event sink for the
// reservation service, so day views refresh live across staff devices.
type Hub struct {
	clients    map[string]map[*client]bool
	register   chan *client
	unregister chan *client
	broadcast  chan Event
	mu         sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]map[*client]bool),
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan Event, 256),
	}
}

// Run pumps registrations and broadcasts until ctx ends. Slow clients are
// dropped rather than allowed to stall the loop.
func (h *Hub) Run(done <-chan struct{}) {
	for {
		select {
		case <-done:
			return

		case c := <-h.register:
			h.mu.Lock()
			if h.clients[c.date] == nil {
				h.clients[c.date] = make(map[*client]bool)
			}
			h.clients[c.date][c] = true
			h.mu.Unlock()

		case c := <-h.unregister:
			h.mu.Lock()
			if set, ok := h.clients[c.date]; ok {
				if _, ok := set[c]; ok {
					delete(set, c)
					close(c.send)
					if len(set) == 0 {
						delete(h.clients, c.date)
					}
				}
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			data, err := json.Marshal(ev)
			if err != nil {
				log.Printf("ws: marshal event: %v", err)
				continue
			}

			h.mu.RLock()
			set := h.clients[ev.Date]
			h.mu.RUnlock()

			for c := range set {
				select {
				case c.send <- data:
				default:
					h.mu.Lock()
					delete(h.clients[ev.Date], c)
					close(c.send)
					h.mu.Unlock()
				}
			}
		}
	}
}

// ClientCount reports how many clients are watching a date.
func (h *Hub) ClientCount(date string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[date])
}

func (h *Hub) emit(kind string, r booking.Reservation) {
	ev := Event{
		Type:        kind,
		Date:        r.Date,
		Reservation: r,
		Timestamp:   time.Now().UnixMilli(),
	}
	select {
	case h.broadcast <- ev:
	default:
		log.Printf("ws: broadcast buffer full, dropping %s for %s", kind, r.Date)
	}
}

// The hub is an event sink: writes to the book surface as pushed events on
// the day the reservation belongs to.

func (h *Hub) ReservationCreated(r booking.Reservation, _ string) {
	h.emit(eventReservationCreated, r)
}

func (h *Hub) ReservationUpdated(r booking.Reservation, _ string) {
	h.emit(eventReservationUpdated, r)
}

func (h *Hub) ReservationDeleted(r booking.Reservation) {
	h.emit(eventReservationDeleted, r)
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The book is same-origin behind the session cookie; cross-origin pages
	// never get past RequireAuth anyway.
	CheckOrigin: func(r *http.Request) bool { return true },
}

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// ServeWS upgrades the request and subscribes the connection to a date.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, date string) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws: upgrade: %v", err)
		return
	}
	c := &client{hub: h, conn: conn, send: make(chan []byte, 64), date: date}
	h.register <- c

	go c.writePump()
	go c.readPump()
}

func (c *client) readPump() {
	defer func() {
		c.hub.unregister <- c
		_ = c.conn.Close()
	}()
	c.conn.SetReadLimit(512)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		// Clients only listen; reads exist to notice closes and pongs.
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()
	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
