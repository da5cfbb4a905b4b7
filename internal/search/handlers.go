package search

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/Madhu-Juttiga/TourMate-2/internal/discovery"
	"github.com/Madhu-Juttiga/TourMate-2/internal/places"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// RemoteSearch runs a scoped free-text search upstream.
type RemoteSearch func(ctx context.Context, query string, lat, lng float64) ([]places.Place, error)

type inboundFrame struct {
	Type      string         `json:"type"`
	Query     string         `json:"query,omitempty"`
	Filter    string         `json:"filter,omitempty"`
	SortBy    string         `json:"sortBy,omitempty"`
	Latitude  float64        `json:"latitude,omitempty"`
	Longitude float64        `json:"longitude,omitempty"`
	Places    []places.Place `json:"places,omitempty"`
}

type outboundFrame struct {
	Type        string         `json:"type"`
	Query       string         `json:"query"`
	Places      []places.Place `json:"places,omitempty"`
	Error       string         `json:"error,omitempty"`
	IsSearching bool           `json:"isSearching"`
}

// RegisterRoutes exposes the interactive search session. Each connection
// gets its own debounce controller; the client streams keystroke, scope,
// and view frames and receives the derived display list after each settle.
func RegisterRoutes(r fiber.Router, remote RemoteSearch, delay time.Duration) {
	r.Get("/ws", websocket.New(func(c *websocket.Conn) {
		session := newSession(remote, delay)
		defer session.close()

		done := make(chan struct{})
		go func() {
			for msg := range session.send {
				if err := c.WriteMessage(websocket.TextMessage, msg); err != nil {
					break
				}
			}
			close(done)
		}()

		for {
			_, raw, err := c.ReadMessage()
			if err != nil {
				break
			}
			session.handle(raw)
		}
		session.controller.Stop()
		session.closeSend()
		<-done
	}))
}

type session struct {
	controller *Controller
	send       chan []byte

	mu       sync.Mutex
	lat, lng float64
	closed   bool
}

func newSession(remote RemoteSearch, delay time.Duration) *session {
	s := &session{send: make(chan []byte, 16)}

	search := func(ctx context.Context, query string) ([]places.Place, error) {
		s.mu.Lock()
		lat, lng := s.lat, s.lng
		s.mu.Unlock()
		return remote(ctx, query, lat, lng)
	}

	s.controller = NewController(delay, search, func(r Result) {
		frame := outboundFrame{
			Type:        "results",
			Query:       r.Query,
			Places:      r.Places,
			IsSearching: s.controller.IsSearching(),
		}
		if r.Err != nil {
			frame.Type = "error"
			frame.Error = r.Err.Error()
		}
		s.push(frame)
	})
	return s
}

func (s *session) handle(raw []byte) {
	var frame inboundFrame
	if err := json.Unmarshal(raw, &frame); err != nil {
		s.push(outboundFrame{Type: "error", Error: "malformed frame"})
		return
	}

	switch frame.Type {
	case "scope":
		s.mu.Lock()
		s.lat, s.lng = frame.Latitude, frame.Longitude
		s.mu.Unlock()
	case "places":
		s.controller.SetPlaces(frame.Places)
	case "query":
		s.controller.SetQuery(frame.Query)
	case "view":
		s.controller.SetView(discovery.ParseFilter(frame.Filter), discovery.ParseSortKey(frame.SortBy))
	default:
		s.push(outboundFrame{Type: "error", Error: "unknown frame type"})
	}
}

func (s *session) push(frame outboundFrame) {
	raw, err := json.Marshal(frame)
	if err != nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	// A full buffer means the reader is behind; evict the oldest frame so
	// the newest results are never the ones lost.
	for {
		select {
		case s.send <- raw:
			return
		default:
		}
		select {
		case <-s.send:
		default:
		}
	}
}

func (s *session) closeSend() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.closed = true
		close(s.send)
	}
}

func (s *session) close() {
	s.controller.Stop()
	s.closeSend()
}
