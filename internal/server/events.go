package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"tapdungeon/internal/game"
)

// Hub fans engine events out to SSE clients. The engine emits while
// the app lock is held, so delivery must never block: each client has
// a buffered channel and slow clients lose events instead of stalling
// the tick loop.
type Hub struct {
	mu      sync.Mutex
	nextID  int
	clients map[int]chan game.Event
}

func NewHub() *Hub {
	return &Hub{clients: make(map[int]chan game.Event)}
}

// Publish is the engine-side sink, safe to call from Emitter handlers.
func (h *Hub) Publish(ev game.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, ch := range h.clients {
		select {
		case ch <- ev:
		default:
		}
	}
}

func (h *Hub) subscribe() (int, chan game.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.nextID++
	id := h.nextID
	ch := make(chan game.Event, 64)
	h.clients[id] = ch
	return id, ch
}

func (h *Hub) unsubscribe(id int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, id)
}

// handleEvents streams engine events as server-sent events until the
// client goes away.
func (app *App) handleEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	id, ch := app.Hub.subscribe()
	defer app.Hub.unsubscribe(id)

	for {
		select {
		case <-r.Context().Done():
			return
		case ev := <-ch:
			payload, err := json.Marshal(ev)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.Type, payload)
			flusher.Flush()
		}
	}
}
