package swagger

import (
	"net/http"
	"slices"
	"sync"
)

// broadcaster fans one message out to every connected SSE client. Slow
// clients drop messages instead of blocking the sender.
type broadcaster struct {
	mu      sync.Mutex
	clients []chan string
}

func newBroadcaster() *broadcaster {
	return &broadcaster{}
}

func (b *broadcaster) addClient() chan string {
	ch := make(chan string, 1)
	b.mu.Lock()
	b.clients = append(b.clients, ch)
	b.mu.Unlock()
	return ch
}

func (b *broadcaster) removeClient(ch chan string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	idx := slices.Index(b.clients, ch)
	if idx == -1 {
		return
	}
	close(b.clients[idx])
	b.clients = slices.Delete(b.clients, idx, idx+1)
}

func (b *broadcaster) broadcast(msg string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, ch := range b.clients {
		select {
		case ch <- msg:
		default:
		}
	}
}

func (b *broadcaster) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	ch := b.addClient()
	defer b.removeClient(ch)

	w.Write([]byte(":ok\n\n"))
	flusher.Flush()

	done := r.Context().Done()

	for {
		select {
		case <-done:
			return
		case msg := <-ch:
			w.Write([]byte("event: update\n"))
			w.Write([]byte("data: " + msg + "\n\n"))
			flusher.Flush()
		}
	}
}

var _ http.Handler = (*broadcaster)(nil)
