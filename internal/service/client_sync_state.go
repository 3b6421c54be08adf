package service

import (
	"sync"

	"github.com/MKhiriev/go-zone-keeper/models"
)

// syncStateHolder is the single owner of the client's SyncState. Every
// refresh begins a new generation; only the latest generation may finish.
type syncStateHolder struct {
	mu         sync.Mutex
	state      models.SyncState
	generation uint64

	nextSubscriber uint64
	subscribers    map[uint64]chan models.SyncState
}

func newSyncStateHolder() *syncStateHolder {
	return &syncStateHolder{
		state:       models.LoadingState(),
		subscribers: make(map[uint64]chan models.SyncState),
	}
}

// begin starts a new generation in the Loading state and returns its number.
func (h *syncStateHolder) begin() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.generation++
	state := models.LoadingState()
	state.Generation = h.generation
	h.publishLocked(state)

	return h.generation
}

// finish records the outcome of generation. It returns false and leaves the
// state untouched when a newer generation has begun since.
func (h *syncStateHolder) finish(generation uint64, state models.SyncState) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if generation != h.generation {
		return false
	}
	state.Generation = generation
	h.publishLocked(state)

	return true
}

func (h *syncStateHolder) snapshot() models.SyncState {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

// subscribe registers a latest-value channel primed with the current state.
func (h *syncStateHolder) subscribe() (<-chan models.SyncState, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextSubscriber
	h.nextSubscriber++

	ch := make(chan models.SyncState, 1)
	ch <- h.state
	h.subscribers[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.subscribers, id)
			close(ch)
		})
	}
}

func (h *syncStateHolder) publishLocked(state models.SyncState) {
	h.state = state
	for _, ch := range h.subscribers {
		// drop the unread value so the subscriber only ever sees the latest
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- state:
		default:
		}
	}
}
