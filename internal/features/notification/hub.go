package notification

import (
	"sync"

	common_models "go-legal/internal/common/models"
)

const subscriberBuffer = 16

// Hub fans out new notifications to live subscribers (websocket sessions).
// Delivery is best effort: a subscriber whose buffer is full misses the
// message and can catch up through the list endpoint.
type Hub struct {
	mu     sync.RWMutex
	nextID int
	subs   map[int]subscriber
}

type subscriber struct {
	userID string
	role   common_models.Role
	ch     chan TransitionNotification
}

func NewHub() *Hub {
	return &Hub{subs: make(map[int]subscriber)}
}

// Subscribe registers a listener for userID and role. The returned cancel
// func closes the channel and must be called once the listener is done.
func (h *Hub) Subscribe(userID string, role common_models.Role) (<-chan TransitionNotification, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++
	ch := make(chan TransitionNotification, subscriberBuffer)
	h.subs[id] = subscriber{userID: userID, role: role, ch: ch}

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			h.mu.Unlock()
			close(ch)
		})
	}
}

// Publish is a no-op on a nil Hub.
func (h *Hub) Publish(n TransitionNotification) {
	if h == nil {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, s := range h.subs {
		if !addressedTo(n, s.userID, s.role) {
			continue
		}
		select {
		case s.ch <- n:
		default:
		}
	}
}

func addressedTo(n TransitionNotification, userID string, role common_models.Role) bool {
	if n.RecipientID != "" {
		return n.RecipientID == userID
	}
	return n.RecipientRole == role
}
