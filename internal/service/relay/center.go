package relay

import (
	"sync"

	"github.com/google/uuid"

	"fundmate/appcore/internal/model"
)

// Center keeps the notifications delivered during this session, newest
// first, with local read tracking for the bell badge.
type Center struct {
	mu            sync.Mutex
	notifications []model.Notification
}

func NewCenter() *Center {
	return &Center{}
}

// Add records an event and returns the stored notification. Push payloads
// carry no id of their own, one is assigned locally.
func (c *Center) Add(ev model.Event) model.Notification {
	n := model.Notification{
		ID:        uuid.NewString(),
		Title:     ev.Title,
		Message:   ev.Message,
		Type:      ev.Type,
		GoalID:    ev.GoalID,
		Timestamp: ev.Timestamp,
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.notifications = append([]model.Notification{n}, c.notifications...)
	return n
}

func (c *Center) Notifications() []model.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]model.Notification, len(c.notifications))
	copy(out, c.notifications)
	return out
}

func (c *Center) UnreadCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for i := range c.notifications {
		if !c.notifications[i].Read {
			n++
		}
	}
	return n
}

func (c *Center) MarkRead(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.notifications {
		if c.notifications[i].ID == id {
			c.notifications[i].Read = true
			return
		}
	}
}

func (c *Center) ClearAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notifications = nil
}
