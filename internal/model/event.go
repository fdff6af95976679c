package model

import "time"

// EventType classifies push events delivered out of band. Types unknown to
// this build are dropped by the relay without failing the stream.
type EventType string

const (
	EventWithdrawalRequest      EventType = "WITHDRAWAL_REQUEST"
	EventWithdrawalStatusUpdate EventType = "WITHDRAWAL_STATUS_UPDATE"
	EventGoalInvite             EventType = "GOAL_INVITE"
	EventFriendRequest          EventType = "FRIEND_REQUEST"
)

// Known reports whether the type is one this client understands.
func (t EventType) Known() bool {
	switch t {
	case EventWithdrawalRequest,
		EventWithdrawalStatusUpdate,
		EventGoalInvite,
		EventFriendRequest:
		return true
	}
	return false
}

// WithdrawalRelated reports whether the event must trigger a targeted
// reload of the affected goal's withdrawal registry.
func (t EventType) WithdrawalRelated() bool {
	return t == EventWithdrawalRequest || t == EventWithdrawalStatusUpdate
}

// Event is one push message after decoding. GoalID is set for goal-scoped
// events and identifies the registry to reload.
type Event struct {
	Type      EventType `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	GoalID    string    `json:"goalId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Notification is an event retained for display in the notification
// center, with local read tracking.
type Notification struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      EventType `json:"type"`
	GoalID    string    `json:"goalId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
}
