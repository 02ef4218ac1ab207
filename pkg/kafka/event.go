package kafka

import (
	"time"

	"github.com/google/uuid"
)

type Entity string

const (
	EntityRental  Entity = "rental"
	EntityBooking Entity = "booking"
	EntityRequest Entity = "request"
	EntityItem    Entity = "request_item"
)

// Event is the lifecycle envelope published after a state change commits.
type Event struct {
	ID        uuid.UUID `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Entity    Entity    `json:"entity"`
	EntityID  int64     `json:"entityId"`
	Action    string    `json:"action"`
	Actor     string    `json:"actor"`
	From      string    `json:"from,omitempty"`
	To        string    `json:"to"`
	// UserName owns the record, not necessarily the actor.
	UserName string `json:"username"`
	Quantity int    `json:"quantity,omitempty"`
}

func NewEvent(entity Entity, id int64, action, actor, from, to, owner string) Event {
	return Event{
		ID:        uuid.New(),
		Timestamp: time.Now().UTC(),
		Entity:    entity,
		EntityID:  id,
		Action:    action,
		Actor:     actor,
		From:      from,
		To:        to,
		UserName:  owner,
	}
}

func (e Event) Type() string {
	return string(e.Entity) + "." + e.Action
}
