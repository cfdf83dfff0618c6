package server

import (
	"encoding/json"
	"log"
)

// Broadcaster fans one event out to every live connection in a room.
type Broadcaster struct {
	registry *Registry
	log      *log.Logger
}

func NewBroadcaster(registry *Registry, logger *log.Logger) *Broadcaster {
	return &Broadcaster{
		registry: registry,
		log:      logger,
	}
}

// Broadcast serializes msg once and queues the identical frame on every
// connection registered for the room at call time. Clients whose send
// buffer is full are skipped; the per-client write pump owns the socket,
// so a slow connection never delays the others.
func (b *Broadcaster) Broadcast(roomId string, msg *ServerMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		b.log.Println("failed to serialize broadcast:", err)
		return
	}

	for c := range b.registry.ConnectionsInRoom(roomId) {
		if !c.queueRaw(data) {
			b.log.Printf("dropped %s event for user %q", msg.Type, c.user.Id)
		}
	}
}
