package server

import (
	"iter"
	"sync"
)

// Registry tracks which live connection belongs to which room. It is the
// volatile mirror of room membership: the forward map (room to user to
// connection) and the reverse map (user to room) always agree, and a user
// is attached to at most one room at a time.
type Registry struct {
	mu      sync.RWMutex
	rooms   map[string]map[string]*Client
	userMap map[string]string
}

func NewRegistry() *Registry {
	return &Registry{
		rooms:   make(map[string]map[string]*Client),
		userMap: make(map[string]string),
	}
}

// Attach records the user's live connection in the room. Attaching while
// attached elsewhere detaches the old entry first; re-attaching to the same
// room replaces the connection handle.
func (r *Registry) Attach(roomId, userId string, c *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, ok := r.userMap[userId]; ok && prev != roomId {
		r.removeLocked(prev, userId)
	}

	if r.rooms[roomId] == nil {
		r.rooms[roomId] = make(map[string]*Client)
	}
	r.rooms[roomId][userId] = c
	r.userMap[userId] = roomId
}

// Detach removes the user from whichever room it is attached to and
// reports that room. Detaching an unattached user is a no-op.
func (r *Registry) Detach(userId string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	roomId, ok := r.userMap[userId]
	if !ok {
		return "", false
	}

	r.removeLocked(roomId, userId)
	return roomId, true
}

func (r *Registry) removeLocked(roomId, userId string) {
	delete(r.userMap, userId)
	if users, ok := r.rooms[roomId]; ok {
		delete(users, userId)
		if len(users) == 0 {
			delete(r.rooms, roomId)
		}
	}
}

// RoomOf returns the room the user is currently attached to.
func (r *Registry) RoomOf(userId string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	roomId, ok := r.userMap[userId]
	return roomId, ok
}

// Connection returns the live connection currently recorded for the user.
func (r *Registry) Connection(userId string) (*Client, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	roomId, ok := r.userMap[userId]
	if !ok {
		return nil, false
	}

	c, ok := r.rooms[roomId][userId]
	return c, ok
}

// ConnectionsInRoom returns a restartable sequence over the room's live
// connections. Each range takes a fresh snapshot, so mutation during
// iteration is safe.
func (r *Registry) ConnectionsInRoom(roomId string) iter.Seq[*Client] {
	return func(yield func(*Client) bool) {
		r.mu.RLock()
		clients := make([]*Client, 0, len(r.rooms[roomId]))
		for _, c := range r.rooms[roomId] {
			clients = append(clients, c)
		}
		r.mu.RUnlock()

		for _, c := range clients {
			if !yield(c) {
				return
			}
		}
	}
}

// NumInRoom returns the number of live connections in the room.
func (r *Registry) NumInRoom(roomId string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.rooms[roomId])
}
