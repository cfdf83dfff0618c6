package server

import (
	"database/sql"
	"errors"
	"log"
	"sync"

	"github.com/kinoquiz/kinoquiz/internal/database"
	"github.com/kinoquiz/kinoquiz/internal/stats"
)

// GameServer owns the room actors and the shared connection registry. Its
// run loop handles join requests (lazily loading room actors from the
// store) and unloads idle rooms.
type GameServer struct {
	log         *log.Logger
	db          database.KinoQuizRepository
	stats       stats.StatsProvider
	registry    *Registry
	broadcaster *Broadcaster

	clients     map[*Client]struct{}
	clientsLock sync.Mutex

	rooms     map[string]*Room
	roomsLock sync.RWMutex

	joinChan       chan *ClientMessage
	unloadRoomChan chan string
	stop           chan struct{}
	done           chan struct{}
}

func NewGameServer(logger *log.Logger, db database.KinoQuizRepository, sp stats.StatsProvider) (*GameServer, error) {
	registry := NewRegistry()

	gs := &GameServer{
		log:            logger,
		db:             db,
		stats:          sp,
		registry:       registry,
		broadcaster:    NewBroadcaster(registry, logger),
		clients:        make(map[*Client]struct{}),
		rooms:          make(map[string]*Room),
		joinChan:       make(chan *ClientMessage, 256),
		unloadRoomChan: make(chan string),
		stop:           make(chan struct{}),
		done:           make(chan struct{}),
	}

	sp.RegisterMetric("NumActiveClients")
	sp.RegisterMetric("NumActiveRooms")
	sp.RegisterMetric("NumGamesStarted")
	sp.RegisterMetric("NumAnswersChecked")

	return gs, nil
}

func (gs *GameServer) Run() {
	for {
		select {
		case joinMsg := <-gs.joinChan:
			gs.handleJoinRoom(joinMsg)
		case id := <-gs.unloadRoomChan:
			gs.unloadRoom(id)
		case <-gs.stop:
			gs.log.Println("shutting down rooms")
			gs.roomsLock.Lock()
			for id, r := range gs.rooms {
				gs.log.Printf("shutting down room %q", id)
				done := make(chan struct{})
				r.exit <- exitReq{done: done}
				<-done
				delete(gs.rooms, id)
				gs.stats.Decr("NumActiveRooms")
			}
			gs.roomsLock.Unlock()

			close(gs.done)
			return
		}
	}
}

func (gs *GameServer) handleJoinRoom(join *ClientMessage) {
	if r := gs.room(join.RoomId); r != nil {
		select {
		case r.joinChan <- join:
		default:
			gs.log.Printf("join channel full on room %q", join.RoomId)
			join.client.queueMessage(ErrServiceUnavailable())
		}
		return
	}

	dbRoom, err := gs.db.GetRoom(join.RoomId)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			join.client.queueMessage(ErrRoomNotFound())
			return
		}
		gs.log.Println("GetRoom:", err)
		join.client.queueMessage(ErrServiceUnavailable())
		return
	}
	if !dbRoom.IsActive {
		join.client.queueMessage(ErrRoomNotFound())
		return
	}

	room := newRoom(dbRoom, gs)
	gs.addRoom(room)
	room.joinChan <- join

	go room.start()

	gs.stats.Incr("NumActiveRooms")
}

func (gs *GameServer) room(id string) *Room {
	gs.roomsLock.RLock()
	defer gs.roomsLock.RUnlock()

	return gs.rooms[id]
}

func (gs *GameServer) addRoom(r *Room) {
	gs.roomsLock.Lock()
	defer gs.roomsLock.Unlock()

	gs.rooms[r.id] = r
}

func (gs *GameServer) unloadRoom(id string) {
	gs.roomsLock.Lock()
	r, ok := gs.rooms[id]
	if ok {
		delete(gs.rooms, id)
	}
	gs.roomsLock.Unlock()

	if !ok {
		return
	}

	gs.log.Printf("unloading room %q", id)
	done := make(chan struct{})
	r.exit <- exitReq{done: done}
	<-done

	gs.stats.Decr("NumActiveRooms")
}

func (gs *GameServer) RegisterClient(c *Client) {
	gs.clientsLock.Lock()
	defer gs.clientsLock.Unlock()

	gs.log.Printf("adding connection from %q", c.user.Username)
	gs.clients[c] = struct{}{}
	gs.stats.Incr("NumActiveClients")
}

func (gs *GameServer) DeRegisterClient(c *Client) {
	gs.clientsLock.Lock()
	defer gs.clientsLock.Unlock()

	if _, ok := gs.clients[c]; ok {
		gs.log.Printf("removing connection from %q", c.user.Username)
		delete(gs.clients, c)
		gs.stats.Decr("NumActiveClients")
	}
}

func (gs *GameServer) Shutdown() {
	gs.log.Println("received shutdown signal")

	gs.clientsLock.Lock()
	for c := range gs.clients {
		c.stopClient()
	}
	gs.clientsLock.Unlock()

	close(gs.stop)

	<-gs.done
}
