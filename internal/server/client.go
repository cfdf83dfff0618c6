package server

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/kinoquiz/kinoquiz/internal/types"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingInterval   = (pongWait * 9) / 10
	maxMessageSize = 1024
)

type Client struct {
	conn       *websocket.Conn
	gameServer *GameServer
	log        *log.Logger
	user       types.User
	send       chan []byte
	stop       chan struct{}
	stopOnce   sync.Once
}

func NewClient(user types.User, conn *websocket.Conn, gs *GameServer, l *log.Logger) *Client {
	return &Client{
		conn:       conn,
		gameServer: gs,
		log:        l,
		user:       user,
		send:       make(chan []byte, 256),
		stop:       make(chan struct{}),
	}
}

func (c *Client) Write() {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		c.conn.Close()
		c.log.Println("write exiting")
	}()

	for {
		select {
		case data, ok := <-c.send:
			if !ok {
				return
			}

			if !c.sendMessage(websocket.TextMessage, data) {
				return
			}
		case <-c.stop:
			return
		case <-ticker.C:
			if !c.sendMessage(websocket.PingMessage, nil) {
				return
			}
		}
	}
}

func (c *Client) Read() {
	defer func() {
		c.conn.Close()
		c.cleanup()
		c.log.Println("read exiting")
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(appData string) error { c.conn.SetReadDeadline(time.Now().Add(pongWait)); return nil })
	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				c.log.Printf("ws: read: %v", err)
			}
			break
		}

		var msg ClientMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			c.log.Println("error parsing message:", err)
			c.queueMessage(ErrInvalidMessage())
			continue
		}

		msg.client = c
		msg.UserId = c.user.Id

		switch msg.Type {
		case MessageJoinRoom:
			c.joinRoom(&msg)
		case MessageLeaveRoom, MessageGameStart, MessageSubmitAnswer, MessageNextQuestion:
			c.routeToRoom(&msg)
		default:
			c.queueMessage(ErrInvalidMessage())
		}
	}
}

func (c *Client) joinRoom(msg *ClientMessage) {
	select {
	case c.gameServer.joinChan <- msg:
	default:
		c.log.Println("joinChan full")
		c.queueMessage(ErrServiceUnavailable())
	}
}

func (c *Client) routeToRoom(msg *ClientMessage) {
	r := c.gameServer.room(msg.RoomId)
	if r == nil {
		c.queueMessage(ErrRoomNotFound())
		return
	}

	if !r.enqueue(msg) {
		c.log.Printf("msgChan full for room %q", r.id)
		c.queueMessage(ErrServiceUnavailable())
	}
}

func (c *Client) queueMessage(msg *ServerMessage) bool {
	data, err := json.Marshal(msg)
	if err != nil {
		c.log.Println("failed to serialize message:", err)
		return false
	}

	return c.queueRaw(data)
}

func (c *Client) queueRaw(data []byte) bool {
	select {
	case c.send <- data:
	default:
		c.log.Println("failed to send message to client, channel is full")
		return false
	}

	return true
}

func (c *Client) sendMessage(msgType int, data []byte) bool {
	c.conn.SetWriteDeadline(time.Now().Add(writeWait))

	if err := c.conn.WriteMessage(msgType, data); err != nil {
		if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure,
			websocket.CloseNormalClosure) {
			c.log.Printf("write message: %s", err)
		}
		return false
	}

	return true
}

func (c *Client) stopClient() {
	c.stopOnce.Do(func() { close(c.stop) })
}

func (c *Client) cleanup() {
	c.gameServer.DeRegisterClient(c)

	// a transport close counts as a leave for whatever room the
	// registry can still resolve for this user
	if roomId, ok := c.gameServer.registry.RoomOf(c.user.Id); ok {
		if r := c.gameServer.room(roomId); r != nil {
			r.enqueue(&ClientMessage{
				Type:       MessageLeaveRoom,
				RoomId:     roomId,
				UserId:     c.user.Id,
				client:     c,
				disconnect: true,
			})
		}
	}

	c.stopClient()
}
