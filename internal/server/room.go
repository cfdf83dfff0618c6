package server

import (
	"encoding/json"
	"log"
	"time"

	"github.com/kinoquiz/kinoquiz/internal/database"
	"github.com/kinoquiz/kinoquiz/internal/types"
)

const (
	idleRoomTimeout            = 30 * time.Second
	defaultQuestionLimit       = 10
	defaultTimePerQuestionSecs = 30
	pointsPerCorrectAnswer     = 10
)

type roomState int

const (
	roomWaiting roomState = iota
	roomInProgress
	roomFinished
)

type exitReq struct {
	done chan struct{}
}

// Room is the coordinator for a single multiplayer room. All registry and
// store mutation for the room goes through its actor loop, one message at
// a time; different rooms run fully in parallel.
type Room struct {
	id          string
	gs          *GameServer
	db          database.KinoQuizRepository
	registry    *Registry
	broadcaster *Broadcaster
	log         *log.Logger

	joinChan chan *ClientMessage
	msgChan  chan *ClientMessage
	exit     chan exitReq

	state           roomState
	category        string
	timePerQuestion time.Duration
	questions       []types.Question
	questionIndex   int

	// killTimer unloads the room once it has been empty for a while
	killTimer *time.Timer
	// questionTimer advances the game when nobody does it explicitly
	questionTimer *time.Timer
}

func newRoom(dbRoom database.Room, gs *GameServer) *Room {
	state := roomWaiting
	if dbRoom.IsStarted {
		state = roomInProgress
	}

	if dbRoom.TimePerQuestion <= 0 {
		dbRoom.TimePerQuestion = defaultTimePerQuestionSecs
	}

	r := &Room{
		id:              dbRoom.Id,
		gs:              gs,
		db:              gs.db,
		registry:        gs.registry,
		broadcaster:     gs.broadcaster,
		log:             gs.log,
		joinChan:        make(chan *ClientMessage, 256),
		msgChan:         make(chan *ClientMessage, 256),
		exit:            make(chan exitReq),
		state:           state,
		category:        dbRoom.Category,
		timePerQuestion: time.Duration(dbRoom.TimePerQuestion) * time.Second,
	}

	r.killTimer = time.NewTimer(idleRoomTimeout)
	r.killTimer.Stop()
	r.questionTimer = time.NewTimer(r.timePerQuestion)
	r.questionTimer.Stop()

	return r
}

func (r *Room) start() {
	r.log.Printf("starting room %q", r.id)

	for {
		select {
		case join := <-r.joinChan:
			r.handleJoin(join)
		case msg := <-r.msgChan:
			switch msg.Type {
			case MessageLeaveRoom:
				r.handleLeave(msg)
			case MessageGameStart:
				r.handleGameStart(msg)
			case MessageSubmitAnswer:
				r.handleSubmitAnswer(msg)
			case MessageNextQuestion:
				r.handleNextQuestion(msg)
			default:
				msg.client.queueMessage(ErrInvalidMessage())
			}
		case <-r.questionTimer.C:
			r.advanceQuestion()
		case <-r.killTimer.C:
			r.log.Printf("room %q timed out", r.id)
			// the server may be shutting down while we report the
			// timeout, so keep accepting exit
			select {
			case r.gs.unloadRoomChan <- r.id:
			case e := <-r.exit:
				r.handleRoomExit(e)
				return
			}
		case e := <-r.exit:
			r.handleRoomExit(e)
			return
		}
	}
}

func (r *Room) enqueue(msg *ClientMessage) bool {
	select {
	case r.msgChan <- msg:
		return true
	default:
		return false
	}
}

func (r *Room) handleJoin(join *ClientMessage) {
	c := join.client

	if r.state == roomFinished {
		c.queueMessage(ErrRoomNotFound())
		return
	}

	r.killTimer.Stop()

	participants, err := r.db.GetParticipants(r.id)
	if err != nil {
		r.log.Println("GetParticipants:", err)
		c.queueMessage(ErrInternalError())
		r.resetKillTimerIfEmpty()
		return
	}

	// a row may already exist for this user, in which case the join is
	// a resume rather than a duplicate
	var resumed bool
	for _, p := range participants {
		if p.UserId == c.user.Id {
			resumed = true
			break
		}
	}

	if !resumed {
		if _, err := r.db.CreateParticipant(r.id, c.user.Id); err != nil {
			r.log.Println("CreateParticipant:", err)
			c.queueMessage(ErrInternalError())
			r.resetKillTimerIfEmpty()
			return
		}
	}

	// Attach drops any registry entry for a previous room. That room's
	// participant row and player count stay stale until its actor sees a
	// leave or the socket disconnects.
	r.registry.Attach(r.id, c.user.Id, c)

	r.recountAndBroadcast(EventUserJoined, c.user.Id)
}

func (r *Room) handleLeave(msg *ClientMessage) {
	userId := msg.UserId

	if msg.disconnect {
		// ignore stale close events from a connection the user has
		// already replaced by reconnecting
		if conn, ok := r.registry.Connection(userId); !ok || conn != msg.client {
			return
		}
	}

	if roomId, ok := r.registry.RoomOf(userId); !ok || roomId != r.id {
		// leaving a room you are not in is a no-op
		return
	}

	if err := r.db.DeleteParticipant(r.id, userId); err != nil {
		r.log.Println("DeleteParticipant:", err)
		if !msg.disconnect {
			msg.client.queueMessage(ErrInternalError())
		}
	}

	// detach regardless of the store outcome so the user stops
	// receiving broadcasts
	r.registry.Detach(userId)

	r.recountAndBroadcast(EventUserLeft, userId)

	if r.registry.NumInRoom(r.id) == 0 {
		r.log.Printf("no connections in %q, starting kill timer", r.id)
		r.killTimer.Reset(idleRoomTimeout)
	}
}

// recountAndBroadcast recomputes the persisted player count from the
// authoritative participant rows and fans out the fresh list, so the
// broadcast membership always matches durable state at send time.
func (r *Room) recountAndBroadcast(event, userId string) {
	participants, err := r.db.GetParticipants(r.id)
	if err != nil {
		r.log.Println("GetParticipants:", err)
		return
	}

	if err := r.db.SetCurrentPlayerCount(r.id, len(participants)); err != nil {
		r.log.Println("SetCurrentPlayerCount:", err)
	}

	r.broadcaster.Broadcast(r.id, &ServerMessage{
		Type:    event,
		UserId:  userId,
		Payload: participantList(participants),
	})
}

func (r *Room) handleGameStart(msg *ClientMessage) {
	if r.state != roomWaiting {
		msg.client.queueMessage(ErrGameAlreadyStarted())
		return
	}

	category := r.category
	if len(msg.Payload) > 0 {
		var payload GameStartPayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			msg.client.queueMessage(ErrInvalidMessage())
			return
		}
		if payload.Category != "" {
			category = payload.Category
		}
	}

	questions, err := r.db.GetQuestionBatch(defaultQuestionLimit, category)
	if err != nil {
		r.log.Println("GetQuestionBatch:", err)
		msg.client.queueMessage(ErrInternalError())
		return
	}

	if err := r.db.SetRoomStarted(r.id); err != nil {
		// the in-memory game proceeds, the durable flag lags behind
		r.log.Println("SetRoomStarted:", err)
		msg.client.queueMessage(ErrInternalError())
	}

	r.state = roomInProgress
	r.questions = wireQuestions(questions)
	r.questionIndex = 0

	r.gs.stats.Incr("NumGamesStarted")

	r.broadcaster.Broadcast(r.id, &ServerMessage{
		Type:    EventGameStarted,
		Payload: GameStartedPayload{Questions: r.questions},
	})

	r.questionTimer.Reset(r.timePerQuestion)
}

func (r *Room) handleSubmitAnswer(msg *ClientMessage) {
	if r.state != roomInProgress {
		msg.client.queueMessage(ErrGameNotStarted())
		return
	}

	var payload SubmitAnswerPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil || payload.QuestionId == "" {
		msg.client.queueMessage(ErrInvalidMessage())
		return
	}

	correct, err := r.db.CheckAnswer(payload.QuestionId, payload.Answer)
	if err != nil {
		r.log.Println("CheckAnswer:", err)
		msg.client.queueMessage(ErrInternalError())
		return
	}

	r.gs.stats.Incr("NumAnswersChecked")

	if correct {
		if err := r.db.AddParticipantScore(r.id, msg.UserId, pointsPerCorrectAnswer); err != nil {
			r.log.Println("AddParticipantScore:", err)
		}
	}

	// the correctness result goes to the submitter only
	msg.client.queueMessage(&ServerMessage{
		Type:    EventAnswerResult,
		Payload: AnswerResultPayload{IsCorrect: correct, QuestionId: payload.QuestionId},
	})

	// everyone else only learns that the player answered
	r.broadcaster.Broadcast(r.id, &ServerMessage{
		Type:    EventPlayerAnswered,
		UserId:  msg.UserId,
		Payload: PlayerAnsweredPayload{QuestionId: payload.QuestionId},
	})
}

func (r *Room) handleNextQuestion(msg *ClientMessage) {
	if r.state != roomInProgress {
		msg.client.queueMessage(ErrGameNotStarted())
		return
	}

	r.advanceQuestion()
}

func (r *Room) advanceQuestion() {
	if r.state != roomInProgress {
		return
	}

	r.questionIndex++
	if r.questionIndex >= len(r.questions) {
		r.finishGame()
		return
	}

	r.broadcaster.Broadcast(r.id, &ServerMessage{
		Type: EventNextQuestion,
		Payload: NextQuestionPayload{
			QuestionIndex: r.questionIndex,
			Question:      r.questions[r.questionIndex],
		},
	})

	r.questionTimer.Reset(r.timePerQuestion)
}

func (r *Room) finishGame() {
	r.state = roomFinished
	r.questionTimer.Stop()

	participants, err := r.db.GetParticipants(r.id)
	if err != nil {
		r.log.Println("GetParticipants:", err)
	}

	r.broadcaster.Broadcast(r.id, &ServerMessage{
		Type:    EventGameFinished,
		Payload: GameFinishedPayload{Participants: participantList(participants)},
	})

	if err := r.db.DeactivateRoom(r.id); err != nil {
		r.log.Println("DeactivateRoom:", err)
	}

	// the room is terminal, unload it once clients have had a chance
	// to read the final scores
	r.killTimer.Reset(idleRoomTimeout)
}

func (r *Room) handleRoomExit(e exitReq) {
	r.log.Printf("room %q is exiting", r.id)
	r.questionTimer.Stop()
	r.killTimer.Stop()

	for c := range r.registry.ConnectionsInRoom(r.id) {
		r.registry.Detach(c.user.Id)
	}

	if e.done != nil {
		close(e.done)
	}
}

func (r *Room) resetKillTimerIfEmpty() {
	if r.registry.NumInRoom(r.id) == 0 {
		r.killTimer.Reset(idleRoomTimeout)
	}
}

func participantList(participants []database.Participant) []types.Participant {
	list := make([]types.Participant, len(participants))
	for i, p := range participants {
		list[i] = types.Participant{
			Id:       p.Id,
			RoomId:   p.RoomId,
			UserId:   p.UserId,
			Score:    p.Score,
			IsReady:  p.IsReady,
			JoinedAt: p.JoinedAt,
		}
	}
	return list
}

func wireQuestions(questions []database.Question) []types.Question {
	list := make([]types.Question, len(questions))
	for i, q := range questions {
		list[i] = types.Question{
			Id:         q.Id,
			Question:   q.Question,
			OptionA:    q.OptionA,
			OptionB:    q.OptionB,
			OptionC:    q.OptionC,
			OptionD:    q.OptionD,
			Category:   q.Category,
			Difficulty: q.Difficulty,
		}
	}
	return list
}
