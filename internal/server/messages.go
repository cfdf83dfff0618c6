package server

import (
	"encoding/json"
	"net/http"

	"github.com/kinoquiz/kinoquiz/internal/types"
)

// Client to server message kinds.
const (
	MessageJoinRoom     = "join_room"
	MessageLeaveRoom    = "leave_room"
	MessageGameStart    = "game_start"
	MessageSubmitAnswer = "submit_answer"
	MessageNextQuestion = "next_question"
)

// Server to client event kinds.
const (
	EventUserJoined     = "user_joined"
	EventUserLeft       = "user_left"
	EventGameStarted    = "game_started"
	EventAnswerResult   = "answer_result"
	EventPlayerAnswered = "player_answered"
	EventNextQuestion   = "next_question"
	EventGameFinished   = "game_finished"
	EventError          = "error"
)

type ClientMessage struct {
	Type    string          `json:"type"`
	RoomId  string          `json:"roomId"`
	UserId  string          `json:"userId,omitempty"`
	Payload json.RawMessage `json:"payload,omitempty"`

	client *Client
	// disconnect marks a leave generated by a transport-level close
	// rather than an explicit leave_room message
	disconnect bool
}

type GameStartPayload struct {
	Category string `json:"category,omitempty"`
}

type SubmitAnswerPayload struct {
	QuestionId string `json:"questionId"`
	Answer     string `json:"answer"`
}

type ServerMessage struct {
	Type    string `json:"type"`
	UserId  string `json:"userId,omitempty"`
	Payload any    `json:"payload,omitempty"`
}

type GameStartedPayload struct {
	Questions []types.Question `json:"questions"`
}

type AnswerResultPayload struct {
	IsCorrect  bool   `json:"isCorrect"`
	QuestionId string `json:"questionId"`
}

type PlayerAnsweredPayload struct {
	QuestionId string `json:"questionId"`
}

type NextQuestionPayload struct {
	QuestionIndex int            `json:"questionIndex"`
	Question      types.Question `json:"question"`
}

type GameFinishedPayload struct {
	Participants []types.Participant `json:"participants"`
}

type ErrorPayload struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

func errEvent(code int, text string) *ServerMessage {
	return &ServerMessage{
		Type:    EventError,
		Payload: ErrorPayload{Code: code, Error: text},
	}
}

func ErrRoomNotFound() *ServerMessage {
	return errEvent(http.StatusNotFound, "room not found")
}

func ErrInvalidMessage() *ServerMessage {
	return errEvent(http.StatusBadRequest, "invalid message")
}

func ErrInternalError() *ServerMessage {
	return errEvent(http.StatusInternalServerError, "internal server error")
}

func ErrServiceUnavailable() *ServerMessage {
	return errEvent(http.StatusServiceUnavailable, "service unavailable")
}

func ErrGameAlreadyStarted() *ServerMessage {
	return errEvent(http.StatusConflict, "game already started")
}

func ErrGameNotStarted() *ServerMessage {
	return errEvent(http.StatusConflict, "game not started")
}
