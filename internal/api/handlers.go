package api

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/gorilla/websocket"
	"github.com/kinoquiz/kinoquiz/internal/database"
	"github.com/kinoquiz/kinoquiz/internal/server"
	"github.com/kinoquiz/kinoquiz/internal/types"
)

const (
	defaultQuestionLimit    = 10
	defaultLeaderboardLimit = 10
	defaultLives            = 3
)

// itemPrices is the coin cost of each shop power-up.
var itemPrices = map[string]int{
	"skip_question": 50,
	"fifty_fifty":   75,
	"extra_time":    30,
	"extra_life":    100,
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type CheckAnswerRequest struct {
	Answer string `json:"answer"`
}

type CheckAnswerResponse struct {
	QuestionId string `json:"questionId"`
	IsCorrect  bool   `json:"isCorrect"`
}

type QuickMatchRequest struct {
	GameMode string `json:"gameMode"`
	Category string `json:"category"`
}

type BuyCoinsRequest struct {
	Amount int `json:"amount"`
}

type BuyItemRequest struct {
	ItemType string `json:"itemType"`
	Quantity int    `json:"quantity"`
}

type UseItemRequest struct {
	ItemType string `json:"itemType"`
	Quantity int    `json:"quantity"`
}

func (s *KinoQuizApp) writeJson(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if v == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Printf("json encode: %v", err)
	}
}

func (s *KinoQuizApp) healthCheck(w http.ResponseWriter, _ *http.Request) {
	if err := s.db.Ping(); err != nil {
		s.log.Println("health check:", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func (s *KinoQuizApp) createAccount(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if req.Username == "" || req.Email == "" || req.Password == "" {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	pwdHash, err := hashPassword(req.Password)
	if err != nil {
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	newUser, err := s.db.CreateAccount(database.CreateAccountParams{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: pwdHash,
	})
	if err != nil {
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	s.writeJson(w, http.StatusCreated, toTypesUser(newUser))
}

func (s *KinoQuizApp) login(w http.ResponseWriter, r *http.Request) {
	var lr LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&lr); err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if lr.Email == "" || lr.Password == "" {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	dbUser, err := s.db.GetAccountByEmail(lr.Email)
	if err != nil {
		var errResp *ApiError
		if errors.Is(err, sql.ErrNoRows) {
			errResp = NewNotFoundError()
		} else {
			errResp = NewInternalServerError(err)
		}
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if !verifyPassword(dbUser.PasswordHash, lr.Password) {
		errResp := NewUnauthorizedError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	token, err := s.createJwtForSession(dbUser.Id, defaultJwtExpiration)
	if err != nil {
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	http.SetCookie(w, createJwtCookie(token, defaultJwtExpiration))

	s.writeJson(w, http.StatusOK, toTypesUser(dbUser))
}

func (s *KinoQuizApp) session(w http.ResponseWriter, r *http.Request) {
	userId, ok := UserId(r.Context())
	if !ok {
		errResp := NewUnauthorizedError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	user, err := s.db.GetAccountById(userId)
	if err != nil {
		var errResp *ApiError
		if errors.Is(err, sql.ErrNoRows) {
			errResp = NewNotFoundError()
		} else {
			errResp = NewInternalServerError(err)
		}
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	s.writeJson(w, http.StatusOK, toTypesUser(user))
}

func (s *KinoQuizApp) logout(w http.ResponseWriter, _ *http.Request) {
	// instruct browser to delete cookie by overwriting it with an expired one
	http.SetCookie(w, createJwtCookie("", -time.Hour))
	w.WriteHeader(http.StatusNoContent)
}

func (s *KinoQuizApp) getQuestions(w http.ResponseWriter, r *http.Request) {
	limit := defaultQuestionLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		n, err := strconv.Atoi(limitStr)
		if err != nil || n <= 0 {
			errResp := NewBadRequestError()
			s.writeJson(w, errResp.StatusCode, errResp)
			return
		}
		limit = n
	}

	questions, err := s.db.GetQuestionBatch(limit, r.URL.Query().Get("category"))
	if err != nil {
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	resp := make([]types.Question, len(questions))
	for i, q := range questions {
		resp[i] = toTypesQuestion(q)
	}

	s.writeJson(w, http.StatusOK, resp)
}

func (s *KinoQuizApp) createQuestion(w http.ResponseWriter, r *http.Request) {
	var params database.CreateQuestionParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if params.Question == "" || params.CorrectAnswer == "" {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	question, err := s.db.CreateQuestion(params)
	if err != nil {
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	s.writeJson(w, http.StatusCreated, toTypesQuestion(question))
}

func (s *KinoQuizApp) checkAnswer(w http.ResponseWriter, r *http.Request) {
	questionId := r.PathValue("id")

	var req CheckAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Answer == "" {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	correct, err := s.db.CheckAnswer(questionId, req.Answer)
	if err != nil {
		var errResp *ApiError
		if errors.Is(err, sql.ErrNoRows) {
			errResp = NewNotFoundError()
		} else {
			errResp = NewInternalServerError(err)
		}
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	s.writeJson(w, http.StatusOK, CheckAnswerResponse{QuestionId: questionId, IsCorrect: correct})
}

func (s *KinoQuizApp) createGameSession(w http.ResponseWriter, r *http.Request) {
	userId, ok := UserId(r.Context())
	if !ok {
		errResp := NewUnauthorizedError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	var params database.CreateGameSessionParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if params.GameMode == "" {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	params.UserId = userId
	if params.LivesRemaining <= 0 {
		params.LivesRemaining = defaultLives
	}

	session, err := s.db.CreateGameSession(params)
	if err != nil {
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	s.writeJson(w, http.StatusCreated, toTypesGameSession(session))
}

func (s *KinoQuizApp) getGameSession(w http.ResponseWriter, r *http.Request) {
	userId, ok := UserId(r.Context())
	if !ok {
		errResp := NewUnauthorizedError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	session, err := s.db.GetGameSession(r.PathValue("id"))
	if err != nil {
		var errResp *ApiError
		if errors.Is(err, sql.ErrNoRows) {
			errResp = NewNotFoundError()
		} else {
			errResp = NewInternalServerError(err)
		}
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if session.UserId != userId {
		errResp := NewForbiddenError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	s.writeJson(w, http.StatusOK, toTypesGameSession(session))
}

func (s *KinoQuizApp) updateGameSession(w http.ResponseWriter, r *http.Request) {
	userId, ok := UserId(r.Context())
	if !ok {
		errResp := NewUnauthorizedError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	sessionId := r.PathValue("id")
	session, err := s.db.GetGameSession(sessionId)
	if err != nil {
		var errResp *ApiError
		if errors.Is(err, sql.ErrNoRows) {
			errResp = NewNotFoundError()
		} else {
			errResp = NewInternalServerError(err)
		}
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if session.UserId != userId {
		errResp := NewForbiddenError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if session.IsCompleted {
		errResp := NewConflictError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	var params database.UpdateGameSessionParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	updated, err := s.db.UpdateGameSession(sessionId, params)
	if err != nil {
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	// completing a session rolls its score into the user's totals
	if updated.IsCompleted {
		if err := s.db.UpdateUserStats(userId, updated.Score); err != nil {
			s.log.Println("UpdateUserStats:", err)
		}
	}

	s.writeJson(w, http.StatusOK, toTypesGameSession(updated))
}

func (s *KinoQuizApp) listGameSessions(w http.ResponseWriter, r *http.Request) {
	userId, ok := UserId(r.Context())
	if !ok {
		errResp := NewUnauthorizedError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if r.PathValue("id") != userId {
		errResp := NewForbiddenError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	sessions, err := s.db.ListUserGameSessions(userId)
	if err != nil {
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	resp := make([]types.GameSession, len(sessions))
	for i, session := range sessions {
		resp[i] = toTypesGameSession(session)
	}

	s.writeJson(w, http.StatusOK, resp)
}

// getProfile returns a user's public profile. Any authenticated user may
// view any profile.
func (s *KinoQuizApp) getProfile(w http.ResponseWriter, r *http.Request) {
	user, err := s.db.GetAccountById(r.PathValue("id"))
	if err != nil {
		var errResp *ApiError
		if errors.Is(err, sql.ErrNoRows) {
			errResp = NewNotFoundError()
		} else {
			errResp = NewInternalServerError(err)
		}
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	s.writeJson(w, http.StatusOK, toTypesUser(user))
}

func (s *KinoQuizApp) updateProfile(w http.ResponseWriter, r *http.Request) {
	userId, ok := UserId(r.Context())
	if !ok {
		errResp := NewUnauthorizedError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if r.PathValue("id") != userId {
		errResp := NewForbiddenError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	var params database.UpdateUserProfileParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if params.Username == "" && params.Email == "" {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	user, err := s.db.UpdateUserProfile(userId, params)
	if err != nil {
		var errResp *ApiError
		if errors.Is(err, sql.ErrNoRows) {
			errResp = NewNotFoundError()
		} else {
			errResp = NewInternalServerError(err)
		}
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	s.writeJson(w, http.StatusOK, toTypesUser(user))
}

func (s *KinoQuizApp) getLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit := defaultLeaderboardLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		n, err := strconv.Atoi(limitStr)
		if err != nil || n <= 0 {
			errResp := NewBadRequestError()
			s.writeJson(w, errResp.StatusCode, errResp)
			return
		}
		limit = n
	}

	entries, err := s.db.GetLeaderboard(limit)
	if err != nil {
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	resp := make([]types.LeaderboardEntry, len(entries))
	for i, e := range entries {
		resp[i] = types.LeaderboardEntry{User: toTypesUser(e.User), Rank: e.Rank}
	}

	s.writeJson(w, http.StatusOK, resp)
}

func (s *KinoQuizApp) createRoom(w http.ResponseWriter, r *http.Request) {
	userId, ok := UserId(r.Context())
	if !ok {
		errResp := NewUnauthorizedError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	var params database.CreateRoomParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if params.Name == "" {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	sid, err := s.generateShortId()
	if err != nil {
		s.log.Println("shortid:", err)
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	params.Id = sid
	params.HostId = userId

	newRoom, err := s.db.CreateRoom(params)
	if err != nil {
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	s.writeJson(w, http.StatusCreated, toTypesRoom(newRoom))
}

func (s *KinoQuizApp) listRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := s.db.ListRooms(false)
	if err != nil {
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	resp := make([]types.Room, len(rooms))
	for i, room := range rooms {
		resp[i] = toTypesRoom(room)
	}

	s.writeJson(w, http.StatusOK, resp)
}

func (s *KinoQuizApp) getRoom(w http.ResponseWriter, r *http.Request) {
	room, err := s.db.GetRoom(r.PathValue("id"))
	if err != nil {
		var errResp *ApiError
		if errors.Is(err, sql.ErrNoRows) {
			errResp = NewNotFoundError()
		} else {
			errResp = NewInternalServerError(err)
		}
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	s.writeJson(w, http.StatusOK, toTypesRoom(room))
}

func (s *KinoQuizApp) getRoomParticipants(w http.ResponseWriter, r *http.Request) {
	roomId := r.PathValue("id")

	if _, err := s.db.GetRoom(roomId); err != nil {
		var errResp *ApiError
		if errors.Is(err, sql.ErrNoRows) {
			errResp = NewNotFoundError()
		} else {
			errResp = NewInternalServerError(err)
		}
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	participants, err := s.db.GetParticipants(roomId)
	if err != nil {
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	resp := make([]types.Participant, len(participants))
	for i, p := range participants {
		resp[i] = toTypesParticipant(p)
	}

	s.writeJson(w, http.StatusOK, resp)
}

// quickMatch joins the caller to the oldest public room with a free slot,
// creating a fresh room when none is available.
func (s *KinoQuizApp) quickMatch(w http.ResponseWriter, r *http.Request) {
	userId, ok := UserId(r.Context())
	if !ok {
		errResp := NewUnauthorizedError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	var req QuickMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if req.GameMode == "" {
		req.GameMode = "classic"
	}

	room, err := s.db.FindAvailableRoom(req.GameMode, req.Category)
	if err == nil {
		s.writeJson(w, http.StatusOK, toTypesRoom(room))
		return
	}
	if !errors.Is(err, sql.ErrNoRows) {
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	sid, err := s.generateShortId()
	if err != nil {
		s.log.Println("shortid:", err)
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	newRoom, err := s.db.CreateRoom(database.CreateRoomParams{
		Id:       sid,
		Name:     "Quick Match",
		HostId:   userId,
		GameMode: req.GameMode,
		Category: req.Category,
	})
	if err != nil {
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	s.writeJson(w, http.StatusCreated, toTypesRoom(newRoom))
}

func (s *KinoQuizApp) getInventory(w http.ResponseWriter, r *http.Request) {
	userId, ok := UserId(r.Context())
	if !ok {
		errResp := NewUnauthorizedError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if r.PathValue("id") != userId {
		errResp := NewForbiddenError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	items, err := s.db.GetInventory(userId)
	if err != nil {
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	resp := make([]types.InventoryItem, len(items))
	for i, item := range items {
		resp[i] = types.InventoryItem{
			Id:       item.Id,
			UserId:   item.UserId,
			ItemType: item.ItemType,
			Quantity: item.Quantity,
		}
	}

	s.writeJson(w, http.StatusOK, resp)
}

// buyCoins credits coins directly. An external payment gateway would sit in
// front of this in production.
func (s *KinoQuizApp) buyCoins(w http.ResponseWriter, r *http.Request) {
	userId, ok := UserId(r.Context())
	if !ok {
		errResp := NewUnauthorizedError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	var req BuyCoinsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Amount <= 0 {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	user, err := s.db.GetAccountById(userId)
	if err != nil {
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if err := s.db.UpdateUserCoins(userId, user.Coins+req.Amount); err != nil {
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	user.Coins += req.Amount
	s.writeJson(w, http.StatusOK, toTypesUser(user))
}

func (s *KinoQuizApp) buyItem(w http.ResponseWriter, r *http.Request) {
	userId, ok := UserId(r.Context())
	if !ok {
		errResp := NewUnauthorizedError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	var req BuyItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if req.Quantity <= 0 {
		req.Quantity = 1
	}

	price, ok := itemPrices[req.ItemType]
	if !ok {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	user, err := s.db.GetAccountById(userId)
	if err != nil {
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	cost := price * req.Quantity
	if user.Coins < cost {
		errResp := NewPaymentRequiredError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if err := s.db.UpdateUserCoins(userId, user.Coins-cost); err != nil {
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if err := s.db.AddToInventory(userId, req.ItemType, req.Quantity); err != nil {
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	user.Coins -= cost
	s.writeJson(w, http.StatusOK, toTypesUser(user))
}

func (s *KinoQuizApp) useItem(w http.ResponseWriter, r *http.Request) {
	userId, ok := UserId(r.Context())
	if !ok {
		errResp := NewUnauthorizedError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	var req UseItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ItemType == "" {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if req.Quantity <= 0 {
		req.Quantity = 1
	}

	used, err := s.db.UseInventoryItem(userId, req.ItemType, req.Quantity)
	if err != nil {
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if !used {
		errResp := NewConflictError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *KinoQuizApp) serveWs(w http.ResponseWriter, r *http.Request) {
	id, ok := UserId(r.Context())
	if !ok {
		errResp := NewUnauthorizedError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	user, err := s.db.GetAccountById(id)
	if err != nil {
		var errResp *ApiError
		if errors.Is(err, sql.ErrNoRows) {
			errResp = NewNotFoundError()
		} else {
			errResp = NewInternalServerError(err)
		}
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" {
				return true
			}

			return slices.Contains(s.allowedOrigins, origin)
		},
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Println("error upgrading connection:", err)
		return
	}

	client := server.NewClient(toTypesUser(user), conn, s.gs, s.log)

	s.gs.RegisterClient(client)
	go client.Write()
	go client.Read()
}

func toTypesUser(u database.User) types.User {
	return types.User{
		Id:          u.Id,
		Username:    u.Username,
		Email:       u.Email,
		Coins:       u.Coins,
		TotalScore:  u.TotalScore,
		GamesPlayed: u.GamesPlayed,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

func toTypesQuestion(q database.Question) types.Question {
	return types.Question{
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

func toTypesGameSession(gs database.GameSession) types.GameSession {
	session := types.GameSession{
		Id:                gs.Id,
		UserId:            gs.UserId,
		GameMode:          gs.GameMode,
		Category:          gs.Category,
		Score:             gs.Score,
		QuestionsAnswered: gs.QuestionsAnswered,
		CorrectAnswers:    gs.CorrectAnswers,
		LivesRemaining:    gs.LivesRemaining,
		IsCompleted:       gs.IsCompleted,
		TimeSpent:         gs.TimeSpent,
		CreatedAt:         gs.CreatedAt,
	}

	if gs.CompletedAt.Valid {
		completedAt := gs.CompletedAt.Time
		session.CompletedAt = &completedAt
	}

	return session
}

func toTypesParticipant(p database.Participant) types.Participant {
	return types.Participant{
		Id:       p.Id,
		RoomId:   p.RoomId,
		UserId:   p.UserId,
		Score:    p.Score,
		IsReady:  p.IsReady,
		JoinedAt: p.JoinedAt,
	}
}

func toTypesRoom(r database.Room) types.Room {
	return types.Room{
		Id:              r.Id,
		Name:            r.Name,
		HostId:          r.HostId,
		MaxPlayers:      r.MaxPlayers,
		CurrentPlayers:  r.CurrentPlayers,
		GameMode:        r.GameMode,
		Category:        r.Category,
		TimePerQuestion: r.TimePerQuestion,
		IsPrivate:       r.IsPrivate,
		IsActive:        r.IsActive,
		IsStarted:       r.IsStarted,
		CreatedAt:       r.CreatedAt,
	}
}
