package database

import (
	"github.com/stretchr/testify/mock"
)

type MockKinoQuizRepository struct {
	mock.Mock
}

func (m *MockKinoQuizRepository) Ping() error {
	args := m.Called()
	return args.Error(0)
}
func (m *MockKinoQuizRepository) CreateAccount(params CreateAccountParams) (User, error) {
	args := m.Called(params)
	return args.Get(0).(User), args.Error(1)
}
func (m *MockKinoQuizRepository) GetAccountById(id string) (User, error) {
	args := m.Called(id)
	return args.Get(0).(User), args.Error(1)
}
func (m *MockKinoQuizRepository) GetAccountByEmail(email string) (User, error) {
	args := m.Called(email)
	return args.Get(0).(User), args.Error(1)
}
func (m *MockKinoQuizRepository) UpdateUserProfile(userId string, params UpdateUserProfileParams) (User, error) {
	args := m.Called(userId, params)
	return args.Get(0).(User), args.Error(1)
}
func (m *MockKinoQuizRepository) UpdateUserCoins(userId string, coins int) error {
	args := m.Called(userId, coins)
	return args.Error(0)
}
func (m *MockKinoQuizRepository) UpdateUserStats(userId string, score int) error {
	args := m.Called(userId, score)
	return args.Error(0)
}
func (m *MockKinoQuizRepository) GetLeaderboard(limit int) ([]LeaderboardEntry, error) {
	args := m.Called(limit)
	return args.Get(0).([]LeaderboardEntry), args.Error(1)
}
func (m *MockKinoQuizRepository) CreateQuestion(params CreateQuestionParams) (Question, error) {
	args := m.Called(params)
	return args.Get(0).(Question), args.Error(1)
}
func (m *MockKinoQuizRepository) GetQuestionBatch(limit int, category string) ([]Question, error) {
	args := m.Called(limit, category)
	return args.Get(0).([]Question), args.Error(1)
}
func (m *MockKinoQuizRepository) CheckAnswer(questionId, answer string) (bool, error) {
	args := m.Called(questionId, answer)
	return args.Bool(0), args.Error(1)
}
func (m *MockKinoQuizRepository) CreateGameSession(params CreateGameSessionParams) (GameSession, error) {
	args := m.Called(params)
	return args.Get(0).(GameSession), args.Error(1)
}
func (m *MockKinoQuizRepository) UpdateGameSession(id string, params UpdateGameSessionParams) (GameSession, error) {
	args := m.Called(id, params)
	return args.Get(0).(GameSession), args.Error(1)
}
func (m *MockKinoQuizRepository) GetGameSession(id string) (GameSession, error) {
	args := m.Called(id)
	return args.Get(0).(GameSession), args.Error(1)
}
func (m *MockKinoQuizRepository) ListUserGameSessions(userId string) ([]GameSession, error) {
	args := m.Called(userId)
	return args.Get(0).([]GameSession), args.Error(1)
}
func (m *MockKinoQuizRepository) CreateRoom(params CreateRoomParams) (Room, error) {
	args := m.Called(params)
	return args.Get(0).(Room), args.Error(1)
}
func (m *MockKinoQuizRepository) ListRooms(includePrivate bool) ([]Room, error) {
	args := m.Called(includePrivate)
	return args.Get(0).([]Room), args.Error(1)
}
func (m *MockKinoQuizRepository) GetRoom(id string) (Room, error) {
	args := m.Called(id)
	return args.Get(0).(Room), args.Error(1)
}
func (m *MockKinoQuizRepository) FindAvailableRoom(gameMode, category string) (Room, error) {
	args := m.Called(gameMode, category)
	return args.Get(0).(Room), args.Error(1)
}
func (m *MockKinoQuizRepository) SetRoomStarted(id string) error {
	args := m.Called(id)
	return args.Error(0)
}
func (m *MockKinoQuizRepository) SetCurrentPlayerCount(roomId string, n int) error {
	args := m.Called(roomId, n)
	return args.Error(0)
}
func (m *MockKinoQuizRepository) DeactivateRoom(id string) error {
	args := m.Called(id)
	return args.Error(0)
}
func (m *MockKinoQuizRepository) GetParticipants(roomId string) ([]Participant, error) {
	args := m.Called(roomId)
	return args.Get(0).([]Participant), args.Error(1)
}
func (m *MockKinoQuizRepository) CreateParticipant(roomId, userId string) (Participant, error) {
	args := m.Called(roomId, userId)
	return args.Get(0).(Participant), args.Error(1)
}
func (m *MockKinoQuizRepository) DeleteParticipant(roomId, userId string) error {
	args := m.Called(roomId, userId)
	return args.Error(0)
}
func (m *MockKinoQuizRepository) AddParticipantScore(roomId, userId string, points int) error {
	args := m.Called(roomId, userId, points)
	return args.Error(0)
}
func (m *MockKinoQuizRepository) GetInventory(userId string) ([]InventoryItem, error) {
	args := m.Called(userId)
	return args.Get(0).([]InventoryItem), args.Error(1)
}
func (m *MockKinoQuizRepository) AddToInventory(userId, itemType string, quantity int) error {
	args := m.Called(userId, itemType, quantity)
	return args.Error(0)
}
func (m *MockKinoQuizRepository) UseInventoryItem(userId, itemType string, quantity int) (bool, error) {
	args := m.Called(userId, itemType, quantity)
	return args.Bool(0), args.Error(1)
}
