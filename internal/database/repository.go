package database

type KinoQuizRepository interface {
	Ping() error

	CreateAccount(params CreateAccountParams) (User, error)
	GetAccountById(id string) (User, error)
	GetAccountByEmail(email string) (User, error)
	UpdateUserProfile(userId string, params UpdateUserProfileParams) (User, error)
	UpdateUserCoins(userId string, coins int) error
	UpdateUserStats(userId string, score int) error
	GetLeaderboard(limit int) ([]LeaderboardEntry, error)

	CreateQuestion(params CreateQuestionParams) (Question, error)
	GetQuestionBatch(limit int, category string) ([]Question, error)
	CheckAnswer(questionId, answer string) (bool, error)

	CreateGameSession(params CreateGameSessionParams) (GameSession, error)
	UpdateGameSession(id string, params UpdateGameSessionParams) (GameSession, error)
	GetGameSession(id string) (GameSession, error)
	ListUserGameSessions(userId string) ([]GameSession, error)

	CreateRoom(params CreateRoomParams) (Room, error)
	ListRooms(includePrivate bool) ([]Room, error)
	GetRoom(id string) (Room, error)
	FindAvailableRoom(gameMode, category string) (Room, error)
	SetRoomStarted(id string) error
	SetCurrentPlayerCount(roomId string, n int) error
	DeactivateRoom(id string) error

	GetParticipants(roomId string) ([]Participant, error)
	CreateParticipant(roomId, userId string) (Participant, error)
	DeleteParticipant(roomId, userId string) error
	AddParticipantScore(roomId, userId string, points int) error

	GetInventory(userId string) ([]InventoryItem, error)
	AddToInventory(userId, itemType string, quantity int) error
	UseInventoryItem(userId, itemType string, quantity int) (bool, error)
}
