package database

import (
	"database/sql"
	"time"
)

type User struct {
	Id           string
	Username     string
	Email        string
	PasswordHash string
	Coins        int
	TotalScore   int
	GamesPlayed  int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Question struct {
	Id            string
	Question      string
	OptionA       string
	OptionB       string
	OptionC       string
	OptionD       string
	CorrectAnswer string
	Category      string
	Difficulty    int
	CreatedAt     time.Time
}

type GameSession struct {
	Id                string
	UserId            string
	GameMode          string
	Category          string
	Score             int
	QuestionsAnswered int
	CorrectAnswers    int
	LivesRemaining    int
	IsCompleted       bool
	TimeSpent         int
	CreatedAt         time.Time
	CompletedAt       sql.NullTime
}

type Room struct {
	Id              string
	Name            string
	HostId          string
	MaxPlayers      int
	CurrentPlayers  int
	GameMode        string
	Category        string
	TimePerQuestion int
	IsPrivate       bool
	Password        sql.NullString
	IsActive        bool
	IsStarted       bool
	CreatedAt       time.Time
}

type Participant struct {
	Id       string
	RoomId   string
	UserId   string
	Score    int
	IsReady  bool
	JoinedAt time.Time
}

type InventoryItem struct {
	Id       string
	UserId   string
	ItemType string
	Quantity int
}

type LeaderboardEntry struct {
	User
	Rank int
}

type CreateAccountParams struct {
	Username     string
	Email        string
	PasswordHash string
}

// UpdateUserProfileParams carries the profile fields a user may change.
// Empty fields are left untouched.
type UpdateUserProfileParams struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type CreateQuestionParams struct {
	Question      string `json:"question"`
	OptionA       string `json:"optionA"`
	OptionB       string `json:"optionB"`
	OptionC       string `json:"optionC"`
	OptionD       string `json:"optionD"`
	CorrectAnswer string `json:"correctAnswer"`
	Category      string `json:"category"`
	Difficulty    int    `json:"difficulty"`
}

type CreateGameSessionParams struct {
	UserId         string `json:"userId"`
	GameMode       string `json:"gameMode"`
	Category       string `json:"category"`
	LivesRemaining int    `json:"livesRemaining"`
}

type UpdateGameSessionParams struct {
	Score             int  `json:"score"`
	QuestionsAnswered int  `json:"questionsAnswered"`
	CorrectAnswers    int  `json:"correctAnswers"`
	LivesRemaining    int  `json:"livesRemaining"`
	TimeSpent         int  `json:"timeSpent"`
	IsCompleted       bool `json:"isCompleted"`
}

type CreateRoomParams struct {
	Id              string `json:"-"`
	Name            string `json:"name"`
	HostId          string `json:"-"`
	MaxPlayers      int    `json:"maxPlayers"`
	GameMode        string `json:"gameMode"`
	Category        string `json:"category"`
	TimePerQuestion int    `json:"timePerQuestion"`
	IsPrivate       bool   `json:"isPrivate"`
	Password        string `json:"password,omitempty"`
}
