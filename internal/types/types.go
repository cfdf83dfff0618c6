package types

import (
	"time"
)

type User struct {
	Id          string    `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email,omitempty"`
	Password    string    `json:"-"`
	Coins       int       `json:"coins"`
	TotalScore  int       `json:"totalScore"`
	GamesPlayed int       `json:"gamesPlayed"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"`
}

type Room struct {
	Id              string    `json:"id"`
	Name            string    `json:"name"`
	HostId          string    `json:"hostId"`
	MaxPlayers      int       `json:"maxPlayers"`
	CurrentPlayers  int       `json:"currentPlayers"`
	GameMode        string    `json:"gameMode"`
	Category        string    `json:"category"`
	TimePerQuestion int       `json:"timePerQuestion"`
	IsPrivate       bool      `json:"isPrivate"`
	IsActive        bool      `json:"isActive"`
	IsStarted       bool      `json:"isStarted"`
	CreatedAt       time.Time `json:"createdAt,omitempty"`
}

type Participant struct {
	Id       string    `json:"id"`
	RoomId   string    `json:"roomId"`
	UserId   string    `json:"userId"`
	Score    int       `json:"score"`
	IsReady  bool      `json:"isReady"`
	JoinedAt time.Time `json:"joinedAt"`
}

// Question is the answerless form sent to players. The correct
// answer never leaves the database package.
type Question struct {
	Id         string `json:"id"`
	Question   string `json:"question"`
	OptionA    string `json:"optionA"`
	OptionB    string `json:"optionB"`
	OptionC    string `json:"optionC"`
	OptionD    string `json:"optionD"`
	Category   string `json:"category"`
	Difficulty int    `json:"difficulty"`
}

type GameSession struct {
	Id                string     `json:"id"`
	UserId            string     `json:"userId,omitempty"`
	GameMode          string     `json:"gameMode"`
	Category          string     `json:"category,omitempty"`
	Score             int        `json:"score"`
	QuestionsAnswered int        `json:"questionsAnswered"`
	CorrectAnswers    int        `json:"correctAnswers"`
	LivesRemaining    int        `json:"livesRemaining"`
	IsCompleted       bool       `json:"isCompleted"`
	TimeSpent         int        `json:"timeSpent"`
	CreatedAt         time.Time  `json:"createdAt,omitempty"`
	CompletedAt       *time.Time `json:"completedAt,omitempty"`
}

type LeaderboardEntry struct {
	User
	Rank int `json:"rank"`
}

type InventoryItem struct {
	Id       string `json:"id"`
	UserId   string `json:"userId"`
	ItemType string `json:"itemType"`
	Quantity int    `json:"quantity"`
}
