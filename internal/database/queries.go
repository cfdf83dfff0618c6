package database

import (
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
)

func (db *PgKinoQuizRepository) CreateAccount(params CreateAccountParams) (User, error) {
	res := db.conn.QueryRow(
		"INSERT INTO users (id, username, email, password_hash, created_at) "+
			"VALUES ($1, $2, $3, $4, $5) RETURNING id, username, email, coins, total_score, games_played",
		uuid.NewString(),
		params.Username,
		params.Email,
		params.PasswordHash,
		time.Now().UTC(),
	)

	var u User
	err := res.Scan(
		&u.Id,
		&u.Username,
		&u.Email,
		&u.Coins,
		&u.TotalScore,
		&u.GamesPlayed,
	)

	return u, err
}

func (db *PgKinoQuizRepository) GetAccountById(id string) (User, error) {
	row := db.conn.QueryRow(
		"SELECT id, username, email, coins, total_score, games_played, created_at, updated_at "+
			"FROM users WHERE id = $1 LIMIT 1",
		id,
	)

	var u User
	err := row.Scan(
		&u.Id,
		&u.Username,
		&u.Email,
		&u.Coins,
		&u.TotalScore,
		&u.GamesPlayed,
		&u.CreatedAt,
		&u.UpdatedAt,
	)

	return u, err
}

func (db *PgKinoQuizRepository) GetAccountByEmail(email string) (User, error) {
	row := db.conn.QueryRow(
		"SELECT id, username, email, password_hash, coins, total_score, games_played, created_at, updated_at "+
			"FROM users WHERE email = $1 LIMIT 1",
		email,
	)

	var u User
	err := row.Scan(
		&u.Id,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.Coins,
		&u.TotalScore,
		&u.GamesPlayed,
		&u.CreatedAt,
		&u.UpdatedAt,
	)

	return u, err
}

func (db *PgKinoQuizRepository) UpdateUserProfile(userId string, params UpdateUserProfileParams) (User, error) {
	row := db.conn.QueryRow(
		"UPDATE users SET username = COALESCE(NULLIF($2, ''), username), "+
			"email = COALESCE(NULLIF($3, ''), email), updated_at = $4 "+
			"WHERE id = $1 "+
			"RETURNING id, username, email, coins, total_score, games_played, created_at, updated_at",
		userId,
		params.Username,
		params.Email,
		time.Now().UTC(),
	)

	var u User
	err := row.Scan(
		&u.Id,
		&u.Username,
		&u.Email,
		&u.Coins,
		&u.TotalScore,
		&u.GamesPlayed,
		&u.CreatedAt,
		&u.UpdatedAt,
	)

	return u, err
}

func (db *PgKinoQuizRepository) UpdateUserCoins(userId string, coins int) error {
	_, err := db.conn.Exec(
		"UPDATE users SET coins = $2, updated_at = $3 WHERE id = $1",
		userId, coins, time.Now().UTC(),
	)
	return err
}

func (db *PgKinoQuizRepository) UpdateUserStats(userId string, score int) error {
	_, err := db.conn.Exec(
		"UPDATE users SET total_score = total_score + $2, games_played = games_played + 1, updated_at = $3 "+
			"WHERE id = $1",
		userId, score, time.Now().UTC(),
	)
	return err
}

func (db *PgKinoQuizRepository) GetLeaderboard(limit int) ([]LeaderboardEntry, error) {
	rows, err := db.conn.Query(
		"SELECT id, username, coins, total_score, games_played, "+
			"ROW_NUMBER() OVER (ORDER BY total_score DESC) AS rank "+
			"FROM users WHERE total_score > 0 ORDER BY total_score DESC LIMIT $1",
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []LeaderboardEntry
	for rows.Next() {
		var e LeaderboardEntry
		if err := rows.Scan(&e.Id, &e.Username, &e.Coins, &e.TotalScore, &e.GamesPlayed, &e.Rank); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

func (db *PgKinoQuizRepository) CreateQuestion(params CreateQuestionParams) (Question, error) {
	res := db.conn.QueryRow(
		"INSERT INTO questions (id, question, option_a, option_b, option_c, option_d, correct_answer, category, difficulty, created_at) "+
			"VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) "+
			"RETURNING id, question, option_a, option_b, option_c, option_d, correct_answer, category, difficulty",
		uuid.NewString(),
		params.Question,
		params.OptionA,
		params.OptionB,
		params.OptionC,
		params.OptionD,
		params.CorrectAnswer,
		params.Category,
		params.Difficulty,
		time.Now().UTC(),
	)

	var q Question
	err := res.Scan(
		&q.Id,
		&q.Question,
		&q.OptionA,
		&q.OptionB,
		&q.OptionC,
		&q.OptionD,
		&q.CorrectAnswer,
		&q.Category,
		&q.Difficulty,
	)

	return q, err
}

// GetQuestionBatch returns a random batch of questions. The correct_answer
// column is deliberately not selected so the result is safe to send to
// players.
func (db *PgKinoQuizRepository) GetQuestionBatch(limit int, category string) ([]Question, error) {
	query := "SELECT id, question, option_a, option_b, option_c, option_d, category, difficulty FROM questions"
	args := []any{limit}

	if category != "" {
		query += " WHERE category = $2 ORDER BY RANDOM() LIMIT $1"
		args = append(args, category)
	} else {
		query += " ORDER BY RANDOM() LIMIT $1"
	}

	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []Question
	for rows.Next() {
		var q Question
		if err := rows.Scan(&q.Id, &q.Question, &q.OptionA, &q.OptionB, &q.OptionC, &q.OptionD, &q.Category, &q.Difficulty); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}

	return questions, rows.Err()
}

func (db *PgKinoQuizRepository) CheckAnswer(questionId, answer string) (bool, error) {
	row := db.conn.QueryRow(
		"SELECT correct_answer FROM questions WHERE id = $1 LIMIT 1",
		questionId,
	)

	var correct string
	if err := row.Scan(&correct); err != nil {
		return false, err
	}

	return strings.EqualFold(correct, answer), nil
}

func (db *PgKinoQuizRepository) CreateGameSession(params CreateGameSessionParams) (GameSession, error) {
	res := db.conn.QueryRow(
		"INSERT INTO game_sessions (id, user_id, game_mode, category, lives_remaining, created_at) "+
			"VALUES ($1, $2, $3, $4, $5, $6) "+
			"RETURNING id, user_id, game_mode, category, score, questions_answered, correct_answers, lives_remaining, is_completed, time_spent, created_at",
		uuid.NewString(),
		params.UserId,
		params.GameMode,
		params.Category,
		params.LivesRemaining,
		time.Now().UTC(),
	)

	var s GameSession
	err := res.Scan(
		&s.Id,
		&s.UserId,
		&s.GameMode,
		&s.Category,
		&s.Score,
		&s.QuestionsAnswered,
		&s.CorrectAnswers,
		&s.LivesRemaining,
		&s.IsCompleted,
		&s.TimeSpent,
		&s.CreatedAt,
	)

	return s, err
}

func (db *PgKinoQuizRepository) UpdateGameSession(id string, params UpdateGameSessionParams) (GameSession, error) {
	var completedAt sql.NullTime
	if params.IsCompleted {
		completedAt = sql.NullTime{Time: time.Now().UTC(), Valid: true}
	}

	res := db.conn.QueryRow(
		"UPDATE game_sessions SET score = $2, questions_answered = $3, correct_answers = $4, "+
			"lives_remaining = $5, time_spent = $6, is_completed = $7, completed_at = $8 "+
			"WHERE id = $1 "+
			"RETURNING id, user_id, game_mode, category, score, questions_answered, correct_answers, lives_remaining, is_completed, time_spent, created_at, completed_at",
		id,
		params.Score,
		params.QuestionsAnswered,
		params.CorrectAnswers,
		params.LivesRemaining,
		params.TimeSpent,
		params.IsCompleted,
		completedAt,
	)

	var s GameSession
	err := res.Scan(
		&s.Id,
		&s.UserId,
		&s.GameMode,
		&s.Category,
		&s.Score,
		&s.QuestionsAnswered,
		&s.CorrectAnswers,
		&s.LivesRemaining,
		&s.IsCompleted,
		&s.TimeSpent,
		&s.CreatedAt,
		&s.CompletedAt,
	)

	return s, err
}

func (db *PgKinoQuizRepository) GetGameSession(id string) (GameSession, error) {
	row := db.conn.QueryRow(
		"SELECT id, user_id, game_mode, category, score, questions_answered, correct_answers, lives_remaining, is_completed, time_spent, created_at, completed_at "+
			"FROM game_sessions WHERE id = $1 LIMIT 1",
		id,
	)

	var s GameSession
	err := row.Scan(
		&s.Id,
		&s.UserId,
		&s.GameMode,
		&s.Category,
		&s.Score,
		&s.QuestionsAnswered,
		&s.CorrectAnswers,
		&s.LivesRemaining,
		&s.IsCompleted,
		&s.TimeSpent,
		&s.CreatedAt,
		&s.CompletedAt,
	)

	return s, err
}

func (db *PgKinoQuizRepository) ListUserGameSessions(userId string) ([]GameSession, error) {
	rows, err := db.conn.Query(
		"SELECT id, user_id, game_mode, category, score, questions_answered, correct_answers, lives_remaining, is_completed, time_spent, created_at, completed_at "+
			"FROM game_sessions WHERE user_id = $1 ORDER BY created_at DESC",
		userId,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []GameSession
	for rows.Next() {
		var s GameSession
		if err := rows.Scan(
			&s.Id, &s.UserId, &s.GameMode, &s.Category, &s.Score, &s.QuestionsAnswered,
			&s.CorrectAnswers, &s.LivesRemaining, &s.IsCompleted, &s.TimeSpent, &s.CreatedAt, &s.CompletedAt,
		); err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}

	return sessions, rows.Err()
}

const roomColumns = "id, name, host_id, max_players, current_players, game_mode, category, " +
	"time_per_question, is_private, password, is_active, is_started, created_at"

func scanRoom(row *sql.Row) (Room, error) {
	var r Room
	err := row.Scan(
		&r.Id,
		&r.Name,
		&r.HostId,
		&r.MaxPlayers,
		&r.CurrentPlayers,
		&r.GameMode,
		&r.Category,
		&r.TimePerQuestion,
		&r.IsPrivate,
		&r.Password,
		&r.IsActive,
		&r.IsStarted,
		&r.CreatedAt,
	)
	return r, err
}

func (db *PgKinoQuizRepository) CreateRoom(params CreateRoomParams) (Room, error) {
	res := db.conn.QueryRow(
		"INSERT INTO multiplayer_rooms (id, name, host_id, max_players, game_mode, category, time_per_question, is_private, password, created_at) "+
			"VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING "+roomColumns,
		params.Id,
		params.Name,
		params.HostId,
		params.MaxPlayers,
		params.GameMode,
		params.Category,
		params.TimePerQuestion,
		params.IsPrivate,
		sql.NullString{String: params.Password, Valid: params.Password != ""},
		time.Now().UTC(),
	)

	return scanRoom(res)
}

func (db *PgKinoQuizRepository) ListRooms(includePrivate bool) ([]Room, error) {
	query := "SELECT " + roomColumns + " FROM multiplayer_rooms WHERE is_active AND NOT is_started"
	if !includePrivate {
		query += " AND NOT is_private"
	}
	query += " ORDER BY created_at DESC"

	rows, err := db.conn.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rooms []Room
	for rows.Next() {
		var r Room
		if err := rows.Scan(
			&r.Id, &r.Name, &r.HostId, &r.MaxPlayers, &r.CurrentPlayers, &r.GameMode, &r.Category,
			&r.TimePerQuestion, &r.IsPrivate, &r.Password, &r.IsActive, &r.IsStarted, &r.CreatedAt,
		); err != nil {
			return nil, err
		}
		rooms = append(rooms, r)
	}

	return rooms, rows.Err()
}

func (db *PgKinoQuizRepository) GetRoom(id string) (Room, error) {
	row := db.conn.QueryRow(
		"SELECT "+roomColumns+" FROM multiplayer_rooms WHERE id = $1 LIMIT 1",
		id,
	)
	return scanRoom(row)
}

func (db *PgKinoQuizRepository) FindAvailableRoom(gameMode, category string) (Room, error) {
	row := db.conn.QueryRow(
		"SELECT "+roomColumns+" FROM multiplayer_rooms "+
			"WHERE is_active AND NOT is_started AND NOT is_private "+
			"AND game_mode = $1 AND category = $2 AND current_players < max_players "+
			"ORDER BY created_at ASC LIMIT 1",
		gameMode, category,
	)
	return scanRoom(row)
}

func (db *PgKinoQuizRepository) SetRoomStarted(id string) error {
	_, err := db.conn.Exec(
		"UPDATE multiplayer_rooms SET is_started = TRUE WHERE id = $1",
		id,
	)
	return err
}

func (db *PgKinoQuizRepository) SetCurrentPlayerCount(roomId string, n int) error {
	_, err := db.conn.Exec(
		"UPDATE multiplayer_rooms SET current_players = $2 WHERE id = $1",
		roomId, n,
	)
	return err
}

func (db *PgKinoQuizRepository) DeactivateRoom(id string) error {
	_, err := db.conn.Exec(
		"UPDATE multiplayer_rooms SET is_active = FALSE WHERE id = $1",
		id,
	)
	return err
}

func (db *PgKinoQuizRepository) GetParticipants(roomId string) ([]Participant, error) {
	rows, err := db.conn.Query(
		"SELECT id, room_id, user_id, score, is_ready, joined_at FROM room_participants "+
			"WHERE room_id = $1 ORDER BY joined_at ASC",
		roomId,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var participants []Participant
	for rows.Next() {
		var p Participant
		if err := rows.Scan(&p.Id, &p.RoomId, &p.UserId, &p.Score, &p.IsReady, &p.JoinedAt); err != nil {
			return nil, err
		}
		participants = append(participants, p)
	}

	return participants, rows.Err()
}

func (db *PgKinoQuizRepository) CreateParticipant(roomId, userId string) (Participant, error) {
	res := db.conn.QueryRow(
		"INSERT INTO room_participants (id, room_id, user_id, joined_at) "+
			"VALUES ($1, $2, $3, $4) RETURNING id, room_id, user_id, score, is_ready, joined_at",
		uuid.NewString(),
		roomId,
		userId,
		time.Now().UTC(),
	)

	var p Participant
	err := res.Scan(&p.Id, &p.RoomId, &p.UserId, &p.Score, &p.IsReady, &p.JoinedAt)

	return p, err
}

func (db *PgKinoQuizRepository) DeleteParticipant(roomId, userId string) error {
	_, err := db.conn.Exec(
		"DELETE FROM room_participants WHERE room_id = $1 AND user_id = $2",
		roomId, userId,
	)
	return err
}

func (db *PgKinoQuizRepository) AddParticipantScore(roomId, userId string, points int) error {
	_, err := db.conn.Exec(
		"UPDATE room_participants SET score = score + $3 WHERE room_id = $1 AND user_id = $2",
		roomId, userId, points,
	)
	return err
}

func (db *PgKinoQuizRepository) GetInventory(userId string) ([]InventoryItem, error) {
	rows, err := db.conn.Query(
		"SELECT id, user_id, item_type, quantity FROM user_inventory WHERE user_id = $1",
		userId,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []InventoryItem
	for rows.Next() {
		var item InventoryItem
		if err := rows.Scan(&item.Id, &item.UserId, &item.ItemType, &item.Quantity); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (db *PgKinoQuizRepository) AddToInventory(userId, itemType string, quantity int) error {
	_, err := db.conn.Exec(
		"INSERT INTO user_inventory (id, user_id, item_type, quantity, updated_at) "+
			"VALUES ($1, $2, $3, $4, $5) "+
			"ON CONFLICT (user_id, item_type) DO UPDATE SET quantity = user_inventory.quantity + $4, updated_at = $5",
		uuid.NewString(),
		userId,
		itemType,
		quantity,
		time.Now().UTC(),
	)
	return err
}

func (db *PgKinoQuizRepository) UseInventoryItem(userId, itemType string, quantity int) (bool, error) {
	res, err := db.conn.Exec(
		"UPDATE user_inventory SET quantity = quantity - $3, updated_at = $4 "+
			"WHERE user_id = $1 AND item_type = $2 AND quantity >= $3",
		userId, itemType, quantity, time.Now().UTC(),
	)
	if err != nil {
		return false, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return n > 0, nil
}
