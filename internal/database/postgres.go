package database

import (
	"database/sql"
)

type PgKinoQuizRepository struct {
	conn *sql.DB
}

func NewPgKinoQuizRepository(dsn string) (*PgKinoQuizRepository, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return &PgKinoQuizRepository{conn: db}, nil
}

func (db *PgKinoQuizRepository) Ping() error {
	return db.conn.Ping()
}

func (db *PgKinoQuizRepository) Close() error {
	if db.conn != nil {
		return db.conn.Close()
	}
	return nil
}
