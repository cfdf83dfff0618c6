package api

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/kinoquiz/kinoquiz/internal/config"
	"github.com/kinoquiz/kinoquiz/internal/database"
	"github.com/kinoquiz/kinoquiz/internal/server"
	"github.com/teris-io/shortid"
)

type KinoQuizApp struct {
	log            *log.Logger
	db             database.KinoQuizRepository
	mux            *http.Server
	gs             *server.GameServer
	signingKey     []byte
	allowedOrigins []string
	// overridable in tests
	generateShortId func() (string, error)
}

func NewKinoQuizApp(mux *http.ServeMux, logger *log.Logger, gs *server.GameServer, db database.KinoQuizRepository, cfg *config.Config) *KinoQuizApp {
	s := &KinoQuizApp{
		log:             logger,
		db:              db,
		gs:              gs,
		signingKey:      cfg.SigningKey,
		allowedOrigins:  cfg.AllowedOrigins,
		generateShortId: shortid.Generate,
	}

	mux.HandleFunc("GET /healthz", s.healthCheck)
	mux.HandleFunc("POST /api/auth/register", s.createAccount)
	mux.HandleFunc("POST /api/auth/login", s.login)
	mux.HandleFunc("GET /api/auth/session", s.authMiddleware(s.session))
	mux.HandleFunc("GET /api/auth/logout", s.authMiddleware(s.logout))
	mux.HandleFunc("GET /api/questions", s.getQuestions)
	mux.HandleFunc("POST /api/questions", s.authMiddleware(s.createQuestion))
	mux.HandleFunc("POST /api/questions/{id}/check-answer", s.authMiddleware(s.checkAnswer))
	mux.HandleFunc("POST /api/game-sessions", s.authMiddleware(s.createGameSession))
	mux.HandleFunc("GET /api/game-sessions/{id}", s.authMiddleware(s.getGameSession))
	mux.HandleFunc("PUT /api/game-sessions/{id}", s.authMiddleware(s.updateGameSession))
	mux.HandleFunc("GET /api/users/{id}/game-sessions", s.authMiddleware(s.listGameSessions))
	mux.HandleFunc("GET /api/users/{id}/profile", s.authMiddleware(s.getProfile))
	mux.HandleFunc("PUT /api/users/{id}/profile", s.authMiddleware(s.updateProfile))
	mux.HandleFunc("GET /api/leaderboard", s.getLeaderboard)
	mux.HandleFunc("POST /api/rooms", s.authMiddleware(s.createRoom))
	mux.HandleFunc("GET /api/rooms", s.listRooms)
	mux.HandleFunc("GET /api/rooms/{id}", s.getRoom)
	mux.HandleFunc("GET /api/rooms/{id}/participants", s.getRoomParticipants)
	mux.HandleFunc("POST /api/quick-match", s.authMiddleware(s.quickMatch))
	mux.HandleFunc("GET /api/users/{id}/inventory", s.authMiddleware(s.getInventory))
	mux.HandleFunc("POST /api/shop/coins", s.authMiddleware(s.buyCoins))
	mux.HandleFunc("POST /api/shop/items", s.authMiddleware(s.buyItem))
	mux.HandleFunc("POST /api/inventory/use", s.authMiddleware(s.useItem))
	mux.HandleFunc("GET /ws", s.authMiddleware(s.serveWs))

	h := handlers.CORS(
		handlers.MaxAge(3600),
		handlers.AllowedOrigins(cfg.AllowedOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Origin", "Content-Type", "Accept"}),
		handlers.AllowCredentials(),
	)(mux)

	h = s.errorHandler(h)

	srv := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: h,
	}

	s.mux = srv
	return s
}

func (s *KinoQuizApp) Start() error {
	s.log.Printf("starting server on %s\n", s.mux.Addr)
	return s.mux.ListenAndServe()
}

func (s *KinoQuizApp) Shutdown(ctx context.Context) error {
	s.log.Println("shutting down HTTP server...")
	if err := s.mux.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	return nil
}
