// Package server exposes a running game over HTTP and websocket. The human
// plays one side through the JSON API; the engine answers for the other.
// There is no user interface here, only transport.
package server

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"othelloplay/internal/board"
	"othelloplay/internal/engine"
)

// State is the JSON snapshot of the running game.
type State struct {
	Board      []string `json:"board"` // eight rows, 'X' black / 'O' white / '.' empty
	NextPlayer string   `json:"next_player"`
	HumanSide  string   `json:"human_side"`
	BlackDiscs int      `json:"black_discs"`
	WhiteDiscs int      `json:"white_discs"`
	LegalMoves []string `json:"legal_moves"`
	Status     string   `json:"status"` // "playing" or "finished"
	Winner     string   `json:"winner,omitempty"`
	AiThinking bool     `json:"ai_thinking"`
}

type moveRequest struct {
	Move string `json:"move"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Server owns one game and the engine playing the non-human side.
type Server struct {
	mu        sync.Mutex
	pos       board.Position
	toMove    board.Side
	humanSide board.Side
	thinking  bool

	eng *engine.Engine
	log zerolog.Logger

	clientsMu sync.Mutex
	clients   map[*websocket.Conn]struct{}
	upgrader  websocket.Upgrader
}

// New creates a server for a fresh game. The engine plays the opponent of
// humanSide; when the engine side is Black it moves as soon as a client
// first asks for state or posts a move.
func New(eng *engine.Engine, humanSide board.Side, log zerolog.Logger) *Server {
	return &Server{
		pos:       board.Initial(),
		toMove:    board.Black,
		humanSide: humanSide,
		eng:       eng,
		log:       log,
		clients:   make(map[*websocket.Conn]struct{}),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// Router returns the HTTP handler for the server.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/api/state", s.handleState)
	r.Post("/api/move", s.handleMove)
	r.Post("/api/reset", s.handleReset)
	r.Get("/ws", s.handleWS)

	return r
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	s.playEngineTurns()

	s.mu.Lock()
	state := s.snapshot()
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, state)
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	move, err := board.ParseMove(strings.TrimSpace(req.Move))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	s.mu.Lock()
	if s.pos.GameOver() {
		s.mu.Unlock()
		writeJSON(w, http.StatusConflict, errorResponse{Error: "game is over"})
		return
	}
	if s.toMove != s.humanSide {
		s.mu.Unlock()
		writeJSON(w, http.StatusConflict, errorResponse{Error: "not your turn"})
		return
	}
	next, err := s.pos.Apply(s.humanSide, move)
	if err != nil {
		s.mu.Unlock()
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	s.pos = next
	s.advanceTurn()
	s.mu.Unlock()

	s.log.Info().Str("move", move.String()).Str("side", s.humanSide.String()).Msg("human move")
	s.broadcast()

	s.playEngineTurns()

	s.mu.Lock()
	state := s.snapshot()
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, state)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.pos = board.Initial()
	s.toMove = board.Black
	state := s.snapshot()
	s.mu.Unlock()

	s.log.Info().Msg("game reset")
	s.broadcast()
	writeJSON(w, http.StatusOK, state)
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	s.clientsMu.Lock()
	s.clients[conn] = struct{}{}
	s.clientsMu.Unlock()

	s.mu.Lock()
	state := s.snapshot()
	s.mu.Unlock()
	if err := conn.WriteJSON(state); err != nil {
		s.dropClient(conn)
		return
	}

	// Drain reads so pings and close frames are processed.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				s.dropClient(conn)
				return
			}
		}
	}()
}

// playEngineTurns lets the engine move for as long as it is the engine's
// turn, including chains where the human must pass.
func (s *Server) playEngineTurns() {
	for {
		s.mu.Lock()
		if s.pos.GameOver() || s.toMove == s.humanSide {
			s.mu.Unlock()
			return
		}
		pos := s.pos
		side := s.toMove
		s.thinking = true
		s.mu.Unlock()

		start := time.Now()
		move := s.eng.SelectMove(pos, side)

		s.mu.Lock()
		s.thinking = false
		if move == board.NoMove {
			// Engine must pass; hand the turn back.
			s.toMove = s.humanSide
			s.mu.Unlock()
			s.broadcast()
			continue
		}
		next, err := s.pos.Apply(side, move)
		if err != nil {
			// Should be impossible: the engine guarantees legal moves.
			s.mu.Unlock()
			s.log.Error().Err(err).Str("move", move.String()).Msg("engine returned illegal move")
			return
		}
		s.pos = next
		s.advanceTurn()
		s.mu.Unlock()

		s.log.Info().
			Str("move", move.String()).
			Str("side", side.String()).
			Dur("took", time.Since(start)).
			Uint64("nodes", s.eng.Nodes()).
			Msg("engine move")
		s.broadcast()
	}
}

// advanceTurn gives the turn to the next side with a legal move. Caller must
// hold s.mu.
func (s *Server) advanceTurn() {
	opp := s.toMove.Opponent()
	if s.pos.HasLegalMove(opp) {
		s.toMove = opp
		return
	}
	// Opponent passes; current side keeps the turn if it can still move.
	// Otherwise the game is over and toMove no longer matters.
}

// snapshot builds the JSON state. Caller must hold s.mu.
func (s *Server) snapshot() State {
	state := State{
		Board:      strings.Split(s.pos.String(), "\n"),
		NextPlayer: s.toMove.String(),
		HumanSide:  s.humanSide.String(),
		BlackDiscs: s.pos.Count(board.Black),
		WhiteDiscs: s.pos.Count(board.White),
		Status:     "playing",
		AiThinking: s.thinking,
	}
	for _, m := range s.pos.LegalMoves(s.toMove) {
		state.LegalMoves = append(state.LegalMoves, m.String())
	}
	if s.pos.GameOver() {
		state.Status = "finished"
		switch b, w := state.BlackDiscs, state.WhiteDiscs; {
		case b > w:
			state.Winner = "black"
		case w > b:
			state.Winner = "white"
		default:
			state.Winner = "draw"
		}
	}
	return state
}

func (s *Server) broadcast() {
	s.mu.Lock()
	state := s.snapshot()
	s.mu.Unlock()

	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()
	for conn := range s.clients {
		if err := conn.WriteJSON(state); err != nil {
			conn.Close()
			delete(s.clients, conn)
		}
	}
}

func (s *Server) dropClient(conn *websocket.Conn) {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()
	if _, ok := s.clients[conn]; ok {
		conn.Close()
		delete(s.clients, conn)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Connection-level failure; nothing sensible left to do.
		return
	}
}
