package server

import (
	"encoding/json"
	"errors"
	"loa/communication"
	"loa/engine"
	"loa/game"
	"loa/gamemaster"
	"loa/searcher"
	"loa/searcher/agent"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"
)

type Server struct {
	defaultAgent string
	config       agent.Config
	maxTurns     int
	router       chi.Router
}

// New returns an agent server that answers with defaultAgent unless a request
// names another registered agent.
func New(defaultAgent string, config agent.Config, maxTurns int) *Server {
	s := &Server{
		defaultAgent: defaultAgent,
		config:       config,
		maxTurns:     maxTurns,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(hlog.NewHandler(log.Logger))
	r.Use(hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Stringer("url", r.URL).
			Str("request_id", middleware.GetReqID(r.Context())).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("request")
	}))
	r.Use(middleware.Recoverer)

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	r.Get("/agents", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, agent.List())
	})
	r.Post("/findmove", s.handleFindMove)
	r.Get("/ws/match", s.handleMatch)

	s.router = r
	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until the listener fails.
func (s *Server) ListenAndServe(addr string) error {
	log.Info().Msgf("starting agent server on %s", addr)
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}

func (s *Server) handleFindMove(w http.ResponseWriter, r *http.Request) {
	var payload communication.FindMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	board, err := game.FromSparse(payload.Board, payload.Turn)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	name := payload.Agent
	if name == "" {
		name = s.defaultAgent
	}
	a, err := agent.New(name, s.config)
	if err != nil {
		writeError(w, statusOf(err), err.Error())
		return
	}

	move, metric, err := a.FindMove(board)
	if err != nil {
		writeError(w, statusOf(err), err.Error())
		return
	}
	log.Debug().Msgf("%s answered %v in %s", name, move, metric.Duration)
	writeJSON(w, http.StatusOK, communication.NewFindMoveResponse(move, metric))
}

// handleMatch plays a game between two registered agents and streams every
// move to the websocket client, followed by the result.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var agents [2]agent.Agent
	for side, param := range []string{"black", "white"} {
		name := r.URL.Query().Get(param)
		if name == "" {
			name = s.defaultAgent
		}
		a, err := agent.New(name, s.config)
		if err != nil {
			writeError(w, statusOf(err), err.Error())
			return
		}
		agents[side] = a
	}

	upgrader := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	var writeErr error
	send := func(msg communication.MatchMessage) {
		if writeErr == nil {
			writeErr = conn.WriteJSON(msg)
		}
	}

	e := engine.LocalEngine(agents[game.Black], agents[game.White],
		engine.WithMaxTurns(s.maxTurns),
		engine.WithObserver(func(u gamemaster.Update) {
			if u.Move == game.NoMove {
				return
			}
			send(communication.MatchMessage{
				Type:   communication.MessageUpdate,
				Step:   u.Step,
				Side:   u.Side,
				Move:   u.Move.String(),
				Passed: u.Passed,
				Turn:   u.Turn,
				Board:  u.Sparse,
			})
		}))
	result, gameMetric, _ := e.Run()
	send(communication.MatchMessage{
		Type:   communication.MessageResult,
		Step:   gameMetric.TotalMoves,
		Side:   result.Winner,
		Winner: gameMetric.Winner,
		Reason: result.Reason,
	})
	if writeErr != nil {
		log.Warn().Err(writeErr).Msg("match stream closed early")
		return
	}
	conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, agent.ErrUnknownAgent):
		return http.StatusNotFound
	case errors.Is(err, searcher.ErrNoMove):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, communication.ErrorResponse{Error: msg})
}
