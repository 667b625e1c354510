package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"rift-scout/internal/region"
	"rift-scout/internal/service"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

const liveness = "rift-scout proxy is running"

const maxLobbyBody = 64 << 10

type Server struct {
	players     *service.PlayerService
	matches     *service.MatchService
	live        *service.LiveService
	status      *service.StatusService
	leaderboard *service.LeaderboardService
	lobby       *service.LobbyService
	analysis    *service.AnalysisService
	logger      zerolog.Logger
}

func NewServer(
	players *service.PlayerService,
	matches *service.MatchService,
	live *service.LiveService,
	status *service.StatusService,
	leaderboard *service.LeaderboardService,
	lobby *service.LobbyService,
	analysis *service.AnalysisService,
	logger zerolog.Logger,
) *Server {
	return &Server{
		players:     players,
		matches:     matches,
		live:        live,
		status:      status,
		leaderboard: leaderboard,
		lobby:       lobby,
		analysis:    analysis,
		logger:      logger,
	}
}

// Router wires every route behind CORS and panic recovery. Request ids are
// added by the caller.
func (s *Server) Router() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/", s.handleRoot).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/player/{name}/{tag}", s.handlePlayer).Methods(http.MethodGet)
	api.HandleFunc("/matches/{puuid}", s.handleMatches).Methods(http.MethodGet)
	api.HandleFunc("/matches/{puuid}/summary", s.handleSummary).Methods(http.MethodGet)
	api.HandleFunc("/live/{puuid}", s.handleLive).Methods(http.MethodGet)
	api.HandleFunc("/status", s.handleStatus).Methods(http.MethodGet)
	api.HandleFunc("/leaderboard", s.handleLeaderboard).Methods(http.MethodGet)
	api.HandleFunc("/match/{matchId}/timeline", s.handleTimeline).Methods(http.MethodGet)
	api.HandleFunc("/match/{matchId}/analysis", s.handleAnalysis).Methods(http.MethodGet)
	api.HandleFunc("/lobby", s.handleLobby).Methods(http.MethodPost)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	})

	recovery := handlers.RecoveryHandler(
		handlers.RecoveryLogger(recoveryLogger{s.logger}),
		handlers.PrintRecoveryStack(false),
	)
	return recovery(c.Handler(r))
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, liveness)
}

func (s *Server) handlePlayer(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	profile, err := s.players.GetProfile(r.Context(), vars["name"], vars["tag"], platformOf(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Player not found")
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (s *Server) handleMatches(w http.ResponseWriter, r *http.Request) {
	matches, err := s.matches.GetMatches(r.Context(), mux.Vars(r)["puuid"], platformOf(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch matches")
		return
	}
	writeJSON(w, http.StatusOK, matches)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := s.analysis.Summary(r.Context(), mux.Vars(r)["puuid"], platformOf(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch matches")
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	game, err := s.live.GetLiveGame(r.Context(), mux.Vars(r)["puuid"], platformOf(r))
	if errors.Is(err, service.ErrNotInGame) {
		writeError(w, http.StatusNotFound, "Not in game")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed")
		return
	}
	writeJSON(w, http.StatusOK, game)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	status, err := s.status.GetStatus(r.Context(), platformOf(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch status")
		return
	}
	writeJSON(w, http.StatusOK, status)
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := s.leaderboard.GetLeaderboard(r.Context(), platformOf(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch leaderboard")
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleTimeline(w http.ResponseWriter, r *http.Request) {
	tl, err := s.matches.GetTimeline(r.Context(), mux.Vars(r)["matchId"], platformOf(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Timeline not found")
		return
	}
	writeJSON(w, http.StatusOK, tl)
}

func (s *Server) handleAnalysis(w http.ResponseWriter, r *http.Request) {
	puuid := r.URL.Query().Get("puuid")
	if puuid == "" {
		writeError(w, http.StatusBadRequest, "Missing puuid")
		return
	}

	analysis, err := s.analysis.Analyze(r.Context(), mux.Vars(r)["matchId"], puuid, platformOf(r))
	if errors.Is(err, service.ErrNotInMatch) {
		writeError(w, http.StatusNotFound, "Player not in match")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to analyze match")
		return
	}
	writeJSON(w, http.StatusOK, analysis)
}

func (s *Server) handleLobby(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxLobbyBody))
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, "Lobby too large")
		return
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid body")
		return
	}
	writeJSON(w, http.StatusOK, s.lobby.Scout(r.Context(), string(body), platformOf(r)))
}

// platformOf never returns a value outside the known platform set.
func platformOf(r *http.Request) string {
	return region.Platform(r.URL.Query().Get("region"))
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

type recoveryLogger struct {
	logger zerolog.Logger
}

func (l recoveryLogger) Println(v ...any) {
	l.logger.Error().Interface("panic", v).Msg("recovered from panic")
}
