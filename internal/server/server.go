package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"lexora-law-backend/internal/classifier"
	"lexora-law-backend/internal/config"
	"lexora-law-backend/internal/types"
)

type Server struct {
	router  *chi.Mux
	cfg     config.Config
	profile *classifier.Profile
}

func NewServer(cfg config.Config) (*Server, error) {
	profile, err := classifier.LoadProfile(cfg.FirmProfileFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load firm profile: %w", err)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.AllowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	s := &Server{
		router:  r,
		cfg:     cfg,
		profile: profile,
	}
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	s.router.Get("/", s.handleRoot)
	s.router.Get("/api/hello", s.handleHello)
	s.router.Get("/api/health", s.handleHealth)
	s.router.Post("/api/voice-intent", s.handleVoiceIntent)
	s.router.Get("/test", s.handleTest)
}

func (s *Server) Router() http.Handler { return s.router }

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"message": "Law Firm Backend Running"})
}

func (s *Server) handleHello(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"message": "Hello from the backend API!"})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVoiceIntent(w http.ResponseWriter, r *http.Request) {
	var req types.VoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Message == nil {
		s.writeError(w, http.StatusBadRequest, "message is required")
		return
	}

	// Empty or whitespace-only messages are valid input; the classifier
	// falls through to its small-talk branch.
	res := s.profile.Classify(*req.Message)
	s.writeJSON(w, http.StatusOK, types.VoiceResponse{
		Reply:       res.Reply,
		Intent:      string(res.Intent),
		Suggestions: res.Suggestions,
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) writeError(w http.ResponseWriter, code int, msg string) {
	s.writeJSON(w, code, types.ErrorResponse{Error: msg})
}
