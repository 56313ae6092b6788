package drill

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/lox/pokertrainer/trainer"
)

// Server serves training scenarios over HTTP and WebSocket. Generated
// scenarios are cached so the answer endpoint can grade them later.
type Server struct {
	addr       string
	cache      *Cache
	upgrader   websocket.Upgrader
	logger     *log.Logger
	httpServer *http.Server
	mu         sync.Mutex
	ctx        context.Context
	cancel     context.CancelFunc
}

// NewServer creates a drill server listening on addr.
func NewServer(addr string, cache *Cache, logger *log.Logger) *Server {
	ctx, cancel := context.WithCancel(context.Background())

	return &Server{
		addr:  addr,
		cache: cache,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				// For development, allow all origins
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		logger: logger.WithPrefix("drill"),
		ctx:    ctx,
		cancel: cancel,
	}
}

// Handler returns the HTTP routes. Exposed separately so tests can drive
// the server through httptest.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Get("/api/drill/scenario", s.handleScenario)
	r.Post("/api/drill/answer", s.handleAnswer)
	r.Get("/api/drill/stream", s.handleStream)
	r.Get("/health", s.handleHealth)
	return r
}

// Start runs the HTTP server until Stop is called.
func (s *Server) Start() error {
	s.mu.Lock()
	s.httpServer = &http.Server{Addr: s.addr, Handler: s.Handler()}
	s.mu.Unlock()

	s.logger.Info("Starting drill server", "addr", s.addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Stop shuts the server down and cancels any active stream sessions.
func (s *Server) Stop(ctx context.Context) error {
	s.cancel()

	s.mu.Lock()
	srv := s.httpServer
	s.mu.Unlock()
	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}

// ScenarioResponse is the redacted scenario returned to clients. Answer
// correctness and explanations stay server-side until the answer call.
type ScenarioResponse struct {
	ScenarioID string                `json:"scenario_id"`
	Topic      trainer.TrainingTopic `json:"topic"`
	Title      string                `json:"title"`
	TableSetup trainer.TableSetup    `json:"table_setup"`
	Question   string                `json:"question"`
	Answers    []AnswerChoice        `json:"answers"`
}

// AnswerChoice is an answer option with grading fields stripped.
type AnswerChoice struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// AnswerRequest grades a previously generated scenario.
type AnswerRequest struct {
	ScenarioID string `json:"scenario_id"`
	AnswerID   string `json:"answer_id"`
}

// AnswerResponse is the grading verdict.
type AnswerResponse struct {
	IsCorrect       bool   `json:"is_correct"`
	Explanation     string `json:"explanation"`
	CorrectAnswerID string `json:"correct_answer_id"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Redact strips grading fields from a scenario for client delivery.
func Redact(s trainer.TrainingScenario) ScenarioResponse {
	answers := make([]AnswerChoice, len(s.Answers))
	for i, a := range s.Answers {
		answers[i] = AnswerChoice{ID: a.ID, Text: a.Text}
	}
	return ScenarioResponse{
		ScenarioID: s.ScenarioID,
		Topic:      s.Topic,
		Title:      s.Topic.Title(),
		TableSetup: s.TableSetup,
		Question:   s.Question,
		Answers:    answers,
	}
}

// parseRequest converts the string form of a drill request into a
// trainer.TrainingRequest. Unknown enum values are reported to the caller.
func parseRequest(topic, difficulty, seed, style string) (trainer.TrainingRequest, error) {
	var req trainer.TrainingRequest

	if street, err := trainer.ParseStreet(topic); err == nil {
		req.Topic = trainer.TopicSelector{Street: &street}
	} else {
		t, err := trainer.ParseTopic(topic)
		if err != nil {
			return req, err
		}
		req.Topic = trainer.TopicSelector{Topic: t}
	}

	diff, err := trainer.ParseDifficulty(difficulty)
	if err != nil {
		return req, err
	}
	req.Difficulty = diff

	ts, err := trainer.ParseTextStyle(style)
	if err != nil {
		return req, err
	}
	req.TextStyle = ts

	if seed != "" {
		n, err := strconv.ParseUint(seed, 10, 64)
		if err != nil {
			return req, err
		}
		req.Seed = &n
	}

	return req, nil
}

func (s *Server) handleScenario(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req, err := parseRequest(q.Get("topic"), q.Get("difficulty"), q.Get("seed"), q.Get("style"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	scenario := trainer.GenerateTraining(req)
	s.cache.Put(scenario)
	s.logger.Debug("Generated scenario",
		"id", scenario.ScenarioID, "topic", scenario.Topic, "branch", scenario.BranchKey)

	writeJSON(w, http.StatusOK, Redact(scenario))
}

func (s *Server) handleAnswer(w http.ResponseWriter, r *http.Request) {
	var req AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	verdict, status := s.grade(req)
	if status != http.StatusOK {
		writeJSON(w, status, errorResponse{Error: http.StatusText(status)})
		return
	}
	writeJSON(w, http.StatusOK, verdict)
}

// grade looks up a cached scenario and grades the chosen answer. It returns
// the HTTP status that fits the lookup outcome.
func (s *Server) grade(req AnswerRequest) (AnswerResponse, int) {
	scenario, ok := s.cache.Get(req.ScenarioID)
	if !ok {
		return AnswerResponse{}, http.StatusNotFound
	}

	var chosen *trainer.AnswerOption
	for i := range scenario.Answers {
		if scenario.Answers[i].ID == req.AnswerID {
			chosen = &scenario.Answers[i]
			break
		}
	}
	if chosen == nil {
		return AnswerResponse{}, http.StatusBadRequest
	}

	return AnswerResponse{
		IsCorrect:       chosen.IsCorrect,
		Explanation:     chosen.Explanation,
		CorrectAnswerID: scenario.CorrectAnswer().ID,
	}, http.StatusOK
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Headers already sent, nothing left to do but log
		log.Error("Failed to encode response", "error", err)
	}
}
