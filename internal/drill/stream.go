package drill

import (
	"encoding/json"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/lox/pokertrainer/trainer"
)

// Stream message types.
const (
	MsgRequest  = "request"
	MsgScenario = "scenario"
	MsgAnswer   = "answer"
	MsgVerdict  = "verdict"
	MsgError    = "error"
)

// StreamMessage is the envelope for every message on a drill stream.
// Exactly one payload field is set, matching Type.
type StreamMessage struct {
	Type string `json:"type"`

	// request
	Topic      string `json:"topic,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
	Seed       string `json:"seed,omitempty"`
	Style      string `json:"style,omitempty"`

	// answer
	ScenarioID string `json:"scenario_id,omitempty"`
	AnswerID   string `json:"answer_id,omitempty"`

	// scenario, verdict, error
	Scenario *ScenarioResponse `json:"scenario,omitempty"`
	Verdict  *AnswerResponse   `json:"verdict,omitempty"`
	Error    string            `json:"error,omitempty"`
}

// handleStream upgrades the connection and runs a drill session: the client
// requests scenarios and submits answers over the same connection.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("Failed to upgrade connection", "error", err)
		return
	}

	sessionID := uuid.NewString()
	logger := s.logger.With("session", sessionID)
	logger.Info("Drill session started")

	go func() {
		<-s.ctx.Done()
		_ = conn.Close()
	}()

	defer func() {
		_ = conn.Close()
		logger.Info("Drill session ended")
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Warn("Session read failed", "error", err)
			}
			return
		}

		var msg StreamMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			if !s.send(conn, StreamMessage{Type: MsgError, Error: "invalid message"}) {
				return
			}
			continue
		}

		var reply StreamMessage
		switch msg.Type {
		case MsgRequest:
			reply = s.streamScenario(msg, logger)
		case MsgAnswer:
			reply = s.streamVerdict(msg)
		default:
			reply = StreamMessage{Type: MsgError, Error: "unknown message type"}
		}

		if !s.send(conn, reply) {
			return
		}
	}
}

func (s *Server) streamScenario(msg StreamMessage, logger *log.Logger) StreamMessage {
	req, err := parseRequest(msg.Topic, msg.Difficulty, msg.Seed, msg.Style)
	if err != nil {
		return StreamMessage{Type: MsgError, Error: err.Error()}
	}

	scenario := trainer.GenerateTraining(req)
	s.cache.Put(scenario)
	logger.Debug("Generated scenario", "id", scenario.ScenarioID, "topic", scenario.Topic)

	redacted := Redact(scenario)
	return StreamMessage{Type: MsgScenario, Scenario: &redacted}
}

func (s *Server) streamVerdict(msg StreamMessage) StreamMessage {
	verdict, status := s.grade(AnswerRequest{ScenarioID: msg.ScenarioID, AnswerID: msg.AnswerID})
	if status != http.StatusOK {
		return StreamMessage{Type: MsgError, Error: http.StatusText(status)}
	}
	return StreamMessage{Type: MsgVerdict, Verdict: &verdict}
}

func (s *Server) send(conn *websocket.Conn, msg StreamMessage) bool {
	if err := conn.WriteJSON(msg); err != nil {
		s.logger.Warn("Session write failed", "error", err)
		return false
	}
	return true
}
