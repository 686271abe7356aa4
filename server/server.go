package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Akesh-M/JournalAssistCrew/core"
	"github.com/Akesh-M/JournalAssistCrew/engine"
	"github.com/Akesh-M/JournalAssistCrew/logging"
)

// Options configures a Server instance.
type Options struct {
	// Logger receives request-level records. Defaults to the no-op logger.
	Logger logging.Logger
	// RequestTimeout bounds each request; 0 disables the timeout
	// middleware.
	RequestTimeout time.Duration
}

// Server is the HTTP boundary over the registry and engine.
type Server struct {
	registry *core.Registry
	engine   *engine.Engine
	logger   logging.Logger
	timeout  time.Duration
}

// New constructs a Server bound to the given registry and engine.
func New(registry *core.Registry, eng *engine.Engine, optFns ...func(o *Options)) *Server {
	opts := Options{Logger: logging.NoOpLogger{}}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Server{
		registry: registry,
		engine:   eng,
		logger:   opts.Logger,
		timeout:  opts.RequestTimeout,
	}
}

// Router assembles the HTTP routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	if s.timeout > 0 {
		r.Use(middleware.Timeout(s.timeout))
	}

	r.Get("/health", s.handleHealth)
	r.Get("/agents", s.handleListAgents)
	r.Post("/agent/run", s.handleRunAgent)

	return r
}

// runRequest is the body for agent execution (single or multi-agent).
type runRequest struct {
	// Agent is a single agent id, e.g. "progress".
	Agent string `json:"agent,omitempty"`
	// Agents is an ordered list for a multi-agent flow; it takes
	// precedence over Agent when both are set.
	Agents []string `json:"agents,omitempty"`
	// Input is the user input for the agent(s).
	Input string `json:"input"`
}

// agentSequence resolves the requested identifiers: the explicit list wins
// over the single id; entries are trimmed, lowercased and blanks dropped.
func (r runRequest) agentSequence() []string {
	var sequence []string
	if len(r.Agents) > 0 {
		for _, id := range r.Agents {
			if id = strings.ToLower(strings.TrimSpace(id)); id != "" {
				sequence = append(sequence, id)
			}
		}
		return sequence
	}
	if id := strings.ToLower(strings.TrimSpace(r.Agent)); id != "" {
		sequence = append(sequence, id)
	}
	return sequence
}

// messageRecord is one conversation entry in the API response.
type messageRecord struct {
	Role    string `json:"role"` // "user" | "assistant"
	Agent   string `json:"agent,omitempty"`
	Content string `json:"content"`
}

// runResponse is the projection of a completed run.
type runResponse struct {
	// Agent is the last agent that replied.
	Agent string `json:"agent"`
	// Output is the last assistant message content.
	Output string `json:"output"`
	// Messages is the full conversation: user input plus each agent reply.
	Messages []messageRecord `json:"messages"`
}

// agentsResponse lists registered agents for discovery.
type agentsResponse struct {
	Agents     []core.Info `json:"agents"`
	MultiAgent string      `json:"multi_agent"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "engine": "sequential"})
}

func (s *Server) handleListAgents(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, agentsResponse{
		Agents:     s.registry.List(),
		MultiAgent: `Use POST /agent/run with body.agents = ["summarize", "progress"] for an inter-agent flow.`,
	})
}

func (s *Server) handleRunAgent(w http.ResponseWriter, r *http.Request) {
	req, ok := readJSON[runRequest](w, r)
	if !ok {
		return
	}

	sequence := req.agentSequence()
	if len(sequence) == 0 {
		writeError(w, http.StatusBadRequest, "provide 'agent' or 'agents'")
		return
	}

	if strings.TrimSpace(req.Input) == "" {
		writeError(w, http.StatusBadRequest, "'input' must be non-empty")
		return
	}

	// Reject unresolvable identifiers up front so callers get a 400 naming
	// the bad ids instead of an aborted run.
	var invalid []string
	for _, id := range sequence {
		if _, err := s.registry.Resolve(id); err != nil {
			invalid = append(invalid, id)
		}
	}
	if len(invalid) > 0 {
		writeError(w, http.StatusBadRequest, fmt.Sprintf(
			"unknown agent(s): %s; choose from: %s",
			strings.Join(invalid, ", "),
			strings.Join(s.registry.Names(), ", "),
		))
		return
	}

	result, err := s.engine.Run(r.Context(), req.Input, sequence)
	if err != nil {
		s.writeRunError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, projectResult(result))
}

// writeRunError maps engine failures onto HTTP statuses. No partial
// conversation is ever returned.
func (s *Server) writeRunError(w http.ResponseWriter, r *http.Request, err error) {
	reqID := middleware.GetReqID(r.Context())

	var unknown *core.UnknownAgentError
	switch {
	case errors.As(err, &unknown):
		writeError(w, http.StatusBadRequest, unknown.Error())
	case errors.Is(err, engine.ErrEmptyInput), errors.Is(err, engine.ErrEmptySequence):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		s.logger.Error("run failed", "request_id", reqID, "error", err)
		writeError(w, http.StatusInternalServerError, "agent execution failed")
	}
}

// projectResult converts the final orchestration state into the API shape.
func projectResult(result *engine.Result) runResponse {
	history := result.State.Log.Messages()
	records := make([]messageRecord, 0, len(history))
	for _, msg := range history {
		records = append(records, messageRecord{
			Role:    string(msg.Role),
			Agent:   msg.Producer,
			Content: msg.Content,
		})
	}

	return runResponse{
		Agent:    result.State.LastProducer,
		Output:   result.State.Output(),
		Messages: records,
	}
}
